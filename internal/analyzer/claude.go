package analyzer

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/orionhq/crisis-intel/internal/models"
)

const extractionPrompt = `You are an emergency response system analyzing distress messages. Extract critical information and calculate an urgency score.

EXTRACTION RULES:
1. need: "food", "water", "medical", "rescue", "shelter", or "other" if unclear.
2. location: extract ANY location mention (road names, landmarks, area names). If none, use "Location not specified". Be specific, use the exact words from the message.
3. quantity: number of people affected. A "family" counts as 4-5. If unclear, use 1.
4. duration: how long they have been in crisis, exact words, or "Not specified".
5. vulnerableGroups: baby/infant, elderly, pregnant, disabled, sick.
6. medicalConcerns: fever, chest pain, injury, bleeding, unconscious, etc.
7. environmentalFactors: flood, fire, earthquake, landslide, storm.

URGENCY SCORE: start at 30. Add: baby +25, elderly +20, pregnant +20, disabled +15, medical emergency (chest pain, bleeding, unconscious) +30, sick +20, duration >24h +15, duration >48h +25, flood/water rising +25, fire +30, trapped/stranded +20, >5 people +10, >10 people +15. Cap at 100.

urgencyLevel: 0-40 "low", 41-60 "medium", 61-80 "high", 81-100 "critical".

Return ONLY a JSON object with this shape, no markdown, no code fences:
{"need":"...","quantity":1,"location":"...","urgencyLevel":"...","urgencyScore":0,"reasoning":["..."],"extractedDetails":{"duration":"...","vulnerableGroups":[],"medicalConcerns":[],"environmentalFactors":[]}}`

// Claude extracts structured analyses with the Anthropic Messages API.
type Claude struct {
	client sdk.Client
	model  string
}

func NewClaude(apiKey, model string) *Claude {
	return &Claude{
		client: sdk.NewClient(
			option.WithAPIKey(apiKey),
		),
		model: model,
	}
}

func (c *Claude) Analyze(ctx context.Context, message string) (models.DistressAnalysis, error) {
	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(c.model),
		MaxTokens:   1024,
		Temperature: sdk.Float(0.3),
		System: []sdk.TextBlockParam{
			{Text: extractionPrompt},
		},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(fmt.Sprintf("DISTRESS MESSAGE:\n%q", message))),
		},
	})
	if err != nil {
		return models.DistressAnalysis{}, fmt.Errorf("error calling anthropic: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return parseAnalysis(text.String())
}
