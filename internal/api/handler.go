package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/orionhq/crisis-intel/internal/analyzer"
	"github.com/orionhq/crisis-intel/internal/events"
	"github.com/orionhq/crisis-intel/internal/feed"
	"github.com/orionhq/crisis-intel/internal/matching"
	"github.com/orionhq/crisis-intel/internal/models"
)

// UpdateQueue accepts availability updates from the debug surface.
type UpdateQueue interface {
	Submit(u feed.Update)
}

type Handler struct {
	matcher     *matching.Selector
	analyzer    analyzer.Analyzer
	source      matching.Source
	broadcaster *events.Broadcaster
	updates     UpdateQueue
}

func NewHandler(matcher *matching.Selector, a analyzer.Analyzer, source matching.Source, broadcaster *events.Broadcaster, updates UpdateQueue) *Handler {
	return &Handler{
		matcher:     matcher,
		analyzer:    a,
		source:      source,
		broadcaster: broadcaster,
		updates:     updates,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/analyze", h.analyze)
	r.GET("/api/resources", h.listResources)
	r.GET("/api/events", h.streamEvents)
	r.GET("/health", h.health)
	r.POST("/api/debug/availability", h.updateAvailability)
}

type analyzeRequest struct {
	Message string `json:"message"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Message is required",
			"message": "Please provide a distress message to analyze",
		})
		return
	}

	requestID := uuid.NewString()
	slog.Info("analyzing distress message", "request_id", requestID)

	analysis, err := h.analyzer.Analyze(c.Request.Context(), req.Message)
	if err != nil {
		slog.Error("analysis failed", "request_id", requestID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process distress message",
			"message": "The analysis service is unavailable, please try again",
		})
		return
	}

	resource := h.matcher.FindBestResource(analysis)
	now := time.Now().UTC()

	if h.broadcaster != nil {
		h.broadcaster.Broadcast(events.Event{
			ID:         uuid.NewString(),
			Type:       events.TypeMatch,
			ResourceID: resource.ID,
			Message:    fmt.Sprintf("matched %q need with %s", analysis.Need, resource.Name),
			Timestamp:  now,
		})
	}

	slog.Info("matched resource",
		"request_id", requestID,
		"need", analysis.Need,
		"urgency", analysis.UrgencyScore,
		"resource", resource.Name,
	)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"requestId":   requestID,
		"analysis":    analysis,
		"resource":    resource,
		"timeline":    buildTimeline(now, resource.Name),
		"processedAt": now,
	})
}

func (h *Handler) listResources(c *gin.Context) {
	var resources []models.Resource
	if t := c.Query("type"); t != "" {
		resources = h.source.ListByType(models.ResourceType(strings.ToLower(t)))
	} else {
		resources = h.source.List()
	}

	if resources == nil {
		resources = []models.Resource{}
	}

	c.JSON(http.StatusOK, gin.H{
		"resources": resources,
		"count":     len(resources),
	})
}

func (h *Handler) streamEvents(c *gin.Context) {
	id, ch := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(id)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("message", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type availabilityRequest struct {
	ID                  string `json:"id"`
	CurrentAvailability int    `json:"currentAvailability"`
	AvailabilityStatus  string `json:"availabilityStatus"`
}

// updateAvailability queues a live availability change; the feed applies it
// to the store between matching calls.
func (h *Handler) updateAvailability(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resource id is required"})
		return
	}

	status := models.AvailabilityStatus(req.AvailabilityStatus)
	switch status {
	case models.AvailabilityAvailable, models.AvailabilityLimited, models.AvailabilityUnavailable:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid availability status"})
		return
	}

	h.updates.Submit(feed.Update{
		ResourceID:          req.ID,
		CurrentAvailability: req.CurrentAvailability,
		AvailabilityStatus:  status,
	})

	c.JSON(http.StatusAccepted, gin.H{
		"message": "availability update queued",
		"id":      req.ID,
	})
}
