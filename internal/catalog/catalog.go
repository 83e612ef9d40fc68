package catalog

import "github.com/orionhq/crisis-intel/internal/models"

// Seed returns the built-in resource catalog for the Alappuzha micro-region.
// It is written into the store on first start and otherwise only used by
// tests; at runtime the store is the source of truth.
func Seed() []models.Resource {
	return []models.Resource{
		{
			ID:                  "MED-001",
			Name:                "District General Hospital",
			Type:                models.ResourceTypeMedical,
			Subtype:             "hospital",
			Location:            "Alappuzha Medical College Road",
			Coordinates:         models.Coordinates{Latitude: 9.4981, Longitude: 76.3388},
			Capacity:            200,
			CurrentAvailability: 45,
			AvailabilityStatus:  models.AvailabilityAvailable,
			Contact:             "+91-477-2282200",
		},
		{
			ID:                  "MED-002",
			Name:                "Mobile Medical Unit Alpha",
			Type:                models.ResourceTypeMedical,
			Subtype:             "mobile_clinic",
			Location:            "Patrolling Kuttanad Area",
			Coordinates:         models.Coordinates{Latitude: 9.4871, Longitude: 76.3288},
			Capacity:            20,
			CurrentAvailability: 12,
			AvailabilityStatus:  models.AvailabilityAvailable,
			Contact:             "+91-9876543210",
		},
		{
			ID:                  "MED-003",
			Name:                "St. Mary's Medical Center",
			Type:                models.ResourceTypeMedical,
			Subtype:             "hospital",
			Location:            "Changanassery",
			Coordinates:         models.Coordinates{Latitude: 9.4544, Longitude: 76.5419},
			Capacity:            150,
			CurrentAvailability: 8,
			AvailabilityStatus:  models.AvailabilityLimited,
			Contact:             "+91-481-2722200",
		},
		{
			ID:                  "FOOD-001",
			Name:                "Community Kitchen - Temple Road",
			Type:                models.ResourceTypeFood,
			Subtype:             "community_kitchen",
			Location:            "Temple Road, Alappuzha",
			Coordinates:         models.Coordinates{Latitude: 9.4950, Longitude: 76.3320},
			Capacity:            500,
			CurrentAvailability: 350,
			AvailabilityStatus:  models.AvailabilityAvailable,
			Contact:             "+91-9876543211",
		},
		{
			ID:                  "FOOD-002",
			Name:                "Relief Camp - Government School",
			Type:                models.ResourceTypeFood,
			Subtype:             "relief_camp",
			Location:            "Beach Road School",
			Coordinates:         models.Coordinates{Latitude: 9.5010, Longitude: 76.3400},
			Capacity:            800,
			CurrentAvailability: 600,
			AvailabilityStatus:  models.AvailabilityAvailable,
			Contact:             "+91-9876543212",
		},
		{
			ID:                  "FOOD-003",
			Name:                "NGO Food Distribution Center",
			Type:                models.ResourceTypeFood,
			Subtype:             "distribution_center",
			Location:            "Ambalappuzha",
			Coordinates:         models.Coordinates{Latitude: 9.3700, Longitude: 76.3600},
			Capacity:            1000,
			CurrentAvailability: 200,
			AvailabilityStatus:  models.AvailabilityLimited,
			Contact:             "+91-9876543213",
		},
		{
			ID:                  "WATER-001",
			Name:                "Water Tanker Unit 3",
			Type:                models.ResourceTypeWater,
			Subtype:             "tanker",
			Location:            "Cherthala Junction",
			Coordinates:         models.Coordinates{Latitude: 9.6845, Longitude: 76.3362},
			Capacity:            5000,
			CurrentAvailability: 3500,
			AvailabilityStatus:  models.AvailabilityAvailable,
			Contact:             "+91-9876543214",
		},
		{
			ID:                  "WATER-002",
			Name:                "Municipal Water Distribution Point",
			Type:                models.ResourceTypeWater,
			Subtype:             "distribution_point",
			Location:            "Alappuzha Town Hall",
			Coordinates:         models.Coordinates{Latitude: 9.4981, Longitude: 76.3388},
			Capacity:            10000,
			CurrentAvailability: 7000,
			AvailabilityStatus:  models.AvailabilityAvailable,
			Contact:             "+91-477-2251234",
		},
		{
			ID:                  "RESCUE-001",
			Name:                "Boat Team Alpha",
			Type:                models.ResourceTypeRescue,
			Subtype:             "boat",
			Location:            "Vembanad Lake Base",
			Coordinates:         models.Coordinates{Latitude: 9.5100, Longitude: 76.3500},
			Capacity:            8,
			CurrentAvailability: 8,
			AvailabilityStatus:  models.AvailabilityAvailable,
			Contact:             "+91-9876543215",
		},
		{
			ID:                  "RESCUE-002",
			Name:                "NDRF Unit Kochi",
			Type:                models.ResourceTypeRescue,
			Subtype:             "ndrf_team",
			Location:            "Deployed in Kuttanad",
			Coordinates:         models.Coordinates{Latitude: 9.4500, Longitude: 76.4000},
			Capacity:            15,
			CurrentAvailability: 10,
			AvailabilityStatus:  models.AvailabilityAvailable,
			Contact:             "+91-9876543216",
		},
		{
			ID:                  "RESCUE-003",
			Name:                "Helicopter Rescue Unit",
			Type:                models.ResourceTypeRescue,
			Subtype:             "helicopter",
			Location:            "Kochi Naval Base",
			Coordinates:         models.Coordinates{Latitude: 9.9312, Longitude: 76.2673},
			Capacity:            6,
			CurrentAvailability: 2,
			AvailabilityStatus:  models.AvailabilityLimited,
			Contact:             "+91-484-2668100",
		},
		{
			ID:                  "SHELTER-001",
			Name:                "Emergency Shelter - Community Center",
			Type:                models.ResourceTypeShelter,
			Subtype:             "community_center",
			Location:            "Alappuzha Municipal Hall",
			Coordinates:         models.Coordinates{Latitude: 9.4981, Longitude: 76.3388},
			Capacity:            300,
			CurrentAvailability: 150,
			AvailabilityStatus:  models.AvailabilityAvailable,
			Contact:             "+91-477-2253000",
		},
		{
			ID:                  "SHELTER-002",
			Name:                "Relief Camp - High School",
			Type:                models.ResourceTypeShelter,
			Subtype:             "school",
			Location:            "Government High School, Cherthala",
			Coordinates:         models.Coordinates{Latitude: 9.6845, Longitude: 76.3362},
			Capacity:            500,
			CurrentAvailability: 80,
			AvailabilityStatus:  models.AvailabilityLimited,
			Contact:             "+91-9876543217",
		},
	}
}
