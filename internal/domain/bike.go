package domain

// BikeCategory enumerates the catalog groupings shown on the explore page.
type BikeCategory string

const (
	CategoryAdventure BikeCategory = "adventure"
	CategorySport     BikeCategory = "sport"
	CategoryNaked     BikeCategory = "naked"
	CategoryCruiser   BikeCategory = "cruiser"
)

// Categories lists every known category in display order.
func Categories() []BikeCategory {
	return []BikeCategory{CategoryAdventure, CategorySport, CategoryNaked, CategoryCruiser}
}

// Bike is a rentable motorbike. Records are seeded once and read-only to all
// booking operations.
type Bike struct {
	ID          string
	Name        string
	Model       string
	Category    BikeCategory
	PricePerDay float64
	Description string
	Image       string
	TopSpeed    string
}
