package dto

// BikeResponse is the API shape of a catalog entry.
type BikeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Model       string  `json:"model"`
	Category    string  `json:"category"`
	PricePerDay float64 `json:"price_per_day"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	TopSpeed    string  `json:"top_speed"`
}
