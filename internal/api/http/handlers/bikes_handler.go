package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chaithanya-077/ridewave-r/internal/api/dto"
	"github.com/chaithanya-077/ridewave-r/internal/domain"
	"github.com/chaithanya-077/ridewave-r/internal/service"
)

// BikesHandler serves the public catalog.
type BikesHandler struct {
	catalog *service.CatalogService
}

// NewBikesHandler constructs handler.
func NewBikesHandler(catalogService *service.CatalogService) *BikesHandler {
	return &BikesHandler{catalog: catalogService}
}

// ListBikes GET /bikes. With ?category= it returns one category; without it
// the whole catalog grouped by category, mirroring the explore page.
func (h *BikesHandler) ListBikes(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		bikes, err := h.catalog.ListByCategory(c.Context(), domain.BikeCategory(category))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": bikeResponses(bikes)})
	}

	grouped, err := h.catalog.GroupedByCategory(c.Context())
	if err != nil {
		return err
	}
	data := fiber.Map{}
	for category, bikes := range grouped {
		data[string(category)] = bikeResponses(bikes)
	}
	return c.JSON(fiber.Map{"data": data})
}

// GetBike GET /bikes/:id.
func (h *BikesHandler) GetBike(c *fiber.Ctx) error {
	bike, err := h.catalog.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bikeResponse(bike)})
}

func bikeResponse(bike *domain.Bike) dto.BikeResponse {
	return dto.BikeResponse{
		ID:          bike.ID,
		Name:        bike.Name,
		Model:       bike.Model,
		Category:    string(bike.Category),
		PricePerDay: bike.PricePerDay,
		Description: bike.Description,
		Image:       bike.Image,
		TopSpeed:    bike.TopSpeed,
	}
}

func bikeResponses(bikes []domain.Bike) []dto.BikeResponse {
	items := make([]dto.BikeResponse, 0, len(bikes))
	for i := range bikes {
		items = append(items, bikeResponse(&bikes[i]))
	}
	return items
}
