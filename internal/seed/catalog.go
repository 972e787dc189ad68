package seed

import (
	"context"

	"go.uber.org/zap"

	"github.com/chaithanya-077/ridewave-r/internal/auth"
	"github.com/chaithanya-077/ridewave-r/internal/config"
	"github.com/chaithanya-077/ridewave-r/internal/domain"
	"github.com/chaithanya-077/ridewave-r/internal/repository"
)

// Catalog returns the fixed rental fleet: 16 bikes across 4 categories.
// Values are the production catalog and must not drift.
func Catalog() []domain.Bike {
	return []domain.Bike{
		{
			Name:        "BMW",
			Model:       "R 1250 GS",
			Category:    domain.CategoryAdventure,
			PricePerDay: 3500,
			Description: "The ultimate adventure machine with advanced technology and comfort features.",
			Image:       "bmw-gs.jpg",
			TopSpeed:    "220 km/h",
		},
		{
			Name:        "KTM",
			Model:       "1290 Super Adventure",
			Category:    domain.CategoryAdventure,
			PricePerDay: 3200,
			Description: "Powerful adventure tourer with cutting-edge technology and off-road capabilities.",
			Image:       "ktm-super-adventure.jpg",
			TopSpeed:    "230 km/h",
		},
		{
			Name:        "Ducati",
			Model:       "Multistrada V4",
			Category:    domain.CategoryAdventure,
			PricePerDay: 3800,
			Description: "Italian engineering meets adventure touring with superb performance.",
			Image:       "ducati-multistrada.jpg",
			TopSpeed:    "240 km/h",
		},
		{
			Name:        "Honda",
			Model:       "Africa Twin",
			Category:    domain.CategoryAdventure,
			PricePerDay: 3000,
			Description: "Reliable adventure companion with excellent off-road capabilities.",
			Image:       "honda-africa.jpg",
			TopSpeed:    "210 km/h",
		},
		{
			Name:        "Yamaha",
			Model:       "YZF-R1",
			Category:    domain.CategorySport,
			PricePerDay: 4000,
			Description: "Track-focused superbike with race-derived technology.",
			Image:       "yamaha-r1.jpg",
			TopSpeed:    "300 km/h",
		},
		{
			Name:        "Kawasaki",
			Model:       "Ninja ZX-10R",
			Category:    domain.CategorySport,
			PricePerDay: 4200,
			Description: "World Superbike championship-winning machine with extreme performance.",
			Image:       "kawasaki-ninja.jpg",
			TopSpeed:    "299 km/h",
		},
		{
			Name:        "Aprilia",
			Model:       "RSV4",
			Category:    domain.CategorySport,
			PricePerDay: 4500,
			Description: "Italian superbike with championship-winning pedigree and V4 engine.",
			Image:       "aprilia-rsv4.jpg",
			TopSpeed:    "285 km/h",
		},
		{
			Name:        "Suzuki",
			Model:       "GSX-R1000",
			Category:    domain.CategorySport,
			PricePerDay: 3800,
			Description: "Legendary sportbike with proven performance and reliability.",
			Image:       "suzuki-gsxr.jpg",
			TopSpeed:    "290 km/h",
		},
		{
			Name:        "Yamaha",
			Model:       "MT-09",
			Category:    domain.CategoryNaked,
			PricePerDay: 2800,
			Description: "Torque-rich naked bike with aggressive styling and excellent handling.",
			Image:       "yamaha-mt09.jpg",
			TopSpeed:    "225 km/h",
		},
		{
			Name:        "KTM",
			Model:       "Duke 790",
			Category:    domain.CategoryNaked,
			PricePerDay: 3000,
			Description: "Lightweight and powerful naked bike with premium components.",
			Image:       "ktm-duke.jpg",
			TopSpeed:    "220 km/h",
		},
		{
			Name:        "Triumph",
			Model:       "Street Triple",
			Category:    domain.CategoryNaked,
			PricePerDay: 3200,
			Description: "British triple-cylinder naked with superb handling and character.",
			Image:       "triumph-street-triple.jpg",
			TopSpeed:    "230 km/h",
		},
		{
			Name:        "Ducati",
			Model:       "Monster",
			Category:    domain.CategoryNaked,
			PricePerDay: 3500,
			Description: "Iconic Italian naked bike with premium build quality and performance.",
			Image:       "ducati-monster.jpg",
			TopSpeed:    "240 km/h",
		},
		{
			Name:        "Harley-Davidson",
			Model:       "Sportster",
			Category:    domain.CategoryCruiser,
			PricePerDay: 2500,
			Description: "Classic American cruiser with iconic styling and V-twin character.",
			Image:       "harley-sportster.jpg",
			TopSpeed:    "180 km/h",
		},
		{
			Name:        "Indian",
			Model:       "Scout",
			Category:    domain.CategoryCruiser,
			PricePerDay: 2800,
			Description: "Modern American cruiser with premium features and comfort.",
			Image:       "indian-scout.jpg",
			TopSpeed:    "190 km/h",
		},
		{
			Name:        "Honda",
			Model:       "Rebel 1100",
			Category:    domain.CategoryCruiser,
			PricePerDay: 2200,
			Description: "Modern cruiser with Honda reliability and advanced features.",
			Image:       "honda-rebel.jpg",
			TopSpeed:    "200 km/h",
		},
		{
			Name:        "Triumph",
			Model:       "Bonneville",
			Category:    domain.CategoryCruiser,
			PricePerDay: 3000,
			Description: "Classic British cruiser with modern technology and timeless style.",
			Image:       "triumph-bonneville.jpg",
			TopSpeed:    "210 km/h",
		},
	}
}

// SeedBikes replaces the bike catalog with the fixed fleet.
func SeedBikes(ctx context.Context, bikes repository.BikeRepository, logger *zap.Logger) error {
	if err := bikes.DeleteAll(ctx); err != nil {
		return err
	}
	catalog := Catalog()
	for i := range catalog {
		if err := bikes.Create(ctx, &catalog[i]); err != nil {
			return err
		}
	}
	logger.Info("bike catalog seeded", zap.Int("count", len(catalog)))
	return nil
}

// EnsureAdmin creates the administrator account unless one already exists.
func EnsureAdmin(ctx context.Context, users repository.UserRepository, cfg config.BootstrapConfig, bcryptCost int, logger *zap.Logger) error {
	exists, err := users.AdminExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		logger.Info("administrator already present; skipping")
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword, bcryptCost)
	if err != nil {
		return err
	}
	admin := &domain.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	logger.Info("administrator created", zap.String("username", admin.Username))
	return nil
}
