package seed

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/chaithanya-077/ridewave-r/internal/auth"
	"github.com/chaithanya-077/ridewave-r/internal/config"
	"github.com/chaithanya-077/ridewave-r/internal/domain"
)

func TestCatalog_Fleet(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 16)

	perCategory := make(map[domain.BikeCategory]int)
	for _, bike := range catalog {
		perCategory[bike.Category]++
		assert.NotEmpty(t, bike.Name)
		assert.NotEmpty(t, bike.Model)
		assert.NotEmpty(t, bike.Description)
		assert.NotEmpty(t, bike.Image)
		assert.NotEmpty(t, bike.TopSpeed)
		assert.Greater(t, bike.PricePerDay, 0.0)
	}

	for _, category := range domain.Categories() {
		assert.Equal(t, 4, perCategory[category], "category %s", category)
	}

	// The flagship adventure bike must stay first and keep its rate.
	first := catalog[0]
	assert.Equal(t, "BMW", first.Name)
	assert.Equal(t, "R 1250 GS", first.Model)
	assert.Equal(t, 3500.0, first.PricePerDay)
}

type seedBikeRepo struct {
	bikes []domain.Bike
	seq   int
}

func (r *seedBikeRepo) Create(_ context.Context, bike *domain.Bike) error {
	r.seq++
	bike.ID = fmt.Sprintf("bike-%d", r.seq)
	r.bikes = append(r.bikes, *bike)
	return nil
}

func (r *seedBikeRepo) GetByID(_ context.Context, id string) (*domain.Bike, error) {
	for i := range r.bikes {
		if r.bikes[i].ID == id {
			return &r.bikes[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *seedBikeRepo) ListByCategory(_ context.Context, category domain.BikeCategory) ([]domain.Bike, error) {
	var result []domain.Bike
	for _, bike := range r.bikes {
		if bike.Category == category {
			result = append(result, bike)
		}
	}
	return result, nil
}

func (r *seedBikeRepo) ListAll(_ context.Context) ([]domain.Bike, error) {
	return append([]domain.Bike{}, r.bikes...), nil
}

func (r *seedBikeRepo) DeleteAll(_ context.Context) error {
	r.bikes = nil
	return nil
}

func TestSeedBikes_ReplacesCatalog(t *testing.T) {
	repo := &seedBikeRepo{}
	ctx := context.Background()

	require.NoError(t, SeedBikes(ctx, repo, zap.NewNop()))
	require.NoError(t, SeedBikes(ctx, repo, zap.NewNop()))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 16, "reseeding must not duplicate the fleet")
}

type seedUserRepo struct {
	users []domain.User
	seq   int
}

func (r *seedUserRepo) Create(_ context.Context, user *domain.User) error {
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	r.users = append(r.users, *user)
	return nil
}

func (r *seedUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			return &r.users[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *seedUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Username == username {
			return &r.users[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *seedUserRepo) SetAdmin(_ context.Context, id string, isAdmin bool) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].IsAdmin = isAdmin
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *seedUserRepo) AdminExists(_ context.Context) (bool, error) {
	for _, user := range r.users {
		if user.IsAdmin {
			return true, nil
		}
	}
	return false, nil
}

func (r *seedUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *seedUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	return append([]domain.User{}, r.users...), nil
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	repo := &seedUserRepo{}
	ctx := context.Background()
	cfg := config.BootstrapConfig{
		AdminUsername: "bharath",
		AdminEmail:    "ridewave@info.com",
		AdminPassword: "Annadi@123",
	}

	require.NoError(t, EnsureAdmin(ctx, repo, cfg, bcrypt.MinCost, zap.NewNop()))
	require.NoError(t, EnsureAdmin(ctx, repo, cfg, bcrypt.MinCost, zap.NewNop()))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "bootstrap must create exactly one administrator")

	admin, err := repo.GetByUsername(ctx, "bharath")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.NoError(t, auth.ComparePassword(admin.PasswordHash, "Annadi@123"))
	assert.NotEqual(t, "Annadi@123", admin.PasswordHash)
}
