package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chaithanya-077/ridewave-r/internal/service"
)

const (
	confirmationKeyPrefix = "booking_details:"
	confirmationTTL       = 30 * time.Minute
)

// ConfirmationStore holds the transient booking summary between the create
// request and the confirmation view.
type ConfirmationStore interface {
	Put(ctx context.Context, userID string, confirmation *service.BookingConfirmation) error
	// Take returns the stored confirmation and removes it; the summary is
	// consumed exactly once. A nil result means nothing was stored.
	Take(ctx context.Context, userID string) (*service.BookingConfirmation, error)
}

type redisConfirmationStore struct {
	client *redis.Client
}

// NewRedisConfirmationStore backs the store with Redis.
func NewRedisConfirmationStore(client *redis.Client) ConfirmationStore {
	return &redisConfirmationStore{client: client}
}

func (s *redisConfirmationStore) Put(ctx context.Context, userID string, confirmation *service.BookingConfirmation) error {
	payload, err := json.Marshal(confirmation)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, confirmationKeyPrefix+userID, payload, confirmationTTL).Err()
}

func (s *redisConfirmationStore) Take(ctx context.Context, userID string) (*service.BookingConfirmation, error) {
	payload, err := s.client.GetDel(ctx, confirmationKeyPrefix+userID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var confirmation service.BookingConfirmation
	if err := json.Unmarshal(payload, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}
