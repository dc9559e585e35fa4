package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/arcanedm/arcanedm/pkg/state"
)

// campaignsKey holds the full campaign list as a JSON array. The list
// is tiny (MaxSavedCampaigns entries) so whole-list writes keep the
// save format identical to what ListCampaigns reads back.
const campaignsKey = "arcanedm:campaigns"

// RedisStorage implements Storage using Redis.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a Redis storage instance from a redis:// URL.
func NewRedisStorage(redisURL string, logger *slog.Logger) (*RedisStorage, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	return &RedisStorage{
		client: redis.NewClient(opts),
		logger: logger,
	}, nil
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	return nil
}

// WaitForConnection waits for Redis to become available during startup.
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStorage) loadCampaigns(ctx context.Context) ([]state.GameState, error) {
	data, err := r.client.Get(ctx, campaignsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load campaigns: %w", err)
	}

	var campaigns []state.GameState
	if err := json.Unmarshal([]byte(data), &campaigns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *RedisStorage) storeCampaigns(ctx context.Context, campaigns []state.GameState) error {
	data, err := json.Marshal(campaigns)
	if err != nil {
		return fmt.Errorf("failed to marshal campaigns: %w", err)
	}
	if err := r.client.Set(ctx, campaignsKey, string(data), 0).Err(); err != nil {
		return fmt.Errorf("failed to save campaigns: %w", err)
	}
	return nil
}

// ListCampaigns returns saved campaigns, most recently updated first.
func (r *RedisStorage) ListCampaigns(ctx context.Context) ([]state.GameState, error) {
	campaigns, err := r.loadCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(campaigns, func(i, j int) bool {
		return campaigns[i].LastUpdated.After(campaigns[j].LastUpdated)
	})
	return campaigns, nil
}

// SaveCampaign upserts by ID, stamps LastUpdated, and truncates the
// list to MaxSavedCampaigns.
func (r *RedisStorage) SaveCampaign(ctx context.Context, gs *state.GameState) error {
	campaigns, err := r.loadCampaigns(ctx)
	if err != nil {
		return err
	}

	gs.LastUpdated = time.Now()

	replaced := false
	for i := range campaigns {
		if campaigns[i].ID == gs.ID {
			campaigns[i] = *gs
			replaced = true
			break
		}
	}
	if !replaced {
		campaigns = append(campaigns, *gs)
	}

	sort.SliceStable(campaigns, func(i, j int) bool {
		return campaigns[i].LastUpdated.After(campaigns[j].LastUpdated)
	})
	if len(campaigns) > MaxSavedCampaigns {
		campaigns = campaigns[:MaxSavedCampaigns]
	}

	return r.storeCampaigns(ctx, campaigns)
}

// DeleteCampaign removes a campaign by ID.
func (r *RedisStorage) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	campaigns, err := r.loadCampaigns(ctx)
	if err != nil {
		return err
	}

	kept := campaigns[:0]
	for _, c := range campaigns {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(campaigns) {
		return nil
	}

	return r.storeCampaigns(ctx, kept)
}
