package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/arcanedm/arcanedm/pkg/state"
)

// MaxSavedCampaigns caps the campaign list. Saving beyond the cap
// evicts the least recently updated campaign.
const MaxSavedCampaigns = 2

// Storage persists campaign saves.
type Storage interface {
	// ListCampaigns returns all saved campaigns, most recently
	// updated first.
	ListCampaigns(ctx context.Context) ([]state.GameState, error)

	// SaveCampaign upserts a campaign by ID, stamps LastUpdated, and
	// enforces MaxSavedCampaigns.
	SaveCampaign(ctx context.Context, gs *state.GameState) error

	// DeleteCampaign removes a campaign by ID. Deleting an unknown ID
	// is not an error.
	DeleteCampaign(ctx context.Context, id uuid.UUID) error

	Ping(ctx context.Context) error
	Close() error
}
