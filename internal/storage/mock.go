package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arcanedm/arcanedm/pkg/state"
)

// MockStorage is an in-memory Storage implementation for testing.
type MockStorage struct {
	ListCampaignsFunc  func(ctx context.Context) ([]state.GameState, error)
	SaveCampaignFunc   func(ctx context.Context, gs *state.GameState) error
	DeleteCampaignFunc func(ctx context.Context, id uuid.UUID) error
	PingFunc           func(ctx context.Context) error

	// Track calls for testing
	SaveCampaignCalls   []state.GameState
	DeleteCampaignCalls []uuid.UUID

	campaigns []state.GameState
	mu        sync.Mutex // protects all fields above
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage.
func NewMockStorage() *MockStorage {
	return &MockStorage{
		SaveCampaignCalls:   make([]state.GameState, 0),
		DeleteCampaignCalls: make([]uuid.UUID, 0),
	}
}

func (m *MockStorage) ListCampaigns(ctx context.Context) ([]state.GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListCampaignsFunc != nil {
		return m.ListCampaignsFunc(ctx)
	}

	out := make([]state.GameState, len(m.campaigns))
	copy(out, m.campaigns)
	return out, nil
}

func (m *MockStorage) SaveCampaign(ctx context.Context, gs *state.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SaveCampaignCalls = append(m.SaveCampaignCalls, *gs)

	if m.SaveCampaignFunc != nil {
		return m.SaveCampaignFunc(ctx, gs)
	}

	gs.LastUpdated = time.Now()
	for i := range m.campaigns {
		if m.campaigns[i].ID == gs.ID {
			m.campaigns[i] = *gs
			return nil
		}
	}
	m.campaigns = append(m.campaigns, *gs)
	return nil
}

func (m *MockStorage) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DeleteCampaignCalls = append(m.DeleteCampaignCalls, id)

	if m.DeleteCampaignFunc != nil {
		return m.DeleteCampaignFunc(ctx, id)
	}

	kept := m.campaigns[:0]
	for _, c := range m.campaigns {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	m.campaigns = kept
	return nil
}

func (m *MockStorage) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func (m *MockStorage) Close() error {
	return nil
}

// Reset clears stored campaigns and call tracking.
func (m *MockStorage) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.campaigns = nil
	m.SaveCampaignCalls = make([]state.GameState, 0)
	m.DeleteCampaignCalls = make([]uuid.UUID, 0)
}
