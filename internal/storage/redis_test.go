package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"

	"github.com/arcanedm/arcanedm/pkg/party"
	"github.com/arcanedm/arcanedm/pkg/state"
	"github.com/arcanedm/arcanedm/pkg/story"
)

func newTestRedis(t *testing.T) *RedisStorage {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	rs, err := NewRedisStorage("redis://"+mr.Addr(), log)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { _ = rs.Close() })

	return rs
}

func newTestCampaign(t *testing.T) *state.GameState {
	t.Helper()
	return state.NewGameState(story.CampaignNormal, party.Prebuilt())
}

func TestRedisStorage_Ping(t *testing.T) {
	rs := newTestRedis(t)
	if err := rs.Ping(context.Background()); err != nil {
		t.Errorf("unexpected ping error: %v", err)
	}
}

func TestRedisStorage_EmptyList(t *testing.T) {
	rs := newTestRedis(t)

	campaigns, err := rs.ListCampaigns(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(campaigns) != 0 {
		t.Errorf("expected empty list, got %d campaigns", len(campaigns))
	}
}

func TestRedisStorage_SaveAndList(t *testing.T) {
	rs := newTestRedis(t)
	ctx := context.Background()

	gs := newTestCampaign(t)
	before := time.Now()
	if err := rs.SaveCampaign(ctx, gs); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if gs.LastUpdated.Before(before) {
		t.Error("SaveCampaign must stamp LastUpdated")
	}

	campaigns, err := rs.ListCampaigns(ctx)
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(campaigns) != 1 {
		t.Fatalf("expected 1 campaign, got %d", len(campaigns))
	}
	if campaigns[0].ID != gs.ID {
		t.Errorf("round-tripped ID mismatch: %s vs %s", campaigns[0].ID, gs.ID)
	}
	if campaigns[0].Name != gs.Name {
		t.Errorf("round-tripped name mismatch: %q vs %q", campaigns[0].Name, gs.Name)
	}
	if len(campaigns[0].CharacterProfiles) != len(gs.CharacterProfiles) {
		t.Error("character profiles lost in round trip")
	}
}

func TestRedisStorage_UpsertKeepsOneEntry(t *testing.T) {
	rs := newTestRedis(t)
	ctx := context.Background()

	gs := newTestCampaign(t)
	if err := rs.SaveCampaign(ctx, gs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gs.PartyGold = 75
	if err := rs.SaveCampaign(ctx, gs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	campaigns, err := rs.ListCampaigns(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(campaigns) != 1 {
		t.Fatalf("upsert must not duplicate, got %d entries", len(campaigns))
	}
	if campaigns[0].PartyGold != 75 {
		t.Errorf("expected updated gold 75, got %d", campaigns[0].PartyGold)
	}
}

func TestRedisStorage_CapEvictsOldest(t *testing.T) {
	rs := newTestRedis(t)
	ctx := context.Background()

	first := newTestCampaign(t)
	second := newTestCampaign(t)
	third := newTestCampaign(t)

	for _, gs := range []*state.GameState{first, second, third} {
		if err := rs.SaveCampaign(ctx, gs); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// LastUpdated stamps need distinct ordering.
		time.Sleep(5 * time.Millisecond)
	}

	campaigns, err := rs.ListCampaigns(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(campaigns) != MaxSavedCampaigns {
		t.Fatalf("expected %d campaigns, got %d", MaxSavedCampaigns, len(campaigns))
	}
	if campaigns[0].ID != third.ID {
		t.Error("most recently saved campaign must list first")
	}
	if campaigns[1].ID != second.ID {
		t.Error("second newest campaign must survive the cap")
	}
	for _, c := range campaigns {
		if c.ID == first.ID {
			t.Error("oldest campaign must be evicted")
		}
	}
}

func TestRedisStorage_DeleteCampaign(t *testing.T) {
	rs := newTestRedis(t)
	ctx := context.Background()

	gs := newTestCampaign(t)
	if err := rs.SaveCampaign(ctx, gs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := rs.DeleteCampaign(ctx, gs.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	campaigns, err := rs.ListCampaigns(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(campaigns) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(campaigns))
	}

	// Deleting an unknown ID is a no-op.
	if err := rs.DeleteCampaign(ctx, uuid.New()); err != nil {
		t.Errorf("unexpected error deleting unknown ID: %v", err)
	}
}

func TestRedisStorage_InvalidURL(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := NewRedisStorage("not a url", log); err == nil {
		t.Error("expected error for invalid redis url")
	}
}
