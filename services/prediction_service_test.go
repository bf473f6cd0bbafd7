package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/prediction-game/catalog"
	"github.com/Dosada05/prediction-game/live"
	"github.com/Dosada05/prediction-game/models"
)

func newTestPredictionService(t *testing.T) PredictionService {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	logger := testLogger()
	return NewPredictionService(newSessionStore(), cat, live.NewHub(logger), logger)
}

func TestCreateSessionInitialState(t *testing.T) {
	svc := newTestPredictionService(t)

	state, err := svc.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if state.SessionID == "" {
		t.Error("empty session id")
	}
	if state.Stage != models.StageGroupStageInProgress {
		t.Errorf("initial stage %s", state.Stage)
	}
	if len(state.Standings) != len(models.GroupIDs) {
		t.Errorf("%d standings, want %d", len(state.Standings), len(models.GroupIDs))
	}
	if len(state.TouchedGroups) != 0 {
		t.Errorf("fresh session has touched groups: %v", state.TouchedGroups)
	}
	if len(state.ThirdCandidates) != len(models.GroupIDs) {
		t.Errorf("%d third candidates, want %d", len(state.ThirdCandidates), len(models.GroupIDs))
	}
	if state.Bracket != nil {
		t.Error("fresh session has a bracket")
	}
}

func TestPredictionServiceDrivesFullFlow(t *testing.T) {
	svc := newTestPredictionService(t)
	ctx := context.Background()

	state, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	id := state.SessionID

	for _, g := range models.GroupIDs {
		if state, err = svc.Reorder(ctx, id, g, 0, 0); err != nil {
			t.Fatalf("reorder %s: %v", g, err)
		}
	}
	if state.Stage != models.StageGroupStageComplete {
		t.Fatalf("stage after reorders: %s", state.Stage)
	}

	for _, teamID := range state.ThirdCandidates[:8] {
		if state, err = svc.ToggleThirdPlace(ctx, id, teamID); err != nil {
			t.Fatalf("toggle %s: %v", teamID, err)
		}
	}
	if state.Stage != models.StageThirdPlaceComplete {
		t.Fatalf("stage after selection: %s", state.Stage)
	}

	if state, err = svc.SeedBracket(ctx, id); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(state.Bracket) != 32 {
		t.Fatalf("bracket has %d matches, want 32", len(state.Bracket))
	}

	for pass := 0; pass < 6; pass++ {
		for _, m := range state.Bracket {
			if m.Winner == "" && m.Home != "" && m.Away != "" {
				if state, err = svc.Advance(ctx, id, m.ID, m.Home); err != nil {
					t.Fatalf("advance %s: %v", m.ID, err)
				}
			}
		}
	}
	if state.Stage != models.StageKnockoutComplete {
		t.Fatalf("stage after playthrough: %s", state.Stage)
	}
}

func TestPredictionServiceUnknownSession(t *testing.T) {
	svc := newTestPredictionService(t)
	if _, err := svc.GetState(context.Background(), "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("got %v, want ErrSessionNotFound", err)
	}
}

func TestPruneIdleSessions(t *testing.T) {
	svc := newTestPredictionService(t)
	if _, err := svc.CreateSession(context.Background()); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if pruned := svc.PruneIdleSessions(time.Hour); pruned != 0 {
		t.Errorf("fresh session pruned: %d", pruned)
	}
	if pruned := svc.PruneIdleSessions(-time.Second); pruned != 1 {
		t.Errorf("pruned %d sessions with an immediate cutoff, want 1", pruned)
	}
}
