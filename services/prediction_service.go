package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/Dosada05/prediction-game/brackets"
	"github.com/Dosada05/prediction-game/catalog"
	"github.com/Dosada05/prediction-game/game"
	"github.com/Dosada05/prediction-game/live"
	"github.com/Dosada05/prediction-game/models"
)

// SessionState - снимок состояния сессии для UI. Все поверхности
// (групповая доска, выбор третьих мест, сетка, форма отправки) читают
// одно и то же состояние, а не держат собственные копии.
type SessionState struct {
	SessionID       string                       `json:"session_id"`
	Stage           models.CompletionStage       `json:"stage"`
	Standings       []game.StandingList          `json:"standings"`
	TouchedGroups   []models.GroupID             `json:"touched_groups"`
	Qualification   []models.QualificationResult `json:"qualification"`
	ThirdCandidates []string                     `json:"third_place_candidates"`
	ThirdSelected   []string                     `json:"third_place_selected"`
	Bracket         []brackets.Match             `json:"bracket,omitempty"`
}

type PredictionService interface {
	CreateSession(ctx context.Context) (*SessionState, error)
	GetState(ctx context.Context, sessionID string) (*SessionState, error)
	Reorder(ctx context.Context, sessionID string, groupID models.GroupID, from, to int) (*SessionState, error)
	ToggleThirdPlace(ctx context.Context, sessionID, teamID string) (*SessionState, error)
	SeedBracket(ctx context.Context, sessionID string) (*SessionState, error)
	Advance(ctx context.Context, sessionID, matchID, winnerID string) (*SessionState, error)
	PruneIdleSessions(maxIdle time.Duration) int
}

type predictionService struct {
	store   *sessionStore
	catalog *catalog.Catalog
	hub     *live.Hub
	logger  *slog.Logger
}

func NewPredictionService(store *sessionStore, cat *catalog.Catalog, hub *live.Hub, logger *slog.Logger) PredictionService {
	return &predictionService{store: store, catalog: cat, hub: hub, logger: logger}
}

// NewSessionStore exposes the shared store to the other services in main.
func NewSessionStore() *sessionStore { return newSessionStore() }

func (s *predictionService) CreateSession(ctx context.Context) (*SessionState, error) {
	p, err := game.NewPrediction("", s.catalog.Groups())
	if err != nil {
		return nil, err
	}
	id := s.store.create(p)
	s.logger.Info("play session created", slog.String("session_id", id))
	return s.snapshotState(id)
}

func (s *predictionService) GetState(ctx context.Context, sessionID string) (*SessionState, error) {
	return s.snapshotState(sessionID)
}

func (s *predictionService) Reorder(ctx context.Context, sessionID string, groupID models.GroupID, from, to int) (*SessionState, error) {
	return s.mutate(sessionID, "STANDINGS_UPDATED", func(p *game.Prediction) error {
		_, err := p.Reorder(groupID, from, to)
		return err
	})
}

func (s *predictionService) ToggleThirdPlace(ctx context.Context, sessionID, teamID string) (*SessionState, error) {
	return s.mutate(sessionID, "THIRD_PLACE_UPDATED", func(p *game.Prediction) error {
		return p.ToggleThirdPlace(teamID)
	})
}

func (s *predictionService) SeedBracket(ctx context.Context, sessionID string) (*SessionState, error) {
	return s.mutate(sessionID, "BRACKET_SEEDED", func(p *game.Prediction) error {
		return p.SeedKnockout()
	})
}

func (s *predictionService) Advance(ctx context.Context, sessionID, matchID, winnerID string) (*SessionState, error) {
	return s.mutate(sessionID, "BRACKET_UPDATED", func(p *game.Prediction) error {
		return p.Advance(matchID, winnerID)
	})
}

func (s *predictionService) PruneIdleSessions(maxIdle time.Duration) int {
	pruned := s.store.pruneIdle(maxIdle)
	if pruned > 0 {
		s.logger.Info("idle play sessions pruned", slog.Int("count", pruned), slog.Int("remaining", s.store.len()))
	}
	return pruned
}

// mutate applies fn under the session lock and, on success, broadcasts the
// fresh state to the session's live room.
func (s *predictionService) mutate(sessionID, eventType string, fn func(*game.Prediction) error) (*SessionState, error) {
	var state *SessionState
	err := s.store.with(sessionID, func(p *game.Prediction) error {
		if err := fn(p); err != nil {
			return err
		}
		state = stateOf(sessionID, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.hub.BroadcastToRoom(sessionID, live.Event{Type: eventType, Payload: state})
	return state, nil
}

func (s *predictionService) snapshotState(sessionID string) (*SessionState, error) {
	var state *SessionState
	err := s.store.with(sessionID, func(p *game.Prediction) error {
		state = stateOf(sessionID, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func stateOf(sessionID string, p *game.Prediction) *SessionState {
	touched := make([]models.GroupID, 0, len(models.GroupIDs))
	for _, g := range models.GroupIDs {
		if p.GroupTouched(g) {
			touched = append(touched, g)
		}
	}
	return &SessionState{
		SessionID:       sessionID,
		Stage:           p.Stage(),
		Standings:       p.Standings(),
		TouchedGroups:   touched,
		Qualification:   p.Qualification(),
		ThirdCandidates: p.ThirdPlaceCandidates(),
		ThirdSelected:   p.Selection(),
		Bracket:         p.BracketMatches(),
	}
}
