package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Dosada05/prediction-game/game"
	"github.com/Dosada05/prediction-game/live"
	"github.com/Dosada05/prediction-game/models"
	"github.com/Dosada05/prediction-game/repositories"
)

// Формат подтверждающего кода: фиксированный префикс + 6 символов из
// 32-символьного алфавита без визуально неоднозначных знаков (0/O/1/I).
// Collision-resistant enough for a human-facing code (32^6 combinations)
// and transcribable over the phone.
const (
	confirmationPrefix   = "WC26-"
	confirmationLength   = 6
	confirmationAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// How many times a unique-violation on insert is retried with a new id.
	confirmationIDAttempts = 5
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IdentityInput - поля формы отправки.
type IdentityInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Country       string `json:"country"`
	AgeConfirmed  bool   `json:"age_confirmed"`
	TermsAccepted bool   `json:"terms_accepted"`
}

type SubmissionService interface {
	// Finalize snapshots the session's prediction into an immutable record.
	// Calling it twice for the same session produces two records with
	// distinct confirmation ids; de-duplication is the transport's concern.
	Finalize(ctx context.Context, sessionID string, identity IdentityInput) (*models.SubmissionRecord, error)
	GetByConfirmationID(ctx context.Context, confirmationID string) (*models.SubmissionRecord, error)
}

type submissionService struct {
	store  *sessionStore
	repo   repositories.SubmissionRepository
	email  *EmailService
	hub    *live.Hub
	logger *slog.Logger
}

func NewSubmissionService(
	store *sessionStore,
	repo repositories.SubmissionRepository,
	email *EmailService,
	hub *live.Hub,
	logger *slog.Logger,
) SubmissionService {
	return &submissionService{store: store, repo: repo, email: email, hub: hub, logger: logger}
}

func (s *submissionService) Finalize(ctx context.Context, sessionID string, identity IdentityInput) (*models.SubmissionRecord, error) {
	if err := validateIdentity(&identity); err != nil {
		return nil, err
	}

	var record *models.SubmissionRecord
	err := s.store.with(sessionID, func(p *game.Prediction) error {
		// Validation happens before any mutation; the stage gate also covers
		// a repeat finalize, which is allowed once the prediction is complete.
		if !p.Stage().AtLeast(models.StageKnockoutComplete) {
			return ErrPredictionIncomplete
		}

		snapshot := p.Snapshot()

		rec, err := s.persistWithFreshID(ctx, identity, snapshot)
		if err != nil {
			// Delivery failed: the prediction stays at knockout_complete so
			// the user can simply retry.
			return err
		}
		record = rec

		if err := p.MarkSubmitted(); err != nil && !errors.Is(err, game.ErrAlreadySubmitted) {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("submission recorded",
		slog.String("session_id", sessionID),
		slog.String("confirmation_id", record.ConfirmationID),
	)
	s.hub.BroadcastToRoom(sessionID, live.Event{Type: "SUBMITTED", Payload: map[string]string{
		"confirmation_id": record.ConfirmationID,
	}})

	// Fire-and-forget: the record is already durable, an email failure must
	// not surface as a submission failure.
	if s.email != nil {
		go func(rec models.SubmissionRecord) {
			if err := s.email.SendConfirmationEmail(rec.Email, rec.Name, rec.ConfirmationID); err != nil {
				s.logger.Error("failed to send confirmation email",
					slog.String("confirmation_id", rec.ConfirmationID),
					slog.Any("error", err),
				)
			}
		}(*record)
	}

	return record, nil
}

func (s *submissionService) GetByConfirmationID(ctx context.Context, confirmationID string) (*models.SubmissionRecord, error) {
	rec, err := s.repo.GetByConfirmationID(ctx, confirmationID)
	if err != nil {
		if errors.Is(err, repositories.ErrSubmissionNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}
	return rec, nil
}

// persistWithFreshID inserts the record, drawing a new confirmation id on a
// unique-violation. A collision is close to impossible but costs one retry.
func (s *submissionService) persistWithFreshID(ctx context.Context, identity IdentityInput, snapshot models.PredictionSnapshot) (*models.SubmissionRecord, error) {
	for attempt := 0; attempt < confirmationIDAttempts; attempt++ {
		id, err := generateConfirmationID()
		if err != nil {
			return nil, err
		}

		rec := &models.SubmissionRecord{
			ConfirmationID: id,
			Name:           identity.Name,
			Email:          identity.Email,
			Country:        identity.Country,
			AgeConfirmed:   identity.AgeConfirmed,
			TermsAccepted:  identity.TermsAccepted,
			Snapshot:       snapshot,
		}

		err = s.repo.Create(ctx, rec)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, repositories.ErrConfirmationIDConflict) {
			return nil, fmt.Errorf("failed to persist submission: %w", err)
		}
		s.logger.Warn("confirmation id collision, retrying", slog.String("confirmation_id", id))
	}
	return nil, ErrConfirmationIDExhausted
}

// generateConfirmationID draws each character uniformly from the 32-symbol
// alphabet. 256 is divisible by 32, so a plain modulo stays uniform.
func generateConfirmationID() (string, error) {
	buf := make([]byte, confirmationLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate confirmation id: %w", err)
	}
	var b strings.Builder
	b.WriteString(confirmationPrefix)
	for _, c := range buf {
		b.WriteByte(confirmationAlphabet[int(c)%len(confirmationAlphabet)])
	}
	return b.String(), nil
}

func validateIdentity(in *IdentityInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Country = strings.TrimSpace(in.Country)

	fields := make(map[string]string)
	if in.Name == "" {
		fields["name"] = "name is required"
	}
	if !emailPattern.MatchString(in.Email) {
		fields["email"] = "a valid email address is required"
	}
	if in.Country == "" {
		fields["country"] = "country is required"
	}
	if !in.AgeConfirmed {
		fields["age_confirmed"] = "age confirmation is required"
	}
	if !in.TermsAccepted {
		fields["terms_accepted"] = "the terms must be accepted"
	}
	if len(fields) > 0 {
		return &IdentityValidationError{Fields: fields}
	}
	return nil
}
