package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/Dosada05/prediction-game/catalog"
	"github.com/Dosada05/prediction-game/game"
	"github.com/Dosada05/prediction-game/live"
	"github.com/Dosada05/prediction-game/models"
	"github.com/Dosada05/prediction-game/repositories"
)

var confirmationIDPattern = regexp.MustCompile(`^WC26-[A-Z2-9]{6}$`)

// fakeSubmissionRepo keeps records in memory and can simulate confirmation
// id conflicts for the first N inserts.
type fakeSubmissionRepo struct {
	records   []models.SubmissionRecord
	conflicts int
}

func (f *fakeSubmissionRepo) Create(ctx context.Context, rec *models.SubmissionRecord) error {
	if f.conflicts > 0 {
		f.conflicts--
		return repositories.ErrConfirmationIDConflict
	}
	rec.ID = len(f.records) + 1
	rec.CreatedAt = time.Now().UTC()
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeSubmissionRepo) GetByConfirmationID(ctx context.Context, confirmationID string) (*models.SubmissionRecord, error) {
	for i := range f.records {
		if f.records[i].ConfirmationID == confirmationID {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, repositories.ErrSubmissionNotFound
}

func (f *fakeSubmissionRepo) ListRecent(ctx context.Context, limit int) ([]models.SubmissionRecord, error) {
	if limit > len(f.records) {
		limit = len(f.records)
	}
	out := make([]models.SubmissionRecord, limit)
	copy(out, f.records[len(f.records)-limit:])
	return out, nil
}

func (f *fakeSubmissionRepo) ListAll(ctx context.Context) ([]models.SubmissionRecord, error) {
	return append([]models.SubmissionRecord(nil), f.records...), nil
}

func (f *fakeSubmissionRepo) CountAll(ctx context.Context) (int, error) {
	return len(f.records), nil
}

func (f *fakeSubmissionRepo) CountByCountry(ctx context.Context, limit int) ([]repositories.CountryCount, error) {
	return nil, nil
}

func (f *fakeSubmissionRepo) ChampionCounts(ctx context.Context, limit int) ([]repositories.ChampionCount, error) {
	return nil, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validIdentity() IdentityInput {
	return IdentityInput{
		Name:          "Ada Example",
		Email:         "ada@example.com",
		Country:       "NO",
		AgeConfirmed:  true,
		TermsAccepted: true,
	}
}

// newCompletedSession builds a store holding one prediction driven all the
// way to a decided final.
func newCompletedSession(t *testing.T) (*sessionStore, string) {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	p, err := game.NewPrediction("", cat.Groups())
	if err != nil {
		t.Fatalf("NewPrediction: %v", err)
	}

	for _, g := range models.GroupIDs {
		if _, err := p.Reorder(g, 0, 0); err != nil {
			t.Fatalf("touch %s: %v", g, err)
		}
	}
	for _, id := range p.ThirdPlaceCandidates()[:8] {
		if err := p.ToggleThirdPlace(id); err != nil {
			t.Fatalf("toggle %s: %v", id, err)
		}
	}
	if err := p.SeedKnockout(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	for pass := 0; pass < 6; pass++ {
		for _, m := range p.BracketMatches() {
			if m.Winner == "" && m.Home != "" && m.Away != "" {
				if err := p.Advance(m.ID, m.Home); err != nil {
					t.Fatalf("advance %s: %v", m.ID, err)
				}
			}
		}
	}
	if p.Stage() != models.StageKnockoutComplete {
		t.Fatalf("prediction stage %s, want %s", p.Stage(), models.StageKnockoutComplete)
	}

	store := newSessionStore()
	return store, store.create(p)
}

func newTestSubmissionService(store *sessionStore, repo repositories.SubmissionRepository) SubmissionService {
	logger := testLogger()
	return NewSubmissionService(store, repo, nil, live.NewHub(logger), logger)
}

func TestFinalizeProducesConfirmationID(t *testing.T) {
	store, sessionID := newCompletedSession(t)
	repo := &fakeSubmissionRepo{}
	svc := newTestSubmissionService(store, repo)

	rec, err := svc.Finalize(context.Background(), sessionID, validIdentity())
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if !confirmationIDPattern.MatchString(rec.ConfirmationID) {
		t.Errorf("confirmation id %q does not match the expected shape", rec.ConfirmationID)
	}
	if rec.Snapshot.Champion == "" {
		t.Error("record snapshot has no champion")
	}
	if len(repo.records) != 1 {
		t.Fatalf("%d records persisted, want 1", len(repo.records))
	}

	got, err := svc.GetByConfirmationID(context.Background(), rec.ConfirmationID)
	if err != nil {
		t.Fatalf("GetByConfirmationID: %v", err)
	}
	if got.ConfirmationID != rec.ConfirmationID {
		t.Errorf("lookup returned %q", got.ConfirmationID)
	}
}

func TestFinalizeTwiceCreatesTwoRecords(t *testing.T) {
	store, sessionID := newCompletedSession(t)
	repo := &fakeSubmissionRepo{}
	svc := newTestSubmissionService(store, repo)

	first, err := svc.Finalize(context.Background(), sessionID, validIdentity())
	if err != nil {
		t.Fatalf("first Finalize: %v", err)
	}
	second, err := svc.Finalize(context.Background(), sessionID, validIdentity())
	if err != nil {
		t.Fatalf("second Finalize: %v", err)
	}

	if first.ConfirmationID == second.ConfirmationID {
		t.Error("both submissions share a confirmation id")
	}
	if !reflect.DeepEqual(first.Snapshot, second.Snapshot) {
		t.Error("back-to-back submissions diverge in snapshot content")
	}
}

func TestFinalizeRejectsIncompletePrediction(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	p, err := game.NewPrediction("", cat.Groups())
	if err != nil {
		t.Fatalf("NewPrediction: %v", err)
	}
	store := newSessionStore()
	sessionID := store.create(p)
	repo := &fakeSubmissionRepo{}
	svc := newTestSubmissionService(store, repo)

	if _, err := svc.Finalize(context.Background(), sessionID, validIdentity()); !errors.Is(err, ErrPredictionIncomplete) {
		t.Errorf("got %v, want ErrPredictionIncomplete", err)
	}
	if len(repo.records) != 0 {
		t.Error("incomplete prediction still persisted")
	}
}

func TestFinalizeValidatesIdentity(t *testing.T) {
	store, sessionID := newCompletedSession(t)
	svc := newTestSubmissionService(store, &fakeSubmissionRepo{})

	_, err := svc.Finalize(context.Background(), sessionID, IdentityInput{Email: "not-an-email"})
	var identityErr *IdentityValidationError
	if !errors.As(err, &identityErr) {
		t.Fatalf("got %v, want IdentityValidationError", err)
	}
	for _, field := range []string{"name", "email", "country", "age_confirmed", "terms_accepted"} {
		if _, ok := identityErr.Fields[field]; !ok {
			t.Errorf("field %q missing from validation error: %v", field, identityErr.Fields)
		}
	}
}

func TestFinalizeUnknownSession(t *testing.T) {
	svc := newTestSubmissionService(newSessionStore(), &fakeSubmissionRepo{})
	if _, err := svc.Finalize(context.Background(), "no-such-session", validIdentity()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("got %v, want ErrSessionNotFound", err)
	}
}

func TestFinalizeRetriesOnConfirmationConflict(t *testing.T) {
	store, sessionID := newCompletedSession(t)
	repo := &fakeSubmissionRepo{conflicts: 2}
	svc := newTestSubmissionService(store, repo)

	rec, err := svc.Finalize(context.Background(), sessionID, validIdentity())
	if err != nil {
		t.Fatalf("Finalize with transient conflicts: %v", err)
	}
	if !confirmationIDPattern.MatchString(rec.ConfirmationID) {
		t.Errorf("confirmation id %q", rec.ConfirmationID)
	}
}

func TestFinalizeGivesUpAfterRepeatedConflicts(t *testing.T) {
	store, sessionID := newCompletedSession(t)
	repo := &fakeSubmissionRepo{conflicts: confirmationIDAttempts}
	svc := newTestSubmissionService(store, repo)

	if _, err := svc.Finalize(context.Background(), sessionID, validIdentity()); !errors.Is(err, ErrConfirmationIDExhausted) {
		t.Errorf("got %v, want ErrConfirmationIDExhausted", err)
	}
}

func TestFinalizeSnapshotImmuneToLaterLookup(t *testing.T) {
	store, sessionID := newCompletedSession(t)
	repo := &fakeSubmissionRepo{}
	svc := newTestSubmissionService(store, repo)

	rec, err := svc.Finalize(context.Background(), sessionID, validIdentity())
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	champion := rec.Snapshot.Champion

	stored, err := svc.GetByConfirmationID(context.Background(), rec.ConfirmationID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if stored.Snapshot.Champion != champion {
		t.Errorf("stored champion %q, want %q", stored.Snapshot.Champion, champion)
	}
	if stored.Snapshot.SchemaVersion != models.SnapshotSchemaVersion {
		t.Errorf("schema version %d", stored.Snapshot.SchemaVersion)
	}
}

func TestGenerateConfirmationIDShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := generateConfirmationID()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if !confirmationIDPattern.MatchString(id) {
			t.Fatalf("id %q does not match pattern", id)
		}
		seen[id] = true
	}
	// 100 draws from a 32^6 space colliding would point at a broken source.
	if len(seen) != 100 {
		t.Errorf("only %d distinct ids in 100 draws", len(seen))
	}
}
