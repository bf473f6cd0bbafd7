package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Dosada05/prediction-game/models"
	"github.com/lib/pq"
)

var (
	ErrSubmissionNotFound        = errors.New("submission not found")
	ErrConfirmationIDConflict    = errors.New("confirmation id already exists")
	ErrSubmissionInvalidSnapshot = errors.New("submission snapshot failed to encode")
)

// CountryCount - агрегат для дашборда: число отправок по странам.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// ChampionCount - распределение выбранных чемпионов по отправкам.
type ChampionCount struct {
	TeamID string `json:"team_id"`
	Count  int    `json:"count"`
}

type SubmissionRepository interface {
	Create(ctx context.Context, record *models.SubmissionRecord) error
	GetByConfirmationID(ctx context.Context, confirmationID string) (*models.SubmissionRecord, error)
	ListRecent(ctx context.Context, limit int) ([]models.SubmissionRecord, error)
	ListAll(ctx context.Context) ([]models.SubmissionRecord, error)
	CountAll(ctx context.Context) (int, error)
	CountByCountry(ctx context.Context, limit int) ([]CountryCount, error)
	ChampionCounts(ctx context.Context, limit int) ([]ChampionCount, error)
}

type postgresSubmissionRepository struct {
	db *sql.DB
}

func NewPostgresSubmissionRepository(db *sql.DB) SubmissionRepository {
	return &postgresSubmissionRepository{db: db}
}

func (r *postgresSubmissionRepository) Create(ctx context.Context, rec *models.SubmissionRecord) error {
	snapshot, err := json.Marshal(rec.Snapshot)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmissionInvalidSnapshot, err)
	}

	query := `
		INSERT INTO submissions (
			confirmation_id, name, email, country, age_confirmed, terms_accepted, snapshot
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err = r.db.QueryRowContext(ctx, query,
		rec.ConfirmationID, rec.Name, rec.Email, rec.Country, rec.AgeConfirmed, rec.TermsAccepted, snapshot,
	).Scan(&rec.ID, &rec.CreatedAt)

	return r.handleSubmissionError(err)
}

func (r *postgresSubmissionRepository) GetByConfirmationID(ctx context.Context, confirmationID string) (*models.SubmissionRecord, error) {
	query := `
		SELECT id, confirmation_id, name, email, country, age_confirmed, terms_accepted, snapshot, created_at
		FROM submissions
		WHERE confirmation_id = $1`

	rec, err := scanSubmission(r.db.QueryRowContext(ctx, query, confirmationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *postgresSubmissionRepository) ListRecent(ctx context.Context, limit int) ([]models.SubmissionRecord, error) {
	query := `
		SELECT id, confirmation_id, name, email, country, age_confirmed, terms_accepted, snapshot, created_at
		FROM submissions
		ORDER BY created_at DESC
		LIMIT $1`
	return r.list(ctx, query, limit)
}

func (r *postgresSubmissionRepository) ListAll(ctx context.Context) ([]models.SubmissionRecord, error) {
	query := `
		SELECT id, confirmation_id, name, email, country, age_confirmed, terms_accepted, snapshot, created_at
		FROM submissions
		ORDER BY id`
	return r.list(ctx, query)
}

func (r *postgresSubmissionRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.SubmissionRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.SubmissionRecord, 0)
	for rows.Next() {
		rec, scanErr := scanSubmission(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, *rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *postgresSubmissionRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return count, nil
}

func (r *postgresSubmissionRepository) CountByCountry(ctx context.Context, limit int) ([]CountryCount, error) {
	query := `
		SELECT country, COUNT(*) AS cnt
		FROM submissions
		GROUP BY country
		ORDER BY cnt DESC, country
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]CountryCount, 0)
	for rows.Next() {
		var c CountryCount
		if scanErr := rows.Scan(&c.Country, &c.Count); scanErr != nil {
			return nil, scanErr
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *postgresSubmissionRepository) ChampionCounts(ctx context.Context, limit int) ([]ChampionCount, error) {
	// The snapshot column is JSONB; the champion pick lives at the top level.
	query := `
		SELECT snapshot->>'champion' AS champion, COUNT(*) AS cnt
		FROM submissions
		WHERE snapshot->>'champion' <> ''
		GROUP BY champion
		ORDER BY cnt DESC, champion
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]ChampionCount, 0)
	for rows.Next() {
		var c ChampionCount
		if scanErr := rows.Scan(&c.TeamID, &c.Count); scanErr != nil {
			return nil, scanErr
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSubmission(row rowScanner) (*models.SubmissionRecord, error) {
	rec := &models.SubmissionRecord{}
	var snapshot []byte
	err := row.Scan(
		&rec.ID, &rec.ConfirmationID, &rec.Name, &rec.Email, &rec.Country,
		&rec.AgeConfirmed, &rec.TermsAccepted, &snapshot, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(snapshot, &rec.Snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode submission snapshot: %w", err)
	}
	return rec, nil
}

func (r *postgresSubmissionRepository) handleSubmissionError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23505" && pqErr.Constraint == "submissions_confirmation_id_key" {
			return ErrConfirmationIDConflict
		}
	}
	return err
}
