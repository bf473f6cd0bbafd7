package models

import "time"

// SnapshotSchemaVersion версионирует формат полезной нагрузки отправки.
// Increment on any incompatible change to PredictionSnapshot.
const SnapshotSchemaVersion = 1

// PredictionSnapshot - глубокая копия прогноза на момент finalize.
// Explicit tagged structure handed to the delivery collaborator; the live
// Prediction is never referenced from here.
type PredictionSnapshot struct {
	SchemaVersion   int                  `json:"schema_version"`
	GroupStandings  map[GroupID][]string `json:"group_standings"`   // group → 4 team ids, predicted order
	ThirdPlacePicks []string             `json:"third_place_picks"` // 8 team ids, sorted
	KnockoutPicks   map[string]string    `json:"knockout_picks"`    // match id → predicted winner team id
	Champion        string               `json:"champion"`
	RunnerUp        string               `json:"runner_up"`
	ThirdPlaceMatch string               `json:"third_place_match,omitempty"` // winner of the bronze final, if picked
}

// SubmissionRecord - неизменяемый слепок завершённого прогноза.
// Created once per finalize call; a retried finalize produces a new record
// with a new confirmation id, never a mutation of a prior one.
type SubmissionRecord struct {
	ID             int                `json:"id"`
	ConfirmationID string             `json:"confirmation_id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Country        string             `json:"country"`
	AgeConfirmed   bool               `json:"age_confirmed"`
	TermsAccepted  bool               `json:"terms_accepted"`
	Snapshot       PredictionSnapshot `json:"predictions"`
	CreatedAt      time.Time          `json:"created_at"`
}
