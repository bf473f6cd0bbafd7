package services

import "errors"

// Общие ошибки сервисного слоя, используемые в маппинге HTTP.
var (
	ErrNotFound = errors.New("requested resource not found")

	ErrSessionNotFound = errors.New("play session not found")
	ErrTeamNotFound    = errors.New("team not found")

	ErrSubmissionNotFound = errors.New("submission not found")
	// Confirmation id generation retries exhausted; practically unreachable
	// with a 32^6 id space but surfaced rather than looping forever.
	ErrConfirmationIDExhausted = errors.New("could not allocate a unique confirmation id")

	ErrPredictionIncomplete = errors.New("prediction is not complete: the final needs a winner before submitting")

	ErrFlagStoreDisabled = errors.New("flag asset store is not configured")
)

// IdentityValidationError carries per-field validation messages for the
// finalize identity form. Recoverable: surfaced to the user as 422, not a fault.
type IdentityValidationError struct {
	Fields map[string]string
}

func (e *IdentityValidationError) Error() string {
	return "identity validation failed"
}
