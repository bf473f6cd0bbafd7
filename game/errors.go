package game

import "errors"

// Ошибки движка прогнозов. Все операции принимают или отклоняют изменение
// целиком: отклонённый вызов не оставляет частичных мутаций.
var (
	// Programmer errors: a correct UI never produces these.
	ErrInvalidPosition = errors.New("reorder index out of range")
	ErrUnknownGroup    = errors.New("unknown group id")

	// Recoverable user-facing validation.
	ErrSelectionFull     = errors.New("third-place selection already has 8 teams")
	ErrNotThirdCandidate = errors.New("team is not one of the 12 third-place finishers")

	// Stage gating.
	ErrThirdPlaceIncomplete = errors.New("third-place selection must have exactly 8 teams before seeding the bracket")
	ErrBracketNotSeeded     = errors.New("knockout bracket has not been seeded")
	ErrBracketIncomplete    = errors.New("the final must have a winner before the prediction can be finalized")
	ErrAlreadySubmitted     = errors.New("prediction has already been submitted")
)
