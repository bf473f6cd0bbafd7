package brackets

import "errors"

var (
	ErrMatchNotFound     = errors.New("bracket match not found")
	ErrFeederUnresolved  = errors.New("both feeder matches must be decided before picking a winner")
	ErrInvalidWinner     = errors.New("winner must be one of the two teams in the match")
	ErrSeedCount         = errors.New("bracket seeding requires 12 qualification results and 8 third-place teams")
	ErrThirdNotCandidate = errors.New("selected third-place team is not a derived third-place finisher")
	ErrThirdAssignment   = errors.New("no valid slot assignment exists for the selected third-place teams")
)
