package game

import "github.com/Dosada05/prediction-game/models"

// StandingList - предсказанный порядок финиша одной группы.
// Invariant: always a permutation of the group's four team ids. Reorder is
// an index move, never an insert or delete, so the invariant holds by
// construction as long as the indices are validated.
type StandingList struct {
	Group models.GroupID `json:"group"`
	Order [4]string      `json:"order"`
}

func newStandingList(g models.Group) *StandingList {
	return &StandingList{Group: g.ID, Order: g.TeamIDs}
}

// move shifts the element at from to to, sliding the teams between them.
// Caller validates the indices; from == to is a no-op.
func (s *StandingList) move(from, to int) {
	if from == to {
		return
	}
	team := s.Order[from]
	if from < to {
		copy(s.Order[from:to], s.Order[from+1:to+1])
	} else {
		copy(s.Order[to+1:from+1], s.Order[to:from])
	}
	s.Order[to] = team
}

func (s *StandingList) clone() *StandingList {
	c := *s
	return &c
}
