package brackets

import (
	"fmt"

	"github.com/Dosada05/prediction-game/models"
)

// Round обозначает стадию плей-офф.
type Round string

const (
	RoundOf32        Round = "round_of_32"
	RoundOf16        Round = "round_of_16"
	RoundQuarter     Round = "quarter_final"
	RoundSemi        Round = "semi_final"
	RoundThirdPlace  Round = "third_place_match"
	RoundFinal       Round = "final"
	MatchThirdPlace        = "TPP"
	MatchFinal             = "F"
)

const slotHome, slotAway = 1, 2

// Match - один матч сетки. Home/Away пустые, пока фидеры не решены.
type Match struct {
	ID    string `json:"id"`
	Round Round  `json:"round"`

	Home string `json:"home,omitempty"`
	Away string `json:"away,omitempty"`

	Winner string `json:"winner,omitempty"`
	Loser  string `json:"-"`

	// NextID/NextSlot name the match and side the winner advances to.
	// Semifinal losers feed the third place match via LoserNextID.
	NextID        string `json:"-"`
	NextSlot      int    `json:"-"`
	LoserNextID   string `json:"-"`
	LoserNextSlot int    `json:"-"`
}

func (m *Match) resolved() bool { return m.Home != "" && m.Away != "" }

func (m *Match) contains(teamID string) bool {
	return teamID != "" && (m.Home == teamID || m.Away == teamID)
}

// Bracket хранит все 32 матча плей-офф от 1/16 финала до финала
// и распространяет победителей вверх по сетке.
type Bracket struct {
	matches map[string]*Match
	order   []string
}

func newBracket() *Bracket {
	b := &Bracket{matches: make(map[string]*Match)}

	add := func(m *Match) {
		b.matches[m.ID] = m
		b.order = append(b.order, m.ID)
	}

	link := func(id string, next string, slot int) {
		b.matches[id].NextID = next
		b.matches[id].NextSlot = slot
	}

	for i := 1; i <= 16; i++ {
		add(&Match{ID: matchID("R32", i), Round: RoundOf32})
	}
	for i := 1; i <= 8; i++ {
		add(&Match{ID: matchID("R16", i), Round: RoundOf16})
	}
	for i := 1; i <= 4; i++ {
		add(&Match{ID: matchID("QF", i), Round: RoundQuarter})
	}
	add(&Match{ID: matchID("SF", 1), Round: RoundSemi})
	add(&Match{ID: matchID("SF", 2), Round: RoundSemi})
	add(&Match{ID: MatchThirdPlace, Round: RoundThirdPlace})
	add(&Match{ID: MatchFinal, Round: RoundFinal})

	// Consecutive pairs of each round feed the next one.
	for i := 1; i <= 16; i++ {
		link(matchID("R32", i), matchID("R16", (i+1)/2), slotFor(i))
	}
	for i := 1; i <= 8; i++ {
		link(matchID("R16", i), matchID("QF", (i+1)/2), slotFor(i))
	}
	for i := 1; i <= 4; i++ {
		link(matchID("QF", i), matchID("SF", (i+1)/2), slotFor(i))
	}
	for i := 1; i <= 2; i++ {
		link(matchID("SF", i), MatchFinal, slotFor(i))
		b.matches[matchID("SF", i)].LoserNextID = MatchThirdPlace
		b.matches[matchID("SF", i)].LoserNextSlot = slotFor(i)
	}

	return b
}

func matchID(prefix string, n int) string {
	return fmt.Sprintf("%s-%d", prefix, n)
}

func slotFor(i int) int {
	if i%2 == 1 {
		return slotHome
	}
	return slotAway
}

// Match returns a copy of the match with the given id.
func (b *Bracket) Match(id string) (Match, bool) {
	m, ok := b.matches[id]
	if !ok {
		return Match{}, false
	}
	return *m, true
}

// Matches returns copies of all matches in bracket order.
func (b *Bracket) Matches() []Match {
	out := make([]Match, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.matches[id])
	}
	return out
}

// Advance declares the winner of a match and propagates it up the bracket.
// Validation happens before any mutation: a rejected call leaves every slot
// untouched. Re-picking a decided match is allowed; downstream picks that
// depended on the replaced team are cleared.
func (b *Bracket) Advance(matchID, winnerID string) error {
	m, ok := b.matches[matchID]
	if !ok {
		return ErrMatchNotFound
	}
	if !m.resolved() {
		return ErrFeederUnresolved
	}
	if !m.contains(winnerID) {
		return ErrInvalidWinner
	}
	if m.Winner == winnerID {
		return nil
	}

	if m.Winner != "" {
		b.retractWinner(m)
	}

	m.Winner = winnerID
	if m.Home == winnerID {
		m.Loser = m.Away
	} else {
		m.Loser = m.Home
	}

	if m.NextID != "" {
		b.setSlot(m.NextID, m.NextSlot, m.Winner)
	}
	if m.LoserNextID != "" {
		b.setSlot(m.LoserNextID, m.LoserNextSlot, m.Loser)
	}
	return nil
}

// retractWinner undoes a previous pick on m, clearing everything downstream
// that referenced the retracted teams.
func (b *Bracket) retractWinner(m *Match) {
	old, oldLoser := m.Winner, m.Loser
	m.Winner, m.Loser = "", ""
	if m.NextID != "" {
		b.clearSlot(m.NextID, m.NextSlot, old)
	}
	if m.LoserNextID != "" {
		b.clearSlot(m.LoserNextID, m.LoserNextSlot, oldLoser)
	}
}

func (b *Bracket) setSlot(id string, slot int, teamID string) {
	m := b.matches[id]
	if slot == slotHome {
		m.Home = teamID
	} else {
		m.Away = teamID
	}
}

// clearSlot empties a slot previously holding teamID and retracts any pick
// made on that match while the team was present.
func (b *Bracket) clearSlot(id string, slot int, teamID string) {
	m := b.matches[id]
	if m.Winner != "" {
		b.retractWinner(m)
	}
	if slot == slotHome && m.Home == teamID {
		m.Home = ""
	} else if slot == slotAway && m.Away == teamID {
		m.Away = ""
	}
}

// FinalDecided reports whether the final has a declared winner. The third
// place match is deliberately independent of bracket completion.
func (b *Bracket) FinalDecided() bool {
	return b.matches[MatchFinal].Winner != ""
}

// Champion returns the picked winner of the final, or "".
func (b *Bracket) Champion() string {
	return b.matches[MatchFinal].Winner
}

// RunnerUp returns the picked loser of the final, or "".
func (b *Bracket) RunnerUp() string {
	return b.matches[MatchFinal].Loser
}

// ThirdPlaceWinner returns the picked winner of the third place match, or "".
func (b *Bracket) ThirdPlaceWinner() string {
	return b.matches[MatchThirdPlace].Winner
}

// Picks returns the declared winner of every decided match, keyed by match id.
func (b *Bracket) Picks() map[string]string {
	picks := make(map[string]string)
	for id, m := range b.matches {
		if m.Winner != "" {
			picks[id] = m.Winner
		}
	}
	return picks
}

// leafSources resolves the 24 automatic qualifier slots of the template.
func leafSources(qual map[models.GroupID]models.QualificationResult, src slotSource) string {
	switch src.kind {
	case srcWinner:
		return qual[src.group].Winner
	case srcRunnerUp:
		return qual[src.group].RunnerUp
	default:
		return "" // third slots are assigned in seeding.go
	}
}
