package game

import (
	"fmt"
	"time"

	"github.com/Dosada05/prediction-game/brackets"
	"github.com/Dosada05/prediction-game/models"
)

// Prediction - агрегат одной игровой сессии: все 12 StandingList, выбор
// третьих мест, сетка плей-офф и текущая стадия заполнения.
//
// Owned exclusively by the play session; every mutation goes through the
// validated operations below and either applies fully or not at all.
type Prediction struct {
	ID        string
	CreatedAt time.Time

	groups    map[models.GroupID]models.Group
	standings map[models.GroupID]*StandingList
	touched   map[models.GroupID]bool
	selection *ThirdPlaceSelection
	bracket   *brackets.Bracket
	submitted bool

	stage models.CompletionStage
}

// NewPrediction seeds a fresh prediction from the draw: every standing list
// starts in seed order, nothing touched, nothing selected.
func NewPrediction(id string, groups []models.Group) (*Prediction, error) {
	if len(groups) != len(models.GroupIDs) {
		return nil, fmt.Errorf("expected %d groups, got %d", len(models.GroupIDs), len(groups))
	}

	p := &Prediction{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		groups:    make(map[models.GroupID]models.Group, len(groups)),
		standings: make(map[models.GroupID]*StandingList, len(groups)),
		touched:   make(map[models.GroupID]bool, len(groups)),
		selection: newThirdPlaceSelection(),
		stage:     models.StageGroupStageInProgress,
	}
	for _, g := range groups {
		if !g.ID.Valid() {
			return nil, fmt.Errorf("invalid group id %q", g.ID)
		}
		if _, dup := p.groups[g.ID]; dup {
			return nil, fmt.Errorf("duplicate group %q", g.ID)
		}
		p.groups[g.ID] = g
		p.standings[g.ID] = newStandingList(g)
	}
	return p, nil
}

func (p *Prediction) Stage() models.CompletionStage { return p.stage }

// Standings returns a copy of every standing list in draw order.
func (p *Prediction) Standings() []StandingList {
	out := make([]StandingList, 0, len(models.GroupIDs))
	for _, g := range models.GroupIDs {
		out = append(out, *p.standings[g])
	}
	return out
}

func (p *Prediction) GroupTouched(g models.GroupID) bool { return p.touched[g] }

// Qualification derives the current winners, runners-up and third-place pool.
func (p *Prediction) Qualification() []models.QualificationResult {
	return DeriveQualification(p.standings)
}

// ThirdPlaceCandidates returns the 12 current third-place finishers in draw order.
func (p *Prediction) ThirdPlaceCandidates() []string {
	qual := p.Qualification()
	out := make([]string, 0, len(qual))
	for _, q := range qual {
		out = append(out, q.ThirdPlace)
	}
	return out
}

// Selection returns the selected third-place team ids, sorted.
func (p *Prediction) Selection() []string { return p.selection.TeamIDs() }

func (p *Prediction) SelectionSize() int { return p.selection.Size() }

// BracketMatches returns copies of all bracket matches, or nil before seeding.
func (p *Prediction) BracketMatches() []brackets.Match {
	if p.bracket == nil {
		return nil
	}
	return p.bracket.Matches()
}

// Reorder moves the team at index from to index to within the group's
// standing list. A no-op move still marks the group as touched so the UI can
// show completion. If the move changes the third-place pool, selected teams
// that are no longer candidates are dropped and a seeded bracket is reset.
func (p *Prediction) Reorder(groupID models.GroupID, from, to int) (*StandingList, error) {
	if p.submitted {
		return nil, ErrAlreadySubmitted
	}
	s, ok := p.standings[groupID]
	if !ok {
		return nil, ErrUnknownGroup
	}
	if from < 0 || from >= models.TeamsPerGroup || to < 0 || to >= models.TeamsPerGroup {
		return nil, fmt.Errorf("%w: from=%d to=%d", ErrInvalidPosition, from, to)
	}

	s.move(from, to)
	p.touched[groupID] = true

	candidates := make(map[string]bool, len(models.GroupIDs))
	for _, id := range p.ThirdPlaceCandidates() {
		candidates[id] = true
	}
	if p.selection.retain(candidates) || p.bracket != nil {
		// The qualifier pool changed under a seeded bracket: the knockout
		// picks are no longer meaningful, so the bracket is discarded.
		p.bracket = nil
	}
	p.recomputeStage()

	return s.clone(), nil
}

// ToggleThirdPlace adds the team to the selection, or removes it if already
// selected. Adding a 9th team fails with ErrSelectionFull and leaves the set
// unchanged - the user must deselect first, there is no automatic eviction.
func (p *Prediction) ToggleThirdPlace(teamID string) error {
	if p.submitted {
		return ErrAlreadySubmitted
	}
	if p.selection.Has(teamID) {
		p.selection.remove(teamID)
		p.bracket = nil
		p.recomputeStage()
		return nil
	}

	candidate := false
	for _, id := range p.ThirdPlaceCandidates() {
		if id == teamID {
			candidate = true
			break
		}
	}
	if !candidate {
		return ErrNotThirdCandidate
	}
	if err := p.selection.add(teamID); err != nil {
		return err
	}
	p.bracket = nil
	p.recomputeStage()
	return nil
}

// SeedKnockout populates the 32 Round of 32 slots from the 24 automatic
// qualifiers and the 8 selected third-place teams.
func (p *Prediction) SeedKnockout() error {
	if p.submitted {
		return ErrAlreadySubmitted
	}
	if !p.allTouched() || !p.selection.Complete() {
		return ErrThirdPlaceIncomplete
	}
	b, err := brackets.Seed(p.Qualification(), p.selection.TeamIDs())
	if err != nil {
		return err
	}
	p.bracket = b
	p.recomputeStage()
	return nil
}

// Advance declares the winner of a knockout match.
func (p *Prediction) Advance(matchID, winnerID string) error {
	if p.submitted {
		return ErrAlreadySubmitted
	}
	if p.bracket == nil {
		return ErrBracketNotSeeded
	}
	if err := p.bracket.Advance(matchID, winnerID); err != nil {
		return err
	}
	p.recomputeStage()
	return nil
}

// MarkSubmitted freezes the prediction after a successful delivery handoff.
// The engine stays at knockout_complete on transport failure so finalize can
// be retried without redoing any prediction work.
func (p *Prediction) MarkSubmitted() error {
	if p.submitted {
		return ErrAlreadySubmitted
	}
	if p.stage != models.StageKnockoutComplete {
		return ErrBracketIncomplete
	}
	p.submitted = true
	p.recomputeStage()
	return nil
}

// Snapshot deep-copies the prediction into the versioned submission payload.
// Later mutations of the live prediction cannot affect the returned value.
func (p *Prediction) Snapshot() models.PredictionSnapshot {
	standings := make(map[models.GroupID][]string, len(p.standings))
	for g, s := range p.standings {
		order := make([]string, len(s.Order))
		copy(order, s.Order[:])
		standings[g] = order
	}

	snap := models.PredictionSnapshot{
		SchemaVersion:   models.SnapshotSchemaVersion,
		GroupStandings:  standings,
		ThirdPlacePicks: p.selection.TeamIDs(),
		KnockoutPicks:   map[string]string{},
	}
	if p.bracket != nil {
		snap.KnockoutPicks = p.bracket.Picks()
		snap.Champion = p.bracket.Champion()
		snap.RunnerUp = p.bracket.RunnerUp()
		snap.ThirdPlaceMatch = p.bracket.ThirdPlaceWinner()
	}
	return snap
}

// recomputeStage derives the completion stage from current state. Deriving
// instead of stepping keeps the stage consistent across the regressions the
// third-place toggle and upstream edits are allowed to cause.
func (p *Prediction) recomputeStage() {
	switch {
	case p.submitted:
		p.stage = models.StageSubmitted
	case p.bracket != nil && p.bracket.FinalDecided():
		p.stage = models.StageKnockoutComplete
	case p.bracket != nil:
		p.stage = models.StageKnockoutInProgress
	case p.allTouched() && p.selection.Complete():
		p.stage = models.StageThirdPlaceComplete
	case p.allTouched():
		p.stage = models.StageGroupStageComplete
	default:
		p.stage = models.StageGroupStageInProgress
	}
}

func (p *Prediction) allTouched() bool {
	return len(p.touched) == len(models.GroupIDs)
}
