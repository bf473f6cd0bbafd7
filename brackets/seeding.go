package brackets

import (
	"sort"

	"github.com/Dosada05/prediction-game/models"
)

// Seed строит сетку по фиксированному шаблону: 24 автоматических
// квалификанта занимают свои слоты напрямую, 8 выбранных третьих мест
// распределяются по третьим слотам с учётом ограничений комбинации.
//
// Which branch of the assignment applies depends on which eight third-place
// teams actually advanced, so the slot allocation is solved per selection
// rather than read from a single static row.
func Seed(qual []models.QualificationResult, selectedThirds []string) (*Bracket, error) {
	if len(qual) != len(models.GroupIDs) || len(selectedThirds) != ThirdPlaceQuota {
		return nil, ErrSeedCount
	}

	byGroup := make(map[models.GroupID]models.QualificationResult, len(qual))
	thirdGroup := make(map[string]models.GroupID, len(qual)) // third-place team id → its group
	for _, q := range qual {
		byGroup[q.Group] = q
		thirdGroup[q.ThirdPlace] = q.Group
	}
	if len(byGroup) != len(models.GroupIDs) {
		return nil, ErrSeedCount
	}

	selected := make(map[models.GroupID]string, len(selectedThirds))
	for _, teamID := range selectedThirds {
		g, ok := thirdGroup[teamID]
		if !ok {
			return nil, ErrThirdNotCandidate
		}
		selected[g] = teamID
	}
	if len(selected) != ThirdPlaceQuota {
		// Duplicate selections collapse in the map; reject them here.
		return nil, ErrSeedCount
	}

	slots, err := assignThirdSlots(selected)
	if err != nil {
		return nil, err
	}

	b := newBracket()
	for _, tpl := range roundOf32Template {
		m := b.matches[tpl.id]
		m.Home = resolveSource(byGroup, slots, tpl.home)
		m.Away = resolveSource(byGroup, slots, tpl.away)
	}
	return b, nil
}

// ThirdPlaceQuota is the number of third-place finishers that advance.
const ThirdPlaceQuota = 8

func resolveSource(qual map[models.GroupID]models.QualificationResult, thirds [8]string, src slotSource) string {
	if src.kind == srcThird {
		return thirds[src.third]
	}
	return leafSources(qual, src)
}

// assignThirdSlots maps the eight advanced third-place teams onto the eight
// template slots. The strict pass forbids a third both its direct opponent's
// group and the groups feeding the paired match; if the selected combination
// admits no such assignment, the direct-opponent constraint alone is applied,
// which is always satisfiable for eight distinct groups.
func assignThirdSlots(selected map[models.GroupID]string) ([8]string, error) {
	groups := make([]models.GroupID, 0, len(selected))
	for g := range selected {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })

	if out, ok := solveSlots(groups, selected, thirdSlotExclusions[:]); ok {
		return out, nil
	}

	relaxed := make([][]models.GroupID, len(thirdSlotOpponent))
	for i, g := range thirdSlotOpponent {
		relaxed[i] = []models.GroupID{g}
	}
	if out, ok := solveSlots(groups, selected, relaxed); ok {
		return out, nil
	}
	return [8]string{}, ErrThirdAssignment
}

// solveSlots backtracks slot by slot, trying candidate groups in letter order
// so the resulting assignment is deterministic for a given selection.
func solveSlots(groups []models.GroupID, selected map[models.GroupID]string, exclusions [][]models.GroupID) ([8]string, bool) {
	var out [8]string
	used := make(map[models.GroupID]bool, len(groups))

	var fill func(slot int) bool
	fill = func(slot int) bool {
		if slot == len(out) {
			return true
		}
		for _, g := range groups {
			if used[g] || excluded(exclusions[slot], g) {
				continue
			}
			used[g] = true
			out[slot] = selected[g]
			if fill(slot + 1) {
				return true
			}
			used[g] = false
			out[slot] = ""
		}
		return false
	}

	if !fill(0) {
		return out, false
	}
	return out, true
}

func excluded(list []models.GroupID, g models.GroupID) bool {
	for _, e := range list {
		if e == g {
			return true
		}
	}
	return false
}
