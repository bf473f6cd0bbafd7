package game

import (
	"sort"

	"github.com/Dosada05/prediction-game/brackets"
)

// ThirdPlaceSelection - выбранное пользователем подмножество третьих мест.
// At most brackets.ThirdPlaceQuota members; the 9th add is rejected at the
// mutation boundary, never silently truncated.
type ThirdPlaceSelection struct {
	picked map[string]bool
}

func newThirdPlaceSelection() *ThirdPlaceSelection {
	return &ThirdPlaceSelection{picked: make(map[string]bool)}
}

func (s *ThirdPlaceSelection) Size() int { return len(s.picked) }

func (s *ThirdPlaceSelection) Has(teamID string) bool { return s.picked[teamID] }

func (s *ThirdPlaceSelection) Complete() bool {
	return len(s.picked) == brackets.ThirdPlaceQuota
}

// TeamIDs returns the selected ids sorted for stable output.
func (s *ThirdPlaceSelection) TeamIDs() []string {
	ids := make([]string, 0, len(s.picked))
	for id := range s.picked {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *ThirdPlaceSelection) add(teamID string) error {
	if len(s.picked) >= brackets.ThirdPlaceQuota {
		return ErrSelectionFull
	}
	s.picked[teamID] = true
	return nil
}

func (s *ThirdPlaceSelection) remove(teamID string) {
	delete(s.picked, teamID)
}

// retain drops every selected id not present in keep and reports whether
// anything was dropped. Used when a reorder changes the candidate pool.
func (s *ThirdPlaceSelection) retain(keep map[string]bool) bool {
	dropped := false
	for id := range s.picked {
		if !keep[id] {
			delete(s.picked, id)
			dropped = true
		}
	}
	return dropped
}

func (s *ThirdPlaceSelection) clone() *ThirdPlaceSelection {
	c := newThirdPlaceSelection()
	for id := range s.picked {
		c.picked[id] = true
	}
	return c
}
