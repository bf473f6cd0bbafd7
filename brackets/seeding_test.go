package brackets

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Dosada05/prediction-game/models"
)

func testQualification() []models.QualificationResult {
	out := make([]models.QualificationResult, 0, len(models.GroupIDs))
	for _, g := range models.GroupIDs {
		s := string(g)
		out = append(out, models.QualificationResult{
			Group:      g,
			Winner:     s + "1",
			RunnerUp:   s + "2",
			ThirdPlace: s + "3",
			Eliminated: s + "4",
		})
	}
	return out
}

func defaultThirds() []string {
	return []string{"A3", "B3", "C3", "D3", "E3", "F3", "G3", "H3"}
}

func groupOf(teamID string) models.GroupID {
	return models.GroupID(teamID[:1])
}

func TestSeedFillsAllOpeningSlots(t *testing.T) {
	b, err := Seed(testQualification(), defaultThirds())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	seen := make(map[string]bool)
	for _, m := range b.Matches() {
		if m.Round != RoundOf32 {
			continue
		}
		if m.Home == "" || m.Away == "" {
			t.Errorf("%s has an empty slot: %q vs %q", m.ID, m.Home, m.Away)
		}
		if seen[m.Home] || seen[m.Away] {
			t.Errorf("%s reuses a team: %q vs %q", m.ID, m.Home, m.Away)
		}
		seen[m.Home], seen[m.Away] = true, true
	}
	if len(seen) != 32 {
		t.Errorf("seeded %d distinct teams, want 32", len(seen))
	}

	// Eliminated fourth-place teams never enter the bracket.
	for id := range seen {
		if id[1] == '4' {
			t.Errorf("eliminated team %s was seeded", id)
		}
	}
}

func TestSeedAvoidsGroupRematches(t *testing.T) {
	b, err := Seed(testQualification(), defaultThirds())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	for _, m := range b.Matches() {
		if m.Round != RoundOf32 {
			continue
		}
		if groupOf(m.Home) == groupOf(m.Away) {
			t.Errorf("%s pairs two teams of group %s", m.ID, groupOf(m.Home))
		}
	}
}

func TestSeedThirdSlotAssignmentDeterministic(t *testing.T) {
	want := map[string]string{
		"R32-1":  "B3",
		"R32-3":  "A3",
		"R32-5":  "C3",
		"R32-7":  "D3",
		"R32-9":  "F3",
		"R32-11": "E3",
		"R32-13": "H3",
		"R32-15": "G3",
	}

	first, err := Seed(testQualification(), defaultThirds())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	for id, third := range want {
		m, ok := first.Match(id)
		if !ok {
			t.Fatalf("missing match %s", id)
		}
		if m.Away != third {
			t.Errorf("%s away = %s, want %s", id, m.Away, third)
		}
	}

	second, err := Seed(testQualification(), defaultThirds())
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if !reflect.DeepEqual(first.Matches(), second.Matches()) {
		t.Error("seeding the same selection twice produced different brackets")
	}
}

func TestSeedHonorsSlotExclusions(t *testing.T) {
	b, err := Seed(testQualification(), defaultThirds())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	for _, tpl := range roundOf32Template {
		if tpl.away.kind != srcThird {
			continue
		}
		m, _ := b.Match(tpl.id)
		g := groupOf(m.Away)
		for _, ex := range thirdSlotExclusions[tpl.away.third] {
			if g == ex {
				t.Errorf("%s drew third of excluded group %s", tpl.id, g)
			}
		}
	}
}

func TestSeedRejectsBadInput(t *testing.T) {
	qual := testQualification()

	if _, err := Seed(qual[:11], defaultThirds()); !errors.Is(err, ErrSeedCount) {
		t.Errorf("short qualification: got %v", err)
	}
	if _, err := Seed(qual, defaultThirds()[:7]); !errors.Is(err, ErrSeedCount) {
		t.Errorf("seven thirds: got %v", err)
	}

	dup := defaultThirds()
	dup[7] = "A3"
	if _, err := Seed(qual, dup); !errors.Is(err, ErrSeedCount) {
		t.Errorf("duplicate third: got %v", err)
	}

	notThird := defaultThirds()
	notThird[0] = "A1" // group winner, not a third-place finisher
	if _, err := Seed(qual, notThird); !errors.Is(err, ErrThirdNotCandidate) {
		t.Errorf("non-candidate third: got %v", err)
	}
}

func TestSeedAlternativeSelections(t *testing.T) {
	qual := testQualification()

	// Every contiguous window of eight groups must admit an assignment.
	thirdsByGroup := make([]string, 0, len(models.GroupIDs))
	for _, g := range models.GroupIDs {
		thirdsByGroup = append(thirdsByGroup, string(g)+"3")
	}
	for start := 0; start+8 <= len(thirdsByGroup); start++ {
		selection := thirdsByGroup[start : start+8]
		b, err := Seed(qual, selection)
		if err != nil {
			t.Fatalf("Seed(%v): %v", selection, err)
		}
		for _, m := range b.Matches() {
			if m.Round == RoundOf32 && groupOf(m.Home) == groupOf(m.Away) {
				t.Errorf("selection %v: %s pairs group %s against itself", selection, m.ID, groupOf(m.Home))
			}
		}
	}
}
