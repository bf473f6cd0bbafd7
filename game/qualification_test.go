package game

import (
	"reflect"
	"testing"

	"github.com/Dosada05/prediction-game/models"
)

func testStandings() map[models.GroupID]*StandingList {
	standings := make(map[models.GroupID]*StandingList, len(models.GroupIDs))
	for _, g := range models.GroupIDs {
		standings[g] = newStandingList(testGroup(g))
	}
	return standings
}

func TestDeriveQualificationDrawOrder(t *testing.T) {
	standings := testStandings()
	results := DeriveQualification(standings)

	if len(results) != len(models.GroupIDs) {
		t.Fatalf("got %d results, want %d", len(results), len(models.GroupIDs))
	}
	for i, q := range results {
		if q.Group != models.GroupIDs[i] {
			t.Errorf("result %d: group %s, want %s", i, q.Group, models.GroupIDs[i])
		}
		g := string(q.Group)
		if q.Winner != g+"1" || q.RunnerUp != g+"2" || q.ThirdPlace != g+"3" || q.Eliminated != g+"4" {
			t.Errorf("group %s: unexpected split %+v", q.Group, q)
		}
	}
}

func TestDeriveQualificationReflectsReorder(t *testing.T) {
	standings := testStandings()
	standings[models.GroupE].move(3, 0) // E4 to the top

	results := DeriveQualification(standings)
	for _, q := range results {
		if q.Group != models.GroupE {
			continue
		}
		if q.Winner != "E4" || q.RunnerUp != "E1" || q.ThirdPlace != "E2" || q.Eliminated != "E3" {
			t.Errorf("group E after move: %+v", q)
		}
		return
	}
	t.Fatal("group E missing from results")
}

func TestDeriveQualificationIsPure(t *testing.T) {
	standings := testStandings()
	first := DeriveQualification(standings)
	second := DeriveQualification(standings)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated derivation over unchanged standings differs")
	}
}
