package scoring

import (
	"math/rand"
	"testing"

	"github.com/Dosada05/prediction-game/models"
)

func testResults() FinalResults {
	return FinalResults{
		GroupStandings: map[models.GroupID][]string{
			models.GroupA: {"A1", "A2", "A3", "A4"},
			models.GroupB: {"B2", "B1", "B3", "B4"},
		},
		AdvancedThirds: []string{"A3", "B3"},
		MatchWinners:   map[string]string{"R32-1": "A1", "F": "A1"},
		Champion:       "A1",
		RunnerUp:       "B2",
	}
}

func TestScoreBreakdown(t *testing.T) {
	snap := models.PredictionSnapshot{
		GroupStandings: map[models.GroupID][]string{
			models.GroupA: {"A1", "A2", "A3", "A4"}, // all four correct
			models.GroupB: {"B1", "B2", "B3", "B4"}, // positions 3 and 4 correct
		},
		ThirdPlacePicks: []string{"A3", "C3"}, // one correct
		KnockoutPicks:   map[string]string{"R32-1": "A1", "F": "B2"},
		Champion:        "B2",
		RunnerUp:        "A1",
	}

	b := Score(snap, testResults())
	if b.GroupPoints != 6 {
		t.Errorf("group points = %d, want 6", b.GroupPoints)
	}
	if b.ThirdPlacePoints != 1 {
		t.Errorf("third place points = %d, want 1", b.ThirdPlacePoints)
	}
	if b.KnockoutPoints != 1 {
		t.Errorf("knockout points = %d, want 1", b.KnockoutPoints)
	}
	if b.ChampionPoints != 0 || b.CorrectChampion {
		t.Errorf("champion credited incorrectly: %+v", b)
	}
	if b.CorrectRunnerUp {
		t.Error("runner-up credited incorrectly")
	}
	if b.Total != 8 {
		t.Errorf("total = %d, want 8", b.Total)
	}
}

func TestScorePerfectChampion(t *testing.T) {
	snap := models.PredictionSnapshot{
		Champion: "A1",
		RunnerUp: "B2",
	}
	b := Score(snap, testResults())
	if b.ChampionPoints != 1 || !b.CorrectChampion || !b.CorrectRunnerUp {
		t.Errorf("champion scoring: %+v", b)
	}
}

func TestScoreEmptySnapshot(t *testing.T) {
	b := Score(models.PredictionSnapshot{}, testResults())
	if b.Total != 0 {
		t.Errorf("empty snapshot scored %d points", b.Total)
	}
	if b.CorrectChampion || b.CorrectRunnerUp {
		t.Error("empty snapshot credited with champion or runner-up")
	}
}

func TestRankOrdersByTotalThenTieBreaks(t *testing.T) {
	res := testResults()
	records := []models.SubmissionRecord{
		{ConfirmationID: "WC26-LOW", Snapshot: models.PredictionSnapshot{
			ThirdPlacePicks: []string{"A3"},
		}},
		{ConfirmationID: "WC26-CHAMP", Snapshot: models.PredictionSnapshot{
			Champion: "A1", // 1 point, champion tie-break
		}},
		{ConfirmationID: "WC26-RUNNER", Snapshot: models.PredictionSnapshot{
			ThirdPlacePicks: []string{"A3"},
			RunnerUp:        "B2", // 1 point, runner-up tie-break only
		}},
		{ConfirmationID: "WC26-TOP", Snapshot: models.PredictionSnapshot{
			ThirdPlacePicks: []string{"A3", "B3"},
		}},
	}

	entries := Rank(records, res, rand.New(rand.NewSource(1)))

	want := []string{"WC26-TOP", "WC26-CHAMP", "WC26-RUNNER", "WC26-LOW"}
	for i, id := range want {
		if entries[i].ConfirmationID != id {
			t.Fatalf("rank %d = %s, want %s (full order %v)", i, entries[i].ConfirmationID, id, entries)
		}
	}
}

func TestRankDrawIsReproducible(t *testing.T) {
	res := testResults()
	records := []models.SubmissionRecord{
		{ConfirmationID: "WC26-AAAAAA"},
		{ConfirmationID: "WC26-BBBBBB"},
		{ConfirmationID: "WC26-CCCCCC"},
	}

	first := Rank(records, res, rand.New(rand.NewSource(42)))
	second := Rank(records, res, rand.New(rand.NewSource(42)))
	for i := range first {
		if first[i].ConfirmationID != second[i].ConfirmationID {
			t.Fatalf("same seed produced different draws: %v vs %v", first, second)
		}
	}
}
