// Package scoring implements the post-tournament scoring contract: one point
// per correct discrete prediction, with a fixed tie-break order for ranking
// entries. The live results feed is an external concern - callers supply a
// FinalResults they obtained elsewhere.
package scoring

import (
	"math/rand"
	"sort"

	"github.com/Dosada05/prediction-game/models"
)

// FinalResults captures the real tournament outcome in the same vocabulary
// as a prediction snapshot.
type FinalResults struct {
	GroupStandings map[models.GroupID][]string // actual finishing order, 4 per group
	AdvancedThirds []string                    // the 8 third-place teams that advanced
	MatchWinners   map[string]string           // bracket match id → actual winner
	Champion       string
	RunnerUp       string
}

// Breakdown itemizes an entry's points.
type Breakdown struct {
	GroupPoints      int `json:"group_points"`       // one per correct group position
	ThirdPlacePoints int `json:"third_place_points"` // one per correctly included third
	KnockoutPoints   int `json:"knockout_points"`    // one per correct match winner
	ChampionPoints   int `json:"champion_points"`    // one for the correct champion
	Total            int `json:"total"`

	CorrectChampion bool `json:"correct_champion"`
	CorrectRunnerUp bool `json:"correct_runner_up"`
}

// Score applies the point rule to a single snapshot.
func Score(snap models.PredictionSnapshot, res FinalResults) Breakdown {
	var b Breakdown

	for g, actual := range res.GroupStandings {
		predicted := snap.GroupStandings[g]
		for i := 0; i < len(actual) && i < len(predicted); i++ {
			if predicted[i] == actual[i] {
				b.GroupPoints++
			}
		}
	}

	advanced := make(map[string]bool, len(res.AdvancedThirds))
	for _, id := range res.AdvancedThirds {
		advanced[id] = true
	}
	for _, id := range snap.ThirdPlacePicks {
		if advanced[id] {
			b.ThirdPlacePoints++
		}
	}

	for matchID, winner := range res.MatchWinners {
		if snap.KnockoutPicks[matchID] == winner {
			b.KnockoutPoints++
		}
	}

	if snap.Champion != "" && snap.Champion == res.Champion {
		b.ChampionPoints = 1
		b.CorrectChampion = true
	}
	b.CorrectRunnerUp = snap.RunnerUp != "" && snap.RunnerUp == res.RunnerUp

	b.Total = b.GroupPoints + b.ThirdPlacePoints + b.KnockoutPoints + b.ChampionPoints
	return b
}

// Entry pairs a stored submission with its computed breakdown.
type Entry struct {
	ConfirmationID string    `json:"confirmation_id"`
	Breakdown      Breakdown `json:"breakdown"`
}

// Rank orders entries by total points; ties break by correct champion pick,
// then correct runner-up pick, then a uniform random draw. The rng is
// injected so a draw can be reproduced from a published seed.
func Rank(records []models.SubmissionRecord, res FinalResults, rng *rand.Rand) []Entry {
	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{ConfirmationID: r.ConfirmationID, Breakdown: Score(r.Snapshot, res)}
	}

	// Random draw tickets assigned up front so sorting stays consistent.
	tickets := make(map[string]int, len(entries))
	order := rng.Perm(len(entries))
	for i, e := range entries {
		tickets[e.ConfirmationID] = order[i]
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Breakdown, entries[j].Breakdown
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		if a.CorrectChampion != b.CorrectChampion {
			return a.CorrectChampion
		}
		if a.CorrectRunnerUp != b.CorrectRunnerUp {
			return a.CorrectRunnerUp
		}
		return tickets[entries[i].ConfirmationID] < tickets[entries[j].ConfirmationID]
	})
	return entries
}
