package game

import "github.com/Dosada05/prediction-game/models"

// DeriveQualification читает текущие StandingList и возвращает итоги
// квалификации по всем группам в порядке жеребьёвки.
//
// Pure and stateless: safe to discard and recompute after every mutation,
// so the result can never drift from the standings. Ties do not exist - the
// ranking is a total order imposed by the user, not computed from points.
func DeriveQualification(standings map[models.GroupID]*StandingList) []models.QualificationResult {
	results := make([]models.QualificationResult, 0, len(models.GroupIDs))
	for _, g := range models.GroupIDs {
		s, ok := standings[g]
		if !ok {
			continue
		}
		results = append(results, models.QualificationResult{
			Group:      g,
			Winner:     s.Order[0],
			RunnerUp:   s.Order[1],
			ThirdPlace: s.Order[2],
			Eliminated: s.Order[3],
		})
	}
	return results
}
