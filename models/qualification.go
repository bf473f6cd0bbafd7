package models

// QualificationResult - производный итог группы по текущему StandingList.
// Derived on demand, never stored: position 0 wins the group, 1 is the
// runner-up, 2 joins the third-place pool, 3 is eliminated.
type QualificationResult struct {
	Group      GroupID `json:"group"`
	Winner     string  `json:"winner"`
	RunnerUp   string  `json:"runner_up"`
	ThirdPlace string  `json:"third_place"`
	Eliminated string  `json:"eliminated"`
}
