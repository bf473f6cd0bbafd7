package models

// CompletionStage отражает прогресс заполнения прогноза и определяет,
// какие операции сейчас допустимы.
type CompletionStage string

const (
	StageGroupStageInProgress CompletionStage = "group_stage_in_progress"
	StageGroupStageComplete   CompletionStage = "group_stage_complete"
	StageThirdPlaceComplete   CompletionStage = "third_place_complete"
	StageKnockoutInProgress   CompletionStage = "knockout_in_progress"
	StageKnockoutComplete     CompletionStage = "knockout_complete"
	StageSubmitted            CompletionStage = "submitted"
)

var stageOrder = map[CompletionStage]int{
	StageGroupStageInProgress: 0,
	StageGroupStageComplete:   1,
	StageThirdPlaceComplete:   2,
	StageKnockoutInProgress:   3,
	StageKnockoutComplete:     4,
	StageSubmitted:            5,
}

func (s CompletionStage) String() string {
	return string(s)
}

// AtLeast reports whether the stage has reached the given gate.
func (s CompletionStage) AtLeast(gate CompletionStage) bool {
	return stageOrder[s] >= stageOrder[gate]
}
