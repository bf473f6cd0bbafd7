package brackets

import "github.com/Dosada05/prediction-game/models"

// Фиксированный шаблон сетки плей-офф: 32 слота Round of 32, далее
// победители сходятся по заранее известной схеме до финала.
//
// The template is a lookup assignment, not an ad-hoc computation: every leaf
// slot names the group position it draws from. Winner and runner-up of the
// same group land in opposite halves so a group rematch is impossible before
// the final. The eight third-place leaf slots are resolved separately, see
// seeding.go, because which teams fill them depends on which combination of
// third-place finishers the user advanced.

type sourceKind int

const (
	srcWinner sourceKind = iota
	srcRunnerUp
	srcThird
)

type slotSource struct {
	kind  sourceKind
	group models.GroupID // for srcWinner / srcRunnerUp
	third int            // third-slot index 0..7 for srcThird
}

type matchTemplate struct {
	id         string
	home, away slotSource
}

func winnerOf(g models.GroupID) slotSource   { return slotSource{kind: srcWinner, group: g} }
func runnerUpOf(g models.GroupID) slotSource { return slotSource{kind: srcRunnerUp, group: g} }
func thirdSlot(i int) slotSource             { return slotSource{kind: srcThird, third: i} }

// roundOf32Template lists the 16 opening matches in bracket order.
// Consecutive pairs feed the same Round of 16 match.
var roundOf32Template = []matchTemplate{
	{id: "R32-1", home: winnerOf(models.GroupA), away: thirdSlot(0)},
	{id: "R32-2", home: runnerUpOf(models.GroupD), away: runnerUpOf(models.GroupF)},
	{id: "R32-3", home: winnerOf(models.GroupE), away: thirdSlot(1)},
	{id: "R32-4", home: winnerOf(models.GroupG), away: runnerUpOf(models.GroupB)},
	{id: "R32-5", home: winnerOf(models.GroupI), away: thirdSlot(2)},
	{id: "R32-6", home: runnerUpOf(models.GroupH), away: runnerUpOf(models.GroupJ)},
	{id: "R32-7", home: winnerOf(models.GroupK), away: thirdSlot(3)},
	{id: "R32-8", home: winnerOf(models.GroupC), away: runnerUpOf(models.GroupL)},
	{id: "R32-9", home: winnerOf(models.GroupB), away: thirdSlot(4)},
	{id: "R32-10", home: runnerUpOf(models.GroupC), away: runnerUpOf(models.GroupE)},
	{id: "R32-11", home: winnerOf(models.GroupF), away: thirdSlot(5)},
	{id: "R32-12", home: winnerOf(models.GroupH), away: runnerUpOf(models.GroupA)},
	{id: "R32-13", home: winnerOf(models.GroupJ), away: thirdSlot(6)},
	{id: "R32-14", home: runnerUpOf(models.GroupG), away: runnerUpOf(models.GroupI)},
	{id: "R32-15", home: winnerOf(models.GroupL), away: thirdSlot(7)},
	{id: "R32-16", home: winnerOf(models.GroupD), away: runnerUpOf(models.GroupK)},
}

// thirdSlotOpponent names the group whose winner each third-place slot faces.
var thirdSlotOpponent = [8]models.GroupID{
	models.GroupA, models.GroupE, models.GroupI, models.GroupK,
	models.GroupB, models.GroupF, models.GroupJ, models.GroupL,
}

// thirdSlotExclusions holds, per third-place slot, the groups whose third
// cannot be drawn there: the direct opponent's group plus the two groups
// feeding the paired Round of 32 match. The latter keeps a same-group rematch
// out of the Round of 16.
var thirdSlotExclusions = [8][]models.GroupID{
	{models.GroupA, models.GroupD, models.GroupF},
	{models.GroupE, models.GroupG, models.GroupB},
	{models.GroupI, models.GroupH, models.GroupJ},
	{models.GroupK, models.GroupC, models.GroupL},
	{models.GroupB, models.GroupC, models.GroupE},
	{models.GroupF, models.GroupH, models.GroupA},
	{models.GroupJ, models.GroupG, models.GroupI},
	{models.GroupL, models.GroupD, models.GroupK},
}
