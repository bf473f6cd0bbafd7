package models

// GroupID - одна из 12 букв группового этапа.
type GroupID string

const (
	GroupA GroupID = "A"
	GroupB GroupID = "B"
	GroupC GroupID = "C"
	GroupD GroupID = "D"
	GroupE GroupID = "E"
	GroupF GroupID = "F"
	GroupG GroupID = "G"
	GroupH GroupID = "H"
	GroupI GroupID = "I"
	GroupJ GroupID = "J"
	GroupK GroupID = "K"
	GroupL GroupID = "L"
)

// GroupIDs lists the twelve groups in draw order.
var GroupIDs = []GroupID{
	GroupA, GroupB, GroupC, GroupD, GroupE, GroupF,
	GroupG, GroupH, GroupI, GroupJ, GroupK, GroupL,
}

const TeamsPerGroup = 4

func (g GroupID) Valid() bool {
	return len(g) == 1 && g[0] >= 'A' && g[0] <= 'L'
}

// Group представляет группу жеребьёвки: 4 команды в посевном порядке.
// Неизменяема после загрузки каталога; пользовательский порядок живёт в StandingList.
type Group struct {
	ID      GroupID   `json:"id"`
	TeamIDs [4]string `json:"team_ids"` // seed order from the draw
}

func (g *Group) Contains(teamID string) bool {
	for _, id := range g.TeamIDs {
		if id == teamID {
			return true
		}
	}
	return false
}
