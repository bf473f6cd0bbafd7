package catalog

import (
	"fmt"

	"github.com/Dosada05/prediction-game/models"
)

// Catalog - справочник команд и групп жеребьёвки. Загружается один раз
// при старте и далее только читается.
type Catalog struct {
	teams  map[string]models.Team
	order  []string
	groups []models.Group
}

// Load builds the catalog from the embedded draw data and validates it:
// 48 unique teams, 12 groups of 4, every group member present in the team
// list and no team drawn twice.
func Load() (*Catalog, error) {
	c := &Catalog{teams: make(map[string]models.Team, len(seedTeams))}

	for _, t := range seedTeams {
		if t.ID == "" || t.Name == "" {
			return nil, fmt.Errorf("catalog: team with empty id or name")
		}
		if _, dup := c.teams[t.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate team id %q", t.ID)
		}
		c.teams[t.ID] = t
		c.order = append(c.order, t.ID)
	}
	if len(c.teams) != len(models.GroupIDs)*models.TeamsPerGroup {
		return nil, fmt.Errorf("catalog: expected %d teams, got %d", len(models.GroupIDs)*models.TeamsPerGroup, len(c.teams))
	}

	drawn := make(map[string]models.GroupID)
	for _, g := range seedGroups {
		if !g.ID.Valid() {
			return nil, fmt.Errorf("catalog: invalid group id %q", g.ID)
		}
		for _, teamID := range g.TeamIDs {
			if _, ok := c.teams[teamID]; !ok {
				return nil, fmt.Errorf("catalog: group %s references unknown team %q", g.ID, teamID)
			}
			if prev, dup := drawn[teamID]; dup {
				return nil, fmt.Errorf("catalog: team %q drawn into both group %s and %s", teamID, prev, g.ID)
			}
			drawn[teamID] = g.ID
		}
		c.groups = append(c.groups, g)
	}
	if len(c.groups) != len(models.GroupIDs) {
		return nil, fmt.Errorf("catalog: expected %d groups, got %d", len(models.GroupIDs), len(c.groups))
	}

	return c, nil
}

// Team returns the team with the given id.
func (c *Catalog) Team(id string) (models.Team, bool) {
	t, ok := c.teams[id]
	return t, ok
}

// Teams returns all teams in catalog order.
func (c *Catalog) Teams() []models.Team {
	out := make([]models.Team, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.teams[id])
	}
	return out
}

// Groups returns the twelve draw groups in order.
func (c *Catalog) Groups() []models.Group {
	out := make([]models.Group, len(c.groups))
	copy(out, c.groups)
	return out
}
