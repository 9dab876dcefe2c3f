package replay

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Frags is a kill count that may be missing from the capture. Players who
// disconnected before the battle ended have no frag entry at all, which is a
// different fact than zero kills, so absence is carried explicitly instead
// of being folded into 0.
type Frags struct {
	Count int
	Known bool
}

// BattlePlayer is one participant in the battle, both teams combined. The
// roster object holds identity and vehicle fields; the kill count comes from
// a separate frags object matched by account id.
type BattlePlayer struct {
	ID                        int64  `json:"-"`
	FakeName                  string `json:"fakeName"`
	Team                      int    `json:"team"`
	ClanTag                   string `json:"clanAbbrev"`
	VehicleType               string `json:"vehicleType"`
	VehicleNation             string `json:"-"`
	VehicleTag                string `json:"-"`
	IsAlive                   Flag   `json:"isAlive"`
	ForbidInBattleInvitations Flag   `json:"forbidInBattleInvitations"`
	IGRType                   int    `json:"igrType"`
	IsTeamKiller              Flag   `json:"isTeamKiller"`
	Name                      string `json:"name"`
	Frags                     Frags  `json:"-"`
}

// buildPlayers assembles the roster, ordered by account id so repeated
// parses of the same file produce identical slices.
func buildPlayers(roster, frags map[string]any) ([]BattlePlayer, error) {
	ids := make([]string, 0, len(roster))
	for id := range roster {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		ai, _ := strconv.ParseInt(a, 10, 64)
		bi, _ := strconv.ParseInt(b, 10, 64)
		return cmp.Compare(ai, bi)
	})

	players := make([]BattlePlayer, 0, len(ids))
	for _, id := range ids {
		sub, ok := roster[id].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("decode roster entry %s: unexpected shape", id)
		}

		var p BattlePlayer
		if err := decodeInto(sub, &p); err != nil {
			return nil, fmt.Errorf("decode roster entry %s: %w", id, err)
		}

		accountID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("decode roster entry %s: %w", id, err)
		}
		p.ID = accountID
		p.VehicleNation, p.VehicleTag = splitVehicleType(p.VehicleType)
		p.Frags = lookupFrags(frags, id)
		players = append(players, p)
	}
	return players, nil
}

// splitVehicleType splits the colon-delimited vehicle type, e.g.
// "germany:something:E-100" into nation "germany" and tag "E-100".
func splitVehicleType(s string) (nation, tag string) {
	if s == "" {
		return "", ""
	}
	parts := strings.Split(s, ":")
	return parts[0], parts[len(parts)-1]
}

func lookupFrags(frags map[string]any, id string) Frags {
	entry, ok := frags[id].(map[string]any)
	if !ok {
		return Frags{}
	}
	n, ok := entry["frags"].(float64)
	if !ok {
		return Frags{}
	}
	return Frags{Count: int(n), Known: true}
}
