package replay

import "strconv"

// BattleType is the queue a battle was fought in, as coded by the game
// client. The raw code is the underlying int and stays recoverable for
// values no release of this package knows about yet.
type BattleType int

var battleTypeNames = map[BattleType]string{
	1:    "regular",
	2:    "training room",
	3:    "tank company",
	4:    "tournament",
	5:    "global map",
	6:    "tutorial",
	7:    "team battle",
	8:    "historical battle",
	9:    "fun events",
	10:   "skirmish",
	11:   "stronghold",
	12:   "ladder",
	13:   "global map",
	14:   "tournament",
	16:   "proving ground",
	17:   "proving ground",
	22:   "ranked",
	24:   "grand battle",
	27:   "front line",
	1001: "bots",
	1009: "last stand",
}

// Known reports whether the code maps to a named battle type.
func (b BattleType) Known() bool {
	_, ok := battleTypeNames[b]
	return ok
}

func (b BattleType) String() string {
	if name, ok := battleTypeNames[b]; ok {
		return name
	}
	return "unknown (" + strconv.Itoa(int(b)) + ")"
}

// GameMode is the gameplay id from the metadata object. Unrecognized ids
// render as themselves.
type GameMode string

var gameModeNames = map[GameMode]string{
	"ctf": "capture the flag",
}

func (m GameMode) Known() bool {
	_, ok := gameModeNames[m]
	return ok
}

func (m GameMode) String() string {
	if name, ok := gameModeNames[m]; ok {
		return name
	}
	return string(m)
}
