package replay

import (
	"strings"
	"time"
)

// BattleMetadata identifies the battle a capture records: who played it,
// where, on which client and server. The arena-level fields live in the
// first battle-data object rather than the metadata object, so a Battle is
// assembled from both sources.
type BattleMetadata struct {
	DateTime         string    `json:"dateTime"`
	PlayerVehicle    string    `json:"playerVehicle"`
	ClientVersionXML string    `json:"clientVersionFromXml"`
	ClientVersionExe string    `json:"clientVersionFromExe"`
	RegionCode       string    `json:"regionCode"`
	PlayerID         AccountID `json:"playerID"`
	ServerName       string    `json:"serverName"`
	MapDisplayName   string    `json:"mapDisplayName"`
	MapName          string    `json:"mapName"`
	GameplayID       string    `json:"gameplayID"`
	BattleTypeID     int       `json:"battleType"`
	HasMods          Flag      `json:"hasMods"`
	PlayerName       string    `json:"playerName"`

	// Arena comes from the "common" map of the first battle-data object.
	Arena ArenaInfo `json:"-"`

	// Derived from the raw fields above.
	RecordedAt    time.Time `json:"-"`
	VehicleNation string    `json:"-"`
	VehicleTag    string    `json:"-"`
	Version       string    `json:"-"`
}

// ArenaInfo carries the arena-level fields recorded alongside the battle
// result.
type ArenaInfo struct {
	Division            int     `json:"division"`
	GUIType             int     `json:"guiType"`
	ArenaCreateTime     int64   `json:"arenaCreateTime"`
	Duration            int     `json:"duration"`
	ArenaTypeID         int     `json:"arenaTypeID"`
	GasAttackWinnerTeam int     `json:"gasAttackWinnerTeam"`
	WinnerTeam          int     `json:"winnerTeam"`
	VehLockMode         int     `json:"vehLockMode"`
	BonusType           int     `json:"bonusType"`
	TeamHealth          []int   `json:"teamHealth"`
	FinishReason        int     `json:"finishReason"`
	ArenaTimeLeft       float64 `json:"arenaTimeLeft"`
}

func (m BattleMetadata) BattleType() BattleType {
	return BattleType(m.BattleTypeID)
}

func (m BattleMetadata) GameMode() GameMode {
	return GameMode(m.GameplayID)
}

func (m *BattleMetadata) derive() {
	m.VehicleNation, m.VehicleTag = splitPlayerVehicle(m.PlayerVehicle)
	m.Version = clientVersion(m.ClientVersionXML)
	m.RecordedAt = parseReplayTime(m.DateTime)
}

// splitPlayerVehicle splits "ussr-R97_Object_257" into nation and tank tag.
func splitPlayerVehicle(s string) (nation, tag string) {
	nation, tag, _ = strings.Cut(s, "-")
	return nation, tag
}

// clientVersion extracts "1.19.0.1" from strings like
// "WorldofTanksv.1.19.0.1#1234".
func clientVersion(raw string) string {
	version, _, _ := strings.Cut(raw, "#")
	if _, after, ok := strings.Cut(version, "v."); ok {
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(version)
}

// The printable filter drops the space the client writes between date and
// time, but captures produced by some launchers keep it.
var replayTimeLayouts = []string{
	"02.01.200615:04:05",
	"02.01.2006 15:04:05",
}

// parseReplayTime parses the capture timestamp. An unparseable value leaves
// the zero time; the raw DateTime string stays recoverable on the record.
func parseReplayTime(s string) time.Time {
	for _, layout := range replayTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
