package domain

import (
	"time"
)

// Replay is the stored summary of one parsed capture, keyed by nanoid.
type Replay struct {
	ID             string
	FileName       string
	PlayerName     string
	AccountID      int64
	VehicleTag     string
	VehicleNation  string
	MapName        string
	MapDisplayName string
	Region         string
	BattleType     string
	GameMode       string
	Team           int
	WinnerTeam     int
	Won            bool
	Kills          int
	DamageDealt    int
	Spotted        int
	XP             int
	Credits        int
	Duration       int
	RecordedAt     time.Time
	UploadedAt     time.Time
}

// ReplayParticipant is one roster entry of a stored replay. KillsKnown is
// false when the capture carried no frag entry for the player.
type ReplayParticipant struct {
	ReplayID      string
	AccountID     int64
	Name          string
	ClanTag       string
	Team          int
	VehicleTag    string
	VehicleNation string
	IsAlive       bool
	Kills         int
	KillsKnown    bool
}

// PlayerStats is the aggregated Wargaming-API view of an account, cached in
// SQLite with a TTL.
type PlayerStats struct {
	Nickname     string    `json:"nickname"`
	AccountID    int64     `json:"account_id"`
	ClanTag      string    `json:"clan_tag,omitempty"`
	Battles      int       `json:"battles"`
	Wins         int       `json:"wins"`
	Losses       int       `json:"losses"`
	WinRate      float64   `json:"win_rate"`
	AvgDamage    float64   `json:"avg_damage"`
	AvgXP        float64   `json:"avg_xp"`
	MaxFrags     int       `json:"max_frags"`
	TanksPlayed  int       `json:"tanks_played"`
	GlobalRating int       `json:"global_rating"`
	LastBattleAt time.Time `json:"last_battle_at"`
	FetchedAt    time.Time `json:"fetched_at"`
	Source       string    `json:"source"` // "cache" or "live"
}
