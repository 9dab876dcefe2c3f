package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"wot-tracker/internal/config"
	"wot-tracker/internal/database"
	"wot-tracker/internal/domain"

	"github.com/rs/zerolog"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}
	db, err := database.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("database.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testReplay() *domain.Replay {
	return &domain.Replay{
		FileName:       "battle.wotreplay",
		PlayerName:     "branko",
		AccountID:      501234567,
		VehicleTag:     "G58_E100",
		VehicleNation:  "germany",
		MapName:        "35_prohorovka",
		MapDisplayName: "Prokhorovka",
		Region:         "EU",
		BattleType:     "regular",
		GameMode:       "capture the flag",
		Team:           1,
		WinnerTeam:     1,
		Won:            true,
		Kills:          3,
		DamageDealt:    2400,
		Spotted:        2,
		XP:             1100,
		Credits:        40000,
		Duration:       420,
		RecordedAt:     time.Date(2022, 1, 1, 10, 0, 0, 0, time.UTC),
		UploadedAt:     time.Now().UTC(),
	}
}

func TestReplayInsertAndGet(t *testing.T) {
	repo := NewReplayRepository(testDB(t), zerolog.Nop())
	ctx := context.Background()

	participants := []domain.ReplayParticipant{
		{AccountID: 501234567, Name: "branko", ClanTag: "ABC", Team: 1,
			VehicleTag: "E-100", VehicleNation: "germany", IsAlive: true, Kills: 3, KillsKnown: true},
		{AccountID: 502000000, Name: "enemy", Team: 2,
			VehicleTag: "R97_Object_257", VehicleNation: "ussr"},
	}

	id, err := repo.Insert(ctx, testReplay(), participants)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id == "" {
		t.Fatal("Insert returned an empty id")
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.PlayerName != "branko" || got.Kills != 3 || !got.Won {
		t.Errorf("stored replay = %+v", got)
	}
	if !got.RecordedAt.Equal(time.Date(2022, 1, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("RecordedAt = %v", got.RecordedAt)
	}

	stored, err := repo.Participants(ctx, id)
	if err != nil {
		t.Fatalf("Participants: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("got %d participants, want 2", len(stored))
	}
	if !stored[0].KillsKnown || stored[0].Kills != 3 {
		t.Errorf("owner participant = %+v", stored[0])
	}
	// The missing frag entry must come back as unknown, not as zero.
	if stored[1].KillsKnown {
		t.Errorf("enemy participant = %+v, want unknown kills", stored[1])
	}
}

func TestReplayGetMissing(t *testing.T) {
	repo := NewReplayRepository(testDB(t), zerolog.Nop())
	if _, err := repo.Get(context.Background(), "no-such-id"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestReplayListRecent(t *testing.T) {
	repo := NewReplayRepository(testDB(t), zerolog.Nop())
	ctx := context.Background()

	first := testReplay()
	first.UploadedAt = time.Now().UTC().Add(-time.Hour)
	if _, err := repo.Insert(ctx, first, nil); err != nil {
		t.Fatal(err)
	}
	second := testReplay()
	second.PlayerName = "someone_else"
	if _, err := repo.Insert(ctx, second, nil); err != nil {
		t.Fatal(err)
	}

	replays, err := repo.ListRecent(ctx, "", 0)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(replays) != 2 {
		t.Fatalf("got %d replays, want 2", len(replays))
	}
	if replays[0].PlayerName != "someone_else" {
		t.Errorf("newest first, got %q", replays[0].PlayerName)
	}

	filtered, err := repo.ListRecent(ctx, "branko", 0)
	if err != nil {
		t.Fatalf("ListRecent filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].PlayerName != "branko" {
		t.Errorf("filtered = %+v", filtered)
	}
}

func TestAccountCache(t *testing.T) {
	cache := NewAccountCacheRepository(testDB(t), zerolog.Nop())
	ctx := context.Background()

	refresh, err := cache.ShouldRefresh(ctx, "branko", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if !refresh {
		t.Error("empty cache should require a refresh")
	}

	stats := &domain.PlayerStats{
		Nickname:  "branko",
		AccountID: 501234567,
		Battles:   12000,
		Wins:      6600,
		WinRate:   0.55,
		FetchedAt: time.Now().UTC(),
	}
	if err := cache.Put(ctx, stats); err != nil {
		t.Fatalf("Put: %v", err)
	}

	refresh, err = cache.ShouldRefresh(ctx, "branko", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if refresh {
		t.Error("fresh cache entry should not require a refresh")
	}

	got, err := cache.Get(ctx, "branko")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.AccountID != 501234567 || got.Battles != 12000 {
		t.Errorf("cached stats = %+v", got)
	}

	refresh, err = cache.ShouldRefresh(ctx, "branko", 0)
	if err != nil {
		t.Fatal(err)
	}
	if !refresh {
		t.Error("expired cache entry should require a refresh")
	}
}
