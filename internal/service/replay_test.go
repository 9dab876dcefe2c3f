package service

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"wot-tracker/internal/config"
	"wot-tracker/internal/database"
	"wot-tracker/internal/live"
	"wot-tracker/internal/replay"
	"wot-tracker/internal/repository"

	"github.com/rs/zerolog"
)

const testCapture = `{"dateTime":"01.01.202210:00:00","playerVehicle":"germany-G58_E100",` +
	`"clientVersionFromXml":"WorldofTanksv.1.19.0.1#1234","regionCode":"EU","playerID":501234567,` +
	`"serverName":"EU1","mapDisplayName":"Prokhorovka","mapName":"35_prohorovka",` +
	`"gameplayID":"ctf","battleType":1,"hasMods":false,"playerName":"branko"}` +
	`{"common":{"duration":420,"winnerTeam":1,"bonusType":1},` +
	`"personal":{"1001":{"kills":3,"damageDealt":2400,"spotted":2,"team":1,"xp":1100,"credits":40000}}}` +
	`{"501234567":{"name":"branko","team":1,"clanAbbrev":"ABC","vehicleType":"germany:G58:E-100","isAlive":1},` +
	`"502000000":{"name":"enemy","team":2,"clanAbbrev":"","vehicleType":"ussr:R97_Object_257","isAlive":0}}` +
	`{"501234567":{"frags":3}}`

func testService(t *testing.T) *ReplayService {
	t.Helper()
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}
	db, err := database.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("database.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := repository.NewReplayRepository(db, zerolog.Nop())
	return NewReplayService(repo, live.NewHub(zerolog.Nop()), zerolog.Nop())
}

func writeCaptureFile(t *testing.T, firstLine string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "battle.wotreplay")
	content := append([]byte(firstLine+"\n"), 0x00, 0x8f, 0x02)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessStoresReplay(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	stored, err := svc.Process(ctx, "battle.wotreplay", writeCaptureFile(t, testCapture))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if stored.Replay.ID == "" {
		t.Fatal("stored replay has no id")
	}
	if stored.Replay.PlayerName != "branko" || stored.Replay.Kills != 3 {
		t.Errorf("summary = %+v", stored.Replay)
	}
	if !stored.Replay.Won {
		t.Error("team 1 won this battle")
	}
	if stored.Replay.BattleType != "regular" || stored.Replay.GameMode != "capture the flag" {
		t.Errorf("battle type/mode = %q/%q", stored.Replay.BattleType, stored.Replay.GameMode)
	}
	if len(stored.Battle.Players) != 2 {
		t.Errorf("got %d players", len(stored.Battle.Players))
	}

	rep, participants, err := svc.Get(ctx, stored.Replay.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rep.DamageDealt != 2400 || rep.XP != 1100 || rep.Credits != 40000 {
		t.Errorf("stored row = %+v", rep)
	}
	if len(participants) != 2 {
		t.Fatalf("got %d participants", len(participants))
	}

	replays, err := svc.ListRecent(ctx, "branko", 0)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(replays) != 1 {
		t.Errorf("got %d replays", len(replays))
	}
}

func TestProcessUnusableCapture(t *testing.T) {
	svc := testService(t)

	path := writeCaptureFile(t, `{"dateTime":"01.01.202210:00:00"}`)
	_, err := svc.Process(context.Background(), "bad.wotreplay", path)
	if !errors.Is(err, replay.ErrNoBattleData) {
		t.Errorf("err = %v, want ErrNoBattleData to pass through", err)
	}

	// Nothing should have been stored.
	if _, _, err := svc.Get(context.Background(), "anything"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}
