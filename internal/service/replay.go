package service

import (
	"context"
	"time"

	"wot-tracker/internal/constants"
	"wot-tracker/internal/domain"
	"wot-tracker/internal/live"
	"wot-tracker/internal/replay"
	"wot-tracker/internal/repository"

	"github.com/rs/zerolog"
)

// ReplayService parses uploaded captures and persists their summaries. The
// parse itself is synchronous CPU work; each request gets its own records,
// so concurrent uploads need no coordination here.
type ReplayService struct {
	repo   *repository.ReplayRepository
	hub    *live.Hub
	logger zerolog.Logger
}

func NewReplayService(repo *repository.ReplayRepository, hub *live.Hub, logger zerolog.Logger) *ReplayService {
	return &ReplayService{repo: repo, hub: hub, logger: logger}
}

// StoredBattle pairs the full parsed battle with its stored summary row.
type StoredBattle struct {
	Replay domain.Replay  `json:"replay"`
	Battle *replay.Battle `json:"battle"`
}

// Process parses the capture at path, stores the result and notifies live
// subscribers. Parse sentinels (replay.ErrNoBattleData,
// replay.ErrAmbiguousAccount) pass through for the caller to translate.
func (s *ReplayService) Process(ctx context.Context, fileName, path string) (*StoredBattle, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("file_name", fileName).Msg("parsing replay")

	battle, err := replay.ParseFile(path)
	if err != nil {
		s.logger.Warn().Err(err).Str("file_name", fileName).Msg("replay parse failed")
		return nil, err
	}

	rep, participants := toDomain(battle, fileName)
	id, err := s.repo.Insert(ctx, &rep, participants)
	if err != nil {
		return nil, err
	}
	rep.ID = id

	s.logger.Info().
		Str("replay_id", id).
		Str("player", rep.PlayerName).
		Str("vehicle", rep.VehicleTag).
		Str("map", rep.MapDisplayName).
		Int("kills", rep.Kills).
		Int("damage", rep.DamageDealt).
		Msg("replay stored")

	s.hub.Broadcast(rep)

	return &StoredBattle{Replay: rep, Battle: battle}, nil
}

func (s *ReplayService) Get(ctx context.Context, id string) (*domain.Replay, []domain.ReplayParticipant, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	rep, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	participants, err := s.repo.Participants(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return rep, participants, nil
}

func (s *ReplayService) ListRecent(ctx context.Context, playerName string, limit int) ([]domain.Replay, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.repo.ListRecent(ctx, playerName, limit)
}

func toDomain(b *replay.Battle, fileName string) (domain.Replay, []domain.ReplayParticipant) {
	m := b.Metadata

	rep := domain.Replay{
		FileName:       fileName,
		PlayerName:     m.PlayerName,
		AccountID:      int64(m.PlayerID),
		VehicleTag:     m.VehicleTag,
		VehicleNation:  m.VehicleNation,
		MapName:        m.MapName,
		MapDisplayName: m.MapDisplayName,
		Region:         m.RegionCode,
		BattleType:     m.BattleType().String(),
		GameMode:       m.GameMode().String(),
		Team:           b.Performance.Team,
		WinnerTeam:     m.Arena.WinnerTeam,
		Won:            m.Arena.WinnerTeam != 0 && b.Performance.Team == m.Arena.WinnerTeam,
		Kills:          b.Performance.Kills,
		DamageDealt:    b.Performance.DamageDealt,
		Spotted:        b.Performance.Spotted,
		XP:             b.XP.XP,
		Credits:        b.Economy.Credits,
		Duration:       m.Arena.Duration,
		RecordedAt:     m.RecordedAt,
		UploadedAt:     time.Now().UTC(),
	}

	participants := make([]domain.ReplayParticipant, 0, len(b.Players))
	for _, p := range b.Players {
		participants = append(participants, domain.ReplayParticipant{
			AccountID:     p.ID,
			Name:          p.Name,
			ClanTag:       p.ClanTag,
			Team:          p.Team,
			VehicleTag:    p.VehicleTag,
			VehicleNation: p.VehicleNation,
			IsAlive:       p.IsAlive.Bool(),
			Kills:         p.Frags.Count,
			KillsKnown:    p.Frags.Known,
		})
	}
	return rep, participants
}
