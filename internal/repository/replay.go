package repository

import (
	"context"
	"database/sql"
	"fmt"

	"wot-tracker/internal/constants"
	"wot-tracker/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type ReplayRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewReplayRepository(sqlDB *sql.DB, logger zerolog.Logger) *ReplayRepository {
	return &ReplayRepository{db: sqlDB, logger: logger}
}

// Insert stores a replay summary and its full roster in one transaction.
// A missing id is filled with a fresh nanoid; the final id is returned.
func (r *ReplayRepository) Insert(ctx context.Context, replay *domain.Replay, participants []domain.ReplayParticipant) (string, error) {
	id := replay.ID
	if id == "" {
		var err error
		id, err = gonanoid.New()
		if err != nil {
			return "", fmt.Errorf("failed to generate nanoid: %w", err)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO replays (
			id, file_name, player_name, account_id, vehicle_tag, vehicle_nation,
			map_name, map_display_name, region, battle_type, game_mode,
			team, winner_team, won, kills, damage_dealt, spotted, xp, credits,
			duration, recorded_at, uploaded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, replay.FileName, replay.PlayerName, replay.AccountID,
		replay.VehicleTag, replay.VehicleNation, replay.MapName, replay.MapDisplayName,
		replay.Region, replay.BattleType, replay.GameMode, replay.Team,
		replay.WinnerTeam, replay.Won, replay.Kills, replay.DamageDealt,
		replay.Spotted, replay.XP, replay.Credits, replay.Duration,
		replay.RecordedAt, replay.UploadedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert replay: %w", err)
	}

	for i := 0; i < len(participants); i += constants.DBBatchSize {
		end := min(i+constants.DBBatchSize, len(participants))
		for _, p := range participants[i:end] {
			var kills sql.NullInt64
			if p.KillsKnown {
				kills = sql.NullInt64{Int64: int64(p.Kills), Valid: true}
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO replay_participants (
					replay_id, account_id, name, clan_tag, team,
					vehicle_tag, vehicle_nation, is_alive, kills
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				id, p.AccountID, p.Name, p.ClanTag, p.Team,
				p.VehicleTag, p.VehicleNation, p.IsAlive, kills,
			)
			if err != nil {
				return "", fmt.Errorf("failed to insert participant %d: %w", p.AccountID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit replay: %w", err)
	}

	r.logger.Debug().Str("replay_id", id).Int("participants", len(participants)).Msg("replay stored")
	return id, nil
}

const replayColumns = `
	id, file_name, player_name, account_id, vehicle_tag, vehicle_nation,
	map_name, map_display_name, region, battle_type, game_mode,
	team, winner_team, won, kills, damage_dealt, spotted, xp, credits,
	duration, recorded_at, uploaded_at`

func (r *ReplayRepository) Get(ctx context.Context, id string) (*domain.Replay, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+replayColumns+` FROM replays WHERE id = ?`, id)
	return scanReplay(row)
}

// ListRecent returns the newest uploads first, optionally filtered by the
// replay owner's name.
func (r *ReplayRepository) ListRecent(ctx context.Context, playerName string, limit int) ([]domain.Replay, error) {
	if limit <= 0 {
		limit = constants.RecentReplaysLimit
	}

	query := `SELECT` + replayColumns + ` FROM replays`
	args := []any{}
	if playerName != "" {
		query += ` WHERE player_name = ?`
		args = append(args, playerName)
	}
	query += ` ORDER BY uploaded_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var replays []domain.Replay
	for rows.Next() {
		rep, err := scanReplay(rows)
		if err != nil {
			return nil, err
		}
		replays = append(replays, *rep)
	}
	return replays, rows.Err()
}

func (r *ReplayRepository) Participants(ctx context.Context, replayID string) ([]domain.ReplayParticipant, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT replay_id, account_id, name, clan_tag, team,
		       vehicle_tag, vehicle_nation, is_alive, kills
		FROM replay_participants
		WHERE replay_id = ?
		ORDER BY team, account_id`, replayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []domain.ReplayParticipant
	for rows.Next() {
		var p domain.ReplayParticipant
		var kills sql.NullInt64
		err := rows.Scan(&p.ReplayID, &p.AccountID, &p.Name, &p.ClanTag, &p.Team,
			&p.VehicleTag, &p.VehicleNation, &p.IsAlive, &kills)
		if err != nil {
			return nil, err
		}
		if kills.Valid {
			p.Kills = int(kills.Int64)
			p.KillsKnown = true
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReplay(row rowScanner) (*domain.Replay, error) {
	var rep domain.Replay
	err := row.Scan(
		&rep.ID, &rep.FileName, &rep.PlayerName, &rep.AccountID,
		&rep.VehicleTag, &rep.VehicleNation, &rep.MapName, &rep.MapDisplayName,
		&rep.Region, &rep.BattleType, &rep.GameMode, &rep.Team,
		&rep.WinnerTeam, &rep.Won, &rep.Kills, &rep.DamageDealt,
		&rep.Spotted, &rep.XP, &rep.Credits, &rep.Duration,
		&rep.RecordedAt, &rep.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}
