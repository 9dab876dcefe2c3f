package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"wot-tracker/internal/domain"

	"github.com/rs/zerolog"
)

// AccountCacheRepository holds Wargaming API snapshots per nickname so stat
// lookups don't hit the API on every request.
type AccountCacheRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewAccountCacheRepository(sqlDB *sql.DB, logger zerolog.Logger) *AccountCacheRepository {
	return &AccountCacheRepository{db: sqlDB, logger: logger}
}

func (r *AccountCacheRepository) Get(ctx context.Context, nickname string) (*domain.PlayerStats, error) {
	var payload string
	var fetchedAt time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM account_cache WHERE nickname = ?`, nickname).
		Scan(&payload, &fetchedAt)
	if err != nil {
		return nil, err
	}

	var stats domain.PlayerStats
	if err := json.Unmarshal([]byte(payload), &stats); err != nil {
		return nil, err
	}
	stats.FetchedAt = fetchedAt
	return &stats, nil
}

func (r *AccountCacheRepository) Put(ctx context.Context, stats *domain.PlayerStats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO account_cache (nickname, account_id, payload, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(nickname) DO UPDATE SET
			account_id = excluded.account_id,
			payload = excluded.payload,
			fetched_at = excluded.fetched_at`,
		stats.Nickname, stats.AccountID, string(payload), stats.FetchedAt,
	)
	return err
}

// ShouldRefresh reports whether the cached snapshot is missing or older than
// the ttl.
func (r *AccountCacheRepository) ShouldRefresh(ctx context.Context, nickname string, ttl time.Duration) (bool, error) {
	var fetchedAt time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT fetched_at FROM account_cache WHERE nickname = ?`, nickname).
		Scan(&fetchedAt)
	if err == sql.ErrNoRows {
		r.logger.Debug().Str("nickname", nickname).Msg("account not cached, should refresh")
		return true, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Str("nickname", nickname).Msg("failed to read account cache")
		return false, err
	}

	timeSince := time.Since(fetchedAt)
	shouldRefresh := timeSince > ttl
	r.logger.Debug().
		Str("nickname", nickname).
		Time("fetched_at", fetchedAt).
		Dur("time_since", timeSince).
		Dur("ttl", ttl).
		Bool("should_refresh", shouldRefresh).
		Msg("checking if account cache should refresh")

	return shouldRefresh, nil
}
