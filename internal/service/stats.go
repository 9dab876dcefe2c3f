package service

import (
	"context"
	"fmt"
	"time"

	"wot-tracker/internal/api"
	"wot-tracker/internal/config"
	"wot-tracker/internal/constants"
	"wot-tracker/internal/domain"
	"wot-tracker/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// StatsService resolves a nickname to Wargaming account statistics,
// cache-first with a TTL.
type StatsService struct {
	wg       *api.WargamingClient
	cache    *repository.AccountCacheRepository
	cacheTTL time.Duration
	logger   zerolog.Logger
}

func NewStatsService(wg *api.WargamingClient, cache *repository.AccountCacheRepository, cfg *config.Config, logger zerolog.Logger) *StatsService {
	return &StatsService{wg: wg, cache: cache, cacheTTL: cfg.CacheTTL, logger: logger}
}

func (s *StatsService) PlayerStats(ctx context.Context, nickname string, refresh bool) (*domain.PlayerStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("nickname", nickname).Bool("refresh", refresh).Msg("getting player stats")

	shouldRefresh, err := s.cache.ShouldRefresh(ctx, nickname, s.cacheTTL)
	if err != nil {
		return nil, err
	}
	if refresh {
		shouldRefresh = true
		s.logger.Debug().Str("nickname", nickname).Msg("manual refresh requested")
	}

	if !shouldRefresh {
		stats, err := s.cache.Get(ctx, nickname)
		if err == nil {
			s.logger.Info().Str("nickname", nickname).Msg("returning cached stats")
			stats.Source = "cache"
			return stats, nil
		}
		s.logger.Warn().Err(err).Str("nickname", nickname).Msg("cache read failed, falling back to API")
	}

	stats, err := s.fetchStats(ctx, nickname)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Put(ctx, stats); err != nil {
		s.logger.Warn().Err(err).Str("nickname", nickname).Msg("failed to cache stats")
	}
	stats.Source = "live"
	return stats, nil
}

func (s *StatsService) fetchStats(ctx context.Context, nickname string) (*domain.PlayerStats, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	entries, err := s.wg.AccountList(apiCtx, nickname)
	if err != nil {
		s.logger.Error().Err(err).Str("nickname", nickname).Msg("failed to search account")
		return nil, fmt.Errorf("failed to search account: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("player %q not found", nickname)
	}
	accountID := entries[0].AccountID

	g, gCtx := errgroup.WithContext(apiCtx)
	var info *api.AccountInfo
	var tanks []api.AccountTank

	g.Go(func() error {
		var err error
		info, err = s.wg.AccountInfo(gCtx, accountID)
		return err
	})
	g.Go(func() error {
		var err error
		tanks, err = s.wg.AccountTanks(gCtx, accountID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Int64("account_id", accountID).Msg("failed to fetch account data")
		return nil, fmt.Errorf("failed to fetch account data: %w", err)
	}

	all := info.Statistics.All
	stats := &domain.PlayerStats{
		Nickname:     info.Nickname,
		AccountID:    accountID,
		Battles:      all.Battles,
		Wins:         all.Wins,
		Losses:       all.Losses,
		MaxFrags:     all.MaxFrags,
		TanksPlayed:  len(tanks),
		GlobalRating: info.GlobalRating,
		LastBattleAt: time.Unix(info.LastBattleTime, 0).UTC(),
		FetchedAt:    time.Now().UTC(),
	}
	if all.Battles > 0 {
		stats.WinRate = float64(all.Wins) / float64(all.Battles)
		stats.AvgDamage = float64(all.DamageDealt) / float64(all.Battles)
		stats.AvgXP = float64(all.XP) / float64(all.Battles)
	}
	return stats, nil
}
