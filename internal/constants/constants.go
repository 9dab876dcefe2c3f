package constants

import "time"

const (
	StatsCacheTTL   = 10 * time.Minute
	StatsRefreshTTL = 10 * time.Minute
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// Real captures run to a few MB; the binary payload dominates the
	// JSON first line.
	MaxUploadBytes = 64 << 20

	RecentReplaysLimit = 25
)
