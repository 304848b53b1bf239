package repository

import (
	"fmt"

	"chatsearch/internal/config"
)

// Open returns the table source selected by cfg together with a func that
// releases whatever connection it holds.
func Open(cfg *config.Config) (TableSource, func() error, error) {
	switch cfg.Dataset.Source {
	case config.SourcePostgres:
		repo, err := NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	case config.SourceCSV:
		return NewCSVRepository(cfg.Dataset.DataDir), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}
}
