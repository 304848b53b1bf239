package repository

import (
	"context"
	"fmt"

	"chatsearch/internal/dataset"
)

// TableSource supplies the raw project tables
type TableSource interface {
	LoadTables(ctx context.Context) (dataset.Tables, error)
}

var (
	_ TableSource = (*CSVRepository)(nil)
	_ TableSource = (*PostgresRepository)(nil)
)

// LoadDataset reads the tables from src and normalizes them once
func LoadDataset(ctx context.Context, src TableSource, rules dataset.Rules) (*dataset.Dataset, error) {
	tables, err := src.LoadTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tables: %w", err)
	}
	ds, err := dataset.Build(tables, rules)
	if err != nil {
		return nil, fmt.Errorf("failed to build dataset: %w", err)
	}
	return ds, nil
}
