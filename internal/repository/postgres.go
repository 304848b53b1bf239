package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chatsearch/internal/dataset"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Postgres tables holding the raw project data
const (
	TableProjects       = "project"
	TableAddresses      = "project_address"
	TableConfigurations = "project_configuration"
	TableVariants       = "project_configuration_variant"
)

// undefinedTable is the SQLSTATE Postgres reports for a missing relation
const undefinedTable = "42P01"

// PostgresRepository reads the raw project tables from PostgreSQL
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// NewPostgresRepositoryFromDB wraps an existing connection
func NewPostgresRepositoryFromDB(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// LoadTables reads all four source tables. Only the projects table is required.
func (r *PostgresRepository) LoadTables(ctx context.Context) (dataset.Tables, error) {
	var tables dataset.Tables

	projects, err := r.loadTable(ctx, TableProjects)
	if err != nil {
		return tables, err
	}
	if projects == nil {
		return tables, fmt.Errorf("%s: %w", TableProjects, dataset.ErrMissingTable)
	}
	tables.Projects = projects

	if tables.Addresses, err = r.loadTable(ctx, TableAddresses); err != nil {
		return tables, err
	}
	if tables.Configurations, err = r.loadTable(ctx, TableConfigurations); err != nil {
		return tables, err
	}
	if tables.Variants, err = r.loadTable(ctx, TableVariants); err != nil {
		return tables, err
	}
	return tables, nil
}

// loadTable returns nil, nil when the relation does not exist
func (r *PostgresRepository) loadTable(ctx context.Context, name string) (*dataset.Table, error) {
	rows, err := r.db.QueryxContext(ctx, fmt.Sprintf("SELECT * FROM %s", pq.QuoteIdentifier(name)))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == undefinedTable {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query %s: %w", name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s columns: %w", name, err)
	}

	var data [][]string
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", name, err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = cellString(v)
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", name, err)
	}

	return dataset.NewTable(name, columns, data), nil
}

func cellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}
