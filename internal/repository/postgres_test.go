package repository

import (
	"context"
	"errors"
	"testing"

	"chatsearch/internal/dataset"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepositoryFromDB(sqlx.NewDb(db, "postgres")), mock
}

func TestPostgresRepository_LoadTables(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT * FROM "project"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "projectName", "slug", "status"}).
			AddRow("p1", "Godrej Woods", "godrej-woods-wakad-west-1-pune", "READY_TO_MOVE").
			AddRow("p2", []byte("Lodha Palava"), nil, "UNDER_CONSTRUCTION"))
	mock.ExpectQuery(`SELECT * FROM "project_address"`).
		WillReturnError(&pq.Error{Code: "42P01", Message: `relation "project_address" does not exist`})
	mock.ExpectQuery(`SELECT * FROM "project_configuration"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "projectId", "type"}).
			AddRow("c1", "p1", "2 BHK"))
	mock.ExpectQuery(`SELECT * FROM "project_configuration_variant"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "configurationId", "price"}).
			AddRow(int64(1), "c1", int64(7500000)))

	tables, err := repo.LoadTables(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, 2, tables.Projects.Len())
	assert.Equal(t, "Lodha Palava", tables.Projects.Value(1, "projectName"))
	assert.Equal(t, "", tables.Projects.Value(1, "slug"))
	assert.Nil(t, tables.Addresses, "missing relation is an absent table")
	assert.Equal(t, "7500000", tables.Variants.Value(0, "price"))

	ds, err := dataset.Build(tables, dataset.DefaultRules())
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, "Pune", ds.Records()[0].City)
	assert.Equal(t, 7500000.0, *ds.Records()[0].MinPrice)
	assert.Equal(t, 500000.0, *ds.Records()[1].MinPrice)
}

func TestPostgresRepository_MissingProjects(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT * FROM "project"`).
		WillReturnError(&pq.Error{Code: "42P01"})

	_, err := repo.LoadTables(context.Background())
	assert.ErrorIs(t, err, dataset.ErrMissingTable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_QueryError(t *testing.T) {
	repo, mock := newMockRepository(t)

	boom := errors.New("connection reset")
	mock.ExpectQuery(`SELECT * FROM "project"`).WillReturnError(boom)

	_, err := repo.LoadTables(context.Background())
	assert.ErrorIs(t, err, boom)
}
