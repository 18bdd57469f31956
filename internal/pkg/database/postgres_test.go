package database

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockClient(t *testing.T) (*PostgresClient, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	return &PostgresClient{db: sqlx.NewDb(mockDB, "sqlmock")}, mock
}

func TestPostgresClient_GetDB(t *testing.T) {
	client, mock := newMockClient(t)
	mock.ExpectClose()
	defer client.Close()

	db := client.GetDB()
	assert.NotNil(t, db)
	assert.Equal(t, client.db, db)
}

func TestPostgresClient_Close(t *testing.T) {
	t.Run("Close Successfully", func(t *testing.T) {
		client, mock := newMockClient(t)
		mock.ExpectClose()

		assert.NoError(t, client.Close())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Close Propagates Error", func(t *testing.T) {
		client, mock := newMockClient(t)
		mock.ExpectClose().WillReturnError(sql.ErrConnDone)

		err := client.Close()
		assert.Equal(t, sql.ErrConnDone, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresClient_Transactions(t *testing.T) {
	client, mock := newMockClient(t)
	defer func() {
		mock.ExpectClose()
		client.Close()
	}()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO road_segments").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := client.GetDB().Beginx()
	require.NoError(t, err)
	_, err = tx.Exec("INSERT INTO road_segments (id) VALUES ($1)", "abc")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Ping(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer mockDB.Close()

		client := &PostgresClient{db: sqlx.NewDb(mockDB, "sqlmock")}
		mock.ExpectPing()

		assert.NoError(t, client.GetDB().Ping())
	})

	t.Run("Unhealthy", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer mockDB.Close()

		client := &PostgresClient{db: sqlx.NewDb(mockDB, "sqlmock")}
		mock.ExpectPing().WillReturnError(sql.ErrConnDone)

		assert.Error(t, client.GetDB().Ping())
	})
}
