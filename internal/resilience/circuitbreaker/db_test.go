package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockBreaker(t *testing.T) (*DBCircuitBreaker, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := DBConfig()
	cfg.Name = t.Name()
	return NewDBCircuitBreakerWithConfig(db, cfg), mock
}

func TestDBCircuitBreaker_QueryContext(t *testing.T) {
	dcb, mock := newMockBreaker(t)

	mock.ExpectQuery("SELECT slug, description FROM topics").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}).AddRow("coding", "Code is love"))

	rows, err := dcb.QueryContext(context.Background(), "SELECT slug, description FROM topics")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	require.True(t, rows.Next())
	var slug, desc string
	require.NoError(t, rows.Scan(&slug, &desc))
	assert.Equal(t, "coding", slug)
	assert.Equal(t, gobreaker.StateClosed, dcb.State())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBCircuitBreaker_ExecContext(t *testing.T) {
	dcb, mock := newMockBreaker(t)

	mock.ExpectExec("DELETE FROM comments").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := dcb.ExecContext(context.Background(), "DELETE FROM comments WHERE comment_id = $1", int64(1))
	require.NoError(t, err)
	n, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBCircuitBreaker_OpensOnConnectionFailures(t *testing.T) {
	dcb, mock := newMockBreaker(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))
	}
	for i := 0; i < 5; i++ {
		_, err := dcb.QueryContext(ctx, "SELECT 1")
		require.Error(t, err)
	}
	require.True(t, dcb.IsOpen())

	_, err := dcb.QueryContext(ctx, "SELECT 1")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBCircuitBreaker_OpensOnFailureRatio(t *testing.T) {
	dcb, mock := newMockBreaker(t)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))
		} else {
			mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset by peer"))
		}
	}
	for i := 0; i < 20; i++ {
		require.False(t, dcb.IsOpen(), "opened early at call %d", i)
		rows, err := dcb.QueryContext(ctx, "SELECT 1")
		if err == nil {
			_ = rows.Close()
		}
	}

	assert.True(t, dcb.IsOpen())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBCircuitBreaker_NameAndCounts(t *testing.T) {
	dcb, mock := newMockBreaker(t)
	mock.ExpectExec("DELETE").WillReturnError(errors.New("connection refused"))

	_, err := dcb.ExecContext(context.Background(), "DELETE FROM comments WHERE comment_id = $1", 1)
	require.Error(t, err)

	assert.Equal(t, t.Name(), dcb.Name())
	counts := dcb.Counts()
	assert.Equal(t, uint32(1), counts.Requests)
	assert.Equal(t, uint32(1), counts.ConsecutiveFailures)
}

func TestDBCircuitBreaker_ConstraintErrorsDoNotTrip(t *testing.T) {
	dcb, mock := newMockBreaker(t)
	ctx := context.Background()
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "comments_author_fkey"}

	for i := 0; i < 6; i++ {
		mock.ExpectQuery("INSERT INTO comments").WillReturnError(fk)
	}
	for i := 0; i < 6; i++ {
		_, err := dcb.QueryContext(ctx, "INSERT INTO comments (author) VALUES ($1) RETURNING comment_id", "nobody")
		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
	}

	assert.False(t, dcb.IsOpen())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBCircuitBreaker_PingContext(t *testing.T) {
	dcb, mock := newMockBreaker(t)
	mock.ExpectPing()

	assert.NoError(t, dcb.PingContext(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsDBSuccess(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: true},
		{name: "no rows", err: sql.ErrNoRows, want: true},
		{name: "canceled", err: context.Canceled, want: true},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: true},
		{name: "invalid text", err: &pgconn.PgError{Code: "22P02"}, want: true},
		{name: "connection exception", err: &pgconn.PgError{Code: "08006"}, want: false},
		{name: "admin shutdown", err: &pgconn.PgError{Code: "57P01"}, want: false},
		{name: "too many connections", err: &pgconn.PgError{Code: "53300"}, want: false},
		{name: "plain", err: errors.New("dial tcp: refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDBSuccess(tt.err))
		})
	}
}
