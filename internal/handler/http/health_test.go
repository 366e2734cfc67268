package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPingMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func serveHealth(t *testing.T, h http.Handler) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var response HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	return rec, response
}

type fixedBreaker gobreaker.State

func (b fixedBreaker) State() gobreaker.State { return gobreaker.State(b) }

type countingBreaker struct {
	fixedBreaker
	counts gobreaker.Counts
}

func (b countingBreaker) Name() string             { return "database" }
func (b countingBreaker) Counts() gobreaker.Counts { return b.counts }

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedHealth string
	}{
		{name: "healthy database", expectedStatus: http.StatusOK, expectedHealth: "healthy"},
		{name: "database connection error", pingErr: sql.ErrConnDone, expectedStatus: http.StatusServiceUnavailable, expectedHealth: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newPingMock(t)
			mock.ExpectPing().WillReturnError(tt.pingErr)

			rec, response := serveHealth(t, &HealthHandler{DB: db, Version: "test-version"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedHealth, response.Status)
			assert.Equal(t, "test-version", response.Version)
			assert.NotEmpty(t, response.Timestamp)
			assert.Contains(t, response.Checks, "database")
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHealthHandler_PingErrorIsNotLeaked(t *testing.T) {
	db, mock := newPingMock(t)
	mock.ExpectPing().WillReturnError(sql.ErrConnDone)

	_, response := serveHealth(t, &HealthHandler{DB: db})
	assert.Equal(t, "database unreachable", response.Checks["database"].Message)
}

func TestHealthHandler_NoDatabaseConfigured(t *testing.T) {
	rec, response := serveHealth(t, &HealthHandler{Version: "test-version"})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "not configured", response.Checks["database"].Message)
}

func TestHealthHandler_MaxOpenConnectionsZero(t *testing.T) {
	db, mock := newPingMock(t)
	db.SetMaxOpenConns(0)
	mock.ExpectPing()

	rec, response := serveHealth(t, &HealthHandler{DB: db})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", response.Status)

	dbCheck := response.Checks["database"]
	assert.Equal(t, "degraded", dbCheck.Status)
	assert.Equal(t, "connection pool max connections not configured", dbCheck.Message)
	assert.Equal(t, float64(0), dbCheck.Details["max_open_connections"])
	assert.NotContains(t, dbCheck.Details, "utilization_percent")
}

func TestHealthHandler_Utilization(t *testing.T) {
	db, mock := newPingMock(t)
	db.SetMaxOpenConns(10)
	mock.ExpectPing()

	_, response := serveHealth(t, &HealthHandler{DB: db})

	dbCheck := response.Checks["database"]
	assert.Equal(t, "healthy", dbCheck.Status)
	assert.Equal(t, float64(0), dbCheck.Details["utilization_percent"])
}

func TestHealthHandler_Breaker(t *testing.T) {
	tests := []struct {
		state          gobreaker.State
		expectedStatus int
		expectedCheck  string
	}{
		{gobreaker.StateClosed, http.StatusOK, "healthy"},
		{gobreaker.StateHalfOpen, http.StatusOK, "degraded"},
		{gobreaker.StateOpen, http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			db, mock := newPingMock(t)
			db.SetMaxOpenConns(10)
			mock.ExpectPing()

			rec, response := serveHealth(t, &HealthHandler{DB: db, Breaker: fixedBreaker(tt.state)})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCheck, response.Checks["database_breaker"].Status)
			assert.Equal(t, tt.state.String(), response.Checks["database_breaker"].Details["state"])
		})
	}
}

func TestHealthHandler_BreakerCounts(t *testing.T) {
	db, mock := newPingMock(t)
	db.SetMaxOpenConns(10)
	mock.ExpectPing()

	b := countingBreaker{
		fixedBreaker: fixedBreaker(gobreaker.StateClosed),
		counts:       gobreaker.Counts{Requests: 12, ConsecutiveFailures: 2},
	}
	_, response := serveHealth(t, &HealthHandler{DB: db, Breaker: b})

	details := response.Checks["database_breaker"].Details
	assert.Equal(t, "database", details["name"])
	assert.Equal(t, float64(12), details["requests"])
	assert.Equal(t, float64(2), details["consecutive_failures"])
}

func TestHealthHandler_CacheControl(t *testing.T) {
	db, mock := newPingMock(t)
	mock.ExpectPing()

	rec, _ := serveHealth(t, &HealthHandler{DB: db})

	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestReadyHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{name: "ready", expectedStatus: http.StatusOK, expectedBody: "ready"},
		{name: "database not ready", pingErr: sql.ErrConnDone, expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newPingMock(t)
			mock.ExpectPing().WillReturnError(tt.pingErr)

			rec := httptest.NewRecorder()
			(&ReadyHandler{DB: db}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReadyHandler_NoDatabaseConfigured(t *testing.T) {
	rec := httptest.NewRecorder()
	(&ReadyHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "database not configured")
}

type slowPinger struct{}

func (slowPinger) PingContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(3 * time.Second):
		return nil
	}
}

func TestReadyHandler_Timeout(t *testing.T) {
	rec := httptest.NewRecorder()
	(&ReadyHandler{DB: slowPinger{}}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLiveHandler_ServeHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	(&LiveHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}
