package session

import (
	"context"
	"net/http"
	"testing"
	"time"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/auth"
	"timeclock/backend/internal/entity"
	"timeclock/backend/internal/pkg/repository/postgresql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqldb.Close() })

	db := bun.NewDB(sqldb, pgdialect.New())
	return NewRepository(&postgresql.Database{DB: db}), mock
}

func employeeCtx(id int) context.Context {
	return context.WithValue(context.Background(), auth.Key, auth.Claims{
		UserId: id,
		Role:   auth.RoleEmployee,
		Email:  "employee@timeclock.local",
	})
}

func managerCtx() context.Context {
	return context.WithValue(context.Background(), auth.Key, auth.Claims{
		UserId: 9,
		Role:   auth.RoleManager,
		Email:  "manager@timeclock.local",
	})
}

// sqlstateError mimics the error the postgres driver raises, carrying the
// SQLSTATE code in field C.
type sqlstateError struct{ code string }

func (e sqlstateError) Error() string { return "SQLSTATE=" + e.code }

func (e sqlstateError) Field(k byte) string {
	if k == 'C' {
		return e.code
	}
	return ""
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()

	var webErr *web.Error
	require.True(t, errors.As(err, &webErr), "expected a request error, got %v", err)
	assert.Equal(t, status, webErr.Status)
}

func TestClockInConflictOnOpenSession(t *testing.T) {
	repo, mock := newTestRepository(t)

	// The one-open-session unique index rejects the insert.
	mock.ExpectQuery("INSERT INTO").WillReturnError(sqlstateError{code: "23505"})

	_, err := repo.ClockIn(employeeCtx(4))
	requireStatus(t, err, http.StatusConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClockInOtherInsertErrorIsNotConflict(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("INSERT INTO").WillReturnError(sqlstateError{code: "23502"})

	_, err := repo.ClockIn(employeeCtx(4))
	requireStatus(t, err, http.StatusBadRequest)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClockOutWithoutOpenSession(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.ClockOut(employeeCtx(4), ClockOutRequest{})
	requireStatus(t, err, http.StatusNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectWithoutCommentKeepsPendingEdit(t *testing.T) {
	repo, mock := newTestRepository(t)

	clockIn := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(8 * time.Hour)
	requestedAt := clockOut.Add(time.Hour)

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{
		"id", "user_id", "status", "clock_in_at", "clock_out_at",
		"break_minutes", "total_minutes",
		"pending_clock_in_at", "pending_clock_out_at", "pending_break_minutes",
		"pending_reason", "pending_requested_by", "pending_requested_at",
	}).AddRow(
		11, 4, entity.SessionSubmitted, clockIn, clockOut,
		30, 450,
		clockIn.Add(-time.Hour), clockOut, 15,
		"Forgot to clock in", 4, requestedAt,
	))
	mock.ExpectExec("UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	view, err := repo.Reject(managerCtx(), ReviewRequest{ID: 11})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.NotNil(t, view.Status)
	assert.Equal(t, entity.SessionRejected, *view.Status)
	assert.Nil(t, view.ApproverComment)

	// Rejection stamps reviewer fields but leaves the proposal in place,
	// the recorded times are untouched.
	assert.NotNil(t, view.PendingRequestedAt)
	assert.NotNil(t, view.PendingClockInAt)
	require.NotNil(t, view.ClockInAt)
	assert.True(t, view.ClockInAt.Equal(clockIn))
	require.NotNil(t, view.TotalMinutes)
	assert.Equal(t, 450, *view.TotalMinutes)
}

func TestBulkApproveSkipsMissingIDs(t *testing.T) {
	repo, mock := newTestRepository(t)

	clockIn := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(8 * time.Hour)

	// First id resolves to nothing and is skipped.
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	// Second id goes through review and audit.
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{
		"id", "user_id", "status", "clock_in_at", "clock_out_at",
		"break_minutes", "total_minutes",
	}).AddRow(42, 4, entity.SessionSubmitted, clockIn, clockOut, 30, 450))
	mock.ExpectExec("UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	response, err := repo.BulkApprove(managerCtx(), BulkApproveRequest{IDs: []int{41, 42}})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 1, response.Updated)
}

func TestUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(sqlstateError{code: "23505"}))
	assert.True(t, isUniqueViolation(errors.Wrap(sqlstateError{code: "23505"}, "creating clock session")))
	assert.False(t, isUniqueViolation(sqlstateError{code: "40001"}))
	assert.False(t, isUniqueViolation(errors.New("broken pipe")))
}
