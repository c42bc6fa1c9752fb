package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/model"
	"github.com/fatima3985/InternLinkt/internal/status"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestInsertApplication(t *testing.T) {
	ctx := context.Background()
	var gotSQL string
	db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
		gotSQL = sql
		require.Equal(t, status.Pending, args[4])
		return database.FakeRow{Values: []any{11, time.Time{}}}
	}}
	a := &model.Application{StudentID: 1, InternshipID: 2, CoverLetter: "hi", Status: status.Pending}
	id, err := InsertApplication(ctx, db, a)
	require.NoError(t, err)
	require.Equal(t, 11, id)
	require.Contains(t, gotSQL, "ON CONFLICT (student_id, internship_id) DO NOTHING")

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return database.FakeRow{Err: pgx.ErrNoRows} }
	_, err = InsertApplication(ctx, db, a)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestApplicationStatusQueries(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
		require.Contains(t, sql, "FOR UPDATE")
		return database.FakeRow{Values: []any{"Shortlisted"}}
	}}
	st, err := LockApplicationStatus(ctx, db, 1)
	require.NoError(t, err)
	require.Equal(t, status.Shortlisted, st)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return database.FakeRow{Err: pgx.ErrNoRows} }
	_, err = LockApplicationStatus(ctx, db, 1)
	require.ErrorIs(t, err, pgx.ErrNoRows)

	db.ExecFn = func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
		require.Equal(t, []any{status.Accepted, 1}, args)
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}
	require.NoError(t, UpdateApplicationStatus(ctx, db, 1, status.Accepted))

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("x")
	}
	require.ErrorContains(t, UpdateApplicationStatus(ctx, db, 1, status.Accepted), "UpdateApplicationStatus")
}

func TestDeleteInternshipApplications(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
		require.Contains(t, sql, "RETURNING resume")
		require.Equal(t, []any{5}, args)
		return &database.FakeRows{Data: [][]any{{"/resumes/a.pdf"}, {nil}, {""}, {"/resumes/b.pdf"}}}, nil
	}}
	resumes, err := DeleteInternshipApplications(ctx, db, 5)
	require.NoError(t, err)
	require.Equal(t, []string{"/resumes/a.pdf", "/resumes/b.pdf"}, resumes)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("q") }
	_, err = DeleteInternshipApplications(ctx, db, 5)
	require.ErrorContains(t, err, "q")
}

func TestListApplications(t *testing.T) {
	ctx := context.Background()
	base := []any{1, 2, 3, nil, "cover", "Pending", time.Time{}}

	db := &database.FakeDB{QueryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
		require.Contains(t, sql, "JOIN students s")
		return &database.FakeRows{Data: [][]any{
			append(append([]any{}, base...), "Ann", "MIT", "CS", 2026, "Go", nil),
		}}, nil
	}}
	applicants, err := ListInternshipApplications(ctx, db, 3)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	require.Equal(t, status.Pending, applicants[0].Status)
	require.Equal(t, "Ann", applicants[0].Name)
	require.Equal(t, "Go", *applicants[0].Skills)

	db.QueryFn = func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
		require.Contains(t, sql, "JOIN companies c")
		return &database.FakeRows{Data: [][]any{
			append(append([]any{}, base...), "Backend", "Boston", "Remote", nil, "3 months", "Acme"),
		}}, nil
	}
	mine, err := ListStudentApplications(ctx, db, 2)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "Acme", mine[0].CompanyName)
	require.Nil(t, mine[0].Salary)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return &database.FakeRows{}, nil }
	applicants, err = ListInternshipApplications(ctx, db, 3)
	require.NoError(t, err)
	require.NotNil(t, applicants)
	require.Empty(t, applicants)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
		return &database.FakeRows{Data: [][]any{{1}}, ScanErr: errors.New("scan")}, nil
	}
	_, err = ListStudentApplications(ctx, db, 2)
	require.ErrorContains(t, err, "scan")
}
