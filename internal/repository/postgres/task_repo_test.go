package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/jmoreau/timemanager/internal/errs"
	"github.com/jmoreau/timemanager/internal/model"
)

func taskRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "project_id", "name", "description", "assigned_to", "time_spent",
		"status", "created_at", "updated_at", "project_name", "assigned_to_name",
	})
}

func TestTaskRepo_Create_BadProjectRef(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTaskRepo(db)

	mock.ExpectQuery(`INSERT INTO tasks \(project_id, name, description, assigned_to, time_spent, status\)`).
		WithArgs(int64(999999), "x", (*string)(nil), (*int64)(nil), float64(0), "todo").
		WillReturnError(&pgconn.PgError{Code: "23503"})
	_, err := r.Create(context.Background(), model.Task{ProjectID: 999999, Name: "x", Status: "todo"})
	require.ErrorIs(t, err, errs.ErrBadReference)
}

func TestTaskRepo_GetByID_JoinsDisplayNames(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTaskRepo(db)
	now := time.Now()
	uid := int64(2)

	mock.ExpectQuery(`LEFT JOIN users u ON t\.assigned_to = u\.id WHERE t\.id=\$1`).
		WithArgs(int64(4)).
		WillReturnRows(taskRows().
			AddRow(int64(4), int64(1), "Design mockups", (*string)(nil), &uid, float64(8),
				"done", now, now, "Website", "marie"))
	task, err := r.GetByID(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, "Website", task.ProjectName)
	require.Equal(t, "marie", task.AssignedToName)

	mock.ExpectQuery(`WHERE t\.id=\$1`).
		WithArgs(int64(5)).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByID(context.Background(), 5)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestTaskRepo_GetByID_UnassignedDegradesToEmptyName(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTaskRepo(db)
	now := time.Now()

	mock.ExpectQuery(`WHERE t\.id=\$1`).
		WithArgs(int64(9)).
		WillReturnRows(taskRows().
			AddRow(int64(9), int64(1), "Unit tests", (*string)(nil), (*int64)(nil), float64(0),
				"todo", now, now, "Website", ""))
	task, err := r.GetByID(context.Background(), 9)
	require.NoError(t, err)
	require.Nil(t, task.AssignedTo)
	require.Empty(t, task.AssignedToName)
}

func TestTaskRepo_ListByProject_and_ByUser(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTaskRepo(db)
	now := time.Now()

	mock.ExpectQuery(`WHERE t\.project_id=\$1 ORDER BY t\.created_at DESC, t\.id DESC`).
		WithArgs(int64(1)).
		WillReturnRows(taskRows().
			AddRow(int64(2), int64(1), "b", (*string)(nil), (*int64)(nil), float64(0), "todo", now, now, "Website", ""))
	tasks, err := r.ListByProject(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	mock.ExpectQuery(`WHERE t\.assigned_to=\$1 ORDER BY t\.created_at DESC, t\.id DESC`).
		WithArgs(int64(3)).
		WillReturnRows(taskRows())
	tasks, err = r.ListByUser(context.Background(), 3)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestTaskRepo_Update_and_Delete(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTaskRepo(db)

	mock.ExpectExec(`UPDATE tasks SET project_id=\$2, name=\$3, description=\$4, assigned_to=\$5, time_spent=\$6, status=\$7, updated_at=now\(\) WHERE id=\$1`).
		WithArgs(int64(4), int64(1), "Design", (*string)(nil), (*int64)(nil), float64(9), "done").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	ok, err := r.Update(context.Background(), 4, model.Task{ProjectID: 1, Name: "Design", TimeSpent: 9, Status: "done"})
	require.NoError(t, err)
	require.True(t, ok)

	mock.ExpectExec(`DELETE FROM tasks WHERE id=\$1`).
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	ok, err = r.Delete(context.Background(), 4)
	require.NoError(t, err)
	require.True(t, ok)
}
