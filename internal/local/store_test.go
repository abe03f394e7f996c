package local

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmoreau/timemanager/internal/constants"
	"github.com/jmoreau/timemanager/internal/errs"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func i64Ptr(v int64) *int64   { return &v }
func strPtr(s string) *string { return &s }

func TestOpenCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "timemanager")
	_, err := Open(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEmptyCollections(t *testing.T) {
	s := newStore(t)

	users, err := s.Users()
	require.NoError(t, err)
	require.Empty(t, users)

	clients, err := s.Clients()
	require.NoError(t, err)
	require.Empty(t, clients)

	projects, err := s.Projects()
	require.NoError(t, err)
	require.Empty(t, projects)
}

func TestUserIDsMaxPlusOne(t *testing.T) {
	s := newStore(t)

	u1, err := s.CreateUser("jdoe", "jdoe@example.com", "")
	require.NoError(t, err)
	require.Equal(t, int64(1), u1.ID)
	require.Equal(t, constants.RoleUser, u1.Role)

	u2, err := s.CreateUser("asmith", "asmith@example.com", constants.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, int64(2), u2.ID)

	// Deleting the newest record frees its id for reuse.
	ok, err := s.DeleteUser(u2.ID)
	require.NoError(t, err)
	require.True(t, ok)

	u3, err := s.CreateUser("brown", "brown@example.com", "")
	require.NoError(t, err)
	require.Equal(t, int64(2), u3.ID)
}

func TestUserIDsSkipGaps(t *testing.T) {
	s := newStore(t)

	for _, name := range []string{"one", "two", "three"} {
		_, err := s.CreateUser(name, name+"@example.com", "")
		require.NoError(t, err)
	}
	ok, err := s.DeleteUser(2)
	require.NoError(t, err)
	require.True(t, ok)

	// Max is still 3, so the next id is 4 even though 2 is free.
	u, err := s.CreateUser("four", "four@example.com", "")
	require.NoError(t, err)
	require.Equal(t, int64(4), u.ID)
}

func TestUserUpdatePartialMerge(t *testing.T) {
	s := newStore(t)

	created, err := s.CreateUser("jdoe", "jdoe@example.com", "")
	require.NoError(t, err)

	updated, err := s.UpdateUser(created.ID, UserUpdate{Role: strPtr(constants.RoleAdmin)})
	require.NoError(t, err)
	require.Equal(t, "jdoe", updated.Username)
	require.Equal(t, constants.RoleAdmin, updated.Role)

	_, err = s.UpdateUser(99, UserUpdate{Role: strPtr(constants.RoleUser)})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDeleteUserDeleteSemantics(t *testing.T) {
	s := newStore(t)

	created, err := s.CreateUser("jdoe", "jdoe@example.com", "")
	require.NoError(t, err)

	ok, err := s.DeleteUser(created.ID)
	require.NoError(t, err)
	require.True(t, ok)

	// Second delete finds nothing to remove.
	ok, err = s.DeleteUser(created.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	_, err = s.CreateClient("Acme Corp", "contact@acme.com", "", "Acme")
	require.NoError(t, err)

	reopened, err := Open(dir)
	require.NoError(t, err)
	clients, err := reopened.Clients()
	require.NoError(t, err)
	require.Len(t, clients, 1)
	require.Equal(t, "Acme Corp", clients[0].Name)
}

func TestClientDeleteBlockedByProjects(t *testing.T) {
	s := newStore(t)

	c, err := s.CreateClient("Acme Corp", "contact@acme.com", "", "")
	require.NoError(t, err)
	_, err = s.CreateProject("Website", i64Ptr(c.ID), "", "")
	require.NoError(t, err)

	ok, err := s.DeleteClient(c.ID)
	require.ErrorIs(t, err, errs.ErrHasDependents)
	require.False(t, ok)

	// Removing the project unblocks the delete.
	projects, err := s.Projects()
	require.NoError(t, err)
	ok, err = s.DeleteProject(projects[0].ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.DeleteClient(c.ID)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestProjectDefaults(t *testing.T) {
	s := newStore(t)

	p, err := s.CreateProject("Website", nil, "", "")
	require.NoError(t, err)
	require.Equal(t, constants.ProjectActive, p.Status)
	require.NotNil(t, p.Tasks)
	require.Empty(t, p.Tasks)
}

func TestProjectsByClientAndStatus(t *testing.T) {
	s := newStore(t)

	c, err := s.CreateClient("Acme Corp", "contact@acme.com", "", "")
	require.NoError(t, err)
	_, err = s.CreateProject("Website", i64Ptr(c.ID), "", "")
	require.NoError(t, err)
	_, err = s.CreateProject("Internal", nil, "", constants.ProjectOnHold)
	require.NoError(t, err)

	byClient, err := s.ProjectsByClient(c.ID)
	require.NoError(t, err)
	require.Len(t, byClient, 1)
	require.Equal(t, "Website", byClient[0].Name)

	onHold, err := s.ProjectsByStatus(constants.ProjectOnHold)
	require.NoError(t, err)
	require.Len(t, onHold, 1)
	require.Equal(t, "Internal", onHold[0].Name)
}

func TestTaskIDsPerProject(t *testing.T) {
	s := newStore(t)

	p1, err := s.CreateProject("Website", nil, "", "")
	require.NoError(t, err)
	p2, err := s.CreateProject("Internal", nil, "", "")
	require.NoError(t, err)

	t1, err := s.CreateTask(p1.ID, "Wireframes", "", nil, "")
	require.NoError(t, err)
	t2, err := s.CreateTask(p1.ID, "Mockups", "", nil, "")
	require.NoError(t, err)

	// Each project numbers its own tasks from 1.
	other, err := s.CreateTask(p2.ID, "Setup CI", "", nil, "")
	require.NoError(t, err)
	require.Equal(t, int64(1), t1.ID)
	require.Equal(t, int64(2), t2.ID)
	require.Equal(t, int64(1), other.ID)
}

func TestCreateTaskDefaults(t *testing.T) {
	s := newStore(t)

	p, err := s.CreateProject("Website", nil, "", "")
	require.NoError(t, err)

	tk, err := s.CreateTask(p.ID, "Wireframes", "", nil, "")
	require.NoError(t, err)
	require.Equal(t, constants.TaskTodo, tk.Status)
	require.Zero(t, tk.TimeSpent)

	_, err = s.CreateTask(99, "Orphan", "", nil, "")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAllTasksFlattening(t *testing.T) {
	s := newStore(t)

	p1, err := s.CreateProject("Website", nil, "", "")
	require.NoError(t, err)
	p2, err := s.CreateProject("Internal", nil, "", "")
	require.NoError(t, err)

	_, err = s.CreateTask(p1.ID, "Wireframes", "", nil, "")
	require.NoError(t, err)
	_, err = s.CreateTask(p2.ID, "Setup CI", "", nil, "")
	require.NoError(t, err)

	all, err := s.AllTasks()
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, p1.ID, all[0].ProjectID)
	require.Equal(t, "Website", all[0].ProjectName)
	require.Equal(t, p2.ID, all[1].ProjectID)
	require.Equal(t, "Internal", all[1].ProjectName)
}

func TestTasksByUserAndStatus(t *testing.T) {
	s := newStore(t)

	p, err := s.CreateProject("Website", nil, "", "")
	require.NoError(t, err)
	_, err = s.CreateTask(p.ID, "Wireframes", "", i64Ptr(7), constants.TaskInProgress)
	require.NoError(t, err)
	_, err = s.CreateTask(p.ID, "Mockups", "", nil, "")
	require.NoError(t, err)

	mine, err := s.TasksByUser(7)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "Wireframes", mine[0].Name)

	todo, err := s.TasksByStatus(constants.TaskTodo)
	require.NoError(t, err)
	require.Len(t, todo, 1)
	require.Equal(t, "Mockups", todo[0].Name)
}

func TestTaskUpdateAndAddTime(t *testing.T) {
	s := newStore(t)

	p, err := s.CreateProject("Website", nil, "", "")
	require.NoError(t, err)
	tk, err := s.CreateTask(p.ID, "Wireframes", "", nil, "")
	require.NoError(t, err)

	updated, err := s.UpdateTask(p.ID, tk.ID, TaskUpdate{Status: strPtr(constants.TaskInProgress)})
	require.NoError(t, err)
	require.Equal(t, "Wireframes", updated.Name)
	require.Equal(t, constants.TaskInProgress, updated.Status)

	after, err := s.AddTime(p.ID, tk.ID, 1.5)
	require.NoError(t, err)
	require.Equal(t, 1.5, after.TimeSpent)

	after, err = s.AddTime(p.ID, tk.ID, 2)
	require.NoError(t, err)
	require.Equal(t, 3.5, after.TimeSpent)

	_, err = s.AddTime(p.ID, 99, 1)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDeleteTask(t *testing.T) {
	s := newStore(t)

	p, err := s.CreateProject("Website", nil, "", "")
	require.NoError(t, err)
	tk, err := s.CreateTask(p.ID, "Wireframes", "", nil, "")
	require.NoError(t, err)

	ok, err := s.DeleteTask(p.ID, tk.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.DeleteTask(p.ID, tk.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDeleteProjectDropsNestedTasks(t *testing.T) {
	s := newStore(t)

	p, err := s.CreateProject("Website", nil, "", "")
	require.NoError(t, err)
	_, err = s.CreateTask(p.ID, "Wireframes", "", nil, "")
	require.NoError(t, err)

	ok, err := s.DeleteProject(p.ID)
	require.NoError(t, err)
	require.True(t, ok)

	all, err := s.AllTasks()
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestDashboard(t *testing.T) {
	s := newStore(t)

	_, err := s.CreateClient("Acme Corp", "contact@acme.com", "", "")
	require.NoError(t, err)

	p1, err := s.CreateProject("Website", nil, "", "")
	require.NoError(t, err)
	_, err = s.CreateProject("Archive", nil, "", constants.ProjectCompleted)
	require.NoError(t, err)

	t1, err := s.CreateTask(p1.ID, "Wireframes", "", nil, constants.TaskDone)
	require.NoError(t, err)
	_, err = s.AddTime(p1.ID, t1.ID, 4)
	require.NoError(t, err)
	_, err = s.CreateTask(p1.ID, "Mockups", "", nil, constants.TaskInProgress)
	require.NoError(t, err)
	_, err = s.CreateTask(p1.ID, "Copywriting", "", nil, "")
	require.NoError(t, err)

	stats, err := s.Dashboard()
	require.NoError(t, err)
	require.Equal(t, float64(4), stats.TotalHours)
	require.Equal(t, 1, stats.ActiveProjects)
	require.Equal(t, 1, stats.TasksTodo)
	require.Equal(t, 1, stats.TasksInProgress)
	require.Equal(t, 1, stats.TasksDone)
	require.Equal(t, 3, stats.TotalTasks)
	require.Equal(t, 1, stats.Clients)
}

func TestProjectBoardProgress(t *testing.T) {
	s := newStore(t)

	p, err := s.CreateProject("Website", nil, "", "")
	require.NoError(t, err)

	// Empty board reports zero progress, not a division error.
	stats, err := s.ProjectBoard(p.ID)
	require.NoError(t, err)
	require.Zero(t, stats.Progress)

	_, err = s.CreateTask(p.ID, "One", "", nil, constants.TaskDone)
	require.NoError(t, err)
	_, err = s.CreateTask(p.ID, "Two", "", nil, "")
	require.NoError(t, err)
	_, err = s.CreateTask(p.ID, "Three", "", nil, "")
	require.NoError(t, err)

	// 1 of 3 done rounds to 33.
	stats, err = s.ProjectBoard(p.ID)
	require.NoError(t, err)
	require.Equal(t, 3, stats.TotalTasks)
	require.Equal(t, 33, stats.Progress)

	_, err = s.ProjectBoard(99)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestThemeRoundTrip(t *testing.T) {
	s := newStore(t)

	require.Equal(t, "light", s.Theme("light"))
	require.NoError(t, s.SetTheme("dark"))
	require.Equal(t, "dark", s.Theme("light"))
}

func TestReset(t *testing.T) {
	s := newStore(t)

	_, err := s.CreateUser("jdoe", "jdoe@example.com", "")
	require.NoError(t, err)
	_, err = s.CreateProject("Website", nil, "", "")
	require.NoError(t, err)
	require.NoError(t, s.SetTheme("dark"))

	require.NoError(t, s.Reset())

	users, err := s.Users()
	require.NoError(t, err)
	require.Empty(t, users)
	projects, err := s.Projects()
	require.NoError(t, err)
	require.Empty(t, projects)
	require.Equal(t, "light", s.Theme("light"))
}
