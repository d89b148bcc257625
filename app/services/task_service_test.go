package services

import (
	"testing"

	"stockguard/app/apperr"
	"stockguard/app/db"
	"stockguard/app/models"
	"stockguard/app/repo"

	"github.com/stretchr/testify/require"
)

func newTaskService(t *testing.T) (*TaskService, *recordingNotifier) {
	t.Helper()
	gdb, err := db.ConnectInMemory()
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Task{}))
	n := &recordingNotifier{}
	return NewTaskService(repo.NewTaskRepository(gdb), n), n
}

func TestTaskCreate_SelfAssignedByDefault(t *testing.T) {
	t.Parallel()

	svc, n := newTaskService(t)
	task := &models.Task{Description: "count helmets"}
	require.NoError(t, svc.Create(staffOne, task))
	require.Equal(t, uint(1), task.UserID)
	require.Equal(t, "open", task.Status)
	require.Equal(t, []string{EventTaskCreated}, n.Events())

	require.ErrorIs(t, svc.Create(staffOne, &models.Task{}), apperr.ErrValidation)
}

func TestTaskUpdate_AssigneeScoped(t *testing.T) {
	t.Parallel()

	svc, _ := newTaskService(t)
	task := &models.Task{Description: "count helmets"}
	require.NoError(t, svc.Create(staffOne, task))

	_, err := svc.Update(staffTwo, task.ID, map[string]interface{}{"status": "done"})
	require.ErrorIs(t, err, apperr.ErrForbidden)

	updated, err := svc.Update(staffOne, task.ID, map[string]interface{}{"status": "done"})
	require.NoError(t, err)
	require.Equal(t, "done", updated.Status)
}

func TestTaskDelete_AdminUnrestricted(t *testing.T) {
	t.Parallel()

	svc, n := newTaskService(t)
	task := &models.Task{Description: "count helmets"}
	require.NoError(t, svc.Create(staffOne, task))

	require.NoError(t, svc.Delete(admin, task.ID))
	require.Contains(t, n.Events(), EventTaskDeleted)

	_, err := svc.Get(admin, task.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
