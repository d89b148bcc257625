package repo

import (
	"testing"
	"time"

	"stockguard/app/apperr"
	"stockguard/app/db"
	"stockguard/app/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.ConnectInMemory()
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.InventoryItem{}, &models.Tool{}, &models.Task{}))
	return gdb
}

func item(owner uint, serial string) *models.InventoryItem {
	return &models.InventoryItem{
		UserID:      owner,
		ProductType: "helmet",
		Status:      "active",
		SerialNo:    serial,
		Date:        time.Now(),
	}
}

func TestInventoryCreate_DuplicateSerial(t *testing.T) {
	t.Parallel()

	r := NewInventoryRepository(newTestDB(t))
	require.NoError(t, r.Create(item(1, "SN-001")))

	err := r.Create(item(2, "SN-001"))
	require.ErrorIs(t, err, apperr.ErrConflict)

	// The store kept exactly one row with that serial.
	items, err := r.List(ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestInventoryUpdate_UnknownID(t *testing.T) {
	t.Parallel()

	r := NewInventoryRepository(newTestDB(t))
	require.NoError(t, r.Create(item(1, "SN-001")))

	_, err := r.Update(999, map[string]interface{}{"status": "lost"})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	// No row was mutated.
	items, err := r.List(ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "active", items[0].Status)
}

func TestInventoryUpdate_RefreshesUpdatedAt(t *testing.T) {
	t.Parallel()

	r := NewInventoryRepository(newTestDB(t))
	it := item(1, "SN-001")
	require.NoError(t, r.Create(it))
	before := it.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	updated, err := r.Update(it.ID, map[string]interface{}{"status": "retired"})
	require.NoError(t, err)
	require.Equal(t, "retired", updated.Status)
	require.True(t, updated.UpdatedAt.After(before))
}

func TestInventoryDelete(t *testing.T) {
	t.Parallel()

	r := NewInventoryRepository(newTestDB(t))
	it := item(1, "SN-001")
	require.NoError(t, r.Create(it))

	require.NoError(t, r.Delete(it.ID))
	require.ErrorIs(t, r.Delete(it.ID), apperr.ErrNotFound)

	_, err := r.FindByID(it.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestInventoryList_OwnerFilterAndPagination(t *testing.T) {
	t.Parallel()

	r := NewInventoryRepository(newTestDB(t))
	require.NoError(t, r.Create(item(1, "SN-001")))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, r.Create(item(1, "SN-002")))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, r.Create(item(2, "SN-003")))

	mine, err := r.List(ListFilter{OwnerID: 1})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	// Newest first.
	require.Equal(t, "SN-002", mine[0].SerialNo)

	page2, err := r.List(ListFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page2, 1)
}
