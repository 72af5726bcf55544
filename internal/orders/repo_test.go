package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kitchenlabs/tckt-backend/pkg/db/models"
	"github.com/kitchenlabs/tckt-backend/pkg/enums"
	"github.com/kitchenlabs/tckt-backend/pkg/pagination"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`DROP TABLE IF EXISTS orders`).Error)
	ddl := `
CREATE TABLE orders (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  version INTEGER NOT NULL DEFAULT 0,
  item TEXT NOT NULL,
  table_number INTEGER,
  status TEXT NOT NULL DEFAULT 'NEW',
  handled_by_pod TEXT,
  handled_by_node TEXT,
  archived INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func createTestOrder(t *testing.T, repo Repository, item string, created time.Time) *models.KitchenOrder {
	t.Helper()

	table := 4
	order, err := repo.Create(context.Background(), &models.KitchenOrder{
		Item:        item,
		TableNumber: &table,
		Status:      enums.OrderStatusNew,
		CreatedAt:   created,
	})
	require.NoError(t, err)
	return order
}

func TestRepositoryCreateAssignsInitialVersion(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	order := createTestOrder(t, repo, "margherita", time.Time{})

	assert.NotZero(t, order.ID)
	assert.Equal(t, int64(1), order.Version)
	assert.Equal(t, enums.OrderStatusNew, order.Status)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestRepositoryFindByIDNotFound(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), 424242)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRepositorySaveBumpsVersion(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	order := createTestOrder(t, repo, "carbonara", time.Time{})

	pod := "pod-a"
	node := "node-a"
	order.Status = enums.OrderStatusInProgress
	order.HandledByPod = &pod
	order.HandledByNode = &node

	saved, err := repo.Save(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, int64(2), saved.Version)

	reloaded, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), reloaded.Version)
	assert.Equal(t, enums.OrderStatusInProgress, reloaded.Status)
	require.NotNil(t, reloaded.HandledByPod)
	assert.Equal(t, "pod-a", *reloaded.HandledByPod)
}

func TestRepositorySaveRejectsStaleVersion(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	order := createTestOrder(t, repo, "tiramisu", time.Time{})

	first, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	second, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)

	first.Status = enums.OrderStatusInProgress
	_, err = repo.Save(context.Background(), first)
	require.NoError(t, err)

	second.Status = enums.OrderStatusDone
	_, err = repo.Save(context.Background(), second)
	assert.True(t, errors.Is(err, ErrVersionConflict))

	reloaded, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusInProgress, reloaded.Status)
	assert.Equal(t, int64(2), reloaded.Version)
}

func TestRepositorySaveMissingRow(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	order := createTestOrder(t, repo, "espresso", time.Time{})
	require.NoError(t, db.Exec(`DELETE FROM orders WHERE id = ?`, order.ID).Error)

	_, err := repo.Save(context.Background(), order)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRepositoryListActiveExcludesArchivedNewestFirst(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	older := createTestOrder(t, repo, "older", base)
	newer := createTestOrder(t, repo, "newer", base.Add(time.Minute))
	archived := createTestOrder(t, repo, "archived", base.Add(2*time.Minute))

	archived.Status = enums.OrderStatusDone
	archived.Archived = true
	_, err := repo.Save(context.Background(), archived)
	require.NoError(t, err)

	list, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}

func TestRepositoryListActiveBreaksTiesByID(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := createTestOrder(t, repo, "first", at)
	second := createTestOrder(t, repo, "second", at)

	list, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestRepositoryListArchivedPaginates(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var archived []*models.KitchenOrder
	for i := 0; i < 5; i++ {
		order := createTestOrder(t, repo, "done", base.Add(time.Duration(i)*time.Minute))
		order.Status = enums.OrderStatusDone
		order.Archived = true
		saved, err := repo.Save(context.Background(), order)
		require.NoError(t, err)
		archived = append(archived, saved)
	}
	createTestOrder(t, repo, "still-active", base.Add(time.Hour))

	page, total, err := repo.ListArchived(context.Background(), pagination.Params{Page: 0, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, archived[4].ID, page[0].ID)
	assert.Equal(t, archived[3].ID, page[1].ID)

	last, total, err := repo.ListArchived(context.Background(), pagination.Params{Page: 2, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, last, 1)
	assert.Equal(t, archived[0].ID, last[0].ID)
}

func TestRepositoryListAllIncludesArchived(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	createTestOrder(t, repo, "active", base)
	done := createTestOrder(t, repo, "archived", base.Add(time.Minute))
	done.Status = enums.OrderStatusDone
	done.Archived = true
	_, err := repo.Save(context.Background(), done)
	require.NoError(t, err)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
