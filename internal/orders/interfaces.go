package orders

import (
	"context"

	"github.com/kitchenlabs/tckt-backend/pkg/db/models"
	"github.com/kitchenlabs/tckt-backend/pkg/pagination"
)

// Repository defines persistence operations for the shared order queue.
//
// Save carries the optimistic-concurrency contract: the write only lands when
// the row still holds the version the caller loaded, and a stale version
// surfaces as ErrVersionConflict. Implementations return raw store errors
// (gorm.ErrRecordNotFound included); the service layer translates them.
type Repository interface {
	Create(ctx context.Context, order *models.KitchenOrder) (*models.KitchenOrder, error)
	FindByID(ctx context.Context, id int64) (*models.KitchenOrder, error)
	Save(ctx context.Context, order *models.KitchenOrder) (*models.KitchenOrder, error)
	ListActive(ctx context.Context) ([]models.KitchenOrder, error)
	ListArchived(ctx context.Context, params pagination.Params) ([]models.KitchenOrder, int64, error)
	ListAll(ctx context.Context) ([]models.KitchenOrder, error)
}
