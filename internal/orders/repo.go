package orders

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kitchenlabs/tckt-backend/pkg/db/models"
	"github.com/kitchenlabs/tckt-backend/pkg/pagination"
)

// ErrVersionConflict reports a save rejected because the row moved past the
// version the caller loaded.
var ErrVersionConflict = errors.New("order version conflict")

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, order *models.KitchenOrder) (*models.KitchenOrder, error) {
	order.Version = 1
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.KitchenOrder, error) {
	var order models.KitchenOrder
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Save performs the compare-and-swap write. The UPDATE is guarded by the
// version the caller read, so of two writers racing from the same snapshot
// exactly one lands; the other sees zero affected rows and gets
// ErrVersionConflict (or gorm.ErrRecordNotFound when the id vanished).
func (r *repository) Save(ctx context.Context, order *models.KitchenOrder) (*models.KitchenOrder, error) {
	expected := order.Version

	res := r.db.WithContext(ctx).
		Model(&models.KitchenOrder{}).
		Where("id = ? AND version = ?", order.ID, expected).
		Updates(map[string]any{
			"item":            order.Item,
			"table_number":    order.TableNumber,
			"status":          order.Status,
			"handled_by_pod":  order.HandledByPod,
			"handled_by_node": order.HandledByNode,
			"archived":        order.Archived,
			"version":         expected + 1,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.KitchenOrder{}).
			Where("id = ?", order.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, ErrVersionConflict
	}

	order.Version = expected + 1
	return order, nil
}

func (r *repository) ListActive(ctx context.Context) ([]models.KitchenOrder, error) {
	var list []models.KitchenOrder
	err := r.db.WithContext(ctx).
		Where("archived = ?", false).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) ListArchived(ctx context.Context, params pagination.Params) ([]models.KitchenOrder, int64, error) {
	params = params.Normalize()

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.KitchenOrder{}).
		Where("archived = ?", true).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []models.KitchenOrder
	err := r.db.WithContext(ctx).
		Where("archived = ?", true).
		Order("created_at DESC, id DESC").
		Offset(params.Offset()).
		Limit(params.Size).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *repository) ListAll(ctx context.Context) ([]models.KitchenOrder, error) {
	var list []models.KitchenOrder
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
