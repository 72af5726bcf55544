package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/kitchenlabs/tckt-backend/pkg/enums"
)

// KitchenOrder is a single ticket in the shared kitchen queue. The Version
// column is the sole coordination mechanism between replicas: every save is
// checked against the version the writer read, and stale writes are rejected.
type KitchenOrder struct {
	ID            int64             `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Version       int64             `gorm:"column:version;not null;default:0" json:"version"`
	Item          string            `gorm:"column:item;not null" json:"item"`
	TableNumber   *int              `gorm:"column:table_number" json:"tableNumber,omitempty"`
	Status        enums.OrderStatus `gorm:"column:status;type:text;not null;default:'NEW'" json:"status"`
	HandledByPod  *string           `gorm:"column:handled_by_pod" json:"handledByPod,omitempty"`
	HandledByNode *string           `gorm:"column:handled_by_node" json:"handledByNode,omitempty"`
	Archived      bool              `gorm:"column:archived;not null;default:false" json:"archived"`
	CreatedAt     time.Time         `gorm:"column:created_at" json:"createdAt"`
}

// TableName keeps the legacy table name.
func (KitchenOrder) TableName() string {
	return "orders"
}

// BeforeCreate assigns creation-time defaults. CreatedAt is only set while
// still zero, so repeated pre-persist attempts never move the timestamp.
func (o *KitchenOrder) BeforeCreate(_ *gorm.DB) error {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	if o.Status == "" {
		o.Status = enums.OrderStatusNew
	}
	return nil
}
