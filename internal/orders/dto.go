package orders

import (
	"github.com/kitchenlabs/tckt-backend/pkg/db/models"
)

// CreateOrderInput carries the fields accepted when a ticket enters the queue.
type CreateOrderInput struct {
	Item        string
	TableNumber *int
}

// ArchivedOrderPage is one page of the archived view plus pagination metadata.
type ArchivedOrderPage struct {
	Orders        []models.KitchenOrder `json:"orders"`
	Page          int                   `json:"page"`
	Size          int                   `json:"size"`
	TotalElements int64                 `json:"totalElements"`
	TotalPages    int                   `json:"totalPages"`
}

// MetaInfo names the replica that served the request.
type MetaInfo struct {
	PodName  string `json:"podName"`
	NodeName string `json:"nodeName"`
}

// OrderStats aggregates the full order set, active and archived alike.
// Orders that were never claimed carry no handler and are excluded from the
// pod/node groupings.
type OrderStats struct {
	TotalOrders int64            `json:"totalOrders"`
	ByStatus    map[string]int64 `json:"byStatus"`
	ByPod       map[string]int64 `json:"byPod"`
	ByNode      map[string]int64 `json:"byNode"`
}
