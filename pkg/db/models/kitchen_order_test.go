package models

import (
	"testing"
	"time"

	"github.com/kitchenlabs/tckt-backend/pkg/enums"
)

func TestBeforeCreateDefaults(t *testing.T) {
	order := &KitchenOrder{Item: "ramen"}
	if err := order.BeforeCreate(nil); err != nil {
		t.Fatalf("unexpected hook error: %v", err)
	}

	if order.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be assigned")
	}
	if order.Status != enums.OrderStatusNew {
		t.Fatalf("expected NEW status, got %s", order.Status)
	}
}

func TestBeforeCreateIsIdempotent(t *testing.T) {
	stamp := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	order := &KitchenOrder{Item: "ramen", CreatedAt: stamp, Status: enums.OrderStatusInProgress}

	if err := order.BeforeCreate(nil); err != nil {
		t.Fatalf("unexpected hook error: %v", err)
	}

	if !order.CreatedAt.Equal(stamp) {
		t.Fatalf("created_at moved on repeated pre-persist: %v", order.CreatedAt)
	}
	if order.Status != enums.OrderStatusInProgress {
		t.Fatalf("status overwritten: %s", order.Status)
	}
}
