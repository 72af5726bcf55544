package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	internalorders "github.com/kitchenlabs/tckt-backend/internal/orders"
	"github.com/kitchenlabs/tckt-backend/pkg/config"
	"github.com/kitchenlabs/tckt-backend/pkg/db/models"
	"github.com/kitchenlabs/tckt-backend/pkg/pagination"
)

type routerStubService struct{}

func (routerStubService) Create(ctx context.Context, input internalorders.CreateOrderInput) (*models.KitchenOrder, error) {
	return &models.KitchenOrder{ID: 1, Version: 1, Item: input.Item}, nil
}

func (routerStubService) Claim(ctx context.Context, id int64) (*models.KitchenOrder, error) {
	return &models.KitchenOrder{ID: id}, nil
}

func (routerStubService) Done(ctx context.Context, id int64) (*models.KitchenOrder, error) {
	return &models.KitchenOrder{ID: id}, nil
}

func (routerStubService) Archive(ctx context.Context, id int64) (*models.KitchenOrder, error) {
	return &models.KitchenOrder{ID: id, Archived: true}, nil
}

func (routerStubService) ListActive(ctx context.Context) ([]models.KitchenOrder, error) {
	return nil, nil
}

func (routerStubService) ListArchived(ctx context.Context, params pagination.Params) (*internalorders.ArchivedOrderPage, error) {
	return &internalorders.ArchivedOrderPage{Page: params.Page, Size: params.Size}, nil
}

func (routerStubService) Meta() internalorders.MetaInfo {
	return internalorders.MetaInfo{PodName: "pod-1", NodeName: "node-1"}
}

func (routerStubService) Stats(ctx context.Context) (*internalorders.OrderStats, error) {
	return &internalorders.OrderStats{}, nil
}

func newTestRouter() http.Handler {
	cfg := &config.Config{App: config.AppConfig{Env: "dev"}}
	return NewRouter(cfg, nil, nil, routerStubService{}, prometheus.NewRegistry())
}

func TestRouterMountsOrderRoutes(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health/live", http.StatusOK},
		{http.MethodGet, "/health/ready", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/orders", http.StatusOK},
		{http.MethodGet, "/api/orders/archived", http.StatusOK},
		{http.MethodGet, "/api/orders/meta", http.StatusOK},
		{http.MethodGet, "/api/orders/stats", http.StatusOK},
		{http.MethodPost, "/api/orders/1/claim", http.StatusOK},
		{http.MethodPost, "/api/orders/1/done", http.StatusOK},
		{http.MethodPost, "/api/orders/1/archive", http.StatusOK},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != tc.status {
			t.Fatalf("%s %s: expected %d but got %d", tc.method, tc.path, tc.status, resp.Code)
		}
	}
}

func TestRouterSetsRequestIDHeader(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected request id header to be set")
	}
}
