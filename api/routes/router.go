package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kitchenlabs/tckt-backend/api/controllers"
	"github.com/kitchenlabs/tckt-backend/api/middleware"
	"github.com/kitchenlabs/tckt-backend/internal/orders"
	"github.com/kitchenlabs/tckt-backend/pkg/config"
	"github.com/kitchenlabs/tckt-backend/pkg/db"
	"github.com/kitchenlabs/tckt-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	ordersSvc orders.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", controllers.ListActiveOrders(ordersSvc, logg))
		r.Post("/", controllers.CreateOrder(ordersSvc, logg))
		r.Get("/archived", controllers.ListArchivedOrders(ordersSvc, logg))
		r.Get("/meta", controllers.OrdersMeta(ordersSvc))
		r.Get("/stats", controllers.OrdersStats(ordersSvc, logg))
		r.Post("/{orderId}/claim", controllers.ClaimOrder(ordersSvc, logg))
		r.Post("/{orderId}/done", controllers.DoneOrder(ordersSvc, logg))
		r.Post("/{orderId}/archive", controllers.ArchiveOrder(ordersSvc, logg))
	})

	return r
}
