package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kitchenlabs/tckt-backend/api/responses"
	"github.com/kitchenlabs/tckt-backend/api/validators"
	"github.com/kitchenlabs/tckt-backend/internal/orders"
	"github.com/kitchenlabs/tckt-backend/pkg/db/models"
	pkgerrors "github.com/kitchenlabs/tckt-backend/pkg/errors"
	"github.com/kitchenlabs/tckt-backend/pkg/logger"
	"github.com/kitchenlabs/tckt-backend/pkg/pagination"
)

type createOrderRequest struct {
	Item        string `json:"item"`
	TableNumber *int   `json:"tableNumber"`
}

// CreateOrder accepts a new ticket for the kitchen queue.
func CreateOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Create(r.Context(), orders.CreateOrderInput{
			Item:        req.Item,
			TableNumber: req.TableNumber,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// ListActiveOrders returns every non-archived ticket, newest first.
func ListActiveOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListActive(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// ClaimOrder moves a ticket to IN_PROGRESS under this replica's identity.
func ClaimOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return transitionHandler(svc.Claim, logg)
}

// DoneOrder completes a ticket.
func DoneOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return transitionHandler(svc.Done, logg)
}

// ArchiveOrder moves a completed ticket out of the active queue.
func ArchiveOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return transitionHandler(svc.Archive, logg)
}

// ListArchivedOrders returns a page of archived tickets.
func ListArchivedOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := validators.ParseQueryInt(r, "page", 0, 0, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		size, err := validators.ParseQueryInt(r, "size", pagination.DefaultPageSize, 1, pagination.MaxPageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListArchived(r.Context(), pagination.Params{Page: page, Size: size})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// OrdersMeta reports which replica served the request.
func OrdersMeta(svc orders.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Meta())
	}
}

// OrdersStats aggregates the whole queue by status, pod and node.
func OrdersStats(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stats)
	}
}

func transitionHandler(transition func(ctx context.Context, id int64) (*models.KitchenOrder, error), logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseOrderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithOrderID(ctx, id)
		}

		order, err := transition(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func parseOrderID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "orderId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid order id").WithDetails(map[string]any{"orderId": raw})
	}
	return id, nil
}
