package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/kitchenlabs/tckt-backend/pkg/config"
	"github.com/kitchenlabs/tckt-backend/pkg/db/models"
	"github.com/kitchenlabs/tckt-backend/pkg/enums"
	pkgerrors "github.com/kitchenlabs/tckt-backend/pkg/errors"
	"github.com/kitchenlabs/tckt-backend/pkg/identity"
	"github.com/kitchenlabs/tckt-backend/pkg/metrics"
	"github.com/kitchenlabs/tckt-backend/pkg/pagination"
)

// Service owns the order lifecycle and its read-side views. Every mutation is
// a single load-modify-save cycle checked against the version read at load
// time. A lost race comes back as CONFLICT and is never retried here; the
// caller decides whether to run the cycle again.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*models.KitchenOrder, error)
	Claim(ctx context.Context, id int64) (*models.KitchenOrder, error)
	Done(ctx context.Context, id int64) (*models.KitchenOrder, error)
	Archive(ctx context.Context, id int64) (*models.KitchenOrder, error)
	ListActive(ctx context.Context) ([]models.KitchenOrder, error)
	ListArchived(ctx context.Context, params pagination.Params) (*ArchivedOrderPage, error)
	Meta() MetaInfo
	Stats(ctx context.Context) (*OrderStats, error)
}

type service struct {
	repo    Repository
	replica identity.Identity
	policy  config.OrdersConfig
	metrics *metrics.OrderMetrics
}

// NewService builds the order lifecycle service. Metrics may be nil.
func NewService(repo Repository, replica identity.Identity, policy config.OrdersConfig, m *metrics.OrderMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{
		repo:    repo,
		replica: replica,
		policy:  policy,
		metrics: m,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (*models.KitchenOrder, error) {
	item := strings.TrimSpace(input.Item)
	if item == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item required")
	}
	if s.policy.RequireTableNumber && input.TableNumber == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "table number required")
	}

	order := &models.KitchenOrder{
		Item:        item,
		TableNumber: input.TableNumber,
		Status:      enums.OrderStatusNew,
		Archived:    false,
	}

	start := time.Now()
	created, err := s.repo.Create(ctx, order)
	s.metrics.ObserveDuration("create", time.Since(start))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}
	s.metrics.IncTransition("create")
	return created, nil
}

func (s *service) Claim(ctx context.Context, id int64) (*models.KitchenOrder, error) {
	order, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status == enums.OrderStatusDone {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order already done")
	}

	// Last claim wins: a re-claim moves ownership to this replica.
	order.Status = enums.OrderStatusInProgress
	s.stampHandler(order)

	return s.save(ctx, order, "claim")
}

func (s *service) Done(ctx context.Context, id int64) (*models.KitchenOrder, error) {
	order, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	// No status precondition: a NEW order may be completed without ever
	// being claimed. In that case the completing replica becomes the
	// handler; an existing claimant keeps the credit.
	order.Status = enums.OrderStatusDone
	if order.HandledByPod == nil {
		s.stampHandler(order)
	}

	return s.save(ctx, order, "done")
}

func (s *service) Archive(ctx context.Context, id int64) (*models.KitchenOrder, error) {
	order, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status != enums.OrderStatusDone {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "only completed orders can be archived")
	}

	order.Archived = true

	return s.save(ctx, order, "archive")
}

func (s *service) ListActive(ctx context.Context) ([]models.KitchenOrder, error) {
	list, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list active orders")
	}
	return list, nil
}

func (s *service) ListArchived(ctx context.Context, params pagination.Params) (*ArchivedOrderPage, error) {
	params = params.Normalize()
	list, total, err := s.repo.ListArchived(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list archived orders")
	}
	return &ArchivedOrderPage{
		Orders:        list,
		Page:          params.Page,
		Size:          params.Size,
		TotalElements: total,
		TotalPages:    pagination.TotalPages(total, params.Size),
	}, nil
}

func (s *service) Meta() MetaInfo {
	return MetaInfo{
		PodName:  s.replica.PodName,
		NodeName: s.replica.NodeName,
	}
}

func (s *service) Stats(ctx context.Context) (*OrderStats, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list all orders")
	}

	stats := &OrderStats{
		TotalOrders: int64(len(all)),
		ByStatus:    map[string]int64{},
		ByPod:       map[string]int64{},
		ByNode:      map[string]int64{},
	}
	for _, order := range all {
		stats.ByStatus[order.Status.String()]++
		if order.HandledByPod != nil {
			stats.ByPod[*order.HandledByPod]++
		}
		if order.HandledByNode != nil {
			stats.ByNode[*order.HandledByNode]++
		}
	}
	return stats, nil
}

func (s *service) load(ctx context.Context, id int64) (*models.KitchenOrder, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) save(ctx context.Context, order *models.KitchenOrder, operation string) (*models.KitchenOrder, error) {
	start := time.Now()
	saved, err := s.repo.Save(ctx, order)
	s.metrics.ObserveDuration(operation, time.Since(start))
	if err != nil {
		switch {
		case errors.Is(err, ErrVersionConflict):
			s.metrics.IncConflict(operation)
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "order was modified by another replica")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		default:
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save order")
		}
	}
	s.metrics.IncTransition(operation)
	return saved, nil
}

func (s *service) stampHandler(order *models.KitchenOrder) {
	pod := s.replica.PodName
	node := s.replica.NodeName
	order.HandledByPod = &pod
	order.HandledByNode = &node
}
