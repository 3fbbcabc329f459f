package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopfront/shopfront/internal/models"
	"github.com/shopfront/shopfront/internal/repository"
)

var (
	ErrEmptyOrder     = errors.New("order must contain at least one item")
	ErrUnknownProduct = errors.New("unknown product in order")
	ErrNotForSale     = errors.New("product is not for sale")
	ErrTotalMismatch  = errors.New("order total does not match item prices")
	ErrMissingBuyer   = errors.New("order is missing buyer data")
)

// totalTolerance absorbs float rounding between client and server sums.
const totalTolerance = 0.005

// OrderService validates and confirms orders. The client-submitted total is
// never trusted: the service recomputes it from the catalog and rejects
// mismatches.
type OrderService struct {
	productRepo repository.ProductRepository
	log         *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(productRepo repository.ProductRepository, log *zap.Logger) *OrderService {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderService{
		productRepo: productRepo,
		log:         log,
	}
}

// CreateOrder validates an order request and returns a confirmation with a
// fresh order id and the server-computed total.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if !req.Payment.Valid() {
		return nil, ErrMissingBuyer
	}
	if req.Address == "" {
		return nil, ErrMissingBuyer
	}

	var total float64
	for _, id := range req.Items {
		product, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			s.log.Warn("order references unknown product", zap.String("product_id", id))
			return nil, ErrUnknownProduct
		}
		if !product.ForSale() {
			s.log.Warn("order references product not for sale", zap.String("product_id", id))
			return nil, ErrNotForSale
		}
		total += *product.Price
	}

	if math.Abs(total-req.Total) > totalTolerance {
		s.log.Warn("order total mismatch",
			zap.Float64("client_total", req.Total),
			zap.Float64("server_total", total))
		return nil, ErrTotalMismatch
	}

	order := &models.OrderResponse{
		ID:    uuid.New().String(),
		Total: total,
	}

	s.log.Info("order confirmed",
		zap.String("order_id", order.ID),
		zap.Float64("total", order.Total),
		zap.Int("items_count", len(req.Items)))
	return order, nil
}
