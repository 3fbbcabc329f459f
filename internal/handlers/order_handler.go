package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/shopfront/shopfront/internal/models"
	"github.com/shopfront/shopfront/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *zap.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /order/
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", zap.Error(err))
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		h.log.Error("failed to create order", zap.Error(err))

		switch {
		case errors.Is(err, service.ErrEmptyOrder):
			WriteError(w, http.StatusBadRequest, "Order must contain at least one item", h.log)
		case errors.Is(err, service.ErrMissingBuyer):
			WriteError(w, http.StatusBadRequest, "Order is missing payment or address", h.log)
		case errors.Is(err, service.ErrUnknownProduct):
			WriteError(w, http.StatusBadRequest, "Unknown product in order", h.log)
		case errors.Is(err, service.ErrNotForSale):
			WriteError(w, http.StatusBadRequest, "Product is not for sale", h.log)
		case errors.Is(err, service.ErrTotalMismatch):
			WriteError(w, http.StatusBadRequest, "Order total does not match item prices", h.log)
		default:
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
	h.log.Info("order created successfully",
		zap.String("order_id", order.ID),
		zap.Float64("total", order.Total))
}
