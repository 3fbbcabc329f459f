// Package presenter wires the catalog, basket and buyer models to the
// views through the event broker and drives the two-step checkout flow.
//
// Rendering is single-pathway: every surface is redrawn from model state in
// exactly one place (the model-change handlers and the state transitions
// below), never from chained view callbacks.
package presenter

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopfront/shopfront/internal/api"
	"github.com/shopfront/shopfront/internal/appevent"
	"github.com/shopfront/shopfront/internal/basket"
	"github.com/shopfront/shopfront/internal/buyer"
	"github.com/shopfront/shopfront/internal/catalog"
	"github.com/shopfront/shopfront/internal/models"
	"github.com/shopfront/shopfront/internal/view"
	"github.com/shopfront/shopfront/pkg/events"
)

// State is the presenter's position in the browse/checkout flow.
type State int

const (
	Browsing State = iota
	ProductDetail
	BasketOpen
	OrderStep1
	OrderStep2
	OrderSubmitting
	OrderSuccess
)

func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case ProductDetail:
		return "product-detail"
	case BasketOpen:
		return "basket-open"
	case OrderStep1:
		return "order-step-1"
	case OrderStep2:
		return "order-step-2"
	case OrderSubmitting:
		return "order-submitting"
	case OrderSuccess:
		return "order-success"
	}
	return "unknown"
}

// ShopAPI is the slice of the shop service client the presenter needs.
type ShopAPI interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	CreateOrder(ctx context.Context, order models.OrderRequest) (*models.OrderResponse, error)
}

// Views groups the surfaces the presenter renders to.
type Views struct {
	Gallery view.Gallery
	Header  view.Header
	Modal   view.Modal
}

// pendingOrder carries the first checkout step's results into the second.
// The idempotency key is fixed when the order data is first assembled so a
// retried submission cannot create a second order.
type pendingOrder struct {
	Payment        models.PaymentMethod
	Address        string
	Items          []string
	Total          float64
	IdempotencyKey string
}

// Presenter coordinates models and views. It is single-threaded: all
// handlers run inline on the broker's dispatch.
type Presenter struct {
	bus     *events.Bus
	catalog *catalog.Model
	basket  *basket.Model
	buyer   *buyer.Model
	shop    ShopAPI
	views   Views
	log     *zap.Logger

	// ctx is captured in Run and used by event handlers for the one
	// network call they make; broker handlers carry no context of their own.
	ctx     context.Context
	state   State
	pending *pendingOrder
}

// New creates the presenter and registers its event subscriptions.
func New(bus *events.Bus, cat *catalog.Model, bas *basket.Model, buy *buyer.Model, shop ShopAPI, views Views, log *zap.Logger) *Presenter {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Presenter{
		bus:     bus,
		catalog: cat,
		basket:  bas,
		buyer:   buy,
		shop:    shop,
		views:   views,
		log:     log,
		ctx:     context.Background(),
		state:   Browsing,
	}
	p.subscribe()
	return p
}

// State returns the current flow state.
func (p *Presenter) State() State {
	return p.state
}

// Run restores the persisted basket, fetches the catalog and renders the
// initial screen. The catalog fetch is one-shot: on failure the user gets
// an alert and the application state stays as it was.
func (p *Presenter) Run(ctx context.Context) error {
	p.ctx = ctx

	p.views.Header.SetCounter(p.basket.Count())
	p.basket.Restore(ctx)

	items, err := p.shop.GetProducts(ctx)
	if err != nil {
		p.log.Error("failed to load catalog", zap.Error(err))
		p.views.Modal.Alert("Could not load the catalog: " + userMessage(err))
		return err
	}
	p.catalog.SetProducts(items)
	return nil
}

func (p *Presenter) subscribe() {
	events.On(p.bus, appevent.CatalogChanged, p.onCatalogChanged)
	events.On(p.bus, appevent.CatalogSelected, p.onCatalogSelected)
	events.On(p.bus, appevent.BasketChanged, p.onBasketChanged)
	events.On(p.bus, appevent.BuyerChanged, p.onBuyerChanged)

	events.On(p.bus, appevent.CardSelect, p.onCardSelect)
	events.On(p.bus, appevent.CardToggle, p.onCardToggle)
	events.On(p.bus, appevent.BasketItemRemove, p.onBasketItemRemove)
	events.On(p.bus, appevent.OrderField, p.onOrderField)

	// Payload-free gestures.
	p.bus.Subscribe(appevent.BasketOpen, func(any) { p.onBasketOpen() })
	p.bus.Subscribe(appevent.BasketCheckout, func(any) { p.onBasketCheckout() })
	p.bus.Subscribe(appevent.OrderNext, func(any) { p.onOrderNext() })
	p.bus.Subscribe(appevent.OrderPay, func(any) { p.onOrderPay() })
	p.bus.Subscribe(appevent.ModalClose, func(any) { p.onModalClose() })
}

// Model change handlers: the single authoritative render per surface.

func (p *Presenter) onCatalogChanged(d appevent.CatalogChangedData) {
	p.views.Gallery.Render(d.Items)
}

func (p *Presenter) onCatalogSelected(d appevent.CatalogSelectedData) {
	p.state = ProductDetail
	p.views.Modal.ShowProduct(d.Item, p.basket.Has(d.Item.ID))
}

func (p *Presenter) onBasketChanged(d appevent.BasketChangedData) {
	p.views.Header.SetCounter(d.Count)

	switch p.state {
	case BasketOpen:
		p.views.Modal.ShowBasket(d.Items, d.Total)
	case ProductDetail:
		if selected, ok := p.catalog.Selected(); ok {
			p.views.Modal.ShowProduct(selected, p.basket.Has(selected.ID))
		}
	}
}

func (p *Presenter) onBuyerChanged(appevent.BuyerChangedData) {
	switch p.state {
	case OrderStep1:
		p.renderOrderForm()
	case OrderStep2:
		p.renderContactsForm()
	}
}

// Gesture handlers.

func (p *Presenter) onCardSelect(d appevent.CardSelectData) {
	product, ok := p.catalog.ByID(d.ID)
	if !ok {
		p.log.Warn("card click for unknown product", zap.String("product_id", d.ID))
		return
	}
	p.catalog.Select(product)
}

func (p *Presenter) onCardToggle(d appevent.CardToggleData) {
	product, ok := p.catalog.ByID(d.ID)
	if !ok {
		p.log.Warn("basket toggle for unknown product", zap.String("product_id", d.ID))
		return
	}
	if p.basket.Has(product.ID) {
		p.basket.Remove(p.ctx, product.ID)
	} else {
		p.basket.Add(p.ctx, product)
	}
}

func (p *Presenter) onBasketOpen() {
	p.state = BasketOpen
	p.views.Modal.ShowBasket(p.basket.Items(), p.basket.Total())
}

func (p *Presenter) onBasketItemRemove(d appevent.BasketItemRemoveData) {
	p.basket.Remove(p.ctx, d.ID)
}

func (p *Presenter) onBasketCheckout() {
	if p.basket.Count() == 0 {
		p.views.Modal.Alert("Your basket is empty")
		return
	}
	p.state = OrderStep1
	p.renderOrderForm()
}

func (p *Presenter) onOrderField(d appevent.OrderFieldData) {
	switch d.Field {
	case "payment":
		p.buyer.SetPayment(models.PaymentMethod(d.Value))
	case "address":
		p.buyer.SetAddress(d.Value)
	case "email":
		p.buyer.SetEmail(d.Value)
	case "phone":
		p.buyer.SetPhone(d.Value)
	default:
		p.log.Warn("edit of unknown checkout field", zap.String("field", d.Field))
	}
}

func (p *Presenter) onOrderNext() {
	if p.state != OrderStep1 {
		p.log.Warn("step-1 submit outside checkout", zap.Stringer("state", p.state))
		return
	}
	if len(p.buyer.ValidateDelivery()) > 0 {
		p.renderOrderForm()
		return
	}

	data := p.buyer.Data()
	p.pending = &pendingOrder{
		Payment:        data.Payment,
		Address:        data.Address,
		Items:          p.basket.ItemIDs(),
		Total:          p.basket.Total(),
		IdempotencyKey: uuid.NewString(),
	}
	p.state = OrderStep2
	p.renderContactsForm()
}

func (p *Presenter) onOrderPay() {
	if p.state != OrderStep2 {
		p.log.Warn("payment submit outside contacts step", zap.Stringer("state", p.state))
		return
	}
	if len(p.buyer.ValidateContacts()) > 0 {
		p.renderContactsForm()
		return
	}
	p.submitOrder()
}

func (p *Presenter) onModalClose() {
	p.state = Browsing
	p.views.Modal.Close()
}

// submitOrder issues the one-shot order call. On failure the form state and
// pending order data are preserved for retry; the basket is cleared only
// after confirmed server success.
func (p *Presenter) submitOrder() {
	data := p.buyer.Data()
	req := models.OrderRequest{
		Payment:        p.pending.Payment,
		Address:        p.pending.Address,
		Email:          data.Email,
		Phone:          data.Phone,
		Total:          p.pending.Total,
		Items:          p.pending.Items,
		IdempotencyKey: p.pending.IdempotencyKey,
	}

	p.state = OrderSubmitting
	resp, err := p.shop.CreateOrder(p.ctx, req)
	if err != nil {
		p.log.Error("order submission failed", zap.Error(err))
		p.state = OrderStep2
		p.views.Modal.Alert("Order could not be placed: " + userMessage(err))
		p.renderContactsForm()
		return
	}

	p.state = OrderSuccess
	p.basket.Clear(p.ctx)
	p.buyer.Clear()
	p.pending = nil
	p.views.Modal.ShowSuccess(resp.ID, resp.Total)
	p.bus.Publish(appevent.OrderSuccess, appevent.OrderSuccessData{ID: resp.ID, Total: resp.Total})
}

func (p *Presenter) renderOrderForm() {
	errs := p.buyer.ValidateDelivery()
	p.views.Modal.ShowOrderForm(p.buyer.Data(), formMessage(errs, "payment", "address"), len(errs) == 0)
}

func (p *Presenter) renderContactsForm() {
	errs := p.buyer.ValidateContacts()
	p.views.Modal.ShowContactsForm(p.buyer.Data(), formMessage(errs, "email", "phone"), len(errs) == 0)
}

// formMessage joins field errors in a fixed field order so the inline text
// is stable across renders.
func formMessage(errs buyer.Errors, fields ...string) string {
	var parts []string
	for _, f := range fields {
		if msg, ok := errs[f]; ok {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, "; ")
}

// userMessage prefers the server's error detail when there is one.
func userMessage(err error) string {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return err.Error()
}
