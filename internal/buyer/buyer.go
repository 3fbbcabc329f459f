// Package buyer holds the checkout form data and is the single validation
// authority for it: presence rules gate the first checkout step, contact
// format rules gate the second. Views render validation results but never
// validate themselves.
package buyer

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/shopfront/shopfront/internal/appevent"
	"github.com/shopfront/shopfront/internal/models"
	"github.com/shopfront/shopfront/pkg/events"
)

// Errors maps a field name to a human-readable problem description.
type Errors map[string]string

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Model is the buyer state holder. Every mutation emits
// appevent.BuyerChanged carrying the new data and its validation result;
// a bulk Update emits exactly once.
type Model struct {
	bus  *events.Bus
	log  *zap.Logger
	data models.BuyerData
}

// Patch is a partial buyer update; nil fields are left untouched.
type Patch struct {
	Payment *models.PaymentMethod
	Address *string
	Email   *string
	Phone   *string
}

// New creates an empty buyer model.
func New(bus *events.Bus, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	return &Model{bus: bus, log: log}
}

// SetPayment sets the payment method and emits a change event.
func (m *Model) SetPayment(p models.PaymentMethod) {
	if p != models.PaymentUnset && !p.Valid() {
		m.log.Warn("ignoring unknown payment method", zap.String("payment", string(p)))
		return
	}
	m.data.Payment = p
	m.emitChanged()
}

// SetAddress sets the delivery address and emits a change event.
func (m *Model) SetAddress(v string) {
	m.data.Address = v
	m.emitChanged()
}

// SetEmail sets the contact email and emits a change event.
func (m *Model) SetEmail(v string) {
	m.data.Email = v
	m.emitChanged()
}

// SetPhone sets the contact phone and emits a change event.
func (m *Model) SetPhone(v string) {
	m.data.Phone = v
	m.emitChanged()
}

// Update merges a partial update and emits exactly one change event, so a
// bulk edit does not trigger a re-validation per field.
func (m *Model) Update(p Patch) {
	if p.Payment != nil {
		m.data.Payment = *p.Payment
	}
	if p.Address != nil {
		m.data.Address = *p.Address
	}
	if p.Email != nil {
		m.data.Email = *p.Email
	}
	if p.Phone != nil {
		m.data.Phone = *p.Phone
	}
	m.emitChanged()
}

// Data returns the current buyer snapshot.
func (m *Model) Data() models.BuyerData {
	return m.data
}

// Clear resets every field and emits a change event.
func (m *Model) Clear() {
	m.data = models.BuyerData{}
	m.emitChanged()
}

// Validate applies the presence rules: payment chosen, address, email and
// phone non-empty. Whitespace-only values count as empty.
func (m *Model) Validate() Errors {
	errs := Errors{}
	if !m.data.Payment.Valid() {
		errs["payment"] = "Choose a payment method"
	}
	if blank(m.data.Address) {
		errs["address"] = "Enter a delivery address"
	}
	if blank(m.data.Email) {
		errs["email"] = "Enter an email address"
	}
	if blank(m.data.Phone) {
		errs["phone"] = "Enter a phone number"
	}
	return errs
}

// ValidateDelivery applies the first checkout step's guard: payment chosen
// and address non-empty.
func (m *Model) ValidateDelivery() Errors {
	errs := Errors{}
	if !m.data.Payment.Valid() {
		errs["payment"] = "Choose a payment method"
	}
	if blank(m.data.Address) {
		errs["address"] = "Enter a delivery address"
	}
	return errs
}

// ValidateContacts applies the second checkout step's guard: a well-formed
// email and a phone number with at least ten digits.
func (m *Model) ValidateContacts() Errors {
	errs := Errors{}
	if !emailPattern.MatchString(strings.TrimSpace(m.data.Email)) {
		errs["email"] = "Enter a valid email address"
	}
	if digitCount(m.data.Phone) < 10 {
		errs["phone"] = "Enter a phone number with at least 10 digits"
	}
	return errs
}

func (m *Model) emitChanged() {
	m.bus.Publish(appevent.BuyerChanged, appevent.BuyerChangedData{
		Data:   m.data,
		Errors: m.Validate(),
	})
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
