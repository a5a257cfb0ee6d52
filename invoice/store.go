package invoice

import (
	"time"

	"github.com/google/uuid"
)

// Item list bounds enforced by the Store.
const (
	MinItems = 1
	MaxItems = 9
)

// Percentages applied to a fresh aggregate.
const (
	DefaultDiscountPercent = 5
	DefaultGSTPercent      = 5
)

// Store holds the authoritative invoice aggregate. It is mutated only
// through its operations, each of which runs synchronously in response to a
// single discrete edit event; the Store is meant for one goroutine and does
// no locking of its own.
type Store struct {
	data Data
	now  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithNow overrides the clock used for the default invoice date.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store holding the default aggregate: empty header, today's
// date, one blank item, discount and GST at 5 percent, zero adjustment.
func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.data = s.defaultData()
	return s
}

// Load creates a Store adopting an externally decoded aggregate, normalized
// to the Store's invariants: at least one item, at most nine, a fresh id for
// every item missing one, and line totals recomputed.
func Load(data Data, opts ...Option) *Store {
	s := New(opts...)
	d := data.Clone()
	if len(d.Items) == 0 {
		d.Items = []Item{newItem()}
	}
	if len(d.Items) > MaxItems {
		d.Items = d.Items[:MaxItems]
	}
	for i := range d.Items {
		if d.Items[i].ID == "" {
			d.Items[i].ID = uuid.NewString()
		}
		d.Items[i].Total = d.Items[i].Price * d.Items[i].Qty
	}
	if d.Date == "" {
		d.Date = s.today()
	}
	s.data = d
	return s
}

// Data returns a deep copy of the current aggregate.
func (s *Store) Data() Data {
	return s.data.Clone()
}

// Totals returns the derived totals for the current aggregate.
func (s *Store) Totals() Totals {
	return s.data.Totals()
}

// HeaderPatch is a merge patch for the header fields. Nil fields are left
// untouched.
type HeaderPatch struct {
	InvoiceNo *string
	Date      *string
}

// UpdateHeader merge-patches the header fields. Values are accepted as-is,
// without validation.
func (s *Store) UpdateHeader(p HeaderPatch) {
	if p.InvoiceNo != nil {
		s.data.InvoiceNo = *p.InvoiceNo
	}
	if p.Date != nil {
		s.data.Date = *p.Date
	}
}

// BilledToPatch is a merge patch for the billed party. Nil fields are left
// untouched.
type BilledToPatch struct {
	Name    *string
	Phone   *string
	Aadhar  *string
	Address *string
}

// UpdateBilledTo merge-patches the billed party fields.
func (s *Store) UpdateBilledTo(p BilledToPatch) {
	if p.Name != nil {
		s.data.BilledTo.Name = *p.Name
	}
	if p.Phone != nil {
		s.data.BilledTo.Phone = *p.Phone
	}
	if p.Aadhar != nil {
		s.data.BilledTo.Aadhar = *p.Aadhar
	}
	if p.Address != nil {
		s.data.BilledTo.Address = *p.Address
	}
}

// SetDiscountPercent sets the discount percentage applied to the subtotal.
func (s *Store) SetDiscountPercent(v float64) {
	s.data.DiscountPercent = v
}

// SetGSTPercent sets the tax percentage applied after the discount.
func (s *Store) SetGSTPercent(v float64) {
	s.data.GSTPercent = v
}

// SetAdjustment sets the flat signed amount added after tax.
func (s *Store) SetAdjustment(v float64) {
	s.data.Adjustment = v
}

// ItemPatch is a merge patch for one line item. Numeric fields carry the
// coerced value; raw in-progress text belongs in a Draft.
type ItemPatch struct {
	Description *string
	Price       *float64
	Qty         *float64
}

// UpdateItem merge-patches the item at index i and recomputes its Total.
// Out-of-range indices are a no-op.
func (s *Store) UpdateItem(i int, p ItemPatch) {
	if i < 0 || i >= len(s.data.Items) {
		return
	}
	it := &s.data.Items[i]
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
	if p.Qty != nil {
		it.Qty = *p.Qty
	}
	it.Total = it.Price * it.Qty
}

// AddItem appends a blank item with a freshly generated id. No-op once the
// list holds MaxItems entries.
func (s *Store) AddItem() {
	if len(s.data.Items) >= MaxItems {
		return
	}
	s.data.Items = append(s.data.Items, newItem())
}

// RemoveItem drops the item at index i. No-op when i is out of range or when
// removal would leave the list empty.
func (s *Store) RemoveItem(i int) {
	if i < 0 || i >= len(s.data.Items) || len(s.data.Items) <= MinItems {
		return
	}
	s.data.Items = append(s.data.Items[:i], s.data.Items[i+1:]...)
}

// Reset replaces the entire aggregate with a fresh default state. All prior
// items and header text are discarded.
func (s *Store) Reset() {
	s.data = s.defaultData()
}

func (s *Store) defaultData() Data {
	return Data{
		Date:            s.today(),
		Items:           []Item{newItem()},
		DiscountPercent: DefaultDiscountPercent,
		GSTPercent:      DefaultGSTPercent,
	}
}

func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}

func newItem() Item {
	return Item{ID: uuid.NewString(), Qty: 1}
}
