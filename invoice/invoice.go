// Package invoice implements the invoice aggregate and its derived totals.
//
// A Store holds the authoritative state and exposes mutation operations that
// never fail: out-of-range indices, capacity overflows and malformed partial
// updates all degrade to no-ops, so a live data-entry session is never
// interrupted. A Draft layers a local staging buffer over a Store for edit
// surfaces that need to keep in-progress text out of the authoritative state.
package invoice

// Item is a single invoice line. Total is a cached derived field with the
// invariant Total == Price*Qty after every mutation settles; it is never
// independently settable.
type Item struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Qty         float64 `json:"qty"`
	Total       float64 `json:"total"`
}

// BilledTo identifies the billed party. All fields are free text; Aadhar is
// an identity-document number kept opaque and unvalidated.
type BilledTo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Aadhar  string `json:"aadhar"`
	Address string `json:"address"`
}

// Data is the root invoice aggregate.
type Data struct {
	InvoiceNo       string   `json:"invoiceNo"`
	Date            string   `json:"date"` // ISO-8601, YYYY-MM-DD
	BilledTo        BilledTo `json:"billedTo"`
	Items           []Item   `json:"items"`
	DiscountPercent float64  `json:"discountPercent"`
	GSTPercent      float64  `json:"gstPercent"`
	Adjustment      float64  `json:"adjustment"`
}

// Totals is the chain of values derived from a Data aggregate, in the fixed
// order discount before tax, adjustment last.
type Totals struct {
	Subtotal            float64 `json:"subtotal"`
	DiscountAmount      float64 `json:"discountAmount"`
	AmountAfterDiscount float64 `json:"amountAfterDiscount"`
	GSTAmount           float64 `json:"gstAmount"`
	GrandTotal          float64 `json:"grandTotal"`
}

// Totals derives the full chain from the aggregate. It is a pure function of
// d: plain float64 arithmetic, no rounding, and negative prices, quantities
// or adjustments propagate algebraically.
func (d Data) Totals() Totals {
	var t Totals
	for _, it := range d.Items {
		t.Subtotal += it.Price * it.Qty
	}
	t.DiscountAmount = t.Subtotal * (d.DiscountPercent / 100)
	t.AmountAfterDiscount = t.Subtotal - t.DiscountAmount
	t.GSTAmount = t.AmountAfterDiscount * (d.GSTPercent / 100)
	t.GrandTotal = t.AmountAfterDiscount + t.GSTAmount + d.Adjustment
	return t
}

// Clone returns a deep copy of d.
func (d Data) Clone() Data {
	out := d
	out.Items = make([]Item, len(d.Items))
	copy(out.Items, d.Items)
	return out
}
