package invoice

// DraftItem mirrors an Item with the numeric fields kept in their raw typed
// form alongside the coerced values.
type DraftItem struct {
	ID          string
	Description string
	Price       Number
	Qty         Number
	Total       float64
}

// Draft is a local staging buffer over a Store for edit surfaces that must
// keep in-progress text (half-typed negatives, trailing decimal points) out
// of the authoritative state. The sync policy is asymmetric: edits always
// flow draft to store immediately, while store to draft flows only on a
// structural change, so a re-render never clobbers a keystroke.
type Draft struct {
	store *Store

	InvoiceNo       string
	Date            string
	BilledTo        BilledTo
	Items           []DraftItem
	DiscountPercent Number
	GSTPercent      Number
	Adjustment      Number
}

// NewDraft creates a Draft synchronized to the store's current state.
func NewDraft(store *Store) *Draft {
	d := &Draft{store: store}
	d.pull(store.Data())
	return d
}

// Store returns the authoritative store behind the draft.
func (d *Draft) Store() *Store {
	return d.store
}

// Totals returns the derived totals of the authoritative state.
func (d *Draft) Totals() Totals {
	return d.store.Totals()
}

// Sync pulls the store state into the draft, but only on a structural
// change: the item count differs, or the store's invoice number reverted to
// empty while the draft still has one (the reset signal). Field-level edits
// never trigger a pull.
func (d *Draft) Sync() {
	data := d.store.Data()
	if len(d.Items) != len(data.Items) || (data.InvoiceNo == "" && d.InvoiceNo != "") {
		d.pull(data)
	}
}

// SetInvoiceNo stages and forwards an invoice number edit.
func (d *Draft) SetInvoiceNo(v string) {
	d.InvoiceNo = v
	d.store.UpdateHeader(HeaderPatch{InvoiceNo: &v})
}

// SetDate stages and forwards a date edit.
func (d *Draft) SetDate(v string) {
	d.Date = v
	d.store.UpdateHeader(HeaderPatch{Date: &v})
}

// SetBilledToName stages and forwards a billed-party name edit.
func (d *Draft) SetBilledToName(v string) {
	d.BilledTo.Name = v
	d.store.UpdateBilledTo(BilledToPatch{Name: &v})
}

// SetBilledToPhone stages and forwards a billed-party phone edit.
func (d *Draft) SetBilledToPhone(v string) {
	d.BilledTo.Phone = v
	d.store.UpdateBilledTo(BilledToPatch{Phone: &v})
}

// SetBilledToAadhar stages and forwards a billed-party identity number edit.
func (d *Draft) SetBilledToAadhar(v string) {
	d.BilledTo.Aadhar = v
	d.store.UpdateBilledTo(BilledToPatch{Aadhar: &v})
}

// SetBilledToAddress stages and forwards a billed-party address edit.
func (d *Draft) SetBilledToAddress(v string) {
	d.BilledTo.Address = v
	d.store.UpdateBilledTo(BilledToPatch{Address: &v})
}

// SetItemDescription stages and forwards a line description edit.
// Out-of-range indices are a no-op.
func (d *Draft) SetItemDescription(i int, v string) {
	if i < 0 || i >= len(d.Items) {
		return
	}
	d.Items[i].Description = v
	d.store.UpdateItem(i, ItemPatch{Description: &v})
}

// SetItemPrice stages a raw price edit and forwards the coerced value. The
// raw text is preserved locally so typing "-" or "1." is not forced to "0".
func (d *Draft) SetItemPrice(i int, raw string) {
	if i < 0 || i >= len(d.Items) {
		return
	}
	n := ParseNumber(raw)
	d.Items[i].Price = n
	d.Items[i].Total = n.Value * d.Items[i].Qty.Value
	d.store.UpdateItem(i, ItemPatch{Price: &n.Value})
}

// SetItemQty stages a raw quantity edit and forwards the coerced value.
func (d *Draft) SetItemQty(i int, raw string) {
	if i < 0 || i >= len(d.Items) {
		return
	}
	n := ParseNumber(raw)
	d.Items[i].Qty = n
	d.Items[i].Total = d.Items[i].Price.Value * n.Value
	d.store.UpdateItem(i, ItemPatch{Qty: &n.Value})
}

// SetDiscountPercent stages a raw discount edit and forwards the coerced
// value.
func (d *Draft) SetDiscountPercent(raw string) {
	n := ParseNumber(raw)
	d.DiscountPercent = n
	d.store.SetDiscountPercent(n.Value)
}

// SetGSTPercent stages a raw GST edit and forwards the coerced value.
func (d *Draft) SetGSTPercent(raw string) {
	n := ParseNumber(raw)
	d.GSTPercent = n
	d.store.SetGSTPercent(n.Value)
}

// SetAdjustment stages a raw adjustment edit and forwards the coerced value.
func (d *Draft) SetAdjustment(raw string) {
	n := ParseNumber(raw)
	d.Adjustment = n
	d.store.SetAdjustment(n.Value)
}

// AddItem appends a blank item on the store and re-syncs; the count change
// triggers a pull.
func (d *Draft) AddItem() {
	d.store.AddItem()
	d.Sync()
}

// RemoveItem drops the item at index i on the store and re-syncs.
func (d *Draft) RemoveItem(i int) {
	d.store.RemoveItem(i)
	d.Sync()
}

// Reset resets the store and re-syncs. The pull fires through the usual
// structural-change detection: the item count shrinking back to one, or the
// invoice number reverting to empty.
func (d *Draft) Reset() {
	d.store.Reset()
	d.Sync()
}

func (d *Draft) pull(data Data) {
	d.InvoiceNo = data.InvoiceNo
	d.Date = data.Date
	d.BilledTo = data.BilledTo
	d.Items = make([]DraftItem, len(data.Items))
	for i, it := range data.Items {
		d.Items[i] = DraftItem{
			ID:          it.ID,
			Description: it.Description,
			Price:       Number{Raw: FormatNumber(it.Price), Value: it.Price},
			Qty:         Number{Raw: FormatNumber(it.Qty), Value: it.Qty},
			Total:       it.Total,
		}
	}
	d.DiscountPercent = Number{Raw: FormatNumber(data.DiscountPercent), Value: data.DiscountPercent}
	d.GSTPercent = Number{Raw: FormatNumber(data.GSTPercent), Value: data.GSTPercent}
	d.Adjustment = Number{Raw: FormatNumber(data.Adjustment), Value: data.Adjustment}
}
