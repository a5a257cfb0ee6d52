package invoice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvillar/invoicekit/invoice"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
}

func newTestStore() *invoice.Store {
	return invoice.New(invoice.WithNow(fixedNow))
}

func TestDefaults(t *testing.T) {
	s := newTestStore()
	d := s.Data()

	assert.Empty(t, d.InvoiceNo)
	assert.Equal(t, "2024-03-15", d.Date)
	assert.Equal(t, invoice.BilledTo{}, d.BilledTo)
	require.Len(t, d.Items, 1)
	assert.NotEmpty(t, d.Items[0].ID)
	assert.Empty(t, d.Items[0].Description)
	assert.Zero(t, d.Items[0].Price)
	assert.Equal(t, 1.0, d.Items[0].Qty)
	assert.Zero(t, d.Items[0].Total)
	assert.Equal(t, 5.0, d.DiscountPercent)
	assert.Equal(t, 5.0, d.GSTPercent)
	assert.Zero(t, d.Adjustment)
}

func TestTotalsWorkedExample(t *testing.T) {
	s := newTestStore()
	price, qty := 100.0, 2.0
	s.UpdateItem(0, invoice.ItemPatch{Price: &price, Qty: &qty})

	got := s.Totals()
	assert.Equal(t, 200.0, got.Subtotal)
	assert.Equal(t, 10.0, got.DiscountAmount)
	assert.Equal(t, 190.0, got.AmountAfterDiscount)
	assert.Equal(t, 9.5, got.GSTAmount)
	assert.Equal(t, 199.5, got.GrandTotal)
}

func TestTotalsNegativeAndFractionalValues(t *testing.T) {
	tests := []struct {
		name       string
		items      []invoice.Item
		discount   float64
		gst        float64
		adjustment float64
		want       invoice.Totals
	}{
		{
			name:  "zero items sum",
			items: []invoice.Item{{Price: 0, Qty: 5}},
			want:  invoice.Totals{},
		},
		{
			name:       "negative adjustment subtracts",
			items:      []invoice.Item{{Price: 100, Qty: 1}},
			adjustment: -50,
			want: invoice.Totals{
				Subtotal:            100,
				AmountAfterDiscount: 100,
				GrandTotal:          50,
			},
		},
		{
			name:  "negative price propagates",
			items: []invoice.Item{{Price: -10, Qty: 3}},
			want: invoice.Totals{
				Subtotal:            -30,
				AmountAfterDiscount: -30,
				GrandTotal:          -30,
			},
		},
		{
			name:     "fractional qty with discount and tax",
			items:    []invoice.Item{{Price: 8, Qty: 0.5}},
			discount: 25,
			gst:      50,
			want: invoice.Totals{
				Subtotal:            4,
				DiscountAmount:      1,
				AmountAfterDiscount: 3,
				GSTAmount:           1.5,
				GrandTotal:          4.5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := invoice.Data{
				Items:           tt.items,
				DiscountPercent: tt.discount,
				GSTPercent:      tt.gst,
				Adjustment:      tt.adjustment,
			}
			assert.Equal(t, tt.want, d.Totals())
		})
	}
}

func TestUpdateItemRecomputesTotal(t *testing.T) {
	s := newTestStore()

	price := 12.5
	s.UpdateItem(0, invoice.ItemPatch{Price: &price})
	assert.Equal(t, 12.5, s.Data().Items[0].Total)

	qty := 4.0
	s.UpdateItem(0, invoice.ItemPatch{Qty: &qty})
	assert.Equal(t, 50.0, s.Data().Items[0].Total)

	desc := "widgets"
	s.UpdateItem(0, invoice.ItemPatch{Description: &desc})
	got := s.Data().Items[0]
	assert.Equal(t, "widgets", got.Description)
	assert.Equal(t, got.Price*got.Qty, got.Total)
}

func TestUpdateItemOutOfRange(t *testing.T) {
	s := newTestStore()
	before := s.Data()

	price := 99.0
	s.UpdateItem(-1, invoice.ItemPatch{Price: &price})
	s.UpdateItem(1, invoice.ItemPatch{Price: &price})
	s.UpdateItem(100, invoice.ItemPatch{Price: &price})

	assert.Equal(t, before, s.Data())
}

func TestAddItemCap(t *testing.T) {
	s := newTestStore()
	for i := 0; i < 10; i++ {
		s.AddItem()
	}
	assert.Len(t, s.Data().Items, invoice.MaxItems)
}

func TestRemoveItemMinimum(t *testing.T) {
	s := newTestStore()
	require.Len(t, s.Data().Items, 1)

	s.RemoveItem(0)
	assert.Len(t, s.Data().Items, 1)
}

func TestRemoveItemOutOfRange(t *testing.T) {
	s := newTestStore()
	s.AddItem()
	before := s.Data()

	s.RemoveItem(-1)
	s.RemoveItem(2)

	assert.Equal(t, before, s.Data())
}

func TestRemoveItemDropsCorrectEntry(t *testing.T) {
	s := newTestStore()
	s.AddItem()
	s.AddItem()

	desc := []string{"first", "second", "third"}
	for i, v := range desc {
		v := v
		s.UpdateItem(i, invoice.ItemPatch{Description: &v})
	}

	s.RemoveItem(1)
	items := s.Data().Items
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Description)
	assert.Equal(t, "third", items[1].Description)
}

func TestItemIDsUnique(t *testing.T) {
	s := newTestStore()
	for i := 0; i < 8; i++ {
		s.AddItem()
	}

	seen := make(map[string]bool)
	for _, it := range s.Data().Items {
		require.NotEmpty(t, it.ID)
		assert.False(t, seen[it.ID], "duplicate id %q", it.ID)
		seen[it.ID] = true
	}
}

func TestResetIdempotent(t *testing.T) {
	s := newTestStore()

	no := "INV-42"
	name := "Acme"
	price := 10.0
	s.UpdateHeader(invoice.HeaderPatch{InvoiceNo: &no})
	s.UpdateBilledTo(invoice.BilledToPatch{Name: &name})
	s.UpdateItem(0, invoice.ItemPatch{Price: &price})
	s.AddItem()
	s.SetDiscountPercent(12)
	s.SetAdjustment(-3)

	s.Reset()
	once := s.Data()
	s.Reset()
	twice := s.Data()

	// Item ids are regenerated per reset; everything else must match the
	// default aggregate exactly.
	once.Items[0].ID = ""
	twice.Items[0].ID = ""
	assert.Equal(t, once, twice)

	assert.Empty(t, once.InvoiceNo)
	assert.Equal(t, "2024-03-15", once.Date)
	require.Len(t, once.Items, 1)
	assert.Equal(t, 5.0, once.DiscountPercent)
	assert.Equal(t, 5.0, once.GSTPercent)
	assert.Zero(t, once.Adjustment)
}

func TestUpdateHeaderAndBilledTo(t *testing.T) {
	s := newTestStore()

	no := "INV-7"
	s.UpdateHeader(invoice.HeaderPatch{InvoiceNo: &no})
	d := s.Data()
	assert.Equal(t, "INV-7", d.InvoiceNo)
	assert.Equal(t, "2024-03-15", d.Date, "unpatched field untouched")

	name, addr := "Acme Traders", "12 Market Road"
	s.UpdateBilledTo(invoice.BilledToPatch{Name: &name, Address: &addr})
	bt := s.Data().BilledTo
	assert.Equal(t, "Acme Traders", bt.Name)
	assert.Equal(t, "12 Market Road", bt.Address)
	assert.Empty(t, bt.Phone)
	assert.Empty(t, bt.Aadhar)
}

func TestDataReturnsCopy(t *testing.T) {
	s := newTestStore()

	d := s.Data()
	d.InvoiceNo = "mutated"
	d.Items[0].Price = 999

	fresh := s.Data()
	assert.Empty(t, fresh.InvoiceNo)
	assert.Zero(t, fresh.Items[0].Price)
}

func TestLoadNormalizes(t *testing.T) {
	items := make([]invoice.Item, 12)
	for i := range items {
		items[i] = invoice.Item{Price: float64(i + 1), Qty: 2, Total: -1}
	}

	s := invoice.Load(invoice.Data{
		InvoiceNo: "INV-9",
		Items:     items,
	}, invoice.WithNow(fixedNow))

	d := s.Data()
	assert.Equal(t, "INV-9", d.InvoiceNo)
	assert.Equal(t, "2024-03-15", d.Date, "missing date filled in")
	require.Len(t, d.Items, invoice.MaxItems)
	for i, it := range d.Items {
		assert.NotEmpty(t, it.ID)
		assert.Equal(t, float64(i+1)*2, it.Total, "line total recomputed")
	}
}

func TestLoadEmptyItems(t *testing.T) {
	s := invoice.Load(invoice.Data{}, invoice.WithNow(fixedNow))

	d := s.Data()
	require.Len(t, d.Items, 1)
	assert.NotEmpty(t, d.Items[0].ID)
}
