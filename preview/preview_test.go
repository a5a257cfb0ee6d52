package preview_test

import (
	"bytes"
	"image"
	"image/draw"
	"testing"
	"time"

	"github.com/lvillar/invoicekit/invoice"
	"github.com/lvillar/invoicekit/preview"
)

func testStore(t *testing.T) *invoice.Store {
	t.Helper()
	now := func() time.Time {
		return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	}
	return invoice.New(invoice.WithNow(now))
}

func rgba(t *testing.T, img image.Image) *image.RGBA {
	t.Helper()
	out, ok := img.(*image.RGBA)
	if !ok {
		out = image.NewRGBA(img.Bounds())
		draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	}
	return out
}

func TestRenderDimensions(t *testing.T) {
	r := preview.NewRenderer()
	data := testStore(t).Data()

	img, err := r.Render(data, 1)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := img.Bounds().Dx(); got != preview.DefaultWidth {
		t.Fatalf("width = %d, want %d", got, preview.DefaultWidth)
	}
	if img.Bounds().Dy() <= 0 {
		t.Fatal("expected positive height")
	}
}

func TestRenderScaleDoublesResolution(t *testing.T) {
	r := preview.NewRenderer()
	data := testStore(t).Data()

	base, err := r.Render(data, 1)
	if err != nil {
		t.Fatalf("render at 1x: %v", err)
	}
	big, err := r.Render(data, 2)
	if err != nil {
		t.Fatalf("render at 2x: %v", err)
	}

	if got, want := big.Bounds().Dx(), 2*base.Bounds().Dx(); got != want {
		t.Errorf("2x width = %d, want %d", got, want)
	}
	if got, want := big.Bounds().Dy(), 2*base.Bounds().Dy(); got != want {
		t.Errorf("2x height = %d, want %d", got, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := preview.NewRenderer()
	store := testStore(t)
	store.UpdateHeader(invoice.HeaderPatch{InvoiceNo: strPtr("INV-1")})

	a, err := r.Render(store.Data(), 2)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	b, err := r.Render(store.Data(), 2)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}

	if !bytes.Equal(rgba(t, a).Pix, rgba(t, b).Pix) {
		t.Fatal("two renders of the same data differ")
	}
}

func TestRenderReflectsData(t *testing.T) {
	r := preview.NewRenderer()
	store := testStore(t)

	before, err := r.Render(store.Data(), 1)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	price := 100.0
	store.UpdateItem(0, invoice.ItemPatch{Price: &price})
	store.UpdateHeader(invoice.HeaderPatch{InvoiceNo: strPtr("INV-1")})

	after, err := r.Render(store.Data(), 1)
	if err != nil {
		t.Fatalf("render after edit: %v", err)
	}

	if bytes.Equal(rgba(t, before).Pix, rgba(t, after).Pix) {
		t.Fatal("render did not change after data changed")
	}
}

func TestRenderGrowsWithItems(t *testing.T) {
	r := preview.NewRenderer()
	store := testStore(t)

	one, err := r.Render(store.Data(), 1)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for i := 0; i < 5; i++ {
		store.AddItem()
	}
	six, err := r.Render(store.Data(), 1)
	if err != nil {
		t.Fatalf("render with 6 items: %v", err)
	}

	if six.Bounds().Dy() <= one.Bounds().Dy() {
		t.Fatalf("height with 6 items (%d) not greater than with 1 (%d)",
			six.Bounds().Dy(), one.Bounds().Dy())
	}
}

func TestRenderRejectsBadScale(t *testing.T) {
	r := preview.NewRenderer()
	data := testStore(t).Data()

	if _, err := r.Render(data, 0); err == nil {
		t.Fatal("expected error for zero scale")
	}
	if _, err := r.Render(data, -1); err == nil {
		t.Fatal("expected error for negative scale")
	}
}

func TestRegionRasterizesCurrentState(t *testing.T) {
	store := testStore(t)
	region := preview.NewRegion(store, preview.NewRenderer())

	before, err := region.Rasterize(1)
	if err != nil {
		t.Fatalf("rasterize: %v", err)
	}

	store.UpdateHeader(invoice.HeaderPatch{InvoiceNo: strPtr("INV-2")})

	after, err := region.Rasterize(1)
	if err != nil {
		t.Fatalf("rasterize after edit: %v", err)
	}

	if bytes.Equal(rgba(t, before).Pix, rgba(t, after).Pix) {
		t.Fatal("region capture did not track store state")
	}
}

func strPtr(s string) *string { return &s }
