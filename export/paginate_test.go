package export_test

import (
	"math"
	"testing"

	"github.com/lvillar/invoicekit/export"
)

func TestPaginatePageCounts(t *testing.T) {
	const pageH = export.A4HeightMM

	tests := []struct {
		name   string
		imageH float64
		want   int
	}{
		{"shorter than one page", 100, 1},
		{"just under one page", pageH - 0.01, 1},
		{"just over one page", pageH + 0.01, 2},
		{"two and a bit pages", 650, 3},
		{"three and a bit pages", 900, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slices := export.Paginate(tt.imageH, pageH)
			if len(slices) != tt.want {
				t.Fatalf("Paginate(%v, %v) = %d pages, want %d",
					tt.imageH, pageH, len(slices), tt.want)
			}
			if want := int(math.Ceil(tt.imageH / pageH)); len(slices) != want {
				t.Errorf("page count %d disagrees with ceil(%v/%v) = %d",
					len(slices), tt.imageH, pageH, want)
			}
		})
	}
}

// An image measuring a whole multiple of the page height keeps the source
// behavior of emitting one trailing blank page.
func TestPaginateExactMultipleTrailingPage(t *testing.T) {
	const pageH = export.A4HeightMM

	if got := len(export.Paginate(pageH, pageH)); got != 2 {
		t.Errorf("one exact page height: got %d pages, want 2", got)
	}
	if got := len(export.Paginate(2*pageH, pageH)); got != 3 {
		t.Errorf("two exact page heights: got %d pages, want 3", got)
	}
}

func TestPaginateAlwaysAtLeastOnePage(t *testing.T) {
	for _, h := range []float64{0, 1, 50} {
		if got := len(export.Paginate(h, export.A4HeightMM)); got != 1 {
			t.Errorf("Paginate(%v) = %d pages, want 1", h, got)
		}
	}
}

// Concatenating the window each page reveals must reconstruct the continuous
// strip in order: page k shows the image shifted up by exactly k page
// heights.
func TestPaginateSlicesReconstructStrip(t *testing.T) {
	const pageH = export.A4HeightMM
	imageH := 4*pageH + 12.5

	slices := export.Paginate(imageH, pageH)

	for i, s := range slices {
		if s.Page != i+1 {
			t.Errorf("slice %d: page number %d, want %d", i, s.Page, i+1)
		}
		wantOffset := -float64(i) * pageH
		if math.Abs(s.OffsetY-wantOffset) > 1e-9 {
			t.Errorf("page %d: offset %v, want %v", s.Page, s.OffsetY, wantOffset)
		}
	}

	// The covered windows [i*pageH, (i+1)*pageH) must span the full strip.
	covered := float64(len(slices)) * pageH
	if covered < imageH {
		t.Errorf("pages cover %v of %v", covered, imageH)
	}
}

func TestScaleToWidth(t *testing.T) {
	tests := []struct {
		imgW, imgH, targetW float64
		want                float64
	}{
		{800, 800, 210, 210},
		{800, 1600, 210, 420},
		{1600, 800, 210, 105},
		{0, 800, 210, 0},
	}

	for _, tt := range tests {
		if got := export.ScaleToWidth(tt.imgW, tt.imgH, tt.targetW); got != tt.want {
			t.Errorf("ScaleToWidth(%v, %v, %v) = %v, want %v",
				tt.imgW, tt.imgH, tt.targetW, got, tt.want)
		}
	}
}
