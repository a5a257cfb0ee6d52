// Package preview renders an invoice aggregate into a raster image that
// mirrors the on-screen preview. The image is the renderable surface the
// export package captures and paginates; nothing here knows about pages.
package preview

import (
	"fmt"
	"image"

	"github.com/lvillar/invoicekit/invoice"
)

// DefaultWidth is the base render width in pixels at scale 1.
const DefaultWidth = 760

// Renderer rasterizes invoices. Rendering is deterministic: the same data
// and scale always produce identical pixels.
type Renderer struct {
	width int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth sets the base render width in pixels at scale 1.
func WithWidth(px int) Option {
	return func(r *Renderer) {
		if px > 0 {
			r.width = px
		}
	}
}

// NewRenderer creates a Renderer with the default layout.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{width: DefaultWidth}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render rasterizes data at the given oversampling scale. Every layout
// metric is multiplied by the factor, so a 2x render is genuinely higher
// resolution rather than an upscaled bitmap.
func (r *Renderer) Render(data invoice.Data, scale float64) (image.Image, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("preview: scale must be positive, got %v", scale)
	}
	c, err := newCanvas(r.width, layoutHeight(data), scale)
	if err != nil {
		return nil, err
	}
	c.drawHeader(data)
	c.drawBilledTo(data.BilledTo)
	c.drawItems(data.Items)
	c.drawTotals(data)
	return c.img, nil
}

// Region adapts a Store plus Renderer to the export package's notion of a
// renderable region: every capture rasterizes the store's current state.
type Region struct {
	store    *invoice.Store
	renderer *Renderer
}

// NewRegion binds a store to a renderer.
func NewRegion(store *invoice.Store, renderer *Renderer) *Region {
	return &Region{store: store, renderer: renderer}
}

// Rasterize captures the current invoice state at the given scale.
func (r *Region) Rasterize(scale float64) (image.Image, error) {
	return r.renderer.Render(r.store.Data(), scale)
}
