// Package export converts registered visual regions into paginated PDF
// documents. It operates on "a chunk of visual content" and "a target page
// size" only: the capture is image-based, so the output preserves the
// region's appearance rather than its semantic structure.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// DefaultScale is the oversampling factor applied when capturing a region,
// chosen for print-quality output from a screen-resolution render.
const DefaultScale = 2.0

// Exporter captures regions and writes them out as multi-page PDFs.
type Exporter struct {
	registry *Registry
	scale    float64
	pageW    float64 // mm
	pageH    float64 // mm
	log      *zap.Logger
}

// Option is a functional option for configuring an Exporter.
type Option func(*Exporter)

// WithScale sets the rasterization oversampling factor. Non-positive values
// are ignored.
func WithScale(scale float64) Option {
	return func(e *Exporter) {
		if scale > 0 {
			e.scale = scale
		}
	}
}

// WithPageSize sets the page dimensions in millimeters. Defaults to ISO A4
// portrait.
func WithPageSize(widthMM, heightMM float64) Option {
	return func(e *Exporter) {
		if widthMM > 0 && heightMM > 0 {
			e.pageW = widthMM
			e.pageH = heightMM
		}
	}
}

// WithRegistry shares an existing region registry instead of the exporter's
// private one.
func WithRegistry(r *Registry) Option {
	return func(e *Exporter) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Exporter) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates an Exporter. With no options it captures at 2x onto A4
// portrait pages.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		registry: NewRegistry(),
		scale:    DefaultScale,
		pageW:    A4WidthMM,
		pageH:    A4HeightMM,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register binds a region handle on the exporter's registry.
func (e *Exporter) Register(handle string, region Region) {
	e.registry.Register(handle, region)
}

// Export captures the region behind handle and writes a paginated PDF to w.
// The image is scaled to the page width with its aspect ratio preserved and
// split across as many pages as its height requires; it is never cropped or
// stretched. Failures at any step propagate to the caller and nothing is
// written.
func (e *Exporter) Export(handle string, w io.Writer) error {
	region, err := e.registry.Resolve(handle)
	if err != nil {
		return newError("Resolve", err)
	}

	img, err := region.Rasterize(e.scale)
	if err != nil {
		return newError("Rasterize", fmt.Errorf("%w: %w", ErrRasterizationFailed, err))
	}

	pdf, pages, err := e.compose(img)
	if err != nil {
		return err
	}

	if err := pdf.Output(w); err != nil {
		return newError("Write", err)
	}
	e.log.Debug("export complete",
		zap.String("handle", handle),
		zap.Int("pages", pages),
	)
	return nil
}

// ExportFile exports the region to a file named filename. The document is
// rendered fully in memory first, so a failed export leaves no partial file
// behind.
func (e *Exporter) ExportFile(handle, filename string) error {
	var buf bytes.Buffer
	if err := e.Export(handle, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return newError("Save", err)
	}
	return nil
}

// compose builds the paginated document from a captured image.
func (e *Exporter) compose(img image.Image) (*gofpdf.Fpdf, int, error) {
	bounds := img.Bounds()
	imgW := float64(bounds.Dx())
	imgH := float64(bounds.Dy())
	if imgW <= 0 || imgH <= 0 {
		return nil, 0, newError("Rasterize", fmt.Errorf("%w: empty capture", ErrRasterizationFailed))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, 0, newError("Encode", err)
	}

	scaledH := ScaleToWidth(imgW, imgH, e.pageW)
	slices := Paginate(scaledH, e.pageH)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: e.pageW, Ht: e.pageH},
	})
	pdf.SetAutoPageBreak(false, 0)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("region", opts, &buf)
	for _, s := range slices {
		pdf.AddPage()
		pdf.ImageOptions("region", 0, s.OffsetY, e.pageW, scaledH, false, opts, 0, "")
	}

	if pdf.Err() {
		return nil, 0, newError("Compose", pdf.Error())
	}
	return pdf, len(slices), nil
}

// DefaultFileName returns the download name for an invoice number, falling
// back to "Draft" when the number is empty.
func DefaultFileName(invoiceNo string) string {
	if invoiceNo == "" {
		invoiceNo = "Draft"
	}
	return fmt.Sprintf("Invoice_%s.pdf", invoiceNo)
}
