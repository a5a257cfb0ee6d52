package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/shopspring/decimal"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/lvillar/invoicekit/invoice"
)

// Layout metrics in base pixels at scale 1.
const (
	marginX    = 32.0
	marginY    = 32.0
	headerH    = 96.0 // title block height, matches the QR side
	qrSize     = 96.0
	sectionGap = 20.0
	lineH      = 18.0
	rowH       = 26.0
	totalsRowH = 20.0

	titleSize = 24.0
	textSize  = 13.0
)

var (
	ruleColor   = color.RGBA{R: 210, G: 210, B: 214, A: 255}
	mutedColor  = color.RGBA{R: 96, G: 96, B: 104, A: 255}
	accentColor = color.RGBA{R: 63, G: 81, B: 181, A: 255}
	headerFill  = color.RGBA{R: 245, G: 245, B: 247, A: 255}
	textColor   = color.Black
	canvasColor = color.White
)

var (
	fontsOnce   sync.Once
	fontsErr    error
	regularFont *sfnt.Font
	boldFont    *sfnt.Font
)

func loadFonts() error {
	fontsOnce.Do(func() {
		regularFont, fontsErr = opentype.Parse(goregular.TTF)
		if fontsErr != nil {
			return
		}
		boldFont, fontsErr = opentype.Parse(gobold.TTF)
	})
	return fontsErr
}

// canvas carries the target image plus the faces sized for one render. All
// public coordinates are in base pixels; the scale factor is applied at the
// device boundary only.
type canvas struct {
	img   *image.RGBA
	scale float64
	width float64 // base px
	y     float64 // layout cursor, base px

	title   font.Face
	bold    font.Face
	regular font.Face
}

func newCanvas(width int, height float64, scale float64) (*canvas, error) {
	if err := loadFonts(); err != nil {
		return nil, fmt.Errorf("preview: loading fonts: %w", err)
	}

	c := &canvas{scale: scale, width: float64(width), y: marginY}
	c.img = image.NewRGBA(image.Rect(0, 0, c.px(c.width), c.px(height)))
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(canvasColor), image.Point{}, draw.Src)

	var err error
	if c.title, err = newFace(boldFont, titleSize*scale); err != nil {
		return nil, err
	}
	if c.bold, err = newFace(boldFont, textSize*scale); err != nil {
		return nil, err
	}
	if c.regular, err = newFace(regularFont, textSize*scale); err != nil {
		return nil, err
	}
	return c, nil
}

func newFace(f *sfnt.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("preview: building face: %w", err)
	}
	return face, nil
}

func (c *canvas) px(v float64) int {
	return int(math.Round(v * c.scale))
}

func (c *canvas) text(face font.Face, col color.Color, x, baseline float64, s string) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(c.px(x), c.px(baseline)),
	}
	d.DrawString(s)
}

func (c *canvas) textRight(face font.Face, col color.Color, right, baseline float64, s string) {
	w := font.MeasureString(face, s)
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(c.px(right)) - w, Y: fixed.I(c.px(baseline))},
	}
	d.DrawString(s)
}

func (c *canvas) fill(x, y, w, h float64, col color.Color) {
	r := image.Rect(c.px(x), c.px(y), c.px(x+w), c.px(y+h))
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *canvas) rule(y float64) {
	c.fill(marginX, y, c.width-2*marginX, 1, ruleColor)
}

func (c *canvas) drawHeader(data invoice.Data) {
	top := c.y

	c.text(c.title, textColor, marginX, top+titleSize, "TAX INVOICE")
	c.fill(marginX, top+titleSize+6, 56, 3, accentColor)

	no := data.InvoiceNo
	if no == "" {
		no = "Draft"
	}
	c.text(c.regular, mutedColor, marginX, top+titleSize+6+lineH+8, "Invoice No: "+no)
	c.text(c.regular, mutedColor, marginX, top+titleSize+6+2*lineH+8, "Date: "+data.Date)

	c.drawQR(data.InvoiceNo, c.width-marginX-qrSize, top)

	c.y = top + headerH + sectionGap
}

// drawQR renders the invoice number as a QR code anchored at (x, y). A blank
// invoice number leaves the corner empty; encoding failures are skipped
// rather than failing the whole render.
func (c *canvas) drawQR(invoiceNo string, x, y float64) {
	if invoiceNo == "" {
		return
	}
	code, err := qr.Encode(invoiceNo, qr.M, qr.Auto)
	if err != nil {
		return
	}
	scaled, err := barcode.Scale(code, int(qrSize), int(qrSize))
	if err != nil {
		return
	}
	r := image.Rect(c.px(x), c.px(y), c.px(x+qrSize), c.px(y+qrSize))
	draw.NearestNeighbor.Scale(c.img, r, scaled, scaled.Bounds(), draw.Over, nil)
}

func (c *canvas) drawBilledTo(b invoice.BilledTo) {
	c.text(c.bold, textColor, marginX, c.y+textSize, "Billed To")
	c.y += lineH

	lines := []string{
		b.Name,
		"Phone: " + b.Phone,
		"Aadhar: " + b.Aadhar,
		b.Address,
	}
	for _, line := range lines {
		c.y += lineH
		c.text(c.regular, textColor, marginX, c.y, line)
	}
	c.y += sectionGap
}

func (c *canvas) drawItems(items []invoice.Item) {
	descX := marginX + 36
	priceRight := c.width - 200
	qtyRight := c.width - 130
	totalRight := c.width - marginX

	c.fill(marginX, c.y, c.width-2*marginX, rowH, headerFill)
	base := c.y + rowH - 8
	c.text(c.bold, textColor, marginX+6, base, "No")
	c.text(c.bold, textColor, descX, base, "Description")
	c.textRight(c.bold, textColor, priceRight, base, "Price")
	c.textRight(c.bold, textColor, qtyRight, base, "Qty")
	c.textRight(c.bold, textColor, totalRight, base, "Total")
	c.y += rowH

	for i, it := range items {
		base := c.y + rowH - 8
		c.text(c.regular, textColor, marginX+6, base, fmt.Sprintf("%d", i+1))
		c.text(c.regular, textColor, descX, base, it.Description)
		c.textRight(c.regular, textColor, priceRight, base, money(it.Price))
		c.textRight(c.regular, textColor, qtyRight, base, invoice.FormatNumber(it.Qty))
		c.textRight(c.regular, textColor, totalRight, base, money(it.Total))
		c.rule(c.y + rowH)
		c.y += rowH
	}
	c.y += sectionGap
}

func (c *canvas) drawTotals(data invoice.Data) {
	t := data.Totals()
	labelRight := c.width - 160
	valueRight := c.width - marginX

	rows := []struct {
		label string
		value string
		em    bool
	}{
		{"Subtotal", money(t.Subtotal), false},
		{"Discount (" + invoice.FormatNumber(data.DiscountPercent) + "%)", money(t.DiscountAmount), false},
		{"GST (" + invoice.FormatNumber(data.GSTPercent) + "%)", money(t.GSTAmount), false},
		{"Adjustment", money(data.Adjustment), false},
		{"Grand Total", money(t.GrandTotal), true},
	}

	for _, row := range rows {
		c.y += totalsRowH
		face := c.regular
		col := color.Color(mutedColor)
		if row.em {
			c.rule(c.y - totalsRowH + 4)
			face = c.bold
			col = textColor
		}
		c.textRight(face, col, labelRight, c.y, row.label)
		c.textRight(face, col, valueRight, c.y, row.value)
	}
}

// money formats an amount to two decimal places for display. Presentation
// only; the model's arithmetic is never rounded.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// layoutHeight computes the total base-pixel height the render will occupy,
// so the canvas can be sized before drawing. Must stay in step with the draw
// methods above.
func layoutHeight(data invoice.Data) float64 {
	h := marginY + headerH + sectionGap
	h += lineH + 4*lineH + sectionGap
	h += rowH*float64(len(data.Items)+1) + sectionGap
	h += 5 * totalsRowH
	h += marginY
	return h
}
