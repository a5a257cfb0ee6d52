package export

// A4 portrait page dimensions in millimeters.
const (
	A4WidthMM  = 210.0
	A4HeightMM = 297.0
)

// Slice is the placement of the full, page-wide image on one PDF page.
// OffsetY is the vertical position of the image's top edge relative to the
// page top, in page units: page k carries the same image shifted up by k
// page heights, so each page reveals the next unseen window of the strip.
type Slice struct {
	Page    int
	OffsetY float64
}

// Paginate lays an image of height imageH onto pages of height pageH. The
// image is treated as a single continuous vertical strip: the first page
// starts at the strip's top, and a further page is added for every full page
// height still uncovered. A final page is still emitted when the remaining
// height lands exactly on zero, so a strip measuring a whole multiple of the
// page height ends with one trailing blank page; the remainder below the
// last content window is likewise left blank rather than clipped.
func Paginate(imageH, pageH float64) []Slice {
	slices := []Slice{{Page: 1, OffsetY: 0}}
	heightLeft := imageH - pageH
	for heightLeft >= 0 {
		slices = append(slices, Slice{
			Page:    len(slices) + 1,
			OffsetY: heightLeft - imageH,
		})
		heightLeft -= pageH
	}
	return slices
}

// ScaleToWidth returns the height of an imgW-by-imgH image after scaling it
// to targetW with the aspect ratio preserved.
func ScaleToWidth(imgW, imgH, targetW float64) float64 {
	if imgW == 0 {
		return 0
	}
	return imgH * targetW / imgW
}
