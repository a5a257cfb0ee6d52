package export

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Fallback page dimensions in points when a source page reports no size.
const (
	a4WidthPt  = 595.28
	a4HeightPt = 841.89
)

// Combine appends the pages of several previously exported PDF files into a
// single document written to w, in argument order. Each page keeps its own
// dimensions.
func Combine(w io.Writer, inputPaths ...string) error {
	pdf, err := combined(inputPaths)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return newError("Combine", err)
	}
	return nil
}

// CombineFiles appends several exported PDFs into outputPath. The combined
// document is rendered fully in memory first; on failure no file is written.
func CombineFiles(outputPath string, inputPaths ...string) error {
	var buf bytes.Buffer
	if err := Combine(&buf, inputPaths...); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return newError("Save", err)
	}
	return nil
}

func combined(inputPaths []string) (*gofpdf.Fpdf, error) {
	if len(inputPaths) == 0 {
		return nil, newError("Combine", fmt.Errorf("no input files provided"))
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for _, path := range inputPaths {
		if err := appendPages(pdf, path); err != nil {
			return nil, newError("Combine", fmt.Errorf("appending %s: %w", path, err))
		}
	}

	if pdf.Err() {
		return nil, newError("Combine", pdf.Error())
	}
	return pdf, nil
}

// appendPages imports every page of a PDF file into the target document.
func appendPages(pdf *gofpdf.Fpdf, path string) error {
	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return fmt.Errorf("counting pages: %w", err)
	}

	imp := gofpdi.NewImporter()
	for i := 1; i <= pageCount; i++ {
		tplID := imp.ImportPage(pdf, path, i, "/MediaBox")
		w, h := importedPageSize(imp, i)
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
		imp.UseImportedTemplate(pdf, tplID, 0, 0, w, h)
	}

	return pdf.Error()
}

// importedPageSize reads the MediaBox dimensions of an imported page,
// falling back to A4 when the source reports none.
func importedPageSize(imp *gofpdi.Importer, pageNum int) (w, h float64) {
	w, h = a4WidthPt, a4HeightPt
	sizes := imp.GetPageSizes()
	dims, ok := sizes[pageNum]
	if !ok {
		return w, h
	}
	mb, ok := dims["/MediaBox"]
	if !ok {
		return w, h
	}
	if mb["w"] > 0 && mb["h"] > 0 {
		w, h = mb["w"], mb["h"]
	}
	return w, h
}
