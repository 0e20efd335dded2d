package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Page layout, in millimetres.
const (
	pdfMargin     = 10.0
	pdfChartWidth = 180.0
	pdfLineHeight = 7.0
)

// PDFRenderer writes the report as a paginated A4 document.
type PDFRenderer struct {
	// Compress enables stream compression. Disable it to inspect page text.
	Compress bool
}

// Render writes the document for m to w. A non-empty chartPNG is embedded
// after the interpretation section.
func (p PDFRenderer) Render(w io.Writer, m Model, chartPNG []byte) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetCompression(p.Compress)
	pdf.SetTitle(Title, true)
	pdf.SetSubject(m.Product, true)
	pdf.SetCreator("lca-bot", false)
	if !m.GeneratedAt.IsZero() {
		pdf.SetCreationDate(m.GeneratedAt)
	}

	// Core fonts are cp1252; translate the free-text product name.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 10, Title, "", 1, "C", false, 0, "")
	})
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	writeTitleBlock(pdf, tr, m)

	writeSection(pdf, "1. Goal & Scope")
	writeBody(pdf, tr(m.Goal+"\n"+m.Boundary))

	writeSection(pdf, "2. Inventory")
	for _, line := range m.InventoryLines {
		writeBody(pdf, tr(line))
	}

	writeSection(pdf, "3. Impact Assessment")
	writeBody(pdf, strings.Join(m.TotalLines(), "\n"))

	writeSection(pdf, "4. Interpretation")
	writeBody(pdf, tr(m.Interpretation))
	if m.Equivalency != "" {
		writeBody(pdf, m.Equivalency)
	}

	if len(chartPNG) > 0 {
		opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader(ChartFileName, opts, bytes.NewReader(chartPNG))
		pdf.ImageOptions(ChartFileName, pdf.GetX(), pdf.GetY(), pdfChartWidth, 0, true, opts, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("building PDF: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("PDF output error: %w", err)
	}
	return nil
}

func writeTitleBlock(pdf *fpdf.Fpdf, tr func(string) string, m Model) {
	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 10, tr("Life Cycle Assessment: "+m.Product), "", "L", false)
	if !m.GeneratedAt.IsZero() {
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 6, "Generated: "+m.GeneratedAt.Format("January 2, 2006 at 15:04 MST"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func writeSection(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func writeBody(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, pdfLineHeight, text, "", "L", false)
	pdf.Ln(-1)
}
