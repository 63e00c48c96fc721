package binder

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"
)

// Letter portrait geometry in points.
const (
	inch       = 72.0
	pageWidth  = 612.0
	pageHeight = 792.0
)

const (
	tocMargin    = 0.9 * inch
	tocRight     = pageWidth - tocMargin
	tocRowHeight = 0.32 * inch
	tocBreakAt   = tocMargin + 0.5*inch // below this a row starts a new page
	tocFooterY   = 0.5 * inch
)

type rgb struct{ r, g, b int }

var (
	tocPrimary   = rgb{44, 62, 80}    // #2C3E50
	tocAccent    = rgb{52, 152, 219}  // #3498DB
	tocText      = rgb{52, 73, 94}    // #34495E
	tocMuted     = rgb{149, 165, 166} // #95A5A6
	tocHighlight = rgb{236, 240, 241} // #ECF0F1
)

// tocCursor tracks layout state while rows are emitted. y is measured
// bottom-up from the page bottom, like PDF user space; the drawing helpers
// convert to fpdf's top-down coordinates. Reset on every page break.
type tocCursor struct {
	y       float64
	pageNum int
}

// RenderTOC renders the table of contents for entries as letter pages.
// The row and page-break arithmetic must stay stable: the merged document's
// page count and every bookmark target depend on how many pages it emits.
func RenderTOC(entries []CatalogEntry) *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetTitle("Table of Contents", false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	cur := tocCursor{y: pageHeight - tocMargin, pageNum: 1}

	setTextRGB(pdf, tocPrimary)
	pdf.SetFont("Helvetica", "B", 28)
	textAt(pdf, tocMargin, cur.y, "Table of Contents")
	cur.y -= 0.3 * inch

	setDrawRGB(pdf, tocAccent)
	pdf.SetLineWidth(2)
	lineAt(pdf, tocMargin, cur.y, tocMargin+200, cur.y)
	cur.y -= 0.5 * inch

	setTextRGB(pdf, tocText)
	setDrawRGB(pdf, tocText)
	pdf.SetLineWidth(0.5)

	for idx, e := range entries {
		if cur.y < tocBreakAt {
			drawTOCFooter(pdf, cur.pageNum)

			pdf.AddPage()
			cur.pageNum++
			cur.y = pageHeight - tocMargin

			setTextRGB(pdf, tocPrimary)
			pdf.SetFont("Helvetica", "B", 20)
			textAt(pdf, tocMargin, cur.y, "Table of Contents (continued)")
			cur.y -= 0.15 * inch

			setDrawRGB(pdf, tocAccent)
			pdf.SetLineWidth(1)
			lineAt(pdf, tocMargin, cur.y, tocMargin+150, cur.y)
			cur.y -= 0.4 * inch

			setTextRGB(pdf, tocText)
			setDrawRGB(pdf, tocText)
			pdf.SetLineWidth(0.5)
		}

		// Alternating highlight, drawn under the row content.
		if idx%2 == 0 {
			setFillRGB(pdf, tocHighlight)
			rectAt(pdf, tocMargin-10, cur.y-5, tocRight-tocMargin+20, 0.28*inch)
		}

		name := DisplayName(e.Name)
		pdf.SetFont("Helvetica", "", 11)
		textAt(pdf, tocMargin, cur.y, name)

		// Dotted leader, omitted when the name leaves no room for it.
		dotStart := tocMargin + pdf.GetStringWidth(name) + 10
		dotEnd := tocRight - 40
		if dotStart < dotEnd {
			pdf.SetDashPattern([]float64{2, 4}, 0)
			lineAt(pdf, dotStart, cur.y+3, dotEnd, cur.y+3)
			pdf.SetDashPattern([]float64{}, 0)
		}

		pdf.SetFont("Helvetica", "B", 11)
		pageStr := fmt.Sprintf("%d", e.StartPage)
		textAt(pdf, tocRight-pdf.GetStringWidth(pageStr), cur.y, pageStr)

		cur.y -= tocRowHeight
	}

	drawTOCFooter(pdf, cur.pageNum)
	return pdf
}

func drawTOCFooter(pdf *fpdf.Fpdf, pageNum int) {
	pdf.SetFont("Helvetica", "", 9)
	setTextRGB(pdf, tocMuted)
	label := fmt.Sprintf("- %d -", pageNum)
	textAt(pdf, pageWidth/2-pdf.GetStringWidth(label)/2, tocFooterY, label)
	setTextRGB(pdf, tocText)
}

// Drawing helpers taking bottom-up y coordinates.

func textAt(pdf *fpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x, pageHeight-y, s)
}

func lineAt(pdf *fpdf.Fpdf, x1, y1, x2, y2 float64) {
	pdf.Line(x1, pageHeight-y1, x2, pageHeight-y2)
}

// rectAt draws a filled rectangle whose bottom-left corner is (x, y).
func rectAt(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.Rect(x, pageHeight-y-h, w, h, "F")
}

func setTextRGB(pdf *fpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
func setDrawRGB(pdf *fpdf.Fpdf, c rgb) { pdf.SetDrawColor(c.r, c.g, c.b) }
func setFillRGB(pdf *fpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
