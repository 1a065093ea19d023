package report

// pdf.go — A4 tabular PDF export using go-pdf/fpdf. Each page carries a
// gradient title band, the fixed 7-column table (City/Mandi, State, Item,
// Rate, Arrival, Trend, Type) and a footer with the page number. Page
// boundaries come from Geometry.RowsPerPage + Paginate, so preview and
// export always agree on content and the renderer only draws.

import (
	"fmt"
	"io"

	"github.com/mandilinkybl-pixel/madirate/model"

	"github.com/go-pdf/fpdf"
)

var (
	pdfColWidths = []float64{100, 100, 100, 80, 50, 50, 60}
	pdfHeaders   = []string{"City/Mandi", "State", "Item", "Rate", "Arrival", "Trend", "Type"}
)

// Band and table colors.
var (
	gradientTop    = rgb{250, 204, 21}  // #facc15
	gradientBottom = rgb{252, 211, 77}  // #fcd34d
	pageBackground = rgb{232, 245, 233} // #e8f5e9
	footerText     = rgb{75, 85, 99}    // #4b5563
	trendUp        = rgb{39, 174, 96}   // #27ae60
	trendDown      = rgb{192, 57, 43}   // #c0392b
	trendNeutral   = rgb{149, 165, 166} // #95a5a6
)

type rgb struct{ r, g, b int }

const pdfBorderWidth = 0.7

// WritePDF renders the rows into a paginated PDF table. dateLabel is the
// header's right-hand caption ("Date: 02/01/2006" or "All Records").
func WritePDF(w io.Writer, rows []model.ReportRow, dateLabel string, geo Geometry) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()

	tableWidth := 0.0
	for _, cw := range pdfColWidths {
		tableWidth += cw
	}
	marginLeft := (pageW - tableWidth) / 2

	pages := Paginate(rows, geo.RowsPerPage(pageH))
	if len(pages) == 0 {
		// Header-only page so an empty report still downloads.
		pages = [][]model.ReportRow{nil}
	}

	for pageIdx, page := range pages {
		pdf.AddPage()

		drawBackground(pdf, pageW, pageH)
		drawHeader(pdf, tr, pageW, marginLeft, tableWidth, dateLabel)
		drawTableHeader(pdf, tr, marginLeft, geo)

		y := geo.TableStartY + geo.HeaderHeight
		for _, row := range page {
			drawRow(pdf, tr, row, marginLeft, y, geo.RowHeight)
			y += geo.RowHeight
		}

		drawFooter(pdf, tr, pageW, pageH, geo, pageIdx+1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: write output: %w", err)
	}
	return nil
}

func drawBackground(pdf *fpdf.Fpdf, pageW, pageH float64) {
	pdf.SetFillColor(pageBackground.r, pageBackground.g, pageBackground.b)
	pdf.Rect(0, 0, pageW, pageH, "F")
}

func drawHeader(pdf *fpdf.Fpdf, tr func(string) string, pageW, marginLeft, tableWidth float64, dateLabel string) {
	pdf.LinearGradient(0, 0, pageW, 80,
		gradientTop.r, gradientTop.g, gradientTop.b,
		gradientBottom.r, gradientBottom.g, gradientBottom.b,
		0, 0, 0, 1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Times", "B", 20)
	pdf.Text(120, 44, tr("MandiLink Update"))

	pdf.SetFont("Times", "B", 12)
	pdf.Text(pageW-150, 32, tr(dateLabel))

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1)
	pdf.Line(marginLeft, 90, marginLeft+tableWidth, 90)
}

func drawTableHeader(pdf *fpdf.Fpdf, tr func(string) string, marginLeft float64, geo Geometry) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(gradientTop.r, gradientTop.g, gradientTop.b)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(pdfBorderWidth)
	pdf.SetTextColor(0, 0, 0)

	x := marginLeft
	for i, header := range pdfHeaders {
		pdf.SetXY(x, geo.TableStartY)
		pdf.CellFormat(pdfColWidths[i], geo.HeaderHeight, tr(header), "1", 0, "CM", true, 0, "")
		x += pdfColWidths[i]
	}
}

func drawRow(pdf *fpdf.Fpdf, tr func(string) string, row model.ReportRow, marginLeft, y, rowHeight float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(pdfBorderWidth)

	cells := []string{
		row.Mandi,
		row.State,
		row.Item,
		row.Rate,
		formatNumber(row.Arrival),
		pdfTrendCell(row.Trend),
		row.Type,
	}

	x := marginLeft
	for i, val := range cells {
		if i == 5 {
			c := trendColor(row.Trend)
			pdf.SetTextColor(c.r, c.g, c.b)
		} else {
			pdf.SetTextColor(0, 0, 0)
		}

		pdf.SetXY(x, y)
		pdf.CellFormat(pdfColWidths[i], rowHeight, truncateCell(pdf, tr(val), pdfColWidths[i]), "1", 0, "CM", false, 0, "")
		x += pdfColWidths[i]
	}

	pdf.SetTextColor(0, 0, 0)
}

func drawFooter(pdf *fpdf.Fpdf, tr func(string) string, pageW, pageH float64, geo Geometry, pageNum int) {
	pdf.LinearGradient(0, pageH-geo.FooterHeight, pageW, geo.FooterHeight,
		gradientTop.r, gradientTop.g, gradientTop.b,
		gradientBottom.r, gradientBottom.g, gradientBottom.b,
		0, 0, 0, 1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(footerText.r, footerText.g, footerText.b)
	pdf.Text(40, pageH-geo.FooterHeight+14, tr("MandiLink"))

	pageLabel := fmt.Sprintf("Page %d", pageNum)
	pdf.Text(pageW-40-pdf.GetStringWidth(pageLabel), pageH-geo.FooterHeight+14, pageLabel)
}

// pdfTrendCell renders the trend for the core-font table, where the
// unicode arrows are unavailable: direction word plus signed value.
func pdfTrendCell(t model.TrendDescriptor) string {
	if t.Value > 0 {
		return fmt.Sprintf("%s +%s", t.Text, formatNumber(t.Value))
	}
	return fmt.Sprintf("%s %s", t.Text, formatNumber(t.Value))
}

func trendColor(t model.TrendDescriptor) rgb {
	switch {
	case t.Value > 0:
		return trendUp
	case t.Value < 0:
		return trendDown
	default:
		return trendNeutral
	}
}

// truncateCell shortens text that would overflow its column, appending an
// ellipsis like the on-screen table does.
func truncateCell(pdf *fpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width-4 {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if pdf.GetStringWidth(string(runes)+"...") <= width-8 {
			break
		}
	}
	return string(runes) + "..."
}
