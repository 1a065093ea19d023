package report

import "github.com/mandilinkybl-pixel/madirate/model"

// Geometry holds the fixed page layout constants of a tabular export.
// Units are PDF points on an A4 page.
type Geometry struct {
	TableStartY  float64
	RowHeight    float64
	HeaderHeight float64
	FooterHeight float64
	// BottomPad is extra clearance kept above the footer.
	BottomPad float64
}

// Layouts observed for the two PDF variants: the date/state-filtered
// report and the all-records report.
var (
	FilteredGeometry   = Geometry{TableStartY: 130, RowHeight: 29, HeaderHeight: 28, FooterHeight: 20, BottomPad: 100}
	AllRecordsGeometry = Geometry{TableStartY: 130, RowHeight: 27, HeaderHeight: 28, FooterHeight: 20, BottomPad: 80}
)

// RowsPerPage computes how many body rows fit on a page of the given
// height: floor(available / rowHeight).
func (g Geometry) RowsPerPage(pageHeight float64) int {
	available := pageHeight - g.TableStartY - g.HeaderHeight - g.FooterHeight - g.BottomPad
	if available < g.RowHeight {
		return 0
	}
	return int(available / g.RowHeight)
}

// Paginate slices rows into consecutive pages of rowsPerPage. Zero rows
// produce zero pages; the last page may be partial. Page boundaries
// depend only on the row count and rowsPerPage.
func Paginate(rows []model.ReportRow, rowsPerPage int) [][]model.ReportRow {
	if rowsPerPage <= 0 || len(rows) == 0 {
		return nil
	}

	pages := make([][]model.ReportRow, 0, (len(rows)+rowsPerPage-1)/rowsPerPage)
	for start := 0; start < len(rows); start += rowsPerPage {
		end := start + rowsPerPage
		if end > len(rows) {
			end = len(rows)
		}
		pages = append(pages, rows[start:end])
	}
	return pages
}
