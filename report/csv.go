package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mandilinkybl-pixel/madirate/model"
)

var exportHeader = []string{"City/Mandi", "State", "Item", "Rate", "Arrival", "Trend", "Type", "Last Updated"}

// WriteCSV streams the report rows as a flat CSV table.
func WriteCSV(w io.Writer, rows []model.ReportRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Mandi,
			row.State,
			row.Item,
			row.Rate,
			formatNumber(row.Arrival),
			TrendCell(row.Trend),
			row.Type,
			flattenTimestamp(row.LastUpdated),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// TrendCell renders a trend descriptor for a flat cell: arrow plus the
// sign-prefixed value ("↑ +10", "→ 0").
func TrendCell(t model.TrendDescriptor) string {
	if t.Value > 0 {
		return fmt.Sprintf("%s +%s", t.Arrow, formatNumber(t.Value))
	}
	return fmt.Sprintf("%s %s", t.Arrow, formatNumber(t.Value))
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// flattenTimestamp joins the two-line report timestamp for single-line
// cells.
func flattenTimestamp(ts string) string {
	return strings.ReplaceAll(ts, "\n", " ")
}
