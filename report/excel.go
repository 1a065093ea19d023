package report

import (
	"fmt"
	"io"

	"github.com/mandilinkybl-pixel/madirate/model"

	"github.com/xuri/excelize/v2"
)

const sheetName = "MandiRates"

// WriteExcel streams the report rows as an xlsx workbook with a single
// MandiRates sheet.
func WriteExcel(w io.Writer, rows []model.ReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("excel: create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for r, row := range rows {
		values := []any{
			row.Mandi,
			row.State,
			row.Item,
			row.Rate,
			row.Arrival,
			TrendCell(row.Trend),
			row.Type,
			flattenTimestamp(row.LastUpdated),
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("excel: write workbook: %w", err)
	}
	return nil
}
