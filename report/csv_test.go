package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/mandilinkybl-pixel/madirate/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []model.ReportRow {
	return []model.ReportRow{
		{
			Mandi:       "Karnal",
			State:       "Haryana",
			Item:        "Wheat",
			Rate:        "100-120",
			Arrival:     50,
			Type:        "Combine",
			Trend:       model.DescribeTrend(10),
			LastUpdated: "02/01/2006\n15:04",
		},
		{
			Mandi:       "Sonipat",
			State:       "Haryana",
			Item:        "Rice",
			Rate:        "200",
			Arrival:     0,
			Type:        "N/A",
			Trend:       model.DescribeTrend(-3),
			LastUpdated: "02/01/2006\n15:04",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, []string{"Karnal", "Haryana", "Wheat", "100-120", "50", "↑ +10", "Combine", "02/01/2006 15:04"}, records[1])
	assert.Equal(t, "↓ -3", records[2][5])
}

func TestTrendCell(t *testing.T) {
	assert.Equal(t, "↑ +10", TrendCell(model.DescribeTrend(10)))
	assert.Equal(t, "↓ -3", TrendCell(model.DescribeTrend(-3)))
	assert.Equal(t, "→ 0", TrendCell(model.DescribeTrend(0)))
	assert.Equal(t, "↑ +2.5", TrendCell(model.DescribeTrend(2.5)))
}
