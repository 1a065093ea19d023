package report

import (
	"fmt"
	"testing"

	"github.com/mandilinkybl-pixel/madirate/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRows(n int) []model.ReportRow {
	rows := make([]model.ReportRow, n)
	for i := range rows {
		rows[i] = model.ReportRow{Item: fmt.Sprintf("Item %d", i)}
	}
	return rows
}

func TestRowsPerPage(t *testing.T) {
	g := Geometry{TableStartY: 130, RowHeight: 29, HeaderHeight: 28, FooterHeight: 20, BottomPad: 100}

	// A4 portrait in points is 595.28 x 841.89.
	assert.Equal(t, 19, g.RowsPerPage(841.89))

	// A page too short for a single row yields zero.
	assert.Equal(t, 0, g.RowsPerPage(300))
}

func TestPaginate(t *testing.T) {
	t.Run("zero rows zero pages", func(t *testing.T) {
		assert.Nil(t, Paginate(nil, 10))
		assert.Nil(t, Paginate([]model.ReportRow{}, 10))
	})

	t.Run("partial last page", func(t *testing.T) {
		pages := Paginate(makeRows(23), 10)
		require.Len(t, pages, 3)
		assert.Len(t, pages[0], 10)
		assert.Len(t, pages[1], 10)
		assert.Len(t, pages[2], 3)

		// Pages are consecutive and ordered.
		assert.Equal(t, "Item 0", pages[0][0].Item)
		assert.Equal(t, "Item 10", pages[1][0].Item)
		assert.Equal(t, "Item 22", pages[2][2].Item)
	})

	t.Run("exact multiple", func(t *testing.T) {
		pages := Paginate(makeRows(20), 10)
		require.Len(t, pages, 2)
		assert.Len(t, pages[1], 10)
	})

	t.Run("invalid rows per page", func(t *testing.T) {
		assert.Nil(t, Paginate(makeRows(5), 0))
	})
}

func TestGeometryVariants(t *testing.T) {
	// The all-records layout packs rows tighter than the filtered one.
	assert.Greater(t, AllRecordsGeometry.RowsPerPage(841.89), FilteredGeometry.RowsPerPage(841.89))
}
