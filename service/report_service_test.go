package service

import (
	"context"
	"testing"

	"github.com/mandilinkybl-pixel/madirate/customerrors"
	"github.com/mandilinkybl-pixel/madirate/model"
	"github.com/mandilinkybl-pixel/madirate/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveRowsPicksLatestRegardlessOfStorageOrder(t *testing.T) {
	today := util.Today()

	f := newFixture()
	// Points stored newest-first on purpose.
	f.seedRate(&model.MandiRate{
		StateID:  f.stateID,
		Mandi:    "Karnal",
		MandiKey: "karnal",
		List: []model.CommodityEntry{{
			Commodity: "Wheat",
			Type:      model.TypeCombine,
			Prices: []model.PricePoint{
				{MinRate: 120, MaxRate: 140, Arrival: 5, Trend: 1, Date: today},
				{MinRate: 100, MaxRate: 110, Arrival: 8, Date: today.AddDate(0, 0, -1)},
			},
		}},
	})

	rows, err := f.reportService().DeriveRows(context.Background(), RowFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Karnal", row.Mandi)
	assert.Equal(t, "Haryana", row.State)
	assert.Equal(t, "Wheat", row.Item)
	assert.Equal(t, "120-140", row.Rate)
	assert.Equal(t, 5.0, row.Arrival)
	assert.Equal(t, "Combine", row.Type)
	assert.Equal(t, 1.0, row.Trend.Value)
}

func TestDeriveRowsRecomputesZeroTrendForDisplayOnly(t *testing.T) {
	today := util.Today()

	f := newFixture()
	id := f.seedRate(&model.MandiRate{
		StateID:  f.stateID,
		Mandi:    "Karnal",
		MandiKey: "karnal",
		List: []model.CommodityEntry{{
			Commodity: "Wheat",
			Prices: []model.PricePoint{
				{MinRate: 100, MaxRate: 110, Date: today.AddDate(0, 0, -1)},
				{MinRate: 130, MaxRate: 150, Trend: 0, Date: today},
			},
		}},
	})

	rows, err := f.reportService().DeriveRows(context.Background(), RowFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// A stored 0 on a non-first point shows the min-rate delta.
	assert.Equal(t, 30.0, rows[0].Trend.Value)
	assert.Equal(t, model.TrendUpText, rows[0].Trend.Text)
	assert.Equal(t, model.TrendUpColor, rows[0].Trend.Color)

	// The stored point keeps its 0 trend.
	stored, _ := f.rateRepo.FindByID(context.Background(), id)
	assert.Equal(t, 0.0, stored.List[0].Prices[1].Trend)
}

func TestDeriveRowsFirstPointKeepsZeroTrend(t *testing.T) {
	f := newFixture()
	f.seedRate(&model.MandiRate{
		StateID:  f.stateID,
		Mandi:    "Karnal",
		MandiKey: "karnal",
		List: []model.CommodityEntry{{
			Commodity: "Wheat",
			Prices:    []model.PricePoint{{MinRate: 100, MaxRate: 110, Date: util.Today()}},
		}},
	})

	rows, err := f.reportService().DeriveRows(context.Background(), RowFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].Trend.Value)
	assert.Equal(t, model.TrendNeutralText, rows[0].Trend.Text)
}

func TestDeriveRowsAsOfDateSelection(t *testing.T) {
	today := util.Today()
	yesterday := today.AddDate(0, 0, -1)

	f := newFixture()
	f.seedRate(&model.MandiRate{
		StateID:  f.stateID,
		Mandi:    "Karnal",
		MandiKey: "karnal",
		List: []model.CommodityEntry{{
			Commodity: "Wheat",
			Prices: []model.PricePoint{
				{MinRate: 100, MaxRate: 110, Date: yesterday},
				{MinRate: 120, MaxRate: 140, Trend: 1, Date: today},
			},
		}},
	})

	rows, err := f.reportService().DeriveRows(context.Background(), RowFilter{
		AsOfDate: yesterday.Format("2006-01-02"),
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "100-110", rows[0].Rate)

	_, err = f.reportService().DeriveRows(context.Background(), RowFilter{AsOfDate: "not-a-date"})
	assert.True(t, customerrors.IsValidation(err))
}

func TestDeriveRowsOmitsZeroMaxRate(t *testing.T) {
	f := newFixture()
	f.seedRate(&model.MandiRate{
		StateID:  f.stateID,
		Mandi:    "Karnal",
		MandiKey: "karnal",
		List: []model.CommodityEntry{{
			Commodity: "Wheat",
			Prices:    []model.PricePoint{{MinRate: 100, MaxRate: 0, Date: util.Today()}},
		}},
	})

	rows, err := f.reportService().DeriveRows(context.Background(), RowFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "100", rows[0].Rate)
	assert.Equal(t, string(model.TypeNA), rows[0].Type)
}

func TestDeriveRowsSearchFilter(t *testing.T) {
	f := newFixture()
	f.seedRate(&model.MandiRate{
		StateID:  f.stateID,
		Mandi:    "Karnal",
		MandiKey: "karnal",
		List: []model.CommodityEntry{
			{Commodity: "Wheat", Prices: []model.PricePoint{{MinRate: 100, MaxRate: 110, Date: util.Today()}}},
			{Commodity: "Rice", Prices: []model.PricePoint{{MinRate: 200, MaxRate: 220, Date: util.Today()}}},
		},
	})

	rows, err := f.reportService().DeriveRows(context.Background(), RowFilter{Search: "rice"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Rice", rows[0].Item)
}

func TestSearchRowsDifference(t *testing.T) {
	today := util.Today()

	f := newFixture()
	f.seedRate(&model.MandiRate{
		StateID:  f.stateID,
		Mandi:    "Karnal",
		MandiKey: "karnal",
		List: []model.CommodityEntry{
			{
				Commodity: "Wheat",
				Prices: []model.PricePoint{
					{MinRate: 100, MaxRate: 110, Date: today.AddDate(0, 0, -1)},
					{MinRate: 120, MaxRate: 140, Date: today},
				},
			},
			{
				Commodity: "Rice",
				Prices:    []model.PricePoint{{MinRate: 200, MaxRate: 220, Date: today}},
			},
		},
	})

	rows, err := f.reportService().SearchRows(context.Background(), RowFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byItem := map[string]model.SearchRow{}
	for _, row := range rows {
		byItem[row.Commodity] = row
	}

	// Two points: latest max minus the one before it.
	assert.Equal(t, 30.0, byItem["Wheat"].Difference)
	// A single point reports its own max.
	assert.Equal(t, 220.0, byItem["Rice"].Difference)
	assert.Equal(t, "Haryana", byItem["Wheat"].StateName)
}

func TestReportSinceFiltersByDay(t *testing.T) {
	today := util.Today()

	f := newFixture()
	f.seedRate(&model.MandiRate{
		StateID:  f.stateID,
		Mandi:    "Karnal",
		MandiKey: "karnal",
		List: []model.CommodityEntry{{
			Commodity: "Wheat",
			Prices: []model.PricePoint{
				{MinRate: 90, MaxRate: 100, Date: today.AddDate(0, 0, -10)},
				{MinRate: 100, MaxRate: 110, Date: today},
			},
		}},
	})

	entries, err := f.reportService().ReportSince(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 110.0, entries[0].Maximum)
	assert.Equal(t, "Haryana", entries[0].StateName)

	all, err := f.reportService().ReportSince(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDescribeTrend(t *testing.T) {
	up := model.DescribeTrend(10)
	assert.Equal(t, model.TrendUpText, up.Text)
	assert.Equal(t, model.TrendUpColor, up.Color)
	assert.Equal(t, model.TrendUpArrow, up.Arrow)

	down := model.DescribeTrend(-3)
	assert.Equal(t, model.TrendDownText, down.Text)
	assert.Equal(t, model.TrendDownColor, down.Color)

	flat := model.DescribeTrend(0)
	assert.Equal(t, model.TrendNeutralText, flat.Text)
	assert.Equal(t, model.TrendNeutralArrow, flat.Arrow)
}
