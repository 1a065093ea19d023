package model

import "time"

// Trend descriptor constants, sign of the displayed trend mapped to
// text/color/arrow.
const (
	TrendUpColor      = "#27ae60"
	TrendDownColor    = "#c0392b"
	TrendNeutralColor = "#95a5a6"

	TrendUpText      = "Up"
	TrendDownText    = "Down"
	TrendNeutralText = "Neutral"

	TrendUpArrow      = "↑"
	TrendDownArrow    = "↓"
	TrendNeutralArrow = "→"
)

// TrendDescriptor carries the display rendering of a trend value.
type TrendDescriptor struct {
	Text  string  `json:"text"`
	Color string  `json:"color"`
	Arrow string  `json:"arrow"`
	Value float64 `json:"value"`
}

// DescribeTrend maps a trend value to its descriptor.
func DescribeTrend(trend float64) TrendDescriptor {
	switch {
	case trend > 0:
		return TrendDescriptor{Text: TrendUpText, Color: TrendUpColor, Arrow: TrendUpArrow, Value: trend}
	case trend < 0:
		return TrendDescriptor{Text: TrendDownText, Color: TrendDownColor, Arrow: TrendDownArrow, Value: trend}
	default:
		return TrendDescriptor{Text: TrendNeutralText, Color: TrendNeutralColor, Arrow: TrendNeutralArrow, Value: trend}
	}
}

// ReportRow is the normalized row shared by the preview endpoint and the
// CSV/xlsx/PDF exporters.
type ReportRow struct {
	Mandi       string          `json:"mandi"`
	State       string          `json:"state"`
	Item        string          `json:"item"`
	Rate        string          `json:"rate"`
	Arrival     float64         `json:"arrival"`
	Type        string          `json:"type"`
	Trend       TrendDescriptor `json:"trend"`
	LastUpdated string          `json:"lastUpdated"`
}

// SearchRow is the dashboard search/table row with the latest point per
// commodity and the max-rate difference vs the previous point.
type SearchRow struct {
	StateID     string  `json:"stateId"`
	StateName   string  `json:"stateName"`
	Mandi       string  `json:"mandi"`
	Commodity   string  `json:"commodity"`
	Type        string  `json:"type"`
	MinRate     float64 `json:"minrate"`
	MaxRate     float64 `json:"maxrate"`
	Arrival     float64 `json:"arrival"`
	Updated     string  `json:"updated"`
	Difference  float64 `json:"difference"`
	MandiRateID string  `json:"mandirateid"`
}

// ReportEntry is one observation in the rolling activity report, every
// point newer than the requested threshold.
type ReportEntry struct {
	StateName        string  `json:"stateName"`
	MandiName        string  `json:"mandiName"`
	Address          string  `json:"address"`
	Commodity        string  `json:"commodity"`
	Type             string  `json:"type"`
	Minimum          float64 `json:"minimum"`
	Maximum          float64 `json:"maximum"`
	EstimatedArrival float64 `json:"estimatedArrival"`
	LastUpdated      string  `json:"lastUpdated"`
}

// HistoryPoint is one observation in a commodity's price history.
type HistoryPoint struct {
	Date    time.Time `json:"date"`
	MinRate float64   `json:"minrate"`
	MaxRate float64   `json:"maxrate"`
	Arrival float64   `json:"arrival"`
	Trend   float64   `json:"trend"`
}

// PriceHistory is the full sorted series for one (mandi, commodity).
type PriceHistory struct {
	State     string         `json:"state"`
	Mandi     string         `json:"mandi"`
	Commodity string         `json:"commodity"`
	Prices    []HistoryPoint `json:"prices"`
}

// MandiPriceItem is one commodity's latest price in the public API.
type MandiPriceItem struct {
	Commodity string        `json:"commodity"`
	Type      CommodityType `json:"type"`
	MinPrice  float64       `json:"min_price"`
	MaxPrice  float64       `json:"max_price"`
	Arrival   float64       `json:"arrival"`
	Trend     float64       `json:"trend"`
	Date      time.Time     `json:"date"`
	IsToday   bool          `json:"isToday"`
}

// MandiPrices is the latest-prices view for one mandi.
type MandiPrices struct {
	Mandi            string           `json:"mandi"`
	State            string           `json:"state"`
	LastUpdated      time.Time        `json:"lastUpdated"`
	TotalCommodities int              `json:"totalCommodities"`
	Prices           []MandiPriceItem `json:"prices"`
}

// StateMandiSummary is one mandi's latest prices inside the state-wide
// dashboard aggregate.
type StateMandiSummary struct {
	MandiName        string           `json:"mandiName"`
	TotalCommodities int              `json:"totalCommodities"`
	LastUpdated      *time.Time       `json:"lastUpdated"`
	Commodities      []MandiPriceItem `json:"commodities"`
}

// StatePrices is the all-mandis-in-state dashboard aggregate.
type StatePrices struct {
	State       string              `json:"state"`
	TotalMandis int                 `json:"totalMandis"`
	LastUpdated time.Time           `json:"lastUpdated"`
	Mandis      []StateMandiSummary `json:"mandis"`
}
