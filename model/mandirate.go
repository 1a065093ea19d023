package model

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mandilinkybl-pixel/madirate/customerrors"
	"github.com/mandilinkybl-pixel/madirate/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PricePoint is one daily observation for a commodity. Date is normalized
// to IST midnight; at most one point exists per calendar day per entry.
type PricePoint struct {
	MinRate float64       `bson:"minrate" json:"minrate"`
	MaxRate float64       `bson:"maxrate" json:"maxrate"`
	Arrival float64       `bson:"arrival" json:"arrival"`
	Trend   float64       `bson:"trend" json:"trend"`
	Type    CommodityType `bson:"type,omitempty" json:"type,omitempty"`
	Date    time.Time     `bson:"date" json:"date"`
}

// CommodityEntry embeds the full price series for one commodity at one
// mandi.
type CommodityEntry struct {
	Commodity string        `bson:"commodity" json:"commodity"`
	Type      CommodityType `bson:"type" json:"type"`
	Prices    []PricePoint  `bson:"prices" json:"prices"`
}

// LastPrice returns the most recently appended point, or nil for an empty
// series.
func (e *CommodityEntry) LastPrice() *PricePoint {
	if len(e.Prices) == 0 {
		return nil
	}
	return &e.Prices[len(e.Prices)-1]
}

// SortPrices orders the series ascending by date. Storage order is not
// guaranteed, so readers sort before selecting points.
func (e *CommodityEntry) SortPrices() {
	sort.SliceStable(e.Prices, func(i, j int) bool {
		return e.Prices[i].Date.Before(e.Prices[j].Date)
	})
}

// MandiRate aggregates all commodity price series for one mandi. The
// logical key (state, mandi) is unique; MandiKey backs that index.
type MandiRate struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StateID     primitive.ObjectID `bson:"state" json:"stateId"`
	Mandi       string             `bson:"mandi" json:"mandi"`
	MandiKey    string             `bson:"mandi_key" json:"-"`
	List        []CommodityEntry   `bson:"list" json:"list"`
	LatestTrend float64            `bson:"latest_trend" json:"latestTrend"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FindEntry locates a commodity entry by case-insensitive name, returning
// its index or -1.
func (r *MandiRate) FindEntry(commodity string) int {
	key := strings.ToLower(strings.TrimSpace(commodity))
	for i := range r.List {
		if strings.ToLower(r.List[i].Commodity) == key {
			return i
		}
	}
	return -1
}

// RecalcLatestTrend sets the record trend to the sum of each entry's
// latest point trend.
func (r *MandiRate) RecalcLatestTrend() {
	var sum float64
	for i := range r.List {
		if p := r.List[i].LastPrice(); p != nil {
			sum += p.Trend
		}
	}
	r.LatestTrend = sum
}

// Validate enforces the save-time invariants: a non-empty commodity list,
// non-empty price series and at most one point per IST day per entry.
func (r *MandiRate) Validate() error {
	if len(r.List) == 0 {
		return customerrors.NewValidation("at least one commodity is required")
	}
	for i := range r.List {
		entry := &r.List[i]
		if len(entry.Prices) == 0 {
			return customerrors.NewValidation(fmt.Sprintf("at least one price is required for %s", entry.Commodity))
		}
		seen := make(map[int64]struct{}, len(entry.Prices))
		for _, p := range entry.Prices {
			day := util.NormalizeDay(p.Date).Unix()
			if _, dup := seen[day]; dup {
				return customerrors.NewValidation(fmt.Sprintf("duplicate date entries found for %s", entry.Commodity))
			}
			seen[day] = struct{}{}
		}
	}
	return nil
}
