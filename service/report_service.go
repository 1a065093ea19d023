package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mandilinkybl-pixel/madirate/customerrors"
	"github.com/mandilinkybl-pixel/madirate/model"
	"github.com/mandilinkybl-pixel/madirate/repository"
	"github.com/mandilinkybl-pixel/madirate/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RowFilter narrows row derivation. StateID and MandiRegex filter the
// records; AsOfDate (yyyy-mm-dd) selects the point for that day instead
// of the latest one.
type RowFilter struct {
	StateID    string
	MandiRegex string
	AsOfDate   string
	Search     string
}

type ReportService interface {
	DeriveRows(ctx context.Context, filter RowFilter) ([]model.ReportRow, error)
	SearchRows(ctx context.Context, filter RowFilter) ([]model.SearchRow, error)
	ReportSince(ctx context.Context, days int) ([]model.ReportEntry, error)
}

type ReportServiceImpl struct {
	repo      repository.MandiRateRepository
	stateRepo repository.StateRepository
}

func NewReportService(repo repository.MandiRateRepository, stateRepo repository.StateRepository) ReportService {
	return &ReportServiceImpl{repo: repo, stateRepo: stateRepo}
}

// DeriveRows produces the normalized report rows consumed by the preview
// endpoint and every exporter. Rows keep document/array iteration order;
// callers needing a different order sort downstream.
func (s *ReportServiceImpl) DeriveRows(ctx context.Context, filter RowFilter) ([]model.ReportRow, error) {
	rates, stateNames, err := s.loadRates(ctx, filter)
	if err != nil {
		return nil, err
	}

	var asOf time.Time
	if filter.AsOfDate != "" {
		if asOf, err = util.ParseDay(filter.AsOfDate); err != nil {
			return nil, customerrors.NewValidation("invalid date, expected yyyy-mm-dd")
		}
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	rows := []model.ReportRow{}
	for _, rate := range rates {
		stateName := stateNames[rate.StateID]
		for _, entry := range rate.List {
			if len(entry.Prices) == 0 {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(stateName), search) &&
				!strings.Contains(strings.ToLower(rate.Mandi), search) &&
				!strings.Contains(strings.ToLower(entry.Commodity), search) {
				continue
			}

			sorted := make([]model.PricePoint, len(entry.Prices))
			copy(sorted, entry.Prices)
			sortPointsAscending(sorted)

			idx := len(sorted) - 1
			if !asOf.IsZero() {
				for i := range sorted {
					if util.SameDay(sorted[i].Date, asOf) {
						idx = i
						break
					}
				}
			}
			point := sorted[idx]

			// Display-only trend: a stored 0 on a non-first point is
			// recomputed as the min-rate delta, never written back.
			trend := point.Trend
			if trend == 0 && idx > 0 {
				trend = point.MinRate - sorted[idx-1].MinRate
			}

			rows = append(rows, model.ReportRow{
				Mandi:       rate.Mandi,
				State:       stateName,
				Item:        entry.Commodity,
				Rate:        formatRateRange(point.MinRate, point.MaxRate),
				Arrival:     point.Arrival,
				Type:        entryType(entry, point),
				Trend:       model.DescribeTrend(trend),
				LastUpdated: util.FormatReportTime(point.Date),
			})
		}
	}

	return rows, nil
}

// SearchRows builds the dashboard table: the latest stored point per
// commodity plus the max-rate difference against the point before it,
// optionally filtered by free text over state/mandi/commodity.
func (s *ReportServiceImpl) SearchRows(ctx context.Context, filter RowFilter) ([]model.SearchRow, error) {
	rates, stateNames, err := s.loadRates(ctx, filter)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	rows := []model.SearchRow{}
	for _, rate := range rates {
		stateName := stateNames[rate.StateID]
		for _, entry := range rate.List {
			last := entry.LastPrice()
			if last == nil {
				continue
			}

			var difference float64
			if n := len(entry.Prices); n > 1 {
				difference = last.MaxRate - entry.Prices[n-2].MaxRate
			} else {
				difference = last.MaxRate
			}

			if search != "" &&
				!strings.Contains(strings.ToLower(stateName), search) &&
				!strings.Contains(strings.ToLower(rate.Mandi), search) &&
				!strings.Contains(strings.ToLower(entry.Commodity), search) {
				continue
			}

			rows = append(rows, model.SearchRow{
				StateID:     rate.StateID.Hex(),
				StateName:   stateName,
				Mandi:       rate.Mandi,
				Commodity:   entry.Commodity,
				Type:        string(entry.Type),
				MinRate:     last.MinRate,
				MaxRate:     last.MaxRate,
				Arrival:     last.Arrival,
				Updated:     util.FormatDisplayTime(last.Date),
				Difference:  difference,
				MandiRateID: rate.ID.Hex(),
			})
		}
	}

	return rows, nil
}

// ReportSince flattens every observation newer than the day threshold.
// days <= 0 means all records.
func (s *ReportServiceImpl) ReportSince(ctx context.Context, days int) ([]model.ReportEntry, error) {
	threshold := time.Time{}
	if days > 0 {
		threshold = time.Now().Add(-time.Duration(days) * 24 * time.Hour)
	}

	rates, err := s.repo.FindUpdatedSince(ctx, threshold)
	if err != nil {
		return nil, err
	}

	stateNames, err := s.stateNameIndex(ctx)
	if err != nil {
		return nil, err
	}

	entries := []model.ReportEntry{}
	for _, rate := range rates {
		stateName := stateNames[rate.StateID]
		for _, entry := range rate.List {
			for _, p := range entry.Prices {
				if p.Date.Before(threshold) {
					continue
				}
				entries = append(entries, model.ReportEntry{
					StateName:        stateName,
					MandiName:        rate.Mandi,
					Address:          fmt.Sprintf("%s / %s", stateName, rate.Mandi),
					Commodity:        entry.Commodity,
					Type:             string(entry.Type),
					Minimum:          p.MinRate,
					Maximum:          p.MaxRate,
					EstimatedArrival: p.Arrival,
					LastUpdated:      util.FormatDisplayTime(p.Date),
				})
			}
		}
	}

	return entries, nil
}

func (s *ReportServiceImpl) loadRates(ctx context.Context, filter RowFilter) ([]model.MandiRate, map[primitive.ObjectID]string, error) {
	rateFilter := repository.RateFilter{MandiRegex: filter.MandiRegex}
	if filter.StateID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.StateID)
		if err != nil {
			return nil, nil, customerrors.NewValidation("invalid state id")
		}
		rateFilter.StateID = &oid
	}

	rates, err := s.repo.Find(ctx, rateFilter)
	if err != nil {
		return nil, nil, err
	}

	stateNames, err := s.stateNameIndex(ctx)
	if err != nil {
		return nil, nil, err
	}

	return rates, stateNames, nil
}

func (s *ReportServiceImpl) stateNameIndex(ctx context.Context) (map[primitive.ObjectID]string, error) {
	states, err := s.stateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[primitive.ObjectID]string, len(states))
	for _, st := range states {
		names[st.ID] = st.Name
	}
	return names, nil
}

// formatRateRange renders "min-max", omitting the max segment when it is
// zero.
func formatRateRange(minRate, maxRate float64) string {
	min := strconv.FormatFloat(minRate, 'f', -1, 64)
	if maxRate == 0 {
		return min
	}
	return min + "-" + strconv.FormatFloat(maxRate, 'f', -1, 64)
}

// entryType prefers the entry's type, then the point's, then N/A.
func entryType(entry model.CommodityEntry, point model.PricePoint) string {
	if entry.Type != "" {
		return string(entry.Type)
	}
	if point.Type != "" {
		return string(point.Type)
	}
	return string(model.TypeNA)
}
