package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mandilinkybl-pixel/madirate/customerrors"
	"github.com/mandilinkybl-pixel/madirate/model"
	"github.com/mandilinkybl-pixel/madirate/repository"
	"github.com/mandilinkybl-pixel/madirate/util"
	"github.com/mandilinkybl-pixel/madirate/validator"

	"github.com/Oudwins/zog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RateService interface {
	SubmitPrices(ctx context.Context, req model.SubmitPricesRequest) error
	AddPrice(ctx context.Context, id, commodity string, req model.AddPriceRequest) (float64, error)
	DeleteCommodity(ctx context.Context, id, commodity string) error
	History(ctx context.Context, id, commodity string) (*model.PriceHistory, error)
	HistoryByMandi(ctx context.Context, mandiName, commodity, stateID string) (*model.PriceHistory, error)
}

type RateServiceImpl struct {
	repo      repository.MandiRateRepository
	stateRepo repository.StateRepository
	mandiRepo repository.MandiRepository
}

func NewRateService(repo repository.MandiRateRepository, stateRepo repository.StateRepository, mandiRepo repository.MandiRepository) RateService {
	return &RateServiceImpl{repo: repo, stateRepo: stateRepo, mandiRepo: mandiRepo}
}

// submitRow is one validated row of a bulk submission.
type submitRow struct {
	Commodity string
	Type      model.CommodityType
	MinRate   float64
	MaxRate   float64
	Arrival   float64
}

// SubmitPrices records today's observation for each submitted commodity at
// one mandi. Appended points get the sign trend (+1/-1/0 vs the previous
// point's min rate, 0 for a first point) and the record trend becomes the
// sum of every entry's latest trend.
func (s *RateServiceImpl) SubmitPrices(ctx context.Context, req model.SubmitPricesRequest) error {
	rows, err := normalizeSubmission(req)
	if err != nil {
		return err
	}

	stateOID, err := primitive.ObjectIDFromHex(req.State)
	if err != nil {
		return customerrors.NewValidation("invalid state id")
	}
	state, err := s.stateRepo.FindByID(ctx, stateOID)
	if err != nil {
		return err
	}
	if state == nil {
		return customerrors.NewNotFound("invalid state ID")
	}

	mandi, err := s.mandiRepo.FindByStateAndKey(ctx, stateOID, util.NameKey(req.Mandi))
	if err != nil {
		return err
	}
	if mandi == nil {
		return customerrors.NewNotFound("invalid mandi name")
	}

	rate, err := s.repo.FindByStateAndMandi(ctx, stateOID, mandi.NameKey)
	if err != nil {
		return err
	}
	if rate == nil {
		rate = &model.MandiRate{
			StateID:  stateOID,
			Mandi:    mandi.Name,
			MandiKey: mandi.NameKey,
		}
	}

	today := util.Today()
	for _, row := range rows {
		if idx := rate.FindEntry(row.Commodity); idx >= 0 {
			entry := &rate.List[idx]
			trend := appendTrend(entry.LastPrice(), row.MinRate)
			entry.Prices = append(entry.Prices, model.PricePoint{
				MinRate: row.MinRate,
				MaxRate: row.MaxRate,
				Arrival: row.Arrival,
				Trend:   trend,
				Date:    today,
			})
			entry.Type = row.Type
		} else {
			rate.List = append(rate.List, model.CommodityEntry{
				Commodity: row.Commodity,
				Type:      row.Type,
				Prices: []model.PricePoint{{
					MinRate: row.MinRate,
					MaxRate: row.MaxRate,
					Arrival: row.Arrival,
					Trend:   0,
					Date:    today,
				}},
			})
		}
	}

	rate.RecalcLatestTrend()
	return s.repo.Save(ctx, rate)
}

// AddPrice corrects or appends today's point for a single commodity. The
// trend is the max-rate delta against the most recent point older than
// today (0 when none exists) and overwrites the record trend directly.
func (s *RateServiceImpl) AddPrice(ctx context.Context, id, commodity string, req model.AddPriceRequest) (float64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, customerrors.NewValidation("invalid mandi rate id")
	}
	if strings.TrimSpace(commodity) == "" {
		return 0, customerrors.NewValidation("commodity is required")
	}
	if req.MinRate == nil || req.MaxRate == nil || *req.MinRate < 0 || *req.MaxRate < 0 {
		return 0, customerrors.NewValidation("valid minrate and maxrate are required")
	}
	arrival := 0.0
	if req.Arrival != nil {
		if *req.Arrival < 0 {
			return 0, customerrors.NewValidation("arrival must not be negative")
		}
		arrival = *req.Arrival
	}

	rate, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return 0, err
	}
	if rate == nil {
		return 0, customerrors.NewNotFound("mandi rate record not found")
	}

	idx := rate.FindEntry(commodity)
	if idx < 0 {
		return 0, customerrors.NewNotFound("commodity not found in this mandi")
	}
	entry := &rate.List[idx]

	today := util.Today()
	trend := *req.MaxRate - priorMaxRate(entry.Prices, today)

	point := model.PricePoint{
		MinRate: *req.MinRate,
		MaxRate: *req.MaxRate,
		Arrival: arrival,
		Trend:   trend,
		Date:    today,
	}

	replaced := false
	for i := range entry.Prices {
		if util.SameDay(entry.Prices[i].Date, today) {
			entry.Prices[i] = point
			replaced = true
			break
		}
	}
	if !replaced {
		entry.Prices = append(entry.Prices, point)
	}

	// The correction path overwrites the record trend instead of summing
	// across entries.
	rate.LatestTrend = trend

	if err := s.repo.Save(ctx, rate); err != nil {
		return 0, err
	}
	return trend, nil
}

// DeleteCommodity removes one commodity's series; removing the last one
// deletes the whole record.
func (s *RateServiceImpl) DeleteCommodity(ctx context.Context, id, commodity string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return customerrors.NewValidation("invalid mandi rate id")
	}
	if strings.TrimSpace(commodity) == "" {
		return customerrors.NewValidation("commodity is required")
	}

	rate, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if rate == nil {
		return customerrors.NewNotFound("mandi rate not found")
	}

	key := util.NameKey(commodity)
	kept := rate.List[:0]
	for _, entry := range rate.List {
		if util.NameKey(entry.Commodity) != key {
			kept = append(kept, entry)
		}
	}
	rate.List = kept

	if len(rate.List) == 0 {
		return s.repo.Delete(ctx, rate.ID)
	}
	return s.repo.Save(ctx, rate)
}

func (s *RateServiceImpl) History(ctx context.Context, id, commodity string) (*model.PriceHistory, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, customerrors.NewValidation("invalid mandi rate id")
	}
	if strings.TrimSpace(commodity) == "" {
		return nil, customerrors.NewValidation("commodity is required")
	}

	rate, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, customerrors.NewNotFound("mandi rate not found")
	}

	return s.buildHistory(ctx, rate, commodity)
}

func (s *RateServiceImpl) HistoryByMandi(ctx context.Context, mandiName, commodity, stateID string) (*model.PriceHistory, error) {
	var rate *model.MandiRate
	var err error

	if stateID != "" {
		stateOID, idErr := primitive.ObjectIDFromHex(stateID)
		if idErr != nil {
			return nil, customerrors.NewValidation("invalid state id")
		}
		rate, err = s.repo.FindByStateAndMandi(ctx, stateOID, util.NameKey(mandiName))
	} else {
		rate, err = s.repo.FindByMandiKey(ctx, util.NameKey(mandiName))
	}
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, customerrors.NewNotFound("mandi not found")
	}

	return s.buildHistory(ctx, rate, commodity)
}

func (s *RateServiceImpl) buildHistory(ctx context.Context, rate *model.MandiRate, commodity string) (*model.PriceHistory, error) {
	idx := rate.FindEntry(commodity)
	if idx < 0 {
		return nil, customerrors.NewNotFound("commodity not found")
	}
	entry := rate.List[idx]

	stateName := ""
	if state, err := s.stateRepo.FindByID(ctx, rate.StateID); err != nil {
		return nil, err
	} else if state != nil {
		stateName = state.Name
	}

	sorted := make([]model.PricePoint, len(entry.Prices))
	copy(sorted, entry.Prices)
	sortPointsAscending(sorted)

	points := make([]model.HistoryPoint, 0, len(sorted))
	for _, p := range sorted {
		points = append(points, model.HistoryPoint{
			Date:    p.Date,
			MinRate: p.MinRate,
			MaxRate: p.MaxRate,
			Arrival: p.Arrival,
			Trend:   p.Trend,
		})
	}

	return &model.PriceHistory{
		State:     stateName,
		Mandi:     rate.Mandi,
		Commodity: entry.Commodity,
		Prices:    points,
	}, nil
}

// appendTrend is the sign trend for first-time appends: +1/-1/0 against
// the most recent point's min rate, 0 for the first point ever.
func appendTrend(last *model.PricePoint, minRate float64) float64 {
	if last == nil {
		return 0
	}
	switch {
	case minRate > last.MinRate:
		return 1
	case minRate < last.MinRate:
		return -1
	default:
		return 0
	}
}

// priorMaxRate returns the max rate of the most recent point strictly
// older than the given day, or 0 when the series has none. Today's own
// point is never the reference, so a same-day correction compares against
// the previous day.
func priorMaxRate(prices []model.PricePoint, day time.Time) float64 {
	sorted := make([]model.PricePoint, len(prices))
	copy(sorted, prices)
	sortPointsAscending(sorted)

	for i := len(sorted) - 1; i >= 0; i-- {
		if util.NormalizeDay(sorted[i].Date).Before(day) {
			return sorted[i].MaxRate
		}
	}
	return 0
}

func sortPointsAscending(points []model.PricePoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
}

// normalizeSubmission resolves the array-or-scalar bulk fields into
// validated rows before any record is touched.
func normalizeSubmission(req model.SubmitPricesRequest) ([]submitRow, error) {
	if strings.TrimSpace(req.State) == "" || strings.TrimSpace(req.Mandi) == "" || len(req.CommodityIDs) == 0 ||
		len(req.MinRates) == 0 || len(req.MaxRates) == 0 {
		return nil, customerrors.NewValidation("missing required fields")
	}

	n := len(req.CommodityIDs)
	if len(req.Types) != n || len(req.MinRates) != n || len(req.MaxRates) != n ||
		(len(req.Arrivals) != 0 && len(req.Arrivals) != n) {
		return nil, customerrors.NewValidation("array length mismatch")
	}

	rows := make([]submitRow, 0, n)
	for i := 0; i < n; i++ {
		commodity := strings.TrimSpace(req.CommodityIDs[i])
		if commodity == "" {
			return nil, customerrors.NewValidation(fmt.Sprintf("commodity is required at row %d", i+1))
		}

		minRate, err := parseRate(req.MinRates[i])
		if err != nil {
			return nil, customerrors.NewValidation(fmt.Sprintf("invalid numeric values for prices or arrivals at row %d", i+1))
		}
		maxRate, err := parseRate(req.MaxRates[i])
		if err != nil {
			return nil, customerrors.NewValidation(fmt.Sprintf("invalid numeric values for prices or arrivals at row %d", i+1))
		}
		arrival := 0.0
		if len(req.Arrivals) == n {
			if arrival, err = parseRate(req.Arrivals[i]); err != nil {
				return nil, customerrors.NewValidation(fmt.Sprintf("invalid numeric values for prices or arrivals at row %d", i+1))
			}
		}

		row := submitRow{
			Commodity: commodity,
			Type:      model.ParseCommodityType(strings.TrimSpace(req.Types[i])),
			MinRate:   minRate,
			MaxRate:   maxRate,
			Arrival:   arrival,
		}

		if err := zog.Struct(validator.PriceShape).Validate(&row); err != nil {
			return nil, customerrors.NewValidation(fmt.Sprintf("invalid numeric values for prices or arrivals at row %d", i+1))
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// parseRate parses a numeric form field, treating blank as 0.
func parseRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
