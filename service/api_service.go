package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mandilinkybl-pixel/madirate/customerrors"
	"github.com/mandilinkybl-pixel/madirate/model"
	"github.com/mandilinkybl-pixel/madirate/repository"
	"github.com/mandilinkybl-pixel/madirate/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApiService serves the public dashboard aggregates.
type ApiService interface {
	MandiPrices(ctx context.Context, mandiName string) (*model.MandiPrices, error)
	StatePrices(ctx context.Context, stateID string) (*model.StatePrices, error)
}

type ApiServiceImpl struct {
	rateRepo  repository.MandiRateRepository
	stateRepo repository.StateRepository
	mandiRepo repository.MandiRepository
}

func NewApiService(rateRepo repository.MandiRateRepository, stateRepo repository.StateRepository, mandiRepo repository.MandiRepository) ApiService {
	return &ApiServiceImpl{rateRepo: rateRepo, stateRepo: stateRepo, mandiRepo: mandiRepo}
}

// MandiPrices returns the latest observation per commodity for one mandi,
// matched case-insensitively by name, sorted by commodity.
func (s *ApiServiceImpl) MandiPrices(ctx context.Context, mandiName string) (*model.MandiPrices, error) {
	name := strings.TrimSpace(mandiName)
	if name == "" {
		return nil, customerrors.NewValidation("mandi name is required")
	}

	rate, err := s.rateRepo.FindByMandiKey(ctx, util.NameKey(name))
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, customerrors.NewNotFound(fmt.Sprintf("no price data found for mandi: %s", name))
	}

	stateName := "Unknown"
	if state, err := s.stateRepo.FindByID(ctx, rate.StateID); err != nil {
		return nil, err
	} else if state != nil {
		stateName = state.Name
	}

	today := util.Today()
	items := latestItems(rate.List, today)
	sort.Slice(items, func(i, j int) bool {
		return items[i].Commodity < items[j].Commodity
	})

	return &model.MandiPrices{
		Mandi:            rate.Mandi,
		State:            stateName,
		LastUpdated:      rate.UpdatedAt,
		TotalCommodities: len(items),
		Prices:           items,
	}, nil
}

// StatePrices aggregates every mandi in a state with its latest
// commodity prices, sorted by mandi name.
func (s *ApiServiceImpl) StatePrices(ctx context.Context, stateID string) (*model.StatePrices, error) {
	oid, err := primitive.ObjectIDFromHex(stateID)
	if err != nil {
		return nil, customerrors.NewValidation("invalid state id")
	}

	state, err := s.stateRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, customerrors.NewNotFound("state not found")
	}

	mandis, err := s.mandiRepo.FindByState(ctx, oid)
	if err != nil {
		return nil, err
	}

	today := util.Today()
	result := &model.StatePrices{
		State:       state.Name,
		TotalMandis: len(mandis),
		LastUpdated: time.Now(),
		Mandis:      []model.StateMandiSummary{},
	}

	for _, mandi := range mandis {
		rate, err := s.rateRepo.FindByMandiKey(ctx, mandi.NameKey)
		if err != nil {
			return nil, err
		}

		summary := model.StateMandiSummary{
			MandiName:   mandi.Name,
			Commodities: []model.MandiPriceItem{},
		}
		if rate != nil {
			summary.Commodities = latestItems(rate.List, today)
			summary.TotalCommodities = len(summary.Commodities)
			updated := rate.UpdatedAt
			summary.LastUpdated = &updated
		}

		result.Mandis = append(result.Mandis, summary)
	}

	// Repo sorts mandis by name already; keep the guarantee explicit for
	// the dashboard contract.
	sort.Slice(result.Mandis, func(i, j int) bool {
		return result.Mandis[i].MandiName < result.Mandis[j].MandiName
	})

	return result, nil
}

// latestItems maps each entry to its chronologically latest point.
func latestItems(entries []model.CommodityEntry, today time.Time) []model.MandiPriceItem {
	items := make([]model.MandiPriceItem, 0, len(entries))
	for _, entry := range entries {
		if len(entry.Prices) == 0 {
			continue
		}

		sorted := make([]model.PricePoint, len(entry.Prices))
		copy(sorted, entry.Prices)
		sortPointsAscending(sorted)
		latest := sorted[len(sorted)-1]

		typ := entry.Type
		if typ == "" {
			typ = model.TypeNA
		}

		items = append(items, model.MandiPriceItem{
			Commodity: entry.Commodity,
			Type:      typ,
			MinPrice:  latest.MinRate,
			MaxPrice:  latest.MaxRate,
			Arrival:   latest.Arrival,
			Trend:     latest.Trend,
			Date:      latest.Date,
			IsToday:   util.SameDay(latest.Date, today),
		})
	}
	return items
}
