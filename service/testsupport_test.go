package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/mandilinkybl-pixel/madirate/model"
	"github.com/mandilinkybl-pixel/madirate/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories so the service layer is testable without a
// running MongoDB.

type memStateRepo struct {
	states map[primitive.ObjectID]model.State
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{states: map[primitive.ObjectID]model.State{}}
}

func (r *memStateRepo) FindAll(ctx context.Context) ([]model.State, error) {
	out := make([]model.State, 0, len(r.states))
	for _, st := range r.states {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memStateRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.State, error) {
	if st, ok := r.states[id]; ok {
		copied := st
		return &copied, nil
	}
	return nil, nil
}

func (r *memStateRepo) FindByKey(ctx context.Context, nameKey string) (*model.State, error) {
	for _, st := range r.states {
		if st.NameKey == nameKey {
			copied := st
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memStateRepo) Insert(ctx context.Context, state model.State) (primitive.ObjectID, error) {
	state.ID = primitive.NewObjectID()
	r.states[state.ID] = state
	return state.ID, nil
}

func (r *memStateRepo) Rename(ctx context.Context, id primitive.ObjectID, name, nameKey string) (*model.State, error) {
	st := r.states[id]
	st.Name = name
	st.NameKey = nameKey
	r.states[id] = st
	return &st, nil
}

func (r *memStateRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.states, id)
	return nil
}

type memMandiRepo struct {
	mandis map[primitive.ObjectID]model.Mandi
}

func newMemMandiRepo() *memMandiRepo {
	return &memMandiRepo{mandis: map[primitive.ObjectID]model.Mandi{}}
}

func (r *memMandiRepo) FindAll(ctx context.Context) ([]model.Mandi, error) {
	out := make([]model.Mandi, 0, len(r.mandis))
	for _, m := range r.mandis {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memMandiRepo) FindByState(ctx context.Context, stateID primitive.ObjectID) ([]model.Mandi, error) {
	out := []model.Mandi{}
	for _, m := range r.mandis {
		if m.StateID == stateID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memMandiRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Mandi, error) {
	if m, ok := r.mandis[id]; ok {
		copied := m
		return &copied, nil
	}
	return nil, nil
}

func (r *memMandiRepo) FindByStateAndKey(ctx context.Context, stateID primitive.ObjectID, nameKey string) (*model.Mandi, error) {
	for _, m := range r.mandis {
		if m.StateID == stateID && m.NameKey == nameKey {
			copied := m
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memMandiRepo) InsertMany(ctx context.Context, mandis []model.Mandi) error {
	for _, m := range mandis {
		m.ID = primitive.NewObjectID()
		r.mandis[m.ID] = m
	}
	return nil
}

func (r *memMandiRepo) Rename(ctx context.Context, id primitive.ObjectID, name, nameKey string, stateID primitive.ObjectID) (*model.Mandi, error) {
	m := r.mandis[id]
	m.Name = name
	m.NameKey = nameKey
	m.StateID = stateID
	r.mandis[id] = m
	return &m, nil
}

func (r *memMandiRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.mandis, id)
	return nil
}

type memRateRepo struct {
	rates map[primitive.ObjectID]*model.MandiRate
}

func newMemRateRepo() *memRateRepo {
	return &memRateRepo{rates: map[primitive.ObjectID]*model.MandiRate{}}
}

// cloneRate deep-copies a record the way a driver decode would: callers
// get their own List and Prices slices, so mutating a fetched record
// never touches the stored one.
func cloneRate(rate *model.MandiRate) *model.MandiRate {
	copied := *rate
	copied.List = make([]model.CommodityEntry, len(rate.List))
	for i, entry := range rate.List {
		copied.List[i] = entry
		copied.List[i].Prices = append([]model.PricePoint(nil), entry.Prices...)
	}
	return &copied
}

func (r *memRateRepo) Find(ctx context.Context, filter repository.RateFilter) ([]model.MandiRate, error) {
	out := []model.MandiRate{}
	for _, rate := range r.rates {
		if filter.StateID != nil && rate.StateID != *filter.StateID {
			continue
		}
		if filter.MandiRegex != "" &&
			!strings.Contains(strings.ToLower(rate.Mandi), strings.ToLower(filter.MandiRegex)) {
			continue
		}
		out = append(out, *cloneRate(rate))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Mandi < out[j].Mandi })
	return out, nil
}

func (r *memRateRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.MandiRate, error) {
	if rate, ok := r.rates[id]; ok {
		return cloneRate(rate), nil
	}
	return nil, nil
}

func (r *memRateRepo) FindByStateAndMandi(ctx context.Context, stateID primitive.ObjectID, mandiKey string) (*model.MandiRate, error) {
	for _, rate := range r.rates {
		if rate.StateID == stateID && rate.MandiKey == mandiKey {
			return cloneRate(rate), nil
		}
	}
	return nil, nil
}

func (r *memRateRepo) FindByMandiKey(ctx context.Context, mandiKey string) (*model.MandiRate, error) {
	var latest *model.MandiRate
	for _, rate := range r.rates {
		if rate.MandiKey != mandiKey {
			continue
		}
		if latest == nil || rate.UpdatedAt.After(latest.UpdatedAt) {
			latest = rate
		}
	}
	if latest == nil {
		return nil, nil
	}
	return cloneRate(latest), nil
}

func (r *memRateRepo) FindUpdatedSince(ctx context.Context, since time.Time) ([]model.MandiRate, error) {
	out := []model.MandiRate{}
	for _, rate := range r.rates {
		if rate.UpdatedAt.Before(since) {
			continue
		}
		out = append(out, *cloneRate(rate))
	}
	return out, nil
}

func (r *memRateRepo) Save(ctx context.Context, rate *model.MandiRate) error {
	if err := rate.Validate(); err != nil {
		return err
	}
	now := time.Now()
	if rate.ID.IsZero() {
		rate.ID = primitive.NewObjectID()
		rate.CreatedAt = now
	}
	rate.UpdatedAt = now
	r.rates[rate.ID] = cloneRate(rate)
	return nil
}

func (r *memRateRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.rates, id)
	return nil
}

// fixture wires one state and one mandi through the in-memory repos.
type fixture struct {
	stateRepo *memStateRepo
	mandiRepo *memMandiRepo
	rateRepo  *memRateRepo
	stateID   primitive.ObjectID
	mandiID   primitive.ObjectID
}

func newFixture() *fixture {
	f := &fixture{
		stateRepo: newMemStateRepo(),
		mandiRepo: newMemMandiRepo(),
		rateRepo:  newMemRateRepo(),
	}

	f.stateID = primitive.NewObjectID()
	f.stateRepo.states[f.stateID] = model.State{ID: f.stateID, Name: "Haryana", NameKey: "haryana"}

	f.mandiID = primitive.NewObjectID()
	f.mandiRepo.mandis[f.mandiID] = model.Mandi{ID: f.mandiID, Name: "Karnal", NameKey: "karnal", StateID: f.stateID}

	return f
}

func (f *fixture) rateService() RateService {
	return NewRateService(f.rateRepo, f.stateRepo, f.mandiRepo)
}

func (f *fixture) reportService() ReportService {
	return NewReportService(f.rateRepo, f.stateRepo)
}

func (f *fixture) apiService() ApiService {
	return NewApiService(f.rateRepo, f.stateRepo, f.mandiRepo)
}

// seedRate stores a record directly, bypassing the save-time checks.
func (f *fixture) seedRate(rate *model.MandiRate) primitive.ObjectID {
	if rate.ID.IsZero() {
		rate.ID = primitive.NewObjectID()
	}
	if rate.UpdatedAt.IsZero() {
		rate.UpdatedAt = time.Now()
	}
	f.rateRepo.rates[rate.ID] = cloneRate(rate)
	return rate.ID
}
