package service

import (
	"context"
	"fmt"
	"strings"

	localCache "github.com/mandilinkybl-pixel/madirate/cache"
	"github.com/mandilinkybl-pixel/madirate/customerrors"
	"github.com/mandilinkybl-pixel/madirate/model"
	"github.com/mandilinkybl-pixel/madirate/repository"
	"github.com/mandilinkybl-pixel/madirate/util"

	"github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const allCommoditiesKey = "all"

type CommodityService interface {
	List(ctx context.Context) ([]model.Commodity, error)
	Autocomplete(ctx context.Context, query string) ([]string, error)
	BulkCreate(ctx context.Context, rawNames string) (added []string, skipped []string, err error)
	Update(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type CommodityServiceImpl struct {
	repo repository.CommodityRepository
}

func NewCommodityService(repo repository.CommodityRepository) CommodityService {
	return &CommodityServiceImpl{repo: repo}
}

func (s *CommodityServiceImpl) List(ctx context.Context) ([]model.Commodity, error) {
	if val, found := localCache.CommodityCache.Get(allCommoditiesKey); found {
		return val.([]model.Commodity), nil
	}

	commodities, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	localCache.CommodityCache.Set(allCommoditiesKey, commodities, cache.NoExpiration)
	return commodities, nil
}

// Autocomplete returns the sorted master-list names matching the query
// case-insensitively, served from the cached list.
func (s *CommodityServiceImpl) Autocomplete(ctx context.Context, query string) ([]string, error) {
	commodities, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	names := make([]string, 0, len(commodities))
	for _, c := range commodities {
		if q == "" || strings.Contains(c.NameKey, q) {
			names = append(names, c.Name)
		}
	}
	return names, nil
}

func (s *CommodityServiceImpl) BulkCreate(ctx context.Context, rawNames string) ([]string, []string, error) {
	names := util.SplitNames(rawNames)
	if len(names) == 0 {
		return nil, nil, customerrors.NewValidation("no commodity names provided")
	}

	var added, skipped []string
	for _, rawName := range names {
		name := util.TitleCase(rawName)
		key := util.NameKey(name)

		existing, err := s.repo.FindByKey(ctx, key)
		if err != nil {
			return added, skipped, err
		}
		if existing != nil {
			skipped = append(skipped, name)
			continue
		}

		if _, err := s.repo.Insert(ctx, model.Commodity{Name: name, NameKey: key}); err != nil {
			return added, skipped, err
		}
		added = append(added, name)
	}

	localCache.CommodityCache.Delete(allCommoditiesKey)
	return added, skipped, nil
}

func (s *CommodityServiceImpl) Update(ctx context.Context, id, name string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return customerrors.NewValidation("invalid commodity id")
	}
	if name == "" {
		return customerrors.NewValidation("commodity name is required")
	}

	formatted := util.TitleCase(name)
	key := util.NameKey(formatted)

	duplicate, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return err
	}
	if duplicate != nil && duplicate.ID != oid {
		return customerrors.NewConflict(fmt.Sprintf("commodity %q already exists", formatted))
	}

	if _, err := s.repo.Rename(ctx, oid, formatted, key); err != nil {
		return err
	}

	localCache.CommodityCache.Delete(allCommoditiesKey)
	return nil
}

func (s *CommodityServiceImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return customerrors.NewValidation("invalid commodity id")
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		return err
	}

	localCache.CommodityCache.Delete(allCommoditiesKey)
	return nil
}
