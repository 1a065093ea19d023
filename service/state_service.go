package service

import (
	"context"
	"fmt"

	localCache "github.com/mandilinkybl-pixel/madirate/cache"
	"github.com/mandilinkybl-pixel/madirate/customerrors"
	"github.com/mandilinkybl-pixel/madirate/model"
	"github.com/mandilinkybl-pixel/madirate/repository"
	"github.com/mandilinkybl-pixel/madirate/util"

	"github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const allStatesKey = "all"

type StateService interface {
	List(ctx context.Context) ([]model.State, error)
	Get(ctx context.Context, id string) (*model.State, error)
	BulkCreate(ctx context.Context, rawNames string) (added []string, skipped []string, err error)
	Update(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type StateServiceImpl struct {
	repo repository.StateRepository
}

func NewStateService(repo repository.StateRepository) StateService {
	return &StateServiceImpl{repo: repo}
}

func (s *StateServiceImpl) List(ctx context.Context) ([]model.State, error) {
	if val, found := localCache.StateCache.Get(allStatesKey); found {
		return val.([]model.State), nil
	}

	states, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	localCache.StateCache.Set(allStatesKey, states, cache.NoExpiration)
	return states, nil
}

func (s *StateServiceImpl) Get(ctx context.Context, id string) (*model.State, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, customerrors.NewValidation("invalid state id")
	}

	state, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, customerrors.NewNotFound("state not found")
	}
	return state, nil
}

// BulkCreate normalizes each submitted name to Title Case and inserts the
// ones that do not already exist, reporting added and skipped names.
func (s *StateServiceImpl) BulkCreate(ctx context.Context, rawNames string) ([]string, []string, error) {
	names := util.SplitNames(rawNames)
	if len(names) == 0 {
		return nil, nil, customerrors.NewValidation("no state names provided")
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

		if _, err := s.repo.Insert(ctx, model.State{Name: name, NameKey: key}); err != nil {
			return added, skipped, err
		}
		added = append(added, name)
	}

	localCache.StateCache.Delete(allStatesKey)
	return added, skipped, nil
}

func (s *StateServiceImpl) Update(ctx context.Context, id, name string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return customerrors.NewValidation("invalid state id")
	}
	if name == "" {
		return customerrors.NewValidation("state name is required")
	}

	formatted := util.TitleCase(name)
	key := util.NameKey(formatted)

	duplicate, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return err
	}
	if duplicate != nil && duplicate.ID != oid {
		return customerrors.NewConflict(fmt.Sprintf("state %q already exists", formatted))
	}

	if _, err := s.repo.Rename(ctx, oid, formatted, key); err != nil {
		return err
	}

	localCache.StateCache.Delete(allStatesKey)
	return nil
}

func (s *StateServiceImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return customerrors.NewValidation("invalid state id")
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		return err
	}

	localCache.StateCache.Delete(allStatesKey)
	return nil
}
