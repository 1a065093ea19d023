package service

import (
	"context"
	"fmt"

	"github.com/mandilinkybl-pixel/madirate/customerrors"
	"github.com/mandilinkybl-pixel/madirate/model"
	"github.com/mandilinkybl-pixel/madirate/repository"
	"github.com/mandilinkybl-pixel/madirate/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MandiService interface {
	ListAll(ctx context.Context) ([]model.Mandi, error)
	ListByState(ctx context.Context, stateID string) ([]model.Mandi, error)
	BulkCreate(ctx context.Context, stateID string, names []string) error
	Update(ctx context.Context, id, name, stateID string) error
	Delete(ctx context.Context, id string) error
}

type MandiServiceImpl struct {
	repo      repository.MandiRepository
	stateRepo repository.StateRepository
}

func NewMandiService(repo repository.MandiRepository, stateRepo repository.StateRepository) MandiService {
	return &MandiServiceImpl{repo: repo, stateRepo: stateRepo}
}

func (s *MandiServiceImpl) ListAll(ctx context.Context) ([]model.Mandi, error) {
	return s.repo.FindAll(ctx)
}

func (s *MandiServiceImpl) ListByState(ctx context.Context, stateID string) ([]model.Mandi, error) {
	oid, err := primitive.ObjectIDFromHex(stateID)
	if err != nil {
		return nil, customerrors.NewValidation("invalid state id")
	}
	return s.repo.FindByState(ctx, oid)
}

// BulkCreate registers one or more mandis under a state. Duplicates within
// the request and against existing records are rejected case-insensitively
// before anything is written.
func (s *MandiServiceImpl) BulkCreate(ctx context.Context, stateID string, names []string) error {
	oid, err := primitive.ObjectIDFromHex(stateID)
	if err != nil {
		return customerrors.NewValidation("invalid state id")
	}

	state, err := s.stateRepo.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if state == nil {
		return customerrors.NewNotFound("state not found")
	}

	mandis := make([]model.Mandi, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, rawName := range names {
		name := util.TitleCase(rawName)
		if name == "" {
			return customerrors.NewValidation("mandi name is required")
		}
		key := util.NameKey(name)

		if _, dup := seen[key]; dup {
			return customerrors.NewValidation("duplicate mandi names in input")
		}
		seen[key] = struct{}{}

		existing, err := s.repo.FindByStateAndKey(ctx, oid, key)
		if err != nil {
			return err
		}
		if existing != nil {
			return customerrors.NewConflict(fmt.Sprintf("mandi %q already exists in this state", name))
		}

		mandis = append(mandis, model.Mandi{Name: name, NameKey: key, StateID: oid})
	}

	if len(mandis) == 0 {
		return customerrors.NewValidation("no mandi names provided")
	}

	return s.repo.InsertMany(ctx, mandis)
}

func (s *MandiServiceImpl) Update(ctx context.Context, id, name, stateID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return customerrors.NewValidation("invalid mandi id")
	}
	stateOID, err := primitive.ObjectIDFromHex(stateID)
	if err != nil {
		return customerrors.NewValidation("invalid state id")
	}
	if name == "" {
		return customerrors.NewValidation("mandi name is required")
	}

	formatted := util.TitleCase(name)
	key := util.NameKey(formatted)

	existing, err := s.repo.FindByStateAndKey(ctx, stateOID, key)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != oid {
		return customerrors.NewConflict(fmt.Sprintf("mandi %q already exists in this state", formatted))
	}

	_, err = s.repo.Rename(ctx, oid, formatted, key, stateOID)
	return err
}

func (s *MandiServiceImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return customerrors.NewValidation("invalid mandi id")
	}
	return s.repo.Delete(ctx, oid)
}
