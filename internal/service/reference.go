package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/condor-cl/users-api/internal/logger"
	"github.com/condor-cl/users-api/internal/model"
)

// Reference is the thin pass-through service for one reference table
// (role, region or status). The user service consults the underlying
// store read-only; this surface exists for administrative CRUD.
type Reference struct {
	kind   model.ReferenceKind
	store  model.ReferenceStore
	logger *logger.Logger
}

// NewReference creates a Reference service for the given kind.
func NewReference(kind model.ReferenceKind, store model.ReferenceStore, logger *logger.Logger) *Reference {
	return &Reference{
		kind:   kind,
		store:  store,
		logger: logger,
	}
}

// Kind returns the reference kind this service manages.
func (s *Reference) Kind() model.ReferenceKind {
	return s.kind
}

// List returns all rows of the reference table.
func (s *Reference) List(ctx context.Context) ([]model.Reference, error) {
	refs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.kind, err)
	}

	return refs, nil
}

// GetByID returns the reference row with the given id.
func (s *Reference) GetByID(ctx context.Context, id int32) (model.Reference, error) {
	ref, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Reference{}, model.ErrNotFound
		}
		return model.Reference{}, fmt.Errorf("failed to get %s by id: %w", s.kind, err)
	}

	return ref, nil
}

// Create persists a new reference row.
func (s *Reference) Create(ctx context.Context, ref model.Reference) (model.Reference, error) {
	saved, err := s.store.Create(ctx, ref)
	if err != nil {
		return model.Reference{}, fmt.Errorf("failed to create %s: %w", s.kind, err)
	}

	s.logger.Info("Reference service: row created", "kind", s.kind, "id", saved.ID, "name", saved.Name)

	return saved, nil
}
