package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/condor-cl/users-api/internal/model"
)

// ReferenceStore is a mock implementation of model.ReferenceStore.
type ReferenceStore struct {
	mock.Mock
}

func (m *ReferenceStore) Exists(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ReferenceStore) GetByID(ctx context.Context, id int32) (model.Reference, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Reference), args.Error(1)
}

func (m *ReferenceStore) List(ctx context.Context) ([]model.Reference, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reference), args.Error(1)
}

func (m *ReferenceStore) Create(ctx context.Context, ref model.Reference) (model.Reference, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).(model.Reference), args.Error(1)
}
