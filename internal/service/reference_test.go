package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/condor-cl/users-api/internal/mocks"
	"github.com/condor-cl/users-api/internal/model"
	"github.com/condor-cl/users-api/internal/testutil"
)

func TestReference_List(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ReferenceStore{}
	store.On("List", mock.Anything).Return([]model.Reference{{ID: 1, Name: "Metropolitana"}}, nil)

	s := NewReference(model.KindRegion, store, testutil.MakeNoopLogger())

	refs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "Metropolitana", refs[0].Name)
}

func TestReference_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ReferenceStore{}
	store.On("GetByID", mock.Anything, int32(9)).Return(model.Reference{}, model.ErrNotFound)

	s := NewReference(model.KindRole, store, testutil.MakeNoopLogger())

	_, err := s.GetByID(ctx, 9)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestReference_Create(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ReferenceStore{}
	store.On("Create", mock.Anything, model.Reference{Name: "Activo"}).Return(model.Reference{ID: 1, Name: "Activo"}, nil)

	s := NewReference(model.KindStatus, store, testutil.MakeNoopLogger())

	saved, err := s.Create(ctx, model.Reference{Name: "Activo"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), saved.ID)
	assert.Equal(t, model.KindStatus, s.Kind())
}
