package seed

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/condor-cl/users-api/internal/hasher"
	"github.com/condor-cl/users-api/internal/mocks"
	"github.com/condor-cl/users-api/internal/model"
	"github.com/condor-cl/users-api/internal/service"
	"github.com/condor-cl/users-api/internal/testutil"
)

type seedStack struct {
	services Services
	users    *mocks.UserStore
	refs     *mocks.ReferenceStore
}

func makeSeedStack(t *testing.T) seedStack {
	t.Helper()

	users := &mocks.UserStore{}
	refs := &mocks.ReferenceStore{}
	log := testutil.MakeNoopLogger()

	return seedStack{
		services: Services{
			Users:    service.NewUser(users, refs, refs, refs, hasher.NewBcrypt(4), log),
			Roles:    service.NewReference(model.KindRole, refs, log),
			Regions:  service.NewReference(model.KindRegion, refs, log),
			Statuses: service.NewReference(model.KindStatus, refs, log),
		},
		users: users,
		refs:  refs,
	}
}

func TestRun_CreatesUsersThroughService(t *testing.T) {
	ctx := context.Background()
	st := makeSeedStack(t)

	st.refs.On("List", mock.Anything).Return([]model.Reference{{ID: 1, Name: "existing"}}, nil)
	st.refs.On("Exists", mock.Anything, int32(1)).Return(true, nil)

	var created []model.User
	st.users.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).(model.User))
		}).
		Return(model.User{ID: 1}, nil)

	err := Run(ctx, st.services, Config{Users: 3, Rand: rand.New(rand.NewSource(42))}, testutil.MakeNoopLogger())
	require.NoError(t, err)
	require.Len(t, created, 3)

	for _, u := range created {
		assert.NotEmpty(t, u.Name)
		assert.NotEmpty(t, u.Email)
		// passwords go through the user service, so they arrive hashed
		assert.NotEqual(t, "Secret123!", u.PasswordHash)
		assert.GreaterOrEqual(t, u.TripCount, int32(0))
		assert.False(t, u.DistanceKM.IsNegative())
	}
	// existing reference rows are reused, not duplicated
	st.refs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRun_BootstrapsEmptyReferenceTables(t *testing.T) {
	ctx := context.Background()
	st := makeSeedStack(t)

	st.refs.On("List", mock.Anything).Return([]model.Reference{}, nil)
	st.refs.On("Create", mock.Anything, mock.Anything).Return(model.Reference{ID: 1}, nil)
	st.refs.On("Exists", mock.Anything, int32(1)).Return(true, nil)
	st.users.On("Create", mock.Anything, mock.Anything).Return(model.User{ID: 1}, nil)

	err := Run(ctx, st.services, Config{Users: 1, Rand: rand.New(rand.NewSource(42))}, testutil.MakeNoopLogger())
	require.NoError(t, err)

	st.refs.AssertNumberOfCalls(t, "Create", 3)
}

func TestRun_IsDeterministicForSameSource(t *testing.T) {
	ctx := context.Background()

	emails := make([][]string, 2)
	for i := range emails {
		st := makeSeedStack(t)
		st.refs.On("List", mock.Anything).Return([]model.Reference{{ID: 1}}, nil)
		st.refs.On("Exists", mock.Anything, int32(1)).Return(true, nil)
		st.users.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				emails[i] = append(emails[i], args.Get(1).(model.User).Email)
			}).
			Return(model.User{ID: 1}, nil)

		err := Run(ctx, st.services, Config{Users: 5, Rand: rand.New(rand.NewSource(7))}, testutil.MakeNoopLogger())
		require.NoError(t, err)
	}

	assert.Equal(t, emails[0], emails[1])
}
