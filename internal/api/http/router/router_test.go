package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/condor-cl/users-api/internal/api/http/handler"
	"github.com/condor-cl/users-api/internal/hasher"
	"github.com/condor-cl/users-api/internal/mocks"
	"github.com/condor-cl/users-api/internal/model"
	"github.com/condor-cl/users-api/internal/service"
	"github.com/condor-cl/users-api/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func makeEngine(t *testing.T, users *mocks.UserStore, refs *mocks.ReferenceStore) *gin.Engine {
	t.Helper()

	log := testutil.MakeNoopLogger()
	userService := service.NewUser(users, refs, refs, refs, hasher.NewBcrypt(4), log)

	r := New(
		handler.NewUser(userService, log),
		handler.NewReference(service.NewReference(model.KindRole, refs, log), log),
		handler.NewReference(service.NewReference(model.KindRegion, refs, log), log),
		handler.NewReference(service.NewReference(model.KindStatus, refs, log), log),
		log,
	)

	return r.Register()
}

func TestRouter_RegistersUserRoutes(t *testing.T) {
	users := &mocks.UserStore{}
	refs := &mocks.ReferenceStore{}
	users.On("List", mock.Anything).Return([]model.User{}, nil)

	engine := makeEngine(t, users, refs)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/usuarios", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRouter_RegistersReferenceRoutes(t *testing.T) {
	users := &mocks.UserStore{}
	refs := &mocks.ReferenceStore{}
	refs.On("List", mock.Anything).Return([]model.Reference{{ID: 1, Name: "Activo"}}, nil)

	engine := makeEngine(t, users, refs)

	for _, path := range []string{"/api/v1/roles", "/api/v1/regiones", "/api/v1/estados"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	engine := makeEngine(t, &mocks.UserStore{}, &mocks.ReferenceStore{})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/desconocido", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_SetsRequestID(t *testing.T) {
	users := &mocks.UserStore{}
	users.On("List", mock.Anything).Return([]model.User{}, nil)

	engine := makeEngine(t, users, &mocks.ReferenceStore{})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/usuarios", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
