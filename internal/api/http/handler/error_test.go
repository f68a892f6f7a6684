package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/condor-cl/users-api/internal/model"
	"github.com/condor-cl/users-api/internal/testutil"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "not found",
			err:      model.ErrNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "invalid credentials",
			err:      model.ErrInvalidCredentials,
			expected: http.StatusUnauthorized,
		},
		{
			name:     "missing reference",
			err:      model.NewMissingReference(model.KindRegion),
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid photo",
			err:      &model.InvalidPhotoError{Reason: model.PhotoReasonEmpty},
			expected: http.StatusBadRequest,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(c, testutil.MakeNoopLogger(), tt.err)

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
