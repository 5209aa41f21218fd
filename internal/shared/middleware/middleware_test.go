package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthedContext(t *testing.T, role string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if role != "" {
		c.Set("user_role", role)
	}
	return c, recorder
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		c, _ := newAuthedContext(t, "ADMIN")
		RequireAdmin()(c)
		assert.False(t, c.IsAborted())
	})

	t.Run("regular user is rejected", func(t *testing.T) {
		c, recorder := newAuthedContext(t, "USER")
		RequireAdmin()(c)
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("missing role is unauthorized", func(t *testing.T) {
		c, recorder := newAuthedContext(t, "")
		RequireAdmin()(c)
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("parses the stored id", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		want := uuid.New()
		c.Set("user_id", want.String())

		got, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("missing id", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		_, ok := GetUserID(c)
		assert.False(t, ok)
	})

	t.Run("malformed id", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("user_id", "not-a-uuid")
		_, ok := GetUserID(c)
		assert.False(t, ok)
	})
}
