package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/quintus06/Clipbox-sub000/internal/models"
)

func performWithRole(role string, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", func(c *gin.Context) {
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	}, handler, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	return w
}

func TestRequireRole(t *testing.T) {
	t.Run("allows matching role", func(t *testing.T) {
		w := performWithRole(models.RoleClipper, RequireRole(models.RoleClipper))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("allows any of several roles", func(t *testing.T) {
		w := performWithRole(models.RoleAdmin, RequireRole(models.RoleAdvertiser, models.RoleAdmin))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects wrong role", func(t *testing.T) {
		w := performWithRole(models.RoleClipper, RequireRole(models.RoleAdvertiser))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("rejects missing role", func(t *testing.T) {
		w := performWithRole("", RequireRole(models.RoleAdmin))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
