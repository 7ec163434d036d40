package middleware

import (
	"net/http"
	"strings"

	"github.com/quintus06/Clipbox-sub000/internal/database/repository"
	"github.com/quintus06/Clipbox-sub000/internal/services/auth"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthTokenCookie is the session cookie carrying an access token for browser
// clients; API clients use the Authorization header instead.
const AuthTokenCookie = "auth-token"

type AuthTokenMiddleware struct {
	authService *auth.AuthService
	userRepo    *repository.UserRepository
}

func NewAuthTokenMiddleware(authService *auth.AuthService, db *gorm.DB) *AuthTokenMiddleware {
	return &AuthTokenMiddleware{
		authService: authService,
		userRepo:    repository.NewUserRepository(db),
	}
}

// RequireAuth validates the access token from the Authorization header or the
// auth-token cookie and sets the user in the request context.
func (m *AuthTokenMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		tokenInfo, err := m.authService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		user, err := m.userRepo.GetByID(tokenInfo.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user", user)
		c.Set("role", user.Role)

		c.Next()
	}
}

// extractToken reads the access token from the Authorization header, falling
// back to the auth-token session cookie.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(AuthTokenCookie); err == nil {
		return cookie
	}
	return ""
}
