package handlers

import (
	"net/http"
	"strings"

	"lexflow-backend/models"
	"lexflow-backend/service"

	"github.com/gin-gonic/gin"
)

const contextUserKey = "currentUser"

// RequireAuth resolves the bearer token into the current user and aborts
// with 401 when missing or invalid
func RequireAuth(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token ausente")
			c.Abort()
			return
		}

		user, err := users.Authenticate(c.Request.Context(), token)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token inválido ou expirado")
			c.Abort()
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequireRoles aborts with 403 unless the authenticated user holds one of
// the given roles
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Não autenticado")
			c.Abort()
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		respondError(c, http.StatusForbidden, "FORBIDDEN", "Acesso negado")
		c.Abort()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth, or nil
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
