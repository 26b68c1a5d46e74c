package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GNaves/Tasks-API/internal/auth"
	"github.com/GNaves/Tasks-API/internal/core/domain"
	"github.com/GNaves/Tasks-API/pkg/apierrors"
)

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

// RequireAuth validates the bearer token and stores the subject id and
// role on the context. Every failure mode answers with the same message so
// callers learn nothing about why a token was refused.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		parts := strings.Split(header, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.CreateError(apierrors.MsgInvalidToken, lang))
			return
		}

		userID, role, err := tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.CreateError(apierrors.MsgInvalidToken, lang))
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, string(role))
		c.Next()
	}
}

// RequireRole checks the authenticated role against the route's allow-list.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := allowed[CurrentRole(c)]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, apierrors.CreateError(apierrors.MsgForbiddenRole, GetLang(c)))
			return
		}
		c.Next()
	}
}

func CurrentUserID(c *gin.Context) string {
	return c.GetString(ctxUserIDKey)
}

func CurrentRole(c *gin.Context) domain.Role {
	return domain.Role(c.GetString(ctxUserRoleKey))
}
