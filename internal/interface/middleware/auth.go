package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devforum/backend/pkg/helpers"
	"github.com/devforum/backend/pkg/response"
)

// Context keys set by the auth middleware.
const (
	CtxClaimsKey   = "claims"
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// bearerToken pulls the token out of the Authorization header. The second
// return is false when the header is absent or not a Bearer scheme.
func bearerToken(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	if h == "" {
		return "", false
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setIdentity(c *gin.Context, claims *helpers.Claims) {
	c.Set(CtxClaimsKey, claims)
	c.Set(CtxUserIDKey, claims.UserID)
	c.Set(CtxUserRoleKey, claims.Role)
}

// RequireAuth rejects requests without a valid bearer token and attaches the
// verified claims to the context. The 401 message never distinguishes an
// expired token from a malformed one.
func RequireAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			resp := response.Error[any](c, http.StatusUnauthorized, "missing or malformed bearer token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		claims, err := jwt.Verify(token)
		if err != nil {
			resp := response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// RequireRole runs after RequireAuth and rejects identities whose role is not
// in the allowed set.
func RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxUserRoleKey)
		if role == "" {
			resp := response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		for _, r := range allowed {
			if role == r {
				c.Next()
				return
			}
		}
		resp := response.Error[any](c, http.StatusForbidden, "insufficient permissions", nil)
		c.AbortWithStatusJSON(resp.Status, resp)
	}
}

// OptionalAuth attaches identity when a valid token is present and proceeds
// anonymously otherwise; it never fails the request.
func OptionalAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := jwt.Verify(token); err == nil {
				setIdentity(c, claims)
			}
		}
		c.Next()
	}
}

// ClaimsFrom returns the verified claims attached by RequireAuth or
// OptionalAuth, or nil when the request is anonymous.
func ClaimsFrom(c *gin.Context) *helpers.Claims {
	if v, ok := c.Get(CtxClaimsKey); ok {
		if claims, ok := v.(*helpers.Claims); ok {
			return claims
		}
	}
	return nil
}
