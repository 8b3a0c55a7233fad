package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "roombooking/internal/pkg/jwt"
	"roombooking/internal/pkg/response"
)

const (
	ClaimsKey = "claims"
	EmailKey  = "email"
)

// JWTAuth lets a request through only with a verifiable bearer token.
// No credential answers 401, a bad or expired one 403.
func JWTAuth(tokens *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.AbortMessage(c, http.StatusUnauthorized, "Unauthorized Access")
			return
		}

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			response.AbortMessage(c, http.StatusForbidden, "Forbidden")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(EmailKey, claims.Email)

		c.Next()
	}
}

// ClaimsFrom returns the claims attached by JWTAuth.
func ClaimsFrom(c *gin.Context) (*jwtsvc.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwtsvc.Claims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
