package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/minhvu/portfolio-cms/pkg/apperror"
	"github.com/minhvu/portfolio-cms/pkg/auth"
	"github.com/minhvu/portfolio-cms/pkg/logger"
)

const (
	// SessionCookieName carries the session token for browser clients.
	SessionCookieName = "portfolio_auth_token"

	ginContextKeyUsername = "sessionUsername"
)

// sessionClaims resolves the session from the request: the Authorization
// header is tried first, then the cookie. A bad header token does not mask a
// good cookie. Both channels go through the same ValidateToken call so
// expiry and signature policy cannot drift.
func sessionClaims(c *gin.Context, jwtSvc *auth.JWTService) (*auth.SessionClaims, bool) {
	if token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok && token != "" {
		if claims, err := jwtSvc.ValidateToken(token); err == nil {
			return claims, true
		}
	}

	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		if claims, err := jwtSvc.ValidateToken(cookie); err == nil {
			return claims, true
		}
	}
	return nil, false
}

// AuthMiddleware guards mutating routes. It accepts either token channel and
// aborts with 401 when neither verifies.
func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := sessionClaims(c, jwtSvc)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Success: false, Message: "Unauthorized"})
			return
		}

		c.Set(ginContextKeyUsername, claims.Username)
		c.Next()
	}
}

// ErrorMiddleware translates errors attached by handlers into the response
// envelope. Internal error details stay in the log.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Error("request failed", err,
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path))
		}

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			respondFail(c, status, "Internal server error")
			return
		}
		respondFail(c, status, apperror.ClientMessage(err))
	}
}
