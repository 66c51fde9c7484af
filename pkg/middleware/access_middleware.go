package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"petsoft/internal/access"
	"petsoft/pkg/utils"
)

// SessionDecoder decodes a session token into claims.
type SessionDecoder interface {
	Decode(token string) (*utils.SessionClaims, error)
}

// DefaultAccessAllowList is skipped by AccessMiddleware: the API namespace
// authenticates itself and static assets are public.
var DefaultAccessAllowList = []string{"/api/", "/static/", "/favicon.ico"}

// SessionMiddleware decodes the session token, if any, and stores the claims
// on the context. An invalid token is cleared and treated as logged out.
func SessionMiddleware(sessions SessionDecoder, secureCookie bool, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.SessionTokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := sessions.Decode(token)
		if err != nil {
			logger.Debug("discarding invalid session token",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			utils.ClearSessionCookie(c, secureCookie)
			c.Next()
			return
		}

		utils.SetSessionClaims(c, claims)
		c.Next()
	}
}

// AccessMiddleware enforces access.Decide on every path outside allowList.
// It must run after SessionMiddleware.
func AccessMiddleware(allowList []string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if isAllowListed(path, allowList) {
			c.Next()
			return
		}

		claims, loggedIn := utils.SessionClaimsFromContext(c)
		hasAccess := loggedIn && claims.HasAccess

		decision := access.Decide(loggedIn, hasAccess, access.Categorize(path))
		if decision == access.Allow {
			c.Next()
			return
		}

		target := decision.Target()
		if decision == access.DenyToLogin {
			target += "?callbackUrl=" + url.QueryEscape(c.Request.URL.RequestURI())
		}

		logger.Debug("access redirect",
			zap.String("path", path),
			zap.String("decision", decision.String()),
			zap.String("target", target),
			zap.String("trace_id", c.GetString("trace_id")))

		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}

func isAllowListed(path string, allowList []string) bool {
	for _, prefix := range allowList {
		if path == strings.TrimSuffix(prefix, "/") || strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
