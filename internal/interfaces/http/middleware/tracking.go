package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ilmpay/ilmpay/internal/application/visitor/usecases"
	sharedConfig "github.com/ilmpay/ilmpay/internal/shared/config"
	"github.com/ilmpay/ilmpay/internal/shared/goroutine"
	"github.com/ilmpay/ilmpay/internal/shared/id"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

const sessionCookieMaxAge = 365 * 24 * int(time.Hour/time.Second)

// VisitTracker records page views for analytics. It runs after the handler
// chain and only counts successful GET page loads; admin, analytics and
// health endpoints are excluded so dashboards never count themselves.
// Recording is fire-and-forget and can never fail the request.
func VisitTracker(recordVisit *usecases.RecordVisitUseCase, cfg *sharedConfig.AnalyticsConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || isExcludedPath(c.Request.URL.Path, cfg.TrackingExcludedPrefixes) {
			c.Next()
			return
		}

		sessionID := ensureSessionCookie(c, cfg.SessionCookieName, log)

		c.Next()

		status := c.Writer.Status()
		if sessionID == "" || status < 200 || status >= 300 {
			return
		}

		cmd := usecases.RecordVisitCommand{
			SessionID: sessionID,
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			PageID:    c.Request.URL.Path,
		}

		// Recording happens off the request goroutine; the request context
		// is about to be canceled, so detach from it.
		ctx := context.WithoutCancel(c.Request.Context())
		goroutine.SafeGo(log, "record-visit", func() {
			recordVisit.Execute(ctx, cmd)
		})
	}
}

func isExcludedPath(path string, excludedPrefixes []string) bool {
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// ensureSessionCookie returns the visitor's session ID, minting a new one
// when the browser sent no cookie. The cookie carries no user identity.
func ensureSessionCookie(c *gin.Context, cookieName string, log logger.Interface) string {
	if sessionID, err := c.Cookie(cookieName); err == nil && sessionID != "" {
		return sessionID
	}

	sessionID, err := id.NewVisitorSessionID()
	if err != nil {
		log.Warnw("failed to generate visitor session ID", "error", err)
		return ""
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, sessionID, sessionCookieMaxAge, "/", "", false, true)
	return sessionID
}
