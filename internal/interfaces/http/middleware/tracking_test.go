package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilmpay/ilmpay/internal/application/visitor/usecases"
	"github.com/ilmpay/ilmpay/internal/domain/visitor"
	sharedConfig "github.com/ilmpay/ilmpay/internal/shared/config"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (l nopLogger) With(args ...any) logger.Interface             { return l }
func (l nopLogger) Named(name string) logger.Interface            { return l }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// recordingRepo captures created sessions; everything else is inert.
// Recording happens on a background goroutine, so access is locked.
type recordingRepo struct {
	mu      sync.Mutex
	created []*visitor.Session
}

func (r *recordingRepo) Create(ctx context.Context, s *visitor.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, s)
	return nil
}

func (r *recordingRepo) createdCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.created)
}

func (r *recordingRepo) firstCreated() *visitor.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.created) == 0 {
		return nil
	}
	return r.created[0]
}
func (r *recordingRepo) Update(ctx context.Context, s *visitor.Session) error { return nil }
func (r *recordingRepo) FindActiveBySessionID(ctx context.Context, sessionID string) (*visitor.Session, error) {
	return nil, visitor.ErrSessionNotFound
}
func (r *recordingRepo) FinalizeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}
func (r *recordingRepo) MarkDownloaded(ctx context.Context, sessionID string) error { return nil }
func (r *recordingRepo) CountDistinctSessions(ctx context.Context) (int64, error)   { return 0, nil }
func (r *recordingRepo) CountDistinctSessionsSince(ctx context.Context, t time.Time) (int64, error) {
	return 0, nil
}
func (r *recordingRepo) CountActiveSince(ctx context.Context, t time.Time) (int64, error) {
	return 0, nil
}
func (r *recordingRepo) CountDownloads(ctx context.Context) (int64, error) { return 0, nil }
func (r *recordingRepo) SummarizeWindow(ctx context.Context, start, end time.Time) (visitor.WindowSummary, error) {
	return visitor.WindowSummary{}, nil
}
func (r *recordingRepo) DailySessionCounts(ctx context.Context, start, end time.Time) ([]visitor.DayCount, error) {
	return nil, nil
}
func (r *recordingRepo) HeatmapCounts(ctx context.Context, start, end time.Time) ([]visitor.HeatmapBucket, error) {
	return nil, nil
}

func trackingTestConfig() *sharedConfig.AnalyticsConfig {
	return &sharedConfig.AnalyticsConfig{
		SessionTimeoutMinutes:    30,
		TrackingExcludedPrefixes: []string{"/api/admin", "/api/analytics", "/health"},
		SessionCookieName:        "ilmpay_session",
	}
}

func setupTrackedRouter(t *testing.T) (*gin.Engine, *recordingRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &recordingRepo{}
	uc := usecases.NewRecordVisitUseCase(repo, passthroughTx{}, 30*time.Minute, nopLogger{})

	router := gin.New()
	router.Use(VisitTracker(uc, trackingTestConfig(), nopLogger{}))
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "home") })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/api/analytics/metrics", func(c *gin.Context) { c.String(http.StatusOK, "{}") })
	router.POST("/api/downloads", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router, repo
}

func TestVisitTracker_RecordsPageView(t *testing.T) {
	router, repo := setupTrackedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "ilmpay_session", Value: "sess-1"})
	router.ServeHTTP(w, req)

	require.Eventually(t, func() bool { return repo.createdCount() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, "sess-1", repo.firstCreated().SessionID())
	assert.Equal(t, "/", repo.firstCreated().LastPageVisited())
}

func TestVisitTracker_MintsSessionCookie(t *testing.T) {
	router, repo := setupTrackedRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "ilmpay_session" {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "expected a session cookie to be set")
	assert.True(t, strings.HasPrefix(cookie.Value, "vs_"))
	assert.True(t, cookie.HttpOnly)

	require.Eventually(t, func() bool { return repo.createdCount() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, cookie.Value, repo.firstCreated().SessionID())
}

func TestVisitTracker_SkipsExcludedPrefixes(t *testing.T) {
	router, repo := setupTrackedRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, repo.createdCount())
}

func TestVisitTracker_SkipsNonGET(t *testing.T) {
	router, repo := setupTrackedRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/downloads", nil))

	assert.Zero(t, repo.createdCount())
}

func TestVisitTracker_SkipsFailedResponses(t *testing.T) {
	router, repo := setupTrackedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.AddCookie(&http.Cookie{Name: "ilmpay_session", Value: "sess-1"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, repo.createdCount())
}
