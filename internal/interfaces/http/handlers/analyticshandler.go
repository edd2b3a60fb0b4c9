package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilmpay/ilmpay/internal/application/visitor/usecases"
	sharedConfig "github.com/ilmpay/ilmpay/internal/shared/config"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
	"github.com/ilmpay/ilmpay/internal/shared/utils"
)

// maxStatsDays bounds the ?days query so a typo can't trigger a year-plus scan.
const maxStatsDays = 365

// AnalyticsHandler serves the visitor metrics endpoints and the download
// conversion hook.
type AnalyticsHandler struct {
	getBasicMetrics    *usecases.GetBasicMetricsUseCase
	getVisitorStats    *usecases.GetVisitorStatsUseCase
	getActivityHeatmap *usecases.GetActivityHeatmapUseCase
	markDownloaded     *usecases.MarkDownloadedUseCase
	cfg                *sharedConfig.AnalyticsConfig
	logger             logger.Interface
}

func NewAnalyticsHandler(
	getBasicMetrics *usecases.GetBasicMetricsUseCase,
	getVisitorStats *usecases.GetVisitorStatsUseCase,
	getActivityHeatmap *usecases.GetActivityHeatmapUseCase,
	markDownloaded *usecases.MarkDownloadedUseCase,
	cfg *sharedConfig.AnalyticsConfig,
	logger logger.Interface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		getBasicMetrics:    getBasicMetrics,
		getVisitorStats:    getVisitorStats,
		getActivityHeatmap: getActivityHeatmap,
		markDownloaded:     markDownloaded,
		cfg:                cfg,
		logger:             logger,
	}
}

// GetBasicMetrics handles GET /api/analytics/metrics
func (h *AnalyticsHandler) GetBasicMetrics(c *gin.Context) {
	metrics, err := h.getBasicMetrics.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get basic metrics", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Metrics retrieved successfully", metrics)
}

// GetVisitorStats handles GET /api/analytics/dashboard
func (h *AnalyticsHandler) GetVisitorStats(c *gin.Context) {
	days := utils.ParseDaysParam(c, h.cfg.DefaultStatsDays, maxStatsDays)

	stats, err := h.getVisitorStats.Execute(c.Request.Context(), days)
	if err != nil {
		h.logger.Errorw("failed to get visitor stats", "days", days, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Visitor stats retrieved successfully", stats)
}

// GetActivityHeatmap handles GET /api/analytics/activity-heatmap
func (h *AnalyticsHandler) GetActivityHeatmap(c *gin.Context) {
	days := utils.ParseDaysParam(c, h.cfg.DefaultStatsDays, maxStatsDays)

	heatmap, err := h.getActivityHeatmap.Execute(c.Request.Context(), days)
	if err != nil {
		h.logger.Errorw("failed to get activity heatmap", "days", days, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Activity heatmap retrieved successfully", heatmap)
}

// RecordDownload handles POST /api/downloads. The visitor is identified by
// the tracking cookie; requests without one still succeed so the download
// button never breaks, they just aren't counted.
func (h *AnalyticsHandler) RecordDownload(c *gin.Context) {
	sessionID, err := c.Cookie(h.cfg.SessionCookieName)
	if err != nil || sessionID == "" {
		utils.SuccessResponse(c, http.StatusOK, "Download recorded", nil)
		return
	}

	if err := h.markDownloaded.Execute(c.Request.Context(), sessionID); err != nil {
		// Conversion tracking is best effort.
		h.logger.Warnw("failed to record download", "session_id", sessionID, "error", err)
	}

	utils.SuccessResponse(c, http.StatusOK, "Download recorded", nil)
}
