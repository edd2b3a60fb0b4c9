// Package http wires the application together and exposes the gin engine.
package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	contentServices "github.com/ilmpay/ilmpay/internal/application/content/services"
	translationApp "github.com/ilmpay/ilmpay/internal/application/translation"
	visitorUsecases "github.com/ilmpay/ilmpay/internal/application/visitor/usecases"
	"github.com/ilmpay/ilmpay/internal/infrastructure/cache"
	"github.com/ilmpay/ilmpay/internal/infrastructure/config"
	"github.com/ilmpay/ilmpay/internal/infrastructure/repository"
	"github.com/ilmpay/ilmpay/internal/infrastructure/scheduler"
	"github.com/ilmpay/ilmpay/internal/interfaces/http/handlers"
	sharedDB "github.com/ilmpay/ilmpay/internal/shared/db"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

// Container holds the wired application: repositories, use cases, handlers,
// and the background scheduler. It owns graceful shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	recordVisit     *visitorUsecases.RecordVisitUseCase
	sweepSessions   *visitorUsecases.SweepExpiredSessionsUseCase
	analyticsHdlr   *handlers.AnalyticsHandler
	benefitHdlr     *handlers.BenefitHandler
	testimonialHdlr *handlers.TestimonialHandler
	faqHdlr         *handlers.FAQHandler
	supportLogoHdlr *handlers.SupportLogoHandler
	translationHdlr *handlers.TranslationHandler

	sched *scheduler.SchedulerManager
}

// NewContainer wires repositories, use cases, services and handlers.
// redisClient may be nil when redis is disabled; caches degrade to the store.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	txManager := sharedDB.NewTransactionManager(db)
	sessionTimeout := time.Duration(cfg.Analytics.SessionTimeoutMinutes) * time.Minute
	activeWindow := time.Duration(cfg.Analytics.ActiveWindowMinutes) * time.Minute

	var metricsCache visitorUsecases.MetricsCache
	var bundleCache translationApp.BundleCache
	if redisClient != nil {
		metricsCache = cache.NewRedisMetricsCache(redisClient, log)
		bundleCache = cache.NewRedisTranslationCache(redisClient, log)
	}

	visitorRepo := repository.NewVisitorSessionRepository(db)
	benefitRepo := repository.NewBenefitRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	supportLogoRepo := repository.NewSupportLogoRepository(db)
	translationRepo := repository.NewTranslationRepository(db)

	c.recordVisit = visitorUsecases.NewRecordVisitUseCase(visitorRepo, txManager, sessionTimeout, log)
	c.sweepSessions = visitorUsecases.NewSweepExpiredSessionsUseCase(visitorRepo, txManager, sessionTimeout, log)
	getBasicMetrics := visitorUsecases.NewGetBasicMetricsUseCase(visitorRepo, c.sweepSessions, metricsCache, activeWindow, log)
	getVisitorStats := visitorUsecases.NewGetVisitorStatsUseCase(visitorRepo, log)
	getActivityHeatmap := visitorUsecases.NewGetActivityHeatmapUseCase(visitorRepo, log)
	markDownloaded := visitorUsecases.NewMarkDownloadedUseCase(visitorRepo, log)

	benefitSvc := contentServices.NewBenefitService(benefitRepo, log)
	testimonialSvc := contentServices.NewTestimonialService(testimonialRepo, log)
	faqSvc := contentServices.NewFAQService(faqRepo, log)
	supportLogoSvc := contentServices.NewSupportLogoService(supportLogoRepo, log)
	translationSvc := translationApp.NewService(translationRepo, bundleCache, log)

	c.analyticsHdlr = handlers.NewAnalyticsHandler(getBasicMetrics, getVisitorStats, getActivityHeatmap, markDownloaded, &cfg.Analytics, log)
	c.benefitHdlr = handlers.NewBenefitHandler(benefitSvc, log)
	c.testimonialHdlr = handlers.NewTestimonialHandler(testimonialSvc, log)
	c.faqHdlr = handlers.NewFAQHandler(faqSvc, log)
	c.supportLogoHdlr = handlers.NewSupportLogoHandler(supportLogoSvc, log)
	c.translationHdlr = handlers.NewTranslationHandler(translationSvc, log)

	sched, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		return nil, err
	}
	sweepInterval := time.Duration(cfg.Analytics.SweepIntervalMinutes) * time.Minute
	if err := sched.RegisterAnalyticsJobs(c.sweepSessions, sweepInterval); err != nil {
		return nil, err
	}
	c.sched = sched

	return c, nil
}

// StartScheduler starts the background session sweeper.
func (c *Container) StartScheduler() {
	c.sched.Start()
}

// Engine returns the gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown stops background work and closes the redis connection.
func (c *Container) Shutdown(ctx context.Context) error {
	if err := c.sched.Stop(); err != nil {
		c.log.Warnw("failed to stop scheduler", "error", err)
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			return err
		}
	}
	return nil
}
