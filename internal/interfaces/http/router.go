package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilmpay/ilmpay/internal/interfaces/http/middleware"
)

// SetupRoutes installs the middleware chain and all HTTP routes.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.VisitTracker(c.recordVisit, &c.cfg.Analytics, c.log))

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := c.engine.Group("/api")
	{
		// Public site content.
		api.GET("/benefits", c.benefitHdlr.List)
		api.GET("/testimonials", c.testimonialHdlr.List)
		api.GET("/faqs", c.faqHdlr.List)
		api.GET("/support-logos", c.supportLogoHdlr.List)
		api.GET("/translations/:lang", c.translationHdlr.GetBundle)

		// Conversion hook for the download buttons.
		api.POST("/downloads", c.analyticsHdlr.RecordDownload)

		analytics := api.Group("/analytics")
		{
			analytics.GET("/metrics", c.analyticsHdlr.GetBasicMetrics)
			analytics.GET("/dashboard", c.analyticsHdlr.GetVisitorStats)
			analytics.GET("/activity-heatmap", c.analyticsHdlr.GetActivityHeatmap)
		}

		admin := api.Group("/admin")
		{
			benefits := admin.Group("/benefits")
			{
				benefits.GET("/:id", c.benefitHdlr.Get)
				benefits.POST("", c.benefitHdlr.Create)
				benefits.PUT("/reorder", c.benefitHdlr.Reorder)
				benefits.PUT("/:id", c.benefitHdlr.Update)
				benefits.DELETE("/:id", c.benefitHdlr.Delete)
			}

			testimonials := admin.Group("/testimonials")
			{
				testimonials.GET("/:id", c.testimonialHdlr.Get)
				testimonials.POST("", c.testimonialHdlr.Create)
				testimonials.PUT("/reorder", c.testimonialHdlr.Reorder)
				testimonials.PUT("/:id", c.testimonialHdlr.Update)
				testimonials.DELETE("/:id", c.testimonialHdlr.Delete)
			}

			faqs := admin.Group("/faqs")
			{
				faqs.GET("/:id", c.faqHdlr.Get)
				faqs.POST("", c.faqHdlr.Create)
				faqs.PUT("/reorder", c.faqHdlr.Reorder)
				faqs.PUT("/:id", c.faqHdlr.Update)
				faqs.DELETE("/:id", c.faqHdlr.Delete)
			}

			supportLogos := admin.Group("/support-logos")
			{
				supportLogos.GET("/:id", c.supportLogoHdlr.Get)
				supportLogos.POST("", c.supportLogoHdlr.Create)
				supportLogos.PUT("/reorder", c.supportLogoHdlr.Reorder)
				supportLogos.PUT("/:id", c.supportLogoHdlr.Update)
				supportLogos.DELETE("/:id", c.supportLogoHdlr.Delete)
			}

			translations := admin.Group("/translations")
			{
				translations.GET("/languages", c.translationHdlr.ListLanguages)
				translations.PUT("", c.translationHdlr.Upsert)
				translations.DELETE("/:lang/:key", c.translationHdlr.Delete)
			}
		}
	}
}
