package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lca-bot/controllers"
	"lca-bot/views"
)

// NewRouter builds the gin engine with recovery, request logging and the
// application routes.
func NewRouter(ac *controllers.AssessmentController, ic *controllers.InventoryController, logger zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger))
	router.SetHTMLTemplate(views.Templates())
	RegisterRoutes(router, ac, ic)
	return router
}

func RegisterRoutes(router *gin.Engine, ac *controllers.AssessmentController, ic *controllers.InventoryController) {
	// Web form
	router.GET("/", ac.ShowForm)
	router.POST("/run", ac.RunAssessment)
	router.GET("/report/download", ac.DownloadReport)
	router.GET("/healthz", controllers.Health)

	api := router.Group("/api")
	{
		api.POST("/assessments", ac.CreateAssessment)

		// Inventory routes
		api.GET("/inventory", ic.GetInventory)
		api.PUT("/inventory/:product", ic.ImportInventory)
	}
}

// RequestLogger logs each request with zerolog.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		evt := logger.Info()
		if c.Writer.Status() >= 500 {
			evt = logger.Error()
		}
		evt.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
