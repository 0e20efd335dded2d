package cmd

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"lca-bot/config"
	"lca-bot/controllers"
	"lca-bot/report"
	"lca-bot/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the LCA web form",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "", "listen port (default 8080)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := os.MkdirAll(app.cfg.Output.Dir, 0o755); err != nil {
		return err
	}

	if app.cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := config.ComponentLogger(app.logger, "http")
	runner := report.NewRunner(app.source, app.cfg.Output.Dir,
		report.PDFRenderer{Compress: app.cfg.Output.CompressPDF},
		config.ComponentLogger(app.logger, "runner"))

	router := routes.NewRouter(
		controllers.NewAssessmentController(runner, logger),
		controllers.NewInventoryController(app.source, app.importer),
		logger,
	)

	logger.Info().Str("port", app.cfg.Server.Port).Msg("starting server")
	return router.Run(":" + app.cfg.Server.Port)
}
