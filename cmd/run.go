package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lca-bot/config"
	"lca-bot/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one assessment and write the report",
	Example: `  # Assess the default product with random data
  lcabot run

  # Assess a recorded product
  lcabot run --product Widget --source sqlite --dsn inventory.db`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		product, _ := cmd.Flags().GetString("product")

		app, err := loadApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := os.MkdirAll(app.cfg.Output.Dir, 0o755); err != nil {
			return err
		}

		runner := report.NewRunner(app.source, app.cfg.Output.Dir,
			report.PDFRenderer{Compress: app.cfg.Output.CompressPDF},
			config.ComponentLogger(app.logger, "runner"))

		res, err := runner.Run(cmd.Context(), product)
		if err != nil {
			return err
		}

		if err := report.RenderTerminal(cmd.OutOrStdout(), res.Model); err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "\nReport written to %s\n", res.PDFPath)
		return err
	},
}

func init() {
	runCmd.Flags().String("product", report.DefaultProduct, "product name")
}
