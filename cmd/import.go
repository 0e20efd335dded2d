package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"lca-bot/inventory"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load a YAML inventory fixture into the SQLite source",
	Example: `  lcabot import --source sqlite --file widget.yaml
  lcabot import --source sqlite --file widget.yaml --product "Widget v2"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("file")
		product, _ := cmd.Flags().GetString("product")

		fixture, err := inventory.LoadFixture(path)
		if err != nil {
			return err
		}
		if product == "" {
			product = fixture.Product
		}
		if product == "" {
			return errors.New("no product name: set --product or product: in the fixture")
		}

		app, err := loadApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if app.importer == nil {
			return errors.New("import requires the sqlite inventory source (--source sqlite)")
		}
		if err := app.importer.Import(cmd.Context(), product, fixture.Records); err != nil {
			return err
		}

		app.logger.Info().Str("product", product).Int("records", len(fixture.Records)).Msg("inventory imported")
		return nil
	},
}

func init() {
	importCmd.Flags().String("file", "", "YAML inventory fixture")
	importCmd.Flags().String("product", "", "product name (default: product from the fixture)")
	_ = importCmd.MarkFlagRequired("file")
}
