package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "lcabot",
	Short: "Cradle-to-grave LCA report bot",
	Long: "lcabot simulates a life cycle assessment for a product: it builds an inventory, " +
		"aggregates the impact totals and writes a chart and a PDF report.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Serving the web form is the default action.
	rootCmd.RunE = runServe

	rootCmd.PersistentFlags().String("config", "", "config file (default .lcabot.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("output-dir", "", "directory for chart.png and lca_report.pdf")
	rootCmd.PersistentFlags().String("source", "", "inventory source: random, file or sqlite")
	rootCmd.PersistentFlags().String("inventory-file", "", "YAML inventory fixture for the file source")
	rootCmd.PersistentFlags().String("dsn", "", "SQLite database for the sqlite source")

	rootCmd.AddCommand(serveCmd, runCmd, importCmd)
}

// bindFlags maps CLI flags onto config keys. It runs on every execution so
// the bindings survive a viper.Reset.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("output.dir", flags.Lookup("output-dir"))
	_ = viper.BindPFlag("inventory.source", flags.Lookup("source"))
	_ = viper.BindPFlag("inventory.file", flags.Lookup("inventory-file"))
	_ = viper.BindPFlag("inventory.dsn", flags.Lookup("dsn"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func initConfig() {
	bindFlags()

	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".lcabot")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("LCABOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
