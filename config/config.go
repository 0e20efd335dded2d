package config

import "github.com/spf13/viper"

// Source kinds for inventory.source.
const (
	SourceRandom = "random"
	SourceFile   = "file"
	SourceSQLite = "sqlite"
)

// ServerConfig holds the web server settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// OutputConfig controls where report artifacts are written.
type OutputConfig struct {
	Dir         string `mapstructure:"dir"`
	CompressPDF bool   `mapstructure:"compress_pdf"`
}

// InventoryConfig selects the inventory data source.
type InventoryConfig struct {
	Source string `mapstructure:"source"`
	File   string `mapstructure:"file"`
	DSN    string `mapstructure:"dsn"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config holds all runtime configuration.
// Values are populated from .lcabot.yaml, LCABOT_* env vars, and CLI flags.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Output    OutputConfig    `mapstructure:"output"`
	Inventory InventoryConfig `mapstructure:"inventory"`
	Log       LogConfig       `mapstructure:"log"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("output.dir", ".")
	viper.SetDefault("output.compress_pdf", true)
	viper.SetDefault("inventory.source", SourceRandom)
	viper.SetDefault("inventory.file", "")
	viper.SetDefault("inventory.dsn", "./inventory.db")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")

	// PORT is honoured for platforms that inject it.
	_ = viper.BindEnv("server.port", "LCABOT_SERVER_PORT", "PORT")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
