// Package config manages neowatch configuration: data file locations and
// output preferences, read from TOML files and NEOWATCH_* environment
// variables via Viper.
package config

// Config represents the neowatch configuration
type Config struct {
	Data  DataConfig  `mapstructure:"data" toml:"data"`
	Query QueryConfig `mapstructure:"query" toml:"query"`
	Log   LogConfig   `mapstructure:"log" toml:"log"`
}

// DataConfig locates the input data files
type DataConfig struct {
	NEOPath string `mapstructure:"neo_path" toml:"neo_path"` // CSV catalog of near-Earth objects
	CADPath string `mapstructure:"cad_path" toml:"cad_path"` // JSON close-approach data
}

// QueryConfig configures query behavior
type QueryConfig struct {
	Limit int `mapstructure:"limit" toml:"limit"` // default result limit, 0 = unlimited
}

// LogConfig configures log output
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json"` // structured JSON logs instead of console output
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
