package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Data file defaults, relative to the working directory
	v.SetDefault("data.neo_path", "data/neos.csv")
	v.SetDefault("data.cad_path", "data/cad.json")

	// Query defaults
	v.SetDefault("query.limit", 10)

	// Log defaults
	v.SetDefault("log.json", false)
}

// Default returns a Config populated with the package defaults
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	// Unmarshalling defaults cannot fail
	_ = v.Unmarshal(&cfg)
	return &cfg
}
