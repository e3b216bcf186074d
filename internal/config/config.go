// Package config handles tool configuration loading and management.
package config

// Config holds all urdfkit settings.
type Config struct {
	Parser  ParserConfig  `yaml:"parser"`
	Assets  AssetsConfig  `yaml:"assets"`
	Logging LoggingConfig `yaml:"logging"`
}

// ParserConfig holds parse-time settings.
type ParserConfig struct {
	// Scale is the global multiplier applied to all linear translations
	// and dimensions, for unit conversion.
	Scale float64 `yaml:"scale"`
}

// AssetsConfig holds mesh asset lookup settings.
type AssetsConfig struct {
	// MeshPaths are extra directories searched for mesh files after the
	// document's own directory.
	MeshPaths []string `yaml:"mesh_paths"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{
			Scale: 1.0,
		},
		Assets: AssetsConfig{},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
