package config

import (
	"flag"
	"strings"
)

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagScale    = flag.Float64("scale", 0, "Global scale factor for linear quantities")
	flagMeshPath = flag.String("mesh-path", "", "Extra mesh search directories (colon separated)")
	flagLogFile  = flag.String("log-file", "", "Write logs to this file")
)

// ParseFlags parses the given command-line arguments and returns the
// remaining positional arguments. Call this early in main().
func ParseFlags(args []string) []string {
	flag.CommandLine.Parse(args)
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScale > 0 {
		cfg.Parser.Scale = *flagScale
	}
	if *flagMeshPath != "" {
		cfg.Assets.MeshPaths = append(cfg.Assets.MeshPaths,
			strings.Split(*flagMeshPath, ":")...)
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
