package config

import (
	"flag"
	"time"
)

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagDuration  = flag.Duration("duration", 0, "Simulated run time")
	flagFrameRate = flag.Int("fps", 0, "Simulation steps per second")
	flagTimeScale = flag.Float64("timescale", 0, "Simulation speed multiplier")
	flagLogFile   = flag.String("logfile", "", "Log file path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
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
	if *flagDuration > time.Duration(0) {
		cfg.Demo.Duration = *flagDuration
	}
	if *flagFrameRate > 0 {
		cfg.Demo.FrameRate = *flagFrameRate
	}
	if *flagTimeScale > 0 {
		cfg.Demo.TimeScale = float32(*flagTimeScale)
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
