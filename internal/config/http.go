package config

import (
	"log/slog"
	"time"
)

type HTTP struct {
	Port            int           `env:"PORT" envDefault:"4000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Probe struct {
	ListenAddress   string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsAddress  string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	MetricsDisabled bool   `env:"METRICS_DISABLED"`
}

type Log struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

func (l Log) SlogLevel() slog.Level {
	switch l.Level {
	case "debug", "trace":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error", "fatal":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
