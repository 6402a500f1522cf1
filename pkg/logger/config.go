package logger

import (
	"fmt"
	"log/slog"
)

// Config is the environment-driven logger setup.
type Config struct {
	Env     string `env:"ENV" envDefault:"development"`
	Service string `env:"SERVICE_NAME" envDefault:"wikikit"`
	Level   string `env:"LOG_LEVEL"`
	Format  Format `env:"LOG_FORMAT"`
	NoColor bool   `env:"NO_COLOR"`
}

// FromConfig builds a logger from cfg. Level and Format override the
// environment defaults only when set.
func FromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	base := []Option{WithEnvironment(cfg.Env, cfg.Service)}

	if cfg.Level != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("logger: invalid level %q: %w", cfg.Level, err)
		}
		base = append(base, WithLevel(lvl))
	}

	switch cfg.Format {
	case "":
	case FormatJSON, FormatText:
		base = append(base, WithFormat(cfg.Format))
	default:
		return nil, fmt.Errorf("logger: invalid format %q", cfg.Format)
	}

	if cfg.NoColor {
		base = append(base, WithColor(false))
	}
	return New(append(base, opts...)...), nil
}
