// Package env loads tool configuration from environment variables.
package env

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	QueueDriverCSV    = "csv"
	QueueDriverSQLite = "sqlite"
)

// Config carries every knob the command-line tools share.
type Config struct {
	SiteTitle   string `env:"FOLIATE_SITE_TITLE" envDefault:"Daily Learning"`
	PostsDir    string `env:"FOLIATE_POSTS_DIR" envDefault:"_posts"`
	OutputDir   string `env:"FOLIATE_OUTPUT_DIR" envDefault:"_site"`
	PostsBase   string `env:"FOLIATE_POSTS_BASE" envDefault:"/posts"`
	CSSHref     string `env:"FOLIATE_CSS_HREF"`
	QueueDriver string `env:"FOLIATE_QUEUE_DRIVER" envDefault:"csv"`
	QueuePath   string `env:"FOLIATE_QUEUE_PATH" envDefault:"data/questions.csv"`
	BindAddr    string `env:"FOLIATE_BIND_ADDR" envDefault:"127.0.0.1:8421"`
	LogLevel    string `env:"FOLIATE_LOG_LEVEL" envDefault:"info"`
}

// Load parses and validates the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.PostsDir == "" {
		return nil, fmt.Errorf("FOLIATE_POSTS_DIR cannot be empty")
	}
	if cfg.OutputDir == "" {
		return nil, fmt.Errorf("FOLIATE_OUTPUT_DIR cannot be empty")
	}
	if cfg.QueueDriver != QueueDriverCSV && cfg.QueueDriver != QueueDriverSQLite {
		return nil, fmt.Errorf("FOLIATE_QUEUE_DRIVER must be %q or %q, got %q",
			QueueDriverCSV, QueueDriverSQLite, cfg.QueueDriver)
	}
	if cfg.QueuePath == "" {
		return nil, fmt.Errorf("FOLIATE_QUEUE_PATH cannot be empty")
	}

	return &cfg, nil
}
