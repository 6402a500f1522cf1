package pages

import (
	"context"
	"fmt"
)

// Backends understood by New.
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// Config selects and configures the page source.
type Config struct {
	Backend   string `env:"PAGES_BACKEND" envDefault:"local"`
	Dir       string `env:"PAGES_DIR" envDefault:"./pages"`
	CacheSize int    `env:"PAGES_CACHE_SIZE" envDefault:"128"`

	S3Bucket         string `env:"PAGES_S3_BUCKET"`
	S3Prefix         string `env:"PAGES_S3_PREFIX"`
	S3Region         string `env:"PAGES_S3_REGION" envDefault:"us-east-1"`
	S3Endpoint       string `env:"PAGES_S3_ENDPOINT"`
	S3AccessKeyID    string `env:"PAGES_S3_ACCESS_KEY_ID"`
	S3SecretKey      string `env:"PAGES_S3_SECRET_KEY"`
	S3ForcePathStyle bool   `env:"PAGES_S3_FORCE_PATH_STYLE"`
}

// New builds the configured backend. A positive CacheSize wraps it in Cached.
func New(ctx context.Context, cfg Config, opts ...CacheOption) (Source, error) {
	var (
		src Source
		err error
	)
	switch cfg.Backend {
	case "", BackendLocal:
		src, err = NewLocal(cfg.Dir)
	case BackendS3:
		src, err = NewS3(ctx, S3Config{
			Bucket:         cfg.S3Bucket,
			Prefix:         cfg.S3Prefix,
			Region:         cfg.S3Region,
			Endpoint:       cfg.S3Endpoint,
			AccessKeyID:    cfg.S3AccessKeyID,
			SecretKey:      cfg.S3SecretKey,
			ForcePathStyle: cfg.S3ForcePathStyle,
		})
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	if cfg.CacheSize > 0 {
		return NewCached(src, cfg.CacheSize, opts...), nil
	}
	return src, nil
}
