package manifest

import (
	"io"
	"log/slog"
	"strings"

	"github.com/syntax-framework/statics/digest"
	"github.com/syntax-framework/statics/filter"
)

// DefaultPrefix public path prefix of every record
const DefaultPrefix = "/static"

// Option configures the manifest generation.
type Option func(*config)

type config struct {
	algorithm      digest.Algorithm
	hashLength     int
	prefix         string
	filter         *filter.Filter
	followSymlinks bool
	logger         *slog.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{
		algorithm: digest.Default,
		prefix:    DefaultPrefix,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithHash sets the content hash algorithm (md5 by default).
func WithHash(algorithm digest.Algorithm) Option {
	return func(c *config) {
		c.algorithm = algorithm
	}
}

// WithHashLength truncates the hex digest embedded in public paths. Zero keeps the full digest.
func WithHashLength(length int) Option {
	return func(c *config) {
		c.hashLength = length
	}
}

// WithPrefix sets the public path prefix, "/static" by default. "" and "/" place the files at the URL root.
func WithPrefix(prefix string) Option {
	return func(c *config) {
		prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
		if prefix != "" && !strings.HasPrefix(prefix, "/") {
			prefix = "/" + prefix
		}
		c.prefix = prefix
	}
}

// WithFilter skips every walked entry excluded by f. Extra files are never filtered.
func WithFilter(f *filter.Filter) Option {
	return func(c *config) {
		c.filter = f
	}
}

// WithFollowSymlinks accepts symbolic links to regular files inside asset directories. Symbolic links to
// directories are always rejected.
func WithFollowSymlinks(follow bool) Option {
	return func(c *config) {
		c.followSymlinks = follow
	}
}

// WithLogger sets the logger that receives one debug event per scope and record.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
