package wavsplit

import (
	"io"
	"log/slog"
)

// Option tunes signature detection and reporting.
type Option func(*options)

type options struct {
	strict bool
	logger *slog.Logger
}

// WithStrict enables RIFF size validation. A header is only accepted when its
// declared size fits inside the blob, and headers falling inside an accepted
// chunk are ignored.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithLogger routes diagnostics to l. A nil logger keeps the default, which
// discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}
