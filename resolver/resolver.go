package resolver

import (
	"log/slog"
	"sync"

	"github.com/jmgilman/go/fspath/fs/core"
	"github.com/jmgilman/go/fspath/generic"
)

// DefaultMaxSymlinks matches MAXSYMLINKS on Linux.
const DefaultMaxSymlinks = 40

// Resolver resolves and queries paths through a platform capability value.
type Resolver struct {
	ops         core.PlatformFileOps
	convention  generic.Convention
	logger      *slog.Logger
	maxSymlinks int
	home        func() string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger that receives collapsed query failures at
// debug level. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMaxSymlinks sets how many symbolic links canonicalization may
// substitute before giving up. Values below one are ignored.
func WithMaxSymlinks(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxSymlinks = n
		}
	}
}

// New creates a Resolver over the given capabilities.
func New(ops core.PlatformFileOps, opts ...Option) *Resolver {
	r := &Resolver{
		ops:         ops,
		convention:  ops.Convention(),
		logger:      slog.New(slog.DiscardHandler),
		maxSymlinks: DefaultMaxSymlinks,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.home = sync.OnceValue(r.computeHome)
	return r
}

// Ops returns the capabilities the Resolver queries.
func (r *Resolver) Ops() core.PlatformFileOps {
	return r.ops
}

// Convention returns the path convention of the underlying platform.
func (r *Resolver) Convention() generic.Convention {
	return r.convention
}

// queryFailed reports a collapsed failure.
func (r *Resolver) queryFailed(op, path string, err error) {
	r.logger.Debug("path query failed", "op", op, "path", path, "error", err)
}
