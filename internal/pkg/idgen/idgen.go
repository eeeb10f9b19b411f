// Package idgen hands out sequential integer identifiers.
package idgen

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/shared/interfaces"
)

// Func returns the next identifier each time it is called. The first call
// returns 1.
type Func func() int

type options struct {
	logger   *zap.Logger
	recorder interfaces.Recorder
}

// Option configures a generator
type Option func(*options)

// WithLogger sets the logger used for debug output
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder sets where generated identifiers are counted
func WithRecorder(r interfaces.Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// New returns a generator closed over its own counter. Generators returned by
// separate calls never share state.
func New(opts ...Option) Func {
	o := options{
		logger:   zap.NewNop(),
		recorder: interfaces.NopRecorder{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	var uniqueID atomic.Int64

	return func() int {
		id := int(uniqueID.Add(1))
		o.recorder.RecordIdentifier()
		o.logger.Debug("identifier generated", zap.Int("id", id))
		return id
	}
}

// Take calls next n times and returns the identifiers in order.
func Take(next Func, n int) []int {
	if n <= 0 {
		return []int{}
	}
	ids := make([]int, 0, n)
	for range n {
		ids = append(ids, next())
	}
	return ids
}
