package fastuuid

import (
	"crypto/rand"
	"io"
	"sync"
	"time"
)

// Generator builds time-based and random UUIDs. It is safe for concurrent use
// as long as its random source is.
type Generator struct {
	mu         sync.Mutex
	lastTicks  uint64
	clockSeq   uint16 // 14-bit version 1 clock sequence
	seqReady   bool
	randReader io.Reader
	now        func() time.Time
}

// Option configures a Generator
type Option func(g *Generator)

// WithRandReader sets the random source used for version 4 UUIDs and the
// initial version 1 clock sequence.
func WithRandReader(r io.Reader) Option {
	return func(g *Generator) {
		g.randReader = r
	}
}

// WithClock sets the clock used for version 1 timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a generator with crypto/rand as the random source and
// time.Now as the clock, then applies opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		randReader: rand.Reader,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewGeneratorWithReader creates a generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return NewGenerator(WithRandReader(r))
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = fastuuid.Must(fastuuid.NewV1())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultGenerator is the package-level generator used by the New* functions
var defaultGenerator = NewGenerator()
