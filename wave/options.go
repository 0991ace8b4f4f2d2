package wave

import (
	"fmt"

	"github.com/go-kit/kit/log"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFirstStep is the scheme used for ψ[:,1] when no option overrides it.
	DefaultFirstStep = TaylorStart

	// DefaultWorkers runs the spatial sweep on the calling goroutine.
	DefaultWorkers = 1

	// minChunk is the smallest interior range handed to one worker;
	// shorter rows are swept serially.
	minChunk = 256
)

const panicWorkersInvalid = "wave: WithWorkers: workers must be >= 1"

// Option mutates solver options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options is the resolved solver configuration. Fields are unexported;
// use the WithX constructors.
type Options struct {
	firstStep FirstStep
	workers   int
	logger    log.Logger
}

// WithFirstStep selects the first-step scheme.
func WithFirstStep(s FirstStep) Option {
	if s != TaylorStart && s != LiteralStart {
		panic(fmt.Sprintf("wave: WithFirstStep: unknown scheme %d", int(s)))
	}
	return func(o *Options) { o.firstStep = s }
}

// WithWorkers splits the interior sweep of every time step across k goroutines.
// Each step waits for all workers before the next one starts.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = k }
}

// WithLogger attaches a go-kit logger; the solver logs at debug level only.
func WithLogger(l log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultOptions() Options {
	return Options{
		firstStep: DefaultFirstStep,
		workers:   DefaultWorkers,
		logger:    log.NewNopLogger(),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
