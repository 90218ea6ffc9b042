package dealer

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/flopdealer/internal/equity"
	"github.com/lox/flopdealer/internal/handid"
)

// Option configures a Dealer during creation.
type Option func(*config)

type config struct {
	logger    *log.Logger
	evaluator equity.Evaluator
	clock     quartz.Clock
	ids       *handid.Generator
}

func defaultConfig() *config {
	return &config{
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
		evaluator: equity.Runout{},
		clock:     quartz.NewReal(),
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEvaluator sets the showdown equity evaluator. Default is
// equity.Runout, which deals out every turn and river.
func WithEvaluator(e equity.Evaluator) Option {
	return func(c *config) {
		if e != nil {
			c.evaluator = e
		}
	}
}

// WithClock sets the clock used for the hand's start time and ID.
func WithClock(clock quartz.Clock) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithHandIDs sets the hand ID generator. Without it IDs come from a
// generator on the dealer's clock.
func WithHandIDs(g *handid.Generator) Option {
	return func(c *config) {
		c.ids = g
	}
}
