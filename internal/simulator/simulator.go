// Package simulator plays many independent hands concurrently and checks
// every one of them settles cleanly.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/flopdealer/internal/autoplay"
	"github.com/lox/flopdealer/internal/dealer"
	"github.com/lox/flopdealer/internal/equity"
	"github.com/lox/flopdealer/internal/statistics"
	"github.com/lox/flopdealer/poker"
)

// Mixed seats a rotating mix of every policy against the tracked seat.
const Mixed = "mixed"

// Config holds simulation settings. Zero values pick defaults.
type Config struct {
	Hands     int
	Seats     int    // players per hand, default 6
	Stack     int    // starting chips per seat, default 100
	Seed      uint64 // hand i uses Seed+i
	Hero      string // policy of the tracked seat, default "aggressive"
	Opponents string // policy of everyone else, or "mixed"; default "passive"
	Workers   int    // concurrent hands, default GOMAXPROCS
	Evaluator equity.Evaluator
	Clock     quartz.Clock
	Logger    *log.Logger
}

// Simulator runs hand simulations.
type Simulator struct {
	config Config
}

// New creates a simulator, filling in defaults.
func New(config Config) *Simulator {
	if config.Seats == 0 {
		config.Seats = 6
	}
	if config.Stack == 0 {
		config.Stack = 100
	}
	if config.Hero == "" {
		config.Hero = "aggressive"
	}
	if config.Opponents == "" {
		config.Opponents = "passive"
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Evaluator == nil {
		config.Evaluator = equity.Runout{Workers: 1}
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Simulator{config: config}
}

// Config returns the effective configuration.
func (s *Simulator) Config() Config { return s.config }

// Validate checks the configuration before any hand is played.
func (s *Simulator) Validate() error {
	c := s.config
	switch {
	case c.Hands <= 0:
		return fmt.Errorf("simulator: hands must be positive, got %d", c.Hands)
	case c.Seats < dealer.MinSeats || c.Seats > dealer.MaxSeats:
		return fmt.Errorf("simulator: seats must be %d-%d, got %d", dealer.MinSeats, dealer.MaxSeats, c.Seats)
	case c.Stack <= 0:
		return fmt.Errorf("simulator: stack must be positive, got %d", c.Stack)
	}
	if _, err := autoplay.New(c.Hero, nil); err != nil {
		return fmt.Errorf("simulator: hero: %w", err)
	}
	if c.Opponents != Mixed {
		if _, err := autoplay.New(c.Opponents, nil); err != nil {
			return fmt.Errorf("simulator: opponents: %w", err)
		}
	}
	return nil
}

// Run plays every hand and aggregates the tracked seat's results. Results
// are added in hand order, so a run is reproducible for a given seed
// whatever the worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	results := make([]statistics.HandResult, s.config.Hands)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range s.config.Hands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := s.playHand(i)
			if err != nil {
				return fmt.Errorf("hand %d (seed %d): %w", i+1, s.config.Seed+uint64(i), err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	s.config.Logger.Info("simulation complete", "hands", stats.Hands, "mean", stats.Mean())
	return stats, nil
}

// playHand runs one hand to settlement. The tracked seat moves one seat per
// hand so it plays every position.
func (s *Simulator) playHand(i int) (result statistics.HandResult, err error) {
	seed := s.config.Seed + uint64(i)
	hero := i%s.config.Seats + 1

	defer func() {
		if r := recover(); r != nil {
			var acct *dealer.AccountingError
			if e, ok := r.(error); ok && errors.As(e, &acct) {
				err = acct
				return
			}
			panic(r)
		}
	}()

	players := make([]dealer.Player, s.config.Seats)
	for j := range players {
		players[j] = dealer.Player{Seat: j + 1, Chips: s.config.Stack}
	}
	d, err := dealer.New(seed, players,
		dealer.WithLogger(s.config.Logger.With("seed", seed)),
		dealer.WithEvaluator(s.config.Evaluator),
		dealer.WithClock(s.config.Clock),
	)
	if err != nil {
		return result, err
	}
	if err := d.StartHand(); err != nil {
		return result, err
	}

	policies, err := s.policies(hero, seed)
	if err != nil {
		return result, err
	}
	for d.Stage() != dealer.Showdown {
		if result.Actions >= 1000 {
			return result, errors.New("no showdown after 1000 actions")
		}
		if _, _, err := autoplay.Step(d, policies[d.Current()]); err != nil {
			return result, err
		}
		result.Actions++
	}

	result.Pot = d.Pot()
	_, result.SawFlop = d.Board()
	res, err := d.Settle()
	if err != nil {
		return result, err
	}

	sum := 0
	for seat, net := range d.Net() {
		sum += net
		if seat == hero {
			result.Net = net
		}
	}
	if sum != 0 {
		return result, fmt.Errorf("chips not conserved: net %+d", sum)
	}
	for pos, p := range d.Players() {
		if p.Seat == hero {
			result.Position = pos + 1
		}
	}
	result.Seed = seed
	result.Uncontested = res.Uncontested
	result.SidePots = len(res.Pots)
	if res.Refund != nil {
		result.Refund = res.Refund.Amount
	}
	return result, nil
}

func (s *Simulator) policies(hero int, seed uint64) (map[int]autoplay.Policy, error) {
	rng := poker.NewRand(seed)
	out := make(map[int]autoplay.Policy, s.config.Seats)
	for seat := 1; seat <= s.config.Seats; seat++ {
		name := s.config.Opponents
		switch {
		case seat == hero:
			name = s.config.Hero
		case name == Mixed:
			name = autoplay.Names[seat%len(autoplay.Names)]
		}
		p, err := autoplay.New(name, rng)
		if err != nil {
			return nil, err
		}
		out[seat] = p
	}
	return out, nil
}
