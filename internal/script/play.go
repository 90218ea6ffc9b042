package script

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/flopdealer/internal/autoplay"
	"github.com/lox/flopdealer/internal/dealer"
	"github.com/lox/flopdealer/poker"
)

// Play starts the hand, submits every scripted action and, when the script
// names a policy, plays on to showdown with it. It returns the dealer in
// whatever stage the hand reached; it does not settle.
func (s *Script) Play(logger *log.Logger, opts ...dealer.Option) (*dealer.Dealer, error) {
	eval, err := s.NewEvaluator()
	if err != nil {
		return nil, err
	}
	opts = append([]dealer.Option{dealer.WithLogger(logger), dealer.WithEvaluator(eval)}, opts...)

	d, err := dealer.New(s.Seed, s.Players(), opts...)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	if err := d.StartHand(); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}

	for i, a := range s.Actions {
		kind, err := dealer.ParseActionKind(a.Kind)
		if err != nil {
			return d, fmt.Errorf("script: action %d: %w", i+1, err)
		}
		if err := d.Submit(a.Seat, kind, a.Value); err != nil {
			return d, fmt.Errorf("script: action %d (seat %d %s %d): %w", i+1, a.Seat, a.Kind, a.Value, err)
		}
	}

	if s.Autoplay == "" || d.Stage() == dealer.Showdown {
		return d, nil
	}
	policy, err := autoplay.New(s.Autoplay, poker.NewRand(s.Seed))
	if err != nil {
		return d, fmt.Errorf("script: %w", err)
	}
	if _, err := autoplay.Finish(d, policy, logger); err != nil {
		return d, fmt.Errorf("script: %w", err)
	}
	return d, nil
}
