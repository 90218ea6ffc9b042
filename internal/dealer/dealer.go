package dealer

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/flopdealer/internal/equity"
	"github.com/lox/flopdealer/internal/handid"
	"github.com/lox/flopdealer/poker"
)

const (
	MinSeats = 2
	MaxSeats = 10
)

// Dealer runs one hand.
type Dealer struct {
	id         string
	seed       uint64
	deck       *poker.Deck
	ledger     *ledger
	history    History
	tracker    tracker
	stage      Stage
	current    int
	button     int
	board      [3]poker.Card
	boardDealt bool
	started    bool
	settled    bool
	startedAt  time.Time

	logger    *log.Logger
	evaluator equity.Evaluator
	clock     quartz.Clock
	ids       *handid.Generator
}

// New creates a dealer for a single hand. Seats must be positive and unique,
// every stack must hold at least one chip, and the lowest seat is the button.
func New(seed uint64, players []Player, opts ...Option) (*Dealer, error) {
	if len(players) < MinSeats || len(players) > MaxSeats {
		return nil, fmt.Errorf("%w: %d players, need %d-%d", ErrInvalidSetup, len(players), MinSeats, MaxSeats)
	}
	seen := make(map[int]bool, len(players))
	button := players[0].Seat
	for _, p := range players {
		switch {
		case p.Seat <= 0:
			return nil, fmt.Errorf("%w: seat %d is not positive", ErrInvalidSetup, p.Seat)
		case seen[p.Seat]:
			return nil, fmt.Errorf("%w: seat %d appears twice", ErrInvalidSetup, p.Seat)
		case p.Chips < 1:
			return nil, fmt.Errorf("%w: seat %d has %d chips", ErrInvalidSetup, p.Seat, p.Chips)
		}
		seen[p.Seat] = true
		button = min(button, p.Seat)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.ids == nil {
		cfg.ids = handid.New(cfg.clock)
	}

	fresh := make([]Player, len(players))
	for i, p := range players {
		fresh[i] = Player{Seat: p.Seat, Chips: p.Chips}
	}

	return &Dealer{
		seed:      seed,
		deck:      poker.NewDeck(seed),
		ledger:    newLedger(fresh),
		stage:     PreFlop,
		button:    button,
		logger:    cfg.logger,
		evaluator: cfg.evaluator,
		clock:     cfg.clock,
		ids:       cfg.ids,
	}, nil
}

// StartHand seats players in acting order, deals four cards each and posts
// the blinds. It may be called once.
func (d *Dealer) StartHand() error {
	if d.started {
		return ErrHandStarted
	}
	id, err := d.ids.Next()
	if err != nil {
		return fmt.Errorf("dealer: start hand: %w", err)
	}

	d.id = id
	d.started = true
	d.startedAt = d.clock.Now()
	d.deck.Shuffle()
	d.ledger.rotate(d.button)

	for _, p := range d.ledger.players {
		hand, err := d.deck.Draw4()
		if err != nil {
			violation("deal", "%v", err)
		}
		p.Hand = hand
		d.history.StartingBalances = append(d.history.StartingBalances, SeatBalance{Seat: p.Seat, Chips: p.Chips})
	}

	d.logger = d.logger.With("hand", d.id)
	d.logger.Debug("hand started", "seed", d.seed, "button", d.button, "seats", len(d.ledger.players))

	sb, bb := d.ledger.players[0], d.ledger.players[1]
	d.current = sb.Seat
	if sb.Chips > 1 {
		d.post(sb.Seat, Bet, 1)
	} else {
		d.post(sb.Seat, BetAI, sb.Chips)
	}
	switch {
	case bb.Chips > 2:
		d.post(bb.Seat, Raise, 1)
	case bb.Chips == 2:
		d.post(bb.Seat, RaiseAI, 1)
	default:
		d.post(bb.Seat, CallAI, 0)
	}
	return nil
}

// post applies a forced blind. Blinds are always legal, so a rejection is a
// defect.
func (d *Dealer) post(seat int, kind ActionKind, value int) {
	if err := d.Submit(seat, kind, value); err != nil {
		violation("blinds", "posting %s %d for seat %d: %v", kind, value, seat, err)
	}
}

// Submit validates and applies one action. A rejected action returns an
// error wrapping one of the validation sentinels and leaves the hand as it
// was.
func (d *Dealer) Submit(seat int, kind ActionKind, value int) error {
	p, owed, err := d.validate(seat, kind, value)
	if err != nil {
		return err
	}
	d.apply(p, kind, value, owed)
	return nil
}

func (d *Dealer) apply(p *Player, kind ActionKind, value, owed int) {
	origin := len(d.history.Actions)
	committed := 0

	switch kind {
	case Fold:
		p.Folded = true
		d.tracker.forfeit(p.Seat)
	case Check:
	default:
		if owed > 0 {
			paid := d.tracker.pay(p.Seat, p.Chips)
			d.ledger.collect(p, paid)
			committed += paid
		}
		if kind.HasValue() {
			d.ledger.collect(p, value)
			committed += value
			d.tracker.place(origin, p.Seat, value, d.ledger.eligibleExcept(p.Seat))
		}
		if kind.AllIn() {
			if p.Chips != 0 {
				violation("submit", "seat %d went all-in with %d chips left", p.Seat, p.Chips)
			}
			p.AllIn = true
		}
	}

	finalized := d.tracker.sweep()
	rec := ActionRecord{Seat: p.Seat, Kind: kind, Value: value, Committed: committed}
	d.history.append(d.stage, rec)
	d.ledger.checkBalanced("submit")

	d.logger.Debug("action",
		"seat", rec.Seat,
		"kind", rec.Kind,
		"value", rec.Value,
		"committed", rec.Committed,
		"pot", d.ledger.pot,
		"finalized", finalized,
	)

	d.advance(rec)
}

// ID returns the hand ID, assigned by StartHand.
func (d *Dealer) ID() string { return d.id }

// Seed returns the deck seed.
func (d *Dealer) Seed() uint64 { return d.seed }

// StartedAt returns when StartHand ran.
func (d *Dealer) StartedAt() time.Time { return d.startedAt }

// Stage returns the current stage.
func (d *Dealer) Stage() Stage { return d.stage }

// Current returns the seat to act.
func (d *Dealer) Current() int { return d.current }

// Button returns the button seat.
func (d *Dealer) Button() int { return d.button }

// Pot returns the chips in the pot.
func (d *Dealer) Pot() int { return d.ledger.pot }

// Settled reports whether Settle has completed.
func (d *Dealer) Settled() bool { return d.settled }

// Board returns the flop and whether it has been dealt.
func (d *Dealer) Board() ([3]poker.Card, bool) { return d.board, d.boardDealt }

// Players returns a copy of every player, in acting order once the hand has
// started.
func (d *Dealer) Players() []Player {
	out := make([]Player, len(d.ledger.players))
	for i, p := range d.ledger.players {
		out[i] = *p
	}
	return out
}

// Player returns a copy of one player.
func (d *Dealer) Player(seat int) (Player, error) {
	p, ok := d.ledger.player(seat)
	if !ok {
		return Player{}, fmt.Errorf("%w: %d", ErrSeatNotFound, seat)
	}
	return *p, nil
}

// CallAmount returns what seat owes across every open bet.
func (d *Dealer) CallAmount(seat int) (int, error) {
	if _, ok := d.ledger.player(seat); !ok {
		return 0, fmt.Errorf("%w: %d", ErrSeatNotFound, seat)
	}
	return d.tracker.callAmount(seat), nil
}

// History returns a copy of the action log.
func (d *Dealer) History() History { return d.history.clone() }

// OpenBets returns copies of the bets still owed, oldest first.
func (d *Dealer) OpenBets() []OutstandingBet { return derefBets(d.tracker.open) }

// FinalizedBets returns copies of the fully matched bets in the order they
// were finalized.
func (d *Dealer) FinalizedBets() []OutstandingBet { return derefBets(d.tracker.finalized) }

func derefBets(bets []*OutstandingBet) []OutstandingBet {
	out := make([]OutstandingBet, len(bets))
	for i, b := range cloneBets(bets) {
		out[i] = *b
	}
	return out
}
