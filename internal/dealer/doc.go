// Package dealer arbitrates a single hand of pot-limit, four-card, flop-only
// poker.
//
// A Dealer owns the whole hand: the chip ledger, the action history, the
// outstanding bets that short stacks could only partly match, and the stage
// machine that moves the hand from PreFlop to Flop to Showdown. Each instance
// is good for exactly one hand.
//
// # Basic Usage
//
//	d, err := dealer.New(123, []dealer.Player{
//	    {Seat: 1, Chips: 15},
//	    {Seat: 2, Chips: 12},
//	    {Seat: 3, Chips: 10},
//	})
//	if err != nil {
//	    return err
//	}
//	if err := d.StartHand(); err != nil {
//	    return err
//	}
//	for d.Stage() != dealer.Showdown {
//	    legal, _ := d.LegalActions()
//	    // choose one of legal and an amount ...
//	    if err := d.Submit(d.Current(), kind, value); err != nil {
//	        // rejected: state is unchanged, try again
//	    }
//	}
//	result, err := d.Settle()
//
// # Side pots
//
// Every chip that enters the pot belongs to exactly one bet: the bettor's own
// stake, full payments from seats that matched it, or partial payments from
// seats that went all-in short. At showdown the finalized bets are cut into
// layers at each partial amount and grouped by the exact set of contributing
// seats; see BuildSidePots.
//
// # Concurrency
//
// A Dealer is single-writer and not safe for concurrent use. Run independent
// hands on independent instances.
package dealer
