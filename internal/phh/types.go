// Package phh writes settled hands in the Poker Hand History TOML format.
package phh

// HandHistory is a single settled hand in PHH form. Player p1 is the small
// blind; the remaining players follow in acting order.
type HandHistory struct {
	Variant           string         `toml:"variant"`
	SeatCount         int            `toml:"seat_count"`
	Seats             []int          `toml:"seats"`
	Antes             []int          `toml:"antes"`
	BlindsOrStraddles []int          `toml:"blinds_or_straddles"`
	MinBet            int            `toml:"min_bet"`
	StartingStacks    []int          `toml:"starting_stacks"`
	FinishingStacks   []int          `toml:"finishing_stacks,omitempty"`
	Winnings          []int          `toml:"winnings,omitempty"`
	Actions           []string       `toml:"actions"`
	HandID            string         `toml:"hand"`
	Time              string         `toml:"time,omitempty"`
	TimeZone          string         `toml:"time_zone,omitempty"`
	Day               int            `toml:"day,omitempty"`
	Month             int            `toml:"month,omitempty"`
	Year              int            `toml:"year,omitempty"`
	Metadata          map[string]any `toml:"metadata,omitempty"`
}

// Variant is the PHH code for pot-limit Omaha, the closest standard variant.
const Variant = "PO"
