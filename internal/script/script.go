// Package script loads scripted hands from HCL or YAML.
//
// An HCL script looks like:
//
//	seed     = 123
//	autoplay = "passive"
//
//	seat "alice" {
//	  id    = 1
//	  chips = 15
//	}
//
//	action {
//	  seat = 1
//	  kind = "raise"
//	  value = 5
//	}
//
// YAML scripts use the same field names with "seats" and "actions" lists.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/lox/flopdealer/internal/autoplay"
	"github.com/lox/flopdealer/internal/dealer"
	"github.com/lox/flopdealer/internal/equity"
)

var (
	ErrUnsupportedFormat = errors.New("script: unsupported file format")
	ErrInvalid           = errors.New("script: invalid script")
)

// Script is a hand to replay: the table, the actions to submit in order, and
// optionally a policy that plays on once the actions run out.
type Script struct {
	Seed      uint64   `hcl:"seed,optional" yaml:"seed"`
	Autoplay  string   `hcl:"autoplay,optional" yaml:"autoplay"`
	Evaluator string   `hcl:"evaluator,optional" yaml:"evaluator"`
	Workers   int      `hcl:"workers,optional" yaml:"workers"`
	Seats     []Seat   `hcl:"seat,block" yaml:"seats"`
	Actions   []Action `hcl:"action,block" yaml:"actions"`
}

// Seat is one player at the table.
type Seat struct {
	Name  string `hcl:"name,label" yaml:"name"`
	ID    int    `hcl:"id" yaml:"id"`
	Chips int    `hcl:"chips" yaml:"chips"`
}

// Action is one scripted action. Kind uses the dealer's action names.
type Action struct {
	Seat  int    `hcl:"seat" yaml:"seat"`
	Kind  string `hcl:"kind" yaml:"kind"`
	Value int    `hcl:"value,optional" yaml:"value"`
}

// Load reads a script, picking the format from the file extension.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes data; filename selects the format and labels diagnostics.
// Defaults are applied and the result is validated.
func Parse(filename string, data []byte) (*Script, error) {
	var s Script
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hcl":
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCL(data, filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("script: parse %s: %s", filename, diags.Error())
		}
		if diags := gohcl.DecodeBody(file.Body, nil, &s); diags.HasErrors() {
			return nil, fmt.Errorf("script: decode %s: %s", filename, diags.Error())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("script: decode %s: %w", filename, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}

	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) applyDefaults() {
	if s.Evaluator == "" {
		s.Evaluator = "runout"
	}
	for i := range s.Seats {
		if s.Seats[i].Name == "" {
			s.Seats[i].Name = fmt.Sprintf("seat%d", s.Seats[i].ID)
		}
	}
}

// Validate reports the first problem with the script. It checks the table
// shape and action names; whether the actions are legal is up to the dealer.
func (s *Script) Validate() error {
	if n := len(s.Seats); n < dealer.MinSeats || n > dealer.MaxSeats {
		return fmt.Errorf("%w: %d seats, need %d-%d", ErrInvalid, n, dealer.MinSeats, dealer.MaxSeats)
	}
	seen := make(map[int]bool, len(s.Seats))
	for _, seat := range s.Seats {
		switch {
		case seat.ID <= 0:
			return fmt.Errorf("%w: seat %q has id %d", ErrInvalid, seat.Name, seat.ID)
		case seen[seat.ID]:
			return fmt.Errorf("%w: seat id %d used twice", ErrInvalid, seat.ID)
		case seat.Chips <= 0:
			return fmt.Errorf("%w: seat %q has %d chips", ErrInvalid, seat.Name, seat.Chips)
		}
		seen[seat.ID] = true
	}
	for i, a := range s.Actions {
		if _, err := dealer.ParseActionKind(a.Kind); err != nil {
			return fmt.Errorf("%w: action %d: %w", ErrInvalid, i+1, err)
		}
		if !seen[a.Seat] {
			return fmt.Errorf("%w: action %d names unknown seat %d", ErrInvalid, i+1, a.Seat)
		}
	}
	if s.Autoplay != "" {
		if _, err := autoplay.New(s.Autoplay, nil); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if _, err := s.NewEvaluator(); err != nil {
		return err
	}
	if s.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalid)
	}
	return nil
}

// NewEvaluator returns the configured showdown evaluator.
func (s *Script) NewEvaluator() (equity.Evaluator, error) {
	switch s.Evaluator {
	case "runout":
		return equity.Runout{Workers: s.Workers}, nil
	case "flop":
		return equity.Flop{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown evaluator %q", ErrInvalid, s.Evaluator)
	}
}

// Players returns the seats as dealer players.
func (s *Script) Players() []dealer.Player {
	out := make([]dealer.Player, len(s.Seats))
	for i, seat := range s.Seats {
		out[i] = dealer.Player{Seat: seat.ID, Chips: seat.Chips}
	}
	return out
}

// Name returns the name of seat id, or "" if the script has no such seat.
func (s *Script) Name(id int) string {
	for _, seat := range s.Seats {
		if seat.ID == id {
			return seat.Name
		}
	}
	return ""
}
