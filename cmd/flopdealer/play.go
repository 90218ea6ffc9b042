package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/flopdealer/internal/dealer"
	"github.com/lox/flopdealer/internal/phh"
	"github.com/lox/flopdealer/internal/script"
)

type PlayCmd struct {
	Script   string  `arg:"" type:"existingfile" help:"Hand script (.hcl, .yaml or .yml)"`
	Seed     *uint64 `help:"Override the script's deck seed"`
	Autoplay string  `help:"Policy that finishes the hand after the scripted actions (passive, aggressive, random, fold)"`
	PHH      string  `name:"phh" type:"path" help:"Write the settled hand to this file as PHH TOML"`
}

func (c *PlayCmd) Run(logger *log.Logger, out io.Writer) error {
	s, err := script.Load(c.Script)
	if err != nil {
		return err
	}
	if c.Seed != nil {
		s.Seed = *c.Seed
	}
	if c.Autoplay != "" {
		s.Autoplay = c.Autoplay
		if err := s.Validate(); err != nil {
			return err
		}
	}

	d, err := s.Play(logger)
	if err != nil {
		return err
	}
	if d.Stage() != dealer.Showdown {
		return fmt.Errorf("hand stopped at %s with seat %d to act; add actions or set --autoplay", d.Stage(), d.Current())
	}

	res, err := d.Settle()
	if err != nil {
		return err
	}
	renderHand(out, d, res, s.Name)

	if c.PHH != "" {
		hand, err := phh.FromHand(d, res)
		if err != nil {
			return err
		}
		if err := phh.WriteFile(c.PHH, hand); err != nil {
			return err
		}
		logger.Info("wrote hand history", "path", c.PHH)
	}
	return nil
}
