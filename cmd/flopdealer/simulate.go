package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/flopdealer/internal/equity"
	"github.com/lox/flopdealer/internal/simulator"
)

type SimulateCmd struct {
	Hands     int    `default:"10000" help:"Number of hands to play"`
	Seats     int    `default:"6" help:"Players per hand"`
	Stack     int    `default:"100" help:"Starting chips per seat"`
	Seed      uint64 `default:"1" help:"Seed of the first hand; hand i uses seed+i"`
	Hero      string `default:"aggressive" help:"Policy of the tracked seat"`
	Opponents string `default:"passive" help:"Policy of the other seats, or mixed"`
	Workers   int    `help:"Concurrent hands (default GOMAXPROCS)"`
	Evaluator string `default:"flop" enum:"runout,flop" help:"Showdown equity: runout or flop"`
}

func (c *SimulateCmd) evaluator() equity.Evaluator {
	if c.Evaluator == "runout" {
		return equity.Runout{Workers: 1}
	}
	return equity.Flop{}
}

func (c *SimulateCmd) Run(logger *log.Logger, out io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := simulator.New(simulator.Config{
		Hands:     c.Hands,
		Seats:     c.Seats,
		Stack:     c.Stack,
		Seed:      c.Seed,
		Hero:      c.Hero,
		Opponents: c.Opponents,
		Workers:   c.Workers,
		Evaluator: c.evaluator(),
		Logger:    logger,
	})

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("simulation finished", "hands", stats.Hands, "elapsed", time.Since(start).Round(time.Millisecond))

	fmt.Fprintln(out, titleStyle.Render("Simulation"))
	simulator.PrintSummary(out, stats, sim.Config())
	return nil
}
