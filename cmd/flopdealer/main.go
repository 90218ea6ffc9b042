package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Debug     bool   `help:"Enable debug logging"`
	LogFormat string `enum:"text,json,logfmt" default:"text" help:"Log format (text, json, logfmt)"`
	NoColor   bool   `help:"Disable colored output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Replay a scripted hand and settle it"`
	Simulate SimulateCmd      `cmd:"" help:"Play many hands with autoplay policies"`
	Odds     OddsCmd          `cmd:"" help:"Showdown equity of four-card hands on a flop"`
}

func (g *Globals) logger(w io.Writer) *log.Logger {
	opts := log.Options{Level: log.WarnLevel, ReportTimestamp: true}
	if g.Debug {
		opts.Level = log.DebugLevel
	}
	switch g.LogFormat {
	case "json":
		opts.Formatter = log.JSONFormatter
	case "logfmt":
		opts.Formatter = log.LogfmtFormatter
	}
	logger := log.NewWithOptions(w, opts)
	if g.NoColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	return logger
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("flopdealer"),
		kong.Description("Dealer for single hands of pot-limit, four-card, flop-only poker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	logger := cli.logger(os.Stderr)
	ctx.BindTo(os.Stdout, (*io.Writer)(nil))
	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
