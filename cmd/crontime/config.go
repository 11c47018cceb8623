package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"

	"github.com/reugn/go-crontime/logger"
)

// config holds the command settings. Environment variables provide the
// defaults that command-line flags override.
type config struct {
	Zone     string `env:"CRONTIME_ZONE"`
	Limit    int    `env:"CRONTIME_LIMIT" envDefault:"10"`
	LogLevel string `env:"CRONTIME_LOG_LEVEL" envDefault:"warn"`

	Start   string
	End     string
	File    string
	Count   bool
	Classic bool
	Pattern string
}

var errUsage = errors.New("usage")

func parseConfig(args []string, environ map[string]string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	fs := pflag.NewFlagSet("crontime", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: crontime [flags] <pattern>")
		fmt.Fprintln(stderr, "       crontime [flags] --file schedules.yaml")
		fs.PrintDefaults()
	}
	fs.IntVarP(&cfg.Limit, "limit", "n", cfg.Limit, "maximum number of matches to print")
	fs.StringVarP(&cfg.Start, "start", "s", "", "instant to start searching from (default Unix epoch)")
	fs.StringVarP(&cfg.End, "end", "e", "", "last instant a match may have")
	fs.StringVarP(&cfg.Zone, "zone", "z", cfg.Zone, "fixed zone offset, e.g. +0400")
	fs.StringVarP(&cfg.File, "file", "f", "", "YAML file with named schedules")
	fs.BoolVarP(&cfg.Count, "count", "c", false, "print the number of matches instead of the matches")
	fs.BoolVar(&cfg.Classic, "classic", false, "accept five-field crontab patterns without seconds")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: trace, debug, info, warn, error or off")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, errUsage
		}
		return nil, err
	}

	switch {
	case cfg.File == "" && fs.NArg() == 1:
		cfg.Pattern = fs.Arg(0)
	case cfg.File != "" && fs.NArg() == 0:
	default:
		fs.Usage()
		return nil, errUsage
	}

	if cfg.Limit < 0 {
		return nil, fmt.Errorf("limit must be non-negative, got %d", cfg.Limit)
	}
	return cfg, nil
}

func (c *config) logger(w io.Writer) (logger.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	return logger.NewTextLogger(w, level), nil
}
