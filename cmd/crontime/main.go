// Command crontime prints the instants matching a six-field cron pattern.
//
//	crontime --start 2024-01-01 --limit 3 "0 30 9 * * 1-5"
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

func main() {
	environ := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			environ[key] = value
		}
	}

	if err := run(os.Args[1:], environ, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "crontime: %s\n", err)
		}
		os.Exit(2)
	}
}

func run(args []string, environ map[string]string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, environ, stderr)
	if err != nil {
		return err
	}
	l, err := cfg.logger(stderr)
	if err != nil {
		return err
	}

	if cfg.File == "" {
		s := &schedule{
			Pattern: cfg.Pattern,
			Zone:    cfg.Zone,
			Start:   cfg.Start,
			End:     cfg.End,
			Limit:   &cfg.Limit,
			Classic: cfg.Classic,
		}
		cronTime, err := s.cronTime(l)
		if err != nil {
			return err
		}
		return printMatches(stdout, cronTime.NextPortion, cronTime.CountPortion, *s.Limit, cfg.Count)
	}

	schedules, err := loadSchedules(cfg.File, cfg)
	if err != nil {
		return err
	}
	for i := range schedules {
		s := &schedules[i]
		cronTime, err := s.cronTime(l)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		l.Info("Evaluating schedule", "name", s.Name, "pattern", cronTime.String())
		fmt.Fprintf(stdout, "# %s: %s\n", s.Name, cronTime)
		if err := printMatches(stdout, cronTime.NextPortion, cronTime.CountPortion, *s.Limit, cfg.Count); err != nil {
			return err
		}
	}
	return nil
}

func printMatches(w io.Writer, next func(int) []time.Time, count func(int) int,
	limit int, countOnly bool) error {
	if countOnly {
		_, err := fmt.Fprintln(w, count(limit))
		return err
	}
	for _, match := range next(limit) {
		if _, err := fmt.Fprintln(w, match.Format(time.RFC3339)); err != nil {
			return err
		}
	}
	return nil
}
