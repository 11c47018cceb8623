package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adhocore/gronx"
	"gopkg.in/yaml.v3"

	"github.com/reugn/go-crontime/crontime"
	"github.com/reugn/go-crontime/logger"
)

// schedule is a named pattern with its own bounds.
type schedule struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Zone    string `yaml:"zone"`
	Start   string `yaml:"start"`
	End     string `yaml:"end"`
	Limit   *int   `yaml:"limit"`
	Classic bool   `yaml:"classic"`
}

type scheduleFile struct {
	Schedules []schedule `yaml:"schedules"`
}

// loadSchedules reads the schedule file. Schedule values left empty are
// taken from the command settings.
func loadSchedules(path string, cfg *config) ([]schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var file scheduleFile
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(file.Schedules) == 0 {
		return nil, fmt.Errorf("%s: no schedules", path)
	}

	for i := range file.Schedules {
		s := &file.Schedules[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("schedule-%d", i+1)
		}
		if s.Zone == "" {
			s.Zone = cfg.Zone
		}
		if s.Start == "" {
			s.Start = cfg.Start
		}
		if s.End == "" {
			s.End = cfg.End
		}
		if s.Limit == nil {
			s.Limit = &cfg.Limit
		}
		s.Classic = s.Classic || cfg.Classic
	}
	return file.Schedules, nil
}

// cronTime builds the CronTime for the schedule.
func (s *schedule) cronTime(l logger.Logger) (*crontime.CronTime, error) {
	pattern, err := s.expandedPattern()
	if err != nil {
		return nil, err
	}

	opts := []crontime.Option{crontime.WithLogger(l)}
	if s.Zone != "" {
		if _, err := crontime.ParseZone(s.Zone); err != nil {
			return nil, fmt.Errorf("zone: %w", err)
		}
		opts = append(opts, crontime.WithZone(s.Zone))
	}
	if s.Start != "" {
		opts = append(opts, crontime.WithStart(s.Start))
	}
	if s.End != "" {
		opts = append(opts, crontime.WithEnd(s.End))
	}
	return crontime.New(pattern, opts...)
}

// expandedPattern returns the six-field pattern of the schedule.
// A five-field crontab line is accepted in classic mode and is evaluated
// at second zero.
func (s *schedule) expandedPattern() (string, error) {
	if !s.Classic || len(strings.Fields(s.Pattern)) != 5 {
		return s.Pattern, nil
	}
	if !gronx.IsValid(s.Pattern) {
		return "", fmt.Errorf("%w: invalid crontab pattern %q", crontime.ErrStructure, s.Pattern)
	}
	return "0 " + s.Pattern, nil
}
