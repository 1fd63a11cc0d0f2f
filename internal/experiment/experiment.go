// Package experiment drives a heading simulation headlessly at a fixed
// cadence and reduces the run to a full sample series plus metrics.
package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/skidsim/internal/control"
	"github.com/san-kum/skidsim/internal/sim"
)

type Config struct {
	Kp             float64
	Ki             float64
	Kd             float64
	Target         float64
	InitialHeading float64
	MaxTurnRate    float64
	HistoryCap     int
	Dt             float64
	Duration       float64
}

type Result struct {
	Samples []sim.Sample
	Metrics map[string]float64
	Final   float64 // final heading, wrapped to [0, 360)
}

type Experiment struct {
	cfg     Config
	metrics []sim.Metric
}

func New(cfg Config, metrics []sim.Metric) *Experiment {
	return &Experiment{cfg: cfg, metrics: metrics}
}

// Run ticks the simulation for the configured duration, observing every
// sample. Unlike the live view, the result keeps the whole series, not just
// the simulation's bounded display buffer.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.cfg.Dt <= 0 {
		return nil, fmt.Errorf("experiment: dt must be positive, got %f", e.cfg.Dt)
	}
	if e.cfg.Duration <= 0 {
		return nil, fmt.Errorf("experiment: duration must be positive, got %f", e.cfg.Duration)
	}

	pid := control.NewPID(e.cfg.Kp, e.cfg.Ki, e.cfg.Kd)
	s := sim.New(pid, sim.Config{
		InitialHeading: e.cfg.InitialHeading,
		DesiredHeading: e.cfg.Target,
		MaxTurnRate:    e.cfg.MaxTurnRate,
		HistoryCap:     e.cfg.HistoryCap,
	})

	for _, m := range e.metrics {
		m.Reset()
	}

	steps := int(e.cfg.Duration / e.cfg.Dt)
	result := &Result{
		Samples: make([]sim.Sample, 0, steps),
		Metrics: make(map[string]float64),
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := s.Tick(e.cfg.Dt); err != nil {
			return result, err
		}

		last, ok := s.Last()
		if !ok {
			return result, fmt.Errorf("experiment: no sample after tick %d", i)
		}
		result.Samples = append(result.Samples, last)

		for _, m := range e.metrics {
			m.Observe(last)
		}
	}

	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Final = sim.WrapHeading(s.Heading())

	return result, nil
}
