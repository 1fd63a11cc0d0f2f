package sim

import "github.com/san-kum/skidsim/internal/control"

// Simulation owns the heading state of a skid-steer vehicle under
// closed-loop control and a bounded history of telemetry samples.
//
// It has no timer of its own: an external driver calls Tick(dt) at its own
// cadence (10 Hz by design). Not safe for concurrent use; the driver is the
// single owner.
type Simulation struct {
	// Desired is the target heading in degrees, writable at any time.
	Desired float64

	ctrl    *control.PID
	heading float64
	initial float64
	elapsed float64
	paused  bool

	maxRate float64
	histCap int
	history []Sample
}

func New(ctrl *control.PID, cfg Config) *Simulation {
	if cfg.MaxTurnRate <= 0 {
		cfg.MaxTurnRate = DefaultMaxTurnRate
	}
	if cfg.HistoryCap <= 0 {
		cfg.HistoryCap = DefaultHistoryCap
	}
	return &Simulation{
		Desired: cfg.DesiredHeading,
		ctrl:    ctrl,
		heading: cfg.InitialHeading,
		initial: cfg.InitialHeading,
		maxRate: cfg.MaxTurnRate,
		histCap: cfg.HistoryCap,
		history: make([]Sample, 0, cfg.HistoryCap),
	}
}

// Tick advances the simulation by dt seconds: wrapped error, controller
// output, turn-rate clamp, heading update, history append, in that order.
// A non-positive dt is rejected with control.ErrInvalidTimestep and no state
// changes. While paused, Tick is a pure no-op.
func (s *Simulation) Tick(dt float64) error {
	if dt <= 0 {
		return control.ErrInvalidTimestep
	}
	if s.paused {
		return nil
	}

	e := AngularError(s.Desired, s.heading)

	out, err := s.ctrl.Compute(e, dt)
	if err != nil {
		return err
	}

	rate := clamp(out, -s.maxRate, s.maxRate)
	s.heading += rate * dt
	s.elapsed += dt

	s.history = append(s.history, Sample{
		Time:    s.elapsed,
		Error:   e,
		Output:  out,
		Heading: s.heading,
		Desired: s.Desired,
	})
	if len(s.history) > s.histCap {
		s.history = s.history[1:]
	}

	return nil
}

// Reset restores heading, elapsed time, history, and controller memory to
// their initial values. The desired heading and gains are user-set tuning
// and survive a reset.
func (s *Simulation) Reset() {
	s.heading = s.initial
	s.elapsed = 0
	s.history = s.history[:0]
	s.ctrl.Reset()
}

func (s *Simulation) SetPaused(paused bool) { s.paused = paused }
func (s *Simulation) Paused() bool          { return s.paused }

func (s *Simulation) Heading() float64 { return s.heading }
func (s *Simulation) Elapsed() float64 { return s.elapsed }

// Controller exposes the PID for live tuning and term display.
func (s *Simulation) Controller() *control.PID { return s.ctrl }

// History returns the retained samples, oldest first. The slice is owned by
// the simulation; callers read, they do not append.
func (s *Simulation) History() []Sample { return s.history }

// Last returns the most recent sample, if any tick has run since reset.
func (s *Simulation) Last() (Sample, bool) {
	if len(s.history) == 0 {
		return Sample{}, false
	}
	return s.history[len(s.history)-1], true
}
