package metrics

import (
	"math"

	"github.com/san-kum/skidsim/internal/sim"
)

// SettlingTime is the time of the last sample whose error magnitude exceeded
// the threshold band. Value returns -1 if the loop was still outside the
// band at the end of the run, 0 if it never left it.
type SettlingTime struct {
	threshold float64
	outsideAt float64
	lastT     float64
	outside   bool
	seen      bool
}

func NewSettlingTime(threshold float64) *SettlingTime {
	return &SettlingTime{threshold: threshold}
}

func (m *SettlingTime) Name() string {
	return "settling_time"
}

func (m *SettlingTime) Observe(s sim.Sample) {
	m.lastT = s.Time
	if math.Abs(s.Error) > m.threshold {
		m.outsideAt = s.Time
		m.outside = true
	}
	m.seen = true
}

func (m *SettlingTime) Value() float64 {
	if !m.seen || !m.outside {
		return 0
	}
	if m.outsideAt == m.lastT {
		return -1
	}
	return m.outsideAt
}

func (m *SettlingTime) Reset() {
	m.outsideAt = 0
	m.lastT = 0
	m.outside = false
	m.seen = false
}

// Overshoot is the largest error excursion past the target, in degrees.
// The sign of the first observed error defines the approach direction.
type Overshoot struct {
	sign float64
	max  float64
}

func NewOvershoot() *Overshoot {
	return &Overshoot{}
}

func (m *Overshoot) Name() string {
	return "overshoot"
}

func (m *Overshoot) Observe(s sim.Sample) {
	if m.sign == 0 && s.Error != 0 {
		if s.Error > 0 {
			m.sign = 1
		} else {
			m.sign = -1
		}
	}
	past := -m.sign * s.Error
	if past > m.max {
		m.max = past
	}
}

func (m *Overshoot) Value() float64 {
	return m.max
}

func (m *Overshoot) Reset() {
	m.sign = 0
	m.max = 0
}

// SteadyStateError is the mean error magnitude over the trailing window of
// the run.
type SteadyStateError struct {
	window []float64
	next   int
	filled bool
}

func NewSteadyStateError(window int) *SteadyStateError {
	if window <= 0 {
		window = 50
	}
	return &SteadyStateError{window: make([]float64, window)}
}

func (m *SteadyStateError) Name() string {
	return "steady_state_error"
}

func (m *SteadyStateError) Observe(s sim.Sample) {
	m.window[m.next] = math.Abs(s.Error)
	m.next++
	if m.next == len(m.window) {
		m.next = 0
		m.filled = true
	}
}

func (m *SteadyStateError) Value() float64 {
	n := len(m.window)
	if !m.filled {
		n = m.next
	}
	if n == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += m.window[i]
	}
	return sum / float64(n)
}

func (m *SteadyStateError) Reset() {
	m.next = 0
	m.filled = false
	for i := range m.window {
		m.window[i] = 0
	}
}

// Default returns the standard metric set for a heading run.
func Default() []sim.Metric {
	return []sim.Metric{
		NewControlEffort(),
		NewSettlingTime(2.0),
		NewOvershoot(),
		NewSteadyStateError(50),
	}
}
