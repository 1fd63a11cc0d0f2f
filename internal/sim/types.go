package sim

// Physical and buffer defaults. MaxTurnRate is an actuator limit of the
// vehicle, independent of controller gains.
const (
	DefaultMaxTurnRate = 45.0 // degrees/second
	DefaultHistoryCap  = 500
	DefaultDt          = 0.1 // seconds, design cadence of the external driver
)

// Sample is one tick of recorded telemetry. Output is the pre-clamp
// controller output so saturation against the turn-rate limit stays
// visible in the plots.
type Sample struct {
	Time    float64
	Error   float64
	Output  float64
	Heading float64
	Desired float64
}

type Config struct {
	InitialHeading float64
	DesiredHeading float64
	MaxTurnRate    float64
	HistoryCap     int
}

func DefaultConfig() Config {
	return Config{
		InitialHeading: 0,
		DesiredHeading: 0,
		MaxTurnRate:    DefaultMaxTurnRate,
		HistoryCap:     DefaultHistoryCap,
	}
}

// Metric observes the telemetry stream of a run and reduces it to a single
// figure of merit.
type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
