package control

// PID maps a tracking error and a timestep into a turn-rate command,
// keeping integral and derivative memory across calls. It knows nothing
// about actuator limits; clamping is the caller's job.
type PID struct {
	Kp float64
	Ki float64
	Kd float64

	integral float64
	prevErr  float64

	lastP float64
	lastI float64
	lastD float64
}

func NewPID(kp, ki, kd float64) *PID {
	return &PID{
		Kp: kp,
		Ki: ki,
		Kd: kd,
	}
}

// Compute advances the controller by one timestep and returns the raw
// (unclamped) control output. dt must be positive; otherwise
// ErrInvalidTimestep is returned and the controller state is untouched.
func (p *PID) Compute(err, dt float64) (float64, error) {
	if dt <= 0 {
		return 0, ErrInvalidTimestep
	}

	p.integral += err * dt
	derivative := (err - p.prevErr) / dt

	p.lastP = p.Kp * err
	p.lastI = p.Ki * p.integral
	p.lastD = p.Kd * derivative

	p.prevErr = err

	return p.lastP + p.lastI + p.lastD, nil
}

// Reset clears integral and derivative state. Must be called when the
// encompassing simulation resets, otherwise integral windup leaks into
// the next run.
func (p *PID) Reset() {
	p.integral = 0
	p.prevErr = 0
	p.lastP = 0
	p.lastI = 0
	p.lastD = 0
}

// SetGains replaces all three gains at once; takes effect on the next
// Compute call.
func (p *PID) SetGains(kp, ki, kd float64) {
	p.Kp = kp
	p.Ki = ki
	p.Kd = kd
}

// Terms returns the proportional, integral, and derivative components of
// the most recent Compute call, for display.
func (p *PID) Terms() (prop, integ, deriv float64) {
	return p.lastP, p.lastI, p.lastD
}

// Integral returns the accumulated error, for windup inspection.
func (p *PID) Integral() float64 {
	return p.integral
}

// GetParams returns tunable parameters for live adjustment
func (p *PID) GetParams() map[string]float64 {
	return map[string]float64{
		"Kp": p.Kp,
		"Ki": p.Ki,
		"Kd": p.Kd,
	}
}

// SetParam adjusts a PID parameter
func (p *PID) SetParam(name string, value float64) {
	switch name {
	case "Kp":
		p.Kp = value
	case "Ki":
		p.Ki = value
	case "Kd":
		p.Kd = value
	}
}
