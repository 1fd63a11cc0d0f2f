// Package control implements the PID heading controller.
//
// The controller is a pure control law: it consumes an error signal and an
// elapsed timestep and produces an unbounded output. Physical turn-rate
// limits are applied by the simulation, not here, so saturation stays
// visible in the recorded output.
//
//	pid := control.NewPID(1.0, 0.0, 0.1) // Kp, Ki, Kd
//	u, err := pid.Compute(errDeg, 0.1)
//
// Gains are exported fields and may be mutated between Compute calls for
// live tuning.
package control
