// Package sim holds the discrete-time heading simulation for a skid-steer
// vehicle: shortest-path angular error, PID-commanded turn rate clamped to
// the physical actuator limit, and a bounded FIFO telemetry buffer.
//
// The package is pure arithmetic over reals: no I/O, no goroutines, no
// timers. Driving it in real time is the presentation layer's job.
package sim
