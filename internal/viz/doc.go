// Package viz is the terminal dashboard for the heading simulation: a
// bubbletea program that ticks the simulation at a fixed cadence and renders
// a compass dial, error/output strip charts, and live gain tuning.
//
// The simulation itself has no notion of real time; this package is the
// periodic driver.
package viz
