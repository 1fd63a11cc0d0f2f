package control

import "errors"

// ErrInvalidTimestep indicates a non-positive dt. Rejecting it outright is
// safer than corrupting integral/derivative memory with a division by zero
// or negative accumulation.
var ErrInvalidTimestep = errors.New("control: timestep must be positive")
