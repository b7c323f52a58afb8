package bench

import "errors"

// ErrNoIterations indicates Run was given a non-positive iteration count.
var ErrNoIterations = errors.New("bench: iterations must be positive")
