package pathcount

import "errors"

// ErrNilGrid indicates Count was called with a nil grid.
var ErrNilGrid = errors.New("pathcount: grid must not be nil")
