package verify

import "errors"

// ErrEmptyPath indicates Check or Render was given a zero-length path.
var ErrEmptyPath = errors.New("verify: path is empty")
