package configuration

import "errors"

// Sentinel errors for configuration construction from a display form.
var (
	// ErrDuplicateID indicates a subpath id occurred more than twice in a display form.
	ErrDuplicateID = errors.New("configuration: subpath id appears more than twice")
	// ErrNegativeID indicates a negative subpath id in a display form.
	ErrNegativeID = errors.New("configuration: subpath id must be non-negative")
	// ErrInvalidDisplay indicates a display string held a non base-36 character.
	ErrInvalidDisplay = errors.New("configuration: invalid display character")
)
