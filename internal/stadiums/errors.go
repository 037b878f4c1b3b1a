package stadiums

import "errors"

// Sentinel kinds for stadium lookups.
var (
	ErrUnknownStadium = errors.New("unknown stadium")
)
