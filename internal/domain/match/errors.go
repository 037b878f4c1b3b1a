package match

import "errors"

// Sentinel kinds for pair evaluation errors.
var (
	ErrEmptyProfile = errors.New("hitter profile has no batted-ball events")
)
