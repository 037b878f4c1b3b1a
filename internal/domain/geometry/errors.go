package geometry

import "errors"

// Sentinel kinds for geometry errors.
var (
	ErrAngleOutOfRange = errors.New("spray angle outside fair territory")
)
