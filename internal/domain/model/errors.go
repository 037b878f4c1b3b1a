package model

import "errors"

// Sentinel kinds for model validation errors.
var (
	ErrInvalidStadium = errors.New("invalid stadium model")
)
