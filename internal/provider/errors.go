package provider

import "errors"

// Sentinel kinds for profile sources.
var (
	ErrProfileLoad = errors.New("profile load failed")
)
