package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted    = errors.New("service not started")
	ErrNoSource      = errors.New("no profile source configured")
	ErrUnknownHitter = errors.New("unknown hitter")
)
