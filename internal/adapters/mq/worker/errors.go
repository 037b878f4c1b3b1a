package worker

import "errors"

// Sentinel kinds for worker outcomes.
var (
	// ErrJobAbandoned marks a job whose batch deadline expired before a
	// worker picked it up.
	ErrJobAbandoned = errors.New("job abandoned: deadline exceeded")
)
