// Package types contains read shapes shared between the service, the result
// store and the HTTP API.
package types

// StadiumRank is one row of a hitter's best-park ranking.
type StadiumRank struct {
	Rank        int     `json:"rank"`
	StadiumID   string  `json:"stadium_id"`
	StadiumName string  `json:"stadium_name"`
	Team        string  `json:"team"`
	Score       float64 `json:"score"`
}

// HitterRank is one row of a stadium's best-hitter ranking.
type HitterRank struct {
	Rank       int     `json:"rank"`
	HitterID   string  `json:"hitter_id"`
	HitterName string  `json:"hitter_name"`
	Score      float64 `json:"score"`
}

// StadiumAverage summarizes how a park scored across all hitters in a batch.
type StadiumAverage struct {
	StadiumID   string  `json:"stadium_id"`
	StadiumName string  `json:"stadium_name"`
	Team        string  `json:"team"`
	ParkFactor  float64 `json:"park_factor"`
	Hitters     int     `json:"hitters"`
	MeanScore   float64 `json:"mean_score"`
}

// RunSummary reports what a batch run did. Every skipped hitter and excluded
// event is counted here; nothing is dropped silently.
type RunSummary struct {
	RunID          string `json:"run_id"`
	Hitters        int    `json:"hitters"`
	Stadiums       int    `json:"stadiums"`
	PairsSubmitted int    `json:"pairs_submitted"`
	PairsScored    int    `json:"pairs_scored"`
	PairsFailed    int    `json:"pairs_failed"`
	PairsAbandoned int    `json:"pairs_abandoned"`
	SkippedHitters int    `json:"skipped_hitters"`
	ExcludedEvents int    `json:"excluded_events"`
}
