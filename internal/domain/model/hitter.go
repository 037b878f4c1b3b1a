package model

// HitterProfile is a hitter's aggregated batted-ball history for one season.
// The event collection is the source of truth; aggregates are always derived
// from it, never stored separately.
type HitterProfile struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	PlateAppearances int               `json:"plate_appearances,omitempty"`
	Events           []BattedBallEvent `json:"events"`
}

// ProfileSummary holds aggregates recomputed from the event collection.
type ProfileSummary struct {
	Events           int
	GeometryEligible int
	MeanExitVelocity float64
	HardHitRate      float64
	MeanLaunchAngle  float64
	MeanDistance     float64 // over events with a recorded distance
}

// Summary recomputes the derived aggregate metrics from the events.
func (p HitterProfile) Summary() ProfileSummary {
	s := ProfileSummary{Events: len(p.Events)}
	if len(p.Events) == 0 {
		return s
	}

	var evSum, laSum, distSum float64
	var hardHit, withDistance int
	for _, e := range p.Events {
		evSum += e.ExitVelocity
		laSum += e.LaunchAngle
		if e.HardHit() {
			hardHit++
		}
		if e.Distance != nil {
			distSum += *e.Distance
			withDistance++
		}
		if e.GeometryEligible() {
			s.GeometryEligible++
		}
	}

	n := float64(len(p.Events))
	s.MeanExitVelocity = evSum / n
	s.MeanLaunchAngle = laSum / n
	s.HardHitRate = float64(hardHit) / n
	if withDistance > 0 {
		s.MeanDistance = distSum / float64(withDistance)
	}
	return s
}
