// Package geometry resolves batted-ball landing points against a stadium's
// fence contour.
package geometry

import (
	"fmt"

	"github.com/parkfit/parkfit/internal/domain/model"
)

// Classification is the field-relative outcome of a batted ball.
type Classification string

const (
	Foul    Classification = "FOUL"
	InPark  Classification = "IN_PARK"
	HomeRun Classification = "HOME_RUN"
)

// Fair territory spans [-45, +45] degrees of spray angle, inclusive on both
// boundaries.
const (
	MinFairAngle = -45.0
	MaxFairAngle = 45.0
)

// Simplified clearance policy: a ball that reaches the fence clears it when
// its launch angle falls in [10, 50] degrees, regardless of wall height.
// Both ends are inclusive, as is the distance-equals-fence boundary.
const (
	minCarryLaunchAngle = 10.0
	maxCarryLaunchAngle = 50.0
)

// fenceAnchor pairs an anchor angle with an accessor into the stadium model.
type fenceAnchor struct {
	angle float64
	dist  func(model.StadiumModel) float64
}

var fenceAnchors = []fenceAnchor{
	{model.AngleLeftField, func(s model.StadiumModel) float64 { return s.LeftField }},
	{model.AngleLeftCenter, func(s model.StadiumModel) float64 { return s.LeftCenter }},
	{model.AngleCenterField, func(s model.StadiumModel) float64 { return s.CenterField }},
	{model.AngleRightCenter, func(s model.StadiumModel) float64 { return s.RightCenter }},
	{model.AngleRightField, func(s model.StadiumModel) float64 { return s.RightField }},
}

// FenceDistance returns the fence distance at the given spray angle,
// linearly interpolated between the stadium's published anchors. It is
// defined and finite for every angle in [-45, +45]; out-of-range angles
// return ErrAngleOutOfRange, never a panic.
func FenceDistance(stadium model.StadiumModel, sprayAngle float64) (float64, error) {
	if sprayAngle < MinFairAngle || sprayAngle > MaxFairAngle {
		return 0, fmt.Errorf("%w: %.1f", ErrAngleOutOfRange, sprayAngle)
	}
	for i := 0; i < len(fenceAnchors)-1; i++ {
		lo, hi := fenceAnchors[i], fenceAnchors[i+1]
		if sprayAngle <= hi.angle {
			return lerp(sprayAngle, lo.angle, hi.angle, lo.dist(stadium), hi.dist(stadium)), nil
		}
	}
	// sprayAngle == MaxFairAngle
	return fenceAnchors[len(fenceAnchors)-1].dist(stadium), nil
}

// FenceHeight returns the wall height at the given spray angle, interpolated
// between the left, center and right field wall heights.
func FenceHeight(stadium model.StadiumModel, sprayAngle float64) (float64, error) {
	if sprayAngle < MinFairAngle || sprayAngle > MaxFairAngle {
		return 0, fmt.Errorf("%w: %.1f", ErrAngleOutOfRange, sprayAngle)
	}
	if sprayAngle <= model.AngleCenterField {
		return lerp(sprayAngle, model.AngleLeftField, model.AngleCenterField,
			stadium.LeftFieldWall, stadium.CenterFieldWall), nil
	}
	return lerp(sprayAngle, model.AngleCenterField, model.AngleRightField,
		stadium.CenterFieldWall, stadium.RightFieldWall), nil
}

// Resolve classifies a batted ball's landing point against the stadium:
//   - FOUL when the spray angle is outside fair territory.
//   - HOME_RUN when the ball reaches the fence (distance >= fence distance,
//     inclusive) with a launch angle that clears it.
//   - IN_PARK otherwise.
func Resolve(stadium model.StadiumModel, sprayAngle, distance, launchAngle float64) Classification {
	if sprayAngle < MinFairAngle || sprayAngle > MaxFairAngle {
		return Foul
	}
	fence, err := FenceDistance(stadium, sprayAngle)
	if err != nil {
		// Unreachable after the range check above; classify conservatively.
		return InPark
	}
	if distance >= fence && launchAngle >= minCarryLaunchAngle && launchAngle <= maxCarryLaunchAngle {
		return HomeRun
	}
	return InPark
}

// ResolveEvent classifies a batted-ball event. The second return is false
// when the event lacks the landing data geometry needs.
func ResolveEvent(stadium model.StadiumModel, e model.BattedBallEvent) (Classification, bool) {
	if !e.GeometryEligible() {
		return "", false
	}
	return Resolve(stadium, *e.SprayAngle, *e.Distance, e.LaunchAngle), true
}

// lerp maps x in [x0, x1] linearly onto [y0, y1].
func lerp(x, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return y0
	}
	t := (x - x0) / (x1 - x0)
	return y0 + t*(y1-y0)
}
