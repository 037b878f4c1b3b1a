// Package model contains domain types passed between layers.
package model

import "fmt"

// Fence anchor angles in degrees. Spray angle 0 points at dead center;
// negative angles toward left field, positive toward right field.
const (
	AngleLeftField   = -45.0
	AngleLeftCenter  = -22.5
	AngleCenterField = 0.0
	AngleRightCenter = 22.5
	AngleRightField  = 45.0
)

// StadiumModel describes a ballpark: five published fence anchors, wall
// heights, and a scalar park factor (1.0 = neutral offensive environment).
type StadiumModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team string `json:"team"`
	City string `json:"city,omitempty"`

	// Fence distances in feet at the five anchor angles.
	LeftField   float64 `json:"left_field"`
	LeftCenter  float64 `json:"left_center"`
	CenterField float64 `json:"center_field"`
	RightCenter float64 `json:"right_center"`
	RightField  float64 `json:"right_field"`

	// Wall heights in feet at left, center and right field.
	LeftFieldWall   float64 `json:"left_field_wall"`
	CenterFieldWall float64 `json:"center_field_wall"`
	RightFieldWall  float64 `json:"right_field_wall"`

	ParkFactor float64 `json:"park_factor"`
	Altitude   float64 `json:"altitude"`
}

// Validate checks the invariants the scoring core relies on: a positive park
// factor and a fence contour defined by positive distances at every anchor.
// A stadium failing validation is fatal for its computations and must never
// be silently defaulted.
func (s StadiumModel) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidStadium)
	}
	if s.ParkFactor <= 0 {
		return fmt.Errorf("%w: %s park factor %.3f must be positive", ErrInvalidStadium, s.ID, s.ParkFactor)
	}
	anchors := []struct {
		name string
		dist float64
	}{
		{"left_field", s.LeftField},
		{"left_center", s.LeftCenter},
		{"center_field", s.CenterField},
		{"right_center", s.RightCenter},
		{"right_field", s.RightField},
	}
	for _, a := range anchors {
		if a.dist <= 0 {
			return fmt.Errorf("%w: %s fence undefined at %s", ErrInvalidStadium, s.ID, a.name)
		}
	}
	return nil
}
