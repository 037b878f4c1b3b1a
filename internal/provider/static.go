package provider

import (
	"context"

	"github.com/parkfit/parkfit/internal/domain/model"
)

// StaticSource serves a fixed profile slice. Used for tests and for the
// synthetic sample data path.
type StaticSource struct {
	profiles []model.HitterProfile
}

// NewStaticSource wraps profiles in a Source.
func NewStaticSource(profiles []model.HitterProfile) *StaticSource {
	return &StaticSource{profiles: profiles}
}

// Profiles returns the matching profiles.
func (s *StaticSource) Profiles(ctx context.Context, q Query) ([]model.HitterProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Filter(s.profiles, q), nil
}
