// Package provider abstracts where hitter profiles come from. The engine
// only ever sees the Source interface; the concrete implementations here
// cover a static in-memory slice and a JSON file on disk.
package provider

import (
	"context"
	"sort"
	"strings"

	"github.com/parkfit/parkfit/internal/domain/model"
)

// Query narrows which profiles a Source returns. Zero values mean "no
// constraint" except Year, which sources may use to select a season.
type Query struct {
	// Year selects the season the profiles were built from.
	Year int `json:"year"`

	// MinPA drops hitters below a plate-appearance floor.
	MinPA int `json:"min_pa"`

	// NameFilter keeps only hitters whose name contains the filter,
	// case-insensitively.
	NameFilter string `json:"name_filter"`

	// TopN caps the number of profiles returned, applied after filtering
	// and ordering by plate appearances descending.
	TopN int `json:"top_n"`
}

// Source yields hitter profiles for a query.
type Source interface {
	// Profiles returns the profiles matching q, ordered by plate
	// appearances descending then id ascending.
	Profiles(ctx context.Context, q Query) ([]model.HitterProfile, error)
}

// Filter applies q to a profile slice. Shared by the concrete sources so
// query semantics cannot drift between them.
func Filter(profiles []model.HitterProfile, q Query) []model.HitterProfile {
	out := make([]model.HitterProfile, 0, len(profiles))
	needle := strings.ToLower(q.NameFilter)
	for _, p := range profiles {
		if q.MinPA > 0 && p.PlateAppearances < q.MinPA {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PlateAppearances != out[j].PlateAppearances {
			return out[i].PlateAppearances > out[j].PlateAppearances
		}
		return out[i].ID < out[j].ID
	})
	if q.TopN > 0 && len(out) > q.TopN {
		out = out[:q.TopN]
	}
	return out
}
