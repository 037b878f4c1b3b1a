// Package stadiums holds the static table of the 30 MLB ballparks: published
// fence anchors, wall heights, park factors and altitude. The table is
// loaded once at startup and passed explicitly into the scoring paths,
// never read as ambient global state.
package stadiums

import (
	"fmt"
	"sort"

	"github.com/parkfit/parkfit/internal/domain/model"
)

const defaultWall = 8.0

var table = []model.StadiumModel{
	{ID: "ARI", Name: "Chase Field", Team: "ARI", City: "Phoenix", LeftField: 330, LeftCenter: 374, CenterField: 407, RightCenter: 374, RightField: 335, LeftFieldWall: defaultWall, CenterFieldWall: 25, RightFieldWall: defaultWall, ParkFactor: 1.05},
	{ID: "ATL", Name: "Truist Park", Team: "ATL", City: "Atlanta", LeftField: 335, LeftCenter: 380, CenterField: 400, RightCenter: 375, RightField: 325, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 1.01},
	{ID: "BAL", Name: "Oriole Park at Camden Yards", Team: "BAL", City: "Baltimore", LeftField: 333, LeftCenter: 364, CenterField: 400, RightCenter: 373, RightField: 318, LeftFieldWall: 13, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 1.05},
	{ID: "BOS", Name: "Fenway Park", Team: "BOS", City: "Boston", LeftField: 310, LeftCenter: 379, CenterField: 390, RightCenter: 420, RightField: 302, LeftFieldWall: 37, CenterFieldWall: 17, RightFieldWall: 3, ParkFactor: 1.08},
	{ID: "CHC", Name: "Wrigley Field", Team: "CHC", City: "Chicago", LeftField: 355, LeftCenter: 368, CenterField: 400, RightCenter: 368, RightField: 353, LeftFieldWall: 11, CenterFieldWall: 11, RightFieldWall: 11, ParkFactor: 1.02},
	{ID: "CIN", Name: "Great American Ball Park", Team: "CIN", City: "Cincinnati", LeftField: 328, LeftCenter: 379, CenterField: 404, RightCenter: 370, RightField: 325, LeftFieldWall: 12, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 1.10},
	{ID: "CLE", Name: "Progressive Field", Team: "CLE", City: "Cleveland", LeftField: 325, LeftCenter: 370, CenterField: 400, RightCenter: 375, RightField: 325, LeftFieldWall: 19, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 0.98},
	{ID: "COL", Name: "Coors Field", Team: "COL", City: "Denver", LeftField: 347, LeftCenter: 390, CenterField: 415, RightCenter: 375, RightField: 350, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: 14, ParkFactor: 1.30, Altitude: 5280},
	{ID: "CWS", Name: "Guaranteed Rate Field", Team: "CWS", City: "Chicago", LeftField: 330, LeftCenter: 375, CenterField: 400, RightCenter: 375, RightField: 335, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 1.03},
	{ID: "DET", Name: "Comerica Park", Team: "DET", City: "Detroit", LeftField: 345, LeftCenter: 370, CenterField: 420, RightCenter: 365, RightField: 330, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 0.96},
	{ID: "HOU", Name: "Minute Maid Park", Team: "HOU", City: "Houston", LeftField: 315, LeftCenter: 362, CenterField: 409, RightCenter: 373, RightField: 326, LeftFieldWall: 19, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 1.04},
	{ID: "KC", Name: "Kauffman Stadium", Team: "KC", City: "Kansas City", LeftField: 330, LeftCenter: 387, CenterField: 410, RightCenter: 387, RightField: 330, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 0.97},
	{ID: "LAA", Name: "Angel Stadium", Team: "LAA", City: "Anaheim", LeftField: 330, LeftCenter: 382, CenterField: 400, RightCenter: 365, RightField: 330, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: 18, ParkFactor: 0.98},
	{ID: "LAD", Name: "Dodger Stadium", Team: "LAD", City: "Los Angeles", LeftField: 330, LeftCenter: 368, CenterField: 395, RightCenter: 368, RightField: 330, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 0.97},
	{ID: "MIA", Name: "loanDepot park", Team: "MIA", City: "Miami", LeftField: 340, LeftCenter: 384, CenterField: 407, RightCenter: 392, RightField: 335, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 0.94},
	{ID: "MIL", Name: "American Family Field", Team: "MIL", City: "Milwaukee", LeftField: 344, LeftCenter: 370, CenterField: 400, RightCenter: 374, RightField: 345, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 1.00},
	{ID: "MIN", Name: "Target Field", Team: "MIN", City: "Minneapolis", LeftField: 339, LeftCenter: 377, CenterField: 404, RightCenter: 367, RightField: 328, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: 23, ParkFactor: 0.99},
	{ID: "NYM", Name: "Citi Field", Team: "NYM", City: "New York", LeftField: 335, LeftCenter: 378, CenterField: 408, RightCenter: 415, RightField: 330, LeftFieldWall: 12, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 0.93},
	{ID: "NYY", Name: "Yankee Stadium", Team: "NYY", City: "New York", LeftField: 318, LeftCenter: 399, CenterField: 408, RightCenter: 385, RightField: 314, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 0.95},
	{ID: "OAK", Name: "Oakland Coliseum", Team: "OAK", City: "Oakland", LeftField: 330, LeftCenter: 362, CenterField: 400, RightCenter: 362, RightField: 330, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 0.92},
	{ID: "PHI", Name: "Citizens Bank Park", Team: "PHI", City: "Philadelphia", LeftField: 329, LeftCenter: 374, CenterField: 401, RightCenter: 369, RightField: 330, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: 13, ParkFactor: 1.05},
	{ID: "PIT", Name: "PNC Park", Team: "PIT", City: "Pittsburgh", LeftField: 325, LeftCenter: 389, CenterField: 399, RightCenter: 375, RightField: 320, LeftFieldWall: 6, CenterFieldWall: 10, RightFieldWall: 21, ParkFactor: 0.96},
	{ID: "SD", Name: "Petco Park", Team: "SD", City: "San Diego", LeftField: 334, LeftCenter: 378, CenterField: 396, RightCenter: 387, RightField: 322, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 0.88},
	{ID: "SEA", Name: "T-Mobile Park", Team: "SEA", City: "Seattle", LeftField: 331, LeftCenter: 390, CenterField: 401, RightCenter: 387, RightField: 326, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 0.90},
	{ID: "SF", Name: "Oracle Park", Team: "SF", City: "San Francisco", LeftField: 339, LeftCenter: 364, CenterField: 399, RightCenter: 421, RightField: 309, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: 24, ParkFactor: 0.89},
	{ID: "STL", Name: "Busch Stadium", Team: "STL", City: "St. Louis", LeftField: 336, LeftCenter: 375, CenterField: 400, RightCenter: 375, RightField: 335, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 0.98},
	{ID: "TB", Name: "Tropicana Field", Team: "TB", City: "St. Petersburg", LeftField: 315, LeftCenter: 370, CenterField: 404, RightCenter: 370, RightField: 322, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 0.92},
	{ID: "TEX", Name: "Globe Life Field", Team: "TEX", City: "Arlington", LeftField: 332, LeftCenter: 390, CenterField: 400, RightCenter: 377, RightField: 325, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: defaultWall, ParkFactor: 1.06},
	{ID: "TOR", Name: "Rogers Centre", Team: "TOR", City: "Toronto", LeftField: 328, LeftCenter: 375, CenterField: 400, RightCenter: 375, RightField: 328, LeftFieldWall: 10, CenterFieldWall: 10, RightFieldWall: 10, ParkFactor: 1.02},
	{ID: "WSH", Name: "Nationals Park", Team: "WSH", City: "Washington", LeftField: 336, LeftCenter: 377, CenterField: 402, RightCenter: 370, RightField: 335, LeftFieldWall: defaultWall, CenterFieldWall: defaultWall, RightFieldWall: 14, ParkFactor: 0.99},
}

// Load returns the full stadium table, validated, sorted by id. Every entry
// is a copy; callers may not mutate the table through it.
func Load() ([]model.StadiumModel, error) {
	out := make([]model.StadiumModel, len(table))
	copy(out, table)
	for _, s := range out {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("stadium table: %w", err)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ByID returns the stadium with the given id.
func ByID(id string) (model.StadiumModel, error) {
	for _, s := range table {
		if s.ID == id {
			return s, nil
		}
	}
	return model.StadiumModel{}, fmt.Errorf("%w: %s", ErrUnknownStadium, id)
}
