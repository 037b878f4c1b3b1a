// Package export flattens match results into CSV with a fixed column
// order, so bulk exports stay diffable across runs.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/parkfit/parkfit/internal/domain/model"
)

// Header is the fixed CSV column order. Appending columns is fine;
// reordering breaks downstream consumers.
var Header = []string{
	"hitter_id",
	"hitter_name",
	"stadium_id",
	"stadium_name",
	"team",
	"left_field",
	"center_field",
	"right_field",
	"park_factor",
	"exit_velocity_score",
	"hard_hit_score",
	"distance_score",
	"overall_score",
	"xba",
	"xslg",
	"xops",
	"hr_rate",
	"events_used",
	"events_excluded",
}

// WriteCSV writes results to w with the fixed header row.
func WriteCSV(w io.Writer, results []model.MatchResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i := range results {
		if err := cw.Write(row(&results[i])); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// WriteFile writes results to a CSV file at path.
func WriteFile(path string, results []model.MatchResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer f.Close()
	return WriteCSV(f, results)
}

func row(r *model.MatchResult) []string {
	return []string{
		r.HitterID,
		r.HitterName,
		r.StadiumID,
		r.StadiumName,
		r.Team,
		feet(r.LeftField),
		feet(r.CenterField),
		feet(r.RightField),
		strconv.FormatFloat(r.ParkFactor, 'f', 2, 64),
		score(r.ExitVelocityScore),
		score(r.HardHitScore),
		score(r.DistanceScore),
		score(r.OverallScore),
		rate(r.XBA),
		rate(r.XSLG),
		rate(r.XOPS),
		rate(r.HomeRunRate),
		strconv.Itoa(r.EventsUsed),
		strconv.Itoa(r.EventsExcluded),
	}
}

func feet(v float64) string  { return strconv.FormatFloat(v, 'f', 0, 64) }
func score(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
func rate(v float64) string  { return strconv.FormatFloat(v, 'f', 3, 64) }
