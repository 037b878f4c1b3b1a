package outcome_test

import (
	"testing"

	"github.com/parkfit/parkfit/internal/domain/geometry"
	"github.com/parkfit/parkfit/internal/domain/model"
	"github.com/parkfit/parkfit/internal/domain/outcome"
	. "github.com/smartystreets/goconvey/convey"
)

func testPark() model.StadiumModel {
	return model.StadiumModel{
		ID: "TST", Name: "Test Park", Team: "TST",
		LeftField: 330, LeftCenter: 375, CenterField: 400,
		RightCenter: 375, RightField: 330,
		LeftFieldWall: 8, CenterFieldWall: 8, RightFieldWall: 8,
		ParkFactor: 1.0,
	}
}

func TestDefaultSurface(t *testing.T) {
	Convey("Given the default probability surface", t, func() {
		s := outcome.DefaultSurface()

		Convey("hit probability rises with exit velocity at every launch angle", func() {
			for _, la := range []float64{-30, 0, 12, 25, 45} {
				prev := -1.0
				for ev := 50.0; ev <= 115.0; ev += 2.5 {
					p := s.HitProbability(ev, la)
					So(p, ShouldBeGreaterThanOrEqualTo, prev)
					prev = p
				}
			}
		})

		Convey("extreme launch angles score below the mid band", func() {
			mid := s.HitProbability(100, 18)
			So(s.HitProbability(100, -60), ShouldBeLessThan, mid)
			So(s.HitProbability(100, 75), ShouldBeLessThan, mid)
		})

		Convey("probabilities stay in [0, 1] and clamp beyond the grid", func() {
			for _, ev := range []float64{0, 40, 90, 130} {
				for _, la := range []float64{-120, -90, 0, 90, 120} {
					p := s.HitProbability(ev, la)
					So(p, ShouldBeGreaterThanOrEqualTo, 0)
					So(p, ShouldBeLessThanOrEqualTo, 1)
				}
			}
			So(s.HitProbability(130, 18), ShouldAlmostEqual, s.HitProbability(115, 18))
		})

		Convey("extra-base probability never exceeds hit probability", func() {
			for ev := 50.0; ev <= 115.0; ev += 5 {
				for la := -90.0; la <= 90.0; la += 10 {
					So(s.ExtraBaseProbability(ev, la), ShouldBeLessThanOrEqualTo, s.HitProbability(ev, la))
				}
			}
		})
	})
}

func TestCalculatorEvaluate(t *testing.T) {
	Convey("Given the default calculator and a test park", t, func() {
		calc := outcome.NewCalculator()
		park := testPark()

		Convey("a fence-clearing ball contributes four bases deterministically", func() {
			events := []model.BattedBallEvent{
				{ExitVelocity: 108, LaunchAngle: 27, SprayAngle: model.Float(0), Distance: model.Float(420)},
			}
			stats, outcomes := calc.Evaluate(events, park)
			So(len(outcomes), ShouldEqual, 1)
			So(outcomes[0].Classification, ShouldEqual, geometry.HomeRun)
			So(outcomes[0].HitProbability, ShouldEqual, 1.0)
			So(outcomes[0].ExpectedBases, ShouldEqual, 4.0)
			So(stats.XBA, ShouldEqual, 1.0)
			So(stats.XSLG, ShouldEqual, 4.0)
			So(stats.XOPS, ShouldEqual, 5.0)
			So(stats.HomeRunRate, ShouldEqual, 1.0)
		})

		Convey("in-park balls use the probability surface", func() {
			events := []model.BattedBallEvent{
				{ExitVelocity: 95, LaunchAngle: 12, SprayAngle: model.Float(0), Distance: model.Float(250)},
			}
			stats, outcomes := calc.Evaluate(events, park)
			So(outcomes[0].Classification, ShouldEqual, geometry.InPark)
			So(outcomes[0].HitProbability, ShouldAlmostEqual, 0.55)
			So(outcomes[0].ExpectedBases, ShouldAlmostEqual, 0.55+1.2*0.26)
			So(stats.XBA, ShouldAlmostEqual, 0.55)
			So(stats.HomeRunRate, ShouldEqual, 0)
		})

		Convey("events without landing data still feed xBA but not the HR rate", func() {
			events := []model.BattedBallEvent{
				{ExitVelocity: 95, LaunchAngle: 12},
				{ExitVelocity: 108, LaunchAngle: 27, SprayAngle: model.Float(0), Distance: model.Float(420)},
			}
			stats, outcomes := calc.Evaluate(events, park)
			So(stats.EventsUsed, ShouldEqual, 2)
			So(stats.EventsExcluded, ShouldEqual, 1)
			So(outcomes[0].Classified, ShouldBeFalse)
			So(outcomes[0].HitProbability, ShouldAlmostEqual, 0.55)
			// Only the classified event counts toward the home-run rate.
			So(stats.HomeRunRate, ShouldEqual, 1.0)
		})

		Convey("foul balls contribute nothing", func() {
			events := []model.BattedBallEvent{
				{ExitVelocity: 100, LaunchAngle: 20, SprayAngle: model.Float(48), Distance: model.Float(350)},
			}
			stats, outcomes := calc.Evaluate(events, park)
			So(outcomes[0].Classification, ShouldEqual, geometry.Foul)
			So(outcomes[0].HitProbability, ShouldEqual, 0)
			So(stats.XSLG, ShouldEqual, 0)
		})

		Convey("an empty event collection yields zero stats", func() {
			stats, outcomes := calc.Evaluate(nil, park)
			So(stats.EventsUsed, ShouldEqual, 0)
			So(outcomes, ShouldBeNil)
		})

		Convey("evaluation is deterministic across repeated calls", func() {
			events := []model.BattedBallEvent{
				{ExitVelocity: 97, LaunchAngle: 14, SprayAngle: model.Float(-12), Distance: model.Float(310)},
				{ExitVelocity: 88, LaunchAngle: 3},
			}
			a, _ := calc.Evaluate(events, park)
			b, _ := calc.Evaluate(events, park)
			So(a, ShouldResemble, b)
		})
	})
}

type flatSurface struct{ p float64 }

func (f flatSurface) HitProbability(_, _ float64) float64       { return f.p }
func (f flatSurface) ExtraBaseProbability(_, _ float64) float64 { return f.p / 2 }

func TestCalculatorWithInjectedSurface(t *testing.T) {
	Convey("Given a calculator with an injected surface", t, func() {
		calc := outcome.NewCalculator(outcome.WithSurface(flatSurface{p: 0.4}))

		Convey("the injected model drives the estimates", func() {
			stats, _ := calc.Evaluate([]model.BattedBallEvent{
				{ExitVelocity: 80, LaunchAngle: 10},
			}, testPark())
			So(stats.XBA, ShouldAlmostEqual, 0.4)
			So(stats.XSLG, ShouldAlmostEqual, 0.4+1.2*0.2)
		})
	})
}
