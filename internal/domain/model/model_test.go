package model_test

import (
	"testing"

	"github.com/parkfit/parkfit/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStadiumValidate(t *testing.T) {
	Convey("Given a fully populated stadium", t, func() {
		s := model.StadiumModel{
			ID: "NYY", Name: "Yankee Stadium", Team: "NYY",
			LeftField: 318, LeftCenter: 399, CenterField: 408,
			RightCenter: 385, RightField: 314,
			LeftFieldWall: 8, CenterFieldWall: 8, RightFieldWall: 8,
			ParkFactor: 0.95,
		}

		Convey("it validates cleanly", func() {
			So(s.Validate(), ShouldBeNil)
		})

		Convey("a non-positive park factor is rejected", func() {
			s.ParkFactor = 0
			So(s.Validate(), ShouldWrap, model.ErrInvalidStadium)
		})

		Convey("a missing fence anchor is rejected", func() {
			s.RightCenter = 0
			So(s.Validate(), ShouldWrap, model.ErrInvalidStadium)
		})

		Convey("a missing id is rejected", func() {
			s.ID = ""
			So(s.Validate(), ShouldWrap, model.ErrInvalidStadium)
		})
	})
}

func TestProfileSummary(t *testing.T) {
	Convey("Given a profile with mixed events", t, func() {
		p := model.HitterProfile{
			ID:   "h1",
			Name: "Test Hitter",
			Events: []model.BattedBallEvent{
				{ExitVelocity: 100, LaunchAngle: 20, SprayAngle: model.Float(0), Distance: model.Float(410)},
				{ExitVelocity: 90, LaunchAngle: 10, SprayAngle: model.Float(-20), Distance: model.Float(350)},
				{ExitVelocity: 80, LaunchAngle: -5}, // no landing data
			},
		}

		Convey("aggregates are derived from the event collection", func() {
			s := p.Summary()
			So(s.Events, ShouldEqual, 3)
			So(s.GeometryEligible, ShouldEqual, 2)
			So(s.MeanExitVelocity, ShouldAlmostEqual, 90.0)
			So(s.HardHitRate, ShouldAlmostEqual, 1.0/3.0)
			So(s.MeanLaunchAngle, ShouldAlmostEqual, 25.0/3.0)
			So(s.MeanDistance, ShouldAlmostEqual, 380.0)
		})

		Convey("an empty profile yields a zero summary", func() {
			empty := model.HitterProfile{ID: "h2"}
			s := empty.Summary()
			So(s.Events, ShouldEqual, 0)
			So(s.MeanExitVelocity, ShouldEqual, 0)
		})
	})
}

func TestBattedBallEvent(t *testing.T) {
	Convey("Given batted-ball events", t, func() {
		Convey("hard-hit threshold is inclusive at 95 mph", func() {
			So(model.BattedBallEvent{ExitVelocity: 95}.HardHit(), ShouldBeTrue)
			So(model.BattedBallEvent{ExitVelocity: 94.9}.HardHit(), ShouldBeFalse)
		})

		Convey("geometry eligibility requires both spray angle and distance", func() {
			So(model.BattedBallEvent{SprayAngle: model.Float(10)}.GeometryEligible(), ShouldBeFalse)
			So(model.BattedBallEvent{Distance: model.Float(300)}.GeometryEligible(), ShouldBeFalse)
			e := model.BattedBallEvent{SprayAngle: model.Float(10), Distance: model.Float(300)}
			So(e.GeometryEligible(), ShouldBeTrue)
		})
	})
}
