package provider_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/parkfit/parkfit/internal/domain/model"
	"github.com/parkfit/parkfit/internal/provider"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleProfiles() []model.HitterProfile {
	ev := func(v float64) model.BattedBallEvent {
		return model.BattedBallEvent{ExitVelocity: v, LaunchAngle: 15}
	}
	return []model.HitterProfile{
		{ID: "h1", Name: "Aaron Judge", PlateAppearances: 650, Events: []model.BattedBallEvent{ev(108)}},
		{ID: "h2", Name: "Luis Arraez", PlateAppearances: 610, Events: []model.BattedBallEvent{ev(88)}},
		{ID: "h3", Name: "Jose Altuve", PlateAppearances: 420, Events: []model.BattedBallEvent{ev(92)}},
	}
}

func TestStaticSource(t *testing.T) {
	Convey("Given a static source", t, func() {
		src := provider.NewStaticSource(sampleProfiles())
		ctx := context.Background()

		Convey("an empty query returns everything ordered by PA descending", func() {
			got, err := src.Profiles(ctx, provider.Query{})
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 3)
			So(got[0].ID, ShouldEqual, "h1")
			So(got[2].ID, ShouldEqual, "h3")
		})

		Convey("MinPA drops hitters below the floor", func() {
			got, err := src.Profiles(ctx, provider.Query{MinPA: 500})
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 2)
		})

		Convey("NameFilter matches case-insensitively on substrings", func() {
			got, err := src.Profiles(ctx, provider.Query{NameFilter: "arr"})
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 1)
			So(got[0].Name, ShouldEqual, "Luis Arraez")
		})

		Convey("TopN caps the result after ordering", func() {
			got, err := src.Profiles(ctx, provider.Query{TopN: 1})
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 1)
			So(got[0].ID, ShouldEqual, "h1")
		})

		Convey("a cancelled context short-circuits", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := src.Profiles(cancelled, provider.Query{})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestFileSource(t *testing.T) {
	Convey("Given a JSON profile file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "profiles.json")
		raw, err := json.Marshal(sampleProfiles())
		So(err, ShouldBeNil)
		So(os.WriteFile(path, raw, 0o600), ShouldBeNil)

		Convey("profiles round-trip through the file", func() {
			src := provider.NewFileSource(path)
			got, err := src.Profiles(context.Background(), provider.Query{})
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 3)
			So(got[0].Events, ShouldHaveLength, 1)
			So(got[0].Events[0].ExitVelocity, ShouldEqual, 108)
		})

		Convey("a missing file reports a load error", func() {
			src := provider.NewFileSource(filepath.Join(dir, "nope.json"))
			_, err := src.Profiles(context.Background(), provider.Query{})
			So(err, ShouldWrap, provider.ErrProfileLoad)
		})

		Convey("malformed JSON reports a load error", func() {
			bad := filepath.Join(dir, "bad.json")
			So(os.WriteFile(bad, []byte("{not json"), 0o600), ShouldBeNil)
			src := provider.NewFileSource(bad)
			_, err := src.Profiles(context.Background(), provider.Query{})
			So(err, ShouldWrap, provider.ErrProfileLoad)
		})
	})
}
