package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/parkfit/parkfit/internal/adapters/repository"
	"github.com/parkfit/parkfit/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func result(hitterID, stadiumID string, score float64) model.MatchResult {
	return model.MatchResult{
		HitterID:    hitterID,
		HitterName:  "Hitter " + hitterID,
		StadiumID:   stadiumID,
		StadiumName: "Park " + stadiumID,
		Team:        stadiumID,
		ParkFactor:  1.0,

		OverallScore: score,
	}
}

func TestMemStore(t *testing.T) {
	Convey("Given an in-memory result store", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore()

		Convey("added results can be read back", func() {
			So(store.Add(ctx, result("h1", "NYY", 70)), ShouldBeNil)
			got, err := store.Get(ctx, "h1", "NYY")
			So(err, ShouldBeNil)
			So(got.OverallScore, ShouldEqual, 70)
			So(store.Count(ctx), ShouldEqual, 1)
		})

		Convey("re-adding a pair replaces without growing the count", func() {
			So(store.Add(ctx, result("h1", "NYY", 70)), ShouldBeNil)
			So(store.Add(ctx, result("h1", "NYY", 80)), ShouldBeNil)
			So(store.Count(ctx), ShouldEqual, 1)
			got, err := store.Get(ctx, "h1", "NYY")
			So(err, ShouldBeNil)
			So(got.OverallScore, ShouldEqual, 80)
		})

		Convey("missing pairs return ErrNotFound", func() {
			_, err := store.Get(ctx, "h1", "NYY")
			So(err, ShouldWrap, repository.ErrNotFound)
		})

		Convey("All orders by hitter id then stadium id", func() {
			So(store.Add(ctx, result("h2", "NYY", 10)), ShouldBeNil)
			So(store.Add(ctx, result("h1", "SEA", 20)), ShouldBeNil)
			So(store.Add(ctx, result("h1", "BOS", 30)), ShouldBeNil)

			all, err := store.All(ctx)
			So(err, ShouldBeNil)
			So(all, ShouldHaveLength, 3)
			So(all[0].HitterID, ShouldEqual, "h1")
			So(all[0].StadiumID, ShouldEqual, "BOS")
			So(all[1].StadiumID, ShouldEqual, "SEA")
			So(all[2].HitterID, ShouldEqual, "h2")
		})

		Convey("TopStadiums ranks by score desc with id tie-break", func() {
			So(store.Add(ctx, result("h1", "NYY", 80)), ShouldBeNil)
			So(store.Add(ctx, result("h1", "BOS", 90)), ShouldBeNil)
			So(store.Add(ctx, result("h1", "SEA", 80)), ShouldBeNil)

			ranks, err := store.TopStadiums(ctx, "h1", 10)
			So(err, ShouldBeNil)
			So(ranks, ShouldHaveLength, 3)
			So(ranks[0].StadiumID, ShouldEqual, "BOS")
			So(ranks[0].Rank, ShouldEqual, 1)
			// tie at 80: NYY before SEA.
			So(ranks[1].StadiumID, ShouldEqual, "NYY")
			So(ranks[2].StadiumID, ShouldEqual, "SEA")

			Convey("and honors the limit", func() {
				top, err := store.TopStadiums(ctx, "h1", 1)
				So(err, ShouldBeNil)
				So(top, ShouldHaveLength, 1)
				So(top[0].StadiumID, ShouldEqual, "BOS")
			})
		})

		Convey("TopStadiums for an unknown hitter fails", func() {
			_, err := store.TopStadiums(ctx, "nobody", 5)
			So(err, ShouldWrap, repository.ErrNotFound)
		})

		Convey("a non-positive limit is rejected", func() {
			_, err := store.TopStadiums(ctx, "h1", 0)
			So(err, ShouldWrap, repository.ErrInvalidLimit)
			_, err = store.TopHitters(ctx, "NYY", -1)
			So(err, ShouldWrap, repository.ErrInvalidLimit)
		})

		Convey("TopHitters ranks a park's hitters", func() {
			So(store.Add(ctx, result("h1", "NYY", 60)), ShouldBeNil)
			So(store.Add(ctx, result("h2", "NYY", 75)), ShouldBeNil)
			So(store.Add(ctx, result("h3", "BOS", 99)), ShouldBeNil)

			ranks, err := store.TopHitters(ctx, "NYY", 10)
			So(err, ShouldBeNil)
			So(ranks, ShouldHaveLength, 2)
			So(ranks[0].HitterID, ShouldEqual, "h2")
			So(ranks[1].HitterID, ShouldEqual, "h1")
		})

		Convey("StadiumAverages reports mean scores per park", func() {
			So(store.Add(ctx, result("h1", "NYY", 60)), ShouldBeNil)
			So(store.Add(ctx, result("h2", "NYY", 80)), ShouldBeNil)
			So(store.Add(ctx, result("h1", "BOS", 90)), ShouldBeNil)

			avgs, err := store.StadiumAverages(ctx)
			So(err, ShouldBeNil)
			So(avgs, ShouldHaveLength, 2)
			So(avgs[0].StadiumID, ShouldEqual, "BOS")
			So(avgs[0].MeanScore, ShouldEqual, 90)
			So(avgs[0].Hitters, ShouldEqual, 1)
			So(avgs[1].StadiumID, ShouldEqual, "NYY")
			So(avgs[1].MeanScore, ShouldEqual, 70)
			So(avgs[1].Hitters, ShouldEqual, 2)
		})

		Convey("Reset drops everything", func() {
			So(store.Add(ctx, result("h1", "NYY", 60)), ShouldBeNil)
			store.Reset(ctx)
			So(store.Count(ctx), ShouldEqual, 0)
			_, err := store.Get(ctx, "h1", "NYY")
			So(err, ShouldWrap, repository.ErrNotFound)
		})

		Convey("concurrent writers do not race", func() {
			var wg sync.WaitGroup
			stadiums := []string{"NYY", "BOS", "SEA", "COL"}
			for i := 0; i < 40; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					_ = store.Add(ctx, result("h1", stadiums[i%len(stadiums)], float64(i)))
				}(i)
			}
			wg.Wait()
			So(store.Count(ctx), ShouldEqual, len(stadiums))
		})
	})
}
