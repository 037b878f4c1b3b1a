package dedupe_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/parkfit/parkfit/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryDeduper(t *testing.T) {
	Convey("Given an unbounded deduper", t, func() {
		d := dedupe.NewMemoryDeduper()
		ctx := context.Background()

		Convey("a new pair key is recorded, a repeat is seen", func() {
			key := dedupe.PairKey("h1", "NYY")
			So(d.SeenAndRecord(ctx, key), ShouldBeFalse)
			So(d.SeenAndRecord(ctx, key), ShouldBeTrue)
			So(d.Size(), ShouldEqual, 1)
		})

		Convey("distinct pairs do not collide", func() {
			So(d.SeenAndRecord(ctx, dedupe.PairKey("h1", "BOS")), ShouldBeFalse)
			So(d.SeenAndRecord(ctx, dedupe.PairKey("h2", "BOS")), ShouldBeFalse)
			So(d.Size(), ShouldEqual, 2)
		})

		Convey("unrecord allows a pair to be resubmitted", func() {
			key := dedupe.PairKey("h1", "SEA")
			So(d.SeenAndRecord(ctx, key), ShouldBeFalse)
			d.Unrecord(ctx, key)
			So(d.SeenAndRecord(ctx, key), ShouldBeFalse)
		})
	})

	Convey("Given a bounded deduper", t, func() {
		d := dedupe.NewMemoryDeduper(dedupe.WithMaxSize(3))
		ctx := context.Background()

		Convey("the oldest key is evicted first", func() {
			for i := 0; i < 4; i++ {
				So(d.SeenAndRecord(ctx, dedupe.PairKey(fmt.Sprintf("h%d", i), "NYY")), ShouldBeFalse)
			}
			So(d.Size(), ShouldEqual, 3)
			// h0 was evicted and can be recorded again.
			So(d.SeenAndRecord(ctx, dedupe.PairKey("h0", "NYY")), ShouldBeFalse)
			// h2 is still tracked.
			So(d.SeenAndRecord(ctx, dedupe.PairKey("h2", "NYY")), ShouldBeTrue)
		})
	})
}
