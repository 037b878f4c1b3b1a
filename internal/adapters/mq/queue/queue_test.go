package queue_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/parkfit/parkfit/internal/adapters/mq/queue"
	"github.com/parkfit/parkfit/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func job(hitterID, stadiumID string) queue.Job {
	return queue.Job{
		RunID:   "run-1",
		Hitter:  model.HitterProfile{ID: hitterID, Name: hitterID},
		Stadium: model.StadiumModel{ID: stadiumID},
	}
}

func TestInMemoryQueue(t *testing.T) {
	Convey("Given an in-memory queue", t, func() {
		ctx := context.Background()

		Convey("jobs round-trip in order", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(10))
			So(q.Enqueue(ctx, job("h1", "NYY")), ShouldBeTrue)
			So(q.Enqueue(ctx, job("h1", "BOS")), ShouldBeTrue)
			So(q.Len(ctx), ShouldEqual, 2)

			So(q.Close(), ShouldBeNil)
			ch := q.Dequeue(ctx)
			first := <-ch
			second := <-ch
			So(first.Stadium.ID, ShouldEqual, "NYY")
			So(second.Stadium.ID, ShouldEqual, "BOS")

			_, open := <-ch
			So(open, ShouldBeFalse)
		})

		Convey("a full queue rejects enqueues without blocking", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(2), queue.WithBufferSize(2))
			So(q.Enqueue(ctx, job("h1", "NYY")), ShouldBeTrue)
			So(q.Enqueue(ctx, job("h1", "BOS")), ShouldBeTrue)
			So(q.Enqueue(ctx, job("h1", "SEA")), ShouldBeFalse)
			So(q.Len(ctx), ShouldEqual, 2)
		})

		Convey("a closed queue rejects enqueues", func() {
			q := queue.NewInMemoryQueue()
			So(q.Close(), ShouldBeNil)
			So(q.IsClosed(), ShouldBeTrue)
			So(q.Enqueue(ctx, job("h1", "NYY")), ShouldBeFalse)

			Convey("and closing again is a no-op", func() {
				So(q.Close(), ShouldBeNil)
			})
		})

		Convey("dequeue stops when the consumer context is cancelled", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(10))
			So(q.Enqueue(ctx, job("h1", "NYY")), ShouldBeTrue)

			consumeCtx, cancel := context.WithCancel(ctx)
			ch := q.Dequeue(consumeCtx)
			<-ch
			cancel()

			select {
			case _, open := <-ch:
				So(open, ShouldBeFalse)
			case <-time.After(time.Second):
				t.Fatal("dequeue channel did not close after cancel")
			}
		})

		Convey("many producers can enqueue concurrently", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(1000))
			done := make(chan bool, 100)
			for i := 0; i < 100; i++ {
				go func(i int) {
					done <- q.Enqueue(ctx, job(fmt.Sprintf("h%d", i), "NYY"))
				}(i)
			}
			for i := 0; i < 100; i++ {
				So(<-done, ShouldBeTrue)
			}
			So(q.Len(ctx), ShouldEqual, 100)
		})
	})
}
