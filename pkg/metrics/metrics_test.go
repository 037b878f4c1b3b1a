package metrics_test

import (
	"testing"

	"github.com/parkfit/parkfit/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetrics(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("recorders do not panic", func() {
			So(func() {
				metrics.RecordPairScored()
				metrics.RecordHitterSkipped()
				metrics.RecordEventsExcluded(3)
				metrics.RecordScoringError()
				metrics.RecordScoringLatency(1.5)
				metrics.UpdateResultCount(30)
				metrics.UpdateQueueSize(5)
				metrics.UpdateQueueCapacity(100)
				metrics.UpdateQueueUtilization(0.05)
				metrics.RecordQueueEnqueue()
				metrics.RecordQueueDequeue()
				metrics.RecordQueueEnqueueError()
				metrics.UpdateWorkerCount(8)
				metrics.RecordWorkerProcessingLatency(2.0)
				metrics.RecordWorkerError()
				metrics.RecordHTTPRequest("results", "GET", "200")
				metrics.RecordHTTPRequestDuration("results", "GET", 0.8)
			}, ShouldNotPanic)
		})

		Convey("the custom registry is gatherable", func() {
			families, err := metrics.GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
