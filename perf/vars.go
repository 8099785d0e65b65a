package perf

import (
	"expvar"
	"net/http"

	"github.com/encodeous/metric"
)

var (
	ConvergeLatency = metric.NewHistogram("1m1s")
	FibRecomputes   = metric.NewCounter("10s1s")
	Invalidations   = metric.NewCounter("10s1s")
	SpansBuilt      = metric.NewCounter("10s1s")
)

func init() {
	http.Handle("/debug/metrics", metric.Handler(metric.Exposed))
	expvar.Publish("loom:FibRecomputes", FibRecomputes)
	expvar.Publish("loom:Invalidations", Invalidations)
	expvar.Publish("loom:SpansBuilt", SpansBuilt)
	expvar.Publish("loom:ConvergeLatency (µs)", ConvergeLatency)
}
