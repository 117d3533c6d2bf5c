// Package prometheus provides a Prometheus-based stats collector.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/flatecat/flatecat/internal/stats"
)

// Collector implements stats.Collector with a fixed set of Prometheus
// metrics, one per name defined in the stats package.
type Collector struct {
	members      prometheus.Counter
	bytesRead    prometheus.Counter
	bytesWritten prometheus.Counter
	memberTime   prometheus.Histogram
}

// Compile-time check that Collector implements stats.Collector.
var _ stats.Collector = (*Collector)(nil)

// New creates a new Prometheus collector and registers its metrics.
// If registry is nil, prometheus.DefaultRegisterer is used.
func New(registry prometheus.Registerer) (*Collector, error) {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	c := &Collector{
		members: prometheus.NewCounter(prometheus.CounterOpts{
			Name: stats.MetricMembers,
			Help: "Completed transcoded members.",
		}),
		bytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Name: stats.MetricBytesRead,
			Help: "Bytes consumed from input sources.",
		}),
		bytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: stats.MetricBytesWritten,
			Help: "Bytes written to the output sink.",
		}),
		memberTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    stats.MetricMemberSeconds,
			Help:    "Wall time per transcoded member.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	collectors := []prometheus.Collector{c.members, c.bytesRead, c.bytesWritten, c.memberTime}
	for _, m := range collectors {
		if err := registry.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// IncCounter increments the counter registered under name.
// Unknown names are ignored.
func (c *Collector) IncCounter(name string, delta int64) {
	switch name {
	case stats.MetricMembers:
		c.members.Add(float64(delta))
	case stats.MetricBytesRead:
		c.bytesRead.Add(float64(delta))
	case stats.MetricBytesWritten:
		c.bytesWritten.Add(float64(delta))
	}
}

// ObserveHistogram records a value in the histogram registered under
// name. Unknown names are ignored.
func (c *Collector) ObserveHistogram(name string, value float64) {
	if name == stats.MetricMemberSeconds {
		c.memberTime.Observe(value)
	}
}
