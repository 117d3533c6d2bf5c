// Package stats provides a unified interface for collecting transcoder
// metrics.
package stats

// Metric names used throughout the library.
const (
	// MetricMembers counts completed transcoded members.
	MetricMembers = "flatecat_members_total"

	// Byte totals on either side of the transform.
	MetricBytesRead    = "flatecat_input_bytes_total"
	MetricBytesWritten = "flatecat_output_bytes_total"

	// MetricMemberSeconds is the wall time spent transcoding one
	// member.
	MetricMemberSeconds = "flatecat_member_duration_seconds"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
