package logmodule

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

// StatsReporter is a tally reporter writing every flushed metric as a
// debug log entry.
type StatsReporter struct {
	entry *log.Entry
}

func NewStatsReporter(prefix string) *StatsReporter {
	return &StatsReporter{entry: log.WithField("prefix", prefix)}
}

func (r *StatsReporter) ReportCounter(name string, tags map[string]string, value int64) {
	r.entry.WithField("tags", tags).Debugf("counter %s: %d", name, value)
}

func (r *StatsReporter) ReportGauge(name string, tags map[string]string, value float64) {
	r.entry.WithField("tags", tags).Debugf("gauge %s: %f", name, value)
}

func (r *StatsReporter) ReportTimer(name string, tags map[string]string, interval time.Duration) {
	r.entry.WithField("tags", tags).Debugf("timer %s: %s", name, interval)
}

func (r *StatsReporter) ReportHistogramValueSamples(name string, tags map[string]string, buckets tally.Buckets, bucketLowerBound, bucketUpperBound float64, samples int64) {
	r.entry.WithField("tags", tags).Debugf("histogram %s [%f, %f]: %d", name, bucketLowerBound, bucketUpperBound, samples)
}

func (r *StatsReporter) ReportHistogramDurationSamples(name string, tags map[string]string, buckets tally.Buckets, bucketLowerBound, bucketUpperBound time.Duration, samples int64) {
	r.entry.WithField("tags", tags).Debugf("histogram %s [%s, %s]: %d", name, bucketLowerBound, bucketUpperBound, samples)
}

func (r *StatsReporter) Capabilities() tally.Capabilities {
	return r
}

func (r *StatsReporter) Reporting() bool {
	return true
}

func (r *StatsReporter) Tagging() bool {
	return true
}

func (r *StatsReporter) Flush() {}
