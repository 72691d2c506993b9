// Package metrics records scan counters for the node-exporter textfile collector.
package metrics

import (
	"emperror.dev/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/callmegreg/gh-hulud-users/internal/membership"
	"github.com/callmegreg/gh-hulud-users/internal/report"
	"github.com/callmegreg/gh-hulud-users/internal/types"
)

const namespace = "hulud"

// Recorder collects probe outcomes and report statistics for one run
type Recorder struct {
	registry    *prometheus.Registry
	probes      *prometheus.CounterVec
	resolutions *prometheus.CounterVec
	report      *prometheus.GaugeVec
	lastRun     prometheus.Gauge
}

// NewRecorder creates a recorder with its own registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		probes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "membership_probes_total",
			Help:      "Membership probes run, by tier and outcome.",
		}, []string{"tier", "outcome"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "membership_resolutions_total",
			Help:      "Resolved (organization, user) pairs, by status.",
		}, []string{"status"}),
		report: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "report",
			Help:      "Statistics of the last scan report.",
		}, []string{"stat"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last scan finished.",
		}),
	}
	r.registry.MustRegister(r.probes, r.resolutions, r.report, r.lastRun)
	return r
}

var _ membership.ProbeObserver = (*Recorder)(nil)

// ObserveProbe counts one probe outcome
func (r *Recorder) ObserveProbe(tier string, outcome membership.ProbeOutcome) {
	r.probes.WithLabelValues(tier, outcome.String()).Inc()
}

// ObserveResolution counts one resolved pair
func (r *Recorder) ObserveResolution(status types.MembershipStatus) {
	r.resolutions.WithLabelValues(string(status)).Inc()
}

// SetReportStats records the report statistics and marks the run as finished
func (r *Recorder) SetReportStats(stats report.Stats) {
	r.report.WithLabelValues("repositories").Set(float64(stats.TotalRepositories))
	r.report.WithLabelValues("users").Set(float64(stats.UniqueUsers))
	r.report.WithLabelValues("users_with_memberships").Set(float64(stats.UsersWithMemberships))
	r.report.WithLabelValues("memberships").Set(float64(stats.TotalMemberships))
	r.lastRun.SetToCurrentTime()
}

// Registry exposes the recorder's registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format
func (r *Recorder) WriteTextfile(path string) error {
	return errors.Wrap(prometheus.WriteToTextfile(path, r.registry), "failed to write metrics file")
}
