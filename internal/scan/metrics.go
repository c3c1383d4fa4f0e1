package scan

import "github.com/prometheus/client_golang/prometheus"

var (
	// scansTotal counts processed decode events by dispatcher mode,
	// assigned content type, and dispatch outcome. Suppressed drops are
	// counted separately to keep the content_type label meaningful.
	scansTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qrscan_scans_total",
			Help: "Total number of dispatched scans.",
		},
		[]string{"mode", "content_type", "outcome"},
	)

	// suppressedDrops counts decode events dropped inside the
	// suppression window (no classification, no history entry).
	suppressedDrops = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qrscan_suppressed_drops_total",
			Help: "Decode events dropped while the dispatcher was suppressed.",
		},
		[]string{"mode"},
	)
)

func init() {
	prometheus.MustRegister(scansTotal, suppressedDrops)
}
