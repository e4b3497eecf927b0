package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c9s/tastream/pkg/indicator"
)

var IndicatorValueMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "tastream_indicator_value",
		Help: "the latest value of an indicator column",
	}, []string{"indicator", "column"})

var TicksMetrics = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "tastream_ticks_total",
		Help: "number of quotes fed into the indicator set",
	})

func init() {
	prometheus.MustRegister(IndicatorValueMetrics, TicksMetrics)
}

// Observe exports the values of one row of the indicator set.
func Observe(columns []indicator.Column, row indicator.Row) {
	TicksMetrics.Inc()
	for i, column := range columns {
		if i >= len(row.Values) {
			break
		}

		IndicatorValueMetrics.With(prometheus.Labels{
			"indicator": column.Indicator,
			"column":    column.Name,
		}).Set(row.Values[i])
	}
}

// WriteTextfile writes the registered metrics in the text exposition format,
// the file can be picked up by the node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
