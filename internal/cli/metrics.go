package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// printMetrics writes one line per topic: the sections run and the time
// spent. Families are printed in the order the registry gathers them.
func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Metrics ---")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			topic := labelValue(m, "topic")
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				fmt.Fprintf(w, "  %s{topic=%q} %g\n", mf.GetName(), topic, m.GetCounter().GetValue())
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				elapsed := time.Duration(h.GetSampleSum() * float64(time.Second))
				fmt.Fprintf(w, "  %s{topic=%q} count=%d sum=%s\n", mf.GetName(), topic, h.GetSampleCount(), elapsed.Round(time.Microsecond))
			}
		}
	}
	return nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
