package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// writeMetrics prints every counter in reg as name{labels} value, sorted.
func writeMetrics(w io.Writer, reg *prometheus.Registry) {
	if reg == nil {
		return
	}
	families, err := reg.Gather()
	if err != nil {
		_, _ = fmt.Fprintf(w, "gather metrics: %v\n", err)
		return
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.Counter == nil {
				continue
			}
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		_, _ = fmt.Fprintln(w, l)
	}
}
