package cmn

import (
	"fmt"
	"strings"
	"time"
)

// Metric the elapsed time of one generation phase
type Metric struct {
	Name        string
	Description string
	Duration    time.Duration
	started     time.Time
}

// Stop records the time elapsed since the metric was started. Stopping a metric that never started keeps its
// duration.
func (m *Metric) Stop() time.Duration {
	if !m.started.IsZero() {
		m.Duration = time.Since(m.started)
		m.started = time.Time{}
	}
	return m.Duration
}

// Timing the phases of one generation, in the order they started.
//
// String uses the Server-Timing header syntax (https://www.w3.org/TR/server-timing/), logged as a single attribute.
type Timing struct {
	Metrics []*Metric
}

// Start begins a new phase
func (t *Timing) Start(name string, description string) *Metric {
	metric := &Metric{Name: name, Description: description, started: time.Now()}
	t.Metrics = append(t.Metrics, metric)
	return metric
}

// Total sum of the stopped phases
func (t *Timing) Total() time.Duration {
	var total time.Duration
	for _, metric := range t.Metrics {
		total += metric.Duration
	}
	return total
}

// String e.g. `build;dur=1.234, render;dur=0.056;desc="go"`
func (t *Timing) String() string {
	parts := make([]string, 0, len(t.Metrics))
	for _, metric := range t.Metrics {
		name := strings.TrimSpace(metric.Name)
		if name == "" {
			continue
		}
		part := name
		if metric.Duration > 0 {
			part += fmt.Sprintf(";dur=%.3f", float64(metric.Duration.Microseconds())/1000)
		}
		if description := strings.ReplaceAll(strings.TrimSpace(metric.Description), `"`, ""); description != "" {
			part += `;desc="` + description + `"`
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}
