package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Collector captures counters, gauges and histograms.
type Collector interface {
	IncCounter(name string, labels map[string]string, delta float64)
	SetGauge(name string, labels map[string]string, value float64)
	ObserveHistogram(name string, labels map[string]string, value float64)
}

// Nop discards everything.
type Nop struct{}

func (Nop) IncCounter(string, map[string]string, float64)       {}
func (Nop) SetGauge(string, map[string]string, float64)         {}
func (Nop) ObserveHistogram(string, map[string]string, float64) {}

// Summary is the aggregated state of one histogram series.
type Summary struct {
	Count int
	Sum   float64
	Min   float64
	Max   float64
}

// Registry keeps every series in memory. Safe for concurrent use.
type Registry struct {
	mu         sync.Mutex
	counters   map[string]float64
	gauges     map[string]float64
	histograms map[string]Summary
}

func NewRegistry() *Registry {
	return &Registry{
		counters:   make(map[string]float64),
		gauges:     make(map[string]float64),
		histograms: make(map[string]Summary),
	}
}

func (r *Registry) IncCounter(name string, labels map[string]string, delta float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[seriesID(name, labels)] += delta
}

func (r *Registry) SetGauge(name string, labels map[string]string, value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gauges[seriesID(name, labels)] = value
}

func (r *Registry) ObserveHistogram(name string, labels map[string]string, value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := seriesID(name, labels)
	s, ok := r.histograms[id]
	if !ok || value < s.Min {
		s.Min = value
	}
	if !ok || value > s.Max {
		s.Max = value
	}
	s.Count++
	s.Sum += value
	r.histograms[id] = s
}

func (r *Registry) Counter(name string, labels map[string]string) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[seriesID(name, labels)]
}

func (r *Registry) Gauge(name string, labels map[string]string) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gauges[seriesID(name, labels)]
}

func (r *Registry) Histogram(name string, labels map[string]string) Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.histograms[seriesID(name, labels)]
}

// Dump renders all series, one per line, sorted by series id.
func (r *Registry) Dump() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]string, 0, len(r.counters)+len(r.gauges)+len(r.histograms))
	for id, v := range r.counters {
		lines = append(lines, fmt.Sprintf("%s %g", id, v))
	}
	for id, v := range r.gauges {
		lines = append(lines, fmt.Sprintf("%s %g", id, v))
	}
	for id, s := range r.histograms {
		lines = append(lines, fmt.Sprintf("%s count=%d sum=%g min=%g max=%g", id, s.Count, s.Sum, s.Min, s.Max))
	}
	sort.Strings(lines)

	return lines
}

// seriesID formats name{k="v",...} with labels sorted by key.
func seriesID(name string, labels map[string]string) string {
	if len(labels) == 0 {
		return name
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%s=%q", k, labels[k])
	}
	sb.WriteByte('}')

	return sb.String()
}
