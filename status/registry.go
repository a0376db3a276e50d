// Package status collects live race counters that cars update without locking.
package status

import (
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"
)

// Registry holds the counters and labels of one race
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Labels   *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Labels:   NewMetricMap[AtomicString](),
	}
}

// CarKey names a per-car metric, e.g. car.3.ticks
func CarKey(id int, name string) string {
	return "car." + strconv.Itoa(id) + "." + name
}

// Counter returns the value of a counter, 0 if never touched
func (r *Registry) Counter(key string) int64 {
	return r.Counters.Get(key).Load()
}

// Label returns the value of a label, empty if never set
func (r *Registry) Label(key string) string {
	return r.Labels.Get(key).Load()
}

// Fields renders every metric as zap fields in key order
func (r *Registry) Fields() []zap.Field {
	fields := make([]zap.Field, 0, r.Counters.Count()+r.Labels.Count())
	r.Counters.Range(func(key string, v *atomic.Int64) {
		fields = append(fields, zap.Int64(key, v.Load()))
	})
	r.Labels.Range(func(key string, v *AtomicString) {
		fields = append(fields, zap.String(key, v.Load()))
	})
	return fields
}
