package status

import (
	"math"
	"sync/atomic"
)

// Registry collects frame-loop diagnostics
// The loop goroutine writes; the spectator server and debug HUD read concurrently
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[Float]
	Strings *MetricMap[String]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[Float](),
		Strings: NewMetricMap[String](),
	}
}

// Snapshot copies every metric into a flat map keyed by metric name
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.Ints.Count()+r.Floats.Count()+r.Strings.Count())
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *Float) { out[k] = v.Load() })
	r.Strings.Range(func(k string, v *String) { out[k] = v.Load() })
	return out
}

// Float is an atomic float64, zero value ready
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Store(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *Float) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// String is an atomic string, zero value ready
type String struct {
	ptr atomic.Pointer[string]
}

func (s *String) Store(val string) {
	s.ptr.Store(&val)
}

func (s *String) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
