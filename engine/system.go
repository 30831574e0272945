package engine

// System is one stage of the per-tick pipeline
// Systems run in ascending Priority order, all on the loop goroutine
type System interface {
	Update(w *World, dt float64)
	Priority() int
}
