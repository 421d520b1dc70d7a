package indicator

// window is a fixed-length ring buffer of prices. It backs the rolling
// accumulators of window-based indicators: one push replaces the oldest
// observation and returns it, keeping memory bounded by the configured
// window length regardless of stream length.
type window struct {
	values []float64
	head   int
}

// newWindow creates a window of the given length with every slot set to fill.
func newWindow(length int, fill float64) *window {
	values := make([]float64, length)
	for i := range values {
		values[i] = fill
	}

	return &window{
		values: values,
		head:   0,
	}
}

// push inserts value as the newest observation and returns the dropped oldest one.
func (w *window) push(value float64) float64 {
	dropped := w.values[w.head]
	w.values[w.head] = value
	w.head = (w.head + 1) % len(w.values)

	return dropped
}

// at returns the observation at offset back from the newest, with at(0) being
// the newest observation.
func (w *window) at(back int) float64 {
	index := (w.head - 1 - back + 2*len(w.values)) % len(w.values)

	return w.values[index]
}

// length returns the window length.
func (w *window) length() int {
	return len(w.values)
}
