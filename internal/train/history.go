package train

// History is a metric sink: named scalar series appended in call order.
// It is owned by the caller; a tracking callback writes into it during a
// run and the caller reads the series back afterwards.
type History struct {
	series map[string][]float32
	order  []string
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{series: make(map[string][]float32)}
}

// Append records one value at the end of the named series, creating the
// series on first use.
func (h *History) Append(name string, value float32) {
	if _, ok := h.series[name]; !ok {
		h.order = append(h.order, name)
	}
	h.series[name] = append(h.series[name], value)
}

// Series returns the recorded values for a name, in append order.
func (h *History) Series(name string) []float32 {
	return h.series[name]
}

// Names returns the series names in first-appearance order.
func (h *History) Names() []string {
	return h.order
}

// Len returns the length of the named series.
func (h *History) Len(name string) int {
	return len(h.series[name])
}
