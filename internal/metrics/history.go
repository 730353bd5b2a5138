package metrics

// DefaultHistorySize is the default number of samples retained per series.
const DefaultHistorySize = 60

// History keeps per-series metric history in fixed-size ring buffers for
// chart rendering. It is single-writer: the dashboard pushes one snapshot
// per refresh tick and reads between ticks.
type History struct {
	size  int
	cores []*ringBuffer
	mem   *ringBuffer
	swap  *ringBuffer
}

// NewHistory creates a history retaining size samples per series.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size: size,
		mem:  newRingBuffer(size),
		swap: newRingBuffer(size),
	}
}

// Size returns the per-series capacity.
func (h *History) Size() int { return h.size }

// Push appends one snapshot to every series, growing the core list on first
// use.
func (h *History) Push(snap Snapshot) {
	for len(h.cores) < len(snap.Cores) {
		h.cores = append(h.cores, newRingBuffer(h.size))
	}
	for i, core := range snap.Cores {
		h.cores[i].push(core.Percent)
	}
	h.mem.push(snap.Memory.UsedPercent)
	h.swap.push(snap.Memory.SwapPercent)
}

// CoreCount returns how many core series have been observed.
func (h *History) CoreCount() int { return len(h.cores) }

// Core returns the retained samples for core i, oldest first.
func (h *History) Core(i int) []float64 {
	if i < 0 || i >= len(h.cores) {
		return nil
	}
	return h.cores[i].values()
}

// Memory returns the retained main-memory samples, oldest first.
func (h *History) Memory() []float64 { return h.mem.values() }

// Swap returns the retained swap samples, oldest first.
func (h *History) Swap() []float64 { return h.swap.values() }

// ringBuffer is a fixed-size circular buffer of float64 samples.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{data: make([]float64, size), size: size}
}

func (r *ringBuffer) push(v float64) {
	r.data[r.head] = v
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// values returns the buffer contents oldest first.
func (r *ringBuffer) values() []float64 {
	out := make([]float64, 0, r.count)
	start := r.head - r.count
	if start < 0 {
		start += r.size
	}
	for i := 0; i < r.count; i++ {
		out = append(out, r.data[(start+i)%r.size])
	}
	return out
}
