package stats

// Window is a fixed-size sliding window over the most recent samples with a
// running sum.
type Window struct {
	buf   []float64
	next  int
	count int
	sum   float64
}

func NewWindow(size int) (*Window, error) {
	if size <= 0 {
		return nil, ErrInvalidWindow
	}
	return &Window{buf: make([]float64, size)}, nil
}

// Add pushes v, evicting the oldest sample once the window is full.
func (w *Window) Add(v float64) {
	if w.Full() {
		w.sum -= w.buf[w.next]
	} else {
		w.count++
	}
	w.buf[w.next] = v
	w.sum += v
	w.next = (w.next + 1) % len(w.buf)
}

func (w *Window) Full() bool {
	return w.count == len(w.buf)
}

// Average returns the mean of the samples currently held, or 0 when the
// window is empty.
func (w *Window) Average() float64 {
	if w.count == 0 {
		return 0
	}
	return w.sum / float64(w.count)
}
