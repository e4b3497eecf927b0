package types

// ExtremumType selects which rolling extremum a MonotonicQueue maintains.
type ExtremumType int

const (
	ExtremumMin ExtremumType = iota
	ExtremumMax
)

func (t ExtremumType) String() string {
	if t == ExtremumMax {
		return "max"
	}
	return "min"
}

type monotonicItem struct {
	seq   int
	value float64
}

// MonotonicQueue keeps the rolling min (or max) of the last `window` pushed values.
//
// The values in the deque are kept monotonic: for max, every element is strictly greater
// than the ones behind it, so the front is the extremum of the window. Each pushed value
// enters and leaves the deque once, which makes Push O(1) amortized.
//
// The deque is a ring over a slice allocated once; it never holds more than `window` items.
// A copy shares that slice with the original, so a queue must not be copied once it is in use.
type MonotonicQueue struct {
	kind   ExtremumType
	window int

	items []monotonicItem
	head  int
	size  int

	// seq is the sequence number of the next pushed value
	seq int
}

func NewMonotonicQueue(window int, kind ExtremumType) *MonotonicQueue {
	q := MakeMonotonicQueue(window, kind)
	return &q
}

// MakeMonotonicQueue returns the queue as a value, for indicators embedding it in their state.
func MakeMonotonicQueue(window int, kind ExtremumType) MonotonicQueue {
	if window < 1 {
		window = 1
	}

	return MonotonicQueue{
		kind:   kind,
		window: window,
		items:  make([]monotonicItem, window),
	}
}

// Push adds v to the window and returns the extremum of the current window.
func (q *MonotonicQueue) Push(v float64) float64 {
	// drop the front items that fall out of the window once v is in
	for q.size > 0 && q.items[q.head].seq <= q.seq-q.window {
		q.head = (q.head + 1) % q.window
		q.size--
	}

	// drop the back items dominated by v
	for q.size > 0 {
		back := q.items[(q.head+q.size-1)%q.window]
		if !q.dominates(v, back.value) {
			break
		}
		q.size--
	}

	q.items[(q.head+q.size)%q.window] = monotonicItem{seq: q.seq, value: v}
	q.size++
	q.seq++
	return q.items[q.head].value
}

func (q *MonotonicQueue) dominates(v, other float64) bool {
	if q.kind == ExtremumMax {
		return v >= other
	}
	return v <= other
}

// Value returns the extremum of the current window, 0 if nothing was pushed.
func (q *MonotonicQueue) Value() float64 {
	if q.size == 0 {
		return 0
	}
	return q.items[q.head].value
}

// Length returns the number of values covered by the window (not the deque size).
func (q *MonotonicQueue) Length() int {
	if q.seq < q.window {
		return q.seq
	}
	return q.window
}

func (q *MonotonicQueue) Window() int {
	return q.window
}

func (q *MonotonicQueue) Kind() ExtremumType {
	return q.kind
}

func (q *MonotonicQueue) Reset() {
	q.head = 0
	q.size = 0
	q.seq = 0
}
