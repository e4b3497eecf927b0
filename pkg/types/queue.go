package types

// Queue is a fixed-capacity circular buffer of float64 values.
// Pushing into a full queue overwrites the oldest value.
// The backing array is allocated once in NewQueue.
type Queue struct {
	buf   []float64
	head  int // index of the oldest element
	count int
}

func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}

	return &Queue{
		buf: make([]float64, capacity),
	}
}

// Push appends v. When the queue is full the oldest value is evicted and returned with evicted = true.
func (q *Queue) Push(v float64) (old float64, evicted bool) {
	capacity := len(q.buf)
	if q.count < capacity {
		q.buf[(q.head+q.count)%capacity] = v
		q.count++
		return 0, false
	}

	old = q.buf[q.head]
	q.buf[q.head] = v
	q.head = (q.head + 1) % capacity
	return old, true
}

func (q *Queue) Length() int {
	return q.count
}

func (q *Queue) Cap() int {
	return len(q.buf)
}

func (q *Queue) Full() bool {
	return q.count == len(q.buf)
}

// Index returns the i-th element in insertion order, 0 is the oldest one.
func (q *Queue) Index(i int) float64 {
	if i < 0 || i >= q.count {
		return 0
	}

	return q.buf[(q.head+i)%len(q.buf)]
}

// Last returns the i-th element counted from the newest one, Last(0) is the latest value.
func (q *Queue) Last(i int) float64 {
	return q.Index(q.count - 1 - i)
}

// Each iterates the elements from the oldest to the newest, returning false from f stops the iteration.
func (q *Queue) Each(f func(i int, v float64) bool) {
	for i := 0; i < q.count; i++ {
		if !f(i, q.buf[(q.head+i)%len(q.buf)]) {
			return
		}
	}
}

// Values returns a copy of the buffered values in insertion order.
func (q *Queue) Values() []float64 {
	values := make([]float64, 0, q.count)
	q.Each(func(_ int, v float64) bool {
		values = append(values, v)
		return true
	})
	return values
}

func (q *Queue) Reset() {
	for i := range q.buf {
		q.buf[i] = 0
	}

	q.head = 0
	q.count = 0
}
