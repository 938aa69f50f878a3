package rqueue

// defaultCapacity is the initial backing size used by New when the caller
// passes a non-positive capacity hint.
const defaultCapacity = 64

// Queue is a FIFO of int items with replay support.
//
// items[:len(items)] holds every item pushed since the last Clear; head is
// the read cursor. Items before head have been popped but are kept until
// Clear so that Restore can re-emit them.
type Queue struct {
	items []int
	head  int
}

// New returns an empty Queue whose backing storage can hold capacity items
// before the first resize.
func New(capacity int) *Queue {
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	return &Queue{items: make([]int, 0, capacity)}
}

// Clear empties the queue and forgets its history. Backing storage is kept.
func (q *Queue) Clear() {
	q.items = q.items[:0]
	q.head = 0
}

// Push appends item to the tail, growing the backing storage when needed.
func (q *Queue) Push(item int) {
	q.items = append(q.items, item)
}

// Pop removes and returns the head item. ok is false when no unread items
// remain; the push history is not affected.
func (q *Queue) Pop() (item int, ok bool) {
	if q.head >= len(q.items) {
		return 0, false
	}
	item = q.items[q.head]
	q.head++

	return item, true
}

// Restore rewinds the read cursor to the first item pushed since the last
// Clear. Stored items and the write cursor are left untouched.
func (q *Queue) Restore() {
	q.head = 0
}

// Len reports the number of items that Pop would still return.
func (q *Queue) Len() int {
	return len(q.items) - q.head
}

// Pushed reports the number of items pushed since the last Clear.
func (q *Queue) Pushed() int {
	return len(q.items)
}
