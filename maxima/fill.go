package maxima

import "github.com/katalvlaran/peakfind/rqueue"

// filler carries the state shared by every plateau fill of one Find call.
type filler[T Number] struct {
	img     Image[T]
	flags   []Flag
	offsets []int
	queue   *rqueue.Queue
}

// fill explores the plateau containing seed and commits its flags.
//
// Every same-value cell reachable from seed is flagged QueuedMaybeMaximum
// and pushed. The plateau is disqualified when any member has a strictly
// greater neighbor or a same-value neighbor that is a border cell; the
// exploration still runs to completion so that every member is visited.
// On disqualification the queue is restored and replayed to reset each
// member to NotMaximum.
//
// A NaN seed equals nothing, not even itself, and is resolved to NotMaximum
// directly, matching the prefilter, which never seeds NaN.
func (f *filler[T]) fill(seed int) {
	h := f.img.At(seed)
	if h != h {
		f.flags[seed] = NotMaximum
		return
	}
	f.flags[seed] = QueuedMaybeMaximum
	f.queue.Clear()
	f.queue.Push(seed)
	isMax := true

	for cur, ok := f.queue.Pop(); ok; cur, ok = f.queue.Pop() {
		for _, o := range f.offsets {
			n := cur + o
			v := f.img.At(n)
			switch {
			case v == h:
				switch f.flags[n] {
				case BorderIndex:
					isMax = false
				case QueuedMaybeMaximum:
					// already part of this fill
				default:
					f.flags[n] = QueuedMaybeMaximum
					f.queue.Push(n)
				}
			case v > h:
				isMax = false
			}
		}
	}

	if isMax {
		return
	}
	f.queue.Restore()
	for cur, ok := f.queue.Pop(); ok; cur, ok = f.queue.Pop() {
		f.flags[cur] = NotMaximum
	}
}
