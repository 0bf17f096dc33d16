package tetris

import "math/rand"

type KindGetter interface {
	Next() Kind
}

type RandomGetter struct {
	randomizer *rand.Rand
	kinds      []Kind
}

func NewRandomGetter(seed int64) *RandomGetter {
	return &RandomGetter{
		randomizer: rand.New(rand.NewSource(seed)),
		kinds:      append([]Kind(nil), Kinds...),
	}
}

func (r *RandomGetter) Next() Kind {
	return r.kinds[r.randomizer.Intn(len(r.kinds))]
}

// QueueGetter hands out kinds in the order they were pushed. Once drained it
// keeps returning the last kind it gave out.
type QueueGetter struct {
	queue []Kind
	last  Kind
}

func NewQueueGetter(kinds ...Kind) *QueueGetter {
	q := &QueueGetter{queue: make([]Kind, 0, len(kinds))}
	q.Push(kinds...)
	return q
}

func (q *QueueGetter) Next() Kind {
	if len(q.queue) == 0 {
		return q.last
	}
	q.last = q.queue[0]
	q.queue = q.queue[1:]
	return q.last
}

func (q *QueueGetter) Push(kinds ...Kind) {
	q.queue = append(q.queue, kinds...)
}
