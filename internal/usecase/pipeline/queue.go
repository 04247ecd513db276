package pipeline

import itchv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/itch/v1"

// Queue is a bounded single-producer single-consumer hand-off.
type Queue struct {
	ch chan itchv1.Message
}

// NewQueue creates a queue holding at most capacity messages.
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{ch: make(chan itchv1.Message, capacity)}
}

// TryPush enqueues msg without blocking.
func (q *Queue) TryPush(msg itchv1.Message) bool {
	select {
	case q.ch <- msg:
		return true
	default:
		return false
	}
}

// Messages is drained by the consumer; it is closed after the last push.
func (q *Queue) Messages() <-chan itchv1.Message {
	return q.ch
}

// Close is called by the producer once.
func (q *Queue) Close() {
	close(q.ch)
}
