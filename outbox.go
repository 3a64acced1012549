// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Outbox is a bounded single-producer single-consumer hand-off carrying
// transaction outcomes from the session's goroutine to one consumer.
// The producing side publishes from within hooks or after Transact
// returns; the consuming side drains on its own goroutine.
//
// Transport is a bounded lock-free SPSC queue from lfq. Put and Take are
// non-blocking and return iox.ErrWouldBlock at the queue boundary;
// PutWait and Drain convert that boundary into blocking with adaptive
// backoff (iox.Backoff).
type Outbox[V any] struct {
	q      lfq.SPSC[V]
	closed atomix.Uint32
	// slot is the producer-side staging cell for Enqueue.
	slot V
}

// NewOutbox creates an outbox with the given capacity. The queue is
// embedded in the outbox allocation; only the ring buffer is a separate
// heap object. It panics if capacity is not positive.
func NewOutbox[V any](capacity int) *Outbox[V] {
	if capacity <= 0 {
		panic("txn: outbox capacity must be positive")
	}
	ob := &Outbox[V]{}
	ob.q.Init(capacity)
	return ob
}

// Put publishes v to the consumer. Non-blocking: returns iox.ErrWouldBlock
// when the queue is full, ErrOutboxClosed when ob is closed.
func (ob *Outbox[V]) Put(v V) error {
	if ob.closed.Load() != 0 {
		return ErrOutboxClosed
	}
	ob.slot = v
	return ob.q.Enqueue(&ob.slot)
}

// PutWait publishes v, blocking with adaptive backoff while the queue is
// full. Returns nil once v is accepted, ErrOutboxClosed if ob is closed.
func (ob *Outbox[V]) PutWait(v V) error {
	var bo iox.Backoff
	for {
		err := ob.Put(v)
		if !iox.IsWouldBlock(err) {
			return err
		}
		bo.Wait()
	}
}

// Take removes the next value. Non-blocking: returns iox.ErrWouldBlock
// when the queue is empty, ErrOutboxClosed when ob is closed and fully
// drained.
func (ob *Outbox[V]) Take() (V, error) {
	v, err := ob.q.Dequeue()
	if err == nil {
		return v, nil
	}
	if ob.closed.Load() == 0 {
		var zero V
		return zero, err
	}
	// One more sweep after observing the close: values accepted before
	// Close are still delivered.
	v, err = ob.q.Dequeue()
	if err == nil {
		return v, nil
	}
	var zero V
	return zero, ErrOutboxClosed
}

// Close marks ob closed. Idempotent. Values already accepted remain
// takeable; subsequent Put calls fail with ErrOutboxClosed.
func (ob *Outbox[V]) Close() {
	ob.closed.Store(1)
}

// Closed reports whether ob has been closed.
func (ob *Outbox[V]) Closed() bool {
	return ob.closed.Load() != 0
}

// Drain delivers values to fn until ob is closed and fully drained,
// backing off with iox.Backoff while the queue is idle. Returns the
// number of values delivered.
func (ob *Outbox[V]) Drain(fn func(V)) int {
	n := 0
	var bo iox.Backoff
	for {
		v, err := ob.Take()
		if err == nil {
			fn(v)
			n++
			bo.Reset()
			continue
		}
		if err == ErrOutboxClosed {
			return n
		}
		bo.Wait()
	}
}
