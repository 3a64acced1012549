// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"github.com/eapache/queue"
)

// Deferred is a FIFO agenda of operations accumulated during a transaction
// and applied together when it completes. Nested Transact calls coalescing
// into an outermost transaction share its agenda, so their deferred
// operations apply exactly once, in order, when the outermost transaction
// finalizes. The usual wiring flushes from Finalize and discards from
// HandleError.
//
// The agenda is a growable ring buffer (github.com/eapache/queue).
// A Deferred assumes single-threaded or externally serialized access,
// matching the sessions it serves.
type Deferred struct {
	agenda *queue.Queue
}

// NewDeferred creates an empty agenda.
func NewDeferred() *Deferred {
	return &Deferred{agenda: queue.New()}
}

// Defer appends fn to the agenda.
func (d *Deferred) Defer(fn func() error) {
	d.agenda.Add(fn)
}

// Len returns the number of pending operations.
func (d *Deferred) Len() int {
	return d.agenda.Length()
}

// Flush applies pending operations in the order they were deferred.
// It stops at the first failure and returns that error; the failing
// operation is consumed and the operations after it remain queued.
func (d *Deferred) Flush() error {
	for d.agenda.Length() > 0 {
		fn := d.agenda.Remove().(func() error)
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

// Discard drops all pending operations without applying them and returns
// the number dropped.
func (d *Deferred) Discard() int {
	n := 0
	for d.agenda.Length() > 0 {
		d.agenda.Remove()
		n++
	}
	return n
}
