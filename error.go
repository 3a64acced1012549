// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import "errors"

// UsageError reports a transact call made while the session was mid-callback:
// re-entering during Initialize, Finalize, or HandleError execution.
// It is produced immediately, is never delegated to HandleError, and leaves
// the session's phase unchanged.
type UsageError struct {
	// At is the phase the session was in when the call was rejected.
	At Phase
}

// Error implements error. The message names the offending phase.
func (e *UsageError) Error() string {
	return "txn: transact cannot be used in " + e.At.String() + " phase"
}

// IsUsageError reports whether err is a transact usage error.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// Fault carries the context of a failed transaction step to HandleError:
// the step's error, the phase at failure, and the saved state as it stood
// at that moment. HasState is false when Initialize failed before
// producing a state.
type Fault[S any] struct {
	Cause    error
	At       Phase
	State    S
	HasState bool
}

// ErrOutboxClosed is returned by Outbox operations after Close:
// by Put for new records, and by Take once remaining records are drained.
var ErrOutboxClosed = errors.New("txn: outbox closed")
