// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

// Hooks configures a Session's transaction lifecycle. Initialize and
// Finalize are required; HandleError is optional.
type Hooks[S any] struct {
	// Initialize begins an outermost transaction and produces the saved
	// state threaded through to Finalize and HandleError.
	Initialize func() (S, error)
	// Finalize completes an outermost transaction with the saved state.
	Finalize func(S) error
	// HandleError observes a failed transaction step before the failure
	// is returned to the transact caller. When HandleError itself fails,
	// its error is returned in place of the original, unchained.
	HandleError func(Fault[S]) error
}

// Session is a reentrant transaction session: a phase-tracked state machine
// guaranteeing Initialize and Finalize run exactly once per outermost
// transaction, with nested Transact calls coalesced into it.
//
// A session assumes single-threaded or externally serialized access.
// It holds no lock; the phase check serializes all but the explicitly
// allowed nested case.
type Session[S any] struct {
	hooks  Hooks[S]
	phase  Phase
	serial Serial
	tx     TxID
}

// New creates a synchronous transaction session from hooks.
// It panics if a required hook is nil.
func New[S any](hooks Hooks[S]) *Session[S] {
	if hooks.Initialize == nil {
		panic("txn: nil Initialize hook")
	}
	if hooks.Finalize == nil {
		panic("txn: nil Finalize hook")
	}
	return &Session[S]{hooks: hooks, serial: nextSerial()}
}

// Phase returns the session's current lifecycle phase.
func (ts *Session[S]) Phase() Phase {
	return ts.phase
}

// Serial returns the serial number assigned to this session.
func (ts *Session[S]) Serial() Serial {
	return ts.serial
}

// TxID returns the ID of the transaction in flight, or of the last
// outermost transaction started on ts. Zero before the first.
func (ts *Session[S]) TxID() TxID {
	return ts.tx
}

// Transact runs action within a transaction on ts.
//
// In PhaseReady it starts a new outermost transaction: Initialize, action,
// Finalize, each at most once, with any step failure intercepted by
// HandleError and the phase restored to PhaseReady on every exit path.
// In PhaseAction, meaning a nested call made from within the running
// action, it invokes action directly and the call coalesces into the
// current transaction. In any other phase the call is a usage error: it is
// rejected without touching the phase or invoking any hook.
//
// A panic in a hook or action unwinds through Transact; the deferred
// restore still returns the phase to PhaseReady, but HandleError does
// not run.
func Transact[S, T any](ts *Session[S], action func(*Session[S]) (T, error)) (T, error) {
	var zero T
	switch ts.phase {
	case PhaseReady:
		// outermost transaction below
	case PhaseAction:
		return action(ts)
	case PhaseInitializing, PhaseFinalizing, PhaseError:
		return zero, &UsageError{At: ts.phase}
	default:
		panic("txn: invalid phase")
	}

	defer func() { ts.phase = PhaseReady }()

	ts.tx = nextTxID()
	ts.phase = PhaseInitializing
	state, err := ts.hooks.Initialize()
	if err != nil {
		var none S
		return zero, ts.fail(err, PhaseInitializing, none, false)
	}

	ts.phase = PhaseAction
	result, err := action(ts)
	if err != nil {
		return zero, ts.fail(err, PhaseAction, state, true)
	}

	ts.phase = PhaseFinalizing
	if err := ts.hooks.Finalize(state); err != nil {
		return zero, ts.fail(err, PhaseFinalizing, state, true)
	}
	return result, nil
}

// fail intercepts a step failure at phase at. PhaseError is entered before
// HandleError runs, so re-entrant Transact calls from the handler are
// rejected naming that phase. The deferred restore in Transact returns the
// session to PhaseReady afterward.
func (ts *Session[S]) fail(cause error, at Phase, state S, hasState bool) error {
	ts.phase = PhaseError
	if ts.hooks.HandleError == nil {
		return cause
	}
	if err := ts.hooks.HandleError(Fault[S]{Cause: cause, At: at, State: state, HasState: hasState}); err != nil {
		// The handler's failure replaces the original error, unchained.
		return err
	}
	return cause
}
