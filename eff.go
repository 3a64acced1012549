// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// EffHooks configures an EffSession's transaction lifecycle with effectful
// hooks. Each hook returns a kont computation whose effects are interleaved
// with the transaction protocol when the transaction is evaluated.
// Initialize and Finalize are required; HandleError is optional.
//
// Failures travel in the value channel, as kont.Either or a non-nil error,
// never as error effects: an error effect thrown inside a hook unwinds past
// the transaction driver, skipping both interception and the phase restore.
type EffHooks[S any] struct {
	// Initialize begins an outermost transaction. Right carries the saved
	// state threaded through to Finalize and HandleError; Left reports
	// failure.
	Initialize func() kont.Eff[kont.Either[error, S]]
	// Finalize completes an outermost transaction with the saved state.
	// A nil result reports success.
	Finalize func(S) kont.Eff[error]
	// HandleError observes a failed transaction step before the failure is
	// delivered to the transact caller. A non-nil result replaces the
	// original error, unchained.
	HandleError func(Fault[S]) kont.Eff[error]
}

// EffSession is the suspension-aware counterpart of Session: the same phase
// machine and coalescing rules, driven through kont computations so that
// transactions compose with algebraic effects and may suspend mid-evaluation
// under kont.StepExpr.
//
// Like Session, an EffSession assumes single-threaded or externally
// serialized access.
type EffSession[S any] struct {
	hooks  EffHooks[S]
	phase  Phase
	serial Serial
	tx     TxID
}

// NewEff creates a suspension-aware transaction session from hooks.
// It panics if a required hook is nil.
func NewEff[S any](hooks EffHooks[S]) *EffSession[S] {
	if hooks.Initialize == nil {
		panic("txn: nil Initialize hook")
	}
	if hooks.Finalize == nil {
		panic("txn: nil Finalize hook")
	}
	return &EffSession[S]{hooks: hooks, serial: nextSerial()}
}

// Phase returns the session's current lifecycle phase.
func (ts *EffSession[S]) Phase() Phase {
	return ts.phase
}

// Serial returns the serial number assigned to this session.
func (ts *EffSession[S]) Serial() Serial {
	return ts.serial
}

// TxID returns the ID of the transaction in flight, or of the last
// outermost transaction started on ts. Zero before the first.
func (ts *EffSession[S]) TxID() TxID {
	return ts.tx
}

// TransactEff returns a computation that runs action within a transaction
// on ts.
//
// The phase check happens when the returned computation is evaluated, not
// when it is constructed. Evaluated in PhaseReady it drives a new outermost
// transaction: Initialize, action, Finalize, each at most once, any step
// failure intercepted by HandleError, and the phase restored to PhaseReady
// before the resulting Either is produced. Evaluated in PhaseAction, from
// within the running action's computation, it coalesces: action is invoked
// inline and its computation becomes part of the current transaction,
// sharing its handler. Evaluated in any other phase it produces Left with
// a usage error naming that phase, without touching the phase or invoking
// any hook.
//
// The result is Right with the action result, or Left with the initialize,
// action, finalize, or replacement error.
func TransactEff[S, T any](ts *EffSession[S], action func(*EffSession[S]) kont.Eff[kont.Either[error, T]]) kont.Eff[kont.Either[error, T]] {
	// Bind off Pure defers the phase check to evaluation time, so a
	// transaction computation can be constructed ahead of time and still
	// observe the session phase current when it actually runs.
	return kont.Bind(kont.Pure(struct{}{}), func(_ struct{}) kont.Eff[kont.Either[error, T]] {
		switch ts.phase {
		case PhaseReady:
			return beginEff(ts, action)
		case PhaseAction:
			return action(ts)
		case PhaseInitializing, PhaseFinalizing, PhaseError:
			return kont.Pure(kont.Left[error, T](&UsageError{At: ts.phase}))
		default:
			panic("txn: invalid phase")
		}
	})
}

// beginEff drives an outermost transaction. Entered at evaluation time in
// PhaseReady, with the deferred phase check already passed.
func beginEff[S, T any](ts *EffSession[S], action func(*EffSession[S]) kont.Eff[kont.Either[error, T]]) kont.Eff[kont.Either[error, T]] {
	ts.tx = nextTxID()
	ts.phase = PhaseInitializing
	return kont.Bind(ts.hooks.Initialize(), func(init kont.Either[error, S]) kont.Eff[kont.Either[error, T]] {
		if init.IsLeft() {
			cause, _ := init.GetLeft()
			var none S
			return failEff[S, T](ts, cause, PhaseInitializing, none, false)
		}
		state, _ := init.GetRight()
		ts.phase = PhaseAction
		return kont.Bind(action(ts), func(acted kont.Either[error, T]) kont.Eff[kont.Either[error, T]] {
			if acted.IsLeft() {
				cause, _ := acted.GetLeft()
				return failEff[S, T](ts, cause, PhaseAction, state, true)
			}
			ts.phase = PhaseFinalizing
			return kont.Bind(ts.hooks.Finalize(state), func(ferr error) kont.Eff[kont.Either[error, T]] {
				if ferr != nil {
					return failEff[S, T](ts, ferr, PhaseFinalizing, state, true)
				}
				ts.phase = PhaseReady
				return kont.Pure(acted)
			})
		})
	})
}

// failEff intercepts a step failure at phase at. PhaseError is entered
// before the HandleError computation is constructed or evaluated, so
// re-entrant transactions inside the handler are rejected naming that
// phase. The phase is restored to PhaseReady before the Left is produced.
func failEff[S, T any](ts *EffSession[S], cause error, at Phase, state S, hasState bool) kont.Eff[kont.Either[error, T]] {
	ts.phase = PhaseError
	if ts.hooks.HandleError == nil {
		ts.phase = PhaseReady
		return kont.Pure(kont.Left[error, T](cause))
	}
	m := ts.hooks.HandleError(Fault[S]{Cause: cause, At: at, State: state, HasState: hasState})
	return kont.Map[kont.Resumed, error, kont.Either[error, T]](m, func(herr error) kont.Either[error, T] {
		ts.phase = PhaseReady
		if herr != nil {
			// The handler's failure replaces the original error, unchained.
			return kont.Left[error, T](herr)
		}
		return kont.Left[error, T](cause)
	})
}

// Eval evaluates a transaction computation that performs no effect
// operations, such as one whose hooks are built from Ok, Fail, and Done.
// It panics if the computation performs an effect; computations with
// effectful hooks are evaluated with kont.Handle under a handler for those
// effects, or reified and driven with kont.StepExpr.
func Eval[R any](m kont.Eff[R]) R {
	return kont.RunPure(kont.Reify(m))
}
