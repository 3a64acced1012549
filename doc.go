// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package txn provides reentrant transaction sessions via algebraic effects
// on [code.hybscloud.com/kont].
//
// A session guards a transaction lifecycle behind a phase machine: an
// outermost transact initializes, acts, and finalizes exactly once, while
// re-entrant transact calls made from inside the action coalesce into the
// running transaction.
//
// # Architecture
//
//   - Phases: [Phase] tracks ready, initializing, action, finalizing, and error. Busy phases reject transact with [UsageError]; only ready starts a transaction and only action coalesces.
//   - Hooks: [Hooks] and [EffHooks] supply Initialize, Finalize, and an optional HandleError that intercepts step failures and may replace the error.
//   - Execution: Dual-world API supporting synchronous ([Session]) and effect-driven ([EffSession]) transactions with identical phase semantics.
//   - Identity: [Serial] numbers sessions at construction; [TxID] numbers outermost transactions process-wide at start, shared by coalesced calls.
//   - Hand-off: [Outbox] carries transaction outcomes over lock-free bounded SPSC queues via [code.hybscloud.com/lfq], non-blocking at the [code.hybscloud.com/iox.ErrWouldBlock] boundary.
//
// # API Topologies
//
//   - Synchronous: [New], [Transact]. Failures return as plain errors.
//   - Cont-world: [NewEff], [TransactEff] with [Ok], [Fail], [Done], [Try], [Lift], [MapOk], [BindOk], [ThenOk]. Failures travel as [code.hybscloud.com/kont.Either].
//   - Expr-world: [TransactExpr] with [ExprOk], [ExprFail], etc. Bridge via [Reify] and [Reflect].
//   - Iterative: [Loop] and [ExprLoop] drive a session through a sequence of transactions, one round per transaction.
//   - Agenda: [Deferred] accumulates operations inside a transaction and applies them when the outermost transaction finalizes.
//
// # Integration
//
//   - Stepping: [TransactExpr] computations evaluate one effect at a time under [code.hybscloud.com/kont.StepExpr], making them easy to integrate with a proactor loop.
//   - Blocking: [Outbox.PutWait] and [Outbox.Drain] wait past boundaries using adaptive backoff.
//   - Evaluation: [Eval] runs effect-free transactions; effectful ones run under [code.hybscloud.com/kont.Handle].
//
// # Example
//
//	ts := txn.New(txn.Hooks[int]{
//		Initialize: func() (int, error) { return 1, nil },
//		Finalize:   func(int) error { return nil },
//	})
//	total, err := txn.Transact(ts, func(ts *txn.Session[int]) (int, error) {
//		a, _ := txn.Transact(ts, func(*txn.Session[int]) (int, error) { return 20, nil })
//		b, _ := txn.Transact(ts, func(*txn.Session[int]) (int, error) { return 22, nil })
//		return a + b, nil
//	})
//	// total == 42, err == nil; Initialize and Finalize each ran once
package txn
