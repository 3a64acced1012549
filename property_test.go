// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn_test

import (
	"errors"
	"reflect"
	"testing"
	"testing/quick"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/txn"
)

// TestPropertyCoalescingDepth proves that for any nesting depth, re-entrant
// Transact calls coalesce into exactly one transaction: Initialize and
// Finalize each run once and every nested level contributes to the result.
func TestPropertyCoalescingDepth(t *testing.T) {
	propertyCoalesce := func(rawDepth uint) bool {
		depth := int(rawDepth%8) + 1
		initCount, finCount := 0, 0
		ts := txn.New(txn.Hooks[struct{}]{
			Initialize: func() (struct{}, error) { initCount++; return struct{}{}, nil },
			Finalize:   func(struct{}) error { finCount++; return nil },
		})

		var nest func(ts *txn.Session[struct{}], level int) (int, error)
		nest = func(ts *txn.Session[struct{}], level int) (int, error) {
			return txn.Transact(ts, func(ts *txn.Session[struct{}]) (int, error) {
				if level == depth {
					return level, nil
				}
				below, err := nest(ts, level+1)
				if err != nil {
					return 0, err
				}
				return level + below, nil
			})
		}

		sum, err := nest(ts, 1)
		// 1+2+...+depth
		want := depth * (depth + 1) / 2
		return err == nil && sum == want &&
			initCount == 1 && finCount == 1 &&
			ts.Phase() == txn.PhaseReady
	}

	if err := quick.Check(propertyCoalesce, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyFailureInterception proves that a failure injected at any
// lifecycle step is intercepted with that step's phase and saved state,
// the exact cause value is returned, and the session is ready again.
func TestPropertyFailureInterception(t *testing.T) {
	propertyFailure := func(failAt uint) bool {
		step := failAt % 3 // 0: Initialize, 1: action, 2: Finalize
		boom := errors.New("forced_error")
		var fault txn.Fault[int]
		intercepted := false
		ts := txn.New(txn.Hooks[int]{
			Initialize: func() (int, error) {
				if step == 0 {
					return 0, boom
				}
				return 7, nil
			},
			Finalize: func(int) error {
				if step == 2 {
					return boom
				}
				return nil
			},
			HandleError: func(f txn.Fault[int]) error {
				fault = f
				intercepted = true
				return nil
			},
		})

		_, err := txn.Transact(ts, func(*txn.Session[int]) (int, error) {
			if step == 1 {
				return 0, boom
			}
			return 1, nil
		})
		if err != boom || !intercepted || ts.Phase() != txn.PhaseReady {
			return false
		}
		switch step {
		case 0:
			return fault.At == txn.PhaseInitializing && !fault.HasState
		case 1:
			return fault.At == txn.PhaseAction && fault.HasState && fault.State == 7
		default:
			return fault.At == txn.PhaseFinalizing && fault.HasState && fault.State == 7
		}
	}

	if err := quick.Check(propertyFailure, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyVariantEquivalence proves that the synchronous and
// suspension-aware drivers produce identical outcomes for the same
// scenario: same result, same error value, same hook counts.
func TestPropertyVariantEquivalence(t *testing.T) {
	propertyEquiv := func(failAt uint, value int) bool {
		step := failAt % 4 // 3: no failure
		boom := errors.New("forced_error")

		runSync := func() (int, error, int, int) {
			initCount, finCount := 0, 0
			ts := txn.New(txn.Hooks[int]{
				Initialize: func() (int, error) {
					initCount++
					if step == 0 {
						return 0, boom
					}
					return value, nil
				},
				Finalize: func(int) error {
					finCount++
					if step == 2 {
						return boom
					}
					return nil
				},
			})
			v, err := txn.Transact(ts, func(*txn.Session[int]) (int, error) {
				if step == 1 {
					return 0, boom
				}
				return value * 2, nil
			})
			return v, err, initCount, finCount
		}

		runEff := func() (int, error, int, int) {
			initCount, finCount := 0, 0
			ts := txn.NewEff(txn.EffHooks[int]{
				Initialize: func() kont.Eff[kont.Either[error, int]] {
					initCount++
					if step == 0 {
						return txn.Fail[int](boom)
					}
					return txn.Ok(value)
				},
				Finalize: func(int) kont.Eff[error] {
					finCount++
					if step == 2 {
						return kont.Pure(boom)
					}
					return txn.Done()
				},
			})
			e := txn.Eval(txn.TransactEff(ts, func(*txn.EffSession[int]) kont.Eff[kont.Either[error, int]] {
				if step == 1 {
					return txn.Fail[int](boom)
				}
				return txn.Ok(value * 2)
			}))
			if l, ok := e.GetLeft(); ok {
				return 0, l, initCount, finCount
			}
			r, _ := e.GetRight()
			return r, nil, initCount, finCount
		}

		sv, serr, si, sf := runSync()
		ev, eerr, ei, ef := runEff()
		return sv == ev && serr == eerr && si == ei && sf == ef
	}

	if err := quick.Check(propertyEquiv, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyOutboxFIFO proves that for any arbitrarily generated sequence
// of integers, the outbox delivers strict FIFO without loss, duplication,
// or reordering.
func TestPropertyOutboxFIFO(t *testing.T) {
	skipRace(t)

	propertyFIFO := func(payload []int) bool {
		ob := txn.NewOutbox[int](4)
		go func() {
			for _, v := range payload {
				if ob.PutWait(v) != nil {
					return
				}
			}
			ob.Close()
		}()

		received := make([]int, 0, len(payload))
		ob.Drain(func(v int) { received = append(received, v) })

		// Use reflect.DeepEqual to correctly handle empty vs nil slices.
		if len(payload) == 0 && len(received) == 0 {
			return true
		}
		return reflect.DeepEqual(payload, received)
	}

	if err := quick.Check(propertyFIFO, nil); err != nil {
		t.Error(err)
	}
}
