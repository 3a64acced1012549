// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn_test

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/txn"
)

// markOp is the test effect: evaluation suspends until the driver records
// the text and resumes.
type markOp struct {
	kont.Phantom[struct{}]
	text string
}

// mark performs a markOp effect.
func mark(text string) kont.Eff[struct{}] {
	return kont.Perform(markOp{text: text})
}

// markThen performs a mark and then continues with next.
func markThen[B any](text string, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(mark(text), next)
}

// handleMarks evaluates m, appending each performed mark to log in order.
func handleMarks[R any](m kont.Eff[R], log *[]string) R {
	return kont.Handle(m, kont.HandleFunc[R](func(op kont.Operation) (kont.Resumed, bool) {
		mo, ok := op.(markOp)
		if !ok {
			panic("txn_test: unhandled effect")
		}
		*log = append(*log, mo.text)
		return struct{}{}, true
	}))
}

// stepMarks drives expr one suspension at a time, appending each mark to
// log, and returns the final result plus the number of suspensions seen.
func stepMarks[R any](expr kont.Expr[R], log *[]string) (R, int) {
	steps := 0
	result, susp := kont.StepExpr(expr)
	for susp != nil {
		mo, ok := susp.Op().(markOp)
		if !ok {
			panic("txn_test: unhandled effect")
		}
		*log = append(*log, mo.text)
		steps++
		result, susp = susp.Resume(struct{}{})
	}
	return result, steps
}

// noopHooks returns minimal synchronous hooks for tests that only care
// about the driver.
func noopHooks() txn.Hooks[int] {
	return txn.Hooks[int]{
		Initialize: func() (int, error) { return 0, nil },
		Finalize:   func(int) error { return nil },
	}
}

// noopEffHooks is the suspension-aware counterpart of noopHooks.
func noopEffHooks() txn.EffHooks[int] {
	return txn.EffHooks[int]{
		Initialize: func() kont.Eff[kont.Either[error, int]] { return txn.Ok(0) },
		Finalize:   func(int) kont.Eff[error] { return txn.Done() },
	}
}
