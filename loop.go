// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// Loop drives ts through a sequence of transactions (Cont-world). Each
// round runs as its own outermost transaction carrying the workflow state
// from the previous round. The round's result decides the workflow:
// Left(next) commits and continues with next, Right(result) commits and
// finishes. A failed round short-circuits the loop with its error after
// the usual interception, leaving ts in PhaseReady.
func Loop[S, T, A any](ts *EffSession[S], initial T, round func(*EffSession[S], T) kont.Eff[kont.Either[error, kont.Either[T, A]]]) kont.Eff[kont.Either[error, A]] {
	m := TransactEff(ts, func(ts *EffSession[S]) kont.Eff[kont.Either[error, kont.Either[T, A]]] {
		return round(ts, initial)
	})
	return kont.Bind(m, func(e kont.Either[error, kont.Either[T, A]]) kont.Eff[kont.Either[error, A]] {
		if err, ok := e.GetLeft(); ok {
			return Fail[A](err)
		}
		verdict, _ := e.GetRight()
		if next, ok := verdict.GetLeft(); ok {
			return Loop(ts, next, round)
		}
		result, _ := verdict.GetRight()
		return Ok(result)
	})
}

// ExprLoop drives ts through a sequence of transactions (Expr-world),
// delegating to Loop through the world bridge.
func ExprLoop[S, T, A any](ts *EffSession[S], initial T, round func(*EffSession[S], T) kont.Expr[kont.Either[error, kont.Either[T, A]]]) kont.Expr[kont.Either[error, A]] {
	return Reify(Loop(ts, initial, func(ts *EffSession[S], t T) kont.Eff[kont.Either[error, kont.Either[T, A]]] {
		return Reflect(round(ts, t))
	}))
}
