// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world transaction computation to Expr-world.
// The resulting Expr can be evaluated with kont.RunPure or kont.HandleExpr,
// or stepped with kont.StepExpr.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world transaction computation to Cont-world.
// The resulting Eff can be evaluated with Eval or kont.Handle.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}

// TransactExpr returns an Expr-world computation that runs action within a
// transaction on ts. Semantics match TransactEff: the phase check happens
// when the computation is evaluated, evaluation inside the running action
// coalesces, and evaluation in any other busy phase produces Left with a
// usage error naming that phase.
func TransactExpr[S, T any](ts *EffSession[S], action func(*EffSession[S]) kont.Expr[kont.Either[error, T]]) kont.Expr[kont.Either[error, T]] {
	return kont.Reify(TransactEff(ts, func(ts *EffSession[S]) kont.Eff[kont.Either[error, T]] {
		return kont.Reflect(action(ts))
	}))
}
