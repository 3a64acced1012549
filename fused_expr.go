// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// ExprOk lifts a success value into an Expr-world transaction result
// computation. Fuses Right + ExprReturn.
func ExprOk[T any](v T) kont.Expr[kont.Either[error, T]] {
	return kont.ExprReturn(kont.Right[error, T](v))
}

// ExprFail lifts a failure into an Expr-world transaction result
// computation. Fuses Left + ExprReturn.
func ExprFail[T any](err error) kont.Expr[kont.Either[error, T]] {
	return kont.ExprReturn(kont.Left[error, T](err))
}

// ExprDone reports hook success in an Expr-world Finalize or HandleError
// computation.
func ExprDone() kont.Expr[error] {
	return kont.ExprReturn[error](nil)
}

// ExprTry adapts a synchronous function into an Expr-world transaction
// result computation. f runs when the computation is evaluated, not when
// it is constructed.
func ExprTry[T any](f func() (T, error)) kont.Expr[kont.Either[error, T]] {
	return kont.ExprBind(kont.ExprReturn(struct{}{}), func(_ struct{}) kont.Expr[kont.Either[error, T]] {
		v, err := f()
		if err != nil {
			return ExprFail[T](err)
		}
		return ExprOk(v)
	})
}

// ExprLift adapts a synchronous error-returning function into an
// Expr-world Finalize or HandleError computation. f runs when the
// computation is evaluated, not when it is constructed.
func ExprLift(f func() error) kont.Expr[error] {
	return kont.ExprBind(kont.ExprReturn(struct{}{}), func(_ struct{}) kont.Expr[error] {
		return kont.ExprReturn(f())
	})
}

// ExprMapOk transforms the success value of an Expr-world transaction
// result computation. Fuses ExprMap + MapEither.
func ExprMapOk[A, B any](m kont.Expr[kont.Either[error, A]], f func(A) B) kont.Expr[kont.Either[error, B]] {
	return kont.ExprMap(m, func(e kont.Either[error, A]) kont.Either[error, B] {
		return kont.MapEither(e, f)
	})
}

// ExprBindOk sequences two Expr-world transaction result computations,
// short-circuiting on Left. Fuses ExprBind + Either branch.
func ExprBindOk[A, B any](m kont.Expr[kont.Either[error, A]], f func(A) kont.Expr[kont.Either[error, B]]) kont.Expr[kont.Either[error, B]] {
	return kont.ExprBind(m, func(e kont.Either[error, A]) kont.Expr[kont.Either[error, B]] {
		if e.IsLeft() {
			cause, _ := e.GetLeft()
			return kont.ExprReturn(kont.Left[error, B](cause))
		}
		v, _ := e.GetRight()
		return f(v)
	})
}

// ExprThenOk sequences two Expr-world transaction result computations,
// discarding the first success value and short-circuiting on Left.
// Fuses ExprThen + Either branch.
func ExprThenOk[A, B any](m kont.Expr[kont.Either[error, A]], n kont.Expr[kont.Either[error, B]]) kont.Expr[kont.Either[error, B]] {
	return ExprBindOk(m, func(A) kont.Expr[kont.Either[error, B]] {
		return n
	})
}
