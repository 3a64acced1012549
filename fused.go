// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// Ok lifts a success value into a transaction result computation.
// Fuses Right + Pure.
func Ok[T any](v T) kont.Eff[kont.Either[error, T]] {
	return kont.Pure(kont.Right[error, T](v))
}

// Fail lifts a failure into a transaction result computation.
// Fuses Left + Pure.
func Fail[T any](err error) kont.Eff[kont.Either[error, T]] {
	return kont.Pure(kont.Left[error, T](err))
}

// Done reports hook success in a Finalize or HandleError computation.
func Done() kont.Eff[error] {
	return kont.Pure[error](nil)
}

// Try adapts a synchronous function into a transaction result computation.
// f runs when the computation is evaluated, not when it is constructed.
func Try[T any](f func() (T, error)) kont.Eff[kont.Either[error, T]] {
	return kont.Bind(kont.Pure(struct{}{}), func(_ struct{}) kont.Eff[kont.Either[error, T]] {
		v, err := f()
		if err != nil {
			return Fail[T](err)
		}
		return Ok(v)
	})
}

// Lift adapts a synchronous error-returning function into a Finalize or
// HandleError computation. f runs when the computation is evaluated, not
// when it is constructed.
func Lift(f func() error) kont.Eff[error] {
	return kont.Bind(kont.Pure(struct{}{}), func(_ struct{}) kont.Eff[error] {
		return kont.Pure(f())
	})
}

// MapOk transforms the success value of a transaction result computation.
// Fuses Map + MapEither.
func MapOk[A, B any](m kont.Eff[kont.Either[error, A]], f func(A) B) kont.Eff[kont.Either[error, B]] {
	return kont.Map[kont.Resumed, kont.Either[error, A], kont.Either[error, B]](m, func(e kont.Either[error, A]) kont.Either[error, B] {
		return kont.MapEither(e, f)
	})
}

// BindOk sequences two transaction result computations, short-circuiting
// on Left. Fuses Bind + Either branch.
func BindOk[A, B any](m kont.Eff[kont.Either[error, A]], f func(A) kont.Eff[kont.Either[error, B]]) kont.Eff[kont.Either[error, B]] {
	return kont.Bind(m, func(e kont.Either[error, A]) kont.Eff[kont.Either[error, B]] {
		if e.IsLeft() {
			cause, _ := e.GetLeft()
			return kont.Pure(kont.Left[error, B](cause))
		}
		v, _ := e.GetRight()
		return f(v)
	})
}

// ThenOk sequences two transaction result computations, discarding the
// first success value and short-circuiting on Left. Fuses Then + Either
// branch.
func ThenOk[A, B any](m kont.Eff[kont.Either[error, A]], n kont.Eff[kont.Either[error, B]]) kont.Eff[kont.Either[error, B]] {
	return BindOk(m, func(A) kont.Eff[kont.Either[error, B]] {
		return n
	})
}
