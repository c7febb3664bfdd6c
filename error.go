// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package sigfig

import "github.com/pkg/errors"

// Errors returned by operations are wrapped with context; test for them
// with errors.Cause or errors.Is.
var (
	// ErrDomain is returned when an argument is outside the domain of a
	// function: the logarithm of a non-positive number or to base one, an
	// even root of a negative number, or a zeroth root.
	ErrDomain = errors.New("argument out of domain")
	// ErrDivisionByZero is returned by Quo and Rem when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnrepresentable is returned when a result has no real decimal
	// value, such as a negative number raised to 1/2.
	ErrUnrepresentable = errors.New("result not representable")
	// ErrOverflow is returned when a value does not fit the range of the
	// type it is converted to.
	ErrOverflow = errors.New("overflow")
	// ErrExponentOutOfRange is returned when a result's exponent does not
	// fit in an int32. It wraps ErrOverflow.
	ErrExponentOutOfRange = errors.Wrap(ErrOverflow, "exponent out of range")
	// ErrInvalidPrecision is returned when a rounding precision is not
	// positive, including inexact operations on a Context with zero
	// Precision.
	ErrInvalidPrecision = errors.New("invalid precision")
	// ErrNoConvergence is returned when an iterative computation does not
	// settle within its iteration limit.
	ErrNoConvergence = errors.New("no convergence")
)

// ErrDecimal performs operations on decimals and collects errors during
// operations. If an error is already set, the operation is skipped and nil
// is returned. Designed to be used for many operations in a row, with a
// single error check at the end.
type ErrDecimal struct {
	Ctx *Context
	Err error
}

func (e *ErrDecimal) set(d *Decimal, err error) *Decimal {
	e.Err = err
	return d
}

// Abs performs e.Ctx.Abs(x).
func (e *ErrDecimal) Abs(x *Decimal) *Decimal {
	if e.Err != nil {
		return nil
	}
	return e.set(e.Ctx.Abs(x))
}

// Add performs e.Ctx.Add(x, y).
func (e *ErrDecimal) Add(x, y *Decimal) *Decimal {
	if e.Err != nil {
		return nil
	}
	return e.set(e.Ctx.Add(x, y))
}

// Cmp returns 0 if Err is set. Otherwise returns a.Cmp(b).
func (e *ErrDecimal) Cmp(a, b *Decimal) int {
	if e.Err != nil {
		return 0
	}
	return a.Cmp(b)
}

// Exp performs e.Ctx.Exp(x).
func (e *ErrDecimal) Exp(x *Decimal) *Decimal {
	if e.Err != nil {
		return nil
	}
	return e.set(e.Ctx.Exp(x))
}

// Int64 returns 0 if Err is set. Otherwise returns d.Int64().
func (e *ErrDecimal) Int64(d *Decimal) int64 {
	if e.Err != nil {
		return 0
	}
	var r int64
	r, e.Err = d.Int64()
	return r
}

// Ln performs e.Ctx.Ln(x).
func (e *ErrDecimal) Ln(x *Decimal) *Decimal {
	if e.Err != nil {
		return nil
	}
	return e.set(e.Ctx.Ln(x))
}

// Log10 performs e.Ctx.Log10(x).
func (e *ErrDecimal) Log10(x *Decimal) *Decimal {
	if e.Err != nil {
		return nil
	}
	return e.set(e.Ctx.Log10(x))
}

// Mul performs e.Ctx.Mul(x, y).
func (e *ErrDecimal) Mul(x, y *Decimal) *Decimal {
	if e.Err != nil {
		return nil
	}
	return e.set(e.Ctx.Mul(x, y))
}

// Neg performs e.Ctx.Neg(x).
func (e *ErrDecimal) Neg(x *Decimal) *Decimal {
	if e.Err != nil {
		return nil
	}
	return e.set(e.Ctx.Neg(x))
}

// Pow performs e.Ctx.Pow(x, y).
func (e *ErrDecimal) Pow(x, y *Decimal) *Decimal {
	if e.Err != nil {
		return nil
	}
	return e.set(e.Ctx.Pow(x, y))
}

// Quo performs e.Ctx.Quo(x, y).
func (e *ErrDecimal) Quo(x, y *Decimal) *Decimal {
	if e.Err != nil {
		return nil
	}
	return e.set(e.Ctx.Quo(x, y))
}

// Rem performs e.Ctx.Rem(x, y).
func (e *ErrDecimal) Rem(x, y *Decimal) *Decimal {
	if e.Err != nil {
		return nil
	}
	return e.set(e.Ctx.Rem(x, y))
}

// RootN performs e.Ctx.RootN(x, n).
func (e *ErrDecimal) RootN(x *Decimal, n int) *Decimal {
	if e.Err != nil {
		return nil
	}
	return e.set(e.Ctx.RootN(x, n))
}

// Round performs e.Ctx.Round(x).
func (e *ErrDecimal) Round(x *Decimal) *Decimal {
	if e.Err != nil {
		return nil
	}
	return e.set(e.Ctx.Round(x))
}

// Sqr performs e.Ctx.Sqr(x).
func (e *ErrDecimal) Sqr(x *Decimal) *Decimal {
	if e.Err != nil {
		return nil
	}
	return e.set(e.Ctx.Sqr(x))
}

// Sqrt performs e.Ctx.Sqrt(x).
func (e *ErrDecimal) Sqrt(x *Decimal) *Decimal {
	if e.Err != nil {
		return nil
	}
	return e.set(e.Ctx.Sqrt(x))
}

// Sub performs e.Ctx.Sub(x, y).
func (e *ErrDecimal) Sub(x, y *Decimal) *Decimal {
	if e.Err != nil {
		return nil
	}
	return e.set(e.Ctx.Sub(x, y))
}
