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

import (
	"math/big"

	"github.com/pkg/errors"
)

// Context maintains options for Decimal operations.
type Context struct {
	// Precision is the maximum number of significant figures of a result.
	// Zero disables rounding; only operations with exact results can then
	// be performed.
	Precision uint32
	// Rounding specifies the Rounder to use during rounding. RoundHalfUp is used if
	// nil.
	Rounding Rounder
}

// DefaultPrecision is the Precision of BaseContext.
const DefaultPrecision = 100

// BaseContext is a useful default Context. The package-level functions
// use a copy of it taken at call time.
var BaseContext = Context{
	Precision: DefaultPrecision,
	Rounding:  RoundHalfUp,
}

// guardDigits is the number of significant figures intermediate results
// carry beyond the requested precision.
const guardDigits = 2

// WithPrecision returns a copy of c but with the specified precision.
func (c *Context) WithPrecision(p uint32) *Context {
	r := *c
	r.Precision = p
	return &r
}

// working returns a Context for intermediate results, extra figures more
// precise than c.
func (c *Context) working(extra uint32) *Context {
	return &Context{
		Precision: c.Precision + extra,
		Rounding:  RoundHalfEven,
	}
}

func (c *Context) requirePrecision(op string) error {
	if c.Precision == 0 {
		// Inexact results have no natural length.
		return errors.Wrapf(ErrInvalidPrecision, "%s requires a Context with > 0 Precision", op)
	}
	return nil
}

// result returns coeff * 10^exp rounded to c.
func (c *Context) result(coeff *big.Int, exp int64) (*Decimal, error) {
	if c.Precision > 0 {
		if cut := numDigits(coeff) - int64(c.Precision); cut > 0 {
			coeff = roundSignificand(coeff, cut, c.rounding())
			exp += cut
		}
	}
	return newDecimal(coeff, exp)
}

// Add returns the sum x+y.
func (c *Context) Add(x, y *Decimal) (*Decimal, error) {
	switch {
	case y.IsZero():
		return c.Round(x)
	case x.IsZero():
		return c.Round(y)
	}
	x, y = c.sticky(x, y), c.sticky(y, x)
	a, b, s := align(x, y)
	return c.result(new(big.Int).Add(a, b), s)
}

// Sub returns the difference x-y.
func (c *Context) Sub(x, y *Decimal) (*Decimal, error) {
	switch {
	case y.IsZero():
		return c.Round(x)
	case x.IsZero():
		return c.Round(y.Neg())
	}
	x, y = c.sticky(x, y), c.sticky(y, x)
	a, b, s := align(x, y)
	return c.result(new(big.Int).Sub(a, b), s)
}

// sticky returns y, or a one-digit stand-in for it when y lies so far
// below the last digit of x, and below the last figure c keeps of x, that
// only its sign can affect x+y or x-y rounded to c. The stand-in is nearer
// to x's digits than y, which keeps the alignment small.
func (c *Context) sticky(y, x *Decimal) *Decimal {
	if c.Precision == 0 || x.IsZero() || y.IsZero() {
		return y
	}
	k := int64(x.exponent)
	if lim := x.adjusted() - int64(c.Precision) - 1; lim < k {
		k = lim
	}
	if y.adjusted() >= k-1 {
		return y
	}
	d, err := newDecimal(big.NewInt(int64(y.Sign())), k-2)
	if err != nil {
		return y
	}
	return d
}

// Abs returns |x| (the absolute value of x).
func (c *Context) Abs(x *Decimal) (*Decimal, error) {
	return c.Round(x.Abs())
}

// Neg returns -x.
func (c *Context) Neg(x *Decimal) (*Decimal, error) {
	return c.Round(x.Neg())
}

// Mul returns the product x*y.
func (c *Context) Mul(x, y *Decimal) (*Decimal, error) {
	return c.result(new(big.Int).Mul(&x.coeff, &y.coeff), int64(x.exponent)+int64(y.exponent))
}

// Sqr returns x*x.
func (c *Context) Sqr(x *Decimal) (*Decimal, error) {
	return c.Mul(x, x)
}

// Cube returns x*x*x, rounded once.
func (c *Context) Cube(x *Decimal) (*Decimal, error) {
	z := new(big.Int).Mul(&x.coeff, &x.coeff)
	z.Mul(z, &x.coeff)
	return c.result(z, 3*int64(x.exponent))
}

// Quo returns the quotient x/y for y != 0. c's Precision must be > 0.
//
// Quotients with a finite decimal expansion are computed exactly and
// rounded once. Others are found by Goldschmidt division.
func (c *Context) Quo(x, y *Decimal) (*Decimal, error) {
	if err := c.requirePrecision("Quo"); err != nil {
		return nil, err
	}
	switch {
	case y.IsZero():
		return nil, errors.Wrapf(ErrDivisionByZero, "%s / 0", x)
	case x.IsZero():
		return decimalZero, nil
	case y.isOne():
		return c.Round(x)
	case x.Cmp(y) == 0:
		return decimalOne, nil
	}
	if q, ok := exactQuo(x, y); ok {
		return c.result(&q.coeff, int64(q.exponent))
	}
	return c.refine(func(wc *Context) (*Decimal, bool, error) {
		z, err := wc.goldschmidt(x, y)
		return z, false, err
	})
}

// exactQuo returns x/y if it has a finite decimal expansion. That is the
// case when y's coefficient, divided by its common factor with x's, has no
// prime factors but 2 and 5.
func exactQuo(x, y *Decimal) (*Decimal, bool) {
	num := new(big.Int).Abs(&x.coeff)
	den := new(big.Int).Abs(&y.coeff)
	g := new(big.Int).GCD(nil, nil, num, den)
	num.Quo(num, g)
	den.Quo(den, g)
	twos := int64(den.TrailingZeroBits())
	den.Rsh(den, uint(twos))
	var fives int64
	for m := new(big.Int); den.Cmp(bigOne) != 0; fives++ {
		var q big.Int
		if q.QuoRem(den, bigFive, m); m.Sign() != 0 {
			return nil, false
		}
		den.Set(&q)
	}
	// 1/(2^twos * 5^fives) = 2^(k-twos) * 5^(k-fives) / 10^k
	k := twos
	if fives > k {
		k = fives
	}
	num.Mul(num, new(big.Int).Lsh(bigOne, uint(k-twos)))
	num.Mul(num, new(big.Int).Exp(bigFive, big.NewInt(k-fives), nil))
	if x.Sign() != y.Sign() {
		num.Neg(num)
	}
	q, err := newDecimal(num, int64(x.exponent)-int64(y.exponent)-k)
	if err != nil {
		return nil, false
	}
	return q, true
}

// goldschmidt returns x/y to within a unit in the last place of c.
//
// x and y are both multiplied by a factor f until y reaches 1, at which
// point x holds the quotient. The first f is a float64 estimate of 1/y and
// each following f is 2-y, which squares the distance of y from 1 on every
// step.
func (c *Context) goldschmidt(x, y *Decimal) (*Decimal, error) {
	nc := c.working(guardDigits)
	f, err := reciprocalEstimate(y)
	if err != nil {
		return nil, err
	}
	ed := ErrDecimal{Ctx: nc}
	n, d := x, y
	for l := nc.newLoop("Quo", y, 1); ; {
		n = ed.Mul(n, f)
		d = ed.Mul(d, f)
		if ed.Err != nil {
			return nil, ed.Err
		}
		if d.isOne() {
			break
		}
		f = ed.Sub(decimalTwo, d)
		if ed.Err != nil {
			return nil, ed.Err
		}
		// d is within a unit of 1 at the working precision.
		if f.isOne() {
			break
		}
		if err := l.next(); err != nil {
			return nil, err
		}
	}
	return c.Round(n)
}

// Rem returns the remainder x - trunc(x/y)*y for y != 0. The result has
// the sign of x and is exact before rounding to c.
func (c *Context) Rem(x, y *Decimal) (*Decimal, error) {
	if y.IsZero() {
		return nil, errors.Wrapf(ErrDivisionByZero, "%s %% 0", x)
	}
	a, b, s := align(x, y)
	return c.result(new(big.Int).Rem(a, b), s)
}
