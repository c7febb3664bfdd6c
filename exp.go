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
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// expLimit bounds the adjusted exponent of arguments to Exp. e**x for
// |x| >= 10^expLimit has a decimal exponent beyond the int32 range.
const expLimit = 10

// Exp returns e**x. c's Precision must be > 0.
func (c *Context) Exp(x *Decimal) (*Decimal, error) {
	if err := c.requirePrecision("Exp"); err != nil {
		return nil, err
	}
	if x.IsZero() {
		return decimalOne, nil
	}
	if x.adjusted() >= expLimit {
		return nil, errors.Wrapf(ErrExponentOutOfRange, "exp(%s)", x)
	}
	if x.Sign() < 0 {
		return c.refine(func(wc *Context) (*Decimal, bool, error) {
			z, err := wc.working(guardDigits).exp(x.Neg())
			if err != nil {
				return nil, false, err
			}
			r, err := wc.Quo(decimalOne, z)
			return r, false, err
		})
	}
	return c.refine(func(wc *Context) (*Decimal, bool, error) {
		z, err := wc.exp(x)
		return z, false, err
	})
}

// exp returns e**x for x > 0 to within a unit in the last place of c.
//
// x is halved k times to r = x/2**k <= 1, e**r is summed from the Taylor
// series 1 + r + r**2/2! + ..., and the sum is squared k times. Each
// squaring doubles the relative error, which costs k*log10(2) guard
// digits.
func (c *Context) exp(x *Decimal) (*Decimal, error) {
	var k int64
	if a := approx(x); a > 1 {
		k = int64(math.Ceil(math.Log2(a)))
	}
	extra := uint32(guardDigits+2) + uint32(k*3/10+1)
	nc := c.working(extra)
	ed := ErrDecimal{Ctx: nc}

	r := x
	if k > 0 {
		h, err := pow2(-k)
		if err != nil {
			return nil, err
		}
		if r, err = (&Context{}).Mul(x, h); err != nil {
			return nil, err
		}
	}
	l := nc.newLoop("exp", x, 2)
	sum := decimalOne
	term := decimalOne
	for n := int64(1); ; n++ {
		term = ed.Quo(ed.Mul(term, r), NewFromInt64(n))
		sum = ed.Add(sum, term)
		if ed.Err != nil {
			return nil, ed.Err
		}
		_, ok, err := l.done(sum)
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
	}
	for i := int64(0); i < k; i++ {
		sum = ed.Sqr(sum)
	}
	if ed.Err != nil {
		return nil, ed.Err
	}
	return c.Round(sum)
}

// Exp2 returns 2**x.
func (c *Context) Exp2(x *Decimal) (*Decimal, error) {
	return c.Pow(decimalTwo, x)
}

// Exp10 returns 10**x.
func (c *Context) Exp10(x *Decimal) (*Decimal, error) {
	return c.Pow(decimalTen, x)
}

// Ln returns the natural log of x. c's Precision must be > 0. Non-positive
// values fail with ErrDomain.
//
// Close to 1, ln(x) is summed from the Mercator series of x-1. Elsewhere x
// is written as y * 10^scale with y in [0.1, 1), so that
// ln(x) = ln(y) + scale*ln(10), and ln(y) is summed from the Mercator
// series of y-1.
func (c *Context) Ln(x *Decimal) (*Decimal, error) {
	if err := c.requirePrecision("Ln"); err != nil {
		return nil, err
	}
	if x.Sign() <= 0 {
		return nil, errors.Wrapf(ErrDomain, "natural log of non-positive value: %s", x)
	}
	if x.isOne() {
		return decimalZero, nil
	}
	if x.Cmp(decimalTen) == 0 {
		return c.Ln10()
	}
	return c.refine(func(wc *Context) (*Decimal, bool, error) {
		z, err := wc.ln(x)
		return z, false, err
	})
}

// ln returns the natural log of x > 0, x != 1, to within a unit in the
// last place of c.
func (c *Context) ln(x *Decimal) (*Decimal, error) {
	d, err := (&Context{}).Sub(x, decimalOne)
	if err != nil {
		return nil, err
	}
	if d.adjusted() < -1 {
		// |x-1| < 0.1
		sum, err := c.working(guardDigits).mercator(d)
		if err != nil {
			return nil, err
		}
		return c.Round(sum)
	}

	nd := x.NumDigits()
	scale := nd + int64(x.exponent)
	extra := uint32(guardDigits)
	if x.adjusted() == 0 {
		// For x in [1.1, 10), ln(y) and scale*ln(10) partly cancel and
		// the digits they share are lost.
		extra += uint32(1 - d.adjusted())
	}
	nc := c.working(extra)
	ed := ErrDecimal{Ctx: nc}

	y, err := newDecimal(&x.coeff, -nd)
	if err != nil {
		return nil, err
	}
	u := ed.Sub(y, decimalOne)
	if ed.Err != nil {
		return nil, ed.Err
	}
	sum, err := nc.mercator(u)
	if err != nil {
		return nil, err
	}
	if scale != 0 {
		ln10, err := nc.Ln10()
		if err != nil {
			return nil, err
		}
		sum = ed.Add(sum, ed.Mul(NewFromInt64(scale), ln10))
		if ed.Err != nil {
			return nil, ed.Err
		}
	}
	return c.Round(sum)
}

// mercatorItersPerDigit bounds the terms of the Mercator series. u is as
// low as -0.9, which costs about 22 terms per digit.
const mercatorItersPerDigit = 30

// mercator returns ln(1+u) for -1 < u < 1 from the series
// u - u**2/2 + u**3/3 - ..., summed until the sum stops changing. Every
// term adds a rounding error, so the sum carries a digit for each digit
// of the term count beyond c's precision. The result is not rounded to c.
func (c *Context) mercator(u *Decimal) (*Decimal, error) {
	maxTerms := 10 + mercatorItersPerDigit*uint64(c.Precision)
	nc := c.working(uint32(numDigits(new(big.Int).SetUint64(maxTerms))))
	ed := ErrDecimal{Ctx: nc}
	sum := decimalZero
	pow := u
	l := nc.newLoop("ln", u, mercatorItersPerDigit)
	for k := int64(1); ; k++ {
		term := ed.Quo(pow, NewFromInt64(k))
		if ed.Err != nil {
			return nil, ed.Err
		}
		if k%2 == 0 {
			term = term.Neg()
		}
		sum = ed.Add(sum, term)
		if ed.Err != nil {
			return nil, ed.Err
		}
		_, ok, err := l.done(sum)
		if err != nil {
			return nil, err
		}
		if ok {
			return sum, nil
		}
		pow = ed.Mul(pow, u)
	}
}

// Log returns the logarithm of x to the given base, ln(x)/ln(base). A base
// of one fails with ErrDomain. Log(1, 0) is 0.
func (c *Context) Log(x, base *Decimal) (*Decimal, error) {
	if err := c.requirePrecision("Log"); err != nil {
		return nil, err
	}
	if base.isOne() {
		return nil, errors.Wrapf(ErrDomain, "log of %s to base 1", x)
	}
	if x.isOne() && base.IsZero() {
		return decimalZero, nil
	}
	if x.Sign() <= 0 || base.Sign() <= 0 {
		return nil, errors.Wrapf(ErrDomain, "log of %s to base %s", x, base)
	}
	if base.Cmp(decimalTen) == 0 && x.coeff.Cmp(bigOne) == 0 {
		return c.Round(NewFromInt64(int64(x.exponent)))
	}
	return c.refine(func(wc *Context) (*Decimal, bool, error) {
		ed := ErrDecimal{Ctx: wc.working(guardDigits)}
		lx := ed.Ln(x)
		lb := ed.Ln(base)
		if ed.Err != nil {
			return nil, false, ed.Err
		}
		z, err := wc.Quo(lx, lb)
		return z, false, err
	})
}

// Log2 returns the base 2 logarithm of x.
func (c *Context) Log2(x *Decimal) (*Decimal, error) {
	return c.Log(x, decimalTwo)
}

// Log10 returns the base 10 logarithm of x.
func (c *Context) Log10(x *Decimal) (*Decimal, error) {
	return c.Log(x, decimalTen)
}
