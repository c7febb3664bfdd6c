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

// Pow returns x**y. c's Precision must be > 0.
//
// Integer powers are computed by repeated squaring. Other powers of a
// positive x are computed as e**(y*ln(x)). A negative x can only be raised
// to a y whose reduced fraction has an odd denominator, which is taken as
// a root; anything else fails with ErrUnrepresentable.
func (c *Context) Pow(x, y *Decimal) (*Decimal, error) {
	if err := c.requirePrecision("Pow"); err != nil {
		return nil, err
	}
	switch {
	case y.Sign() < 0:
		if x.IsZero() {
			return nil, errors.Wrapf(ErrDivisionByZero, "%s**%s", x, y)
		}
		return c.refine(func(wc *Context) (*Decimal, bool, error) {
			z, err := wc.working(guardDigits).Pow(x, y.Neg())
			if err != nil {
				return nil, false, err
			}
			r, err := wc.Quo(decimalOne, z)
			return r, false, err
		})
	case y.IsZero():
		return decimalOne, nil
	case y.isOne():
		return c.Round(x)
	case x.IsZero():
		return decimalZero, nil
	case x.isOne():
		return decimalOne, nil
	}

	if y.IsInteger() {
		if y.adjusted() >= maxIntegerPowerDigits {
			return c.hugePower(x, y)
		}
		n := new(big.Int).Mul(&y.coeff, pow10(int64(y.exponent)))
		if x.Cmp(decimalTen) == 0 {
			// A power of ten is a shift of the exponent.
			return c.result(bigOne, n.Int64())
		}
		return c.refine(func(wc *Context) (*Decimal, bool, error) {
			return wc.integerPower(x, n)
		})
	}
	if x.Sign() > 0 {
		return c.refine(func(wc *Context) (*Decimal, bool, error) {
			z, err := wc.expLn(x, y)
			return z, false, err
		})
	}

	// y = num/den in lowest terms. den is a power of ten divided by the
	// common factor, so it is odd exactly when no factor of two remains.
	// The factor shares only twos or fives with the power of ten, so den is
	// at least 2**-exponent.
	if y.exponent < -31 {
		return nil, errors.Wrapf(ErrUnrepresentable, "%s**%s: denominator too large", x, y)
	}
	num := new(big.Int).Set(&y.coeff)
	den := new(big.Int).Set(pow10(-int64(y.exponent)))
	g := new(big.Int).GCD(nil, nil, num, den)
	num.Quo(num, g)
	den.Quo(den, g)
	if !den.IsInt64() || den.Int64() > math.MaxInt32 {
		return nil, errors.Wrapf(ErrUnrepresentable, "%s**%s: denominator %s too large", x, y, den)
	}
	if den.Bit(0) == 0 {
		return nil, errors.Wrapf(ErrUnrepresentable, "%s**%s: even root of negative value", x, y)
	}
	return c.refine(func(wc *Context) (*Decimal, bool, error) {
		// The root's error is multiplied by num.
		r, err := wc.working(guardDigits+uint32(numDigits(num))).RootN(x, int(den.Int64()))
		if err != nil {
			return nil, false, err
		}
		z, _, err := wc.integerPower(r, num)
		return z, false, err
	})
}

// maxIntegerPowerDigits is the number of digits from which an integer
// exponent is no longer expanded and Pow goes through logarithms.
const maxIntegerPowerDigits = 18

// hugePower returns x**y for an integer y with at least
// maxIntegerPowerDigits digits.
func (c *Context) hugePower(x, y *Decimal) (*Decimal, error) {
	if x.Cmp(decimalTen) == 0 {
		return nil, errors.Wrapf(ErrExponentOutOfRange, "10**%s", y)
	}
	odd := y.exponent == 0 && y.coeff.Bit(0) == 1
	return c.refine(func(wc *Context) (*Decimal, bool, error) {
		z, err := wc.expLn(x.Abs(), y)
		if err != nil {
			return nil, false, err
		}
		if x.Sign() < 0 && odd {
			z = z.Neg()
		}
		return z, false, nil
	})
}

// integerPower returns x**y for y > 0 to within a unit in the last place of
// c, and whether the result is exact. Short results are computed exactly.
func (c *Context) integerPower(x *Decimal, y *big.Int) (*Decimal, bool, error) {
	if y.IsInt64() && y.Int64() <= 4*int64(c.Precision)/x.NumDigits() {
		z, err := (&Context{}).powInt(x, y)
		return z, err == nil, err
	}
	// Each squaring or multiplication can lose half a unit in the last
	// place, and there are about twice as many of them as bits in y.
	nc := c.working(guardDigits + uint32(numDigits(y)))
	z, err := nc.powInt(x, y)
	if err != nil {
		return nil, false, err
	}
	r, err := c.Round(z)
	return r, false, err
}

// powInt returns x**y for y > 0, rounding every product to c.
func (c *Context) powInt(x *Decimal, y *big.Int) (*Decimal, error) {
	ed := ErrDecimal{Ctx: c}
	z := decimalOne
	b := new(big.Int).Set(y)
	for {
		if b.Bit(0) == 1 {
			z = ed.Mul(z, x)
		}
		b.Rsh(b, 1)
		if b.Sign() == 0 || ed.Err != nil {
			break
		}
		x = ed.Sqr(x)
	}
	return z, ed.Err
}

// expLn returns x**y as e**(y*ln(x)) for x > 0.
//
// An error of 10^-k in y*ln(x) turns into a relative error of about
// 10^-k in the result, so y*ln(x) needs as many digits after the decimal
// point as the result needs significant figures. The working precision is
// raised by the number of digits before the decimal point.
func (c *Context) expLn(x, y *Decimal) (*Decimal, error) {
	extra := uint32(guardDigits)
	for {
		nc := c.working(extra)
		ed := ErrDecimal{Ctx: nc}
		t := ed.Mul(y, ed.Ln(x))
		if ed.Err != nil {
			return nil, ed.Err
		}
		if a := t.adjusted(); a >= 0 {
			if a >= expLimit {
				return nil, errors.Wrapf(ErrExponentOutOfRange, "%s**%s", x, y)
			}
			if need := guardDigits + uint32(a) + 1; need > extra {
				extra = need
				continue
			}
		}
		z, err := nc.Exp(t)
		if err != nil {
			return nil, err
		}
		return c.Round(z)
	}
}

// RootN returns the n-th root of a. c's Precision must be > 0. Even roots of
// negative values and the zeroth root fail with ErrDomain.
//
// The root is found with Newton's method on x**n - a, starting from a
// float64 estimate and carrying guard digits. Iteration stops when two
// successive estimates agree to the working precision or settle on
// adjacent values, in which case the one whose n-th power is closer to a
// wins.
func (c *Context) RootN(a *Decimal, n int) (*Decimal, error) {
	if err := c.requirePrecision("RootN"); err != nil {
		return nil, err
	}
	if a.Sign() < 0 && n%2 == 0 {
		return nil, errors.Wrapf(ErrDomain, "even root of negative value: root %d of %s", n, a)
	}
	switch {
	case a.IsZero():
		return decimalZero, nil
	case a.isOne():
		return decimalOne, nil
	case n < 0:
		if -n < 0 {
			return nil, errors.Wrapf(ErrDomain, "root %d out of range", n)
		}
		return c.refine(func(wc *Context) (*Decimal, bool, error) {
			z, err := wc.working(guardDigits).RootN(a, -n)
			if err != nil {
				return nil, false, err
			}
			r, err := wc.Quo(decimalOne, z)
			return r, false, err
		})
	case n == 0:
		return nil, errors.Wrapf(ErrDomain, "zeroth root of %s", a)
	case n == 1:
		return c.Round(a)
	}
	return c.refine(func(wc *Context) (*Decimal, bool, error) {
		return wc.rootN(a, n)
	})
}

// rootN returns the n-th root of a, n > 1, to within a unit in the last
// place of c, and whether it is exact.
func (c *Context) rootN(a *Decimal, n int) (*Decimal, bool, error) {
	nc := c.working(guardDigits)
	bn := big.NewInt(int64(n))
	x0, err := rootEstimate(a, n)
	if err != nil {
		return nil, false, err
	}
	p, err := nc.powInt(x0, bn)
	if err != nil {
		return nil, false, err
	}
	if p.Cmp(a) == 0 {
		return x0, true, nil
	}

	residual := func(z *Decimal) (*Decimal, error) {
		p, err := nc.powInt(z, bn)
		if err != nil {
			return nil, err
		}
		d, err := nc.Sub(a, p)
		if err != nil {
			return nil, err
		}
		return d.Abs(), nil
	}
	l := c.newSolver("RootN", a, 1, residual)
	if _, _, err := l.done(x0); err != nil {
		return nil, false, err
	}
	dn := NewFromInt64(int64(n))
	nm1 := big.NewInt(int64(n - 1))
	ed := ErrDecimal{Ctx: nc}
	for {
		// x1 = x0 - (x0**n - a) / (n * x0**(n-1))
		xm, err := nc.powInt(x0, nm1)
		if err != nil {
			return nil, false, err
		}
		f := ed.Sub(ed.Mul(xm, x0), a)
		f = ed.Quo(f, ed.Mul(dn, xm))
		x1 := ed.Sub(x0, f)
		if ed.Err != nil {
			return nil, false, ed.Err
		}
		z, ok, err := l.done(x1)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return z, false, nil
		}
		x0 = x1
	}
}

// Sqrt returns the square root of x. Negative values fail with ErrDomain.
func (c *Context) Sqrt(x *Decimal) (*Decimal, error) {
	return c.RootN(x, 2)
}

// Cbrt returns the cube root of x.
func (c *Context) Cbrt(x *Decimal) (*Decimal, error) {
	return c.RootN(x, 3)
}

// Hypot returns sqrt(x*x + y*y).
func (c *Context) Hypot(x, y *Decimal) (*Decimal, error) {
	if err := c.requirePrecision("Hypot"); err != nil {
		return nil, err
	}
	return c.refine(func(wc *Context) (*Decimal, bool, error) {
		// The sum of squares carries twice the figures of the root.
		ed := ErrDecimal{Ctx: wc.working(wc.Precision)}
		z := ed.Sqrt(ed.Add(ed.Sqr(x), ed.Sqr(y)))
		return z, false, ed.Err
	})
}

// pow2 returns 2**k exactly. Negative powers of two have finite decimal
// expansions since 2**-k = 5**k * 10**-k.
func pow2(k int64) (*Decimal, error) {
	if k >= 0 {
		return newDecimal(new(big.Int).Lsh(bigOne, uint(k)), 0)
	}
	f := new(big.Int).Exp(bigFive, big.NewInt(-k), nil)
	return newDecimal(f, k)
}
