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

// Round returns x rounded to c.Precision significant figures. If c has zero
// Precision, x is returned unchanged. If c has no Rounding specified,
// RoundHalfUp is used.
func (c *Context) Round(x *Decimal) (*Decimal, error) {
	if c.Precision == 0 {
		return x, nil
	}
	return roundSigFigs(x, int64(c.Precision), c.rounding())
}

func (c *Context) rounding() Rounder {
	if c.Rounding == nil {
		return roundHalfUp
	}
	return c.Rounding
}

// Rounder defines a function that returns true if 1 should be added to the
// absolute value of a number being rounded. result is the absolute value of
// the kept digits, to which the 1 would be added. neg reports whether the
// number being rounded is negative. half is -1 if the discarded digits are
// < 0.5, 0 if = 0.5, or 1 if > 0.5. A Rounder is only called when some of
// the discarded digits are non-zero.
type Rounder func(result *big.Int, neg bool, half int) bool

var (
	// RoundDown rounds toward 0; truncate.
	RoundDown Rounder = roundDown
	// RoundHalfUp rounds up if the digits are >= 0.5, so ties go away from
	// zero.
	RoundHalfUp Rounder = roundHalfUp
	// RoundHalfEven rounds up if the digits are > 0.5. If the digits are equal
	// to 0.5, it rounds up if the previous digit is odd, always producing an
	// even digit.
	RoundHalfEven Rounder = roundHalfEven
	// RoundCeiling towards +Inf: rounds up if digits are > 0 and the number
	// is positive.
	RoundCeiling Rounder = roundCeiling
	// RoundFloor towards -Inf: rounds up if digits are > 0 and the number
	// is negative.
	RoundFloor Rounder = roundFloor
	// RoundHalfDown rounds up if the digits are > 0.5.
	RoundHalfDown Rounder = roundHalfDown
	// RoundUp rounds away from 0.
	RoundUp Rounder = roundUp
)

func roundDown(result *big.Int, neg bool, half int) bool {
	return false
}

func roundUp(result *big.Int, neg bool, half int) bool {
	return true
}

func roundHalfUp(result *big.Int, neg bool, half int) bool {
	return half >= 0
}

func roundHalfEven(result *big.Int, neg bool, half int) bool {
	if half > 0 {
		return true
	}
	if half < 0 {
		return false
	}
	return result.Bit(0) == 1
}

func roundHalfDown(result *big.Int, neg bool, half int) bool {
	return half > 0
}

func roundFloor(result *big.Int, neg bool, half int) bool {
	return neg
}

func roundCeiling(result *big.Int, neg bool, half int) bool {
	return !neg
}

// roundSignificand returns sig with its n least significant digits
// removed, rounded according to r. n must be positive.
func roundSignificand(sig *big.Int, n int64, r Rounder) *big.Int {
	neg := sig.Sign() < 0
	q := new(big.Int)
	var half int
	if n > numDigits(sig) {
		// Every digit is discarded and what is left is below one half.
		if sig.Sign() == 0 {
			return q
		}
		half = -1
	} else {
		divisor := pow10(n)
		m := new(big.Int)
		q.QuoRem(sig, divisor, m)
		q.Abs(q)
		if m.Sign() == 0 {
			if neg {
				q.Neg(q)
			}
			return q
		}
		m.Abs(m)
		m.Lsh(m, 1)
		half = m.Cmp(divisor)
	}
	if r(q, neg, half) {
		q.Add(q, bigOne)
	}
	if neg {
		q.Neg(q)
	}
	return q
}

func roundSigFigs(x *Decimal, maxSigFigs int64, r Rounder) (*Decimal, error) {
	cut := x.NumDigits() - maxSigFigs
	if cut <= 0 {
		return x, nil
	}
	return newDecimal(roundSignificand(&x.coeff, cut, r), int64(x.exponent)+cut)
}

// RoundSigFigs returns x rounded to at most maxSigFigs significant figures
// using r. A nil r means RoundHalfUp. maxSigFigs must be positive.
func RoundSigFigs(x *Decimal, maxSigFigs int, r Rounder) (*Decimal, error) {
	if maxSigFigs <= 0 {
		return nil, errors.Wrapf(ErrInvalidPrecision, "cannot round to %d significant figures", maxSigFigs)
	}
	if r == nil {
		r = roundHalfUp
	}
	return roundSigFigs(x, int64(maxSigFigs), r)
}

// Round returns x rounded to places digits after the decimal point using r.
// Negative places round to the left of the decimal point: -2 rounds to a
// multiple of 100. A nil r means RoundHalfUp.
func Round(x *Decimal, places int32, r Rounder) (*Decimal, error) {
	if r == nil {
		r = roundHalfUp
	}
	cut := -int64(places) - int64(x.exponent)
	if cut <= 0 {
		return x, nil
	}
	return newDecimal(roundSignificand(&x.coeff, cut, r), -int64(places))
}

// Trunc returns the integer part of x.
func Trunc(x *Decimal) (*Decimal, error) {
	return Round(x, 0, RoundDown)
}

// Floor returns the greatest integer <= x.
func Floor(x *Decimal) (*Decimal, error) {
	return Round(x, 0, RoundFloor)
}

// Ceil returns the least integer >= x.
func Ceil(x *Decimal) (*Decimal, error) {
	return Round(x, 0, RoundCeiling)
}

// refinements is the number of times a result too close to a rounding
// boundary is recomputed with more guard digits before it is rounded as
// is.
const refinements = 2

// roundNear rounds z to c. z is known to within one unit in its wp-th
// significant figure; ok reports whether every value in that range rounds
// to the same result.
func (c *Context) roundNear(z *Decimal, wp uint32) (*Decimal, bool, error) {
	r, err := c.Round(z)
	if err != nil || z.IsZero() {
		return r, err == nil, err
	}
	ulp, err := newDecimal(bigOne, z.adjusted()-int64(wp)+1)
	if err != nil {
		return r, false, nil
	}
	exact := &Context{}
	for _, op := range []func(x, y *Decimal) (*Decimal, error){exact.Add, exact.Sub} {
		b, err := op(z, ulp)
		if err != nil {
			return r, false, nil
		}
		if b, err = c.Round(b); err != nil || b.Cmp(r) != 0 {
			return r, false, nil
		}
	}
	return r, true, nil
}

// refine computes a result with f at increasing working precisions until
// it rounds to c unambiguously. f returns a value within one unit in the
// last place of the Context it is given, and whether that value is exact.
func (c *Context) refine(f func(wc *Context) (*Decimal, bool, error)) (*Decimal, error) {
	extra := uint32(guardDigits)
	for i := 0; ; i++ {
		wc := c.working(extra)
		z, exact, err := f(wc)
		if err != nil {
			return nil, err
		}
		if exact {
			return c.Round(z)
		}
		r, ok, err := c.roundNear(z, wc.Precision)
		if ok || err != nil || i == refinements {
			return r, err
		}
		extra = 2*extra + 4
	}
}
