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
	"strconv"
)

// estimateDigits is the number of significant figures of a Decimal kept
// when it is reduced to a float64 for an initial guess.
const estimateDigits = 17

// reduce returns x's coefficient rounded to estimateDigits figures as a
// float64, and the exponent that goes with it. Arbitrary exponents don't
// fit in a float64, so they are kept separately.
func reduce(x *Decimal) (float64, int64, error) {
	r, err := roundSigFigs(x, estimateDigits, RoundHalfEven)
	if err != nil {
		return 0, 0, err
	}
	return float64(r.coeff.Int64()), int64(r.exponent), nil
}

// fromEstimate returns f * 10^shift using the shortest decimal that
// round trips f.
func fromEstimate(f float64, shift int64) (*Decimal, error) {
	d, err := NewFromString(strconv.FormatFloat(f, 'e', -1, 64))
	if err != nil {
		return nil, err
	}
	return newDecimal(&d.coeff, int64(d.exponent)+shift)
}

// reciprocalEstimate returns a guess for 1/y, y != 0, good to about 16
// figures.
func reciprocalEstimate(y *Decimal) (*Decimal, error) {
	sig, exp, err := reduce(y)
	if err != nil {
		return nil, err
	}
	return fromEstimate(1/sig, -exp)
}

// rootEstimate returns a guess for the n-th root of a, n > 1. a must be
// positive when n is even. The exponent e of a is split as e = q*n + r
// with 0 <= r < n, so the root is 10^q times the n-th root of sig*10^r.
func rootEstimate(a *Decimal, n int) (*Decimal, error) {
	sig, exp, err := reduce(a)
	if err != nil {
		return nil, err
	}
	neg := sig < 0
	if neg {
		sig = -sig
	}
	q := exp / int64(n)
	r := exp % int64(n)
	if r < 0 {
		q--
		r += int64(n)
	}
	m := math.Pow(10, (math.Log10(sig)+float64(r))/float64(n))
	if neg {
		m = -m
	}
	return fromEstimate(m, q)
}

// approx returns x as a float64 for loop bounds and other rough uses.
// It is only meaningful when x is well inside the float64 range.
func approx(x *Decimal) float64 {
	sig, exp, err := reduce(x)
	if err != nil {
		return math.Inf(x.Sign())
	}
	return sig * math.Pow10(int(exp))
}
