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

// Package sigfig implements arbitrary-precision decimals whose inexact
// operations (division, powers, roots, exponentials, logarithms and
// constants) are computed to a configurable number of significant figures.
package sigfig

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Decimal is an arbitrary-precision decimal. Its value is:
//
//     coeff * 10 ^ exponent
//
// A Decimal is always in canonical form: a non-zero coefficient is not
// divisible by ten and zero is stored as 0e0, so every value has exactly
// one representation. Decimals are immutable. Operations return new values
// and never modify their arguments. The zero value is a valid zero.
type Decimal struct {
	coeff    big.Int
	exponent int32
}

// MaxExponent and MinExponent are the bounds of a Decimal's exponent.
const (
	MaxExponent = math.MaxInt32
	MinExponent = math.MinInt32
)

var (
	bigZero  = big.NewInt(0)
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigFive  = big.NewInt(5)
	bigTen   = big.NewInt(10)
	maxInt64 = big.NewInt(math.MaxInt64)

	decimalZero = New(0, 0)
	decimalOne  = New(1, 0)
	decimalTwo  = New(2, 0)
	decimalTen  = New(1, 1)
)

// New creates a new decimal with the given coefficient and exponent. It
// panics if the canonical exponent does not fit in an int32, which can
// only happen for exponents within 19 of MaxExponent.
func New(coeff int64, exponent int32) *Decimal {
	return NewWithBigInt(big.NewInt(coeff), exponent)
}

// NewWithBigInt creates a new decimal with the given coefficient and
// exponent. coeff is copied. It panics under the same conditions as New.
func NewWithBigInt(coeff *big.Int, exponent int32) *Decimal {
	d, err := newDecimal(coeff, int64(exponent))
	if err != nil {
		panic(err)
	}
	return d
}

// NewFromInt64 returns the integer x as a Decimal.
func NewFromInt64(x int64) *Decimal {
	return New(x, 0)
}

// newDecimal returns the canonical Decimal equal to coeff * 10^exp. coeff
// is copied.
func newDecimal(coeff *big.Int, exp int64) (*Decimal, error) {
	d := new(Decimal)
	d.coeff.Set(coeff)
	exp = canonicalize(&d.coeff, exp)
	if exp > MaxExponent || exp < MinExponent {
		return nil, errors.Wrapf(ErrExponentOutOfRange, "exponent %d", exp)
	}
	d.exponent = int32(exp)
	return d, nil
}

// canonicalize strips trailing zero digits from coeff in place and returns
// the exponent adjusted to match. Zero always gets exponent 0.
func canonicalize(coeff *big.Int, exp int64) int64 {
	if coeff.Sign() == 0 {
		return 0
	}
	// Odd coefficients can't be divisible by ten.
	if coeff.Bit(0) != 0 {
		return exp
	}
	var q, r big.Int
	for {
		q.QuoRem(coeff, bigTen, &r)
		if r.Sign() != 0 {
			return exp
		}
		coeff.Set(&q)
		exp++
	}
}

// NewFromString creates a new decimal from s. The input is a signed decimal
// number with an optional fraction and an optional exponent introduced by
// 'e' or 'E', as printed by String.
func NewFromString(s string) (*Decimal, error) {
	orig := s
	var exp int64
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.ParseInt(s[i+1:], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "parse exponent: %s", s[i+1:])
		}
		exp = e
		s = s[:i]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		exp -= int64(len(s) - i - 1)
		s = s[:i] + s[i+1:]
	}
	if strings.HasPrefix(s, "+") {
		s = s[1:]
		if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
			return nil, errors.Errorf("parse mantissa: %s", orig)
		}
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("parse mantissa: %s", orig)
	}
	return newDecimal(i, exp)
}

// String returns d in plain notation when its adjusted exponent lies in
// [-6, 20] and in scientific notation otherwise, for example 1.5E+21.
func (d *Decimal) String() string {
	s := d.coeff.String()
	neg := d.coeff.Sign() < 0
	if neg {
		s = s[1:]
	}
	adj := int64(d.exponent) + int64(len(s)) - 1
	switch {
	case d.exponent >= 0 && adj <= 20:
		s += strings.Repeat("0", int(d.exponent))
	case d.exponent < 0 && adj >= -6:
		if left := -int(d.exponent) - len(s); left > 0 {
			s = "0." + strings.Repeat("0", left) + s
		} else if left < 0 {
			offset := -left
			s = s[:offset] + "." + s[offset:]
		} else {
			s = "0." + s
		}
	default:
		if len(s) > 1 {
			s = s[:1] + "." + s[1:]
		}
		sign := "+"
		if adj < 0 {
			sign = ""
		}
		s += "E" + sign + strconv.FormatInt(adj, 10)
	}
	if neg {
		s = "-" + s
	}
	return s
}

// GoString implements fmt.GoStringer.
func (d *Decimal) GoString() string {
	return fmt.Sprintf(`{Coeff: %s, Exponent: %d}`, d.coeff.String(), d.exponent)
}

// Coeff returns a copy of d's coefficient.
func (d *Decimal) Coeff() *big.Int {
	return new(big.Int).Set(&d.coeff)
}

// Exponent returns d's exponent.
func (d *Decimal) Exponent() int32 {
	return d.exponent
}

// Sign returns -1 if d < 0, 0 if d == 0 and +1 if d > 0.
func (d *Decimal) Sign() int {
	return d.coeff.Sign()
}

// IsZero reports whether d == 0.
func (d *Decimal) IsZero() bool {
	return d.coeff.Sign() == 0
}

// IsInteger reports whether d has no fractional part.
func (d *Decimal) IsInteger() bool {
	return d.exponent >= 0 || d.coeff.Sign() == 0
}

// NumDigits returns the number of significant figures of d. Zero has one.
func (d *Decimal) NumDigits() int64 {
	return numDigits(&d.coeff)
}

// adjusted returns the exponent of d's most significant digit.
func (d *Decimal) adjusted() int64 {
	return int64(d.exponent) + d.NumDigits() - 1
}

func (d *Decimal) isOne() bool {
	return d.exponent == 0 && d.coeff.Cmp(bigOne) == 0
}

// Abs returns |d|.
func (d *Decimal) Abs() *Decimal {
	if d.coeff.Sign() >= 0 {
		return d
	}
	return d.Neg()
}

// Neg returns -d.
func (d *Decimal) Neg() *Decimal {
	z := &Decimal{exponent: d.exponent}
	z.coeff.Neg(&d.coeff)
	return z
}

// Int64 returns d as an int64. It fails if d is not an integer or does not
// fit.
func (d *Decimal) Int64() (int64, error) {
	if !d.IsInteger() {
		return 0, errors.Errorf("%s is not an integer", d)
	}
	if d.adjusted() > 18 {
		return 0, errors.Wrapf(ErrOverflow, "%s does not fit in an int64", d)
	}
	v := new(big.Int).Mul(&d.coeff, pow10(int64(d.exponent)))
	if !v.IsInt64() {
		return 0, errors.Wrapf(ErrOverflow, "%s does not fit in an int64", d)
	}
	return v.Int64(), nil
}

// Cmp compares d and x and returns:
//
//   -1 if d <  x
//    0 if d == x
//   +1 if d >  x
//
func (d *Decimal) Cmp(x *Decimal) int {
	ds, xs := d.Sign(), x.Sign()
	switch {
	case ds < xs:
		return -1
	case ds > xs:
		return 1
	case ds == 0:
		return 0
	}
	// Same sign, both non-zero: the position of the leading digit decides
	// unless it is shared.
	if da, xa := d.adjusted(), x.adjusted(); da != xa {
		if (da > xa) == (ds > 0) {
			return 1
		}
		return -1
	}
	a, b, _ := align(d, x)
	return a.Cmp(b)
}

// align returns the coefficients of a and b scaled to a common exponent,
// and that exponent. The coefficient with the larger exponent is multiplied
// by a power of ten, so no digits are lost. The returned values may alias
// the coefficients of a and b and must not be modified.
func align(a, b *Decimal) (*big.Int, *big.Int, int64) {
	if a.exponent == b.exponent {
		return &a.coeff, &b.coeff, int64(a.exponent)
	}
	swapped := false
	if a.exponent < b.exponent {
		swapped = true
		b, a = a, b
	}
	s := int64(a.exponent) - int64(b.exponent)
	y := new(big.Int).Mul(&a.coeff, pow10(s))
	x := &b.coeff
	if swapped {
		x, y = y, x
	}
	return y, x, int64(b.exponent)
}
