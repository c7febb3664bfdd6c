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

// floatFormat describes an IEEE 754 binary interchange format.
type floatFormat struct {
	fracBits uint // stored fraction bits, without the implicit one
	expBits  uint
	bias     int64
}

var (
	float32Format = floatFormat{fracBits: 23, expBits: 8, bias: 127}
	float64Format = floatFormat{fracBits: 52, expBits: 11, bias: 1023}
)

func (f floatFormat) bits() uint {
	return 1 + f.expBits + f.fracBits
}

// minExp is the exponent of the smallest normal value.
func (f floatFormat) minExp() int64 {
	return 1 - f.bias
}

func (f floatFormat) maxExp() int64 {
	return f.bias
}

// overflowLimit returns the smallest magnitude that rounds past the largest
// finite value: (2 - 2^-(fracBits+1)) * 2^maxExp, half a unit in the last
// place above it. A tie there rounds to the even, infinite, neighbour.
func (f floatFormat) overflowLimit() (*Decimal, error) {
	m := new(big.Int).Lsh(bigOne, f.fracBits+2)
	m.Sub(m, bigOne)
	p, err := pow2(f.maxExp() - int64(f.fracBits) - 1)
	if err != nil {
		return nil, err
	}
	return (&Context{}).Mul(NewWithBigInt(m, 0), p)
}

// NewFromFloat64 returns the exact value of f. Every finite float64 has a
// finite decimal expansion. NaN and infinities fail with
// ErrUnrepresentable.
func NewFromFloat64(f float64) (*Decimal, error) {
	return float64Format.decimal(math.Float64bits(f))
}

// NewFromFloat32 returns the exact value of f.
func NewFromFloat32(f float32) (*Decimal, error) {
	return float32Format.decimal(uint64(math.Float32bits(f)))
}

// decimal returns the value of the float with the given bit pattern.
func (f floatFormat) decimal(bits uint64) (*Decimal, error) {
	fracMask := uint64(1)<<f.fracBits - 1
	expMask := int64(1)<<f.expBits - 1
	neg := bits>>(f.bits()-1) != 0
	exp := int64(bits>>f.fracBits) & expMask
	frac := bits & fracMask
	if exp == expMask {
		return nil, errors.Wrapf(ErrUnrepresentable, "non-finite float bits %#x", bits)
	}
	if exp == 0 {
		// Subnormals share the smallest normal exponent, without the
		// implicit one.
		exp = 1
	} else {
		frac |= fracMask + 1
	}
	exp -= f.bias + int64(f.fracBits)
	p, err := pow2(exp)
	if err != nil {
		return nil, err
	}
	coeff := new(big.Int).SetUint64(frac)
	if neg {
		coeff.Neg(coeff)
	}
	return (&Context{}).Mul(NewWithBigInt(coeff, 0), p)
}

// Float64 returns d rounded to the nearest float64, ties to even. Values
// that round beyond the largest finite float64 fail with ErrOverflow; values too
// small for a subnormal become zero.
func (d *Decimal) Float64() (float64, error) {
	b, err := float64Format.encode(d)
	return math.Float64frombits(b), err
}

// Float32 returns d rounded to the nearest float32, ties to even.
func (d *Decimal) Float32() (float32, error) {
	b, err := float32Format.encode(d)
	return math.Float32frombits(uint32(b)), err
}

// encode returns the bit pattern of the float nearest to d.
//
// |d| is divided by 2^exp, where exp is floor(log2|d|) for normal values and
// the minimum exponent for subnormals, to get a significand in [1, 2) or
// [0, 1). Fraction bits are peeled off the significand one at a time, one
// more than the format stores, and the remainder decides the rounding.
func (f floatFormat) encode(d *Decimal) (uint64, error) {
	if d.IsZero() {
		return 0, nil
	}
	exact := &Context{}
	abs := d.Abs()
	limit, err := f.overflowLimit()
	if err != nil {
		return 0, err
	}
	if abs.Cmp(limit) >= 0 {
		return 0, errors.Wrapf(ErrOverflow, "%s overflows a %d-bit float", d, f.bits())
	}

	minNormal, err := pow2(f.minExp())
	if err != nil {
		return 0, err
	}
	subnormal := abs.Cmp(minNormal) < 0
	exp := f.minExp()
	if !subnormal {
		exp = floorLog2(abs)
	}
	scale, err := pow2(-exp)
	if err != nil {
		return 0, err
	}
	sig, err := exact.Mul(abs, scale)
	if err != nil {
		return 0, err
	}

	var frac uint64
	for i := uint(0); i <= f.fracBits; i++ {
		frac <<= 1
		if sig.Cmp(decimalOne) >= 0 {
			frac |= 1
			if sig, err = exact.Sub(sig, decimalOne); err != nil {
				return 0, err
			}
		}
		if sig, err = exact.Mul(sig, decimalTwo); err != nil {
			return 0, err
		}
	}
	// sig is now twice the remainder, in units of the last kept bit.
	if c := sig.Cmp(decimalOne); c > 0 || c == 0 && frac&1 == 1 {
		frac++
	}

	implicit := uint64(1) << f.fracBits
	switch {
	case frac == implicit<<1:
		// Rounded up to the next power of two.
		frac >>= 1
		exp++
		if exp > f.maxExp() {
			return 0, errors.Wrapf(ErrOverflow, "%s overflows a %d-bit float", d, f.bits())
		}
	case subnormal && frac == implicit:
		// Rounded up to the smallest normal.
		subnormal = false
	}

	var expField uint64
	if !subnormal {
		expField = uint64(exp + f.bias)
	}
	b := expField<<f.fracBits | frac&(implicit-1)
	if d.Sign() < 0 {
		b |= 1 << (f.bits() - 1)
	}
	return b, nil
}

// floorLog2 returns floor(log2(d)) for d > 0.
func floorLog2(d *Decimal) int64 {
	num := new(big.Int).Set(&d.coeff)
	den := bigOne
	if d.exponent >= 0 {
		num.Mul(num, pow10(int64(d.exponent)))
	} else {
		den = pow10(-int64(d.exponent))
	}
	// num/den lies in (2^(k-1), 2^(k+1)).
	k := int64(num.BitLen() - den.BitLen())
	t := new(big.Int)
	if k >= 0 {
		if t.Lsh(den, uint(k)); num.Cmp(t) < 0 {
			k--
		}
	} else {
		if t.Lsh(num, uint(-k)); t.Cmp(den) < 0 {
			k--
		}
	}
	return k
}
