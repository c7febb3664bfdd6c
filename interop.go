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

	fixed "github.com/govalues/decimal"
	"github.com/pkg/errors"
	shopspring "github.com/shopspring/decimal"
	"gopkg.in/inf.v0"
)

// NewFromFixed returns the exact value of a fixed-point decimal.
func NewFromFixed(x fixed.Decimal) *Decimal {
	coeff := new(big.Int).SetUint64(x.Coef())
	if x.Sign() < 0 {
		coeff.Neg(coeff)
	}
	return NewWithBigInt(coeff, -int32(x.Scale()))
}

// Fixed returns d as a fixed-point decimal. Digits that don't fit in its
// coefficient or scale are rounded half to even. It fails with ErrOverflow
// if the integer part of d has too many digits, or if a non-zero d rounds
// to zero.
func (d *Decimal) Fixed() (fixed.Decimal, error) {
	if d.IsZero() {
		return fixed.New(0, 0)
	}
	if d.adjusted() >= fixed.MaxPrec {
		return fixed.Decimal{}, errors.Wrapf(ErrOverflow, "%s has too many integer digits for a fixed-point decimal", d)
	}
	z := d
	for {
		var scale int64
		coeff := new(big.Int).Set(&z.coeff)
		if z.exponent < 0 {
			scale = -int64(z.exponent)
		} else {
			coeff.Mul(coeff, pow10(int64(z.exponent)))
		}
		excess := scale - fixed.MaxScale
		if e := numDigits(coeff) - fixed.MaxPrec; e > excess {
			excess = e
		}
		if excess <= 0 && !coeff.IsInt64() {
			// 19 digits, above math.MaxInt64.
			excess = 1
		}
		if excess <= 0 {
			if z.IsZero() {
				return fixed.Decimal{}, errors.Wrapf(ErrOverflow, "%s underflows a fixed-point decimal", d)
			}
			return fixed.New(coeff.Int64(), int(scale))
		}
		if excess > scale {
			return fixed.Decimal{}, errors.Wrapf(ErrOverflow, "%s has too many integer digits for a fixed-point decimal", d)
		}
		var err error
		if z, err = Round(z, int32(scale-excess), RoundHalfEven); err != nil {
			return fixed.Decimal{}, err
		}
	}
}

// NewFromShopspring returns the exact value of x.
func NewFromShopspring(x shopspring.Decimal) *Decimal {
	return NewWithBigInt(x.Coefficient(), x.Exponent())
}

// Shopspring returns the exact value of d as a shopspring decimal.
func (d *Decimal) Shopspring() shopspring.Decimal {
	return shopspring.NewFromBigInt(&d.coeff, d.exponent)
}

// NewFromInfDec returns the exact value of x.
func NewFromInfDec(x *inf.Dec) (*Decimal, error) {
	return newDecimal(x.UnscaledBig(), -int64(x.Scale()))
}

// InfDec returns the exact value of d as an inf.Dec. The exponent
// MinExponent has no corresponding scale and fails with
// ErrExponentOutOfRange.
func (d *Decimal) InfDec() (*inf.Dec, error) {
	if d.exponent == MinExponent {
		return nil, errors.Wrapf(ErrExponentOutOfRange, "%s has no inf.Dec scale", d)
	}
	return inf.NewDecBig(new(big.Int).Set(&d.coeff), inf.Scale(-d.exponent)), nil
}
