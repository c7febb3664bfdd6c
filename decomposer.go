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

// decomposer composes or decomposes a decimal value to and from individual parts.
// There are four separate parts: a boolean negative flag, a form byte with three possible states
// (finite=0, infinite=1, NaN=2), a base-2 big-endian integer
// coefficient (also known as a significand) as a []byte, and an int32 exponent.
// These are composed into a final value as "decimal = (neg) (form=finite) coefficient * 10 ^ exponent".
// A zero length coefficient is a zero value.
// If the form is not finite the coefficient and scale should be ignored.
//
// Implementations must return an error if a NaN or Infinity is attempted to be set while neither
// are supported.
type decomposer interface {
	// Decompose returns the internal decimal state into parts.
	// If the provided buf has sufficient capacity, buf may be returned as the coefficient with
	// the value set and length set as appropriate.
	Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32)

	// Compose sets the internal decimal value from parts. If the value cannot be
	// represented then an error should be returned.
	// The coefficent should not be modified. Successive calls to compose with
	// the same arguments should result in the same decimal value.
	Compose(form byte, negative bool, coefficient []byte, exponent int32) error
}

var _ decomposer = &Decimal{}

// Decompose returns the internal decimal state into parts. A Decimal is
// always finite.
func (d *Decimal) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	negative = d.coeff.Sign() < 0
	exponent = d.exponent
	if n := (d.coeff.BitLen() + 7) / 8; cap(buf) >= n {
		coefficient = d.coeff.FillBytes(buf[:n])
	} else {
		coefficient = d.coeff.Bytes()
	}
	return
}

// Compose sets d from parts, in canonical form. It is meant for decoding
// into a fresh Decimal; infinite and NaN forms fail with
// ErrUnrepresentable.
func (d *Decimal) Compose(form byte, negative bool, coefficient []byte, exponent int32) error {
	switch form {
	default:
		return errors.Errorf("unknown form: %v", form)
	case 0:
		// Finite form, set below.
	case 1:
		return errors.Wrap(ErrUnrepresentable, "infinite form")
	case 2:
		return errors.Wrap(ErrUnrepresentable, "NaN form")
	}
	coeff := new(big.Int).SetBytes(coefficient)
	if negative {
		coeff.Neg(coeff)
	}
	x, err := newDecimal(coeff, int64(exponent))
	if err != nil {
		return err
	}
	d.coeff.Set(&x.coeff)
	d.exponent = x.exponent
	return nil
}
