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
	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"
)

// decimal128Digits is the coefficient length of a BSON Decimal128.
const decimal128Digits = 34

// GetBSON implements bson.Getter. d is stored as a Decimal128, rounded half
// to even to 34 significant figures.
func (d *Decimal) GetBSON() (interface{}, error) {
	r, err := roundSigFigs(d, decimal128Digits, RoundHalfEven)
	if err != nil {
		return nil, err
	}
	v, err := bson.ParseDecimal128(r.String())
	if err != nil {
		return nil, errors.Wrapf(err, "%s as Decimal128", d)
	}
	return v, nil
}

// SetBSON implements bson.Setter. Decimal128 NaN and infinities fail with
// ErrUnrepresentable.
func (d *Decimal) SetBSON(raw bson.Raw) error {
	var w bson.Decimal128
	if err := raw.Unmarshal(&w); err != nil {
		return err
	}
	x, err := NewFromString(w.String())
	if err != nil {
		return errors.Wrap(ErrUnrepresentable, err.Error())
	}
	d.coeff.Set(&x.coeff)
	d.exponent = x.exponent
	return nil
}
