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
	"sync"
)

// constant is a lazily computed mathematical constant. The value is kept
// at the largest working precision it was requested at, and recomputed
// when a more precise request comes in.
type constant struct {
	name     string
	generate func(c *Context) (*Decimal, error)

	mu    sync.Mutex
	value *Decimal
	prec  uint32
}

// The constants form a small DAG: tau uses pi, everything else uses only
// the arithmetic. ln 10 is its own base case and never goes through Ln.
var (
	constE    = &constant{name: "E", generate: generateE}
	constPi   = &constant{name: "Pi", generate: generatePi}
	constTau  = &constant{name: "Tau", generate: generateTau}
	constPhi  = &constant{name: "Phi", generate: generatePhi}
	constLn10 = &constant{name: "Ln10", generate: generateLn10}
)

// get returns the constant rounded to c.
func (k *constant) get(c *Context) (*Decimal, error) {
	if err := c.requirePrecision(k.name); err != nil {
		return nil, err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return c.refine(func(wc *Context) (*Decimal, bool, error) {
		if k.value == nil || k.prec < wc.Precision {
			v, err := k.generate(wc)
			if err != nil {
				return nil, false, err
			}
			k.value, k.prec = v, wc.Precision
		}
		return k.value, false, nil
	})
}

// reset drops the cached value.
func (k *constant) reset() {
	k.mu.Lock()
	k.value, k.prec = nil, 0
	k.mu.Unlock()
}

// E returns Euler's number e.
func (c *Context) E() (*Decimal, error) {
	return constE.get(c)
}

// Pi returns the ratio of a circle's circumference to its diameter.
func (c *Context) Pi() (*Decimal, error) {
	return constPi.get(c)
}

// Tau returns 2*pi.
func (c *Context) Tau() (*Decimal, error) {
	return constTau.get(c)
}

// Phi returns the golden ratio (1+sqrt(5))/2.
func (c *Context) Phi() (*Decimal, error) {
	return constPhi.get(c)
}

// Ln10 returns the natural log of 10.
func (c *Context) Ln10() (*Decimal, error) {
	return constLn10.get(c)
}

func generateE(c *Context) (*Decimal, error) {
	return c.Exp(decimalOne)
}

// generatePi sums the Chudnovsky series
//
//   426880*sqrt(10005)/pi = sum M(q)*L(q)/X(q)
//
// where M(q) = (6q)!/((3q)!(q!)^3), L(q) = 545140134q + 13591409 and
// X(q) = (-262537412640768000)^q. Every term adds about 14 digits.
func generatePi(c *Context) (*Decimal, error) {
	nc := c.working(guardDigits)
	ed := ErrDecimal{Ctx: nc}
	var (
		l   = big.NewInt(13591409)
		x   = big.NewInt(1)
		k   = big.NewInt(-6)
		m   = big.NewInt(1)
		num = new(big.Int)
		t   = new(big.Int)
	)
	dl := big.NewInt(545140134)
	dx := big.NewInt(-262537412640768000)
	dk := big.NewInt(12)
	sum := decimalZero
	lp := nc.newLoop("pi", decimalZero, 1)
	for q := int64(0); ; q++ {
		num.Mul(m, l)
		sum = ed.Add(sum, ed.Quo(NewWithBigInt(num, 0), NewWithBigInt(x, 0)))
		if ed.Err != nil {
			return nil, ed.Err
		}
		_, ok, err := lp.done(sum)
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		l.Add(l, dl)
		x.Mul(x, dx)
		k.Add(k, dk)
		// m *= (k^3 - 16k) / (q+1)^3, which divides exactly.
		t.Mul(k, k)
		t.Sub(t, big.NewInt(16))
		t.Mul(t, k)
		m.Mul(m, t)
		t.SetInt64(q + 1)
		t.Mul(t, t).Mul(t, big.NewInt(q+1))
		m.Quo(m, t)
	}
	s := ed.Sqrt(New(10005, 0))
	pi := ed.Quo(ed.Mul(New(426880, 0), s), sum)
	if ed.Err != nil {
		return nil, ed.Err
	}
	return c.Round(pi)
}

func generateTau(c *Context) (*Decimal, error) {
	pi, err := constPi.get(c.working(guardDigits))
	if err != nil {
		return nil, err
	}
	return c.Mul(decimalTwo, pi)
}

func generatePhi(c *Context) (*Decimal, error) {
	ed := ErrDecimal{Ctx: c.working(guardDigits)}
	s := ed.Sqrt(New(5, 0))
	p := ed.Quo(ed.Add(decimalOne, s), decimalTwo)
	if ed.Err != nil {
		return nil, ed.Err
	}
	return c.Round(p)
}

// generateLn10 is the base case Ln relies on: ln(10) = -ln(0.1), summed
// directly from the Mercator series of 0.1-1.
func generateLn10(c *Context) (*Decimal, error) {
	nc := c.working(guardDigits)
	s, err := nc.mercator(New(-9, -1))
	if err != nil {
		return nil, err
	}
	return c.Round(s.Neg())
}
