// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file is adapted from https://github.com/robpike/ivy/blob/master/value/loop.go.

package sigfig

import "github.com/pkg/errors"

// loop tracks an iterative computation: series summation, Goldschmidt
// division or Newton's method.
type loop struct {
	c             *Context // Context the final result is rounded to.
	name          string   // The name of the function we are evaluating.
	i             uint64   // Loop count.
	maxIterations uint64   // When to give up.
	arg           *Decimal // original argument to function; only used for diagnostic.
	prevZ         *Decimal // Result from the previous iteration.

	// residual measures how far a candidate result is from satisfying the
	// equation being solved. It is nil for series summation.
	residual func(*Decimal) (*Decimal, error)
}

// newLoop returns a new loop checker. The arguments are the name
// of the function being evaluated, the argument to the function, and
// the maximum number of iterations to perform before giving up.
// The last number in terms of iterations per digit, so the caller can
// ignore the precision setting.
func (c *Context) newLoop(name string, x *Decimal, itersPerDigit int) *loop {
	return &loop{
		c:             c,
		name:          name,
		arg:           x,
		maxIterations: 10 + uint64(itersPerDigit)*uint64(c.Precision),
	}
}

// newSolver is like newLoop for root finding. Results are rounded to c,
// while iterates are expected to carry guard digits beyond it.
func (c *Context) newSolver(name string, x *Decimal, itersPerDigit int, residual func(*Decimal) (*Decimal, error)) *loop {
	l := c.newLoop(name, x, itersPerDigit)
	l.residual = residual
	return l
}

// done reports whether the loop has settled, given the latest iterate z.
// When it has, the result rounded to l.c is returned with it.
//
// Any loop settles once an iterate equals the previous one. A solver also
// settles when two successive iterates round to the same value, or to
// values one unit in the last place apart. The latter happens when the
// iteration oscillates around a rounding boundary; the candidate with the
// smaller residual is returned.
//
// If it does not settle after the maximum number of iterations, done
// returns an error wrapping ErrNoConvergence.
func (l *loop) done(z *Decimal) (*Decimal, bool, error) {
	if prev := l.prevZ; prev != nil {
		if z.Cmp(prev) == 0 {
			r, err := l.c.Round(z)
			return r, err == nil, err
		}
		if l.residual != nil {
			r, ok, err := l.settle(prev, z)
			if ok || err != nil {
				return r, ok, err
			}
		}
	}
	l.i++
	if l.i > l.maxIterations {
		return nil, false, errors.Wrapf(ErrNoConvergence, "%s %s: after %d iterations; prev,last result %s,%s", l.name, l.arg, l.maxIterations, l.prevZ, z)
	}
	l.prevZ = z
	return nil, false, nil
}

// next counts an iteration of a loop that decides termination itself.
func (l *loop) next() error {
	l.i++
	if l.i > l.maxIterations {
		return errors.Wrapf(ErrNoConvergence, "%s %s: after %d iterations", l.name, l.arg, l.maxIterations)
	}
	return nil
}

func (l *loop) settle(prev, z *Decimal) (*Decimal, bool, error) {
	pr, err := l.c.Round(prev)
	if err != nil {
		return nil, false, err
	}
	zr, err := l.c.Round(z)
	if err != nil {
		return nil, false, err
	}
	if pr.Cmp(zr) == 0 {
		return zr, true, nil
	}
	if !adjacent(pr, zr, l.c.Precision) {
		return nil, false, nil
	}
	r0, err := l.residual(pr)
	if err != nil {
		return nil, false, err
	}
	r1, err := l.residual(zr)
	if err != nil {
		return nil, false, err
	}
	if r0.Cmp(r1) < 0 {
		return pr, true, nil
	}
	return zr, true, nil
}

// adjacent reports whether a and b differ by exactly one unit in the last
// place of either of them at precision p.
func adjacent(a, b *Decimal, p uint32) bool {
	d, err := (&Context{}).Sub(a, b)
	if err != nil || d.coeff.CmpAbs(bigOne) != 0 {
		return false
	}
	for _, v := range []*Decimal{a, b} {
		if !v.IsZero() && int64(d.exponent) == v.adjusted()-int64(p)+1 {
			return true
		}
	}
	return false
}
