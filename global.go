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

// The functions in this file perform their Context method under a copy of
// BaseContext taken at call time.

func base() *Context {
	c := BaseContext
	return &c
}

// Add returns x+y under BaseContext.
func Add(x, y *Decimal) (*Decimal, error) { return base().Add(x, y) }

// Sub returns x-y under BaseContext.
func Sub(x, y *Decimal) (*Decimal, error) { return base().Sub(x, y) }

// Mul returns x*y under BaseContext.
func Mul(x, y *Decimal) (*Decimal, error) { return base().Mul(x, y) }

// Quo returns x/y under BaseContext.
func Quo(x, y *Decimal) (*Decimal, error) { return base().Quo(x, y) }

// Rem returns the remainder of x/y under BaseContext.
func Rem(x, y *Decimal) (*Decimal, error) { return base().Rem(x, y) }

// Pow returns x**y under BaseContext.
func Pow(x, y *Decimal) (*Decimal, error) { return base().Pow(x, y) }

// Sqr returns x*x under BaseContext.
func Sqr(x *Decimal) (*Decimal, error) { return base().Sqr(x) }

// Cube returns x*x*x under BaseContext.
func Cube(x *Decimal) (*Decimal, error) { return base().Cube(x) }

// RootN returns the n-th root of x under BaseContext.
func RootN(x *Decimal, n int) (*Decimal, error) { return base().RootN(x, n) }

// Sqrt returns the square root of x under BaseContext.
func Sqrt(x *Decimal) (*Decimal, error) { return base().Sqrt(x) }

// Cbrt returns the cube root of x under BaseContext.
func Cbrt(x *Decimal) (*Decimal, error) { return base().Cbrt(x) }

// Hypot returns sqrt(x*x + y*y) under BaseContext.
func Hypot(x, y *Decimal) (*Decimal, error) { return base().Hypot(x, y) }

// Exp returns e**x under BaseContext.
func Exp(x *Decimal) (*Decimal, error) { return base().Exp(x) }

// Exp2 returns 2**x under BaseContext.
func Exp2(x *Decimal) (*Decimal, error) { return base().Exp2(x) }

// Exp10 returns 10**x under BaseContext.
func Exp10(x *Decimal) (*Decimal, error) { return base().Exp10(x) }

// Ln returns the natural log of x under BaseContext.
func Ln(x *Decimal) (*Decimal, error) { return base().Ln(x) }

// Log returns the log of x to base b under BaseContext.
func Log(x, b *Decimal) (*Decimal, error) { return base().Log(x, b) }

// Log2 returns the base 2 log of x under BaseContext.
func Log2(x *Decimal) (*Decimal, error) { return base().Log2(x) }

// Log10 returns the base 10 log of x under BaseContext.
func Log10(x *Decimal) (*Decimal, error) { return base().Log10(x) }

// E returns e under BaseContext.
func E() (*Decimal, error) { return base().E() }

// Pi returns pi under BaseContext.
func Pi() (*Decimal, error) { return base().Pi() }

// Tau returns 2*pi under BaseContext.
func Tau() (*Decimal, error) { return base().Tau() }

// Phi returns the golden ratio under BaseContext.
func Phi() (*Decimal, error) { return base().Phi() }

// Ln10 returns the natural log of 10 under BaseContext.
func Ln10() (*Decimal, error) { return base().Ln10() }
