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
	"fmt"
	"math/big"
	"testing"

	"github.com/pkg/errors"
)

func TestPow(t *testing.T) {
	tests := []struct {
		p    uint32
		x, y string
		out  string
	}{
		{p: 10, x: "2", y: "10", out: "1024"},
		{p: 10, x: "-2", y: "3", out: "-8"},
		{p: 10, x: "-2", y: "-2", out: "0.25"},
		{p: 10, x: "2", y: "-1", out: "0.5"},
		{p: 10, x: "-1.5", y: "2", out: "2.25"},
		{p: 10, x: "1.1", y: "2", out: "1.21"},
		{p: 10, x: "10", y: "-3", out: "0.001"},
		{p: 10, x: "10", y: "25", out: "1E+25"},
		{p: 10, x: "7", y: "0", out: "1"},
		{p: 10, x: "0", y: "0", out: "1"},
		{p: 10, x: "0", y: "2.5", out: "0"},
		{p: 10, x: "1", y: "123.456", out: "1"},
		{p: 3, x: "1.234", y: "1", out: "1.23"},
		{p: 10, x: "4", y: "0.5", out: "2"},
		{p: 20, x: "2", y: "0.5", out: "1.4142135623730950488"},
		{p: 20, x: "2", y: "-0.5", out: "0.7071067811865475244"},
		{p: 20, x: "1.1", y: "-3", out: "0.75131480090157776108"},
		{p: 30, x: "1.5", y: "2.5", out: "2.75567596063107536047194458404"},
		{p: 30, x: "10", y: "0.5", out: "3.16227766016837933199889354443"},
		{p: 25, x: "3", y: "1.7", out: "6.473007839923779298664847"},
		{p: 25, x: "0.5", y: "0.3", out: "0.8122523963562355226097094"},
		{p: 30, x: "1.0001", y: "10000", out: "2.71814592682522486403766467491"},
		{p: 10, x: "-32", y: "0.2", out: "-2"},
		{p: 10, x: "-32", y: "0.4", out: "4"},
		{p: 10, x: "-8", y: "0.6", out: "-3.482202253"},
		{p: 10, x: "-1", y: "1E+19", out: "1"},
		{p: 10, x: "-1", y: "10000000000000000001", out: "-1"},
		{p: 20, x: "1.0000000000000000000001", y: "1E+20", out: "1.0100501670841680575"},
		{p: 25, x: "0.999999999999999999", y: "-1E+19", out: "22026.46579480671662709023"},
		{p: 20, x: "-1.00000000000000000001", y: "123456789012345678901", out: "-3.4368930843460080046"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d: %s**%s", tc.p, tc.x, tc.y), func(t *testing.T) {
			c := &Context{Precision: tc.p, Rounding: RoundHalfUp}
			d, err := c.Pow(newDec(t, tc.x), newDec(t, tc.y))
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if s := d.String(); s != tc.out {
				t.Fatalf("expected: %s, got: %s", tc.out, s)
			}
		})
	}
}

func TestPowErr(t *testing.T) {
	third, err := testCtx.Quo(decimalOne, New(3, 0))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		x, y *Decimal
		err  error
	}{
		{name: "negative to one third", x: New(-27, 0), y: third, err: ErrUnrepresentable},
		{name: "negative to one half", x: New(-4, 0), y: New(5, -1), err: ErrUnrepresentable},
		{name: "negative to a quarter", x: New(-16, 0), y: New(25, -2), err: ErrUnrepresentable},
		{name: "zero to minus one", x: decimalZero, y: New(-1, 0), err: ErrDivisionByZero},
		{name: "huge power of ten", x: decimalTen, y: New(1, 20), err: ErrOverflow},
		{name: "huge power", x: decimalTwo, y: New(1, 12), err: ErrOverflow},
		{name: "power with a huge exponent", x: decimalTwo, y: New(1, 1000000000), err: ErrExponentOutOfRange},
		{name: "negative power with a huge exponent", x: decimalTwo, y: New(-1, 1000000000), err: ErrExponentOutOfRange},
		{name: "small power with a huge exponent", x: New(5, -1), y: New(3, 999999999), err: ErrOverflow},
		{name: "negative to a long fraction", x: New(-8, 0), y: New(1, -40), err: ErrUnrepresentable},
		{name: "negative to a tiny fraction", x: New(-8, 0), y: New(3, -2000000000), err: ErrUnrepresentable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := testCtx.Pow(tc.x, tc.y)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v, %v", tc.err, d, err)
			}
		})
	}
}

func TestRootN(t *testing.T) {
	tests := []struct {
		p   uint32
		x   string
		n   int
		out string
	}{
		{p: 10, x: "4", n: 2, out: "2"},
		{p: 10, x: "0.25", n: 2, out: "0.5"},
		{p: 10, x: "0", n: 2, out: "0"},
		{p: 10, x: "1", n: 5, out: "1"},
		{p: 10, x: "1e-100", n: 2, out: "1E-50"},
		{p: 10, x: "27", n: 3, out: "3"},
		{p: 10, x: "-27", n: 3, out: "-3"},
		{p: 10, x: "123.456", n: 1, out: "123.456"},
		{p: 3, x: "123.456", n: 1, out: "123"},
		{p: 10, x: "4", n: -2, out: "0.5"},
		{p: 20, x: "2", n: 2, out: "1.4142135623730950488"},
		{p: 20, x: "2", n: -2, out: "0.7071067811865475244"},
		{p: 30, x: "2", n: 3, out: "1.25992104989487316476721060728"},
		{p: 40, x: "100", n: 7, out: "1.930697728883250167007074799840189035224"},
		{p: 50, x: "3", n: 2, out: "1.7320508075688772935274463415058723669428052538104"},
		{p: 130, x: "6.02214076E23", n: 2, out: "776024533117.3493254666403283751111253057843270688969571576562989126786337996022194015376088918609909491309813595319711937386010926"},
		{p: 130, x: "1.602176634E-19", n: 2, out: "4.002719867789900682597038823905376754570278629861666648707342924009987437927221345536742635143445476302206435987095958590772815416E-10"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d: %s, %d", tc.p, tc.x, tc.n), func(t *testing.T) {
			c := &Context{Precision: tc.p, Rounding: RoundHalfUp}
			d, err := c.RootN(newDec(t, tc.x), tc.n)
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if s := d.String(); s != tc.out {
				t.Fatalf("expected: %s, got: %s", tc.out, s)
			}
		})
	}
}

func TestRootNErr(t *testing.T) {
	c := &Context{Precision: 20}
	if _, err := c.Sqrt(New(-1, 0)); !errors.Is(err, ErrDomain) {
		t.Fatalf("sqrt(-1): %v", err)
	}
	if _, err := c.RootN(New(-123, 0), 70); !errors.Is(err, ErrDomain) {
		t.Fatalf("70th root of -123: %v", err)
	}
	if _, err := c.RootN(New(5, 0), 0); !errors.Is(err, ErrDomain) {
		t.Fatalf("zeroth root: %v", err)
	}
	if _, err := (&Context{}).Sqrt(New(4, 0)); !errors.Is(err, ErrInvalidPrecision) {
		t.Fatalf("exact sqrt: %v", err)
	}
	d, err := c.RootN(New(-123, 0), 71)
	if err != nil {
		t.Fatal(err)
	}
	if d.Sign() >= 0 {
		t.Fatalf("71st root of -123: expected negative, got %s", d)
	}
	// Raising it back lands on -123 to within the precision.
	p, err := c.WithPrecision(15).Pow(d, New(71, 0))
	if err != nil {
		t.Fatal(err)
	}
	if p.Cmp(New(-123, 0)) != 0 {
		t.Fatalf("root**71: %s", p)
	}
}

func TestRootNPowInverse(t *testing.T) {
	c := &Context{Precision: 50}

	// 5**500 is exact; its 500th root comes back as 5.
	five := new(big.Int).Exp(bigFive, big.NewInt(500), nil)
	d, err := testCtx.RootN(NewWithBigInt(five, 0), 500)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if d.Cmp(New(5, 0)) != 0 {
		t.Fatalf("expected 5, got %s", d)
	}

	pi, err := c.Pi()
	if err != nil {
		t.Fatal(err)
	}
	p, err := c.Pow(pi, New(500, 0))
	if err != nil {
		t.Fatal(err)
	}
	r, err := c.RootN(p, 500)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if r.Cmp(pi) != 0 {
		t.Fatalf("expected %s, got %s", pi, r)
	}

	for _, s := range []string{"2", "0.3", "123.456", "9.99e-9"} {
		for _, n := range []int{2, 3, 10} {
			t.Run(fmt.Sprintf("%s, %d", s, n), func(t *testing.T) {
				x := newDec(t, s)
				r, err := c.RootN(x, n)
				if err != nil {
					t.Fatal(err)
				}
				back, err := c.WithPrecision(45).Pow(r, New(int64(n), 0))
				if err != nil {
					t.Fatal(err)
				}
				if back.Cmp(x) != 0 {
					t.Fatalf("(%s root %d)**%d = %s", s, n, n, back)
				}
			})
		}
	}
}

func TestSqrtCbrtHypot(t *testing.T) {
	c := &Context{Precision: 20}
	tests := []struct {
		name string
		f    func() (*Decimal, error)
		out  string
	}{
		{"sqrt", func() (*Decimal, error) { return c.Sqrt(New(2, 0)) }, "1.4142135623730950488"},
		{"cbrt", func() (*Decimal, error) { return c.Cbrt(New(-8, -3)) }, "-0.2"},
		{"hypot", func() (*Decimal, error) { return c.Hypot(New(3, 0), New(-4, 0)) }, "5"},
		{"hypot zero", func() (*Decimal, error) { return c.Hypot(decimalZero, decimalZero) }, "0"},
		{"exp2", func() (*Decimal, error) { return c.Exp2(New(10, 0)) }, "1024"},
		{"exp10", func() (*Decimal, error) { return c.Exp10(New(2, 0)) }, "100"},
		{"exp10 fraction", func() (*Decimal, error) { return c.Exp10(New(5, -1)) }, "3.162277660168379332"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := tc.f()
			if err != nil {
				t.Fatal(err)
			}
			if s := d.String(); s != tc.out {
				t.Fatalf("expected: %s, got: %s", tc.out, s)
			}
		})
	}
}

func TestPow2(t *testing.T) {
	tests := map[int64]string{
		0:   "1",
		1:   "2",
		10:  "1024",
		-1:  "0.5",
		-3:  "0.125",
		-10: "0.0009765625",
	}
	for k, out := range tests {
		d, err := pow2(k)
		if err != nil {
			t.Fatal(err)
		}
		if s := d.String(); s != out {
			t.Errorf("2**%d: expected %s, got %s", k, out, s)
		}
	}
}
