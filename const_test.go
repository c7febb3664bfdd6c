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
	"sync"
	"testing"
)

func TestConstants(t *testing.T) {
	tests := []struct {
		name string
		f    func(*Context) (*Decimal, error)
		p    uint32
		out  string
	}{
		{name: "pi", f: (*Context).Pi, p: 20, out: "3.1415926535897932385"},
		{name: "pi", f: (*Context).Pi, p: 50, out: "3.1415926535897932384626433832795028841971693993751"},
		{name: "pi", f: (*Context).Pi, p: 100, out: "3.141592653589793238462643383279502884197169399375105820974944592307816406286208998628034825342117068"},
		{name: "e", f: (*Context).E, p: 20, out: "2.7182818284590452354"},
		{name: "e", f: (*Context).E, p: 50, out: "2.7182818284590452353602874713526624977572470937"},
		{name: "tau", f: (*Context).Tau, p: 50, out: "6.2831853071795864769252867665590057683943387987502"},
		{name: "tau", f: (*Context).Tau, p: 100, out: "6.283185307179586476925286766559005768394338798750211641949889184615632812572417997256069650684234136"},
		{name: "phi", f: (*Context).Phi, p: 20, out: "1.6180339887498948482"},
		{name: "phi", f: (*Context).Phi, p: 50, out: "1.6180339887498948482045868343656381177203091798058"},
		{name: "ln10", f: (*Context).Ln10, p: 20, out: "2.302585092994045684"},
		{name: "ln10", f: (*Context).Ln10, p: 50, out: "2.3025850929940456840179914546843642076011014886288"},
		{name: "ln10", f: (*Context).Ln10, p: 100, out: "2.302585092994045684017991454684364207601101488628772976033327900967572609677352480235997205089598298"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s: %d", tc.name, tc.p), func(t *testing.T) {
			d, err := tc.f(&Context{Precision: tc.p, Rounding: RoundHalfUp})
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if s := d.String(); s != tc.out {
				t.Fatalf("expected: %s, got: %s", tc.out, s)
			}
		})
	}
}

func TestConstantCache(t *testing.T) {
	const pi20 = "3.1415926535897932385"
	const pi50 = "3.1415926535897932384626433832795028841971693993751"
	constPi.reset()
	defer constPi.reset()

	get := func(p uint32) string {
		d, err := (&Context{Precision: p}).Pi()
		if err != nil {
			t.Fatal(err)
		}
		return d.String()
	}
	if s := get(20); s != pi20 {
		t.Fatalf("20: %s", s)
	}
	if constPi.prec != 20+guardDigits {
		t.Fatalf("cached precision %d", constPi.prec)
	}
	// A more precise request replaces the cached value.
	if s := get(50); s != pi50 {
		t.Fatalf("50: %s", s)
	}
	if constPi.prec != 50+guardDigits {
		t.Fatalf("cached precision %d", constPi.prec)
	}
	// A less precise one is served from it.
	if s := get(20); s != pi20 {
		t.Fatalf("20 again: %s", s)
	}
	if constPi.prec != 50+guardDigits {
		t.Fatalf("cached precision %d", constPi.prec)
	}
}

func TestConstantConcurrent(t *testing.T) {
	constPi.reset()
	constTau.reset()
	defer constPi.reset()
	defer constTau.reset()

	precisions := []uint32{10, 30, 60, 30, 10, 60, 45}
	get := func(i int, c *Context) (*Decimal, error) {
		// Tau reads pi while the pi requests are in flight.
		if i%2 == 0 {
			return c.Pi()
		}
		return c.Tau()
	}
	results := make([]*Decimal, len(precisions))
	errs := make([]error, len(precisions))
	var wg sync.WaitGroup
	for i, p := range precisions {
		wg.Add(1)
		go func(i int, p uint32) {
			defer wg.Done()
			results[i], errs[i] = get(i, &Context{Precision: p})
		}(i, p)
	}
	wg.Wait()

	for i, p := range precisions {
		if errs[i] != nil {
			t.Fatal(errs[i])
		}
		want, err := get(i, &Context{Precision: p})
		if err != nil {
			t.Fatal(err)
		}
		if results[i].Cmp(want) != 0 {
			t.Errorf("%d, %d: expected %s, got %s", i, p, want, results[i])
		}
	}
}
