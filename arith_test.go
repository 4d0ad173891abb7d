// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var rnd = rand.New(rand.NewSource(0x5eed))

func rndW() Word {
	return Word(rnd.Uint64())
}

func rndV(n int) []Word {
	v := make([]Word, n)
	for i := range v {
		v[i] = rndW()
	}
	return v
}

// bigOf returns the value of the little-endian word vector x.
func bigOf(x []Word) *big.Int {
	w := make([]big.Word, len(x))
	for i, d := range x {
		w[i] = big.Word(d)
	}
	return new(big.Int).SetBits(w)
}

// withCarry returns c<<(_W*len(x)) + x.
func withCarry(x []Word, c Word) *big.Int {
	return bigOf(append(append([]Word(nil), x...), c))
}

type argVV struct {
	z, x, y nat
	c       Word
}

var sumVV = []argVV{
	{},
	{nat{0}, nat{0}, nat{0}, 0},
	{nat{1}, nat{1}, nat{0}, 0},
	{nat{0}, nat{_M}, nat{1}, 1},
	{nat{80235}, nat{12345}, nat{67890}, 0},
	{nat{_M - 1}, nat{_M}, nat{_M}, 1},
	{nat{0, 0, 0, 0}, nat{_M, _M, _M, _M}, nat{1, 0, 0, 0}, 1},
	{nat{0, 0, 0, _M}, nat{_M, _M, _M, _M - 1}, nat{1, 0, 0, 0}, 0},
	{nat{0, 0, 0, 0}, nat{_M, 0, _M, 0}, nat{1, _M, 0, _M}, 1},
}

func TestFunVV(t *testing.T) {
	empty := cmpopts.EquateEmpty()
	for i, a := range sumVV {
		z := make(nat, len(a.z))
		if c := addVV(z, a.x, a.y); c != a.c || !cmp.Equal(z, a.z, empty) {
			t.Errorf("#%d addVV(%v, %v) = %v, %d; want %v, %d", i, a.x, a.y, z, c, a.z, a.c)
		}
		if c := addVV(z, a.y, a.x); c != a.c || !cmp.Equal(z, a.z, empty) {
			t.Errorf("#%d addVV(%v, %v) = %v, %d; want %v, %d", i, a.y, a.x, z, c, a.z, a.c)
		}
		if c := subVV(z, a.z, a.x); c != a.c || !cmp.Equal(z, a.y, empty) {
			t.Errorf("#%d subVV(%v, %v) = %v, %d; want %v, %d", i, a.z, a.x, z, c, a.y, a.c)
		}
		if c := subVV(z, a.z, a.y); c != a.c || !cmp.Equal(z, a.x, empty) {
			t.Errorf("#%d subVV(%v, %v) = %v, %d; want %v, %d", i, a.z, a.y, z, c, a.x, a.c)
		}
	}
}

func TestFunVWRandom(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 16, 33} {
		x := rndV(n)
		y := rndW()
		z := make([]Word, n)

		c := addVW(z, x, y)
		want := new(big.Int).Add(bigOf(x), bigOf([]Word{y}))
		if got := withCarry(z, c); got.Cmp(want) != 0 {
			t.Errorf("addVW n=%d: got %s; want %s", n, got, want)
		}

		c = subVW(z, x, y)
		// x - y == z - c<<(_W*n)
		got := new(big.Int).Sub(bigOf(z), new(big.Int).Lsh(big.NewInt(int64(c)), uint(_W*n)))
		want = new(big.Int).Sub(bigOf(x), bigOf([]Word{y}))
		if got.Cmp(want) != 0 {
			t.Errorf("subVW n=%d: got %s; want %s", n, got, want)
		}
	}
}

func TestShiftVU(t *testing.T) {
	for _, n := range []int{1, 2, 5, 17} {
		for _, s := range []uint{0, 1, 7, _W / 2, _W - 1} {
			x := rndV(n)
			z := make([]Word, n)

			c := shlVU(z, x, s)
			want := new(big.Int).Lsh(bigOf(x), s)
			if got := withCarry(z, c); got.Cmp(want) != 0 {
				t.Errorf("shlVU n=%d s=%d: got %s; want %s", n, s, got, want)
			}

			c = shrVU(z, x, s)
			want = new(big.Int).Rsh(bigOf(x), s)
			if got := bigOf(z); got.Cmp(want) != 0 {
				t.Errorf("shrVU n=%d s=%d: got %s; want %s", n, s, got, want)
			}
			// shifted out bits are left aligned in c
			if s > 0 {
				lost := new(big.Int).And(bigOf(x), big.NewInt(1<<s-1))
				if got := uint64(c >> (_W - s)); got != lost.Uint64() {
					t.Errorf("shrVU n=%d s=%d: shifted out %#x; want %#x", n, s, got, lost.Uint64())
				}
			}

			// in place
			y := append([]Word(nil), x...)
			shlVU(y, y, s)
			shrVU(y, y, s)
			mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(_W*n)-s), big.NewInt(1))
			if got, want := bigOf(y), new(big.Int).And(bigOf(x), mask); got.Cmp(want) != 0 {
				t.Errorf("shlVU/shrVU in place n=%d s=%d: got %s; want %s", n, s, got, want)
			}
		}
	}
}

func TestMulAddVWW(t *testing.T) {
	for _, n := range []int{1, 2, 9, 32} {
		x := rndV(n)
		y, r := rndW(), rndW()
		z := make([]Word, n)
		c := mulAddVWW(z, x, y, r)
		want := new(big.Int).Mul(bigOf(x), bigOf([]Word{y}))
		want.Add(want, bigOf([]Word{r}))
		if got := withCarry(z, c); got.Cmp(want) != 0 {
			t.Errorf("mulAddVWW n=%d: got %s; want %s", n, got, want)
		}
	}
}

func TestAddMulVVW(t *testing.T) {
	for _, n := range []int{1, 2, 9, 32} {
		x := rndV(n)
		y := rndW()
		z := rndV(n)
		want := new(big.Int).Mul(bigOf(x), bigOf([]Word{y}))
		want.Add(want, bigOf(z))
		c := addMulVVW(z, x, y)
		if got := withCarry(z, c); got.Cmp(want) != 0 {
			t.Errorf("addMulVVW n=%d: got %s; want %s", n, got, want)
		}
	}
}

func TestDivWVW(t *testing.T) {
	for _, n := range []int{1, 2, 9, 32} {
		x := rndV(n)
		y := rndW() | 1
		xn := rndW() % y
		z := make([]Word, n)
		r := divWVW(z, xn, x, y)

		q, m := new(big.Int).QuoRem(withCarry(x, xn), bigOf([]Word{y}), new(big.Int))
		if got := bigOf(z); got.Cmp(q) != 0 || bigOf([]Word{r}).Cmp(m) != 0 {
			t.Errorf("divWVW n=%d: got %s, %d; want %s, %s", n, got, r, q, m)
		}
	}
}

func TestMulWW(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x, y, c := rndW(), rndW(), rndW()
		z1, z0 := mulAddWWW(x, y, c)
		want := new(big.Int).Mul(bigOf([]Word{x}), bigOf([]Word{y}))
		want.Add(want, bigOf([]Word{c}))
		if got := bigOf([]Word{z0, z1}); got.Cmp(want) != 0 {
			t.Fatalf("mulAddWWW(%#x, %#x, %#x) = %s; want %s", x, y, c, got, want)
		}
	}
}
