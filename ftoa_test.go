// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecimalString(t *testing.T) {
	for _, test := range []struct {
		x    string
		prec uint
		want string
	}{
		{"0", 53, "0"},
		{"-0", 53, "0"},
		{"NaN", 53, "NaN"},
		{"+Inf", 53, "+Inf"},
		{"-Inf", 53, "-Inf"},
		{"1", 53, "1"},
		{"-2.5", 53, "-2.5"},
		{"0.1", 53, "0.1"},
		{"0.1", 1000, "0.1"},
		{"100", 53, "100"},
		{"123456.789", 53, "123456.789"},
		{"1e20", 53, "100000000000000000000"},
		{"1e21", 53, "1e+21"},
		{"1.5e21", 53, "1.5e+21"},
		{"-1e100", 53, "-1e+100"},
		{"1e-6", 53, "0.000001"},
		{"1e-7", 53, "1e-07"},
		{"1.25e-7", 53, "1.25e-07"},
		{"1e-100", 53, "1e-100"},
		{"0x1p-1", 1, "0.5"},
		{"3", 1, "4"},
		{"0x1p64", 53, "18446744073709552000"},
		{"0x1p64", 64, "18446744073709551616"},
		{"0x1p63", 8, "9220000000000000000"},
		{"-0x1p63", 53, "-9223372036854776000"},
		{"0x1p-1022", 53, "2.2250738585072014e-308"},
		{"0x1p1023", 53, "8.98846567431158e+307"},
		{"123", 1 << 20, "123"},
		{"-0.375", 1 << 20, "-0.375"},
		{"0.3333333333333333333333", 53, "0.3333333333333333"},
		{"0.3333333333333333333333", 24, "0.33333334"},
	} {
		x := makeDecimal(test.x, test.prec)
		if got := x.String(); got != test.want {
			t.Errorf("%s at prec %d: String() = %s; want %s", test.x, test.prec, got, test.want)
		}
	}

	var z Decimal
	if got := z.String(); got != "0" {
		t.Errorf("zero value String() = %s; want 0", got)
	}
	if got := One().Quo(FromInt64(3)).String(); got != "0.3333333333333333" {
		t.Errorf("1/3 = %s; want 0.3333333333333333", got)
	}
}

func TestStringPowersOfTwo(t *testing.T) {
	for _, prec := range []uint{1, 2, 8, 24, 53, 64, 100, 1000} {
		for _, e := range []int{-1074, -1022, -100, -64, -1, 0, 1, 10, 63, 64, 100, 1023, 5000} {
			for _, neg := range []bool{false, true} {
				x := fromBig(new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), e))
				if neg {
					x = x.Neg()
				}
				s := x.String()
				y, _, err := ParseDecimal(s, 10, prec)
				require.NoError(t, err)
				require.True(t, y.Equal(x), "2**%d at prec %d: %s reads back as %s", e, prec, s, toBig(y).Text('p', 0))
			}
		}
	}

	// the shortest digits lie below the power of two, in the narrower gap
	x := FromUint64(math.MaxUint64)
	require.Equal(t, "18446744073709552000", x.String())
	y, _, err := ParseDecimal("18446744073709550000", 10, DefaultPrec)
	require.NoError(t, err)
	require.False(t, y.Equal(x))
}

func TestStringZeroSign(t *testing.T) {
	for _, s := range []string{"0", "-0", "+0", "-0e10", "-0.000"} {
		x := MustParse(s)
		require.Equal(t, "0", x.String(), s)
		require.Equal(t, "0", fmt.Sprint(x), s)
		want := "0"
		if x.Signbit() {
			want = "-0"
		}
		require.Equal(t, want, x.Text('g', -1), s)
		require.Equal(t, want, fmt.Sprintf("%g", x), s)
	}
	require.True(t, MustParse("-0").Signbit())
	require.Equal(t, "0", Zero().Neg().String())
	require.Equal(t, "-0e+00", Zero().Neg().Text('e', 0))
}

func TestDecimalText(t *testing.T) {
	for _, test := range []struct {
		x      string
		prec   uint
		format byte
		digits int
		want   string
	}{
		{"0", 53, 'f', 0, "0"},
		{"-0", 53, 'f', 0, "-0"},
		{"1", 53, 'f', 0, "1"},
		{"-1", 53, 'f', 0, "-1"},
		{"0.001", 53, 'e', 0, "1e-03"},
		{"0.459", 53, 'e', 0, "5e-01"},
		{"1.459", 53, 'e', 0, "1e+00"},
		{"1.459", 53, 'E', 1, "1.5E+00"},
		{"1.459", 53, 'f', 2, "1.46"},
		{"1.459", 53, 'g', 3, "1.46"},
		{"1.459", 53, 'g', -1, "1.459"},
		{"0.000001", 53, 'g', -1, "1e-06"},
		{"0.00001", 53, 'g', -1, "1e-05"},
		{"0.0001", 53, 'g', -1, "0.0001"},
		{"1e6", 53, 'g', -1, "1e+06"},
		{"100000", 53, 'g', -1, "100000"},
		{"1e23", 53, 'e', 17, "9.99999999999999916e+22"},
		{"1e23", 53, 'f', -1, "100000000000000000000000"},
		{"3", 53, 'G', -1, "3"},
		{"1.5", 53, 'x', -1, "%x"},
		{"-1.5", 53, 'x', -1, "%x"},
		{"+Inf", 53, 'f', 2, "+Inf"},
		{"-Inf", 53, 'g', -1, "-Inf"},
		{"NaN", 53, 'e', 3, "NaN"},
		{"1.5", 2, 'f', 5, "1.50000"},
		{"0.1", 200, 'f', 60, "0.100000000000000000000000000000000000000000000000000000000000"},
	} {
		x := makeDecimal(test.x, test.prec)
		if got := x.Text(test.format, test.digits); got != test.want {
			t.Errorf("%s.Text('%c', %d) = %s; want %s", test.x, test.format, test.digits, got, test.want)
		}
	}
}

func TestDecimalTextOracle(t *testing.T) {
	for i := 0; i < 300; i++ {
		x := rndDecimal(uint(1+rnd.Intn(200)), 150)
		f := toBig(x)
		for _, format := range []byte{'e', 'E', 'f', 'g', 'G'} {
			for _, digits := range []int{-1, 0, 1, 3, 10, 40} {
				got := x.Text(format, digits)
				if digits < 0 && x.MinPrec() == 1 {
					// big.Float ignores the narrower gap below powers of two
					if y := makeDecimal(got, x.Prec()); !y.Equal(x) {
						t.Fatalf("%v.Text('%c', -1) = %s reads back as %v", f, format, got, toBig(y))
					}
					continue
				}
				if want := f.Text(format, digits); got != want {
					t.Fatalf("%v.Text('%c', %d) = %s; want %s", f, format, digits, got, want)
				}
			}
		}
	}
}

func TestDecimalFormat(t *testing.T) {
	for _, test := range []struct {
		format string
		value  string
		want   string
	}{
		{"%v", "1.5", "1.5"},
		{"%s", "1e21", "1e+21"},
		{"%v", "-0", "0"},
		{"%g", "-0", "-0"},
		{"%.1f", "-0", "-0.0"},
		{"%v", "NaN", "NaN"},
		{"%.3f", "1.5", "1.500"},
		{"%10.3f", "1.5", "     1.500"},
		{"%-10.3f|", "1.5", "1.500     |"},
		{"%+.3e", "1.5", "+1.500e+00"},
		{"% .3e", "1.5", " 1.500e+00"},
		{"%010.3f", "-1.5", "-00001.500"},
		{"%g", "1e-10", "1e-10"},
		{"%G", "1e-10", "1E-10"},
		{"%F", "2.25", "2.250000"},
		{"%e", "2.25", "2.250000e+00"},
		{"%10v", "+Inf", "      +Inf"},
		{"%010v", "-Inf", "      -Inf"},
		{"% v", "+Inf", " Inf"},
		{"%-6v|", "NaN", "NaN   |"},
		{"%x", "1.5", "%!x(*bigdecimal.Decimal=1.5)"},
		{"%d", "-2", "%!d(*bigdecimal.Decimal=-2)"},
	} {
		x := makeDecimal(test.value, DefaultPrec)
		if got := fmt.Sprintf(test.format, x); got != test.want {
			t.Errorf("Sprintf(%q, %s) = %q; want %q", test.format, test.value, got, test.want)
		}
	}
}

func TestDecimalFormatOracle(t *testing.T) {
	formats := []string{"%e", "%.3e", "%E", "%f", "%.0f", "%10.2f", "%-12.4g|", "%+g", "% G", "%010.3e", "%F", "%.20g", "%30g"}
	shortest := map[string]bool{"%+g": true, "% G": true, "%30g": true}
	for i := 0; i < 200; i++ {
		x := rndDecimal(uint(1+rnd.Intn(120)), 80)
		f := toBig(x)
		for _, format := range formats {
			if shortest[format] && x.MinPrec() == 1 {
				// covered by TestStringPowersOfTwo
				continue
			}
			if got, want := fmt.Sprintf(format, x), fmt.Sprintf(format, f); got != want {
				t.Fatalf("Sprintf(%q, %v) = %q; want %q", format, f, got, want)
			}
		}
	}
}

func BenchmarkDecimalString(b *testing.B) {
	x := makeDecimal("3.14159265358979323846264338327950288419716939937510582097494459", 200)
	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}

func BenchmarkParseDecimal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, _ = ParseDecimal("3.14159265358979323846264338327950288419716939937510582097494459e-100", 10, 200)
	}
}

