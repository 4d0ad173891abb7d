// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import (
	"fmt"
	"io"
	"math"
	"math/bits"
	"strings"
)

var decimalZero Decimal

// Scaling by b**d is done exactly when b**d has at most maxExactBits bits;
// beyond that the power is approximated with extra guard bits.
const maxExactBits = 1 << 16

// Parse is like ParseDecimal with DefaultPrec.
func Parse(s string, base int) (*Decimal, error) {
	f, _, err := ParseDecimal(s, base, DefaultPrec)
	return f, err
}

// MustParse is like Parse with base 0 but panics if s cannot be parsed.
// It simplifies the initialization of package level values.
func MustParse(s string) *Decimal {
	f, err := Parse(s, 0)
	if err != nil {
		panic(err)
	}
	return f
}

// ParseDecimal parses s which must contain a text representation of a
// floating-point number with a mantissa in the given conversion base (the
// exponent is always a decimal number), or a string representing a NaN or an
// infinite value.
//
// It returns the value of s rounded to prec bits, to nearest with ties to
// even, together with the actual base b. The entire string (not just a
// prefix) must be consumed for success. The number must be of the form:
//
//     number    = [ sign ] ( float | special ) .
//     sign      = "+" | "-" .
//     float     = ( mantissa | prefix pmantissa ) [ exponent ] .
//     prefix    = "0" ( "b" | "B" | "x" | "X" ) .
//     mantissa  = digits "." [ digits ] | digits | "." digits .
//     pmantissa = digits "." [ digits ] | digits | "." digits .
//     exponent  = ( "e" | "E" | "@" | "p" | "P" ) [ sign ] decimals .
//     digits    = digit { digit } .
//     digit     = "0" ... "9" | "A" ... "Z" | "a" ... "z" .
//     decimals  = "0" ... "9" { "0" ... "9" } .
//     special   = "@nan@" | "@inf@" | "nan" | "inf" | "infinity" .
//
// The base argument must be 0 or in [2, MaxBase]; otherwise ParseDecimal
// fails with a ConstructionError, as it does for a precision of 0 or above
// MaxPrec. Up to base 36, lower and upper case letters are the same digits;
// above, "A" ... "Z" are the digits 10 to 35 and "a" ... "z" the digits 36 to
// 61.
//
// For base 0, the number prefix determines the actual base: A prefix of
// "0b" or "0B" selects base 2, and "0x" or "0X" selects base 16. Otherwise,
// the actual base is 10. Base 2 and 16 also accept their own prefix.
//
// An "e" or "E" exponent (base <= 10 only) and an "@" exponent (any base)
// scale the mantissa by a power of the base. A "p" or "P" exponent (base 2
// and 16 only) scales by a power of 2; for instance "0x1.fffffffffffffp1023"
// is the largest float64. Special values are case-insensitive; the bare
// words are only recognized up to base 16 where they cannot be mistaken for
// digits.
//
// Malformed text is reported as a ParseError wrapping a *SyntaxError; no
// value is returned in that case.
func ParseDecimal(s string, base int, prec uint) (f *Decimal, b int, err error) {
	if err = checkPrec(prec); err != nil {
		return nil, 0, err
	}
	if err = checkBase(base); err != nil {
		return nil, 0, err
	}

	z := newDecimal(uint32(prec))
	b = base
	if b == 0 {
		b = 10
	}
	if z.parseSpecial(s, base) {
		return z, b, nil
	}

	r := strings.NewReader(s)
	if _, b, err = z.scan(r, base); err != nil {
		if err == io.EOF {
			err = errNoDigits
		}
		return nil, 0, syntaxError(s, int(r.Size())-r.Len(), err)
	}

	// entire string must have been consumed
	if ch, err2 := r.ReadByte(); err2 == nil {
		return nil, 0, syntaxError(s, int(r.Size())-r.Len()-1, fmt.Errorf("%w %q, expected end of string", errTrailing, ch))
	} else if err2 != io.EOF {
		return nil, 0, syntaxError(s, int(r.Size())-r.Len(), err2)
	}

	return z, b, nil
}

func syntaxError(s string, offset int, err error) error {
	return ParseError.Wrap(&SyntaxError{Text: s, Offset: offset, Err: err})
}

// parseSpecial sets z to NaN or ±Inf if s spells one of them.
func (z *Decimal) parseSpecial(s string, base int) bool {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	words := base <= 16
	switch {
	case strings.EqualFold(s, "@nan@"), words && strings.EqualFold(s, "nan"):
		z.setNaN()
	case strings.EqualFold(s, "@inf@"), words && (strings.EqualFold(s, "inf") || strings.EqualFold(s, "infinity")):
		z.acc = Exact
		z.form = inf
		z.neg = neg
	default:
		return false
	}
	return true
}

// scan is like ParseDecimal but reads the longest possible prefix
// representing a valid floating point number from an io.ByteScanner rather
// than a string. It does not recognize NaN and ±Inf and does not expect EOF
// at the end.
func (z *Decimal) scan(r io.ByteScanner, base int) (f *Decimal, b int, err error) {
	prec := z.prec
	if prec == 0 {
		prec = DefaultPrec
	}
	z.prec = prec
	z.acc = Exact
	z.form = zero

	// sign
	z.neg, err = scanSign(r)
	if err != nil {
		return
	}

	// mantissa
	var m nat
	var fcount int // fractional digit count; valid if <= 0
	m, b, fcount, err = nat(nil).scan(r, base, true)
	if err != nil {
		return
	}

	// exponent
	var exp int64
	var ebase int
	exp, ebase, err = scanExponent(r, b)
	if err != nil {
		return
	}

	// special-case 0
	if len(m) == 0 {
		return z, b, nil
	}
	// len(m) > 0

	// The mantissa may have a radix point (fcount <= 0) and there
	// may be a nonzero exponent exp. The radix point amounts to a
	// division by b**(-fcount). An exponent means multiplication by
	// ebase**exp. Finally, mantissa normalization (shift left) requires
	// a correcting multiplication by 2**(-shiftcount). Multiplications
	// are commutative, so we can apply them in any order as long as there
	// is no loss of precision. We only have powers of 2 and b**n, so we
	// collect them separately in exp2 and d.
	var d, exp2 int64
	if fcount < 0 {
		d = int64(fcount)
	}
	if ebase == 2 && b != 2 {
		exp2 = exp
	} else {
		d += exp
	}
	// power of two bases fold into exp2
	if b&(b-1) == 0 {
		exp2 += d * int64(bits.TrailingZeros(uint(b)))
		d = 0
	}

	z.setScaled(m, Word(b), d, exp2)
	return z, b, nil
}

// setScaled sets z to m × b**d × 2**e2 rounded to z.prec. z.neg must be
// set; m must not be zero.
func (z *Decimal) setScaled(m nat, b Word, d, e2 int64) {
	// Exponents far outside the supported range are clamped early so that
	// no huge power is ever computed.
	if est := float64(e2) + float64(m.bitLen()) + float64(d)*math.Log2(float64(b)); est > MaxExp+2 {
		z.acc = makeAcc(!z.neg)
		z.form = inf
		return
	} else if est < MinExp-2 {
		z.acc = makeAcc(z.neg)
		z.form = zero
		return
	}

	ad := uint64(d)
	if d < 0 {
		ad = uint64(-d)
	}
	switch {
	case d == 0:
		z.setRat(m, nil, e2)
	case float64(ad)*math.Log2(float64(b)) <= maxExactBits:
		p := nat(nil).expWW(b, ad)
		if d > 0 {
			z.setRat(nat(nil).mul(m, p), nil, e2)
		} else {
			z.setRat(m, p, e2)
		}
	default:
		wp := z.prec + 64
		x := newDecimal(wp)
		x.setRat(m, nil, e2)
		p := powPrec(b, ad, wp)
		t := newDecimal(wp)
		if d > 0 {
			t.mul(x, p)
		} else {
			t.quo(x, p)
		}
		t.neg = z.neg
		z.set(t)
	}
}

// setRat sets z to num/den × 2**e2 rounded to z.prec, or num × 2**e2 if den
// is nil. z.neg must be set; num must not be zero.
func (z *Decimal) setRat(num, den nat, e2 int64) {
	if len(den) == 0 {
		z.mant = nat(nil).set(num)
		z.setExpAndRound(e2+int64(len(z.mant))*_W-fnorm(z.mant), 0)
		return
	}

	// scale num so that the quotient has at least z.prec+2 bits
	s := int64(z.prec) + 2 - int64(num.bitLen()) + int64(den.bitLen())
	if s < 0 {
		s = 0
	}
	q, r := nat(nil).div(nil, nat(nil).shl(num, uint(s)), den)
	var sbit uint
	if len(r) > 0 {
		sbit = 1
	}
	// q has at least z.prec+1 bits and its value is num/den × 2**s
	z.mant = q
	z.setExpAndRound(e2-s+int64(len(q))*_W-fnorm(z.mant), sbit)
}

// powPrec returns b**n computed with prec bits of precision.
func powPrec(b Word, n uint64, prec uint32) *Decimal {
	z := newDecimal(prec).setBits64(false, 1)
	x := newDecimal(prec).setBits64(false, uint64(b))
	for n > 0 {
		if n&1 != 0 {
			z = newDecimal(prec).mul(z, x)
		}
		n >>= 1
		if n > 0 {
			x = newDecimal(prec).mul(x, x)
		}
	}
	return z
}

var _ fmt.Scanner = &decimalZero // *Decimal must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of
// the scanned number, rounded to z's precision or DefaultPrec if z is the
// zero value. It accepts formats whose verbs are supported by fmt.Scan for
// floating point values, which are: 'b' (binary), 'e', 'E', 'f', 'F', 'g'
// and 'G'. Scan doesn't handle NaN and ±Inf.
//
// Scan is intended for freshly declared values only; a Decimal shared with
// other code must not be scanned into.
func (z *Decimal) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	t := newDecimal(z.prec)
	if _, _, err := t.scan(byteReader{s}, 0); err != nil {
		return ParseError.Wrap(err)
	}
	*z = *t
	return nil
}
