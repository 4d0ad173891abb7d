// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Decimal-to-string conversion functions.
// It is closely following the corresponding implementation
// in strconv/ftoa.go, but modified and simplified for Decimal.

package bigdecimal

import (
	"fmt"
	"strconv"
)

// String returns the shortest decimal representation of x that parses back
// to the same value at x's precision. The decimal point is placed at the
// decimal exponent of the digits. Exponent notation d.ddde±dd is used when
// the decimal exponent is below -5 or above 21 (as in 1e-07 or 1e+21).
//
// NaN is "NaN", infinities are "+Inf" and "-Inf". Both zeros print as "0";
// use Text or Format to see the sign of a zero.
func (x *Decimal) String() string {
	return string(x.appendString(nil))
}

// Exponent notation is used outside of these decimal exponents. The
// decimal exponent counts the digits before the decimal point.
const (
	minPointExp = -5
	maxPointExp = 21
)

func (x *Decimal) appendString(buf []byte) []byte {
	switch x.form {
	case nan:
		return append(buf, "NaN"...)
	case inf:
		if x.neg {
			return append(buf, "-Inf"...)
		}
		return append(buf, "+Inf"...)
	}

	if x.form == zero {
		return append(buf, '0')
	}
	if x.neg {
		buf = append(buf, '-')
	}

	var d decDigits
	d.init(x.mant, int(x.exp)-x.mant.bitLen())
	roundShortest(&d, x)

	if d.exp < minPointExp || d.exp > maxPointExp {
		return fmtE(buf, 'e', len(d.mant)-1, d)
	}
	// insert the point at d.exp
	return append(buf, d.String()...)
}

// Text converts the Decimal x to a string according
// to the given format and precision prec. The format is one of:
//
//	'e'	-d.dddde±dd, decimal exponent, at least two (possibly 0) exponent digits
//	'E'	-d.ddddE±dd, decimal exponent, at least two (possibly 0) exponent digits
//	'f'	-ddddd.dddd, no exponent
//	'g'	like 'e' for large exponents, like 'f' otherwise
//	'G'	like 'E' for large exponents, like 'f' otherwise
//
// For the formats 'e', 'E', 'f', 'g' and 'G' the precision argument
// specifies the number of digits after the decimal point for 'e', 'E' and
// 'f', and the maximum number of significant digits for 'g' and 'G'. A
// negative precision selects the smallest number of decimal digits
// necessary to represent the value x uniquely using x.Prec() mantissa bits.
//
// NaN is "NaN", infinities are "+Inf" and "-Inf".
func (x *Decimal) Text(format byte, prec int) string {
	n := 10
	if prec > 0 {
		n += prec
	}
	return string(x.Append(make([]byte, 0, n), format, prec))
}

// Append appends to buf the string form of the Decimal x,
// as generated by x.Text, and returns the extended buffer.
func (x *Decimal) Append(buf []byte, fmt byte, prec int) []byte {
	// NaN
	if x.form == nan {
		return append(buf, "NaN"...)
	}

	// sign
	if x.neg {
		buf = append(buf, '-')
	}

	// Inf
	if x.form == inf {
		if !x.neg {
			buf = append(buf, '+')
		}
		return append(buf, "Inf"...)
	}

	// 1) convert Decimal to multiprecision decimal
	var d decDigits // == 0.0
	if x.form == finite {
		// x != 0
		d.init(x.mant, int(x.exp)-x.mant.bitLen())
	}

	// 2) round to desired precision
	shortest := false
	if prec < 0 {
		shortest = true
		roundShortest(&d, x)
		// Precision for shortest representation mode.
		switch fmt {
		case 'e', 'E':
			prec = len(d.mant) - 1
		case 'f':
			prec = max(len(d.mant)-d.exp, 0)
		case 'g', 'G':
			prec = len(d.mant)
		}
	} else {
		// round appropriately
		switch fmt {
		case 'e', 'E':
			// one digit before and number of digits after decimal point
			d.round(1 + prec)
		case 'f':
			// number of digits before and after decimal point
			d.round(d.exp + prec)
		case 'g', 'G':
			if prec == 0 {
				prec = 1
			}
			d.round(prec)
		}
	}

	// 3) read digits out and format
	switch fmt {
	case 'e', 'E':
		return fmtE(buf, fmt, prec, d)
	case 'f':
		return fmtF(buf, prec, d)
	case 'g', 'G':
		// trim trailing fractional zeros in %e format
		eprec := prec
		if eprec > len(d.mant) && len(d.mant) >= d.exp {
			eprec = len(d.mant)
		}
		// %e is used if the exponent from the conversion
		// is less than -4 or greater than or equal to the precision.
		// If precision was the shortest possible, use eprec = 6 for
		// this decision.
		if shortest {
			eprec = 6
		}
		exp := d.exp - 1
		if exp < -4 || exp >= eprec {
			if prec > len(d.mant) {
				prec = len(d.mant)
			}
			return fmtE(buf, fmt+'e'-'g', prec-1, d)
		}
		if prec > d.exp {
			prec = len(d.mant)
		}
		return fmtF(buf, max(prec-d.exp, 0), d)
	}

	// unknown format
	if x.neg {
		buf = buf[:len(buf)-1] // sign was added prematurely - remove it again
	}
	return append(buf, '%', fmt)
}

func roundShortest(d *decDigits, x *Decimal) {
	// if the mantissa is zero, the number is zero - stop now
	if len(d.mant) == 0 {
		return
	}

	// A value with at most prec·log10(2) significant digits is more than
	// 1/2 ulp away from any shorter decimal: its exact digits are the
	// shortest. 3322/1000 > log2(10).
	if int64(len(d.mant))*3322 <= int64(x.prec)*1000 {
		return
	}

	// Approach: All numbers in the interval [x - 1/2ulp, x + 1/2ulp]
	// (possibly exclusive) round to x for the given precision of x.
	// Compute the lower and upper bound in decimal form and find the
	// shortest decimal number d such that lower <= d <= upper.

	// 1) Compute normalized mantissa mant and exponent exp for x such
	// that the lsb of mant corresponds to 1/2 ulp for the precision of
	// x (i.e., for mant we want x.prec + 1 bits).
	mant := nat(nil).set(x.mant)
	exp := int(x.exp) - mant.bitLen()
	s := mant.bitLen() - int(x.prec+1)
	switch {
	case s < 0:
		mant = mant.shl(mant, uint(-s))
	case s > 0:
		mant = mant.shr(mant, uint(+s))
	}
	exp += s
	// x = mant * 2**exp with lsb(mant) == 1/2 ulp of x.prec

	// 2) Compute lower bound by subtracting 1/2 ulp. Below a power of two
	// the ulp is halved, and so is the distance to the lower bound.
	var lower decDigits
	var tmp nat
	if x.MinPrec() == 1 && x.exp > MinExp {
		tmp = tmp.shl(mant, 1)
		lower.init(tmp.sub(tmp, natOne), exp-1)
	} else {
		lower.init(tmp.sub(mant, natOne), exp)
	}

	// 3) Compute upper bound by adding 1/2 ulp.
	var upper decDigits
	upper.init(tmp.add(mant, natOne), exp)

	// The upper and lower bounds are possible outputs only if
	// the original mantissa is even, so that ToNearestEven rounding
	// would round to the original mantissa and not the neighbors.
	inclusive := mant[0]&2 == 0 // test bit 1 since original mantissa was shifted by 1

	// Now we can figure out the minimum number of digits required.
	// Walk along until d has distinguished itself from upper and lower.
	for i, m := range d.mant {
		l := lower.at(i)
		u := upper.at(i)

		// Okay to round down (truncate) if lower has a different digit
		// or if lower is inclusive and is exactly the result of rounding
		// down (i.e., and we have reached the final digit of lower).
		okdown := l != m || inclusive && i+1 == len(lower.mant)

		// Okay to round up if upper has a different digit and either upper
		// is inclusive or upper is bigger than the result of rounding up.
		okup := m != u && (inclusive || m+1 < u || i+1 < len(upper.mant))

		// If it's okay to do either, then round to the nearest one.
		// If it's okay to do only one, do it.
		switch {
		case okdown && okup:
			d.round(i + 1)
			return
		case okdown:
			d.roundDown(i + 1)
			return
		case okup:
			d.roundUp(i + 1)
			return
		}
	}
}

// %e: d.ddddde±dd
func fmtE(buf []byte, fmt byte, prec int, d decDigits) []byte {
	// first digit
	ch := byte('0')
	if len(d.mant) > 0 {
		ch = d.mant[0]
	}
	buf = append(buf, ch)

	// .moredigits
	if prec > 0 {
		buf = append(buf, '.')
		i := 1
		m := min(len(d.mant), prec+1)
		if i < m {
			buf = append(buf, d.mant[i:m]...)
			i = m
		}
		for ; i <= prec; i++ {
			buf = append(buf, '0')
		}
	}

	// e±
	buf = append(buf, fmt)
	var exp int64
	if len(d.mant) > 0 {
		exp = int64(d.exp) - 1 // -1 because first digit was printed before '.'
	}
	if exp < 0 {
		ch = '-'
		exp = -exp
	} else {
		ch = '+'
	}
	buf = append(buf, ch)

	// dd...d
	if exp < 10 {
		buf = append(buf, '0') // at least 2 exponent digits
	}
	return strconv.AppendInt(buf, exp, 10)
}

// %f: ddddddd.ddddd
func fmtF(buf []byte, prec int, d decDigits) []byte {
	// integer, padded with zeros as needed
	if d.exp > 0 {
		m := min(len(d.mant), d.exp)
		buf = append(buf, d.mant[:m]...)
		for ; m < d.exp; m++ {
			buf = append(buf, '0')
		}
	} else {
		buf = append(buf, '0')
	}

	// fraction
	if prec > 0 {
		buf = append(buf, '.')
		for i := 0; i < prec; i++ {
			buf = append(buf, d.at(d.exp+i))
		}
	}

	return buf
}

var _ fmt.Formatter = &decimalZero // *Decimal must implement fmt.Formatter

// Format implements fmt.Formatter. It accepts all the regular
// formats for floating-point numbers ('e', 'E', 'f', 'F', 'g', 'G')
// as well as 's' and 'v', which print the same text as String.
// Format also supports the output field width, as well as the
// format flags '+' and ' ' for sign control, '0' for space or
// zero padding, and '-' for left or right justification.
// See the fmt package for details.
func (x *Decimal) Format(s fmt.State, format rune) {
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = 6 // default precision for 'e', 'f'
	}

	var buf []byte
	switch format {
	case 'e', 'E', 'f':
		buf = x.Append(buf, byte(format), prec)
	case 'F':
		// (*Decimal).Text doesn't support 'F'; handle like 'f'
		buf = x.Append(buf, 'f', prec)
	case 'g', 'G':
		if !hasPrec {
			prec = -1
		}
		buf = x.Append(buf, byte(format), prec)
	case 's', 'v':
		buf = x.appendString(buf)
	default:
		fmt.Fprintf(s, "%%!%c(*bigdecimal.Decimal=%s)", format, x.String())
		return
	}

	var sign string
	switch {
	case buf[0] == '-':
		sign = "-"
		buf = buf[1:]
	case buf[0] == '+':
		// +Inf
		sign = "+"
		if s.Flag(' ') {
			sign = " "
		}
		buf = buf[1:]
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var padding int
	if width, hasWidth := s.Width(); hasWidth && width > len(sign)+len(buf) {
		padding = width - len(sign) - len(buf)
	}

	switch {
	case s.Flag('0') && x.form < inf:
		// 0-padding on left
		writeMultiple(s, sign, 1)
		writeMultiple(s, "0", padding)
		s.Write(buf)
	case s.Flag('-'):
		// padding on right
		writeMultiple(s, sign, 1)
		s.Write(buf)
		writeMultiple(s, " ", padding)
	default:
		// padding on left
		writeMultiple(s, " ", padding)
		writeMultiple(s, sign, 1)
		s.Write(buf)
	}
}

// writeMultiple writes n copies of text to s.
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}
