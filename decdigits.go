// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements multi-precision decimal digit strings.
// The implementation is for float to decimal conversion only;
// not general purpose use.
// The only operations are precise conversion from binary to
// decimal and rounding.
//
// The key observation and some code (shr) is borrowed from
// strconv/decimal.go: conversion of binary fractional values can be done
// precisely in multi-precision decimal because 2 divides 10 (required for
// >> of mantissa); but conversion of decimal floating-point values cannot
// be done precisely in binary representation.
//
// In contrast to strconv/decimal.go, only right shift is implemented in
// decimal format - left shift can be done precisely in binary format.

package bigdecimal

// A decDigits represents an unsigned floating-point number in decimal
// representation. The value of a non-zero decDigits d is d.mant * 10**d.exp
// with 0.1 <= d.mant < 1, with the most-significant mantissa digit at index 0.
// For the zero decDigits, the mantissa length and exponent are 0.
// The zero value for decDigits represents a ready-to-use 0.0.
type decDigits struct {
	mant []byte // mantissa ASCII digits, big-endian
	exp  int    // exponent
}

// at returns the i'th mantissa digit, starting with the most significant digit at 0.
func (d *decDigits) at(i int) byte {
	if 0 <= i && i < len(d.mant) {
		return d.mant[i]
	}
	return '0'
}

// Maximum shift amount that can be done in one pass without overflow.
// A Word has _W bits and (1<<maxShift - 1)*10 + 9 must fit into Word.
const maxShift = _W - 4

// init initializes d to the decimal representation of m << shift (for
// shift >= 0), or m >> -shift (for shift < 0).
func (d *decDigits) init(m nat, shift int) {
	// special case 0
	if len(m) == 0 {
		d.mant = d.mant[:0]
		d.exp = 0
		return
	}

	// Optimization: If we need to shift right, first remove any trailing
	// zero bits from m to reduce shift amount that needs to be done in
	// decimal format (since that is likely slower).
	if shift < 0 {
		ntz := m.trailingZeroBits()
		s := uint(-shift)
		if s >= ntz {
			s = ntz // shift at most ntz bits
		}
		m = nat(nil).shr(m, s)
		shift += int(s)
	}

	// Do any shift left in binary representation.
	if shift > 0 {
		m = nat(nil).shl(m, uint(shift))
		shift = 0
	}

	// Convert mantissa into decimal representation.
	s := m.utoa(10)
	n := len(s)
	d.exp = n
	// Trim trailing zeros; instead the exponent is tracking
	// the decimal point independent of the number of digits.
	for n > 0 && s[n-1] == '0' {
		n--
	}
	d.mant = append(d.mant[:0], s[:n]...)

	// Do any (remaining) shift right in decimal representation.
	if shift < 0 {
		for shift < -maxShift {
			shr(d, maxShift)
			shift += maxShift
		}
		shr(d, uint(-shift))
	}
}

// shr implements d >> s, for s <= maxShift.
func shr(d *decDigits, s uint) {
	// Division by 1<<s using shift-and-subtract algorithm.

	// pick up enough leading digits to cover first shift
	r := 0 // read index
	var n Word
	for n>>s == 0 && r < len(d.mant) {
		ch := Word(d.mant[r])
		r++
		n = n*10 + ch - '0'
	}

	// d.mant is zero
	if n == 0 {
		d.mant = d.mant[:0]
		return
	}

	// we need to shift at least one more digit
	for n>>s == 0 {
		r++
		n *= 10
	}
	d.exp += 1 - r

	// read a digit, write a digit
	w := 0 // write index
	mask := Word(1)<<s - 1
	for r < len(d.mant) {
		ch := Word(d.mant[r])
		r++
		dig := n >> s
		n &= mask // n -= dig << s
		d.mant[w] = byte(dig + '0')
		w++
		n = n*10 + ch - '0'
	}

	// write extra digits that still fit
	for n > 0 && w < len(d.mant) {
		dig := n >> s
		n &= mask
		d.mant[w] = byte(dig + '0')
		w++
		n = n * 10
	}
	d.mant = d.mant[:w] // the number may be shorter (e.g. 1024 >> 10)

	// append additional digits that didn't fit
	for n > 0 {
		dig := n >> s
		n &= mask
		d.mant = append(d.mant, byte(dig+'0'))
		n = n * 10
	}

	trim(d)
}

func (d *decDigits) String() string {
	if len(d.mant) == 0 {
		return "0"
	}

	var buf []byte
	switch {
	case d.exp <= 0:
		// 0.00ddd
		buf = make([]byte, 0, 2+(-d.exp)+len(d.mant))
		buf = append(buf, "0."...)
		buf = appendZeros(buf, -d.exp)
		buf = append(buf, d.mant...)

	case /* 0 < */ d.exp < len(d.mant):
		// dd.ddd
		buf = make([]byte, 0, 1+len(d.mant))
		buf = append(buf, d.mant[:d.exp]...)
		buf = append(buf, '.')
		buf = append(buf, d.mant[d.exp:]...)

	default: // len(d.mant) <= d.exp
		// ddd00
		buf = make([]byte, 0, d.exp)
		buf = append(buf, d.mant...)
		buf = appendZeros(buf, d.exp-len(d.mant))
	}

	return string(buf)
}

// appendZeros appends n 0 digits to buf and returns buf.
func appendZeros(buf []byte, n int) []byte {
	for ; n > 0; n-- {
		buf = append(buf, '0')
	}
	return buf
}

// shouldRoundUp reports if d should be rounded up
// if shortened to n digits. n must be a valid index
// for d.mant.
func shouldRoundUp(d *decDigits, n int) bool {
	if d.mant[n] == '5' && n+1 == len(d.mant) {
		// exactly halfway - round to even
		return n > 0 && (d.mant[n-1]-'0')&1 != 0
	}
	// not halfway - digit tells all (d.mant has no trailing zeros)
	return d.mant[n] >= '5'
}

// round sets d to (at most) n mantissa digits by rounding it
// to the nearest even value with n (or fever) mantissa digits.
// If n < 0, d remains unchanged.
func (d *decDigits) round(n int) {
	if n < 0 || n >= len(d.mant) {
		return // nothing to do
	}

	if shouldRoundUp(d, n) {
		d.roundUp(n)
	} else {
		d.roundDown(n)
	}
}

func (d *decDigits) roundUp(n int) {
	if n < 0 || n >= len(d.mant) {
		return // nothing to do
	}
	// 0 <= n < len(d.mant)

	// find first digit < '9'
	for n > 0 && d.mant[n-1] >= '9' {
		n--
	}

	if n == 0 {
		// all digits are '9's => round up to '1' and update exponent
		d.mant[0] = '1' // ok since len(d.mant) > n
		d.mant = d.mant[:1]
		d.exp++
		return
	}

	d.mant[n-1]++
	d.mant = d.mant[:n]
	// d already trimmed
}

func (d *decDigits) roundDown(n int) {
	if n < 0 || n >= len(d.mant) {
		return // nothing to do
	}
	d.mant = d.mant[:n]
	trim(d)
}

// trim cuts off any trailing zeros from d's mantissa;
// they are meaningless for the value of d.
func trim(d *decDigits) {
	i := len(d.mant)
	for i > 0 && d.mant[i-1] == '0' {
		i--
	}
	d.mant = d.mant[:i]
	if i == 0 {
		d.exp = 0
	}
}
