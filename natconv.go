// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements nat-to-string conversion functions.

package bigdecimal

import (
	"io"
	"math"
)

// scan scans the number corresponding to the longest possible prefix
// from r representing an unsigned number in a given conversion base.
// scan returns the corresponding natural number res, the actual base b,
// a digit count, and a read or syntax error err, if any.
//
// For base 0, an optional "0b", "0B", "0x" or "0X" prefix selects base 2 or
// 16; otherwise the base is 10. For base 2 and 16 the corresponding prefix is
// accepted and skipped.
//
// number    = mantissa | prefix pmantissa .
// prefix    = "0" ( "b" | "B" | "x" | "X" ) .
// mantissa  = digits "." [ digits ] | digits | "." digits .
// pmantissa = digits "." [ digits ] | digits | "." digits .
// digits    = digit { digit } .
// digit     = "0" ... "9" | "A" ... "Z" | "a" ... "z" .
//
// If fracOk is set, a period followed by a fractional part is permitted.
// If a fractional part is present, count is the negative number of
// fractional digits. Otherwise count is the number of digits scanned.
func (z nat) scan(r io.ByteScanner, base int, fracOk bool) (res nat, b, count int, err error) {
	// one char look-ahead
	ch, err := r.ReadByte()

	// determine actual base
	b, prefix := base, 0
	if base == 0 {
		b = 10
	}
	if err == nil && ch == '0' && (base == 0 || base == 2 || base == 16) {
		count = 1
		ch, err = r.ReadByte()
		if err == nil {
			switch {
			case (ch == 'x' || ch == 'X') && (base == 0 || base == 16):
				b, prefix = 16, 'x'
			case (ch == 'b' || ch == 'B') && (base == 0 || base == 2):
				b, prefix = 2, 'b'
			}
			if prefix != 0 {
				count = 0 // prefix is not counted
				ch, err = r.ReadByte()
			}
		}
	}

	// convert string
	// Algorithm: Collect digits in groups of at most n digits in di
	// and then use mulAddWW for every such group to add them to the
	// result.
	z = z[:0]
	b1 := Word(b)
	bn, n := maxPow(b1) // at most n digits in base b1 fit into Word
	di := Word(0)       // 0 <= di < b1**i < bn
	i := 0              // 0 <= i < n
	dp := -1            // position of decimal point
	for err == nil {
		if ch == '.' && fracOk {
			fracOk = false
			dp = count
		} else {
			// convert rune into digit value d1
			d1 := digitVal(ch, b)
			if d1 >= b1 {
				_ = r.UnreadByte() // ch does not belong to number anymore
				break
			}
			count++

			// collect d1 in di
			di = di*b1 + d1
			i++

			// if di is "full", add it to the result
			if i == n {
				z = z.mulAddWW(z, bn, di)
				di = 0
				i = 0
			}
		}

		ch, err = r.ReadByte()
	}

	if err == io.EOF {
		err = nil
	}

	if err == nil && count == 0 {
		err = errNoDigits
	}

	// add remaining digits to result
	if i > 0 {
		z = z.mulAddWW(z, pow(b1, i), di)
	}
	res = z.norm()

	// adjust count for fraction, if any
	if dp >= 0 {
		// 0 <= dp <= count
		count = dp - count
	}

	return
}

// utoa converts x to an ASCII representation in the given base;
// base must be between 2 and MaxBase, inclusive.
func (x nat) utoa(base int) []byte {
	if len(x) == 0 {
		return []byte("0")
	}
	// len(x) > 0

	// allocate buffer for conversion
	i := int(float64(x.bitLen())/math.Log2(float64(base))) + 1 // off by 1 at most
	s := make([]byte, i)

	// convert power of two and non power of two bases separately
	b := Word(base)
	bb, ndigits := maxPow(b)
	q := nat(nil).set(x)
	for len(q) > 0 {
		// extract least significant, base bb "digit"
		var r Word
		q, r = q.divW(q, bb)
		for j := 0; j < ndigits && i > 0; j++ {
			i--
			s[i] = digits[r%b]
			r /= b
		}
	}

	// strip leading zeros
	for i < len(s)-1 && s[i] == '0' {
		i++
	}

	return s[i:]
}
