// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import "math"

var three = FromUint64(3)

// Sqrt returns the square root of x rounded to the precision of x.
//
// The result is NaN if x < 0 or x is NaN; √±0 = ±0 and √+Inf = +Inf.
// The result may be off by one unit in the last place.
func (x *Decimal) Sqrt() *Decimal {
	if debugDecimal {
		x.validate()
	}

	z := newDecimal(x.precision())

	if x.form == nan || x.Sign() < 0 {
		// following IEEE754-2008 (section 7.2)
		return z.setNaN()
	}

	// handle ±0 and +∞
	if x.form != finite {
		z.acc = Exact
		z.form = x.form
		z.neg = x.neg // IEEE754-2008 requires √±0 = ±0
		return z
	}

	m, b := x.MantExp()
	// Compute √(m·2**b) as
	//   √( m)·2**(½b)     if b is even
	//   √(2m)·2**(⌊½b⌋)   if b > 0 is odd, and m = 2m
	//   √(½m)·2**(⌈½b⌉)   if b < 0 is odd, and m = ½m
	switch b % 2 {
	case 0:
		// nothing to do
	case 1:
		m.exp++
	case -1:
		m.exp--
	}
	// 0.25 <= m < 2.0

	z.sqrtInverse(m)

	// re-attach halved exponent
	z.exp += int32(b / 2)
	return z
}

// Compute √x (to z.prec precision) by solving
//   1/t² - x = 0
// for t (using Newton's method), and then inverting.
func (z *Decimal) sqrtInverse(x *Decimal) {
	// let
	//   f(t) = 1/t² - x
	// then
	//   g(t) = f(t)/f'(t) = -½t(1 - xt²)
	// and the next guess is given by
	//   t2 = t - g(t) = ½t(3 - xt²)
	ng := func(t *Decimal, prec uint32) *Decimal {
		u := newDecimal(prec).mul(t, t)             // u = t²
		u = newDecimal(prec).mul(x, u)              //   = xt²
		v := newDecimal(prec).add(three, u, !u.neg) // v = 3 - xt²
		u = newDecimal(prec).mul(t, v)              // u = t(3 - xt²)
		u.exp--                                     //   = ½t(3 - xt²)
		return u
	}

	xf, _ := x.Float64()
	sqi := FromFloat64(1 / math.Sqrt(xf))
	for prec := z.prec + 32; sqi.prec < prec; {
		sqi = ng(sqi, sqi.prec*2)
	}
	// sqi = 1/√x

	// x/√x = √x
	z.mul(x, sqi)
}
