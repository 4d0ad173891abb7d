// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the arithmetic and comparison operations of Decimal.

package bigdecimal

// fnorm normalizes mantissa m by shifting it to the left
// such that the msb of the most-significant word (msw) is 1.
// It returns the shift amount. It assumes that len(m) != 0.
func fnorm(m nat) int64 {
	if debugDecimal && (len(m) == 0 || m[len(m)-1] == 0) {
		panic("msw of mantissa is 0")
	}
	s := nlz(m[len(m)-1])
	if s > 0 {
		c := shlVU(m, m, s)
		if debugDecimal && c != 0 {
			panic("nlz or shlVU incorrect")
		}
	}
	return int64(s)
}

// far reports whether |y| lies entirely below the least significant bit of
// x and below the rounding position of a prec bit result. In that case y
// only contributes a sticky bit, and any value in (0, 2**e] with e as
// returned may stand in for it. x.exp >= y.exp must hold.
func far(x, y *Decimal, prec uint32) (e int64, ok bool) {
	t := int64(x.exp) - int64(len(x.mant))*_W
	if u := int64(x.exp) - int64(prec) - 2; u < t {
		t = u
	}
	if int64(y.exp) < t {
		return t - 1, true
	}
	return 0, false
}

// z = |x| + |y| rounded to z.prec; x and y must be finite and non-zero.
func (z *Decimal) uadd(x, y *Decimal) {
	if x.exp < y.exp {
		x, y = y, x
	}
	// x.exp >= y.exp

	xm, ex := x.mant, int64(x.exp)-int64(len(x.mant))*_W
	ym, ey := y.mant, int64(y.exp)-int64(len(y.mant))*_W
	if e, ok := far(x, y, z.prec); ok {
		ym, ey = natOne, e
	}

	switch {
	case ex < ey:
		z.mant = z.mant.add(xm, nat(nil).shl(ym, uint(ey-ex)))
	case ex > ey:
		z.mant = z.mant.add(nat(nil).shl(xm, uint(ex-ey)), ym)
		ex = ey
	default:
		// ex == ey, no shift needed
		z.mant = z.mant.add(xm, ym)
	}
	// len(z.mant) > 0

	z.setExpAndRound(ex+int64(len(z.mant))*_W-fnorm(z.mant), 0)
}

// z = |x| - |y| rounded to z.prec; x and y must be finite and non-zero
// with |x| >= |y|. A zero result is +0.
func (z *Decimal) usub(x, y *Decimal) {
	xm, ex := x.mant, int64(x.exp)-int64(len(x.mant))*_W
	ym, ey := y.mant, int64(y.exp)-int64(len(y.mant))*_W
	if e, ok := far(x, y, z.prec); ok {
		ym, ey = natOne, e
	}

	switch {
	case ex < ey:
		z.mant = z.mant.sub(xm, nat(nil).shl(ym, uint(ey-ex)))
	case ex > ey:
		z.mant = z.mant.sub(nat(nil).shl(xm, uint(ex-ey)), ym)
		ex = ey
	default:
		// ex == ey, no shift needed
		z.mant = z.mant.sub(xm, ym)
	}

	// operands may have canceled each other out
	if len(z.mant) == 0 {
		z.acc = Exact
		z.form = zero
		z.neg = false
		return
	}
	// len(z.mant) > 0

	z.setExpAndRound(ex+int64(len(z.mant))*_W-fnorm(z.mant), 0)
}

// z = |x| * |y| rounded to z.prec; x and y must be finite and non-zero.
func (z *Decimal) umul(x, y *Decimal) {
	// The exact product has len(x.mant)+len(y.mant) words and is
	// normalized by at most one bit.
	e := int64(x.exp) + int64(y.exp)
	if x == y {
		z.mant = z.mant.mul(x.mant, x.mant)
	} else {
		z.mant = z.mant.mul(x.mant, y.mant)
	}
	z.setExpAndRound(e-fnorm(z.mant), 0)
}

// z = |x| / |y| rounded to z.prec; x and y must be finite and non-zero.
func (z *Decimal) uquo(x, y *Decimal) {
	// mantissa length in words for desired result precision + 1
	// (at least one extra bit so we get the rounding bit after
	// the division)
	n := int(z.prec/_W) + 1

	// compute adjusted x.mant such that we get enough result precision
	xadj := x.mant
	if d := n - len(x.mant) + len(y.mant); d > 0 {
		// d extra words needed => add d "0 digits" to x
		xadj = make(nat, len(x.mant)+d)
		copy(xadj[d:], x.mant)
	}

	d := len(xadj) - len(y.mant)

	// divide
	var r nat
	z.mant, r = z.mant.div(nil, xadj, y.mant)
	e := int64(x.exp) - int64(y.exp) - int64(d-len(z.mant))*_W

	// The result is long enough to include (at least) the rounding bit.
	// If there's a non-zero remainder, the corresponding fractional part
	// (if it were computed), would have a non-zero sticky bit (if it were
	// zero, it couldn't have a non-zero remainder).
	var sbit uint
	if len(r) > 0 {
		sbit = 1
	}

	z.setExpAndRound(e-fnorm(z.mant), sbit)
}

// z = x - y*trunc(x/y) rounded to z.prec; x and y must be finite and
// non-zero. The remainder is computed exactly on the mantissas aligned to
// the smaller unit exponent and carries the sign of x.
func (z *Decimal) urem(x, y *Decimal) {
	z.neg = x.neg
	if x.ucmp(y) < 0 {
		// |x| < |y| => trunc(x/y) == 0
		z.set(x)
		return
	}
	// x.exp >= y.exp

	ex := int64(x.exp) - int64(len(x.mant))*_W
	ey := int64(y.exp) - int64(len(y.mant))*_W

	var r nat
	e := ex
	if ex < ey {
		// shift is bounded by the length of x.mant
		_, r = nat(nil).div(nil, x.mant, nat(nil).shl(y.mant, uint(ey-ex)))
	} else {
		r = nat(nil).shlMod(x.mant, uint64(ex-ey), y.mant)
		e = ey
	}

	if len(r) == 0 {
		z.acc = Exact
		z.form = zero
		return
	}
	z.mant = r
	z.setExpAndRound(e+int64(len(z.mant))*_W-fnorm(z.mant), 0)
}

// ucmp returns -1, 0, or +1, depending on whether
// |x| < |y|, |x| == |y|, or |x| > |y|.
// x and y must have a non-empty mantissa and valid exponent.
func (x *Decimal) ucmp(y *Decimal) int {
	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return +1
	}
	// x.exp == y.exp

	// compare mantissas
	i := len(x.mant)
	j := len(y.mant)
	for i > 0 || j > 0 {
		var xm, ym Word
		if i > 0 {
			i--
			xm = x.mant[i]
		}
		if j > 0 {
			j--
			ym = y.mant[j]
		}
		switch {
		case xm < ym:
			return -1
		case xm > ym:
			return +1
		}
	}

	return 0
}

// add sets z to x + y, or x - y if yneg != y.neg, rounded to z.prec.
func (z *Decimal) add(x, y *Decimal, yneg bool) *Decimal {
	if debugDecimal {
		x.validate()
		y.validate()
	}

	if x.form == nan || y.form == nan {
		return z.setNaN()
	}

	if x.form == finite && y.form == finite {
		// x + y (common case)
		z.neg = x.neg
		if x.neg == yneg {
			// x + y == x + y
			// (-x) + (-y) == -(x + y)
			z.uadd(x, y)
		} else {
			// x + (-y) == x - y == -(y - x)
			// (-x) + y == y - x == -(x - y)
			if x.ucmp(y) > 0 {
				z.usub(x, y)
			} else {
				z.neg = !z.neg
				z.usub(y, x)
			}
		}
		return z
	}

	if x.form == inf && y.form == inf && x.neg != yneg {
		// +Inf + -Inf
		// -Inf + +Inf
		return z.setNaN()
	}

	if x.form == zero && y.form == zero {
		// ±0 + ±0
		z.acc = Exact
		z.form = zero
		z.neg = x.neg && yneg // -0 + -0 == -0
		return z
	}

	if x.form == inf || y.form == zero {
		// ±Inf + y
		// x + ±0
		return z.set(x)
	}

	// ±0 + y
	// x + ±Inf
	z.set(y)
	if z.neg != yneg {
		z.neg = yneg
		z.acc = -z.acc
	}
	return z
}

// mul sets z to x * y rounded to z.prec.
func (z *Decimal) mul(x, y *Decimal) *Decimal {
	if debugDecimal {
		x.validate()
		y.validate()
	}

	if x.form == nan || y.form == nan {
		return z.setNaN()
	}

	z.neg = x.neg != y.neg

	if x.form == finite && y.form == finite {
		// x * y (common case)
		z.umul(x, y)
		return z
	}

	z.acc = Exact
	if x.form == zero && y.form == inf || x.form == inf && y.form == zero {
		// ±0 * ±Inf
		// ±Inf * ±0
		return z.setNaN()
	}

	if x.form == inf || y.form == inf {
		// ±Inf * y
		// x * ±Inf
		z.form = inf
		return z
	}

	// ±0 * y
	// x * ±0
	z.form = zero
	return z
}

// quo sets z to x / y rounded to z.prec.
func (z *Decimal) quo(x, y *Decimal) *Decimal {
	if debugDecimal {
		x.validate()
		y.validate()
	}

	if x.form == nan || y.form == nan || y.form == zero || x.form == inf && y.form == inf {
		// x / ±0
		// ±Inf / ±Inf
		return z.setNaN()
	}

	z.neg = x.neg != y.neg

	if x.form == finite && y.form == finite {
		// x / y (common case)
		z.uquo(x, y)
		return z
	}

	z.acc = Exact
	if x.form == zero || y.form == inf {
		// ±0 / y
		// x / ±Inf
		z.form = zero
		return z
	}

	// ±Inf / y
	z.form = inf
	return z
}

// rem sets z to x - y*trunc(x/y) rounded to z.prec.
func (z *Decimal) rem(x, y *Decimal) *Decimal {
	if debugDecimal {
		x.validate()
		y.validate()
	}

	if x.form == nan || y.form == nan || y.form == zero || x.form == inf {
		// x % ±0
		// ±Inf % y
		return z.setNaN()
	}

	if x.form == finite && y.form == finite {
		// x % y (common case)
		z.urem(x, y)
		return z
	}

	// ±0 % y
	// x % ±Inf
	return z.set(x)
}

// ord classifies x and returns:
//
//	-2 if -Inf == x
//	-1 if -Inf < x < 0
//	 0 if x == 0 (signed or unsigned)
//	+1 if 0 < x < +Inf
//	+2 if x == +Inf
//
// x must not be NaN.
func (x *Decimal) ord() int {
	var m int
	switch x.form {
	case finite:
		m = 1
	case zero:
		return 0
	case inf:
		m = 2
	}
	if x.neg {
		m = -m
	}
	return m
}

// cmp compares x and y, neither of which may be NaN, and returns -1, 0 or +1.
func (x *Decimal) cmp(y *Decimal) int {
	mx := x.ord()
	my := y.ord()
	switch {
	case mx < my:
		return -1
	case mx > my:
		return +1
	}
	// mx == my

	// only if |mx| == 1 we have to compare the mantissae
	switch mx {
	case -1:
		return y.ucmp(x)
	case +1:
		return x.ucmp(y)
	}

	return 0
}

// Equal reports whether x and y denote the same value. It is false if
// either operand is NaN. +0 and -0 are equal.
func (x *Decimal) Equal(y *Decimal) bool {
	if debugDecimal {
		x.validate()
		y.validate()
	}
	return x.form != nan && y.form != nan && x.cmp(y) == 0
}

// Less reports whether x < y. It is false if either operand is NaN.
func (x *Decimal) Less(y *Decimal) bool {
	if debugDecimal {
		x.validate()
		y.validate()
	}
	return x.form != nan && y.form != nan && x.cmp(y) < 0
}

// resultPrec returns prec, or the larger precision of x and y if prec is 0.
func resultPrec(prec uint, x, y *Decimal) uint32 {
	if prec == 0 {
		return umax32(x.precision(), y.precision())
	}
	return clampPrec(prec)
}

// Add returns the sum x+y rounded to the larger precision of x and y.
//
// The result is NaN if either operand is NaN or for x and y infinite
// with opposite signs. An exact zero sum is +0 unless both operands
// are -0.
func (x *Decimal) Add(y *Decimal) *Decimal {
	return AddPrec(x, y, 0)
}

// Sub returns the difference x-y rounded to the larger precision of x and y.
// Special values are handled as for Add.
func (x *Decimal) Sub(y *Decimal) *Decimal {
	return SubPrec(x, y, 0)
}

// Mul returns the product x*y rounded to the larger precision of x and y.
// The result is NaN if either operand is NaN, or for 0 * ±Inf.
func (x *Decimal) Mul(y *Decimal) *Decimal {
	return MulPrec(x, y, 0)
}

// Quo returns the quotient x/y rounded to the larger precision of x and y.
// The result is NaN if either operand is NaN, if y is zero, or if both
// operands are infinite.
func (x *Decimal) Quo(y *Decimal) *Decimal {
	return QuoPrec(x, y, 0)
}

// Rem returns the remainder x - y*trunc(x/y) rounded to the larger
// precision of x and y. The remainder is exact before rounding and has
// the sign of x. The result is NaN if either operand is NaN, if y is
// zero, or if x is infinite. x % ±Inf is x.
func (x *Decimal) Rem(y *Decimal) *Decimal {
	return RemPrec(x, y, 0)
}

// Neg returns x with its sign negated. NaN stays NaN.
func (x *Decimal) Neg() *Decimal {
	z := newDecimal(x.precision()).set(x)
	if z.form != nan {
		z.neg = !z.neg
	}
	return z
}

// Abs returns |x|. NaN stays NaN.
func (x *Decimal) Abs() *Decimal {
	z := newDecimal(x.precision()).set(x)
	z.neg = false
	return z
}

// AddPrec returns x+y rounded to prec bits. If prec is 0, the result has
// the larger precision of x and y; larger values are clamped to MaxPrec.
func AddPrec(x, y *Decimal, prec uint) *Decimal {
	return newDecimal(resultPrec(prec, x, y)).add(x, y, y.neg)
}

// SubPrec returns x-y rounded to prec bits, with prec as for AddPrec.
func SubPrec(x, y *Decimal, prec uint) *Decimal {
	return newDecimal(resultPrec(prec, x, y)).add(x, y, !y.neg)
}

// MulPrec returns x*y rounded to prec bits, with prec as for AddPrec.
func MulPrec(x, y *Decimal, prec uint) *Decimal {
	return newDecimal(resultPrec(prec, x, y)).mul(x, y)
}

// QuoPrec returns x/y rounded to prec bits, with prec as for AddPrec.
func QuoPrec(x, y *Decimal, prec uint) *Decimal {
	return newDecimal(resultPrec(prec, x, y)).quo(x, y)
}

// RemPrec returns x - y*trunc(x/y) rounded to prec bits, with prec as for
// AddPrec.
func RemPrec(x, y *Decimal, prec uint) *Decimal {
	return newDecimal(resultPrec(prec, x, y)).rem(x, y)
}
