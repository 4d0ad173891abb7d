// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import (
	"fmt"
	"math"
	"math/bits"
)

const debugDecimal = false // enable for debugging

// A nonzero finite Decimal represents a multi-precision floating point number
//
//   sign × mantissa × 2**exponent
//
// with 0.5 <= mantissa < 1.0, and MinExp <= exponent <= MaxExp.
// A Decimal may also be zero (+0, -0), infinite (+Inf, -Inf) or NaN.
//
// Each Decimal value has a precision: the number of bits available to
// represent the mantissa. Results are rounded to nearest, ties to even, and
// the Accuracy reports the error of the rounded result relative to the
// exact one.
//
// Decimal values are immutable: every operation returns a new value and
// never modifies its operands, so a *Decimal may be shared freely between
// goroutines. The zero value for a Decimal is 0 at DefaultPrec.
type Decimal struct {
	prec uint32
	form form
	neg  bool
	acc  Accuracy
	mant nat
	exp  int32
}

func newDecimal(prec uint32) *Decimal {
	return &Decimal{prec: prec}
}

// Zero returns +0 at DefaultPrec.
func Zero() *Decimal {
	return newDecimal(DefaultPrec)
}

// One returns 1 at DefaultPrec.
func One() *Decimal {
	return FromUint64(1)
}

// NewPrec returns +0 with the given precision. It fails with a
// ConstructionError if prec is 0 or larger than MaxPrec.
func NewPrec(prec uint) (*Decimal, error) {
	if err := checkPrec(prec); err != nil {
		return nil, err
	}
	return newDecimal(uint32(prec)), nil
}

// FromInt64 returns x rounded to DefaultPrec.
func FromInt64(x int64) *Decimal {
	return FromInt64Prec(x, DefaultPrec)
}

// FromInt64Prec returns x rounded to prec bits. A prec of 0 or larger than
// MaxPrec is clamped to [1, MaxPrec]; x is exact for prec >= 64.
func FromInt64Prec(x int64, prec uint) *Decimal {
	u := x
	if u < 0 {
		u = -u
	}
	// We cannot simply call setBits64(x < 0, uint64(u)) because
	// if x == math.MinInt64 then u == math.MinInt64 and -u is still negative.
	return newDecimal(clampPrec(prec)).setBits64(x < 0, uint64(u))
}

// FromUint64 returns x rounded to DefaultPrec.
func FromUint64(x uint64) *Decimal {
	return FromUint64Prec(x, DefaultPrec)
}

// FromUint64Prec returns x rounded to prec bits, with prec as for
// FromInt64Prec.
func FromUint64Prec(x uint64, prec uint) *Decimal {
	return newDecimal(clampPrec(prec)).setBits64(false, x)
}

// FromFloat64 returns the exact binary value of x. The precision of the
// result is the larger of 53 and DefaultPrec. NaN and ±Inf map to their
// Decimal counterparts.
func FromFloat64(x float64) *Decimal {
	z := newDecimal(umax32(53, DefaultPrec))
	if math.IsNaN(x) {
		return z.setNaN()
	}
	z.acc = Exact
	z.neg = math.Signbit(x) // handle -0, -Inf correctly
	if x == 0 {
		z.form = zero
		return z
	}
	if math.IsInf(x, 0) {
		z.form = inf
		return z
	}
	// normalized x != 0
	z.form = finite
	fmant, exp := math.Frexp(x) // get normalized mantissa
	z.mant = z.mant.setUint64(1<<63 | math.Float64bits(fmant)<<11)
	z.exp = int32(exp) // always fits
	return z
}

// NaN returns a NaN at DefaultPrec.
func NaN() *Decimal {
	return newDecimal(DefaultPrec).setNaN()
}

// Inf returns -Inf if signbit is set, +Inf otherwise.
func Inf(signbit bool) *Decimal {
	z := newDecimal(DefaultPrec)
	z.form = inf
	z.neg = signbit
	return z
}

// WithPrec returns x rounded to prec bits. A prec of 0 or larger than
// MaxPrec is clamped to [1, MaxPrec].
func (x *Decimal) WithPrec(prec uint) *Decimal {
	return newDecimal(clampPrec(prec)).set(x)
}

func clampPrec(prec uint) uint32 {
	switch {
	case prec == 0:
		return 1
	case prec > MaxPrec:
		return MaxPrec
	}
	return uint32(prec)
}

// precision returns x.prec, or DefaultPrec for the zero value.
func (x *Decimal) precision() uint32 {
	if x.prec == 0 {
		return DefaultPrec
	}
	return x.prec
}

// Prec returns the mantissa precision of x in bits.
func (x *Decimal) Prec() uint {
	return uint(x.precision())
}

// Acc returns the accuracy of x produced by the operation that created it.
func (x *Decimal) Acc() Accuracy {
	return x.acc
}

// MinPrec returns the minimum precision required to represent x exactly
// (i.e., the smallest prec before x.WithPrec(prec) would start rounding x).
// The result is 0 for |x| == 0, |x| == Inf and NaN.
func (x *Decimal) MinPrec() uint {
	if x.form != finite {
		return 0
	}
	return uint(len(x.mant))*_W - x.mant.trailingZeroBits()
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0 or NaN
//	+1 if x >   0
//
func (x *Decimal) Sign() int {
	if debugDecimal {
		x.validate()
	}
	if x.form == zero || x.form == nan {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Signbit reports whether x is negative or negative zero.
func (x *Decimal) Signbit() bool {
	return x.neg
}

// IsZero reports whether x equals Zero(). Both +0 and -0 are zero.
func (x *Decimal) IsZero() bool {
	return x.Equal(Zero())
}

// IsNaN reports whether x is a NaN.
func (x *Decimal) IsNaN() bool {
	return x.form == nan
}

// IsInf reports whether x is +Inf or -Inf.
func (x *Decimal) IsInf() bool {
	return x.form == inf
}

// IsInt reports whether x is an integer.
// ±Inf and NaN values are not integers.
func (x *Decimal) IsInt() bool {
	if debugDecimal {
		x.validate()
	}
	// special cases
	if x.form != finite {
		return x.form == zero
	}
	// x.form == finite
	if x.exp <= 0 {
		return false
	}
	// x.exp > 0
	return x.prec <= uint32(x.exp) || x.MinPrec() <= uint(x.exp) // not enough bits for fractional mantissa
}

// MantExp breaks x into its mantissa and exponent components such that
//
//	x == mant × 2**exp
//
// with 0.5 <= |mant| < 1.0. For ±0, ±Inf and NaN, mant is a copy of x and
// exp is 0.
func (x *Decimal) MantExp() (mant *Decimal, exp int) {
	if x.form == finite {
		exp = int(x.exp)
	}
	mant = newDecimal(x.precision()).set(x)
	if mant.form == finite {
		mant.exp = 0
	}
	return
}

func (x *Decimal) validate() {
	if !debugDecimal {
		// avoid performance bugs
		panic("validate called but debugDecimal is not set")
	}
	if x.form != finite {
		return
	}
	m := len(x.mant)
	if m == 0 {
		panic("nonzero finite number with empty mantissa")
	}
	const msb = 1 << (_W - 1)
	if x.mant[m-1]&msb == 0 {
		panic(fmt.Sprintf("msb not set in last word %#x of %s", x.mant[m-1], x.Text('e', 10)))
	}
	if x.prec == 0 {
		panic("zero precision finite number")
	}
}

// round rounds z to z.prec bits, to nearest with ties to even, and sets
// z.acc accordingly. sbit must be 0 or 1 and summarizes any "sticky bit"
// information one might have before calling round. z's mantissa must be
// normalized (with the msb set) or empty.
func (z *Decimal) round(sbit uint) {
	if debugDecimal {
		z.validate()
	}

	z.acc = Exact
	if z.form != finite {
		// ±0, ±Inf or NaN => nothing left to do
		return
	}
	// z.form == finite && len(z.mant) > 0
	// m > 0 implies z.prec > 0 (checked by validate)

	m := uint32(len(z.mant)) // present mantissa length in words
	bits := m * _W           // present mantissa bits; bits > 0
	if bits <= z.prec {
		// mantissa fits => nothing to do
		return
	}
	// bits > z.prec

	// Rounding is based on two bits: the rounding bit (rbit) and the
	// sticky bit (sbit). The rbit is the bit immediately before the
	// z.prec leading mantissa bits (the "0.5"). The sbit is set if any
	// of the bits before the rbit are set (the "0.25", "0.125", etc.):
	//
	//   rbit  sbit  => "fractional part"
	//
	//   0     0        == 0
	//   0     1        >  0  , < 0.5
	//   1     0        == 0.5
	//   1     1        >  0.5, < 1.0

	// bits > z.prec: mantissa too large => round
	r := uint(bits - z.prec - 1) // rounding bit position; r >= 0
	rbit := z.mant.bit(r) & 1    // rounding bit; be safe and ensure it's a single bit
	if sbit == 0 {
		sbit = z.mant.sticky(r)
	}
	sbit &= 1 // be safe and ensure it's a single bit

	// cut off extra words
	n := (z.prec + (_W - 1)) / _W // mantissa length in words for desired precision
	if m > n {
		copy(z.mant, z.mant[m-n:]) // move n last words to front
		z.mant = z.mant[:n]
	}

	// determine number of trailing zero bits (ntz) and compute lsb mask of mantissa's least-significant word
	ntz := n*_W - z.prec // 0 <= ntz < _W
	lsb := Word(1) << ntz

	// round if result is inexact
	if rbit|sbit != 0 {
		// The result mantissa is truncated ("rounded down") unless it is
		// above the halfway point, or exactly halfway with an odd lsb.
		inc := rbit != 0 && (sbit != 0 || z.mant[0]&lsb != 0)

		// A positive result (!z.neg) is Above the exact result if we increment,
		// and it's Below if we truncate (Exact results require no rounding).
		// For a negative result (z.neg) it is exactly the opposite.
		z.acc = makeAcc(inc != z.neg)

		if inc {
			// add 1 to mantissa
			if addVW(z.mant, z.mant, lsb) != 0 {
				// mantissa overflow => adjust exponent
				if z.exp >= MaxExp {
					// exponent overflow
					z.form = inf
					return
				}
				z.exp++
				// adjust mantissa: divide by 2 to compensate for exponent adjustment
				shrVU(z.mant, z.mant, 1)
				// set msb == carry == 1 from the mantissa overflow above
				const msb = 1 << (_W - 1)
				z.mant[n-1] |= msb
			}
		}
	}

	// zero out trailing bits in least-significant word
	z.mant[0] &^= lsb - 1

	if debugDecimal {
		z.validate()
	}
}

// setExpAndRound sets the exponent of z, handling exponent overflow (±Inf)
// and underflow (±0), then rounds z.
func (z *Decimal) setExpAndRound(exp int64, sbit uint) {
	if exp < MinExp {
		// underflow
		z.acc = makeAcc(z.neg)
		z.form = zero
		return
	}

	if exp > MaxExp {
		// overflow
		z.acc = makeAcc(!z.neg)
		z.form = inf
		return
	}

	z.form = finite
	z.exp = int32(exp)
	z.round(sbit)
}

func (z *Decimal) setBits64(neg bool, x uint64) *Decimal {
	z.acc = Exact
	z.neg = neg
	if x == 0 {
		z.form = zero
		return z
	}
	// x != 0
	z.form = finite
	s := bits.LeadingZeros64(x)
	z.mant = z.mant.setUint64(x << uint(s))
	z.exp = int32(64 - s) // always fits
	if z.prec < 64 {
		z.round(0)
	}
	return z
}

func (z *Decimal) setNaN() *Decimal {
	z.acc = Exact
	z.form = nan
	z.neg = false
	z.mant = nil
	return z
}

// set sets z to the value of x rounded to z.prec.
func (z *Decimal) set(x *Decimal) *Decimal {
	if debugDecimal {
		x.validate()
	}
	z.acc = Exact
	z.form = x.form
	z.neg = x.neg
	if x.form == finite {
		z.exp = x.exp
		z.mant = z.mant.set(x.mant)
		z.round(0)
	}
	return z
}

// msb64 returns the 64 most significant bits of x.
func msb64(x nat) uint64 {
	i := len(x) - 1
	if i < 0 {
		return 0
	}
	if debugDecimal && x[i]&(1<<(_W-1)) == 0 {
		panic("x not normalized")
	}
	switch _W {
	case 32:
		v := uint64(x[i]) << 32
		if i > 0 {
			v |= uint64(x[i-1])
		}
		return v
	case 64:
		return uint64(x[i])
	}
	panic("unreachable")
}

// Uint64 returns the unsigned integer resulting from truncating x
// towards zero. If 0 <= x <= math.MaxUint64, the result is Exact
// if x is an integer and Below otherwise.
// The result is (0, Above) for x < 0, (math.MaxUint64, Below)
// for x > math.MaxUint64, and (0, Exact) for NaN.
func (x *Decimal) Uint64() (uint64, Accuracy) {
	if debugDecimal {
		x.validate()
	}

	switch x.form {
	case finite:
		if x.neg {
			return 0, Above
		}
		// 0 < x < +Inf
		if x.exp <= 0 {
			// 0 < x < 1
			return 0, Below
		}
		// 1 <= x < Inf
		if x.exp <= 64 {
			// u = trunc(x) fits into a uint64
			u := msb64(x.mant) >> (64 - uint32(x.exp))
			if x.MinPrec() <= 64 {
				return u, Exact
			}
			return u, Below // x truncated
		}
		// x too large
		return math.MaxUint64, Below

	case zero:
		return 0, Exact

	case inf:
		if x.neg {
			return 0, Above
		}
		return math.MaxUint64, Below
	}

	return 0, Exact
}

// Int64 returns the integer resulting from truncating x towards zero.
// If math.MinInt64 <= x <= math.MaxInt64, the result is Exact if x is
// an integer, and Above (x < 0) or Below (x > 0) otherwise.
// The result is (math.MinInt64, Above) for x < math.MinInt64,
// (math.MaxInt64, Below) for x > math.MaxInt64, and (0, Exact) for NaN.
func (x *Decimal) Int64() (int64, Accuracy) {
	if debugDecimal {
		x.validate()
	}

	switch x.form {
	case finite:
		// 0 < |x| < +Inf
		acc := makeAcc(x.neg)
		if x.exp <= 0 {
			// 0 < |x| < 1
			return 0, acc
		}
		// x.exp > 0

		// 1 <= |x| < +Inf
		if x.exp <= 63 {
			// i = trunc(x) fits into an int64 (excluding math.MinInt64)
			i := int64(msb64(x.mant) >> (64 - uint32(x.exp)))
			if x.neg {
				i = -i
			}
			if x.MinPrec() <= uint(x.exp) {
				return i, Exact
			}
			return i, acc // x truncated
		}
		if x.neg {
			// check for special case x == math.MinInt64 (i.e., x == -(0.5 << 64))
			if x.exp == 64 && x.MinPrec() == 1 {
				acc = Exact
			}
			return math.MinInt64, acc
		}
		// x too large
		return math.MaxInt64, Below

	case zero:
		return 0, Exact

	case inf:
		if x.neg {
			return math.MinInt64, Above
		}
		return math.MaxInt64, Below
	}

	return 0, Exact
}

// Float64 returns the float64 value nearest to x. If x is too small to be
// represented by a float64 (|x| < math.SmallestNonzeroFloat64), the result
// is (0, Below) or (-0, Above), respectively, depending on the sign of x.
// If x is too large to be represented by a float64 (|x| > math.MaxFloat64),
// the result is (+Inf, Above) or (-Inf, Below), depending on the sign of x.
// NaN maps to a float64 NaN.
func (x *Decimal) Float64() (float64, Accuracy) {
	if debugDecimal {
		x.validate()
	}

	switch x.form {
	case finite:
		// 0 < |x| < +Inf

		const (
			fbits = 64                //        float size
			mbits = 52                //        mantissa size (excluding implicit msb)
			ebits = fbits - mbits - 1 //    11  exponent size
			bias  = 1<<(ebits-1) - 1  //  1023  exponent bias
			emin  = 1 - bias          // -1022  smallest unbiased exponent (normal)
			emax  = bias              //  1023  largest unbiased exponent (normal)
		)

		// Decimal mantissa m is 0.5 <= m < 1.0; compute exponent e for float64 mantissa.
		e := int64(x.exp) - 1 // exponent for normal mantissa m with 1.0 <= m < 2.0

		// Compute precision p for float64 mantissa.
		// If the exponent is too small, we have a denormal number before
		// rounding and fewer than p mantissa bits of precision available
		// (the exponent remains fixed but the mantissa gets shifted right).
		p := int64(mbits + 1) // precision of normal float
		if e < emin {
			// recompute precision
			p = mbits + 1 - emin + e
			// If p == 0, the mantissa of x is shifted so much to the right
			// that its msb falls immediately to the right of the float64
			// mantissa space. In other words, if the smallest denormal is
			// considered "1.0", for p == 0, the mantissa value m is >= 0.5.
			// If m > 0.5, it is rounded up to 1.0; i.e., the smallest denormal.
			// If m == 0.5, it is rounded down to even, i.e., 0.0.
			// If p < 0, the mantissa value m is <= "0.25" which is never rounded up.
			if p < 0 /* m <= 0.25 */ || p == 0 && x.mant.sticky(uint(len(x.mant))*_W-1) == 0 /* m == 0.5 */ {
				// underflow to ±0
				if x.neg {
					var z float64
					return -z, Above
				}
				return 0.0, Below
			}
			// otherwise, round up
			// We handle p == 0 explicitly because it's easy and because
			// round doesn't support rounding to 0 bits of precision.
			if p == 0 {
				if x.neg {
					return -math.SmallestNonzeroFloat64, Below
				}
				return math.SmallestNonzeroFloat64, Above
			}
		}
		// p > 0

		// round
		r := newDecimal(uint32(p)).set(x)
		e = int64(r.exp) - 1

		// Rounding may have caused r to overflow to ±Inf
		// (rounding never causes underflows to 0).
		// If the exponent is too large, also overflow to ±Inf.
		if r.form == inf || e > emax {
			// overflow
			if x.neg {
				return math.Inf(-1), Below
			}
			return math.Inf(+1), Above
		}
		// e <= emax

		// Determine sign, biased exponent, and mantissa.
		var sign, bexp, mant uint64
		if x.neg {
			sign = 1 << (fbits - 1)
		}

		// Rounding may have caused a denormal number to
		// become normal. Check again.
		if e < emin {
			// denormal number: recompute precision
			// Since rounding may have at best increased precision
			// and we have eliminated p <= 0 early, we know p > 0.
			// bexp == 0 for denormals
			p = mbits + 1 - emin + e
			mant = msb64(r.mant) >> uint(fbits-p)
		} else {
			// normal number: emin <= e <= emax
			bexp = uint64(e+bias) << mbits
			mant = msb64(r.mant) >> ebits & (1<<mbits - 1) // cut off msb (implicit 1 bit)
		}

		return math.Float64frombits(sign | bexp | mant), r.acc

	case zero:
		if x.neg {
			var z float64
			return -z, Exact
		}
		return 0.0, Exact

	case inf:
		if x.neg {
			return math.Inf(-1), Exact
		}
		return math.Inf(+1), Exact
	}

	return math.NaN(), Exact
}
