package math

import (
	"math/bits"

	"github.com/ignisf/bigdecimal"
)

// guardBits is the number of extra bits carried by multi-step computations
// before the final rounding.
const guardBits = 32

// pow returns x**n computed with prec bits. The caller is responsible for
// allocating guard bits and rounding the result.
func pow(x *bigdecimal.Decimal, n uint64, prec uint) *bigdecimal.Decimal {
	y := bigdecimal.FromUint64Prec(1, prec)
	if n == 0 {
		return y
	}
	z := x.WithPrec(prec)
	for n > 1 {
		if n%2 != 0 {
			y = bigdecimal.MulPrec(y, z, prec)
		}
		z = bigdecimal.MulPrec(z, z, prec)
		if z.IsInf() || z.IsZero() {
			// the remaining factors cannot change the outcome; y carries the sign
			return bigdecimal.MulPrec(y, z, prec)
		}
		n /= 2
	}
	return bigdecimal.MulPrec(z, y, prec)
}

// Pow returns x**n rounded to the precision of x. The power is computed by
// repeated squaring with guard bits and rounded once; the result may be off
// by one ulp in rare cases. x**0 is 1 for any non-NaN x and NaN**n is NaN.
func Pow(x *bigdecimal.Decimal, n uint64) *bigdecimal.Decimal {
	prec := x.Prec()
	if x.IsNaN() {
		return x.WithPrec(prec)
	}
	wp := prec + uint(2*bits.Len64(n)) + guardBits
	return pow(x, n, wp).WithPrec(prec)
}

// Abs returns |x|.
//
// This function is a proxy for x.Abs().
func Abs(x *bigdecimal.Decimal) *bigdecimal.Decimal {
	return x.Abs()
}

// Min returns the smaller of x and y. If either is NaN, the result is NaN.
// Min(+0, -0) is -0. The result is one of the operands, not a copy.
func Min(x, y *bigdecimal.Decimal) *bigdecimal.Decimal {
	switch {
	case x.IsNaN():
		return x
	case y.IsNaN():
		return y
	case x.Equal(y):
		if y.Signbit() {
			return y
		}
		return x
	case y.Less(x):
		return y
	}
	return x
}

// Max returns the larger of x and y. If either is NaN, the result is NaN.
// Max(+0, -0) is +0. The result is one of the operands, not a copy.
func Max(x, y *bigdecimal.Decimal) *bigdecimal.Decimal {
	switch {
	case x.IsNaN():
		return x
	case y.IsNaN():
		return y
	case x.Equal(y):
		if x.Signbit() {
			return y
		}
		return x
	case x.Less(y):
		return y
	}
	return x
}

func maxPrec(xs []*bigdecimal.Decimal) uint {
	var prec uint
	for _, x := range xs {
		if p := x.Prec(); p > prec {
			prec = p
		}
	}
	return prec
}

// Sum returns the sum of xs rounded to the largest precision among them.
// Partial sums carry guard bits so that the result is rounded once in most
// cases. The sum of no values is +0 at DefaultPrec.
func Sum(xs ...*bigdecimal.Decimal) *bigdecimal.Decimal {
	if len(xs) == 0 {
		return bigdecimal.Zero()
	}
	prec := maxPrec(xs)
	wp := prec + uint(bits.Len(uint(len(xs)))) + guardBits
	z := xs[0].WithPrec(wp)
	for _, x := range xs[1:] {
		z = bigdecimal.AddPrec(z, x, wp)
	}
	return z.WithPrec(prec)
}

// Product returns the product of xs rounded to the largest precision among
// them, computed like Sum. The product of no values is 1 at DefaultPrec.
func Product(xs ...*bigdecimal.Decimal) *bigdecimal.Decimal {
	if len(xs) == 0 {
		return bigdecimal.One()
	}
	prec := maxPrec(xs)
	wp := prec + uint(bits.Len(uint(len(xs)))) + guardBits
	z := xs[0].WithPrec(wp)
	for _, x := range xs[1:] {
		z = bigdecimal.MulPrec(z, x, wp)
	}
	return z.WithPrec(prec)
}
