// Package math provides functions derived from the basic arithmetic of
// bigdecimal.Decimal values.
package math

import "github.com/ignisf/bigdecimal"

// FMA returns x * y + u, computed with only one rounding. (That is, FMA
// performs the fused multiply-add of x, y, and u.) The result has the largest
// precision of x, y and u. The product is exact as long as the sum of the
// precisions of x and y does not exceed MaxPrec. The result is NaN when
// multiplying zero with an infinity, or when adding two infinities with
// opposite signs.
func FMA(x, y, u *bigdecimal.Decimal) *bigdecimal.Decimal {
	prec := maxPrec([]*bigdecimal.Decimal{x, y, u})
	p := bigdecimal.MulPrec(x, y, x.Prec()+y.Prec())
	return bigdecimal.AddPrec(p, u, prec)
}

// Sqrt returns the square root of x rounded to the precision of x. The
// result is NaN if x < 0.
//
// This function is a proxy for x.Sqrt()
func Sqrt(x *bigdecimal.Decimal) *bigdecimal.Decimal {
	return x.Sqrt()
}
