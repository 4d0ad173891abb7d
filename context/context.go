// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides precision contexts for Decimals.
//
// A Context carries a working precision that every value it constructs and
// every result it computes is rounded to, so that a whole computation can be
// configured in one place instead of a global setting. Results are rounded
// once, directly from the exact value, to the context precision. Sqrt is the
// exception: it rounds a result carrying extra guard bits and may be off by
// one ulp.
//
// A Context also tracks the first NaN produced from non-NaN operands. Unlike
// the operations of the bigdecimal package, which silently return NaN, a
// Context records an ErrNaN describing the invalid operation. Computations
// keep going after an error; the caller checks Err once at the end.
//
// A Context is not safe for concurrent use.
package context

import (
	"github.com/ignisf/bigdecimal"
)

// ErrNaN is recorded by a Context when an operation on non-NaN operands
// produces a NaN. It implements the error interface.
type ErrNaN struct {
	Op  string // operation name, e.g. "Quo"
	msg string
}

func (err ErrNaN) Error() string {
	return err.msg
}

// A Context holds the working precision for Decimal computations.
// The zero value is not usable, use New.
type Context struct {
	prec uint32
	err  error
}

// New creates a new context with the given precision. If prec is 0, it is
// set to bigdecimal.DefaultPrec; values larger than bigdecimal.MaxPrec are
// clamped.
func New(prec uint) *Context {
	c := new(Context)
	return c.SetPrec(prec)
}

// Prec returns the precision of c in bits.
func (c *Context) Prec() uint {
	return uint(c.prec)
}

// SetPrec sets the precision of c and returns c. prec is handled as in New.
func (c *Context) SetPrec(prec uint) *Context {
	switch {
	case prec == 0:
		prec = bigdecimal.DefaultPrec
	case prec > bigdecimal.MaxPrec:
		prec = bigdecimal.MaxPrec
	}
	c.prec = uint32(prec)
	return c
}

// Err returns the first error encountered since the last call to Err and
// clears the error state.
func (c *Context) Err() (err error) {
	err, c.err = c.err, nil
	return
}

// Zero returns +0 at the context precision.
func (c *Context) Zero() *bigdecimal.Decimal {
	z, _ := bigdecimal.NewPrec(c.Prec())
	return z
}

// One returns 1 at the context precision.
func (c *Context) One() *bigdecimal.Decimal {
	return bigdecimal.FromUint64Prec(1, c.Prec())
}

// NewInt64 returns x rounded to the context precision.
func (c *Context) NewInt64(x int64) *bigdecimal.Decimal {
	return bigdecimal.FromInt64Prec(x, c.Prec())
}

// NewUint64 returns x rounded to the context precision.
func (c *Context) NewUint64(x uint64) *bigdecimal.Decimal {
	return bigdecimal.FromUint64Prec(x, c.Prec())
}

// NewFloat64 returns x rounded to the context precision.
func (c *Context) NewFloat64(x float64) *bigdecimal.Decimal {
	return bigdecimal.FromFloat64(x).WithPrec(c.Prec())
}

// NewString returns the value of s, in base 0, rounded to the context
// precision. The returned bool indicates success; the parse error is not
// recorded in c.
func (c *Context) NewString(s string) (*bigdecimal.Decimal, bool) {
	d, _, err := bigdecimal.ParseDecimal(s, 0, c.Prec())
	if err != nil {
		return nil, false
	}
	return d, true
}

// Parse is like bigdecimal.ParseDecimal with the context precision.
func (c *Context) Parse(s string, base int) (*bigdecimal.Decimal, error) {
	d, _, err := bigdecimal.ParseDecimal(s, base, c.Prec())
	return d, err
}

// Round returns x rounded to the context precision.
func (c *Context) Round(x *bigdecimal.Decimal) *bigdecimal.Decimal {
	return x.WithPrec(c.Prec())
}

// Add returns x+y rounded to the context precision.
func (c *Context) Add(x, y *bigdecimal.Decimal) *bigdecimal.Decimal {
	z := bigdecimal.AddPrec(x, y, c.Prec())
	if c.invalid(z, x, y) {
		c.setErr("Add", "addition of infinities with opposite signs")
	}
	return z
}

// Sub returns x-y rounded to the context precision.
func (c *Context) Sub(x, y *bigdecimal.Decimal) *bigdecimal.Decimal {
	z := bigdecimal.SubPrec(x, y, c.Prec())
	if c.invalid(z, x, y) {
		c.setErr("Sub", "subtraction of infinities with equal signs")
	}
	return z
}

// Mul returns x*y rounded to the context precision.
func (c *Context) Mul(x, y *bigdecimal.Decimal) *bigdecimal.Decimal {
	z := bigdecimal.MulPrec(x, y, c.Prec())
	if c.invalid(z, x, y) {
		c.setErr("Mul", "multiplication of zero with infinity")
	}
	return z
}

// Quo returns x/y rounded to the context precision.
func (c *Context) Quo(x, y *bigdecimal.Decimal) *bigdecimal.Decimal {
	z := bigdecimal.QuoPrec(x, y, c.Prec())
	if c.invalid(z, x, y) {
		if y.IsZero() {
			c.setErr("Quo", "division by zero")
		} else {
			c.setErr("Quo", "division of infinity by infinity")
		}
	}
	return z
}

// Rem returns x - y*trunc(x/y) rounded to the context precision.
func (c *Context) Rem(x, y *bigdecimal.Decimal) *bigdecimal.Decimal {
	z := bigdecimal.RemPrec(x, y, c.Prec())
	if c.invalid(z, x, y) {
		if y.IsZero() {
			c.setErr("Rem", "remainder by zero")
		} else {
			c.setErr("Rem", "remainder of infinity")
		}
	}
	return z
}

// Neg returns -x rounded to the context precision.
func (c *Context) Neg(x *bigdecimal.Decimal) *bigdecimal.Decimal {
	return x.Neg().WithPrec(c.Prec())
}

// Abs returns |x| rounded to the context precision.
func (c *Context) Abs(x *bigdecimal.Decimal) *bigdecimal.Decimal {
	return x.Abs().WithPrec(c.Prec())
}

// sqrtGuard is the number of extra bits Sqrt computes with before rounding
// to the context precision.
const sqrtGuard = 32

// Sqrt returns the square root of x at the context precision.
// The result may be off by one ulp.
func (c *Context) Sqrt(x *bigdecimal.Decimal) *bigdecimal.Decimal {
	prec := c.Prec()
	// x is widened exactly; the square root is then rounded from
	// max(prec, x.Prec())+sqrtGuard bits.
	z := x.WithPrec(max(prec, x.Prec()) + sqrtGuard).Sqrt().WithPrec(prec)
	if c.invalid(z, x, x) {
		c.setErr("Sqrt", "square root of negative operand")
	}
	return z
}

// invalid reports whether z is a NaN that x and y did not propagate.
func (c *Context) invalid(z, x, y *bigdecimal.Decimal) bool {
	return z.IsNaN() && !x.IsNaN() && !y.IsNaN()
}

func (c *Context) setErr(op, msg string) {
	if c.err == nil {
		c.err = ErrNaN{Op: op, msg: msg}
	}
}
