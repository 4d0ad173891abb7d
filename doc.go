// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigdecimal implements arbitrary-precision binary floating-point
arithmetic.

A Decimal is a sign, a normalized binary mantissa of prec bits and a binary
exponent:

	sign × 0.mantissa × 2**exponent  with 0.5 <= 0.mantissa < 1.0

plus the special values ±0, ±Inf and NaN. The mantissa is stored in a
little-endian slice of machine Words; prec may be anywhere in [1, MaxPrec] and
the exponent in [MinExp, MaxExp]. Despite the name, values are binary: a
decimal fraction such as 0.1 is rounded when parsed, exactly as it is for a
float64, just with as many bits as requested.

Values are immutable. Every operation returns a new *Decimal and never
modifies its operands, so values may be shared freely, including between
goroutines:

	x := bigdecimal.MustParse("0.1")
	y := x.Add(bigdecimal.FromInt64(2)) // x is still 0.1

Results are rounded to nearest, ties to even, which is the only rounding
mode. The result precision of a binary operation is the larger of its
operands' precisions. The AddPrec, SubPrec, MulPrec, QuoPrec and RemPrec
functions compute the same operations rounded once to an explicit precision.
The accuracy of the last rounding is reported by Acc.

Undefined operations such as 0/0, x/0, Inf-Inf, 0×Inf or Inf%y yield NaN;
none of them panic. NaN is unordered: Equal and Less report false if either
operand is NaN. +0 and -0 compare equal. Exponent overflow rounds to ±Inf and
underflow to ±0.

Text conversion handles any base from 2 to MaxBase (see ParseDecimal). String
prints the shortest decimal digits that read back to the same value at its
precision, and Text, Append and Format support the usual 'e', 'f' and 'g'
formats. Decimals implement fmt.Formatter, fmt.Scanner, encoding.TextMarshaler
and gob.GobEncoder together with their decoding counterparts.

Errors are only returned by constructors and parsers: a ConstructionError for
a precision or base out of range, a ParseError wrapping a *SyntaxError for
malformed text.

The context subpackage threads a working precision through a computation and
reports NaN producing operations; the math subpackage provides derived
functions such as Pow and FMA.
*/
package bigdecimal
