// This file mirrors types and constants from math/big.

package bigdecimal

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// digit alphabet for bases up to MaxBase: 0-9, A-Z, a-z.
const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// MaxBase is the largest number base accepted for string conversions.
const MaxBase = 10 + ('Z' - 'A' + 1) + ('z' - 'a' + 1)

// Up to this base, letters are case-insensitive digits.
const maxBaseSmall = 10 + ('z' - 'a' + 1)

// Exponent and precision limits.
const (
	MaxExp  = math.MaxInt32 // largest supported exponent
	MinExp  = math.MinInt32 // smallest supported exponent
	MaxPrec = 1 << 30       // largest supported precision; likely memory-limited
)

// DefaultPrec is the precision in bits of values built by the constructors
// that do not take an explicit precision. It matches the precision of a
// float64.
const DefaultPrec = 53

// Internal representation: The mantissa bits x.mant of a nonzero finite
// Decimal x are stored in a nat slice long enough to hold up to x.prec bits;
// the slice may (but doesn't have to) be shorter if the mantissa contains
// trailing 0 bits. x.mant is normalized if the msb of x.mant == 1 (i.e.,
// the msb is shifted all the way "to the left"). Thus, if the mantissa has
// trailing 0 bits or x.prec is not a multiple of the Word size _W,
// x.mant[0] has trailing zero bits. The msb of the mantissa corresponds
// to the value 0.5; the exponent x.exp shifts the binary point as needed.
//
// A zero, non-finite or NaN Decimal x ignores x.mant and x.exp.
//
// x                 form      neg      mant         exp
// ----------------------------------------------------------
// ±0                zero      sign     -            -
// 0 < |x| < +Inf    finite    sign     mantissa     exponent
// ±Inf              inf       sign     -            -
// NaN               nan       -        -            -

// A form value describes the internal representation.
type form byte

// The form value order is relevant - do not change!
const (
	zero form = iota
	finite
	inf
	nan
)

// Accuracy describes the rounding error produced by the operation that
// generated a Decimal value, relative to the exact value.
type Accuracy int8

// Constants describing the Accuracy of a Decimal.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

//go:generate stringer -type=Accuracy

func makeAcc(above bool) Accuracy {
	if above {
		return Above
	}
	return Below
}

// byteReader is a local wrapper around fmt.ScanState;
// it implements the ByteReader interface.
type byteReader struct {
	fmt.ScanState
}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		err = fmt.Errorf("invalid rune %#U", ch)
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}

func umax32(x, y uint32) uint32 {
	if x > y {
		return x
	}
	return y
}

func same(x, y []Word) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}

func alias(x, y []Word) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		_ = r.UnreadByte()
	}
	return
}

// Exponents beyond this magnitude over- or underflow for every mantissa.
const maxScanExp = 1 << 50

// scanExponent scans an optional exponent for a mantissa in the given base.
// The exponent value is always written in decimal. It returns the exponent
// and the base it applies to: 'e' and 'E' (base <= 10) and '@' scale by
// powers of base, 'p' and 'P' (base 2 and 16 only) by powers of 2.
func scanExponent(r io.ByteScanner, base int) (exp int64, ebase int, err error) {
	ebase = base

	// one char look-ahead
	ch, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = nil
		}
		return 0, ebase, err
	}

	// exponent char
	switch {
	case (ch == 'e' || ch == 'E') && base <= 10, ch == '@':
		// power of base
	case (ch == 'p' || ch == 'P') && (base == 2 || base == 16):
		ebase = 2
	default:
		_ = r.UnreadByte() // ch does not belong to exponent anymore
		return 0, ebase, nil
	}

	// sign
	var digits []byte
	ch, err = r.ReadByte()
	if err == nil && (ch == '+' || ch == '-') {
		if ch == '-' {
			digits = append(digits, '-')
		}
		ch, err = r.ReadByte()
	}

	// exponent value
	hasDigits := false
	for err == nil {
		if '0' <= ch && ch <= '9' {
			digits = append(digits, ch)
			hasDigits = true
		} else {
			_ = r.UnreadByte() // ch does not belong to number anymore
			break
		}
		ch, err = r.ReadByte()
	}

	if err == io.EOF {
		err = nil
	}
	if err == nil && !hasDigits {
		err = errExponent
	}
	if err == nil {
		exp, err = strconv.ParseInt(string(digits), 10, 64)
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			// saturate; the value over- or underflows anyway
			err = nil
		}
	}
	switch {
	case exp > maxScanExp:
		exp = maxScanExp
	case exp < -maxScanExp:
		exp = -maxScanExp
	}
	return
}

// digitVal returns the value of the digit ch in the given base, or
// MaxBase+1 if ch is not a digit.
func digitVal(ch byte, base int) Word {
	switch {
	case '0' <= ch && ch <= '9':
		return Word(ch - '0')
	case 'A' <= ch && ch <= 'Z':
		return Word(ch - 'A' + 10)
	case 'a' <= ch && ch <= 'z':
		if base <= maxBaseSmall {
			return Word(ch - 'a' + 10)
		}
		return Word(ch - 'a' + 10 + 'Z' - 'A' + 1)
	}
	return MaxBase + 1
}

// pow returns x**n for n > 0, and 1 otherwise.
func pow(x Word, n int) (p Word) {
	// n == sum of bi * 2**i, for 0 <= i < imax, and bi is 0 or 1
	// thus x**n == product of x**(2**i) for all i where bi == 1
	// (Russian Peasant Method for exponentiation)
	p = 1
	for n > 0 {
		if n&1 != 0 {
			p *= x
		}
		x *= x
		n >>= 1
	}
	return
}

// maxPow returns (b**n, n) such that b**n is the largest power b**n <= _M.
// For instance maxPow(10) == (1e19, 19) for 19 decimal digits in a 64bit Word.
func maxPow(b Word) (p Word, n int) {
	p, n = b, 1 // assuming b <= _M
	for max := _M / b; p <= max; {
		// p == b**n && p <= max
		p *= b
		n++
	}
	// p == b**n && p <= _M
	return
}

// greaterThan reports whether (x1<<_W + x2) > (y1<<_W + y2)
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}
