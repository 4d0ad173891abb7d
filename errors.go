// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

var (
	// Error is the class of all errors returned by this package that are
	// neither construction nor parse errors.
	Error = errs.Class("bigdecimal")

	// ConstructionError is the class of errors reporting a precision or
	// base outside the supported range.
	ConstructionError = errs.Class("bigdecimal construction")

	// ParseError is the class of errors reporting malformed number text.
	// The wrapped error is a *SyntaxError.
	ParseError = errs.Class("bigdecimal parse")
)

// scan errors
var (
	errNoDigits     = errors.New("number has no digits")
	errExponent     = errors.New("exponent has no digits")
	errTrailing     = errors.New("unexpected character")
	errInvalidRadix = errors.New("invalid radix")
	errPrecision    = errors.New("invalid precision")
)

// A SyntaxError records where and why parsing number text failed.
type SyntaxError struct {
	Text   string // the input
	Offset int    // byte offset of the error in Text
	Err    error  // reason
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parsing %q at offset %d: %v", e.Text, e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func checkPrec(prec uint) error {
	if prec == 0 || prec > MaxPrec {
		return ConstructionError.Wrap(fmt.Errorf("%w %d: must be in [1, %d]", errPrecision, prec, MaxPrec))
	}
	return nil
}

func checkBase(base int) error {
	if base != 0 && (base < 2 || base > MaxBase) {
		return ConstructionError.Wrap(fmt.Errorf("%w %d: must be 0 or in [2, %d]", errInvalidRadix, base, MaxBase))
	}
	return nil
}
