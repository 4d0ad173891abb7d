// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Decimals.

package bigdecimal

import (
	"encoding/binary"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const decimalGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
// The Decimal value and all its attributes (precision, accuracy) are
// marshaled. The mantissa is written as a big-endian binary fraction, so
// the encoding does not depend on the Word size.
func (x *Decimal) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}

	// determine max. space (bytes) required for encoding
	sz := 1 + 1 + 4 // version + acc|form|neg (2+2+1bit) + prec
	var mb []byte
	if x.form == finite {
		mb = make([]byte, len(x.mant)*_S)
		x.mant.bytes(mb)
		// trailing zero bytes of the fraction carry no value
		n := len(mb)
		for n > 0 && mb[n-1] == 0 {
			n--
		}
		mb = mb[:n]
		sz += 4 + len(mb) // exp + mant
	}
	buf := make([]byte, sz)

	buf[0] = decimalGobVersion
	b := byte((x.acc+1)&3)<<3 | byte(x.form&3)<<1
	if x.neg {
		b |= 1
	}
	buf[1] = b
	binary.BigEndian.PutUint32(buf[2:], x.precision())

	if x.form == finite {
		binary.BigEndian.PutUint32(buf[6:], uint32(x.exp))
		copy(buf[10:], mb)
	}

	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
// z is set exactly to the decoded value with the encoded precision.
// GobDecode is intended for freshly declared values only; a Decimal shared
// with other code must not be decoded into.
func (z *Decimal) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Decimal{}
		return nil
	}

	if buf[0] != decimalGobVersion {
		return Error.New("GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 6 {
		return Error.New("GobDecode: buffer too short")
	}

	var t Decimal
	b := buf[1]
	t.acc = Accuracy((b>>3)&3) - 1
	t.form = form((b >> 1) & 3)
	t.neg = b&1 != 0
	t.prec = binary.BigEndian.Uint32(buf[2:])
	if t.prec == 0 || t.prec > MaxPrec {
		return Error.New("GobDecode: invalid precision %d", t.prec)
	}
	if t.form == nan {
		t.neg = false
	}

	if t.form == finite {
		if len(buf) < 11 || buf[10]&0x80 == 0 {
			return Error.New("GobDecode: invalid mantissa")
		}
		t.exp = int32(binary.BigEndian.Uint32(buf[6:]))
		// left-align the fraction in whole words
		mb := make([]byte, (len(buf)-10+_S-1)/_S*_S)
		copy(mb, buf[10:])
		t.mant = nat(nil).setBytes(mb)
		acc := t.acc
		t.round(0)
		if t.acc == Exact {
			t.acc = acc
		}
	}

	*z = t
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
// Only the Decimal value is marshaled (as the shortest text that reads
// back to the same value), other attributes such as precision or
// accuracy are ignored. Unlike String, a negative zero keeps its sign.
func (x *Decimal) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	if x.form == zero && x.neg {
		return []byte("-0"), nil
	}
	return x.appendString(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The result is rounded to the precision of z, or DefaultPrec if z is the
// zero value. UnmarshalText is intended for freshly declared values only.
func (z *Decimal) UnmarshalText(text []byte) error {
	f, _, err := ParseDecimal(string(text), 0, uint(z.precision()))
	if err != nil {
		return Error.New("cannot unmarshal %q into a *bigdecimal.Decimal (%v)", text, err)
	}
	*z = *f
	return nil
}
