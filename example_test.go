// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal_test

import (
	"fmt"

	"github.com/ignisf/bigdecimal"
)

func ExampleDecimal_Add() {
	x := bigdecimal.MustParse("0.1")
	y := bigdecimal.MustParse("0.2")
	fmt.Println(x.Add(y))
	// rounded once to 24 bits
	fmt.Println(bigdecimal.AddPrec(x, y, 24))
	// Output:
	// 0.30000000000000004
	// 0.3
}

func ExampleDecimal_Quo() {
	one := bigdecimal.One()
	three := bigdecimal.FromInt64(3)
	fmt.Println(one.Quo(three))
	fmt.Println(bigdecimal.QuoPrec(one, three, 8))
	fmt.Println(one.Quo(bigdecimal.Zero()))
	// Output:
	// 0.3333333333333333
	// 0.334
	// NaN
}

func ExampleDecimal_Rem() {
	x := bigdecimal.MustParse("-7.5")
	fmt.Println(x.Rem(bigdecimal.FromInt64(2)))
	fmt.Println(x.Rem(bigdecimal.FromInt64(-2)))
	// Output:
	// -1.5
	// -1.5
}

func ExampleDecimal_String() {
	for _, s := range []string{"1e20", "1e21", "0.000001", "1e-7", "-0", "-inf"} {
		fmt.Println(bigdecimal.MustParse(s))
	}
	fmt.Println(bigdecimal.MustParse("-0").Text('g', -1))
	// Output:
	// 100000000000000000000
	// 1e+21
	// 0.000001
	// 1e-07
	// 0
	// -Inf
	// -0
}

func ExampleDecimal_Text() {
	x := bigdecimal.MustParse("1234.5678")
	fmt.Println(x.Text('e', 3))
	fmt.Println(x.Text('f', 2))
	fmt.Println(x.Text('g', -1))
	fmt.Printf("%10.1f|%-10.1f|%+.3e\n", x, x, x)
	// Output:
	// 1.235e+03
	// 1234.57
	// 1234.5678
	//     1234.6|1234.6    |+1.235e+03
}

func ExampleParseDecimal() {
	x, b, err := bigdecimal.ParseDecimal("0x1.8p1", 0, 64)
	fmt.Println(x, b, err)
	x, b, err = bigdecimal.ParseDecimal("z.i", 36, 64)
	fmt.Println(x, b, err)
	_, _, err = bigdecimal.ParseDecimal("1.5x", 10, 64)
	fmt.Println(bigdecimal.ParseError.Has(err))
	_, _, err = bigdecimal.ParseDecimal("1.5", 10, 0)
	fmt.Println(bigdecimal.ConstructionError.Has(err))
	// Output:
	// 3 16 <nil>
	// 35.5 36 <nil>
	// true
	// true
}

func ExampleDecimal_WithPrec() {
	x := bigdecimal.MustParse("3.14159265358979323846")
	y := x.WithPrec(10)
	fmt.Println(y, y.Prec(), y.Acc())
	// Output:
	// 3.14 10 Below
}
