// Package rpn evaluates reverse polish notation expressions over Decimals.
//
// An expression is a whitespace separated list of numbers and operators.
// Numbers are pushed on a stack; operators pop their operands and push the
// result:
//
//	+ - * / %    binary: add, subtract, multiply, divide, remainder
//	neg abs sqrt unary: negate, absolute value, square root
//
// For instance "1 2 + 3 *" evaluates to 9.
package rpn

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/ignisf/bigdecimal"
	"github.com/ignisf/bigdecimal/context"
)

// Error is the class of evaluation errors.
var Error = errs.Class("rpn")

var (
	// ErrEmpty is returned for an expression without tokens.
	ErrEmpty = Error.New("empty expression")

	// ErrStackUnderflow is returned when an operator lacks operands.
	ErrStackUnderflow = Error.New("stack underflow")

	// ErrLeftover is returned when more than one value remains on the
	// stack at the end of the expression.
	ErrLeftover = Error.New("leftover operands")
)

type (
	unary  func(c *context.Context, x *bigdecimal.Decimal) *bigdecimal.Decimal
	binary func(c *context.Context, x, y *bigdecimal.Decimal) *bigdecimal.Decimal
)

var unaryOps = map[string]unary{
	"neg":  (*context.Context).Neg,
	"abs":  (*context.Context).Abs,
	"sqrt": (*context.Context).Sqrt,
}

var binaryOps = map[string]binary{
	"+": (*context.Context).Add,
	"-": (*context.Context).Sub,
	"*": (*context.Context).Mul,
	"/": (*context.Context).Quo,
	"%": (*context.Context).Rem,
}

// An Evaluator evaluates expressions at a fixed precision.
type Evaluator struct {
	Prec uint // working precision in bits; 0 means bigdecimal.DefaultPrec
	Base int  // base of number tokens, as for bigdecimal.ParseDecimal

	// Log receives a debug record per evaluation step. May be nil.
	Log *slog.Logger
}

// Eval evaluates expr. All numbers and intermediate results are rounded to
// e.Prec.
//
// If an operation produced a NaN from non-NaN operands, for example a
// division by zero, Eval returns the result together with an error describing
// the first such operation.
func (e *Evaluator) Eval(expr string) (*bigdecimal.Decimal, error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return nil, oops.Trace(ErrEmpty)
	}

	ctx := context.New(e.Prec)
	stack := make([]*bigdecimal.Decimal, 0, len(tokens))
	for i, tok := range tokens {
		if op, ok := binaryOps[tok]; ok {
			if len(stack) < 2 {
				return nil, oops.Trace(&TokenError{Index: i, Token: tok, Err: ErrStackUnderflow})
			}
			x, y := stack[len(stack)-2], stack[len(stack)-1]
			z := op(ctx, x, y)
			e.debug("apply", "op", tok, "x", x, "y", y, "z", z)
			stack = append(stack[:len(stack)-2], z)
			continue
		}
		if op, ok := unaryOps[tok]; ok {
			if len(stack) < 1 {
				return nil, oops.Trace(&TokenError{Index: i, Token: tok, Err: ErrStackUnderflow})
			}
			x := stack[len(stack)-1]
			z := op(ctx, x)
			e.debug("apply", "op", tok, "x", x, "z", z)
			stack[len(stack)-1] = z
			continue
		}
		d, err := ctx.Parse(tok, e.Base)
		if err != nil {
			return nil, oops.Trace(&TokenError{Index: i, Token: tok, Err: err})
		}
		e.debug("push", "value", d)
		stack = append(stack, d)
	}

	if len(stack) > 1 {
		return nil, oops.Trace(fmt.Errorf("%w: %d values on the stack", ErrLeftover, len(stack)))
	}
	z := stack[0]
	if err := ctx.Err(); err != nil {
		return z, oops.Trace(Error.Wrap(err))
	}
	return z, nil
}

// A TokenError reports the token an evaluation failed at.
type TokenError struct {
	Index int    // token index, starting at 0
	Token string // offending token
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *TokenError) Unwrap() error { return e.Err }

func (e *Evaluator) debug(msg string, args ...any) {
	if e.Log != nil {
		e.Log.Debug(msg, args...)
	}
}
