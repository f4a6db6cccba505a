// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mikecarlton/units"
)

// StackError is the class of errors from stack manipulation and arithmetic.
var StackError = errs.Class("stack")

// entry is a value on the stack. Pinned values were converted to a unit explicitly
// and print in that unit rather than the most suitable one.
type entry struct {
	quantity units.Quantity
	pinned   bool
}

type Stack struct {
	values []entry
}

func newStack() *Stack {
	return &Stack{values: []entry{}}
}

type Aliases map[string]string

var STACKALIAS = Aliases{
	"dup": "d",
	"pop": "p",
}

var STACKOP = map[string]func(*Stack) error{
	"x": func(s *Stack) error { return s.exchange() },
	"d": func(s *Stack) error { return s.dup() },
	"p": func(s *Stack) error {
		if _, err := s.pop(); err != nil {
			return StackError.New("stack is empty for '%s'", "pop")
		}
		return nil
	},
}

type binaryFunc func(left, right units.Quantity) (units.Quantity, error)

var binaryOps = map[string]binaryFunc{
	"+":   units.Quantity.Add,
	"-":   units.Quantity.Sub,
	"*":   multiply,
	".":   multiply,
	"•":   multiply,
	"/":   divide,
	"**":  power,
	"pow": power,
}

func multiply(left, right units.Quantity) (units.Quantity, error) {
	return left.Mul(right), nil
}

func divide(left, right units.Quantity) (units.Quantity, error) {
	if right.Value() == 0 {
		return units.Quantity{}, StackError.New("division by zero")
	}
	return left.Div(right), nil
}

// largest exponent magnitude accepted by power
const maxExponent = 64

func power(left, right units.Quantity) (units.Quantity, error) {
	n := right.Value()
	dim := right.Dimension()
	if (dim != nil && !dim.IsDimensionless()) || n != math.Trunc(n) || math.Abs(n) > maxExponent {
		return units.Quantity{}, StackError.New("exponent must be a dimensionless integer from -%d to %d, got %v", maxExponent, maxExponent, right)
	}
	return left.Pow(int(n)), nil
}

type unaryFunc func(units.Quantity) (units.Quantity, error)

var unaryOps = map[string]unaryFunc{
	"chs": func(q units.Quantity) (units.Quantity, error) { return q.Neg(), nil },
	"abs": func(q units.Quantity) (units.Quantity, error) { return q.Abs(), nil },
	"r": func(q units.Quantity) (units.Quantity, error) {
		if q.Value() == 0 {
			return units.Quantity{}, StackError.New("reciprocal of zero")
		}
		return q.Inv(), nil
	},
}

func (s *Stack) binaryOp(op string) error {
	right, _ := s.pop()
	left, err := s.pop()
	if err != nil {
		return StackError.New("not enough arguments for binary operation '%s'", op)
	}

	result, err := binaryOps[op](left.quantity, right.quantity)
	if err != nil {
		return err
	}
	s.push(entry{quantity: result})
	return nil
}

func (s *Stack) unaryOp(op string) error {
	value, err := s.pop()
	if err != nil {
		return StackError.New("not enough arguments for unary operation '%s'", op)
	}

	result, err := unaryOps[op](value.quantity)
	if err != nil {
		return err
	}
	s.push(entry{quantity: result, pinned: value.pinned && result.Unit() == value.quantity.Unit()})
	return nil
}

// apply gives a dimensionless top of stack the unit, or converts the top of stack to it.
func (s *Stack) apply(unit *units.Unit) error {
	value, err := s.pop()
	if err != nil {
		return StackError.New("not enough arguments for '%s'", unit)
	}

	q := value.quantity
	if q.Unit() == nil || q.Dimension().IsDimensionless() {
		n, err := q.ToNumber(unit.Dimension().Registry().One())
		if err != nil {
			return err
		}
		s.push(entry{quantity: unit.Of(n), pinned: true})
		return nil
	}

	converted, err := q.To(unit)
	if err != nil {
		return err
	}
	s.push(entry{quantity: converted, pinned: true})
	return nil
}

func (s *Stack) reduce(op string) error {
	if len(s.values) < 2 {
		return StackError.New("not enough arguments for reduction operation '@%s'", op)
	}

	// fold left to right from the bottom of the stack
	result := s.values[0].quantity
	for i := 1; i < len(s.values); i++ {
		var err error
		if result, err = binaryOps[op](result, s.values[i].quantity); err != nil {
			return err
		}
	}

	s.values = []entry{{quantity: result}}
	return nil
}

func (s *Stack) push(e entry) {
	s.values = append(s.values, e)
}

func (s *Stack) pop() (entry, error) {
	if len(s.values) == 0 {
		return entry{}, StackError.New("stack is empty")
	}
	e := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]

	return e, nil
}

func (s *Stack) peek() (entry, error) {
	if len(s.values) == 0 {
		return entry{}, StackError.New("stack is empty")
	}

	return s.values[len(s.values)-1], nil
}

func (s *Stack) dup() error {
	top, err := s.peek()
	if err != nil {
		return StackError.New("stack is empty for '%s'", "duplicate")
	}

	s.push(top)
	return nil
}

func (s *Stack) exchange() error {
	if len(s.values) < 2 {
		return StackError.New("not enough arguments for '%s'", "exchange")
	}

	s.values[len(s.values)-1], s.values[len(s.values)-2] = s.values[len(s.values)-2], s.values[len(s.values)-1]
	return nil
}

func (s *Stack) size() int {
	return len(s.values)
}

// display controls how stack values are rendered.
type display struct {
	group     bool
	debug     bool
	precision int
}

var groupPrinter = message.NewPrinter(language.English)

// render returns the number and unit symbol shown for e. The symbol is empty for
// dimensionless values.
func (d display) render(e entry) (string, string) {
	q := e.quantity
	symbol := ""
	if q.Unit() != nil && !q.Dimension().IsDimensionless() {
		symbol = q.Unit().Symbol()
	}

	var number string
	switch {
	case d.debug:
		number = strconv.FormatFloat(q.Value(), 'f', -1, 64)
	case e.pinned || symbol == "":
		number = d.fixed(q.Value())
	default:
		number, symbol, _ = strings.Cut(q.String(), " ")
	}

	if d.group {
		number = groupDigits(number)
	}
	return number, symbol
}

// fixed renders f with at most precision decimals, dropping trailing zeros.
func (d display) fixed(f float64) string {
	s := strconv.FormatFloat(f, 'f', d.precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// groupDigits puts ',' between thousands of the integer part of number.
func groupDigits(number string) string {
	integer, fraction := splitNumber(number)
	sign := ""
	if strings.HasPrefix(integer, "-") {
		sign, integer = "-", integer[1:]
	}

	n, err := strconv.ParseInt(integer, 10, 64)
	if err != nil {
		return number
	}
	return sign + groupPrinter.Sprintf("%d", n) + fraction
}

func (s *Stack) oneline(d display) string {
	var sb strings.Builder
	separator := ""
	for i, e := range s.values {
		number, symbol := d.render(e)
		sb.WriteString(separator)
		sb.WriteString(number)
		if symbol != "" {
			sb.WriteString(" " + symbol)
		}
		if i == 0 {
			separator = " "
		}
	}
	return sb.String()
}

// splitNumber splits a number string into integer and fractional parts, the fractional
// part including the decimal point.
func splitNumber(str string) (string, string) {
	if integer, fraction, ok := strings.Cut(str, "."); ok {
		return integer, "." + fraction
	}
	return str, ""
}

// print writes the stack top first, one value per line, with the units digits aligned.
func (s *Stack) print(w io.Writer, d display) {
	type row struct{ integer, fraction, symbol string }

	rows := make([]row, len(s.values))
	intWidth, fracWidth := 0, 0
	for i, e := range s.values {
		number, symbol := d.render(e)
		integer, fraction := splitNumber(number)
		rows[i] = row{integer, fraction, symbol}

		intWidth = max(intWidth, len([]rune(integer)))
		fracWidth = max(fracWidth, len(fraction))
	}

	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		// right-align the integer part by rune count, %*s pads by bytes
		fmt.Fprintf(w, "%s%s%s", strings.Repeat(" ", intWidth-len([]rune(r.integer))), r.integer, r.fraction)

		if r.symbol != "" {
			fmt.Fprintf(w, "%s %s", strings.Repeat(" ", fracWidth-len(r.fraction)), r.symbol)
		}
		fmt.Fprintln(w)
	}
}
