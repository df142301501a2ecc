// Package calc implements the arithmetic request server: every request
// line "op a b" is answered with "0 <result>" or "1 <error message>".
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrOperandsNotEnough - request has less than two operands.
	ErrOperandsNotEnough = errors.New("Operands not enough (need two operands)")

	// ErrDivisionByZero - the divisor is zero.
	ErrDivisionByZero = errors.New("Division by zero")
)

// OperandError - operand is not an unsigned decimal number.
type OperandError struct {
	// Position - 1 for the first operand, 2 for the second one
	Position int
	Operand  string
}

func (e *OperandError) Error() string {
	ordinal := "First"
	if e.Position == 2 {
		ordinal = "Second"
	}
	return fmt.Sprintf("%s operand '%s' is not a float number.", ordinal, e.Operand)
}

// CommandError - unsupported operation.
type CommandError struct {
	Command string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("Command '%s' not exists", e.Command)
}

// Evaluate - evaluates request "op a b", where op is one of add, sub, mul, div.
// Tokens are separated by spaces, tokens after the second operand are ignored.
func Evaluate(line string) (float64, error) {
	fields := strings.FieldsFunc(strings.TrimRight(line, "\r\n"), func(r rune) bool { return r == ' ' })
	if len(fields) < 3 {
		return 0, ErrOperandsNotEnough
	}
	op := fields[0]
	a, ok := operand(fields[1])
	if !ok {
		return 0, &OperandError{1, fields[1]}
	}
	b, ok := operand(fields[2])
	if !ok {
		return 0, &OperandError{2, fields[2]}
	}
	switch op {
	case "add":
		return a + b, nil
	case "sub":
		return a - b, nil
	case "mul":
		return a * b, nil
	case "div":
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, &CommandError{op}
	}
}

func operand(s string) (float64, bool) {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatResult - formats number with 6 significant digits.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Reply - evaluates request line and builds the response: "0 <result>" or "1 <error>".
func Reply(line string) string {
	v, err := Evaluate(line)
	if err != nil {
		return "1 " + err.Error()
	}
	return "0 " + FormatResult(v)
}
