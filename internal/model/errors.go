package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/ironsheep/colorpad-mcp/internal/numeric"
)

var (
	// ErrRange matches every *RangeError via errors.Is.
	ErrRange = errors.New("color value out of range")

	// ErrFormat matches every *FormatError via errors.Is.
	ErrFormat = errors.New("malformed color text")
)

// RangeError reports a field whose value lies outside its closed range.
type RangeError struct {
	Kind  Kind
	Field string
	Value float64
	Min   float64
	Max   float64
}

// Error names the model, the field and the allowed range.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s=%s outside [%s, %s]", e.Kind, e.Field,
		numeric.FormatFloat(e.Value, 6), numeric.FormatFloat(e.Min, 6), numeric.FormatFloat(e.Max, 6))
}

// Is makes errors.Is(err, ErrRange) true.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// FormatError reports text that could not be tokenized into the model's fields.
type FormatError struct {
	Kind   Kind
	Input  string
	Reason string
}

// Error quotes the rejected input.
func (e *FormatError) Error() string {
	if e.Kind == 0 {
		return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("%s: cannot parse %q: %s", e.Kind, e.Input, e.Reason)
}

// Is makes errors.Is(err, ErrFormat) true.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func checkInt(kind Kind, field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return &RangeError{Kind: kind, Field: field, Value: float64(v), Min: float64(lo), Max: float64(hi)}
	}
	return nil
}

func checkFloat(kind Kind, field string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return &RangeError{Kind: kind, Field: field, Value: v, Min: lo, Max: hi}
	}
	return nil
}

func arityError(kind Kind, input string, want int) error {
	return &FormatError{
		Kind:   kind,
		Input:  input,
		Reason: fmt.Sprintf("want %d comma-separated numbers", want),
	}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
