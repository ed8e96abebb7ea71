package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidConsumption is shown inline next to the consumption field.
var ErrInvalidConsumption = errors.New("Monthly consumption must be greater than 0.")

// ValidateConsumption accepts any finite value >= 0.
func ValidateConsumption(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return ErrInvalidConsumption
	}
	return nil
}

// ParseConsumption parses a raw field value and validates it.
func ParseConsumption(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrInvalidConsumption
	}
	if err := ValidateConsumption(v); err != nil {
		return 0, err
	}
	return v, nil
}

// Input is the consumption field of one calculator session.
// Set is false until a value has been committed.
type Input struct {
	Consumption float64
	Set         bool
}

// SetConsumption commits raw if it is valid. On error the previously committed
// value is kept. A blank value clears the field.
func (in *Input) SetConsumption(raw string) error {
	if strings.TrimSpace(raw) == "" {
		in.Consumption = 0
		in.Set = false
		return nil
	}
	v, err := ParseConsumption(raw)
	if err != nil {
		return err
	}
	in.Consumption = v
	in.Set = true
	return nil
}

// Value is the committed consumption, or zero when unset.
func (in Input) Value() float64 {
	if !in.Set {
		return 0
	}
	return in.Consumption
}
