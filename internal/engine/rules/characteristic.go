// Package rules derives secondary attributes from an investigator's characteristics.
// Every function is pure; nothing here reads global state.
package rules

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/coc-api/internal/entities/coc"
)

const (
	// MinCharacteristic and MaxCharacteristic bound values accepted at the API boundary
	MinCharacteristic = 1
	MaxCharacteristic = 99
)

// SetCharacteristic builds a characteristic value with its half and fifth.
// The value is not validated; callers clamp at the boundary.
func SetCharacteristic(value int) coc.CharacteristicValue {
	return coc.CharacteristicValue{
		Value: value,
		Half:  floorDiv(value, 2),
		Fifth: floorDiv(value, 5),
	}
}

// ClampCharacteristic pins a value into the playable range
func ClampCharacteristic(value int) int {
	if value < MinCharacteristic {
		return MinCharacteristic
	}
	if value > MaxCharacteristic {
		return MaxCharacteristic
	}
	return value
}

// ParseCharacteristic reads a user-typed value, returning fallback for anything non-numeric
func ParseCharacteristic(raw string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return v
}

// DefaultCharacteristics returns every characteristic at the mid-range default
func DefaultCharacteristics() coc.Characteristics {
	var c coc.Characteristics
	for _, name := range coc.AllCharacteristics {
		c.Set(name, SetCharacteristic(coc.DefaultCharacteristicValue))
	}
	return c
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
