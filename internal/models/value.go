// Package models defines the data types shared by the acquisition, charting
// and export layers.
package models

import (
	"encoding/json"
	"math"
)

// Value is the resolved reading for one entity/indicator pair. A Value is
// either a finite number or explicitly missing.
type Value struct {
	Number float64
	Valid  bool
}

// Of wraps a number. NaN and infinities are stored as missing.
func Of(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}

	return Value{Number: v, Valid: true}
}

// Missing returns an absent value.
func Missing() Value {
	return Value{}
}

// Float returns the number and whether it is present.
func (v Value) Float() (float64, bool) {
	return v.Number, v.Valid
}

// MarshalJSON encodes missing values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(v.Number)
}

// UnmarshalJSON accepts a number or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	var f *float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	if f == nil {
		*v = Missing()

		return nil
	}

	*v = Of(*f)

	return nil
}
