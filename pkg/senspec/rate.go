package senspec

import (
	"encoding/json"
	"strconv"
)

// undefinedText is how an undefined rate is printed.
const undefinedText = "undefined"

// Rate is a ratio that may be undefined because its denominator is zero.
// The zero value is undefined.
type Rate struct {
	Value   float64
	Defined bool
}

// Ratio returns num/den, or an undefined Rate when den is zero.
func Ratio(num, den float64) Rate {
	if den == 0 {
		return Rate{}
	}

	return Rate{Value: num / den, Defined: true}
}

// Complement returns 1 - r, preserving undefinedness.
func (r Rate) Complement() Rate {
	if !r.Defined {
		return Rate{}
	}

	return Rate{Value: 1 - r.Value, Defined: true}
}

// Format renders r with prec decimal places, or "undefined".
func (r Rate) Format(prec int) string {
	if !r.Defined {
		return undefinedText
	}

	return strconv.FormatFloat(r.Value, 'f', prec, 64)
}

// String renders r with six decimal places.
func (r Rate) String() string {
	return r.Format(DefaultPrecision)
}

// MarshalJSON encodes an undefined rate as null.
func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return []byte("null"), nil
	}

	return json.Marshal(r.Value)
}

// MarshalYAML encodes an undefined rate as null.
func (r Rate) MarshalYAML() (any, error) {
	if !r.Defined {
		return nil, nil //nolint:nilnil // yaml null.
	}

	return r.Value, nil
}
