package fieldschema

import (
	"fmt"
	"strconv"

	"github.com/spf13/cast"
)

// DataType is the closed set of value types a dynamic product field can hold.
type DataType int

const (
	Text DataType = iota
	Integer
	Decimal
)

// Wire vocabulary used by the backend for field datatypes.
const (
	wireText    = "string"
	wireInteger = "integer"
	wireDecimal = "double"
)

// ParseDataType maps a wire datatype to a DataType. Unrecognized values
// degrade to Text so that malformed legacy data never breaks a form.
func ParseDataType(s string) DataType {
	switch s {
	case wireInteger:
		return Integer
	case wireDecimal:
		return Decimal
	default:
		return Text
	}
}

// Wire returns the backend vocabulary name for the datatype.
func (d DataType) Wire() string {
	switch d {
	case Integer:
		return wireInteger
	case Decimal:
		return wireDecimal
	default:
		return wireText
	}
}

func (d DataType) String() string {
	switch d {
	case Integer:
		return "integer"
	case Decimal:
		return "decimal"
	default:
		return "text"
	}
}

func (d DataType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Wire())), nil
}

func (d *DataType) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("datatype: %w", err)
	}
	*d = ParseDataType(s)
	return nil
}

// InputKind describes the widget an input form should render for a datatype.
type InputKind struct {
	Numeric bool
	Step    string
}

// InputKind returns the form input hints: integers step by 1, decimals by
// 0.01, text fields carry no step.
func (d DataType) InputKind() InputKind {
	switch d {
	case Integer:
		return InputKind{Numeric: true, Step: "1"}
	case Decimal:
		return InputKind{Numeric: true, Step: "0.01"}
	default:
		return InputKind{}
	}
}

// FormatValue renders a field value for display: integers without decimals,
// decimals with exactly two, text verbatim. Values that cannot be coerced
// fall back to their plain string form.
func FormatValue(d DataType, v interface{}) string {
	switch d {
	case Integer:
		i, err := cast.ToInt64E(v)
		if err != nil {
			return cast.ToString(v)
		}
		return strconv.FormatInt(i, 10)
	case Decimal:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return cast.ToString(v)
		}
		return strconv.FormatFloat(f, 'f', 2, 64)
	default:
		return cast.ToString(v)
	}
}

// ParseValue coerces a raw input string into the native value for the
// datatype.
func ParseValue(d DataType, s string) (interface{}, error) {
	switch d {
	case Integer:
		i, err := cast.ToInt64E(s)
		if err != nil {
			return nil, fmt.Errorf("value %q is not an integer", s)
		}
		return i, nil
	case Decimal:
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return nil, fmt.Errorf("value %q is not a decimal", s)
		}
		return f, nil
	default:
		return s, nil
	}
}
