package macro

import (
	"fmt"
	"strconv"
)

// Format renders one argument value.
type Format func(v any) (string, error)

// Text renders strings (mnemonics) verbatim and anything else with %v.
func Text(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprint(v), nil
}

// Decimal renders an integer in base 10.
func Decimal(v any) (string, error) {
	n, err := toInt64(v)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n, 10), nil
}

// Hex renders an integer as 0x followed by at least digits hex digits.
// uint32 values are register patterns and print as-is. Signed values are
// printed with a leading minus ("-0x20") so that the assembler sees the
// same number the model used.
func Hex(digits int) Format {
	return func(v any) (string, error) {
		if u, ok := v.(uint32); ok {
			return fmt.Sprintf("0x%0*x", digits, u), nil
		}
		n, err := toInt64(v)
		if err != nil {
			return "", err
		}
		if n < 0 {
			return fmt.Sprintf("-0x%0*x", digits, uint64(-n)), nil
		}
		return fmt.Sprintf("0x%0*x", digits, n), nil
	}
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	}
	return 0, fmt.Errorf("%T is not an integer", v)
}
