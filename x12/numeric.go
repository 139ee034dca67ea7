package x12

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dshills/gox12/internal/fixedpoint"
	"github.com/dshills/gox12/schema"
)

// NumericValue holds a fixed-precision implied-decimal element (the Nn
// data element types, e.g. N2): its wire form is a string of digits with an
// optional leading sign and an implied decimal point fixed by the
// element definition's Precision, e.g. "12345" at precision 2 means
// 123.45. Arithmetic is performed with github.com/shopspring/decimal so
// that implied-decimal values never lose precision to floating point.
type NumericValue struct {
	elemBase
	parsed decimal.Decimal
}

// NewNumericValue is the "value" constructor for KindNumeric wire input:
// blank is Empty. A string containing an explicit decimal point is
// parsed directly, overriding the implied precision. Otherwise the
// string is parsed as a signed integer and scaled by the element
// definition's implied precision (shift the decimal point left by
// Precision places). Anything that fails to parse as a signed integer,
// or that is non-numeric, is Invalid retaining the raw characters.
func NewNumericValue(input string, def *schema.ElementDef, usage schema.Usage, pos Position) *NumericValue {
	if input == "" {
		return &NumericValue{elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateEmpty}}
	}
	invalid := func() *NumericValue {
		return &NumericValue{elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateInvalid, raw: input}}
	}

	if strings.ContainsAny(input, ".") {
		d, err := decimal.NewFromString(input)
		if err != nil {
			return invalid()
		}
		return &NumericValue{
			elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateNonEmpty, raw: input},
			parsed:   d,
		}
	}

	if !isSignedDigitString(input) {
		return invalid()
	}
	d, err := decimal.NewFromString(input)
	if err != nil {
		return invalid()
	}
	precision := 0
	if def != nil {
		precision = def.Precision
	}
	d = d.Shift(int32(-precision))

	return &NumericValue{
		elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateNonEmpty, raw: input},
		parsed:   d,
	}
}

func isSignedDigitString(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NewNumericFromDecimal constructs a NonEmpty NumericValue directly from
// a decimal.Decimal, bypassing wire parsing. Used for values derived by
// arithmetic or constructed programmatically rather than parsed off the
// wire; Raw() is empty for such values.
func NewNumericFromDecimal(d decimal.Decimal, def *schema.ElementDef, usage schema.Usage, pos Position) *NumericValue {
	return &NumericValue{
		elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateNonEmpty},
		parsed:   d,
	}
}

// NewNumericFromInt is a convenience wrapper over NewNumericFromDecimal
// for whole-number construction.
func NewNumericFromInt(i int64, def *schema.ElementDef, usage schema.Usage, pos Position) *NumericValue {
	return NewNumericFromDecimal(decimal.NewFromInt(i), def, usage, pos)
}

// Decimal returns the parsed magnitude; decimal.Zero when not NonEmpty.
func (v *NumericValue) Decimal() decimal.Decimal { return v.parsed }

// ToWire renders the implied-decimal digit string: the magnitude shifted
// right by the element's precision (i.e. the integer that, divided by
// 10^precision, reproduces the value), with a leading "-" for negative
// values and no sign for non-negative ones (the sign does not count
// toward length). When truncate is true and the magnitude exceeds the
// element's MaxLength, at most MaxLength digits are kept from the left;
// when truncate is false the full magnitude is emitted regardless of
// MaxLength and the caller is expected to consult TooLong. Either way the
// digits are then left-padded with '0' to MinLength.
func (v *NumericValue) ToWire(truncate bool) string {
	if v.state != StateNonEmpty {
		return ""
	}
	precision := 0
	if v.def != nil {
		precision = v.def.Precision
	}
	scaled := v.parsed.Shift(int32(precision))
	s := scaled.StringFixed(0)

	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")

	if truncate && v.def != nil && v.def.MaxLength > 0 {
		digits = fixedpoint.Truncate(digits, v.def.MaxLength)
	}
	if v.def != nil {
		digits = fixedpoint.Pad(digits, v.def.MinLength)
	}

	if neg {
		return "-" + digits
	}
	return digits
}

// TooLong reports whether the untruncated magnitude's digit count
// exceeds the element's declared maximum length.
func (v *NumericValue) TooLong() bool {
	if v.state != StateNonEmpty {
		return false
	}
	s := strings.TrimPrefix(v.ToWire(false), "-")
	return v.def != nil && v.def.MaxLength > 0 && len(s) > v.def.MaxLength
}

// TooShort is always false for numeric values: padding can always
// satisfy the minimum length (spec.md §4.4).
func (v *NumericValue) TooShort() bool {
	return false
}

func (v *NumericValue) String() string { return v.ToWire(true) }

// Equal reports value equality after coercing other into a decimal.
// An Invalid or Empty operand is never equal to a NonEmpty one, even if
// their raw characters match: equality is defined over parsed
// magnitudes, not wire text.
func (v *NumericValue) Equal(other interface{}) bool {
	od, ok := coerceDecimal(other)
	if !ok || v.state != StateNonEmpty {
		return false
	}
	return v.parsed.Equal(od)
}

// Cmp compares v against other, returning -1, 0, or 1 the way
// decimal.Decimal.Cmp does. ErrNotComparable is returned if other cannot
// be coerced into a decimal or v is not NonEmpty.
func (v *NumericValue) Cmp(other interface{}) (int, error) {
	if v.state != StateNonEmpty {
		return 0, ErrNotComparable
	}
	od, ok := coerceDecimal(other)
	if !ok {
		return 0, ErrNotComparable
	}
	return v.parsed.Cmp(od), nil
}

// Add returns a new NumericValue holding v + other, keeping v's element
// definition so the result renders at the same implied precision.
func (v *NumericValue) Add(other *NumericValue) (*NumericValue, error) {
	return v.arith(other, decimal.Decimal.Add)
}

// Sub returns v - other.
func (v *NumericValue) Sub(other *NumericValue) (*NumericValue, error) {
	return v.arith(other, decimal.Decimal.Sub)
}

// Mul returns v * other.
func (v *NumericValue) Mul(other *NumericValue) (*NumericValue, error) {
	return v.arith(other, decimal.Decimal.Mul)
}

// Div returns v / other. ErrNotComparable wraps a division by zero since
// the operand is not usable for arithmetic in that state.
func (v *NumericValue) Div(other *NumericValue) (*NumericValue, error) {
	if other == nil || other.state != StateNonEmpty || other.parsed.IsZero() {
		return nil, ErrNotComparable
	}
	return v.arith(other, decimal.Decimal.Div)
}

// Mod returns v % other.
func (v *NumericValue) Mod(other *NumericValue) (*NumericValue, error) {
	if other == nil || other.state != StateNonEmpty || other.parsed.IsZero() {
		return nil, ErrNotComparable
	}
	return v.arith(other, decimal.Decimal.Mod)
}

func (v *NumericValue) arith(other *NumericValue, op func(decimal.Decimal, decimal.Decimal) decimal.Decimal) (*NumericValue, error) {
	if v.state != StateNonEmpty || other == nil || other.state != StateNonEmpty {
		return nil, ErrNotComparable
	}
	result := op(v.parsed, other.parsed)
	return NewNumericFromDecimal(result, v.def, v.usage, v.pos), nil
}

// Neg returns -v.
func (v *NumericValue) Neg() (*NumericValue, error) {
	if v.state != StateNonEmpty {
		return nil, ErrNotComparable
	}
	return NewNumericFromDecimal(v.parsed.Neg(), v.def, v.usage, v.pos), nil
}

// Abs returns |v|.
func (v *NumericValue) Abs() (*NumericValue, error) {
	if v.state != StateNonEmpty {
		return nil, ErrNotComparable
	}
	return NewNumericFromDecimal(v.parsed.Abs(), v.def, v.usage, v.pos), nil
}

// coerceDecimal converts supported operand types into a decimal.Decimal:
// another *NumericValue or *RealValue (must be NonEmpty), a
// decimal.Decimal, an int64, an int, or a float64. This backs both Equal/Cmp and the Design Notes'
// into_decimal arithmetic coercion rule, so both use a single code path.
func coerceDecimal(v interface{}) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case *NumericValue:
		if t == nil || t.state != StateNonEmpty {
			return decimal.Decimal{}, false
		}
		return t.parsed, true
	case *RealValue:
		if t == nil || t.state != StateNonEmpty {
			return decimal.Decimal{}, false
		}
		return t.parsed, true
	case decimal.Decimal:
		return t, true
	case int64:
		return decimal.NewFromInt(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case float64:
		return decimal.NewFromFloat(t), true
	default:
		return decimal.Decimal{}, false
	}
}
