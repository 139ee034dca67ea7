package x12

import (
	"github.com/shopspring/decimal"

	"github.com/dshills/gox12/schema"
)

// RealValue holds an explicit-decimal-point numeric element (the R data
// element type): unlike NumericValue it carries no implied precision --
// the decimal point, if any, appears literally on the wire.
type RealValue struct {
	elemBase
	parsed decimal.Decimal
}

// NewRealValue parses input directly as a decimal literal. Blank input
// is Empty; anything that fails decimal.NewFromString is Invalid.
func NewRealValue(input string, def *schema.ElementDef, usage schema.Usage, pos Position) *RealValue {
	if input == "" {
		return &RealValue{elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateEmpty}}
	}
	d, err := decimal.NewFromString(input)
	if err != nil {
		return &RealValue{elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateInvalid, raw: input}}
	}
	return &RealValue{
		elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateNonEmpty, raw: input},
		parsed:   d,
	}
}

// NewRealFromDecimal constructs a NonEmpty RealValue directly, bypassing
// wire parsing, for programmatically-built or derived values.
func NewRealFromDecimal(d decimal.Decimal, def *schema.ElementDef, usage schema.Usage, pos Position) *RealValue {
	return &RealValue{elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateNonEmpty}, parsed: d}
}

// Decimal returns the parsed magnitude; decimal.Zero when not NonEmpty.
func (v *RealValue) Decimal() decimal.Decimal { return v.parsed }

func (v *RealValue) ToWire(truncate bool) string {
	if v.state != StateNonEmpty {
		return ""
	}
	s := v.parsed.String()
	if truncate && v.def != nil && v.def.MaxLength > 0 && len(s) > v.def.MaxLength {
		s = s[:v.def.MaxLength]
	}
	return s
}

func (v *RealValue) TooLong() bool {
	if v.state != StateNonEmpty {
		return false
	}
	return lengthTooLong(v.def, v.ToWire(false))
}

func (v *RealValue) TooShort() bool {
	if v.state != StateNonEmpty {
		return false
	}
	return lengthTooShort(v.def, v.ToWire(false))
}

func (v *RealValue) String() string { return v.ToWire(true) }

// Equal reports value equality after coercing other into a decimal.
func (v *RealValue) Equal(other interface{}) bool {
	od, ok := coerceDecimal(other)
	if !ok || v.state != StateNonEmpty {
		return false
	}
	return v.parsed.Equal(od)
}
