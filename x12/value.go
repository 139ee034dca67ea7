package x12

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/gox12/schema"
)

// ValueState is the three-shape sum every ElementValue kind follows.
type ValueState int

const (
	// StateEmpty means the element was present syntactically (an empty
	// slice between delimiters) but carried no characters.
	StateEmpty ValueState = iota
	// StateInvalid means characters were present but could not be parsed
	// under the element's declared kind; the raw characters are retained.
	StateInvalid
	// StateNonEmpty means the characters parsed successfully.
	StateNonEmpty
)

func (s ValueState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateInvalid:
		return "invalid"
	case StateNonEmpty:
		return "non-empty"
	default:
		return fmt.Sprintf("ValueState(%d)", int(s))
	}
}

// ElementValue is implemented by every element kind's value type
// (StringValue, IdentifierValue, NumericValue, RealValue, DateValue,
// TimeValue). All implementations are immutable once constructed.
type ElementValue interface {
	// Def returns the element definition this value was parsed or
	// constructed against.
	Def() *schema.ElementDef
	// Usage returns the schema usage binding for this value's position.
	Usage() schema.Usage
	// Position returns where this value sits in the document.
	Position() Position
	// State returns which of the three shapes this value is in.
	State() ValueState
	// Empty reports whether State() == StateEmpty.
	Empty() bool
	// Invalid reports whether State() == StateInvalid.
	Invalid() bool
	// Valid reports whether State() == StateNonEmpty.
	Valid() bool
	// Raw returns the original wire characters. For StateInvalid this is
	// the unparseable text; for StateNonEmpty it is the characters that
	// were parsed (empty string if the value was constructed
	// programmatically rather than parsed).
	Raw() string
	// ToWire renders the value's wire representation. truncate controls
	// numeric/string truncation behavior as described on each kind.
	ToWire(truncate bool) string
	// TooLong reports whether the wire representation would exceed the
	// element's declared maximum length.
	TooLong() bool
	// TooShort reports whether the wire representation is shorter than
	// the element's declared minimum length and cannot be padded to it.
	TooShort() bool
	// String renders the value for diagnostics (equivalent to
	// ToWire(true)).
	String() string
}

// elemBase holds the fields common to every element kind.
type elemBase struct {
	def   *schema.ElementDef
	usage schema.Usage
	pos   Position
	state ValueState
	raw   string
}

func (b elemBase) Def() *schema.ElementDef { return b.def }
func (b elemBase) Usage() schema.Usage     { return b.usage }
func (b elemBase) Position() Position      { return b.pos }
func (b elemBase) State() ValueState       { return b.state }
func (b elemBase) Empty() bool             { return b.state == StateEmpty }
func (b elemBase) Invalid() bool           { return b.state == StateInvalid }
func (b elemBase) Valid() bool             { return b.state == StateNonEmpty }
func (b elemBase) Raw() string             { return b.raw }

// lengthTooLong/lengthTooShort are the shared length predicates used by
// every non-numeric kind: compare the rendered wire length against the
// element definition's bounds.
func lengthTooLong(def *schema.ElementDef, wire string) bool {
	return def != nil && def.MaxLength > 0 && len(wire) > def.MaxLength
}

func lengthTooShort(def *schema.ElementDef, wire string) bool {
	return def != nil && len(wire) < def.MinLength
}

// ---- StringValue (AN data element type) ----

// StringValue holds a free-form alphanumeric element.
type StringValue struct {
	elemBase
	parsed string
}

// NewStringValue is the "value" constructor for KindString: blank input
// is Empty, otherwise the characters are stored verbatim as NonEmpty.
// AN elements have no character-set restriction beyond length, so this
// kind never produces StateInvalid.
func NewStringValue(input string, def *schema.ElementDef, usage schema.Usage, pos Position) *StringValue {
	if input == "" {
		return &StringValue{elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateEmpty}}
	}
	return &StringValue{
		elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateNonEmpty, raw: input},
		parsed:   input,
	}
}

// Parsed returns the string value; empty when Empty().
func (v *StringValue) Parsed() string { return v.parsed }

func (v *StringValue) ToWire(truncate bool) string {
	if v.state != StateNonEmpty {
		return ""
	}
	s := v.parsed
	if truncate && v.def != nil && v.def.MaxLength > 0 && len(s) > v.def.MaxLength {
		s = s[:v.def.MaxLength]
	}
	return s
}

func (v *StringValue) TooLong() bool {
	if v.state != StateNonEmpty {
		return false
	}
	return lengthTooLong(v.def, v.parsed)
}

func (v *StringValue) TooShort() bool {
	if v.state != StateNonEmpty {
		return false
	}
	return lengthTooShort(v.def, v.parsed)
}

func (v *StringValue) String() string { return v.ToWire(true) }

// ---- IdentifierValue (ID data element type) ----

// IdentifierValue holds an enumerated-code element, optionally checked
// against its definition's code list.
type IdentifierValue struct {
	elemBase
	parsed string
}

// NewIdentifierValue validates input's length against the definition and,
// if the definition carries a code list, validates membership. A blank
// input is Empty; a non-blank input that fails either check is Invalid
// retaining the raw characters.
func NewIdentifierValue(input string, def *schema.ElementDef, usage schema.Usage, pos Position) *IdentifierValue {
	if input == "" {
		return &IdentifierValue{elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateEmpty}}
	}
	if def != nil {
		if def.MaxLength > 0 && len(input) > def.MaxLength {
			return &IdentifierValue{elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateInvalid, raw: input}}
		}
		if !def.AllowsCode(input) {
			return &IdentifierValue{elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateInvalid, raw: input}}
		}
	}
	return &IdentifierValue{
		elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateNonEmpty, raw: input},
		parsed:   input,
	}
}

// Parsed returns the identifier code; empty when Empty().
func (v *IdentifierValue) Parsed() string { return v.parsed }

func (v *IdentifierValue) ToWire(truncate bool) string {
	if v.state != StateNonEmpty {
		return ""
	}
	s := v.parsed
	if truncate && v.def != nil && v.def.MaxLength > 0 && len(s) > v.def.MaxLength {
		s = s[:v.def.MaxLength]
	}
	return s
}

func (v *IdentifierValue) TooLong() bool {
	if v.state != StateNonEmpty {
		return false
	}
	return lengthTooLong(v.def, v.parsed)
}

func (v *IdentifierValue) TooShort() bool {
	if v.state != StateNonEmpty {
		return false
	}
	return lengthTooShort(v.def, v.parsed)
}

func (v *IdentifierValue) String() string { return v.ToWire(true) }

// ---- DateValue (DT data element type) ----

// DateValue holds a CCYYMMDD or YYMMDD date.
type DateValue struct {
	elemBase
	parsed time.Time
	layout string
}

// NewDateValue parses input as CCYYMMDD (8 digits) or YYMMDD (6 digits).
// Any other length, or non-digit characters, produces Invalid.
func NewDateValue(input string, def *schema.ElementDef, usage schema.Usage, pos Position) *DateValue {
	if input == "" {
		return &DateValue{elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateEmpty}}
	}
	var layout string
	switch len(input) {
	case 8:
		layout = "20060102"
	case 6:
		layout = "060102"
	default:
		return &DateValue{elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateInvalid, raw: input}}
	}
	t, err := time.Parse(layout, input)
	if err != nil {
		return &DateValue{elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateInvalid, raw: input}}
	}
	return &DateValue{
		elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateNonEmpty, raw: input},
		parsed:   t,
		layout:   layout,
	}
}

// Parsed returns the parsed date; zero value when not NonEmpty.
func (v *DateValue) Parsed() time.Time { return v.parsed }

func (v *DateValue) ToWire(truncate bool) string {
	if v.state != StateNonEmpty {
		return ""
	}
	return v.parsed.Format(v.layout)
}

func (v *DateValue) TooLong() bool {
	if v.state != StateNonEmpty {
		return false
	}
	return lengthTooLong(v.def, v.ToWire(false))
}

func (v *DateValue) TooShort() bool {
	if v.state != StateNonEmpty {
		return false
	}
	return lengthTooShort(v.def, v.ToWire(false))
}

func (v *DateValue) String() string { return v.ToWire(true) }

// ---- TimeValue (TM data element type) ----

// TimeValue holds an HHMM[SS[dd]] time.
type TimeValue struct {
	elemBase
	hour, minute, second, hundredths int
	hasSeconds, hasHundredths        bool
}

// NewTimeValue parses input as HHMM (4), HHMMSS (6), or HHMMSSdd (7-8,
// fractional seconds). Anything else, or digits out of range, is Invalid.
func NewTimeValue(input string, def *schema.ElementDef, usage schema.Usage, pos Position) *TimeValue {
	if input == "" {
		return &TimeValue{elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateEmpty}}
	}
	invalid := func() *TimeValue {
		return &TimeValue{elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateInvalid, raw: input}}
	}
	if len(input) < 4 || len(input) > 8 {
		return invalid()
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return invalid()
		}
	}
	hh, _ := strconv.Atoi(input[0:2])
	mm, _ := strconv.Atoi(input[2:4])
	if hh > 23 || mm > 59 {
		return invalid()
	}
	tv := &TimeValue{
		elemBase: elemBase{def: def, usage: usage, pos: pos, state: StateNonEmpty, raw: input},
		hour:     hh,
		minute:   mm,
	}
	if len(input) >= 6 {
		ss, _ := strconv.Atoi(input[4:6])
		if ss > 59 {
			return invalid()
		}
		tv.second = ss
		tv.hasSeconds = true
	}
	if len(input) > 6 {
		hh2, err := strconv.Atoi(input[6:])
		if err != nil {
			return invalid()
		}
		tv.hundredths = hh2
		tv.hasHundredths = true
	}
	return tv
}

// Clock returns the parsed hour, minute, second, and fractional-second
// digits, along with whether seconds/fractional-seconds were present.
func (v *TimeValue) Clock() (hour, minute, second, hundredths int, hasSeconds, hasHundredths bool) {
	return v.hour, v.minute, v.second, v.hundredths, v.hasSeconds, v.hasHundredths
}

func (v *TimeValue) ToWire(truncate bool) string {
	if v.state != StateNonEmpty {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%02d%02d", v.hour, v.minute)
	if v.hasSeconds {
		fmt.Fprintf(&sb, "%02d", v.second)
	}
	if v.hasHundredths {
		fmt.Fprintf(&sb, "%d", v.hundredths)
	}
	return sb.String()
}

func (v *TimeValue) TooLong() bool {
	if v.state != StateNonEmpty {
		return false
	}
	return lengthTooLong(v.def, v.ToWire(false))
}

func (v *TimeValue) TooShort() bool {
	if v.state != StateNonEmpty {
		return false
	}
	return lengthTooShort(v.def, v.ToWire(false))
}

func (v *TimeValue) String() string { return v.ToWire(true) }
