package schema

import "fmt"

// ElementKind identifies how an element's wire characters are parsed,
// rendered, and length-checked.
type ElementKind int

const (
	// KindIdentifier is an enumerated code (ID data element type), with an
	// optional attached code list.
	KindIdentifier ElementKind = iota
	// KindString is free-form alphanumeric text (AN data element type).
	KindString
	// KindNumeric is a fixed-precision implied-decimal number (N/Nn data
	// element type); the decimal point is never written, its position is
	// fixed by Precision.
	KindNumeric
	// KindReal is a decimal number written with an explicit point (R data
	// element type).
	KindReal
	// KindDate is a CCYYMMDD or YYMMDD date (DT data element type).
	KindDate
	// KindTime is an HHMM[SS[dd]] time (TM data element type).
	KindTime
)

// String renders the kind for diagnostics.
func (k ElementKind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindString:
		return "string"
	case KindNumeric:
		return "numeric"
	case KindReal:
		return "real"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	default:
		return fmt.Sprintf("ElementKind(%d)", int(k))
	}
}

// ElementDef is the identity and shape of a single element: its id, name,
// length bounds, and kind. Numeric elements additionally declare an
// implied decimal Precision. Identifier elements may carry a Codes list;
// when non-empty, a parsed value must be a member of it to be NonEmpty.
type ElementDef struct {
	ID        string
	Name      string
	MinLength int
	MaxLength int
	Kind      ElementKind
	Precision int      // meaningful only for KindNumeric
	Codes     []string // meaningful only for KindIdentifier; empty means unconstrained
}

// NewElementDef validates the invariants spec.md §3 declares for element
// definitions and returns an *InvalidSchemaError if they do not hold.
// Numeric elements require Precision <= MaxLength; the two length bounds
// must be non-negative and MinLength <= MaxLength.
func NewElementDef(id, name string, minLen, maxLen int, kind ElementKind, precision int, codes []string) (*ElementDef, error) {
	if minLen < 0 || maxLen < 0 {
		return nil, &InvalidSchemaError{Definition: id, Reason: "length bounds must be non-negative"}
	}
	if minLen > maxLen {
		return nil, &InvalidSchemaError{Definition: id, Reason: fmt.Sprintf("min length %d exceeds max length %d", minLen, maxLen)}
	}
	if kind == KindNumeric && precision > maxLen {
		return nil, &InvalidSchemaError{
			Definition: id,
			Reason:     fmt.Sprintf("numeric precision %d exceeds max length %d", precision, maxLen),
		}
	}
	def := &ElementDef{
		ID:        id,
		Name:      name,
		MinLength: minLen,
		MaxLength: maxLen,
		Kind:      kind,
		Precision: precision,
	}
	if len(codes) > 0 {
		def.Codes = append([]string(nil), codes...)
	}
	return def, nil
}

// DefID implements Definition.
func (e *ElementDef) DefID() string { return e.ID }

// DefName implements Definition.
func (e *ElementDef) DefName() string { return e.Name }

// HasCodeList reports whether membership in Codes constrains this
// identifier element.
func (e *ElementDef) HasCodeList() bool { return len(e.Codes) > 0 }

// AllowsCode reports whether code is a member of the attached code list.
// When no code list is attached, every code is allowed.
func (e *ElementDef) AllowsCode(code string) bool {
	if !e.HasCodeList() {
		return true
	}
	for _, c := range e.Codes {
		if c == code {
			return true
		}
	}
	return false
}

// CompositeComponentUse binds a component ElementDef at a 1-based position
// within a CompositeDef, with its own usage requirement.
type CompositeComponentUse struct {
	Position int
	Element  *ElementDef
	Usage    UsageRequirement
}

// CompositeDef is an ordered list of component element uses.
type CompositeDef struct {
	ID         string
	Name       string
	Components []CompositeComponentUse
}

// DefID implements Definition.
func (c *CompositeDef) DefID() string { return c.ID }

// DefName implements Definition.
func (c *CompositeDef) DefName() string { return c.Name }

// ComponentAt returns the component use at a 1-based position.
func (c *CompositeDef) ComponentAt(position int) (CompositeComponentUse, error) {
	for _, cu := range c.Components {
		if cu.Position == position {
			return cu, nil
		}
	}
	return CompositeComponentUse{}, &NotFoundError{Kind: "component", ID: fmt.Sprintf("%s[%d]", c.ID, position)}
}
