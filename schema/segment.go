package schema

import "fmt"

// ElementUse binds an element or composite definition at a 1-based
// position within a segment, together with its usage requirement and
// repeat count.
type ElementUse struct {
	Position  int
	Element   *ElementDef   // set when this slot holds a simple element
	Composite *CompositeDef // set when this slot holds a composite
	Usage     UsageRequirement
	Repeat    RepeatCount
}

// Definition returns whichever definition (element or composite) this use
// binds, satisfying the Definition interface.
func (u ElementUse) Definition() Definition {
	if u.Composite != nil {
		return u.Composite
	}
	return u.Element
}

// IsComposite reports whether this slot holds a composite.
func (u ElementUse) IsComposite() bool { return u.Composite != nil }

// SegmentDef is the identity, purpose, and ordered element uses of a
// segment, e.g. "ISA" or "TDS".
type SegmentDef struct {
	ID       string
	Name     string
	Purpose  string
	Elements []ElementUse
}

// DefID implements Definition.
func (s *SegmentDef) DefID() string { return s.ID }

// DefName implements Definition.
func (s *SegmentDef) DefName() string { return s.Name }

// ElementAt returns the element use at a 1-based position.
func (s *SegmentDef) ElementAt(position int) (ElementUse, error) {
	for _, eu := range s.Elements {
		if eu.Position == position {
			return eu, nil
		}
	}
	return ElementUse{}, &NotFoundError{Kind: "element", ID: fmt.Sprintf("%s%02d", s.ID, position)}
}

// ElementCount returns the number of declared element positions,
// including any declared NotUsed.
func (s *SegmentDef) ElementCount() int { return len(s.Elements) }

// SegmentDict maps segment ids to their definitions for one interchange
// version. It is the "segment dictionary module" referenced from an
// InterchangeDef.
type SegmentDict struct {
	Version  string
	Segments map[string]*SegmentDef
}

// SegmentDefLookup looks up a segment definition by id within dict.
func SegmentDefLookup(dict *SegmentDict, id string) (*SegmentDef, error) {
	if dict == nil {
		return nil, &NotFoundError{Kind: "segment", ID: id}
	}
	def, ok := dict.Segments[id]
	if !ok {
		return nil, &NotFoundError{Kind: "segment", ID: id}
	}
	return def, nil
}
