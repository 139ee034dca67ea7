package schema

import "fmt"

// ChildKind distinguishes the two things that can occupy a position in a
// loop or transaction set body: a bare segment, or a nested
// loop (whose own first segment is what the parser matches against to
// decide whether to open it).
type ChildKind int

const (
	// ChildSegment marks a position bound to a SegmentDef.
	ChildSegment ChildKind = iota
	// ChildLoop marks a position bound to a nested LoopDef.
	ChildLoop
)

// ChildUse binds a segment or loop definition at a 1-based position
// within a parent structure (loop or transaction set),
// together with its usage requirement and repeat count.
type ChildUse struct {
	Position int
	Kind     ChildKind
	Segment  *SegmentDef
	Loop     *LoopDef
	Usage    UsageRequirement
	Repeat   RepeatCount
}

// Definition returns whichever definition (segment or loop) this use
// binds.
func (c ChildUse) Definition() Definition {
	if c.Kind == ChildLoop {
		return c.Loop
	}
	return c.Segment
}

// FirstSegmentID returns the segment id that identifies this child: the
// segment's own id, or the id of a nested loop's first segment. Used by
// the parser to decide whether an incoming token can open this child.
func (c ChildUse) FirstSegmentID() string {
	if c.Kind == ChildLoop {
		return c.Loop.FirstSegmentID()
	}
	return c.Segment.ID
}

// ChildHolder is implemented by the ordered-children structures (loop and
// transaction set) so the parser can walk them uniformly.
type ChildHolder interface {
	ChildCount() int
	ChildAt(position int) (ChildUse, error)
}

// ChildAt looks up the child use at a 1-based position within any
// ChildHolder, returning an error if position is out of range. This is
// the schema.child_at operation from spec.md §4.3.
func ChildAt(parent ChildHolder, position int) (ChildUse, error) {
	if parent == nil || position < 1 || position > parent.ChildCount() {
		return ChildUse{}, &NotFoundError{Kind: "child", ID: fmt.Sprintf("position %d", position)}
	}
	return parent.ChildAt(position)
}

// LoopDef is an ordered structure of permitted children (segment or
// nested loop uses). A loop is identified, for matching purposes, by the
// segment id of its first child.
type LoopDef struct {
	ID       string
	Name     string
	Children []ChildUse
}

// DefID implements Definition.
func (l *LoopDef) DefID() string { return l.ID }

// DefName implements Definition.
func (l *LoopDef) DefName() string { return l.Name }

// ChildCount implements ChildHolder.
func (l *LoopDef) ChildCount() int { return len(l.Children) }

// ChildAt implements ChildHolder.
func (l *LoopDef) ChildAt(position int) (ChildUse, error) {
	for _, c := range l.Children {
		if c.Position == position {
			return c, nil
		}
	}
	return ChildUse{}, &NotFoundError{Kind: "child", ID: fmt.Sprintf("%s position %d", l.ID, position)}
}

// FirstSegmentID returns the segment id of this loop's first declared
// child, descending through nested loops if the first child is itself a
// loop.
func (l *LoopDef) FirstSegmentID() string {
	if len(l.Children) == 0 {
		return ""
	}
	return l.Children[0].FirstSegmentID()
}

// TransactionSetDef describes a business document: a mandatory ST header,
// a mandatory SE trailer, and an ordered body of segment/loop uses
// between them.
type TransactionSetDef struct {
	ID                 string // e.g. "850"
	Name               string
	ImplementationRef  string
	Header             *SegmentDef // ST
	Trailer            *SegmentDef // SE
	Body               []ChildUse
}

// DefID implements Definition.
func (t *TransactionSetDef) DefID() string { return t.ID }

// DefName implements Definition.
func (t *TransactionSetDef) DefName() string { return t.Name }

// ChildCount implements ChildHolder.
func (t *TransactionSetDef) ChildCount() int { return len(t.Body) }

// ChildAt implements ChildHolder.
func (t *TransactionSetDef) ChildAt(position int) (ChildUse, error) {
	for _, c := range t.Body {
		if c.Position == position {
			return c, nil
		}
	}
	return ChildUse{}, &NotFoundError{Kind: "child", ID: fmt.Sprintf("%s position %d", t.ID, position)}
}

// FunctionalGroupDef describes a GS/GE envelope and the transaction set
// code it carries.
type FunctionalGroupDef struct {
	ID                 string // functional identifier code, e.g. "PO", "FA"
	Name               string
	Header             *SegmentDef // GS
	Trailer            *SegmentDef // GE
	TransactionSetCode string // the ST01 code this group is expected to carry, e.g. "850"
}

// DefID implements Definition.
func (f *FunctionalGroupDef) DefID() string { return f.ID }

// DefName implements Definition.
func (f *FunctionalGroupDef) DefName() string { return f.Name }

// InterchangeDef describes an ISA/IEA envelope for one X12 version.
type InterchangeDef struct {
	Version string // e.g. "00501"
	Header  *SegmentDef // ISA
	Trailer *SegmentDef // IEA
	Dict    *SegmentDict
}

// DefID implements Definition.
func (i *InterchangeDef) DefID() string { return i.Version }

// DefName implements Definition.
func (i *InterchangeDef) DefName() string { return "Interchange " + i.Version }
