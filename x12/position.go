package x12

import "fmt"

// Position locates a value within a document for error reporting: the
// byte offset where its segment began, the 0-based segment index within
// the whole token stream, and the 1-based element and component indices
// within that segment (0 when not applicable, e.g. for a segment-level
// position).
type Position struct {
	Offset    int
	SegIndex  int
	ElemIndex int
	CompIndex int
}

// String renders a position as "segment N element E component C (byte B)", omitting
// element/component when they are zero.
func (p Position) String() string {
	s := fmt.Sprintf("segment %d", p.SegIndex)
	if p.ElemIndex > 0 {
		s += fmt.Sprintf(" element %d", p.ElemIndex)
	}
	if p.CompIndex > 0 {
		s += fmt.Sprintf(" component %d", p.CompIndex)
	}
	return fmt.Sprintf("%s (byte %d)", s, p.Offset)
}

// WithElement returns a copy of p addressing a specific element index.
func (p Position) WithElement(i int) Position {
	p.ElemIndex = i
	p.CompIndex = 0
	return p
}

// WithComponent returns a copy of p addressing a specific component
// index within its current element.
func (p Position) WithComponent(i int) Position {
	p.CompIndex = i
	return p
}
