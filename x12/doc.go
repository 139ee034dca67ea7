// Package x12 provides core types for representing parsed or constructed
// ASC X12 EDI documents: the five-character Separators tuple, the Position
// of a value within a document, typed ElementValue kinds (identifier,
// string, numeric, real, date, time), and the constructed tree of Nodes
// (InterchangeVal, FunctionalGroupVal, TransactionSetVal, LoopVal,
// SegmentVal) that a schema-directed parse produces.
//
// # Document structure
//
// X12 documents nest five levels deep:
//
//	Interchange (ISA/IEA) -> FunctionalGroup (GS/GE) -> TransactionSet (ST/SE) -> Loop(s) -> Segment
//
// Segments hold elements; elements may be composite (an ordered list of
// components) and may repeat (an ordered list of repetitions of the same
// element or composite).
//
// # Values are immutable
//
// Every ElementValue and every Node is immutable once constructed.
// "Modifying" a tree means calling Copy with a set of changes and getting
// back a new node; nothing in this package mutates shared state in place.
//
// # Element value states
//
// Every element kind follows the same three-state shape: Empty (present
// syntactically, no characters), Invalid (characters present but
// unparseable under the declared kind, original characters retained), and
// NonEmpty (successfully parsed). The numeric kind is the most detailed:
// its wire representation uses an implied decimal point fixed by the
// element's declared precision.
package x12
