// Package parse drives the schema-directed descent from a segment token
// stream (package tokenize) into a constructed value tree (package x12),
// consulting a schema.Catalog for functional-group and transaction-set
// shapes along the way.
package parse

import (
	"errors"
	"fmt"

	"github.com/dshills/gox12/x12"
)

// ErrContextCanceled is returned when the parsing context is canceled
// before a parse completes.
var ErrContextCanceled = errors.New("parse: context canceled")

// StructuralErrorKind classifies a StructuralError, mirroring spec.md §7.
type StructuralErrorKind int

const (
	KindUnknownSegment StructuralErrorKind = iota
	KindUnexpectedSegment
	KindMissingMandatory
	KindTooManyRepetitions
	KindMissingMandatoryElement
)

func (k StructuralErrorKind) String() string {
	switch k {
	case KindUnknownSegment:
		return "unknown segment"
	case KindUnexpectedSegment:
		return "unexpected segment"
	case KindMissingMandatory:
		return "missing mandatory"
	case KindTooManyRepetitions:
		return "too many repetitions"
	case KindMissingMandatoryElement:
		return "missing mandatory element"
	default:
		return fmt.Sprintf("StructuralErrorKind(%d)", int(k))
	}
}

// StructuralError is one entry in the error list Parse returns alongside
// its (possibly partial) tree. Structural errors never abort a parse;
// only a malformed ISA header or an invalid schema does.
type StructuralError struct {
	Kind       StructuralErrorKind
	Position   x12.Position
	DefinitionRef string // e.g. "IEA", "BEG", "127" -- whatever definition was involved
	Message    string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s at %s (%s): %s", e.Kind, e.Position, e.DefinitionRef, e.Message)
}

func missingMandatory(defRef string, pos x12.Position) *StructuralError {
	return &StructuralError{
		Kind:          KindMissingMandatory,
		Position:      pos,
		DefinitionRef: defRef,
		Message:       fmt.Sprintf("%s is mandatory and did not appear", defRef),
	}
}

func missingMandatoryElement(defRef string, pos x12.Position) *StructuralError {
	return &StructuralError{
		Kind:          KindMissingMandatoryElement,
		Position:      pos,
		DefinitionRef: defRef,
		Message:       fmt.Sprintf("%s is a mandatory element and was absent", defRef),
	}
}

func unexpectedSegment(id string, pos x12.Position) *StructuralError {
	return &StructuralError{
		Kind:          KindUnexpectedSegment,
		Position:      pos,
		DefinitionRef: id,
		Message:       fmt.Sprintf("segment %q is not accepted at this position", id),
	}
}

func unknownSegment(id string, pos x12.Position) *StructuralError {
	return &StructuralError{
		Kind:          KindUnknownSegment,
		Position:      pos,
		DefinitionRef: id,
		Message:       fmt.Sprintf("segment id %q is not in the dictionary", id),
	}
}

func tooManyRepetitions(id string, pos x12.Position) *StructuralError {
	return &StructuralError{
		Kind:          KindTooManyRepetitions,
		Position:      pos,
		DefinitionRef: id,
		Message:       fmt.Sprintf("%s exceeded its declared repeat count", id),
	}
}
