// Package tokenize recovers the five-level delimiter hierarchy from a
// raw X12 byte stream and splits it into segment tokens. Tokenize splits
// the whole input eagerly and returns every token in one slice; no lazy,
// token-at-a-time form is offered. It performs no schema lookups and no element-kind
// coercion -- it only knows how to find delimiters and split on them.
package tokenize

import (
	"bytes"
	"unicode"

	"github.com/dshills/gox12/x12"
)

// ElementTok is one element occurrence within a segment token: either a
// simple slice, or an ordered list of component slices for a composite
// element. Either shape may repeat, in which case Repetitions holds more
// than one entry.
type ElementTok struct {
	Composite    bool
	Repetitions  [][]string // each entry is one repetition, split on the component separator; len==1 for a simple element
}

// Simple returns the element's raw repetitions as plain strings, valid
// when Composite is false: each repetition has exactly one component.
func (e ElementTok) Simple() []string {
	out := make([]string, len(e.Repetitions))
	for i, rep := range e.Repetitions {
		if len(rep) > 0 {
			out[i] = rep[0]
		}
	}
	return out
}

// SegmentTok is one segment occurrence recovered from the stream: its
// identifier, its ordered element tokens, and its position.
type SegmentTok struct {
	ID       string
	Elements []ElementTok
	Position x12.Position
	// Unknown is set when ID fails the uppercase-alphanumeric check;
	// the tokenizer still emits the token rather than aborting.
	Unknown bool
}

func isUnknownSegmentID(id string) bool {
	if len(id) < 2 || len(id) > 3 {
		return true
	}
	for _, r := range id {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// splitBytes splits data on sep, returning byte slices. Unlike
// bytes.Split this is named for clarity at call sites that split on a
// single delimiter byte repeatedly down the hierarchy.
func splitBytes(data []byte, sep byte) [][]byte {
	return bytes.Split(data, []byte{sep})
}
