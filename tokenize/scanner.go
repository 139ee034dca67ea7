package tokenize

import (
	"bytes"
	"io"
	"strings"

	"github.com/dshills/gox12/x12"
)

// Tokenize recovers Separators from data's ISA header and splits the
// whole input into a slice of SegmentTok, built in full before it
// returns. An
// unterminated final segment is tolerated and still emitted. Whitespace
// and newlines between segments are ignored. The only fatal error is a
// malformed ISA header, since without Separators no splitting is
// possible.
func Tokenize(data []byte) ([]SegmentTok, x12.Separators, error) {
	sep, err := x12.Infer(data)
	if err != nil {
		return nil, x12.Separators{}, err
	}

	frames := splitBytes(data, sep.Segment)
	toks := make([]SegmentTok, 0, len(frames))

	offset := 0
	segIndex := 0
	for _, frame := range frames {
		frameOffset := offset
		offset += len(frame) + 1 // + the terminator byte consumed by bytes.Split

		trimmed := bytes.TrimFunc(frame, isSegmentWhitespace)
		if len(trimmed) == 0 {
			continue
		}
		lead := len(frame) - len(bytes.TrimLeftFunc(frame, isSegmentWhitespace))

		tok := tokenizeFrame(trimmed, sep, x12.Position{Offset: frameOffset + lead, SegIndex: segIndex})
		toks = append(toks, tok)
		segIndex++
	}

	return toks, sep, nil
}

func isSegmentWhitespace(r rune) bool {
	return r == '\r' || r == '\n' || r == ' ' || r == '\t'
}

func tokenizeFrame(frame []byte, sep x12.Separators, pos x12.Position) SegmentTok {
	parts := splitBytes(frame, sep.Element)
	id := strings.TrimSpace(string(parts[0]))

	elements := make([]ElementTok, 0, len(parts)-1)
	for i, raw := range parts[1:] {
		elements = append(elements, tokenizeElement(raw, sep, pos.WithElement(i+1)))
	}

	return SegmentTok{
		ID:       id,
		Elements: elements,
		Position: pos,
		Unknown:  isUnknownSegmentID(id),
	}
}

func tokenizeElement(raw []byte, sep x12.Separators, _ x12.Position) ElementTok {
	repParts := splitBytes(raw, sep.Repetition)
	reps := make([][]string, 0, len(repParts))
	composite := false
	for _, rp := range repParts {
		compParts := splitBytes(rp, sep.Component)
		if len(compParts) > 1 {
			composite = true
		}
		comp := make([]string, len(compParts))
		for i, c := range compParts {
			comp[i] = string(c)
		}
		reps = append(reps, comp)
	}
	return ElementTok{Composite: composite, Repetitions: reps}
}

// Scanner reads one interchange at a time from a stream that may
// contain several ISA...IEA interchanges placed back to back. Each call
// to Scan looks for the next literal "ISA" following a segment
// terminator, so the caller never needs to know interchange boundaries
// in advance.
type Scanner struct {
	data   []byte
	offset int
}

// NewScanner wraps data for interchange-at-a-time scanning.
func NewScanner(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Scan returns the tokens and Separators for the next interchange in the
// stream, or (nil, Separators{}, io.EOF) when the stream is exhausted.
func (s *Scanner) Scan() ([]SegmentTok, x12.Separators, error) {
	if s.offset >= len(s.data) {
		return nil, x12.Separators{}, io.EOF
	}

	rest := s.data[s.offset:]
	start := bytes.Index(rest, []byte("ISA"))
	if start < 0 {
		s.offset = len(s.data)
		return nil, x12.Separators{}, io.EOF
	}
	rest = rest[start:]

	sep, err := x12.Infer(rest)
	if err != nil {
		s.offset = len(s.data)
		return nil, x12.Separators{}, err
	}

	end := findNextInterchangeStart(rest, sep)
	chunk := rest
	if end >= 0 {
		chunk = rest[:end]
		s.offset += start + end
	} else {
		s.offset = len(s.data)
	}

	toks, _, err := Tokenize(chunk)
	if err != nil {
		return nil, x12.Separators{}, err
	}
	return toks, sep, nil
}

// findNextInterchangeStart scans past the current interchange's trailer
// to find where a following "ISA" literal begins, returning -1 if the
// stream ends within this interchange.
func findNextInterchangeStart(data []byte, sep x12.Separators) int {
	term := sep.Segment
	searchFrom := 0
	for {
		idx := bytes.IndexByte(data[searchFrom:], term)
		if idx < 0 {
			return -1
		}
		absIdx := searchFrom + idx
		rest := bytes.TrimFunc(data[absIdx+1:], isSegmentWhitespace)
		if bytes.HasPrefix(rest, []byte("ISA")) {
			return absIdx + 1 + (len(data[absIdx+1:]) - len(rest))
		}
		searchFrom = absIdx + 1
		if searchFrom >= len(data) {
			return -1
		}
	}
}
