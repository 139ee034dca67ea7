// Package ack builds 997 Functional Acknowledgment interchanges
// describing the acceptance or rejection of another interchange. This is
// generation of a same-format X12 document, not a conversion to another
// document format, so it sits alongside the parser and writer rather
// than being excluded by the "no other document formats" boundary.
package ack

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dshills/gox12/schema"
	"github.com/dshills/gox12/x12"
)

// Errors returned by the Builder.
var (
	ErrNilInterchange     = errors.New("original interchange is nil")
	ErrNoFunctionalGroups = errors.New("original interchange has no functional groups")
	ErrInvalidCode        = errors.New("invalid acknowledgment code")
)

// Builder creates 997 Functional Acknowledgment interchanges from an
// original interchange. It mirrors the teacher's ACK Builder shape
// (Accept/Reject/Error/Custom), retargeted at X12's own same-format
// acknowledgment transaction set instead of a cross-protocol ACK.
type Builder interface {
	// Accept builds a 997 acknowledging every transaction set in
	// original as accepted.
	Accept(original *x12.InterchangeVal) (*x12.InterchangeVal, error)
	// Reject builds a 997 acknowledging every transaction set in
	// original as rejected, with reason recorded for diagnostics.
	Reject(original *x12.InterchangeVal, reason string) (*x12.InterchangeVal, error)
	// Error builds a 997 acknowledging every transaction set in original
	// as accepted-with-errors, with err's message recorded.
	Error(original *x12.InterchangeVal, err error) (*x12.InterchangeVal, error)
	// Custom builds a 997 using a fully specified ACK disposition.
	Custom(original *x12.InterchangeVal, ack ACK) (*x12.InterchangeVal, error)
}

type builder struct {
	catalog schema.Catalog
	cfg     builderConfig
}

// NewBuilder creates a new Builder backed by catalog, the schema.Catalog
// the acknowledgment's envelope and AK segments are looked up from.
func NewBuilder(catalog schema.Catalog, opts ...Option) Builder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &builder{catalog: catalog, cfg: cfg}
}

func (b *builder) Accept(original *x12.InterchangeVal) (*x12.InterchangeVal, error) {
	return b.Custom(original, ACK{Code: Accepted})
}

func (b *builder) Reject(original *x12.InterchangeVal, reason string) (*x12.InterchangeVal, error) {
	return b.Custom(original, ACK{Code: Rejected, Note: reason})
}

func (b *builder) Error(original *x12.InterchangeVal, err error) (*x12.InterchangeVal, error) {
	note := ""
	if err != nil {
		note = err.Error()
	}
	return b.Custom(original, ACK{Code: AcceptedWithErrors, Note: note})
}

func (b *builder) Custom(original *x12.InterchangeVal, ack ACK) (*x12.InterchangeVal, error) {
	if original == nil {
		return nil, ErrNilInterchange
	}
	if !ack.Code.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCode, ack.Code)
	}
	if len(original.FunctionalGroups()) == 0 {
		return nil, ErrNoFunctionalGroups
	}

	version := ""
	if original.Def() != nil {
		version = original.Def().Version
	}

	interDef, err := b.catalog.InterchangeDef(version)
	if err != nil {
		return nil, fmt.Errorf("resolving interchange definition: %w", err)
	}
	faGroupDef, err := b.catalog.FunctionalGroupDef(version, "FA")
	if err != nil {
		return nil, fmt.Errorf("resolving FA functional group definition: %w", err)
	}
	ts997Def, err := b.catalog.TransactionSetDef(version, "997")
	if err != nil {
		return nil, fmt.Errorf("resolving 997 transaction set definition: %w", err)
	}
	dict, err := b.catalog.SegmentDict(version)
	if err != nil {
		return nil, fmt.Errorf("resolving segment dictionary: %w", err)
	}
	ak1Def, err := schema.SegmentDefLookup(dict, "AK1")
	if err != nil {
		return nil, err
	}
	ak2Def, err := schema.SegmentDefLookup(dict, "AK2")
	if err != nil {
		return nil, err
	}
	ak5Def, err := schema.SegmentDefLookup(dict, "AK5")
	if err != nil {
		return nil, err
	}
	ak9Def, err := schema.SegmentDefLookup(dict, "AK9")
	if err != nil {
		return nil, err
	}

	b.cfg.logger.Info().Str("code", string(ack.Code)).Str("note", ack.Note).Msg("ack: building functional acknowledgment")

	groups := make([]*x12.FunctionalGroupVal, 0, len(original.FunctionalGroups()))
	for gi, g := range original.FunctionalGroups() {
		groups = append(groups, b.buildGroup(gi, g, faGroupDef, ts997Def, ak1Def, ak2Def, ak5Def, ak9Def, ack))
	}

	isaHeader := b.buildISA(interDef.Header, original.Header())
	groupCount := strconv.Itoa(len(groups))
	iea := buildSeg(interDef.Trailer, x12.Position{}, map[int]string{
		1: groupCount,
		2: wireAt(isaHeader, 13),
	})

	return x12.NewInterchangeVal(interDef, original.Separators(), x12.Position{}, isaHeader, iea, groups), nil
}

func (b *builder) buildISA(def *schema.SegmentDef, original *x12.SegmentVal) *x12.SegmentVal {
	values := map[int]string{
		1:  "00",
		2:  "          ",
		3:  "00",
		4:  "          ",
		9:  b.cfg.timeFunc().Format("060102"),
		10: b.cfg.timeFunc().Format("1504"),
		11: "^",
		12: "00501",
		13: b.cfg.controlNumberFn(),
		14: "0",
		15: "P",
		16: ":",
	}
	if original != nil {
		values[5] = wireAt(original, 7)
		values[6] = wireAt(original, 8)
		values[7] = wireAt(original, 5)
		values[8] = wireAt(original, 6)
	}
	return buildSeg(def, x12.Position{}, values)
}

func (b *builder) buildGroup(index int, original *x12.FunctionalGroupVal, faDef *schema.FunctionalGroupDef, ts997Def *schema.TransactionSetDef, ak1Def, ak2Def, ak5Def, ak9Def *schema.SegmentDef, ack ACK) *x12.FunctionalGroupVal {
	groupControl := b.cfg.controlNumberFn()

	gsValues := map[int]string{
		1: "FA",
		4: b.cfg.timeFunc().Format("20060102"),
		5: b.cfg.timeFunc().Format("1504"),
		6: groupControl,
		7: "X",
		8: "005010",
	}
	if original.Header() != nil {
		gsValues[2] = wireAt(original.Header(), 3)
		gsValues[3] = wireAt(original.Header(), 2)
	}
	gsHeader := buildSeg(faDef.Header, x12.Position{}, gsValues)

	originalTSCode := ""
	if original.Header() != nil {
		originalTSCode = wireAt(original.Header(), 1)
	}

	ak1 := buildSeg(ak1Def, x12.Position{}, map[int]string{
		1: originalTSCode,
		2: groupControl,
	})

	ts := original.TransactionSets()
	ak2Loops := make([]x12.Node, 0, len(ts))
	for _, t := range ts {
		tsCode, tsControl := "", ""
		if t.Header() != nil {
			tsCode = wireAt(t.Header(), 1)
			tsControl = wireAt(t.Header(), 2)
		}
		ak2 := buildSeg(ak2Def, x12.Position{}, map[int]string{1: tsCode, 2: tsControl})
		ak5 := buildSeg(ak5Def, x12.Position{}, map[int]string{1: string(ack.Code)})
		loopDef := ak2LoopDefFrom(ts997Def)
		ak2Loops = append(ak2Loops, x12.NewLoopVal(loopDef, x12.Position{}, 1, []x12.Node{ak2, ak5}))
	}

	accepted := "0"
	if ack.Code == Accepted || ack.Code == AcceptedWithErrors {
		accepted = strconv.Itoa(len(ts))
	}
	ak9 := buildSeg(ak9Def, x12.Position{}, map[int]string{
		1: string(ack.Code),
		2: strconv.Itoa(len(ts)),
		3: strconv.Itoa(len(ts)),
		4: accepted,
	})

	stControl := b.cfg.controlNumberFn()
	st := buildSeg(ts997Def.Header, x12.Position{}, map[int]string{1: "997", 2: stControl})
	body := append([]x12.Node{ak1}, ak2Loops...)
	body = append(body, ak9)
	tsVal := x12.NewTransactionSetVal(ts997Def, x12.Position{}, st, nil, body)
	segCount := countSegments(tsVal) + 1 // +1 for the SE segment itself
	se := buildSeg(ts997Def.Trailer, x12.Position{}, map[int]string{
		1: strconv.Itoa(segCount),
		2: stControl,
	})
	tsVal = tsVal.Copy(nil, se, nil)

	ge := buildSeg(faDef.Trailer, x12.Position{}, map[int]string{1: "1", 2: groupControl})
	return x12.NewFunctionalGroupVal(faDef, x12.Position{}, gsHeader, ge, []*x12.TransactionSetVal{tsVal})
}

// ak2LoopDefFrom finds the AK2 loop definition nested in the 997 body so
// the acknowledgment's loop nodes carry the same *schema.LoopDef
// identity the validate and encode packages expect.
func ak2LoopDefFrom(ts *schema.TransactionSetDef) *schema.LoopDef {
	for i := 1; i <= ts.ChildCount(); i++ {
		cu, err := ts.ChildAt(i)
		if err != nil {
			continue
		}
		if cu.Kind == schema.ChildLoop {
			return cu.Loop
		}
	}
	return nil
}

func countSegments(n x12.Node) int {
	if n.Kind() == x12.NodeSegment {
		return 1
	}
	total := 0
	for _, c := range n.Children() {
		total += countSegments(c)
	}
	return total
}
