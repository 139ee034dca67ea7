package ack

import (
	"github.com/dshills/gox12/schema"
	"github.com/dshills/gox12/x12"
)

// buildSeg places raw wire strings into a segment's simple (non-composite)
// element positions. Every envelope and AK segment this package builds is
// flat, so it never needs composite handling.
func buildSeg(def *schema.SegmentDef, pos x12.Position, values map[int]string) *x12.SegmentVal {
	slots := make([]x12.ElementSlot, def.ElementCount())
	for i := range slots {
		position := i + 1
		use, err := def.ElementAt(position)
		if err != nil {
			continue
		}
		epos := pos.WithElement(position)
		usage := schema.NewRepeatingUsage(use.Element, use.Usage, use.Repeat)
		slots[i] = x12.ElementSlot{
			Position:    position,
			Use:         use,
			Occurrences: []x12.Occurrence{buildValue(values[position], use.Element, usage, epos)},
		}
	}
	return x12.NewSegmentVal(def, pos, slots)
}

// buildValue dispatches to the element kind's constructor, the same
// per-kind switch the parse package's tokenizer-driven builder uses.
func buildValue(raw string, def *schema.ElementDef, usage schema.Usage, pos x12.Position) x12.ElementValue {
	if def == nil {
		return x12.NewStringValue(raw, nil, usage, pos)
	}
	switch def.Kind {
	case schema.KindIdentifier:
		return x12.NewIdentifierValue(raw, def, usage, pos)
	case schema.KindNumeric:
		return x12.NewNumericValue(raw, def, usage, pos)
	case schema.KindReal:
		return x12.NewRealValue(raw, def, usage, pos)
	case schema.KindDate:
		return x12.NewDateValue(raw, def, usage, pos)
	case schema.KindTime:
		return x12.NewTimeValue(raw, def, usage, pos)
	default:
		return x12.NewStringValue(raw, def, usage, pos)
	}
}

func wireAt(seg *x12.SegmentVal, position int) string {
	slot, err := seg.Element(position)
	if err != nil {
		return ""
	}
	occ, err := slot.First()
	if err != nil {
		return ""
	}
	ev, ok := occ.(x12.ElementValue)
	if !ok {
		return ""
	}
	return ev.ToWire(true)
}
