package parse

import (
	"github.com/dshills/gox12/schema"
	"github.com/dshills/gox12/tokenize"
	"github.com/dshills/gox12/x12"
)

// buildElementValue dispatches to the element kind's constructor.
func buildElementValue(raw string, def *schema.ElementDef, usage schema.Usage, pos x12.Position) x12.ElementValue {
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

// buildComposite zips raw component slices against a composite
// definition's declared, dense component positions.
func buildComposite(rawComponents []string, use schema.ElementUse, pos x12.Position, errs *[]*StructuralError) *x12.CompositeVal {
	cdef := use.Composite
	usage := schema.NewRepeatingUsage(cdef, use.Usage, use.Repeat)
	components := make([]x12.ElementValue, cdef.ComponentCount())
	for i := range components {
		position := i + 1
		cu, err := cdef.ComponentAt(position)
		if err != nil {
			continue
		}
		raw := ""
		if i < len(rawComponents) {
			raw = rawComponents[i]
		}
		compPos := pos.WithComponent(position)
		compUsage := schema.NewUsage(cu.Element, cu.Usage)
		val := buildElementValue(raw, cu.Element, compUsage, compPos)
		if raw == "" && cu.Usage.Required() {
			*errs = append(*errs, missingMandatoryElement(cdef.ID+"-"+itoa(position), compPos))
		}
		components[i] = val
	}
	return x12.NewCompositeVal(cdef, usage, pos, components)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// buildSlot builds one ElementSlot for a segment's element use against
// whatever element token (if any) occupied that position on the wire.
func buildSlot(use schema.ElementUse, tok *tokenize.ElementTok, pos x12.Position, errs *[]*StructuralError) x12.ElementSlot {
	slot := x12.ElementSlot{Position: use.Position, Use: use}

	if use.Usage.Forbidden() {
		return slot
	}

	if tok == nil {
		if use.Usage.Required() {
			*errs = append(*errs, missingMandatoryElement(defRefForUse(use, pos), pos))
		}
		slot.Occurrences = []x12.Occurrence{emptyOccurrence(use, pos)}
		return slot
	}

	reps := tok.Repetitions
	allowed := len(reps)
	dropped := 0
	for i := 1; i <= len(reps); i++ {
		if !use.Repeat.Allows(i - 1) {
			allowed = i - 1
			dropped = len(reps) - allowed
			break
		}
	}
	if dropped > 0 {
		*errs = append(*errs, tooManyRepetitions(defRefForUse(use, pos), pos))
		reps = reps[:allowed]
	}
	if len(reps) == 0 {
		if use.Usage.Required() {
			*errs = append(*errs, missingMandatoryElement(defRefForUse(use, pos), pos))
		}
		slot.Occurrences = []x12.Occurrence{emptyOccurrence(use, pos)}
		return slot
	}

	occ := make([]x12.Occurrence, 0, len(reps))
	if use.IsComposite() {
		for _, rep := range reps {
			occ = append(occ, buildComposite(rep, use, pos, errs))
		}
	} else {
		usage := schema.NewRepeatingUsage(use.Element, use.Usage, use.Repeat)
		for _, rep := range reps {
			raw := ""
			if len(rep) > 0 {
				raw = rep[0]
			}
			occ = append(occ, buildElementValue(raw, use.Element, usage, pos))
		}
	}
	slot.Occurrences = occ
	return slot
}

func emptyOccurrence(use schema.ElementUse, pos x12.Position) x12.Occurrence {
	if use.IsComposite() {
		usage := schema.NewRepeatingUsage(use.Composite, use.Usage, use.Repeat)
		components := make([]x12.ElementValue, use.Composite.ComponentCount())
		for i := range components {
			cu, _ := use.Composite.ComponentAt(i + 1)
			components[i] = buildElementValue("", cu.Element, schema.NewUsage(cu.Element, cu.Usage), pos.WithComponent(i+1))
		}
		return x12.NewCompositeVal(use.Composite, usage, pos, components)
	}
	usage := schema.NewRepeatingUsage(use.Element, use.Usage, use.Repeat)
	return buildElementValue("", use.Element, usage, pos)
}

func defRefForUse(use schema.ElementUse, pos x12.Position) string {
	def := use.Definition()
	if def == nil {
		return "element"
	}
	return def.DefID()
}

// buildSegmentVal builds a SegmentVal from a SegmentTok against def.
func buildSegmentVal(tok tokenize.SegmentTok, def *schema.SegmentDef, errs *[]*StructuralError) *x12.SegmentVal {
	slots := make([]x12.ElementSlot, def.ElementCount())
	for i := range slots {
		position := i + 1
		use, err := def.ElementAt(position)
		if err != nil {
			continue
		}
		var elemTok *tokenize.ElementTok
		if position-1 < len(tok.Elements) {
			elemTok = &tok.Elements[position-1]
		}
		slots[i] = buildSlot(use, elemTok, tok.Position.WithElement(position), errs)
	}
	return x12.NewSegmentVal(def, tok.Position, slots)
}
