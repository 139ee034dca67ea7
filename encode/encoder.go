package encode

import (
	"strings"

	"github.com/dshills/gox12/x12"
)

// Writer renders a constructed tree back to wire bytes.
type Writer interface {
	// Write renders tree under its own Separators.
	Write(tree *x12.InterchangeVal) ([]byte, error)
}

type writer struct {
	config encoderConfig
}

// New creates a Writer configured by opts.
func New(opts ...EncoderOption) Writer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &writer{config: cfg}
}

func (w *writer) Write(tree *x12.InterchangeVal) ([]byte, error) {
	sep := tree.Separators()
	var sb strings.Builder
	for _, node := range tree.Children() {
		w.writeNode(&sb, node, sep)
	}
	return []byte(sb.String()), nil
}

func (w *writer) writeNode(sb *strings.Builder, node x12.Node, sep x12.Separators) {
	if seg, ok := node.(*x12.SegmentVal); ok {
		w.writeSegment(sb, seg, sep)
		return
	}
	for _, child := range node.Children() {
		w.writeNode(sb, child, sep)
	}
}

func (w *writer) writeSegment(sb *strings.Builder, seg *x12.SegmentVal, sep x12.Separators) {
	fields := make([]string, seg.ElementCount())
	for i := 0; i < seg.ElementCount(); i++ {
		slot, err := seg.Element(i + 1)
		if err != nil {
			continue
		}
		fields[i] = renderSlot(slot, sep)
	}

	if w.config.omitTrailingEmpty {
		last := len(fields)
		for last > 0 && fields[last-1] == "" {
			last--
		}
		fields = fields[:last]
	}

	sb.WriteString(seg.ID())
	for _, f := range fields {
		sb.WriteByte(sep.Element)
		sb.WriteString(f)
	}
	sb.WriteByte(sep.Segment)
}

func renderSlot(slot x12.ElementSlot, sep x12.Separators) string {
	reps := make([]string, len(slot.Occurrences))
	for i, occ := range slot.Occurrences {
		reps[i] = renderOccurrence(occ, sep)
	}
	return strings.Join(reps, string(sep.Repetition))
}

func renderOccurrence(occ x12.Occurrence, sep x12.Separators) string {
	switch v := occ.(type) {
	case *x12.CompositeVal:
		parts := make([]string, v.ComponentCount())
		for i := 0; i < v.ComponentCount(); i++ {
			comp, err := v.Component(i + 1)
			if err != nil {
				continue
			}
			parts[i] = comp.ToWire(true)
		}
		return strings.Join(parts, string(sep.Component))
	case x12.ElementValue:
		return v.ToWire(true)
	default:
		return ""
	}
}
