package parse

import (
	"github.com/dshills/gox12/schema"
	"github.com/dshills/gox12/tokenize"
	"github.com/dshills/gox12/x12"
)

// cursor walks a []tokenize.SegmentTok one segment at a time.
type cursor struct {
	toks []tokenize.SegmentTok
	pos  int
}

func (c *cursor) peek() (tokenize.SegmentTok, bool) {
	if c.pos >= len(c.toks) {
		return tokenize.SegmentTok{}, false
	}
	return c.toks[c.pos], true
}

func (c *cursor) next() {
	c.pos++
}

// openFrame is one level of the zipper stack: a schema.ChildHolder (a
// loop or a transaction set's body), the position currently under
// consideration, per-position occurrence counts, and the Node children
// matched so far at this level.
type openFrame struct {
	holder   schema.ChildHolder
	loopDef  *schema.LoopDef // non-nil when this frame is a nested loop (nil for the transaction-set body root)
	cursor   int
	counts   map[int]int
	children []x12.Node
	iteration int
}

func newFrame(holder schema.ChildHolder, loopDef *schema.LoopDef, iteration int) *openFrame {
	return &openFrame{holder: holder, loopDef: loopDef, cursor: 1, counts: map[int]int{}, iteration: iteration}
}

// parseBody drives the five placement rules (spec.md §4.6) over a
// transaction set's declared body, descending into nested loops as
// needed, until the next token is one of stopIDs (a trailer segment id
// belonging to an enclosing level) or the token stream is exhausted.
// It returns the matched top-level children in declared order.
func parseBody(root schema.ChildHolder, toks *cursor, stopIDs map[string]bool, errs *[]*StructuralError) []x12.Node {
	stack := []*openFrame{newFrame(root, nil, 0)}

	for {
		tok, ok := toks.peek()
		if !ok || stopIDs[tok.ID] {
			break
		}

		top := stack[len(stack)-1]
		child, err := top.holder.ChildAt(top.cursor)
		if err != nil {
			// Cursor has run off the end of this level's declared children.
			if len(stack) == 1 {
				*errs = append(*errs, unexpectedSegment(tok.ID, tok.Position))
				toks.next()
				continue
			}
			stack = closeTopFrame(stack, errs)
			continue
		}

		// Rule 1: same child, another repetition. Else close: when this
		// position's own repeat bound is exhausted and a parent frame is
		// open, close this frame instead of flagging the token as an
		// overflow — the parent may be able to open a fresh loop iteration
		// for it (Rule 3).
		if child.FirstSegmentID() == tok.ID && child.Kind == schema.ChildSegment {
			if child.Repeat.Allows(top.counts[top.cursor]) {
				top.children = append(top.children, buildSegmentVal(tok, child.Segment, errs))
				top.counts[top.cursor]++
				toks.next()
				continue
			}
			if len(stack) > 1 {
				stack = closeTopFrame(stack, errs)
				continue
			}
			*errs = append(*errs, tooManyRepetitions(child.Segment.ID, tok.Position))
			toks.next()
			continue
		}

		// Rule 3: open a new loop child whose first segment matches.
		if child.Kind == schema.ChildLoop && child.FirstSegmentID() == tok.ID {
			if child.Repeat.Allows(top.counts[top.cursor]) {
				iteration := top.counts[top.cursor] + 1
				top.counts[top.cursor]++
				stack = append(stack, newFrame(child.Loop, child.Loop, iteration))
				continue
			}
			*errs = append(*errs, tooManyRepetitions(child.Loop.ID, tok.Position))
			toks.next()
			continue
		}

		// Rule 2: advance past a satisfied child, or past an unsatisfied
		// Mandatory one (reporting it) when a later child at this level
		// accepts the token.
		satisfied := childSatisfied(child, top.counts[top.cursor])
		later := false
		for p := top.cursor + 1; !satisfied && p <= top.holder.ChildCount(); p++ {
			if cu, err := top.holder.ChildAt(p); err == nil && cu.FirstSegmentID() == tok.ID {
				later = true
				break
			}
		}
		if satisfied || later {
			if !satisfied {
				*errs = append(*errs, missingMandatory(child.Definition().DefID(), tok.Position))
			}
			top.cursor++
			continue
		}

		// Rule 4: close the current frame and retry against the parent.
		if len(stack) == 1 {
			*errs = append(*errs, unexpectedSegment(tok.ID, tok.Position))
			toks.next()
			continue
		}
		stack = closeTopFrame(stack, errs)
	}

	// Stream ended or a stop id was reached with frames still open: close
	// every nested loop frame, checking its remaining mandatory children,
	// and fold its Node into its parent.
	for len(stack) > 1 {
		stack = closeTopFrame(stack, errs)
	}
	checkRemainingMandatory(stack[0], errs)
	return stack[0].children
}

// childSatisfied reports whether a child position may be advanced past:
// a Mandatory child needs at least one occurrence; every other
// requirement is satisfiable with zero.
func childSatisfied(child schema.ChildUse, count int) bool {
	if child.Usage.Required() {
		return count >= 1
	}
	return true
}

// closeTopFrame pops the innermost frame, reports any mandatory children
// it never satisfied, wraps it into a LoopVal, and appends that Node to
// its new parent (the frame now on top of the stack).
func closeTopFrame(stack []*openFrame, errs *[]*StructuralError) []*openFrame {
	top := stack[len(stack)-1]
	checkRemainingMandatory(top, errs)
	parent := stack[len(stack)-2]
	if top.loopDef != nil {
		pos := x12.Position{}
		if len(top.children) > 0 {
			pos = top.children[0].Position()
		}
		parent.children = append(parent.children, x12.NewLoopVal(top.loopDef, pos, top.iteration, top.children))
	}
	return stack[:len(stack)-1]
}

// checkRemainingMandatory emits MissingMandatory for every declared child
// position from the frame's current cursor onward that is Mandatory and
// was never matched.
func checkRemainingMandatory(frame *openFrame, errs *[]*StructuralError) {
	for pos := frame.cursor; pos <= frame.holder.ChildCount(); pos++ {
		child, err := frame.holder.ChildAt(pos)
		if err != nil {
			continue
		}
		if child.Usage.Required() && frame.counts[pos] == 0 {
			*errs = append(*errs, missingMandatory(child.Definition().DefID(), x12.Position{}))
		}
	}
}
