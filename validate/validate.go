// Package validate re-checks a constructed tree against its schema after
// the fact: required-ness, repeat-count bounds, and element kind/length
// conformance. It never evaluates business rules -- only the structural
// and type constraints a schema.Catalog declares. A tree built by hand
// through the x12 package's constructors, rather than produced by the
// parse package's placement algorithm, has had no chance to run through
// that algorithm's own checks; this package is the standalone pass that
// gives it one.
package validate

import (
	"fmt"

	"github.com/dshills/gox12/schema"
	"github.com/dshills/gox12/x12"
)

// ValidationError reports one structural or type nonconformance found
// while walking a tree.
type ValidationError struct {
	Path    string
	Kind    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Kind, e.Message)
}

// ValidationResult is the outcome of validating a tree.
type ValidationResult interface {
	Valid() bool
	Errors() []ValidationError
}

type validationResult struct {
	errors []ValidationError
}

func (r *validationResult) Valid() bool                  { return len(r.errors) == 0 }
func (r *validationResult) Errors() []ValidationError {
	out := make([]ValidationError, len(r.errors))
	copy(out, r.errors)
	return out
}

// Validator walks a constructed tree and reports every structural or
// type nonconformance it finds, continuing past the first failure so a
// caller sees the whole picture in one pass.
type Validator interface {
	ValidateInterchange(tree *x12.InterchangeVal) ValidationResult
}

type validator struct {
	cfg validatorConfig
}

// New builds a Validator.
func New(opts ...Option) Validator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &validator{cfg: cfg}
}

func (v *validator) ValidateInterchange(tree *x12.InterchangeVal) ValidationResult {
	result := &validationResult{}
	if tree == nil {
		result.errors = append(result.errors, ValidationError{Path: "ISA", Kind: "nil-tree", Message: "interchange is nil"})
		return result
	}

	if tree.Header() == nil {
		result.errors = append(result.errors, ValidationError{Path: "ISA", Kind: "missing-mandatory", Message: "interchange header is absent"})
	} else {
		result.errors = append(result.errors, v.validateSegment("ISA", tree.Header())...)
	}
	if tree.Trailer() == nil {
		result.errors = append(result.errors, ValidationError{Path: "IEA", Kind: "missing-mandatory", Message: "interchange trailer is absent"})
	} else {
		result.errors = append(result.errors, v.validateSegment("IEA", tree.Trailer())...)
	}

	for gi, g := range tree.FunctionalGroups() {
		path := fmt.Sprintf("GS[%d]", gi+1)
		result.errors = append(result.errors, v.validateFunctionalGroup(path, g)...)
	}

	v.cfg.logger.Debug().Int("issues", len(result.errors)).Msg("validate: interchange validated")
	return result
}

func (v *validator) validateFunctionalGroup(path string, g *x12.FunctionalGroupVal) []ValidationError {
	var errs []ValidationError
	if g.Header() == nil {
		errs = append(errs, ValidationError{Path: path, Kind: "missing-mandatory", Message: "functional group header is absent"})
	} else {
		errs = append(errs, v.validateSegment(path+".GS", g.Header())...)
	}
	if g.Trailer() == nil {
		errs = append(errs, ValidationError{Path: path, Kind: "missing-mandatory", Message: "functional group trailer is absent"})
	} else {
		errs = append(errs, v.validateSegment(path+".GE", g.Trailer())...)
	}
	for ti, ts := range g.TransactionSets() {
		tsPath := fmt.Sprintf("%s.ST[%d]", path, ti+1)
		errs = append(errs, v.validateTransactionSet(tsPath, ts)...)
	}
	return errs
}

func (v *validator) validateTransactionSet(path string, ts *x12.TransactionSetVal) []ValidationError {
	var errs []ValidationError
	if ts.Header() == nil {
		errs = append(errs, ValidationError{Path: path, Kind: "missing-mandatory", Message: "transaction set header is absent"})
	} else {
		errs = append(errs, v.validateSegment(path+".ST", ts.Header())...)
	}
	if ts.Trailer() == nil {
		errs = append(errs, ValidationError{Path: path, Kind: "missing-mandatory", Message: "transaction set trailer is absent"})
	} else {
		errs = append(errs, v.validateSegment(path+".SE", ts.Trailer())...)
	}
	if ts.Def() != nil {
		errs = append(errs, v.validateChildren(path, ts.Def(), ts.Body())...)
	}
	return errs
}

// validateChildren checks that every declared child position in holder
// is satisfied by the usage-count found among nodes, and recurses into
// each present loop/segment node.
func (v *validator) validateChildren(path string, holder schema.ChildHolder, nodes []x12.Node) []ValidationError {
	var errs []ValidationError
	for pos := 1; pos <= holder.ChildCount(); pos++ {
		cu, err := holder.ChildAt(pos)
		if err != nil {
			continue
		}
		count := 0
		for _, n := range nodes {
			if matchesChildUse(n, cu) {
				count++
			}
		}
		if cu.Usage.Required() && count == 0 {
			errs = append(errs, ValidationError{
				Path:    path,
				Kind:    "missing-mandatory",
				Message: fmt.Sprintf("%s is mandatory but absent", cu.FirstSegmentID()),
			})
		}
		if cu.Usage.Forbidden() && count > 0 {
			errs = append(errs, ValidationError{
				Path:    path,
				Kind:    "unexpected",
				Message: fmt.Sprintf("%s is not used but present", cu.FirstSegmentID()),
			})
		}
		if max, bounded := cu.Repeat.Max(); bounded && count > max {
			errs = append(errs, ValidationError{
				Path:    path,
				Kind:    "too-many-repetitions",
				Message: fmt.Sprintf("%s occurs %d times, maximum %d", cu.FirstSegmentID(), count, max),
			})
		}
	}

	iteration := map[string]int{}
	for _, n := range nodes {
		switch node := n.(type) {
		case *x12.SegmentVal:
			errs = append(errs, v.validateSegment(path+"."+node.ID(), node)...)
		case *x12.LoopVal:
			iteration[node.Def().ID]++
			loopPath := fmt.Sprintf("%s.%s[%d]", path, node.Def().ID, iteration[node.Def().ID])
			errs = append(errs, v.validateChildren(loopPath, node.Def(), node.Children())...)
		}
	}
	return errs
}

func matchesChildUse(node x12.Node, cu schema.ChildUse) bool {
	switch cu.Kind {
	case schema.ChildSegment:
		seg, ok := node.(*x12.SegmentVal)
		return ok && seg.Def() == cu.Segment
	case schema.ChildLoop:
		loop, ok := node.(*x12.LoopVal)
		return ok && loop.Def() == cu.Loop
	default:
		return false
	}
}

func (v *validator) validateSegment(path string, seg *x12.SegmentVal) []ValidationError {
	var errs []ValidationError
	def := seg.Def()
	if def == nil {
		return errs
	}
	for pos := 1; pos <= def.ElementCount(); pos++ {
		eu, err := def.ElementAt(pos)
		if err != nil {
			continue
		}
		slot, slotErr := seg.Element(pos)
		elemPath := fmt.Sprintf("%s%02d", path, pos)
		if slotErr != nil || slot.Empty() {
			if eu.Usage.Required() {
				errs = append(errs, ValidationError{Path: elemPath, Kind: "missing-mandatory", Message: "element is mandatory but absent or empty"})
			}
			continue
		}
		if eu.Usage.Forbidden() {
			errs = append(errs, ValidationError{Path: elemPath, Kind: "unexpected", Message: "element is not used but present"})
			continue
		}
		for _, occ := range slot.Occurrences {
			errs = append(errs, occurrenceErrors(elemPath, occ)...)
		}
	}
	return errs
}

func occurrenceErrors(path string, occ x12.Occurrence) []ValidationError {
	switch v := occ.(type) {
	case *x12.CompositeVal:
		var errs []ValidationError
		for i := 1; i <= v.ComponentCount(); i++ {
			comp, err := v.Component(i)
			if err != nil {
				continue
			}
			errs = append(errs, occurrenceErrors(fmt.Sprintf("%s-%d", path, i), comp)...)
		}
		return errs
	case x12.ElementValue:
		var errs []ValidationError
		if v.Invalid() {
			errs = append(errs, ValidationError{Path: path, Kind: "invalid-value", Message: fmt.Sprintf("unparseable value %q", v.Raw())})
		}
		if v.TooLong() {
			errs = append(errs, ValidationError{Path: path, Kind: "too-long", Message: "value exceeds declared maximum length"})
		}
		if v.TooShort() {
			errs = append(errs, ValidationError{Path: path, Kind: "too-short", Message: "value is shorter than declared minimum length"})
		}
		return errs
	default:
		return nil
	}
}
