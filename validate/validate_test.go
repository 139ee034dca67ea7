package validate

import (
	"testing"

	"github.com/dshills/gox12/catalog"
	"github.com/dshills/gox12/parse"
	"github.com/dshills/gox12/schema"
	"github.com/dshills/gox12/testdata"
	"github.com/dshills/gox12/x12"
)

func mustParseFile(t *testing.T, loader func() ([]byte, error)) *x12.InterchangeVal {
	t.Helper()
	data, err := loader()
	if err != nil {
		t.Fatalf("loading test file: %v", err)
	}
	cat := catalog.New()
	def, err := cat.InterchangeDef("00501")
	if err != nil {
		t.Fatalf("InterchangeDef: %v", err)
	}
	tree, _, err := parse.New().Parse(data, def, cat)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return tree
}

func TestValidateInterchange_WellFormed(t *testing.T) {
	tree := mustParseFile(t, testdata.LoadPO850)

	result := New().ValidateInterchange(tree)
	if !result.Valid() {
		t.Errorf("ValidateInterchange on a well-formed 850 = %v, want Valid", result.Errors())
	}
}

func TestValidateInterchange_MissingMandatorySegment(t *testing.T) {
	tree := mustParseFile(t, testdata.LoadMissingBEG)

	result := New().ValidateInterchange(tree)
	if result.Valid() {
		t.Fatal("ValidateInterchange on an interchange missing BEG should not be Valid")
	}
	found := false
	for _, e := range result.Errors() {
		if e.Kind == "missing-mandatory" {
			found = true
		}
	}
	if !found {
		t.Errorf("Errors() = %v, want a missing-mandatory entry for BEG", result.Errors())
	}
}

func TestValidateInterchange_InvalidNumericValue(t *testing.T) {
	tree := mustParseFile(t, testdata.LoadInvalidNumeric)

	result := New().ValidateInterchange(tree)
	if result.Valid() {
		t.Fatal("ValidateInterchange on an interchange with a non-numeric PO1 price should not be Valid")
	}
	found := false
	for _, e := range result.Errors() {
		if e.Kind == "invalid-value" {
			found = true
		}
	}
	if !found {
		t.Errorf("Errors() = %v, want an invalid-value entry", result.Errors())
	}
}

// TestValidateInterchange_RepeatOverflow hand-builds a transaction set
// whose body carries two occurrences of a segment bounded to one, the
// way a tree constructed directly through the x12 package (bypassing
// the parse package's own placement algorithm, which would have
// rejected the second occurrence outright) might arrive at Validator.
func TestValidateInterchange_RepeatOverflow(t *testing.T) {
	cttDef := &schema.SegmentDef{ID: "CTT"}
	tsDef := &schema.TransactionSetDef{
		ID: "850",
		Body: []schema.ChildUse{
			{Position: 1, Kind: schema.ChildSegment, Segment: cttDef, Usage: schema.Optional, Repeat: schema.Bounded(1)},
		},
	}
	ctt1 := x12.NewSegmentVal(cttDef, x12.Position{}, nil)
	ctt2 := x12.NewSegmentVal(cttDef, x12.Position{}, nil)
	ts := x12.NewTransactionSetVal(tsDef, x12.Position{}, nil, nil, []x12.Node{ctt1, ctt2})
	group := x12.NewFunctionalGroupVal(&schema.FunctionalGroupDef{}, x12.Position{}, nil, nil, []*x12.TransactionSetVal{ts})
	tree := x12.NewInterchangeVal(&schema.InterchangeDef{}, x12.Separators{}, x12.Position{}, nil, nil, []*x12.FunctionalGroupVal{group})

	result := New().ValidateInterchange(tree)
	if result.Valid() {
		t.Fatal("ValidateInterchange on a body with a doubled bounded-1 segment should not be Valid")
	}
	found := false
	for _, e := range result.Errors() {
		if e.Kind == "too-many-repetitions" {
			found = true
		}
	}
	if !found {
		t.Errorf("Errors() = %v, want a too-many-repetitions entry", result.Errors())
	}
}

func TestValidateInterchange_NilTree(t *testing.T) {
	result := New().ValidateInterchange(nil)
	if result.Valid() {
		t.Error("ValidateInterchange(nil) should not be Valid")
	}
}

func TestValidateInterchange_FA997(t *testing.T) {
	tree := mustParseFile(t, testdata.LoadFA997)

	result := New().ValidateInterchange(tree)
	if !result.Valid() {
		t.Errorf("ValidateInterchange on a well-formed 997 = %v, want Valid", result.Errors())
	}
}
