package catalog

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_InterchangeDef(t *testing.T) {
	cat := New()

	def, err := cat.InterchangeDef("00501")
	if err != nil {
		t.Fatalf("InterchangeDef(00501): %v", err)
	}
	if def.Header.ID != "ISA" || def.Trailer.ID != "IEA" {
		t.Errorf("InterchangeDef header/trailer = %s/%s, want ISA/IEA", def.Header.ID, def.Trailer.ID)
	}

	if _, err := cat.InterchangeDef("00401"); err == nil {
		t.Error("InterchangeDef(00401) should error: unknown version")
	}
}

func TestNew_FunctionalGroupDef(t *testing.T) {
	cat := New()

	po, err := cat.FunctionalGroupDef("00501", "PO")
	if err != nil {
		t.Fatalf("FunctionalGroupDef(PO): %v", err)
	}
	if po.TransactionSetCode != "850" {
		t.Errorf("PO group TransactionSetCode = %q, want 850", po.TransactionSetCode)
	}

	fa, err := cat.FunctionalGroupDef("00501", "FA")
	if err != nil {
		t.Fatalf("FunctionalGroupDef(FA): %v", err)
	}
	if fa.TransactionSetCode != "997" {
		t.Errorf("FA group TransactionSetCode = %q, want 997", fa.TransactionSetCode)
	}

	if _, err := cat.FunctionalGroupDef("00501", "XX"); err == nil {
		t.Error("FunctionalGroupDef(XX) should error: unknown code")
	}
	if _, err := cat.FunctionalGroupDef("00401", "PO"); err == nil {
		t.Error("FunctionalGroupDef with an unknown version should error")
	}
}

func TestNew_TransactionSetDef(t *testing.T) {
	cat := New()

	po850, err := cat.TransactionSetDef("00501", "850")
	if err != nil {
		t.Fatalf("TransactionSetDef(850): %v", err)
	}
	if po850.Header.ID != "ST" || po850.Trailer.ID != "SE" {
		t.Errorf("850 header/trailer = %s/%s, want ST/SE", po850.Header.ID, po850.Trailer.ID)
	}
	if len(po850.Body) == 0 {
		t.Error("850 should declare at least one body child")
	}

	fa997, err := cat.TransactionSetDef("00501", "997")
	if err != nil {
		t.Fatalf("TransactionSetDef(997): %v", err)
	}
	if len(fa997.Body) != 3 {
		t.Errorf("997 Body len = %d, want 3 (AK1, AK2 loop, AK9)", len(fa997.Body))
	}

	if _, err := cat.TransactionSetDef("00501", "810"); err == nil {
		t.Error("TransactionSetDef(810) should error: not in the sample catalog")
	}
}

func TestNew_SegmentDict(t *testing.T) {
	cat := New()

	dict, err := cat.SegmentDict("00501")
	if err != nil {
		t.Fatalf("SegmentDict: %v", err)
	}
	for _, id := range []string{"ISA", "IEA", "GS", "GE", "ST", "SE", "BEG", "PO1", "AK1", "AK9"} {
		if _, ok := dict.Segments[id]; !ok {
			t.Errorf("SegmentDict missing %q", id)
		}
	}

	if _, err := cat.SegmentDict("00401"); err == nil {
		t.Error("SegmentDict with an unknown version should error")
	}
}

func TestNew_ElementDef(t *testing.T) {
	cat := New()

	if _, err := cat.ElementDef("373"); err != nil {
		t.Errorf("ElementDef(373): %v", err)
	}
	if _, err := cat.ElementDef("NOPE"); err == nil {
		t.Error("ElementDef(NOPE) should error: not in the element table")
	}
}

func TestWithLogger_DoesNotPanic(t *testing.T) {
	cat := New(WithLogger(zerolog.Nop()))
	if _, err := cat.InterchangeDef("bogus"); err == nil {
		t.Error("InterchangeDef(bogus) should still error with a custom logger attached")
	}
}
