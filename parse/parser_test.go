package parse

import (
	"context"
	"testing"
	"time"

	"github.com/dshills/gox12/catalog"
)

func sampleISA(controlNum string) string {
	return "ISA*00*          *00*          *ZZ*SENDERID       *ZZ*RECEIVERID     *260731*1200*^*00501*" + controlNum + "*0*P*:~"
}

func minimalInterchange() string {
	return sampleISA("000000001") + "\nIEA*0*000000001~\n"
}

func po850Interchange() string {
	return sampleISA("000000002") + "\n" +
		"GS*PO*SENDERID*RECEIVERID*20260731*1200*1*X*005010~\n" +
		"ST*850*0001~\n" +
		"BEG*00*SA*PO0001**20260731~\n" +
		"REF*CO*CONTRACT123~\n" +
		"N1*ST*Acme Warehouse*92*123456789~\n" +
		"N3*100 Main Street~\n" +
		"N4*Springfield*IL*62704~\n" +
		"PO1*1*10*EA*19.99*VP*WIDGET-100~\n" +
		"PID*91*Standard widget, 100 pack~\n" +
		"CTT*1~\n" +
		"SE*10*0001~\n" +
		"GE*1*1~\n" +
		"IEA*1*000000002~\n"
}

func TestParse_MinimalInterchange(t *testing.T) {
	cat := catalog.New()
	def, err := cat.InterchangeDef("00501")
	if err != nil {
		t.Fatalf("InterchangeDef: %v", err)
	}

	p := New()
	tree, errs, err := p.Parse([]byte(minimalInterchange()), def, cat)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("errs = %v, want none", errs)
	}
	if len(tree.FunctionalGroups()) != 0 {
		t.Errorf("FunctionalGroups() len = %d, want 0", len(tree.FunctionalGroups()))
	}
	if tree.Header() == nil || tree.Trailer() == nil {
		t.Error("a minimal interchange should still carry its ISA/IEA envelope")
	}
}

func TestParse_MissingMandatorySegment(t *testing.T) {
	cat := catalog.New()
	def, _ := cat.InterchangeDef("00501")

	p := New()
	_, errs, err := p.Parse([]byte(sampleISA("000000003")+"\n"), def, cat)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(errs) != 1 {
		t.Fatalf("errs = %v, want exactly one MissingMandatory for IEA", errs)
	}
	if errs[0].Kind != KindMissingMandatory || errs[0].DefinitionRef != "IEA" {
		t.Errorf("errs[0] = %+v, want MissingMandatory/IEA", errs[0])
	}
}

func TestParse_PO850_FullTree(t *testing.T) {
	cat := catalog.New()
	def, _ := cat.InterchangeDef("00501")

	p := New()
	tree, errs, err := p.Parse([]byte(po850Interchange()), def, cat)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("errs = %v, want none for a well-formed 850", errs)
	}
	if len(tree.FunctionalGroups()) != 1 {
		t.Fatalf("FunctionalGroups() len = %d, want 1", len(tree.FunctionalGroups()))
	}
	group := tree.FunctionalGroups()[0]
	if len(group.TransactionSets()) != 1 {
		t.Fatalf("TransactionSets() len = %d, want 1", len(group.TransactionSets()))
	}
	ts := group.TransactionSets()[0]
	// BEG, REF, N1 loop (3 segments folded into one loop node), PO1 loop
	// (PO1+PID folded into one), CTT -- five top-level body children.
	if len(ts.Body()) != 5 {
		t.Fatalf("Body() len = %d, want 5", len(ts.Body()))
	}
}

func TestParse_MissingBEG(t *testing.T) {
	cat := catalog.New()
	def, _ := cat.InterchangeDef("00501")

	data := sampleISA("000000004") + "\n" +
		"GS*PO*SENDERID*RECEIVERID*20260731*1200*1*X*005010~\n" +
		"ST*850*0001~\n" +
		"PO1*1*10*EA*19.99*VP*WIDGET-100~\n" +
		"CTT*1~\n" +
		"SE*4*0001~\n" +
		"GE*1*1~\n" +
		"IEA*1*000000004~\n"

	p := New()
	_, errs, err := p.Parse([]byte(data), def, cat)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	found := false
	for _, e := range errs {
		if e.Kind == KindMissingMandatory && e.DefinitionRef == "BEG" {
			found = true
		}
	}
	if !found {
		t.Errorf("errs = %v, want a MissingMandatory naming BEG", errs)
	}
}

func TestParse_RepeatOverflow(t *testing.T) {
	cat := catalog.New()
	def, _ := cat.InterchangeDef("00501")

	data := sampleISA("000000005") + "\n" +
		"GS*PO*SENDERID*RECEIVERID*20260731*1200*1*X*005010~\n" +
		"ST*850*0001~\n" +
		"BEG*00*SA*PO0001**20260731~\n" +
		"PO1*1*10*EA*19.99*VP*WIDGET-100~\n" +
		"CTT*1~\n" +
		"CTT*1~\n" +
		"SE*6*0001~\n" +
		"GE*1*1~\n" +
		"IEA*1*000000005~\n"

	p := New()
	_, errs, err := p.Parse([]byte(data), def, cat)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	found := false
	for _, e := range errs {
		if e.Kind == KindTooManyRepetitions {
			found = true
		}
	}
	if !found {
		t.Errorf("errs = %v, want a TooManyRepetitions for the second CTT", errs)
	}
}

func TestParse_ErrorOrdering(t *testing.T) {
	cat := catalog.New()
	def, _ := cat.InterchangeDef("00501")

	data := sampleISA("000000006") + "\n" +
		"GS*PO*SENDERID*RECEIVERID*20260731*1200*1*X*005010~\n" +
		"ST*850*0001~\n" +
		"PO1*1*10*EA*19.99*VP*WIDGET-100~\n" +
		"CTT*1~\n" +
		"CTT*1~\n" +
		"SE*5*0001~\n" +
		"GE*1*1~\n" +
		"IEA*1*000000006~\n"

	p := New()
	_, errs, err := p.Parse([]byte(data), def, cat)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for i := 1; i < len(errs); i++ {
		if errs[i].Position.SegIndex < errs[i-1].Position.SegIndex {
			t.Errorf("errors out of stream-position order at index %d: %+v then %+v", i, errs[i-1], errs[i])
		}
	}
}

func TestParseContext_CanceledBeforeStart(t *testing.T) {
	cat := catalog.New()
	def, _ := cat.InterchangeDef("00501")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New()
	_, _, err := p.ParseContext(ctx, []byte(minimalInterchange()), def, cat)
	if err == nil {
		t.Error("ParseContext with an already-canceled context should return an error")
	}
}

func TestWithMaxSegments(t *testing.T) {
	cat := catalog.New()
	def, _ := cat.InterchangeDef("00501")

	p := New(WithMaxSegments(2))
	tree, _, err := p.Parse([]byte(po850Interchange()), def, cat)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// Only ISA and GS survive the truncation to two tokens; no IEA means
	// the interchange trailer stays nil.
	if tree.Trailer() != nil {
		t.Error("truncating to 2 segments should leave no IEA trailer")
	}
}

func TestParse_UnknownTransactionSetCode(t *testing.T) {
	cat := catalog.New()
	def, _ := cat.InterchangeDef("00501")

	data := sampleISA("000000007") + "\n" +
		"GS*PO*SENDERID*RECEIVERID*20260731*1200*1*X*005010~\n" +
		"ST*999*0001~\n" +
		"IEA*1*000000007~\n"

	p := New()
	_, errs, err := p.Parse([]byte(data), def, cat)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	found := false
	for _, e := range errs {
		if e.Kind == KindUnexpectedSegment {
			found = true
		}
	}
	if !found {
		t.Errorf("errs = %v, want an UnexpectedSegment for the unknown transaction set code", errs)
	}
}

func TestParse_DeterministicAcrossCalls(t *testing.T) {
	cat := catalog.New()
	def, _ := cat.InterchangeDef("00501")
	p := New()

	data := []byte(po850Interchange())
	tree1, _, err := p.Parse(data, def, cat)
	if err != nil {
		t.Fatalf("Parse (1st): %v", err)
	}
	time.Sleep(time.Millisecond)
	tree2, _, err := p.Parse(data, def, cat)
	if err != nil {
		t.Fatalf("Parse (2nd): %v", err)
	}
	if len(tree1.FunctionalGroups()) != len(tree2.FunctionalGroups()) {
		t.Error("parsing the same bytes twice should yield structurally equal trees")
	}
}
