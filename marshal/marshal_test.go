package marshal

import (
	"errors"
	"testing"
	"time"

	"github.com/dshills/gox12/schema"
	"github.com/dshills/gox12/x12"
)

func mustElem(t *testing.T, id string, minLen, maxLen int, kind schema.ElementKind, precision int) *schema.ElementDef {
	t.Helper()
	def, err := schema.NewElementDef(id, id, minLen, maxLen, kind, precision, nil)
	if err != nil {
		t.Fatalf("NewElementDef(%s): %v", id, err)
	}
	return def
}

func refDict(t *testing.T) *schema.SegmentDict {
	t.Helper()
	ref := &schema.SegmentDef{
		ID: "REF",
		Elements: []schema.ElementUse{
			{Position: 1, Element: mustElem(t, "128", 1, 3, schema.KindIdentifier, 0), Usage: schema.Mandatory, Repeat: schema.Bounded(1)},
			{Position: 2, Element: mustElem(t, "127", 1, 30, schema.KindString, 0), Usage: schema.Optional, Repeat: schema.Bounded(1)},
		},
	}
	dtm := &schema.SegmentDef{
		ID: "DTM",
		Elements: []schema.ElementUse{
			{Position: 1, Element: mustElem(t, "374", 3, 3, schema.KindIdentifier, 0), Usage: schema.Mandatory, Repeat: schema.Bounded(1)},
			{Position: 2, Element: mustElem(t, "373", 8, 8, schema.KindDate, 0), Usage: schema.Optional, Repeat: schema.Bounded(1)},
		},
	}
	n4 := &schema.SegmentDef{
		ID: "N4",
		Elements: []schema.ElementUse{
			{
				Position: 1,
				Composite: &schema.CompositeDef{
					ID: "CityState",
					Components: []schema.CompositeComponentUse{
						{Position: 1, Element: mustElem(t, "19", 1, 30, schema.KindString, 0), Usage: schema.Mandatory},
						{Position: 2, Element: mustElem(t, "156", 2, 2, schema.KindString, 0), Usage: schema.Mandatory},
					},
				},
				Usage:  schema.Mandatory,
				Repeat: schema.Bounded(1),
			},
		},
	}
	return &schema.SegmentDict{
		Version:  "test",
		Segments: map[string]*schema.SegmentDef{"REF": ref, "DTM": dtm, "N4": n4},
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		desc    string
		tag     string
		wantErr error
		want    tagInfo
	}{
		{desc: "simple element", tag: "REF.1", want: tagInfo{segment: "REF", position: 1}},
		{desc: "component", tag: "N4.1.2", want: tagInfo{segment: "N4", position: 1, component: 2}},
		{desc: "omitempty", tag: "REF.2,omitempty", want: tagInfo{segment: "REF", position: 2, omitEmpty: true}},
		{desc: "ignore", tag: "-", want: tagInfo{ignore: true}},
		{desc: "empty", tag: "", wantErr: ErrEmptyTag},
		{desc: "no position", tag: "REF", wantErr: ErrInvalidTagFormat},
		{desc: "too many segments", tag: "REF.1.2.3", wantErr: ErrInvalidTagFormat},
		{desc: "non-numeric position", tag: "REF.x", wantErr: ErrInvalidTagFormat},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := parseTag(tt.tag)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseTag(%q) error = %v, want %v", tt.tag, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTag(%q): %v", tt.tag, err)
			}
			if *got != tt.want {
				t.Errorf("parseTag(%q) = %+v, want %+v", tt.tag, *got, tt.want)
			}
		})
	}
}

type refStruct struct {
	Qualifier string `x12:"REF.1"`
	Value     string `x12:"REF.2,omitempty"`
	Ignored   string `x12:"-"`
	Untagged  string
}

func TestMarshal_SimpleElements(t *testing.T) {
	dict := refDict(t)
	v := refStruct{Qualifier: "CO", Value: "CONTRACT123"}

	segs, err := Marshal(dict, &v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	seg, ok := segs["REF"]
	if !ok {
		t.Fatal("Marshal did not produce a REF segment")
	}
	slot, err := seg.Element(1)
	if err != nil {
		t.Fatalf("Element(1): %v", err)
	}
	occ, err := slot.First()
	if err != nil {
		t.Fatalf("First(): %v", err)
	}
	if got := occ.(x12.ElementValue).ToWire(true); got != "CO" {
		t.Errorf("REF01 = %q, want CO", got)
	}
}

func TestMarshal_OmitEmpty(t *testing.T) {
	dict := refDict(t)
	v := refStruct{Qualifier: "CO", Value: ""}

	segs, err := Marshal(dict, &v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	slot, err := segs["REF"].Element(2)
	if err != nil {
		t.Fatalf("Element(2): %v", err)
	}
	if !slot.Empty() {
		t.Error("an omitempty field left blank should produce an Empty slot")
	}
}

func TestMarshal_NilPointer(t *testing.T) {
	dict := refDict(t)
	var v *refStruct
	if _, err := Marshal(dict, v); !errors.Is(err, ErrNilPointer) {
		t.Errorf("Marshal(nil pointer) error = %v, want ErrNilPointer", err)
	}
}

func TestMarshal_NotStruct(t *testing.T) {
	dict := refDict(t)
	if _, err := Marshal(dict, 5); !errors.Is(err, ErrNotStructValue) {
		t.Errorf("Marshal(5) error = %v, want ErrNotStructValue", err)
	}
}

type n4Struct struct {
	City  string `x12:"N4.1.1"`
	State string `x12:"N4.1.2"`
}

func TestMarshal_CompositeComponents(t *testing.T) {
	dict := refDict(t)
	v := n4Struct{City: "Springfield", State: "IL"}

	segs, err := Marshal(dict, &v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	slot, err := segs["N4"].Element(1)
	if err != nil {
		t.Fatalf("Element(1): %v", err)
	}
	occ, err := slot.First()
	if err != nil {
		t.Fatalf("First(): %v", err)
	}
	comp, ok := occ.(*x12.CompositeVal)
	if !ok {
		t.Fatal("N4's first element should be a composite")
	}
	city, err := comp.Component(1)
	if err != nil {
		t.Fatalf("Component(1): %v", err)
	}
	state, err := comp.Component(2)
	if err != nil {
		t.Fatalf("Component(2): %v", err)
	}
	if got := city.ToWire(true); got != "Springfield" {
		t.Errorf("city component = %q, want Springfield", got)
	}
	if got := state.ToWire(true); got != "IL" {
		t.Errorf("state component = %q, want IL", got)
	}
}

type dtmStruct struct {
	Qualifier string    `x12:"DTM.1"`
	Date      time.Time `x12:"DTM.2"`
}

func TestMarshal_UnmarshalRoundTrip_Date(t *testing.T) {
	dict := refDict(t)
	want := dtmStruct{Qualifier: "007", Date: time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)}

	segs, err := Marshal(dict, &want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got dtmStruct
	if err := Unmarshal(SegmentSet(segs), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Qualifier != want.Qualifier {
		t.Errorf("Qualifier = %q, want %q", got.Qualifier, want.Qualifier)
	}
	if !got.Date.Equal(want.Date) {
		t.Errorf("Date = %v, want %v", got.Date, want.Date)
	}
}

func TestUnmarshal_NotPointer(t *testing.T) {
	if err := Unmarshal(SegmentSet{}, refStruct{}); !errors.Is(err, ErrNotPointer) {
		t.Errorf("Unmarshal(non-pointer) error = %v, want ErrNotPointer", err)
	}
}

func TestUnmarshal_NilPointer(t *testing.T) {
	var v *refStruct
	if err := Unmarshal(SegmentSet{}, v); !errors.Is(err, ErrNilPointer) {
		t.Errorf("Unmarshal(nil pointer) error = %v, want ErrNilPointer", err)
	}
}

func TestUnmarshal_MissingSegmentLeavesZeroValue(t *testing.T) {
	var v refStruct
	if err := Unmarshal(SegmentSet{}, &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.Qualifier != "" {
		t.Errorf("Qualifier = %q, want empty when the segment is absent", v.Qualifier)
	}
}
