package catalog

import "github.com/dshills/gox12/schema"

var beg850Def = &schema.SegmentDef{
	ID:      "BEG",
	Name:    "Beginning Segment for Purchase Order",
	Purpose: "To indicate the beginning of the Purchase Order Transaction Set and transmit identifying numbers and dates",
	Elements: []schema.ElementUse{
		eu(1, elem("306"), schema.Mandatory),
		eu(2, elem("36"), schema.Mandatory),
		eu(3, elem("324"), schema.Mandatory),
		eu(4, elem("328"), schema.Optional),
		eu(5, elem("373"), schema.Mandatory),
	},
}

var ref850Def = &schema.SegmentDef{
	ID:      "REF",
	Name:    "Reference Identification",
	Purpose: "To specify identifying information",
	Elements: []schema.ElementUse{
		eu(1, elem("128"), schema.Mandatory),
		eu(2, elem("127"), schema.Optional),
	},
}

var n1Def = &schema.SegmentDef{
	ID:      "N1",
	Name:    "Name",
	Purpose: "To identify a party by type of organization, name, and code",
	Elements: []schema.ElementUse{
		eu(1, elem("98"), schema.Mandatory),
		eu(2, elem("93"), schema.Optional),
		eu(3, elem("66"), schema.Optional),
		eu(4, elem("67"), schema.Optional),
	},
}

var n3Def = &schema.SegmentDef{
	ID:      "N3",
	Name:    "Address Information",
	Purpose: "To specify the location of the named party",
	Elements: []schema.ElementUse{
		eu(1, elem("166"), schema.Mandatory),
		eu(2, elem("166"), schema.Optional),
	},
}

var n4Def = &schema.SegmentDef{
	ID:      "N4",
	Name:    "Geographic Location",
	Purpose: "To specify the geographic place of the named party",
	Elements: []schema.ElementUse{
		eu(1, elem("19"), schema.Optional),
		eu(2, elem("156"), schema.Optional),
		eu(3, elem("116"), schema.Optional),
	},
}

var po1Def = &schema.SegmentDef{
	ID:      "PO1",
	Name:    "Baseline Item Data",
	Purpose: "To specify basic and most frequently used line item data",
	Elements: []schema.ElementUse{
		eu(1, elem("350"), schema.Optional),
		eu(2, elem("330"), schema.Mandatory),
		eu(3, elem("355"), schema.Mandatory),
		eu(4, elem("212"), schema.Mandatory),
		eu(5, elem("235"), schema.Optional),
		eu(6, elem("234"), schema.Optional),
	},
}

var pid850Def = &schema.SegmentDef{
	ID:      "PID",
	Name:    "Product/Item Description",
	Purpose: "To describe a product or process in coded or free-form format",
	Elements: []schema.ElementUse{
		eu(1, elem("349") , schema.Mandatory),
		eu(2, elem("352"), schema.Optional),
	},
}

var ctt850Def = &schema.SegmentDef{
	ID:      "CTT",
	Name:    "Transaction Totals",
	Purpose: "To transmit a hash total as a control over line-item detail",
	Elements: []schema.ElementUse{
		eu(1, elem("38"), schema.Mandatory),
		eu(2, elem("347"), schema.Optional),
	},
}

// n1LoopDef is the N1/N3/N4 name loop: N1 identifies the party, N3/N4
// are its optional address.
var n1LoopDef = &schema.LoopDef{
	ID:   "N1",
	Name: "Name Loop",
	Children: []schema.ChildUse{
		{Position: 1, Kind: schema.ChildSegment, Segment: n1Def, Usage: schema.Mandatory, Repeat: schema.Bounded(1)},
		{Position: 2, Kind: schema.ChildSegment, Segment: n3Def, Usage: schema.Optional, Repeat: schema.Bounded(1)},
		{Position: 3, Kind: schema.ChildSegment, Segment: n4Def, Usage: schema.Optional, Repeat: schema.Bounded(1)},
	},
}

// po1LoopDef is the line-item loop: one PO1 with an optional PID.
var po1LoopDef = &schema.LoopDef{
	ID:   "PO1",
	Name: "Baseline Item Data Loop",
	Children: []schema.ChildUse{
		{Position: 1, Kind: schema.ChildSegment, Segment: po1Def, Usage: schema.Mandatory, Repeat: schema.Bounded(1)},
		{Position: 2, Kind: schema.ChildSegment, Segment: pid850Def, Usage: schema.Optional, Repeat: schema.Bounded(1)},
	},
}

var po850Def = &schema.TransactionSetDef{
	ID:      "850",
	Name:    "Purchase Order",
	Header:  stDef,
	Trailer: seDef,
	Body: []schema.ChildUse{
		{Position: 1, Kind: schema.ChildSegment, Segment: beg850Def, Usage: schema.Mandatory, Repeat: schema.Bounded(1)},
		{Position: 2, Kind: schema.ChildSegment, Segment: ref850Def, Usage: schema.Optional, Repeat: schema.Unbounded()},
		{Position: 3, Kind: schema.ChildLoop, Loop: n1LoopDef, Usage: schema.Optional, Repeat: schema.Unbounded()},
		{Position: 4, Kind: schema.ChildLoop, Loop: po1LoopDef, Usage: schema.Mandatory, Repeat: schema.Unbounded()},
		{Position: 5, Kind: schema.ChildSegment, Segment: ctt850Def, Usage: schema.Optional, Repeat: schema.Bounded(1)},
	},
}
