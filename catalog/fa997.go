package catalog

import "github.com/dshills/gox12/schema"

var ak1Def = &schema.SegmentDef{
	ID:      "AK1",
	Name:    "Functional Group Response Header",
	Purpose: "To start acknowledgment of a functional group",
	Elements: []schema.ElementUse{
		eu(1, elem("479"), schema.Mandatory),
		eu(2, elem("28"), schema.Mandatory),
	},
}

var ak2Def = &schema.SegmentDef{
	ID:      "AK2",
	Name:    "Transaction Set Response Header",
	Purpose: "To start acknowledgment of a single transaction set",
	Elements: []schema.ElementUse{
		eu(1, elem("143"), schema.Mandatory),
		eu(2, elem("329"), schema.Mandatory),
	},
}

var ak5Def = &schema.SegmentDef{
	ID:      "AK5",
	Name:    "Transaction Set Response Trailer",
	Purpose: "To acknowledge acceptance or rejection of a transaction set",
	Elements: []schema.ElementUse{
		eu(1, elem("587"), schema.Mandatory),
	},
}

var ak9Def = &schema.SegmentDef{
	ID:      "AK9",
	Name:    "Functional Group Response Trailer",
	Purpose: "To acknowledge acceptance or rejection of a functional group and report counts",
	Elements: []schema.ElementUse{
		eu(1, elem("587"), schema.Mandatory),
		eu(2, elem("97"), schema.Mandatory),
		eu(3, elem("97"), schema.Mandatory),
		eu(4, elem("1"), schema.Mandatory),
	},
}

// ak2LoopDef pairs each acknowledged transaction set's AK2 header with
// its AK5 disposition.
var ak2LoopDef = &schema.LoopDef{
	ID:   "AK2",
	Name: "Transaction Set Response Loop",
	Children: []schema.ChildUse{
		{Position: 1, Kind: schema.ChildSegment, Segment: ak2Def, Usage: schema.Mandatory, Repeat: schema.Bounded(1)},
		{Position: 2, Kind: schema.ChildSegment, Segment: ak5Def, Usage: schema.Mandatory, Repeat: schema.Bounded(1)},
	},
}

var fa997Def = &schema.TransactionSetDef{
	ID:      "997",
	Name:    "Functional Acknowledgment",
	Header:  stDef,
	Trailer: seDef,
	Body: []schema.ChildUse{
		{Position: 1, Kind: schema.ChildSegment, Segment: ak1Def, Usage: schema.Mandatory, Repeat: schema.Bounded(1)},
		{Position: 2, Kind: schema.ChildLoop, Loop: ak2LoopDef, Usage: schema.Optional, Repeat: schema.Unbounded()},
		{Position: 3, Kind: schema.ChildSegment, Segment: ak9Def, Usage: schema.Mandatory, Repeat: schema.Bounded(1)},
	},
}
