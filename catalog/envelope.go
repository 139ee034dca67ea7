package catalog

import "github.com/dshills/gox12/schema"

func eu(pos int, e *schema.ElementDef, req schema.UsageRequirement) schema.ElementUse {
	return schema.ElementUse{Position: pos, Element: e, Usage: req, Repeat: schema.Bounded(1)}
}

var isaDef = &schema.SegmentDef{
	ID:      "ISA",
	Name:    "Interchange Control Header",
	Purpose: "To start and identify an interchange of zero or more functional groups and interchange-related control segments",
	Elements: []schema.ElementUse{
		eu(1, elem("I01"), schema.Mandatory),
		eu(2, elem("I02"), schema.Mandatory),
		eu(3, elem("I03"), schema.Mandatory),
		eu(4, elem("I04"), schema.Mandatory),
		eu(5, elem("I05"), schema.Mandatory),
		eu(6, elem("I06"), schema.Mandatory),
		eu(7, elem("I05"), schema.Mandatory),
		eu(8, elem("I07"), schema.Mandatory),
		eu(9, elem("I08"), schema.Mandatory),
		eu(10, elem("I09"), schema.Mandatory),
		eu(11, elem("I65"), schema.Mandatory),
		eu(12, elem("I11"), schema.Mandatory),
		eu(13, elem("I12"), schema.Mandatory),
		eu(14, elem("I13"), schema.Mandatory),
		eu(15, elem("I14"), schema.Mandatory),
		eu(16, elem("I15"), schema.Mandatory),
	},
}

var ieaDef = &schema.SegmentDef{
	ID:      "IEA",
	Name:    "Interchange Control Trailer",
	Purpose: "To define the end of an interchange of zero or more functional groups and interchange-related control segments",
	Elements: []schema.ElementUse{
		eu(1, elem("1"), schema.Mandatory),
		eu(2, elem("I12"), schema.Mandatory),
	},
}

var gsDef = &schema.SegmentDef{
	ID:      "GS",
	Name:    "Functional Group Header",
	Purpose: "To indicate the beginning of a functional group and to provide control information",
	Elements: []schema.ElementUse{
		eu(1, elem("479"), schema.Mandatory),
		eu(2, elem("142"), schema.Mandatory),
		eu(3, elem("124"), schema.Mandatory),
		eu(4, elem("373"), schema.Mandatory),
		eu(5, elem("337"), schema.Mandatory),
		eu(6, elem("28"), schema.Mandatory),
		eu(7, elem("455"), schema.Mandatory),
		eu(8, elem("480"), schema.Mandatory),
	},
}

var geDef = &schema.SegmentDef{
	ID:      "GE",
	Name:    "Functional Group Trailer",
	Purpose: "To indicate the end of a functional group and to provide control information",
	Elements: []schema.ElementUse{
		eu(1, elem("97"), schema.Mandatory),
		eu(2, elem("28"), schema.Mandatory),
	},
}

var stDef = &schema.SegmentDef{
	ID:      "ST",
	Name:    "Transaction Set Header",
	Purpose: "To indicate the start of a transaction set and to assign a control number",
	Elements: []schema.ElementUse{
		eu(1, elem("143"), schema.Mandatory),
		eu(2, elem("329"), schema.Mandatory),
	},
}

var seDef = &schema.SegmentDef{
	ID:      "SE",
	Name:    "Transaction Set Trailer",
	Purpose: "To indicate the end of a transaction set and provide the count of transmitted segments",
	Elements: []schema.ElementUse{
		eu(1, elem("96"), schema.Mandatory),
		eu(2, elem("329"), schema.Mandatory),
	},
}

const sampleVersion = "00501"

var sampleDict = &schema.SegmentDict{
	Version: sampleVersion,
	Segments: map[string]*schema.SegmentDef{
		"ISA": isaDef, "IEA": ieaDef,
		"GS": gsDef, "GE": geDef,
		"ST": stDef, "SE": seDef,
		"BEG": beg850Def, "REF": ref850Def,
		"N1": n1Def, "N3": n3Def, "N4": n4Def,
		"PO1": po1Def, "PID": pid850Def, "CTT": ctt850Def,
		"AK1": ak1Def, "AK2": ak2Def, "AK5": ak5Def, "AK9": ak9Def,
	},
}

var sampleInterchangeDef = &schema.InterchangeDef{
	Version: sampleVersion,
	Header:  isaDef,
	Trailer: ieaDef,
	Dict:    sampleDict,
}

var samplePOGroupDef = &schema.FunctionalGroupDef{
	ID:                 "PO",
	Name:               "Purchase Order",
	Header:             gsDef,
	Trailer:            geDef,
	TransactionSetCode: "850",
}

var sampleFAGroupDef = &schema.FunctionalGroupDef{
	ID:                 "FA",
	Name:               "Functional Acknowledgment",
	Header:             gsDef,
	Trailer:            geDef,
	TransactionSetCode: "997",
}
