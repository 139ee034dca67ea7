// Package catalog ships a small, real, internally-consistent sample
// schema.Catalog: the envelope segments every interchange shares
// (ISA/GS/ST/SE/GE/IEA), one complete sample transaction set (an 850
// Purchase Order), and a 997 Functional Acknowledgment. It exists to
// exercise every operation spec.md names end to end without shipping the
// full ANSI ASC X12 dictionary (out of scope, see SPEC_FULL.md).
package catalog

import (
	"fmt"

	"github.com/dshills/gox12/schema"
)

// mustElement builds an ElementDef and panics on InvalidSchemaError,
// since this package's element table is fixed data compiled once at
// package init -- a schema invariant violation here is a programming
// error in the sample catalog itself, not a run-time condition.
func mustElement(id, name string, minLen, maxLen int, kind schema.ElementKind, precision int, codes []string) *schema.ElementDef {
	def, err := schema.NewElementDef(id, name, minLen, maxLen, kind, precision, codes)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return def
}

// Shared element definitions, addressed by their X12 element id. This is
// the table schema.Catalog.ElementDef serves lookups from.
var elementTable = buildElementTable()

func buildElementTable() map[string]*schema.ElementDef {
	defs := []*schema.ElementDef{
		mustElement("I01", "Authorization Information Qualifier", 2, 2, schema.KindIdentifier, 0, []string{"00", "03"}),
		mustElement("I02", "Authorization Information", 10, 10, schema.KindString, 0, nil),
		mustElement("I03", "Security Information Qualifier", 2, 2, schema.KindIdentifier, 0, []string{"00", "01"}),
		mustElement("I04", "Security Information", 10, 10, schema.KindString, 0, nil),
		mustElement("I05", "Interchange ID Qualifier", 2, 2, schema.KindIdentifier, 0, nil),
		mustElement("I06", "Interchange Sender ID", 15, 15, schema.KindString, 0, nil),
		mustElement("I07", "Interchange Receiver ID", 15, 15, schema.KindString, 0, nil),
		mustElement("I08", "Interchange Date", 6, 6, schema.KindDate, 0, nil),
		mustElement("I09", "Interchange Time", 4, 4, schema.KindTime, 0, nil),
		mustElement("I65", "Repetition Separator", 1, 1, schema.KindIdentifier, 0, nil),
		mustElement("I11", "Interchange Control Version Number", 5, 5, schema.KindIdentifier, 0, nil),
		mustElement("I12", "Interchange Control Number", 9, 9, schema.KindNumeric, 0, nil),
		mustElement("I13", "Acknowledgment Requested", 1, 1, schema.KindIdentifier, 0, []string{"0", "1"}),
		mustElement("I14", "Usage Indicator", 1, 1, schema.KindIdentifier, 0, []string{"P", "T"}),
		mustElement("I15", "Component Element Separator", 1, 1, schema.KindIdentifier, 0, nil),

		mustElement("479", "Functional Identifier Code", 2, 2, schema.KindIdentifier, 0, nil),
		mustElement("142", "Application Sender's Code", 2, 15, schema.KindString, 0, nil),
		mustElement("124", "Application Receiver's Code", 2, 15, schema.KindString, 0, nil),
		mustElement("373", "Date", 8, 8, schema.KindDate, 0, nil),
		mustElement("337", "Time", 4, 8, schema.KindTime, 0, nil),
		mustElement("28", "Group Control Number", 1, 9, schema.KindNumeric, 0, nil),
		mustElement("455", "Responsible Agency Code", 1, 2, schema.KindIdentifier, 0, []string{"X"}),
		mustElement("480", "Version / Release / Industry Identifier Code", 1, 12, schema.KindString, 0, nil),

		mustElement("143", "Transaction Set Identifier Code", 3, 3, schema.KindIdentifier, 0, nil),
		mustElement("329", "Transaction Set Control Number", 4, 9, schema.KindString, 0, nil),
		mustElement("97", "Number of Transactions Included", 1, 6, schema.KindNumeric, 0, nil),
		mustElement("1", "Number of Transaction Sets Included", 1, 6, schema.KindNumeric, 0, nil),
		mustElement("2", "Group Control Number Echo", 1, 9, schema.KindNumeric, 0, nil),

		mustElement("36", "Purchase Order Type Code", 2, 2, schema.KindIdentifier, 0, []string{"SA", "NE", "RO"}),
		mustElement("324", "Purchase Order Number", 1, 22, schema.KindString, 0, nil),
		mustElement("328", "Release Number", 1, 30, schema.KindString, 0, nil),
		mustElement("306", "Action Code", 1, 2, schema.KindIdentifier, 0, []string{"A", "C", "N"}),

		mustElement("128", "Reference Number Qualifier", 2, 3, schema.KindIdentifier, 0, nil),
		mustElement("127", "Reference Number", 1, 30, schema.KindString, 0, nil),

		mustElement("98", "Entity Identifier Code", 2, 3, schema.KindIdentifier, 0, []string{"ST", "BT", "VN", "SU"}),
		mustElement("93", "Name", 1, 60, schema.KindString, 0, nil),
		mustElement("66", "Identification Code Qualifier", 1, 2, schema.KindIdentifier, 0, nil),
		mustElement("67", "Identification Code", 2, 80, schema.KindString, 0, nil),

		mustElement("166", "Address Information", 1, 55, schema.KindString, 0, nil),
		mustElement("19", "City Name", 2, 30, schema.KindString, 0, nil),
		mustElement("156", "State or Province Code", 2, 2, schema.KindString, 0, nil),
		mustElement("116", "Postal Code", 3, 15, schema.KindString, 0, nil),

		mustElement("350", "Assigned Identification", 1, 20, schema.KindString, 0, nil),
		mustElement("330", "Quantity Ordered", 1, 15, schema.KindNumeric, 2, nil),
		mustElement("355", "Unit or Basis for Measurement Code", 2, 2, schema.KindIdentifier, 0, []string{"EA", "CS", "LB"}),
		mustElement("212", "Unit Price", 1, 17, schema.KindReal, 0, nil),
		mustElement("235", "Product/Service ID Qualifier", 2, 2, schema.KindIdentifier, 0, []string{"VP", "BP", "UP"}),
		mustElement("234", "Product/Service ID", 1, 48, schema.KindString, 0, nil),

		mustElement("349", "Product/Process Characteristic Code", 2, 3, schema.KindIdentifier, 0, nil),
		mustElement("352", "Description", 1, 80, schema.KindString, 0, nil),

		mustElement("38", "Number of Line Items", 1, 6, schema.KindNumeric, 0, nil),
		mustElement("96", "Number of Included Segments", 1, 10, schema.KindNumeric, 0, nil),
		mustElement("347", "Hash Total", 1, 10, schema.KindNumeric, 2, nil),

		mustElement("755", "Report Type Code", 2, 2, schema.KindIdentifier, 0, []string{"TA", "AK", "OK"}),
		mustElement("587", "Transaction Set Acknowledgment Code", 1, 1, schema.KindIdentifier, 0, []string{"A", "E", "R"}),
	}

	m := make(map[string]*schema.ElementDef, len(defs))
	for _, d := range defs {
		m[d.ID] = d
	}
	return m
}

func elem(id string) *schema.ElementDef {
	def, ok := elementTable[id]
	if !ok {
		panic("catalog: unknown element id " + id)
	}
	return def
}
