// Package segments provides typed Go struct accessors for the envelope
// segments every interchange shares (ISA, GS, ST, SE, GE, IEA), the way
// the teacher's package provides typed accessors for the handful of
// segments every HL7 message shares.
package segments

import (
	"errors"
	"fmt"

	"github.com/dshills/gox12/x12"
)

// ErrNilSegment is returned when a nil *x12.SegmentVal is given to a
// Parse function.
var ErrNilSegment = errors.New("segment is nil")

// ErrWrongSegment is returned when a Parse function is given a segment
// whose id does not match the struct being populated.
var ErrWrongSegment = errors.New("segment has the wrong id")

func wireAt(seg *x12.SegmentVal, position int) string {
	slot, err := seg.Element(position)
	if err != nil || len(slot.Occurrences) == 0 {
		return ""
	}
	if v, ok := slot.Occurrences[0].(x12.ElementValue); ok {
		return v.ToWire(true)
	}
	return ""
}

func checkID(seg *x12.SegmentVal, want string) error {
	if seg == nil {
		return ErrNilSegment
	}
	if seg.ID() != want {
		return fmt.Errorf("%w: got %s, want %s", ErrWrongSegment, seg.ID(), want)
	}
	return nil
}

// ISA is the Interchange Control Header, ISA01-ISA16.
type ISA struct {
	AuthorizationInfoQualifier string `x12:"ISA.1"`
	AuthorizationInfo          string `x12:"ISA.2"`
	SecurityInfoQualifier      string `x12:"ISA.3"`
	SecurityInfo               string `x12:"ISA.4"`
	SenderIDQualifier          string `x12:"ISA.5"`
	SenderID                   string `x12:"ISA.6"`
	ReceiverIDQualifier        string `x12:"ISA.7"`
	ReceiverID                 string `x12:"ISA.8"`
	Date                       string `x12:"ISA.9"`
	Time                       string `x12:"ISA.10"`
	RepetitionSeparator        string `x12:"ISA.11"`
	ControlVersionNumber       string `x12:"ISA.12"`
	ControlNumber              string `x12:"ISA.13"`
	AcknowledgmentRequested    string `x12:"ISA.14"`
	UsageIndicator             string `x12:"ISA.15"`
	ComponentSeparator         string `x12:"ISA.16"`
}

// ParseISA extracts field values from a *x12.SegmentVal holding an ISA.
func ParseISA(seg *x12.SegmentVal) (*ISA, error) {
	if err := checkID(seg, "ISA"); err != nil {
		return nil, err
	}
	return &ISA{
		AuthorizationInfoQualifier: wireAt(seg, 1),
		AuthorizationInfo:          wireAt(seg, 2),
		SecurityInfoQualifier:      wireAt(seg, 3),
		SecurityInfo:               wireAt(seg, 4),
		SenderIDQualifier:          wireAt(seg, 5),
		SenderID:                   wireAt(seg, 6),
		ReceiverIDQualifier:        wireAt(seg, 7),
		ReceiverID:                 wireAt(seg, 8),
		Date:                       wireAt(seg, 9),
		Time:                       wireAt(seg, 10),
		RepetitionSeparator:        wireAt(seg, 11),
		ControlVersionNumber:       wireAt(seg, 12),
		ControlNumber:              wireAt(seg, 13),
		AcknowledgmentRequested:    wireAt(seg, 14),
		UsageIndicator:             wireAt(seg, 15),
		ComponentSeparator:         wireAt(seg, 16),
	}, nil
}

// IEA is the Interchange Control Trailer, IEA01-IEA02.
type IEA struct {
	GroupCount    string `x12:"IEA.1"`
	ControlNumber string `x12:"IEA.2"`
}

// ParseIEA extracts field values from a *x12.SegmentVal holding an IEA.
func ParseIEA(seg *x12.SegmentVal) (*IEA, error) {
	if err := checkID(seg, "IEA"); err != nil {
		return nil, err
	}
	return &IEA{GroupCount: wireAt(seg, 1), ControlNumber: wireAt(seg, 2)}, nil
}

// GS is the Functional Group Header, GS01-GS08.
type GS struct {
	FunctionalIDCode   string `x12:"GS.1"`
	SenderCode         string `x12:"GS.2"`
	ReceiverCode       string `x12:"GS.3"`
	Date               string `x12:"GS.4"`
	Time               string `x12:"GS.5"`
	GroupControlNumber string `x12:"GS.6"`
	ResponsibleAgency  string `x12:"GS.7"`
	VersionReleaseID   string `x12:"GS.8"`
}

// ParseGS extracts field values from a *x12.SegmentVal holding a GS.
func ParseGS(seg *x12.SegmentVal) (*GS, error) {
	if err := checkID(seg, "GS"); err != nil {
		return nil, err
	}
	return &GS{
		FunctionalIDCode:   wireAt(seg, 1),
		SenderCode:         wireAt(seg, 2),
		ReceiverCode:       wireAt(seg, 3),
		Date:               wireAt(seg, 4),
		Time:               wireAt(seg, 5),
		GroupControlNumber: wireAt(seg, 6),
		ResponsibleAgency:  wireAt(seg, 7),
		VersionReleaseID:   wireAt(seg, 8),
	}, nil
}

// GE is the Functional Group Trailer, GE01-GE02.
type GE struct {
	TransactionSetCount string `x12:"GE.1"`
	GroupControlNumber  string `x12:"GE.2"`
}

// ParseGE extracts field values from a *x12.SegmentVal holding a GE.
func ParseGE(seg *x12.SegmentVal) (*GE, error) {
	if err := checkID(seg, "GE"); err != nil {
		return nil, err
	}
	return &GE{TransactionSetCount: wireAt(seg, 1), GroupControlNumber: wireAt(seg, 2)}, nil
}

// ST is the Transaction Set Header, ST01-ST02.
type ST struct {
	TransactionSetCode    string `x12:"ST.1"`
	TransactionSetControl string `x12:"ST.2"`
}

// ParseST extracts field values from a *x12.SegmentVal holding an ST.
func ParseST(seg *x12.SegmentVal) (*ST, error) {
	if err := checkID(seg, "ST"); err != nil {
		return nil, err
	}
	return &ST{TransactionSetCode: wireAt(seg, 1), TransactionSetControl: wireAt(seg, 2)}, nil
}

// SE is the Transaction Set Trailer, SE01-SE02.
type SE struct {
	SegmentCount          string `x12:"SE.1"`
	TransactionSetControl string `x12:"SE.2"`
}

// ParseSE extracts field values from a *x12.SegmentVal holding an SE.
func ParseSE(seg *x12.SegmentVal) (*SE, error) {
	if err := checkID(seg, "SE"); err != nil {
		return nil, err
	}
	return &SE{SegmentCount: wireAt(seg, 1), TransactionSetControl: wireAt(seg, 2)}, nil
}
