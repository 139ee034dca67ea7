package ack

// Code is a 997 transaction-set acknowledgment code (AK5-1/AK9-1):
// element "587" in the sample catalog.
type Code string

const (
	// Accepted means the transaction set/functional group was accepted
	// with no errors.
	Accepted Code = "A"
	// AcceptedWithErrors means the transaction set/functional group was
	// accepted even though errors were noted.
	AcceptedWithErrors Code = "E"
	// Rejected means the transaction set/functional group was rejected.
	Rejected Code = "R"
)

// IsValid reports whether c is one of the three 997 disposition codes.
func (c Code) IsValid() bool {
	switch c {
	case Accepted, AcceptedWithErrors, Rejected:
		return true
	default:
		return false
	}
}

// ACK carries the fully customized acknowledgment data consumed by
// Builder.Custom, which applies the same code and note to every
// acknowledged transaction set.
type ACK struct {
	Code Code
	Note string
}
