package variant

import "fmt"

// Kind selects one of the two certificates a variant produces.
type Kind int

const (
	// Record is the tabular results certificate.
	Record Kind = iota
	// Prize is the first-prize certificate.
	Prize
)

// Kinds lists every kind in render order.
var Kinds = []Kind{Record, Prize}

// Artifact returns the file stem the certificate is published under.
func (k Kind) Artifact() string {
	switch k {
	case Record:
		return "record-certificate"
	case Prize:
		return "first-prize-certificate"
	default:
		return fmt.Sprintf("kind-%d", int(k))
	}
}

func (k Kind) String() string {
	switch k {
	case Record:
		return "record"
	case Prize:
		return "prize"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
