package reporting

import (
	"strings"

	"crm_reporting/internal/domain/entities"
)

// Outcome is the binary won/lost classification of an estimate. There is no
// pending state: every estimate classifies to exactly one of the two.
type Outcome struct {
	Won bool
}

// Status vocabularies of the source estimating tool. Matching is substring
// based on the trimmed, lowercased status.
var wonStatuses = []string{
	"email contract award",
	"verbal contract award",
	"work complete",
	"work in progress",
	"billing complete",
	"contract signed",
	"sold",
	"won",
}

var lostStatuses = []string{
	"estimate in progress - lost",
	"review + approve - lost",
	"client proposal phase - lost",
	"estimate lost",
	"estimate on hold",
	"estimate lost - no reply",
	"estimate lost - price too high",
}

// Classify maps an estimate's status text to a won/lost outcome.
//
// A pipeline status containing "sold" wins regardless of the primary status.
// Otherwise the primary status is matched against the won vocabulary; every
// other status, recognized-lost or not, classifies as lost.
func Classify(e entities.Estimate) Outcome {
	if p := norm(e.PipelineStatus); p != "" && strings.Contains(p, "sold") {
		return Outcome{Won: true}
	}
	s := norm(e.Status)
	for _, w := range wonStatuses {
		if strings.Contains(s, w) {
			return Outcome{Won: true}
		}
	}
	return Outcome{Won: false}
}

// RecognizedStatus reports whether a status belongs to either known
// vocabulary. Unrecognized statuses still classify (as lost); this exists so
// the import path can surface them as a data-quality signal.
func RecognizedStatus(status string) bool {
	s := norm(status)
	for _, w := range wonStatuses {
		if strings.Contains(s, w) {
			return true
		}
	}
	for _, l := range lostStatuses {
		if strings.Contains(s, l) {
			return true
		}
	}
	return false
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
