package constants

// ComparisonStatus is the canonical status for rows in comparisons.
type ComparisonStatus string

// Stable values (store these exact strings in DB).
const (
	StatusSubmitted  ComparisonStatus = "submitted"  // files registered, extraction not yet dispatched
	StatusProcessing ComparisonStatus = "processing" // extraction in flight
	StatusCompleted  ComparisonStatus = "completed"  // normalized + aggregated (items may be empty)
	StatusFailed     ComparisonStatus = "failed"     // extraction or normalization failed
)

// AllStatuses enumerates every valid persisted status.
var AllStatuses = []ComparisonStatus{StatusSubmitted, StatusProcessing, StatusCompleted, StatusFailed}

// AdvanceFrom lists the statuses an Advance call may claim from.
var AdvanceFrom = []ComparisonStatus{StatusSubmitted, StatusFailed}

// RegenerateFrom additionally allows re-running a completed comparison.
var RegenerateFrom = []ComparisonStatus{StatusSubmitted, StatusFailed, StatusCompleted}

// StatusStrings converts a status set to the raw strings stored in the DB.
func StatusStrings(statuses []ComparisonStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
