// Package trace provides decision-trace recording for supplier selection
// and event processing. This package has no dependencies on sim/; it
// stores pure data types.
package trace

// CandidateScore captures one mine considered for a campaign.
type CandidateScore struct {
	Mine   string
	Travel int
	Score  float64 // round-trip travel plus nominal extraction time
}

// DispatchRecord captures a single supplier selection.
type DispatchRecord struct {
	CampaignID string
	Clock      float64
	Target     string
	Required   int
	ChosenMine string // empty when the campaign was dropped
	Reason     string
	Candidates []CandidateScore // sorted by score ascending
}

// Dropped reports whether no mine was chosen.
func (r DispatchRecord) Dropped() bool {
	return r.ChosenMine == ""
}

// EventRecord captures one processed simulation event.
type EventRecord struct {
	Clock   float64
	Kind    string
	Subject string
}
