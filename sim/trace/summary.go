package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches  int
	DroppedCount     int
	UniqueMines      int
	MineDistribution map[string]int // mine name → campaigns supplied
	EventsByKind     map[string]int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		MineDistribution: make(map[string]int),
		EventsByKind:     make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = len(st.Dispatches)
	for _, d := range st.Dispatches {
		if d.Dropped() {
			summary.DroppedCount++
			continue
		}
		summary.MineDistribution[d.ChosenMine]++
	}
	summary.UniqueMines = len(summary.MineDistribution)

	for _, e := range st.Events {
		summary.EventsByKind[e.Kind]++
	}
	return summary
}
