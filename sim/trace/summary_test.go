package trace

import "testing"

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceLevelDecisions)

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.TotalDispatches != 0 || summary.DroppedCount != 0 {
		t.Errorf("expected 0 dispatches, got %d (%d dropped)", summary.TotalDispatches, summary.DroppedCount)
	}
	if summary.UniqueMines != 0 {
		t.Errorf("expected 0 unique mines, got %d", summary.UniqueMines)
	}
	if len(summary.MineDistribution) != 0 || len(summary.EventsByKind) != 0 {
		t.Error("expected empty distributions")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with supplied and dropped campaigns
	st := NewSimulationTrace(TraceLevelDecisions)
	st.RecordDispatch(DispatchRecord{CampaignID: "c1", ChosenMine: "m1"})
	st.RecordDispatch(DispatchRecord{CampaignID: "c2"})
	st.RecordDispatch(DispatchRecord{CampaignID: "c3", ChosenMine: "m1"})
	st.RecordDispatch(DispatchRecord{CampaignID: "c4", ChosenMine: "m2"})
	st.RecordEvent(EventRecord{Kind: "Arrival"})
	st.RecordEvent(EventRecord{Kind: "Arrival"})
	st.RecordEvent(EventRecord{Kind: "BlockStart"})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts match
	if summary.TotalDispatches != 4 {
		t.Errorf("expected 4 dispatches, got %d", summary.TotalDispatches)
	}
	if summary.DroppedCount != 1 {
		t.Errorf("expected 1 dropped, got %d", summary.DroppedCount)
	}
	if summary.UniqueMines != 2 {
		t.Errorf("expected 2 unique mines, got %d", summary.UniqueMines)
	}
	if summary.MineDistribution["m1"] != 2 || summary.MineDistribution["m2"] != 1 {
		t.Errorf("unexpected mine distribution %v", summary.MineDistribution)
	}
	if summary.EventsByKind["Arrival"] != 2 || summary.EventsByKind["BlockStart"] != 1 {
		t.Errorf("unexpected events by kind %v", summary.EventsByKind)
	}
}

func TestSummarize_NilTrace_Safe(t *testing.T) {
	// GIVEN a nil trace
	// WHEN summarized
	summary := Summarize(nil)

	// THEN a zero-value summary with usable maps is returned
	if summary == nil {
		t.Fatal("expected non-nil summary")
	}
	if summary.MineDistribution == nil || summary.EventsByKind == nil {
		t.Error("expected initialized maps")
	}
}
