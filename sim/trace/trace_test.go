package trace

import (
	"testing"
)

func TestSimulationTrace_RecordDispatch_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceLevelDecisions)

	// WHEN a dispatch record is recorded
	st.RecordDispatch(DispatchRecord{
		CampaignID: "c1",
		Clock:      10,
		Target:     "clan_c",
		Required:   5,
		ChosenMine: "clan_a",
		Reason:     "min round trip (travel=10, score=25)",
		Candidates: []CandidateScore{{Mine: "clan_a", Travel: 10, Score: 25}},
	})

	// THEN the trace contains one dispatch record with correct data
	if len(st.Dispatches) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(st.Dispatches))
	}
	if st.Dispatches[0].ChosenMine != "clan_a" {
		t.Errorf("expected clan_a, got %s", st.Dispatches[0].ChosenMine)
	}
	if st.Dispatches[0].Dropped() {
		t.Error("expected dropped=false")
	}
}

func TestSimulationTrace_RecordEvent_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceLevelDecisions)

	// WHEN an event record is recorded
	st.RecordEvent(EventRecord{Clock: 11, Kind: "Arrival", Subject: "clan_a"})

	// THEN the trace contains one event record with correct data
	if len(st.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(st.Events))
	}
	if st.Events[0].Kind != "Arrival" || st.Events[0].Subject != "clan_a" {
		t.Errorf("unexpected event record %+v", st.Events[0])
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace(TraceLevelDecisions)

	// WHEN multiple records are added
	st.RecordDispatch(DispatchRecord{CampaignID: "c1", Clock: 100, ChosenMine: "m1"})
	st.RecordDispatch(DispatchRecord{CampaignID: "c2", Clock: 200, Reason: "no idle reachable mine"})
	st.RecordEvent(EventRecord{Clock: 150, Kind: "Arrival"})

	// THEN records are preserved in insertion order
	if len(st.Dispatches) != 2 {
		t.Fatalf("expected 2 dispatches, got %d", len(st.Dispatches))
	}
	if st.Dispatches[0].CampaignID != "c1" || st.Dispatches[1].CampaignID != "c2" {
		t.Error("dispatch order not preserved")
	}
	if !st.Dispatches[1].Dropped() {
		t.Error("expected second dispatch to be dropped")
	}
	if len(st.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(st.Events))
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	for _, level := range []string{"", "none", "decisions"} {
		if !IsValidTraceLevel(level) {
			t.Errorf("expected %q to be valid", level)
		}
	}
}

func TestIsValidTraceLevel_InvalidLevels(t *testing.T) {
	for _, level := range []string{"detailed", "DECISIONS", "all"} {
		if IsValidTraceLevel(level) {
			t.Errorf("expected %q to be invalid", level)
		}
	}
}

func TestEnabled_OnlyDecisions(t *testing.T) {
	if Enabled("") || Enabled("none") {
		t.Error("expected none and empty to disable tracing")
	}
	if !Enabled("decisions") {
		t.Error("expected decisions to enable tracing")
	}
}
