package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/clan-sim/clan-sim/sim"
	"github.com/clan-sim/clan-sim/sim/topology"
	"github.com/clan-sim/clan-sim/sim/trace"
)

func TestNewReporter_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	r := newReporter(sim.StatusFormatLine, &buf)

	r.ReportStatus(2, sim.StatusReport{Mines: []sim.MineStatus{
		{Name: "clan_a", Available: 17, Capacity: 20},
		{Name: "clan_b", Available: 10, Capacity: 10},
	}})
	r.ReportGold(27, 10)

	assert.Equal(t, "clan_a: 17/20 available clan_b: 10/10 available\nGold captured: 10\n", buf.String())
}

func TestNewReporter_TableFormat(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.StatusFormat = sim.StatusFormatTable

	out, _ := runScenario(t, filepath.Join(scenariosDir, "single-supplier"), cfg)

	assert.Contains(t, out, "Status at t=2\n")
	assert.Contains(t, out, "Status at t=14\n")
	assert.Contains(t, out, "t=27 Gold captured: 10\n")
	assert.Contains(t, out, "clan_a")
	assert.Contains(t, out, "17")
	assert.NotContains(t, out, "available", "table layout replaces the line layout")
}

func TestPrintSummary(t *testing.T) {
	color.NoColor = true
	res := &runResult{
		Load:         &topology.LoadReport{Clans: 3, Mines: 2, Roads: 1, Skipped: []string{"x"}},
		SkippedLines: nil,
		Run:          sim.RunSummary{Processed: 1234, Rejected: 1},
		Gold:         1500.5,
		Clock:        30,
		Trace: &trace.TraceSummary{
			TotalDispatches:  3,
			DroppedCount:     1,
			UniqueMines:      1,
			MineDistribution: map[string]int{"clan_a": 2},
			EventsByKind:     map[string]int{"Arrival": 2},
		},
	}
	var buf bytes.Buffer

	printSummary(&buf, res)

	out := buf.String()
	for _, want := range []string{
		"=== Run Summary ===",
		"Clans: 3 (2 mines), roads: 1",
		"Queries processed: 1,234",
		"Queries rejected (out of order): 1",
		"Input records skipped: 1",
		"Final clock: 30",
		"Gold captured: 1,500.5",
		"=== Dispatch Trace ===",
		"Campaigns: 2 dispatched, 1 dropped",
		"  clan_a: 2",
		"  event Arrival: 2",
	} {
		assert.Contains(t, out, want)
	}
}

func TestPrintSummary_NoTraceSection(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	printSummary(&buf, &runResult{Load: &topology.LoadReport{}})
	assert.False(t, strings.Contains(buf.String(), "Dispatch Trace"))
	assert.NotContains(t, buf.String(), "rejected")
}
