package cmd

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/clan-sim/clan-sim/sim"
)

// newReporter returns the sim.Reporter for a status format.
func newReporter(format string, w io.Writer) sim.Reporter {
	if format == sim.StatusFormatTable {
		return tableReporter{w: w}
	}
	return lineReporter{w: w}
}

// lineReporter writes one line per report query.
type lineReporter struct {
	w io.Writer
}

func (r lineReporter) ReportStatus(_ int64, s sim.StatusReport) {
	fmt.Fprintln(r.w, s.String())
}

func (r lineReporter) ReportGold(_ int64, gold float64) {
	fmt.Fprintln(r.w, sim.GoldLine(gold))
}

// tableReporter renders status reports as tables.
type tableReporter struct {
	w io.Writer
}

func (r tableReporter) ReportStatus(at int64, s sim.StatusReport) {
	fmt.Fprintf(r.w, "Status at t=%d\n", at)
	table := tablewriter.NewTable(r.w,
		tablewriter.WithHeader([]string{"Mine", "Available", "Capacity"}),
	)
	for _, m := range s.Mines {
		_ = table.Append([]string{m.Name, strconv.Itoa(m.Available), strconv.Itoa(m.Capacity)})
	}
	_ = table.Render()
}

func (r tableReporter) ReportGold(at int64, gold float64) {
	fmt.Fprintf(r.w, "t=%d %s\n", at, sim.GoldLine(gold))
}

// printSummary writes a human-readable run summary.
func printSummary(w io.Writer, res *runResult) {
	titleColor := color.New(color.FgCyan, color.Bold)
	warnColor := color.New(color.FgYellow)

	titleColor.Fprintln(w, "=== Run Summary ===")
	fmt.Fprintf(w, "Clans: %d (%d mines), roads: %d\n", res.Load.Clans, res.Load.Mines, res.Load.Roads)
	fmt.Fprintf(w, "Queries processed: %s\n", humanize.Comma(int64(res.Run.Processed)))
	if res.Run.Rejected > 0 {
		warnColor.Fprintf(w, "Queries rejected (out of order): %d\n", res.Run.Rejected)
	}
	if n := len(res.SkippedLines) + len(res.Load.Skipped); n > 0 {
		warnColor.Fprintf(w, "Input records skipped: %d\n", n)
	}
	fmt.Fprintf(w, "Final clock: %g\n", res.Clock)
	fmt.Fprintf(w, "Gold captured: %s\n", humanize.Commaf(res.Gold))

	if res.Trace == nil {
		return
	}
	titleColor.Fprintln(w, "=== Dispatch Trace ===")
	fmt.Fprintf(w, "Campaigns: %d dispatched, %d dropped\n",
		res.Trace.TotalDispatches-res.Trace.DroppedCount, res.Trace.DroppedCount)
	mines := make([]string, 0, len(res.Trace.MineDistribution))
	for m := range res.Trace.MineDistribution {
		mines = append(mines, m)
	}
	sort.Strings(mines)
	for _, m := range mines {
		fmt.Fprintf(w, "  %s: %d\n", m, res.Trace.MineDistribution[m])
	}
	kinds := make([]string, 0, len(res.Trace.EventsByKind))
	for k := range res.Trace.EventsByKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(w, "  event %s: %d\n", k, res.Trace.EventsByKind[k])
	}
}
