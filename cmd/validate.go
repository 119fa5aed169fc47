package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/clan-sim/clan-sim/sim"
	"github.com/clan-sim/clan-sim/sim/topology"
)

// validateTopology loads path into a fresh simulator and writes the load
// report plus the travel time from every ordinary clan to every mine.
func validateTopology(path string, w io.Writer) error {
	s := sim.NewSimulator(sim.DefaultConfig())
	report, err := topology.LoadInto(path, s)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Clans: %d (%d mines)\n", report.Clans, report.Mines)
	fmt.Fprintf(w, "Roads: %d\n", report.Roads)
	fmt.Fprintf(w, "Skipped records: %d\n", len(report.Skipped))
	for _, reason := range report.Skipped {
		fmt.Fprintf(w, "  - %s\n", reason)
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Clan", "Mine", "Travel"}),
	)
	for _, c := range s.Clans() {
		if c.IsMine {
			continue
		}
		for _, m := range s.Clans() {
			if !m.IsMine {
				continue
			}
			travel := "unreachable"
			if t, ok := s.Network.ShortestTime(c.Name, m.Name); ok {
				travel = strconv.Itoa(t)
			}
			_ = table.Append([]string{c.Name, m.Name, travel})
		}
	}
	return table.Render()
}
