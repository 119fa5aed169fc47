package cmd

import (
	"fmt"
	"io"

	"github.com/clan-sim/clan-sim/sim"
	"github.com/clan-sim/clan-sim/sim/queries"
	"github.com/clan-sim/clan-sim/sim/topology"
	"github.com/clan-sim/clan-sim/sim/trace"
)

// runResult gathers everything a run produced besides its report lines.
type runResult struct {
	Load         *topology.LoadReport
	SkippedLines []queries.SkippedLine
	Run          sim.RunSummary
	Gold         float64
	Clock        float64
	Trace        *trace.TraceSummary // nil when tracing is off
}

// runSimulation loads the topology, parses the query stream from in and
// writes one report line (or table) per report query to out.
func runSimulation(networkPath string, in io.Reader, cfg sim.Config, out io.Writer) (*runResult, error) {
	s := sim.NewSimulator(cfg)
	load, err := topology.LoadInto(networkPath, s)
	if err != nil {
		return nil, fmt.Errorf("loading topology: %w", err)
	}

	parsed, err := queries.Parse(in)
	if err != nil {
		return nil, err
	}

	summary := s.Run(parsed.Queries, newReporter(cfg.StatusFormat, out))

	res := &runResult{
		Load:         load,
		SkippedLines: parsed.Skipped,
		Run:          summary,
		Gold:         s.Gold,
		Clock:        s.Clock,
	}
	if s.Trace != nil {
		res.Trace = trace.Summarize(s.Trace)
	}
	return res, nil
}
