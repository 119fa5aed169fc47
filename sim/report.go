package sim

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MineStatus is one mine's entry in a status report.
type MineStatus struct {
	Name      string
	Available int
	Capacity  int
}

func (m MineStatus) String() string {
	return fmt.Sprintf("%s: %d/%d available", m.Name, m.Available, m.Capacity)
}

// StatusReport lists every mine by descending capacity.
type StatusReport struct {
	Clock float64
	Mines []MineStatus
}

func newStatusReport(now float64, mines []*Clan) StatusReport {
	r := StatusReport{Clock: now, Mines: make([]MineStatus, 0, len(mines))}
	for _, m := range mines {
		r.Mines = append(r.Mines, MineStatus{Name: m.Name, Available: m.AvailableAt(now), Capacity: m.Capacity})
	}
	sort.SliceStable(r.Mines, func(i, j int) bool { return r.Mines[i].Capacity > r.Mines[j].Capacity })
	return r
}

// String renders the report as a single output line.
func (r StatusReport) String() string {
	parts := make([]string, len(r.Mines))
	for i, m := range r.Mines {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// FormatGold renders a gold amount in its shortest exact decimal form.
func FormatGold(gold float64) string {
	return strconv.FormatFloat(gold, 'f', -1, 64)
}

// GoldLine renders the gold report line.
func GoldLine(gold float64) string {
	return "Gold captured: " + FormatGold(gold)
}

// Reporter receives the output of report queries.
type Reporter interface {
	ReportStatus(at int64, r StatusReport)
	ReportGold(at int64, gold float64)
}
