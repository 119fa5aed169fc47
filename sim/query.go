package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Query is an external request applied at a point in simulation time.
// Processing a query first advances the simulation to its timestamp, then
// applies its effect.
type Query interface {
	Timestamp() int64
	Apply(sim *Simulator, out Reporter)
}

// AttackQuery starts a campaign against Target.
type AttackQuery struct {
	At       int64
	Target   string
	Required int
	Yield    float64
}

func (q AttackQuery) Timestamp() int64 { return q.At }

func (q AttackQuery) Apply(sim *Simulator, _ Reporter) {
	sim.Dispatch(q.Target, q.Required, q.Yield)
}

func (q AttackQuery) String() string {
	return fmt.Sprintf("%d: attack %s (%d units, %g gold)", q.At, q.Target, q.Required, q.Yield)
}

// BlockQuery puts Clan under blockade for Duration time units.
type BlockQuery struct {
	At       int64
	Clan     string
	Duration int
}

func (q BlockQuery) Timestamp() int64 { return q.At }

func (q BlockQuery) Apply(sim *Simulator, _ Reporter) {
	sim.Block(q.Clan, q.Duration)
}

func (q BlockQuery) String() string {
	return fmt.Sprintf("%d: block %s for %d", q.At, q.Clan, q.Duration)
}

// StatusQuery reports the availability of every mine.
type StatusQuery struct {
	At int64
}

func (q StatusQuery) Timestamp() int64 { return q.At }

func (q StatusQuery) Apply(sim *Simulator, out Reporter) {
	out.ReportStatus(q.At, sim.Status())
}

// GoldQuery reports the gold captured so far.
type GoldQuery struct {
	At int64
}

func (q GoldQuery) Timestamp() int64 { return q.At }

func (q GoldQuery) Apply(sim *Simulator, out Reporter) {
	out.ReportGold(q.At, sim.Gold)
}

// AdvanceQuery only moves time forward. The end-of-game marker parses to it.
type AdvanceQuery struct {
	At int64
}

func (q AdvanceQuery) Timestamp() int64 { return q.At }

func (q AdvanceQuery) Apply(*Simulator, Reporter) {}

// Process advances the simulation to q's timestamp and applies q.
func (sim *Simulator) Process(q Query, out Reporter) error {
	if err := sim.AdvanceTo(float64(q.Timestamp())); err != nil {
		return err
	}
	q.Apply(sim, out)
	return nil
}

// RunSummary counts the outcome of a Run.
type RunSummary struct {
	Processed int
	Rejected  int
}

// Run processes queries in order. Queries that would move time backwards
// are skipped; every other query is applied.
func (sim *Simulator) Run(queries []Query, out Reporter) RunSummary {
	var summary RunSummary
	for _, q := range queries {
		if err := sim.Process(q, out); err != nil {
			if !errors.Is(err, ErrOutOfOrder) {
				logrus.Errorf("query %v: %v", q, err)
			} else {
				logrus.Warnf("skipping query %v: %v", q, err)
			}
			summary.Rejected++
			continue
		}
		summary.Processed++
	}
	return summary
}
