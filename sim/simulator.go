package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/clan-sim/clan-sim/sim/trace"
)

var (
	// ErrDuplicateClan is returned when a clan name is loaded twice.
	ErrDuplicateClan = errors.New("duplicate clan")
	// ErrUnknownClan is returned when a road or query names a clan that was never loaded.
	ErrUnknownClan = errors.New("unknown clan")
	// ErrOutOfOrder is returned when time would move backwards.
	ErrOutOfOrder = errors.New("query time before simulation clock")
)

// Simulator is the core object that holds simulation time, clan state, the
// road graph and the event queue. All operations run on the caller's
// goroutine; it is not safe for concurrent use.
type Simulator struct {
	Clock float64
	// Gold is the cumulative yield of campaigns whose troops have returned.
	Gold float64

	Config     Config
	Network    *Network
	EventQueue *EventQueue
	// Trace is nil unless decision tracing is enabled.
	Trace *trace.SimulationTrace

	clans       []*Clan // load order
	byName      map[string]*Clan
	campaignSeq int
}

// NewSimulator creates an empty simulator at time 0.
func NewSimulator(cfg Config) *Simulator {
	if cfg.BlockSlowdown == 0 {
		cfg.BlockSlowdown = DefaultBlockSlowdown
	}
	s := &Simulator{
		Config:     cfg,
		Network:    NewNetwork(),
		EventQueue: NewEventQueue(),
		byName:     make(map[string]*Clan),
	}
	if trace.Enabled(cfg.TraceLevel) {
		s.Trace = trace.NewSimulationTrace(trace.TraceLevel(cfg.TraceLevel))
	}
	return s
}

// AddClan registers c. Clans keep the order in which they were added; that
// order breaks supplier ties and capacity ties in status reports.
func (sim *Simulator) AddClan(c *Clan) error {
	if _, exists := sim.byName[c.Name]; exists {
		return fmt.Errorf("adding clan %q: %w", c.Name, ErrDuplicateClan)
	}
	sim.clans = append(sim.clans, c)
	sim.byName[c.Name] = c
	sim.Network.AddNode(c.Name)
	return nil
}

// AddRoad connects two loaded clans.
func (sim *Simulator) AddRoad(r Road) error {
	for _, name := range []string{r.From, r.To} {
		if _, ok := sim.byName[name]; !ok {
			return fmt.Errorf("adding road %s: clan %q: %w", r, name, ErrUnknownClan)
		}
	}
	sim.Network.AddRoad(r)
	return nil
}

// Clan looks up a clan by name.
func (sim *Simulator) Clan(name string) (*Clan, bool) {
	c, ok := sim.byName[name]
	return c, ok
}

// Clans returns all clans in load order. The slice is the simulator's own
// storage and must not be modified.
func (sim *Simulator) Clans() []*Clan {
	return sim.clans
}

func (sim *Simulator) mines() []*Clan {
	mines := make([]*Clan, 0, len(sim.clans))
	for _, c := range sim.clans {
		if c.IsMine {
			mines = append(mines, c)
		}
	}
	return mines
}

func (sim *Simulator) mine(name string) (*Clan, bool) {
	c, ok := sim.byName[name]
	if !ok || !c.IsMine {
		return nil, false
	}
	return c, true
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	sim.EventQueue.Schedule(ev)
}

// AdvanceTo executes every pending event with a timestamp at or before t,
// in timestamp order, then sets the clock to exactly t.
// Moving the clock backwards is rejected with ErrOutOfOrder.
func (sim *Simulator) AdvanceTo(t float64) error {
	if t < sim.Clock {
		return fmt.Errorf("advancing to %g at clock %g: %w", t, sim.Clock, ErrOutOfOrder)
	}
	for ev := sim.EventQueue.PopUntil(t); ev != nil; ev = sim.EventQueue.PopUntil(t) {
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[t=%g] Executing %T", sim.Clock, ev)
		ev.Execute(sim)
		if sim.Trace != nil {
			sim.Trace.RecordEvent(trace.EventRecord{Clock: sim.Clock, Kind: string(ev.Kind()), Subject: subject(ev)})
		}
	}
	sim.Clock = t
	return nil
}

// Block schedules a blockade of the named mine starting now and its end
// duration later. It returns false, scheduling nothing, if name is not a mine.
func (sim *Simulator) Block(name string, duration int) bool {
	if _, ok := sim.mine(name); !ok {
		logrus.Warnf("block ignored: %q is not a mine (t=%g)", name, sim.Clock)
		return false
	}
	sim.Schedule(&BlockStartEvent{time: sim.Clock, Mine: name, Duration: duration})
	sim.Schedule(&BlockEndEvent{time: sim.Clock + float64(duration), Mine: name})
	return true
}

// Status projects the availability of every mine at the current clock.
func (sim *Simulator) Status() StatusReport {
	return newStatusReport(sim.Clock, sim.mines())
}
