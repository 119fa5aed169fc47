package sim

import "github.com/sirupsen/logrus"

// EventKind names the kind of a simulation event.
type EventKind string

const (
	EventKindArrival            EventKind = "Arrival"
	EventKindExtractionComplete EventKind = "ExtractionComplete"
	EventKindTroopReturn        EventKind = "TroopReturn"
	EventKindMineRefill         EventKind = "MineRefill"
	EventKindBlockStart         EventKind = "BlockStart"
	EventKindBlockEnd           EventKind = "BlockEnd"
)

// Event defines the interface for all simulation events.
// Each event has a Timestamp (in simulation time units) and an Execute
// method that advances simulation state when invoked.
type Event interface {
	Timestamp() float64
	Kind() EventKind
	Execute(*Simulator)
}

// subject returns the clan an event refers to, for logs and traces.
func subject(e Event) string {
	switch ev := e.(type) {
	case *ArrivalEvent:
		return ev.Campaign.Mine
	case *ExtractionCompleteEvent:
		return ev.Campaign.Mine
	case *TroopReturnEvent:
		return ev.Campaign.Target
	case *MineRefillEvent:
		return ev.Mine
	case *BlockStartEvent:
		return ev.Mine
	case *BlockEndEvent:
		return ev.Mine
	}
	return ""
}

// ArrivalEvent represents troops reaching the supplier mine of a campaign.
type ArrivalEvent struct {
	time     float64
	Campaign *Campaign
}

func (e *ArrivalEvent) Timestamp() float64 { return e.time }
func (e *ArrivalEvent) Kind() EventKind    { return EventKindArrival }

// Execute starts the extraction and schedules its completion.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	mine, ok := sim.mine(e.Campaign.Mine)
	if !ok {
		return
	}
	d := mine.beginExtraction(e.time, e.Campaign, sim.Config.BlockSlowdown)
	logrus.Infof("<< Arrival: campaign %s at %s, extracting %d units at rate %g (t=%g)",
		e.Campaign.ID, mine.Name, e.Campaign.Required, mine.EffectiveRate, e.time)
	sim.Schedule(&ExtractionCompleteEvent{time: e.time + d, Campaign: e.Campaign})
}

// ExtractionCompleteEvent represents the end of mining for a campaign.
type ExtractionCompleteEvent struct {
	time     float64
	Campaign *Campaign
}

func (e *ExtractionCompleteEvent) Timestamp() float64 { return e.time }
func (e *ExtractionCompleteEvent) Kind() EventKind    { return EventKindExtractionComplete }

// Execute updates the mine and schedules the troop return and the refill.
func (e *ExtractionCompleteEvent) Execute(sim *Simulator) {
	mine, ok := sim.mine(e.Campaign.Mine)
	if !ok {
		return
	}
	consumed := mine.completeExtraction(e.Campaign)
	logrus.Infof("<< ExtractionComplete: campaign %s took %d units from %s (t=%g)",
		e.Campaign.ID, consumed, mine.Name, e.time)

	// Travel time was resolved when the campaign was dispatched, but the
	// return trip is routed again from the target.
	travel, reachable := sim.Network.ShortestTime(e.Campaign.Target, mine.Name)
	if reachable {
		sim.Schedule(&TroopReturnEvent{time: e.time + float64(travel), Campaign: e.Campaign})
	} else {
		logrus.Warnf("campaign %s: no route back to %s, troops lost", e.Campaign.ID, e.Campaign.Target)
	}
	sim.Schedule(&MineRefillEvent{time: e.time + float64(mine.RefillTime), Mine: mine.Name})
}

// TroopReturnEvent represents troops arriving home with the resources.
type TroopReturnEvent struct {
	time     float64
	Campaign *Campaign
}

func (e *TroopReturnEvent) Timestamp() float64 { return e.time }
func (e *TroopReturnEvent) Kind() EventKind    { return EventKindTroopReturn }

// Execute credits the campaign yield.
func (e *TroopReturnEvent) Execute(sim *Simulator) {
	sim.Gold += e.Campaign.Yield
	logrus.Infof("<< TroopReturn: campaign %s home at %s, +%g gold (t=%g)",
		e.Campaign.ID, e.Campaign.Target, e.Campaign.Yield, e.time)
}

// MineRefillEvent restores a mine to full capacity.
type MineRefillEvent struct {
	time float64
	Mine string
}

func (e *MineRefillEvent) Timestamp() float64 { return e.time }
func (e *MineRefillEvent) Kind() EventKind    { return EventKindMineRefill }

func (e *MineRefillEvent) Execute(sim *Simulator) {
	mine, ok := sim.mine(e.Mine)
	if !ok {
		return
	}
	mine.refill()
	logrus.Debugf("<< MineRefill: %s back to %d (t=%g)", mine.Name, mine.Capacity, e.time)
}

// BlockStartEvent puts a mine under blockade for Duration time units.
type BlockStartEvent struct {
	time     float64
	Mine     string
	Duration int
}

func (e *BlockStartEvent) Timestamp() float64 { return e.time }
func (e *BlockStartEvent) Kind() EventKind    { return EventKindBlockStart }

func (e *BlockStartEvent) Execute(sim *Simulator) {
	mine, ok := sim.mine(e.Mine)
	if !ok {
		return
	}
	mine.block(e.time, e.Duration)
	logrus.Infof("<< BlockStart: %s blocked until %g (t=%g)", mine.Name, mine.BlockedUntil, e.time)
}

// BlockEndEvent lifts a blockade. It always fires, even if a later block
// extended BlockedUntil.
type BlockEndEvent struct {
	time float64
	Mine string
}

func (e *BlockEndEvent) Timestamp() float64 { return e.time }
func (e *BlockEndEvent) Kind() EventKind    { return EventKindBlockEnd }

func (e *BlockEndEvent) Execute(sim *Simulator) {
	mine, ok := sim.mine(e.Mine)
	if !ok {
		return
	}
	mine.unblock()
	logrus.Infof("<< BlockEnd: %s unblocked (t=%g)", mine.Name, e.time)
}
