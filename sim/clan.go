package sim

import "math"

// Clan is a node of the network. Mines additionally carry resource and
// blockade state; for ordinary clans every mine-only field stays zero.
//
// State machine for a mine:
//
//	Idle --Arrival--> Extracting --ExtractionComplete--> Idle
//
// Blocked/Unblocked is orthogonal and only changes the rate of extractions
// that start while the blockade is active.
type Clan struct {
	Name   string
	IsMine bool

	Capacity   int // units extractable before a refill is needed
	Rate       int // time units per resource unit at nominal speed
	RefillTime int // delay between extraction completion and refill

	Available        int
	Busy             bool
	ExtractionStart  float64
	ExtractionAmount int
	PendingYield     float64
	EffectiveRate    float64 // rate frozen when the current extraction started

	Blocked       bool
	BlockedUntil  float64
	GraceConsumed bool // first request of the current blockade already used

	extracting *Campaign // campaign that owns the current extraction
}

// NewClan creates an ordinary (non-mine) clan.
func NewClan(name string) *Clan {
	return &Clan{Name: name}
}

// NewMine creates a mine that starts full.
func NewMine(name string, capacity, rate, refillTime int) *Clan {
	return &Clan{
		Name:          name,
		IsMine:        true,
		Capacity:      capacity,
		Rate:          rate,
		RefillTime:    refillTime,
		Available:     capacity,
		EffectiveRate: float64(rate),
	}
}

// IsBlockedAt reports whether a blockade is in force at time now.
func (c *Clan) IsBlockedAt(now float64) bool {
	return c.Blocked && now < c.BlockedUntil
}

// rateFor picks the per-unit rate for an extraction starting at now.
// While blocked, the first request keeps the nominal rate and consumes the
// grace; later requests have their time per unit scaled by slowdown.
func (c *Clan) rateFor(now, slowdown float64) float64 {
	nominal := float64(c.Rate)
	if !c.IsBlockedAt(now) {
		return nominal
	}
	if !c.GraceConsumed {
		c.GraceConsumed = true
		return nominal
	}
	return nominal * slowdown
}

// beginExtraction moves the mine into Extracting for camp and returns the
// extraction duration.
func (c *Clan) beginExtraction(now float64, camp *Campaign, slowdown float64) float64 {
	c.Busy = true
	c.extracting = camp
	c.ExtractionStart = now
	c.ExtractionAmount = camp.Required
	c.PendingYield = camp.Yield
	c.EffectiveRate = c.rateFor(now, slowdown)
	return float64(camp.Required) * c.EffectiveRate
}

// completeExtraction removes the extracted amount from the mine. Busy is
// cleared only when camp still owns the extraction; an Arrival that landed
// on a busy mine took ownership and keeps the mine busy until it completes.
func (c *Clan) completeExtraction(camp *Campaign) int {
	consumed := min(camp.Required, max(c.Available, 0))
	c.Available -= consumed
	if c.extracting == camp {
		c.extracting = nil
		c.Busy = false
		c.PendingYield = 0
	}
	return consumed
}

// refill restores full capacity. Idempotent.
func (c *Clan) refill() {
	c.Available = c.Capacity
	if c.extracting == nil {
		c.Busy = false
	}
}

func (c *Clan) block(now float64, duration int) {
	c.Blocked = true
	c.BlockedUntil = now + float64(duration)
	c.GraceConsumed = false
}

func (c *Clan) unblock() {
	c.Blocked = false
	c.GraceConsumed = false
}

// AvailableAt projects the units available at now without mutating state.
// During an extraction the consumed amount is interpolated linearly from the
// elapsed time and the frozen effective rate.
func (c *Clan) AvailableAt(now float64) int {
	if !c.Busy {
		return clamp(c.Available, 0, c.Capacity)
	}
	extracted := c.ExtractionAmount
	if c.EffectiveRate > 0 {
		elapsed := max(now-c.ExtractionStart, 0)
		units := math.Floor(elapsed / c.EffectiveRate)
		if units < float64(extracted) {
			extracted = int(units)
		}
	}
	return clamp(c.Capacity-extracted, 0, c.Capacity)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
