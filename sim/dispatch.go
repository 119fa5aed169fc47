package sim

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/clan-sim/clan-sim/sim/trace"
)

// campaignNamespace seeds name-based campaign IDs, so the same run always
// yields the same IDs.
var campaignNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("clan-sim/campaign"))

// Campaign is an extraction request on behalf of Target, supplied by Mine.
// It is created at dispatch and carried unchanged through the
// Arrival → ExtractionComplete → TroopReturn chain.
type Campaign struct {
	ID       string
	Target   string
	Required int
	Yield    float64
	Mine     string
}

func (c *Campaign) String() string {
	return fmt.Sprintf("%s[%s<-%s %d units, %g gold]", c.ID, c.Target, c.Mine, c.Required, c.Yield)
}

// supplyScore is the time a campaign would take with mine m: round-trip
// travel plus extraction at the nominal rate. Blockades are not considered.
func supplyScore(travel, required int, m *Clan) float64 {
	return float64(2*travel) + float64(required)*float64(m.Rate)
}

// selectMine returns the idle reachable mine with the lowest supply score.
// Ties go to the mine loaded first. The scored candidates are returned for
// tracing, in load order.
func (sim *Simulator) selectMine(target string, required int) (*Clan, int, []trace.CandidateScore) {
	var (
		best       *Clan
		bestTravel int
		bestScore  float64
		candidates []trace.CandidateScore
	)
	for _, m := range sim.mines() {
		if m.Busy {
			continue
		}
		travel, ok := sim.Network.ShortestTime(target, m.Name)
		if !ok {
			continue
		}
		score := supplyScore(travel, required, m)
		candidates = append(candidates, trace.CandidateScore{Mine: m.Name, Travel: travel, Score: score})
		if best == nil || score < bestScore {
			best, bestTravel, bestScore = m, travel, score
		}
	}
	return best, bestTravel, candidates
}

// Dispatch starts a campaign against target at the current clock. It picks
// the best supplier and schedules the troops' arrival there. When no idle
// reachable mine exists the campaign is dropped and ok is false.
func (sim *Simulator) Dispatch(target string, required int, yield float64) (camp *Campaign, ok bool) {
	sim.campaignSeq++
	id := uuid.NewSHA1(campaignNamespace, []byte(strconv.Itoa(sim.campaignSeq))).String()

	mine, travel, candidates := sim.selectMine(target, required)
	record := trace.DispatchRecord{
		CampaignID: id,
		Clock:      sim.Clock,
		Target:     target,
		Required:   required,
	}
	defer func() {
		if sim.Trace == nil {
			return
		}
		sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Score < candidates[j].Score })
		record.Candidates = candidates
		sim.Trace.RecordDispatch(record)
	}()

	if mine == nil {
		record.Reason = "no idle reachable mine"
		logrus.Infof("campaign %s against %s dropped: no idle reachable mine (t=%g)", id, target, sim.Clock)
		return nil, false
	}

	camp = &Campaign{
		ID:       id,
		Target:   target,
		Required: required,
		Yield:    yield,
		Mine:     mine.Name,
	}
	record.ChosenMine = mine.Name
	record.Reason = fmt.Sprintf("min round trip (travel=%d, score=%g)", travel, supplyScore(travel, required, mine))
	logrus.Infof("campaign %s dispatched (t=%g)", camp, sim.Clock)

	sim.Schedule(&ArrivalEvent{time: sim.Clock + float64(travel), Campaign: camp})
	return camp, true
}
