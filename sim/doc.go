// Package sim provides the discrete-event engine for clan-sim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - clan.go: per-mine resource and blockade state machine
//   - event.go: event types that drive the simulation (Arrival, ExtractionComplete, ...)
//   - simulator.go: the simulation context and the drain-to-time loop
//
// # Architecture
//
// A Simulator owns the clock, the cumulative gold, the clans in load order,
// the road Network and the EventQueue. Queries (query.go) are the only way
// time moves: each one drains every event up to its timestamp and then
// applies its effect. Attacks go through the dispatcher (dispatch.go), which
// picks the idle reachable mine with the shortest round trip.
//
// Sub-packages:
//   - sim/topology/: loads clans and roads from XML or YAML
//   - sim/queries/: parses the line-oriented query stream
//   - sim/trace/: decision trace recording
package sim
