// Package queries parses the line-oriented query stream.
//
// Each line has the form "<time>: <command>", where command is one of
//
//	Attack on <clan> with <units> RR & <gold> GCO
//	<clan> has been blocked for <duration> sec
//	Show the current status of all mines
//	Produce the current amount of Gold captured
//	Victory of Codeopia
//
// Lines that do not match are skipped; they never stop the stream.
package queries

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/clan-sim/clan-sim/sim"
)

var (
	// ErrMalformedQuery is returned for a recognized command with bad arguments.
	ErrMalformedQuery = errors.New("malformed query")
	// ErrUnknownQuery is returned for a line that names no known command.
	ErrUnknownQuery = errors.New("unknown query")
)

const (
	prefixAttack  = "Attack on"
	prefixStatus  = "Show the current status"
	prefixGold    = "Produce the current amount of Gold captured"
	prefixVictory = "Victory of Codeopia"
	markerBlock   = "has been blocked"
)

// SkippedLine records an input line that produced no query.
type SkippedLine struct {
	Line   int
	Text   string
	Reason string
}

// Result holds the parsed stream.
type Result struct {
	Queries []sim.Query
	Skipped []SkippedLine
}

// Parse reads every line of r. Only read errors are returned; bad lines end
// up in Result.Skipped.
func Parse(r io.Reader) (*Result, error) {
	res := &Result{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		q, err := ParseLine(text)
		if err != nil {
			logrus.Warnf("queries: line %d skipped: %v", lineNo, err)
			res.Skipped = append(res.Skipped, SkippedLine{Line: lineNo, Text: text, Reason: err.Error()})
			continue
		}
		res.Queries = append(res.Queries, q)
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("reading queries: %w", err)
	}
	return res, nil
}

// ParseLine parses a single query line.
func ParseLine(line string) (sim.Query, error) {
	stamp, command, found := strings.Cut(strings.TrimSpace(line), ":")
	if !found {
		return nil, fmt.Errorf("%q has no timestamp: %w", line, ErrMalformedQuery)
	}
	at, err := strconv.ParseInt(strings.TrimSpace(stamp), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("timestamp %q: %w", stamp, ErrMalformedQuery)
	}
	command = strings.TrimSpace(command)

	switch {
	case strings.HasPrefix(command, prefixAttack):
		return parseAttack(at, command)
	case strings.HasPrefix(command, prefixStatus):
		return sim.StatusQuery{At: at}, nil
	case strings.HasPrefix(command, prefixGold):
		return sim.GoldQuery{At: at}, nil
	case strings.HasPrefix(command, prefixVictory):
		return sim.AdvanceQuery{At: at}, nil
	case strings.Contains(command, markerBlock):
		return parseBlock(at, command)
	}
	return nil, fmt.Errorf("%q: %w", command, ErrUnknownQuery)
}

// parseAttack reads "Attack on <clan> with <units> RR & <gold> GCO".
func parseAttack(at int64, command string) (sim.Query, error) {
	f := strings.Fields(command)
	if len(f) < 8 || f[3] != "with" {
		return nil, fmt.Errorf("attack %q: %w", command, ErrMalformedQuery)
	}
	required, err := strconv.Atoi(f[4])
	if err != nil || required < 0 {
		return nil, fmt.Errorf("attack units %q: %w", f[4], ErrMalformedQuery)
	}
	yield, err := strconv.ParseFloat(f[7], 64)
	if err != nil || yield < 0 {
		return nil, fmt.Errorf("attack gold %q: %w", f[7], ErrMalformedQuery)
	}
	return sim.AttackQuery{At: at, Target: f[2], Required: required, Yield: yield}, nil
}

// parseBlock reads "<clan> has been blocked for <duration> ...".
func parseBlock(at int64, command string) (sim.Query, error) {
	f := strings.Fields(command)
	if len(f) < 6 || f[4] != "for" {
		return nil, fmt.Errorf("block %q: %w", command, ErrMalformedQuery)
	}
	duration, err := strconv.Atoi(f[5])
	if err != nil || duration < 0 {
		return nil, fmt.Errorf("block duration %q: %w", f[5], ErrMalformedQuery)
	}
	return sim.BlockQuery{At: at, Clan: f[0], Duration: duration}, nil
}
