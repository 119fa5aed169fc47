// Package topology loads the clan network a simulation runs on.
//
// Two input formats are accepted: the XML layout of the game data files
// (Clan and Road elements at any depth) and an equivalent YAML layout.
// Malformed records are skipped with a warning; they never abort a load.
package topology

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/clan-sim/clan-sim/sim"
)

// ErrMalformedRecord marks a clan or road record that cannot be used.
var ErrMalformedRecord = errors.New("malformed record")

// Format identifies a topology file layout.
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported topology file extension %q", filepath.Ext(path))
}

// ClanSpec is a validated clan record.
type ClanSpec struct {
	Name       string
	IsMine     bool
	Capacity   int
	Rate       int
	RefillTime int
}

// NewClan builds the simulator clan for the record.
func (c ClanSpec) NewClan() *sim.Clan {
	if !c.IsMine {
		return sim.NewClan(c.Name)
	}
	return sim.NewMine(c.Name, c.Capacity, c.Rate, c.RefillTime)
}

// Topology is the decoded network, in file order.
type Topology struct {
	Clans   []ClanSpec
	Roads   []sim.Road
	Skipped []string // reasons for records dropped while decoding
}

func (t *Topology) skip(err error) {
	logrus.Warnf("topology: skipping record: %v", err)
	t.Skipped = append(t.Skipped, err.Error())
}

// LoadReport describes what Apply put into a simulator.
type LoadReport struct {
	Clans   int
	Mines   int
	Roads   int
	Skipped []string
}

// Load reads and decodes a topology file.
func Load(path string) (*Topology, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening topology: %w", err)
	}
	defer f.Close()
	return Decode(f, format)
}

// Decode reads a topology in the given format.
func Decode(r io.Reader, format Format) (*Topology, error) {
	switch format {
	case FormatXML:
		return decodeXML(r)
	case FormatYAML:
		return decodeYAML(r)
	}
	return nil, fmt.Errorf("unknown topology format %q", format)
}

// Apply adds every clan, then every road, to s. Records the simulator
// refuses (duplicate names, roads to unknown clans) are skipped and listed
// in the report together with those dropped while decoding.
func (t *Topology) Apply(s *sim.Simulator) *LoadReport {
	report := &LoadReport{Skipped: append([]string(nil), t.Skipped...)}
	for _, c := range t.Clans {
		if err := s.AddClan(c.NewClan()); err != nil {
			logrus.Warnf("topology: skipping clan: %v", err)
			report.Skipped = append(report.Skipped, err.Error())
			continue
		}
		report.Clans++
		if c.IsMine {
			report.Mines++
		}
	}
	for _, r := range t.Roads {
		if err := s.AddRoad(r); err != nil {
			logrus.Warnf("topology: skipping road: %v", err)
			report.Skipped = append(report.Skipped, err.Error())
			continue
		}
		report.Roads++
	}
	return report
}

// LoadInto loads path and applies it to s.
func LoadInto(path string, s *sim.Simulator) (*LoadReport, error) {
	t, err := Load(path)
	if err != nil {
		return nil, err
	}
	return t.Apply(s), nil
}

func (c ClanSpec) check() error {
	if c.Name == "" {
		return fmt.Errorf("clan without name: %w", ErrMalformedRecord)
	}
	if !c.IsMine {
		return nil
	}
	if c.Capacity < 0 || c.Rate < 0 || c.RefillTime < 0 {
		return fmt.Errorf("clan %q has negative mine parameters: %w", c.Name, ErrMalformedRecord)
	}
	return nil
}

func checkRoad(r sim.Road) error {
	if r.From == "" || r.To == "" {
		return fmt.Errorf("road %q-%q missing endpoint: %w", r.From, r.To, ErrMalformedRecord)
	}
	if r.Time < 0 {
		return fmt.Errorf("road %s has negative time: %w", r, ErrMalformedRecord)
	}
	return nil
}
