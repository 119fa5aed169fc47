package topology

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/clan-sim/clan-sim/sim"
)

// yamlTopology keeps each record as a raw node so that one bad record does
// not fail the whole document.
type yamlTopology struct {
	Clans []yaml.Node `yaml:"clans"`
	Roads []yaml.Node `yaml:"roads"`
}

type yamlClan struct {
	Name       string `yaml:"name"`
	Mine       bool   `yaml:"mine"`
	Capacity   int    `yaml:"capacity"`
	Rate       int    `yaml:"rate"`
	RefillTime int    `yaml:"refill_time"`
}

type yamlRoad struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Time int    `yaml:"time"`
}

var (
	clanKeys = []string{"name", "mine", "capacity", "rate", "refill_time"}
	roadKeys = []string{"from", "to", "time"}
)

// decodeRecord decodes one record node into v. Node.Decode does not honour
// KnownFields, so unknown keys are checked here.
func decodeRecord(n *yaml.Node, known []string, v any) error {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if !slices.Contains(known, key.Value) {
				return fmt.Errorf("line %d: field %s not found", key.Line, key.Value)
			}
		}
	}
	return n.Decode(v)
}

func decodeYAML(r io.Reader) (*Topology, error) {
	var doc yamlTopology
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing topology YAML: %w", err)
	}

	t := &Topology{}
	for i := range doc.Clans {
		var yc yamlClan
		if err := decodeRecord(&doc.Clans[i], clanKeys, &yc); err != nil {
			t.skip(fmt.Errorf("clan at line %d: %v: %w", doc.Clans[i].Line, err, ErrMalformedRecord))
			continue
		}
		spec := ClanSpec{Name: yc.Name, IsMine: yc.Mine}
		if yc.Mine {
			spec.Capacity, spec.Rate, spec.RefillTime = yc.Capacity, yc.Rate, yc.RefillTime
		}
		if err := spec.check(); err != nil {
			t.skip(err)
			continue
		}
		t.Clans = append(t.Clans, spec)
	}
	for i := range doc.Roads {
		var yr yamlRoad
		if err := decodeRecord(&doc.Roads[i], roadKeys, &yr); err != nil {
			t.skip(fmt.Errorf("road at line %d: %v: %w", doc.Roads[i].Line, err, ErrMalformedRecord))
			continue
		}
		road := sim.Road{From: yr.From, To: yr.To, Time: yr.Time}
		if err := checkRoad(road); err != nil {
			t.skip(err)
			continue
		}
		t.Roads = append(t.Roads, road)
	}
	return t, nil
}
