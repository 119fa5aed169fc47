package topology

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/clan-sim/clan-sim/sim"
)

// xmlClan mirrors a <Clan> element. Numeric fields are kept as text so a
// bad value only drops its own record.
type xmlClan struct {
	Name   string `xml:"Name"`
	IsMine string `xml:"IS_MINE"`
	MAR    string `xml:"MAR"`
	PTR    string `xml:"PTR"`
	RT     string `xml:"RT"`
}

type xmlRoad struct {
	From string `xml:"From"`
	To   string `xml:"To"`
	Time string `xml:"Time"`
}

func (xc xmlClan) spec() (ClanSpec, error) {
	spec := ClanSpec{
		Name:   strings.TrimSpace(xc.Name),
		IsMine: strings.EqualFold(strings.TrimSpace(xc.IsMine), "true"),
	}
	if spec.IsMine {
		var err error
		if spec.Capacity, err = parseInt(xc.MAR); err != nil {
			return spec, fmt.Errorf("clan %q MAR: %w", spec.Name, err)
		}
		if spec.Rate, err = parseInt(xc.PTR); err != nil {
			return spec, fmt.Errorf("clan %q PTR: %w", spec.Name, err)
		}
		if spec.RefillTime, err = parseInt(xc.RT); err != nil {
			return spec, fmt.Errorf("clan %q RT: %w", spec.Name, err)
		}
	}
	return spec, spec.check()
}

func (xr xmlRoad) road() (sim.Road, error) {
	r := sim.Road{From: strings.TrimSpace(xr.From), To: strings.TrimSpace(xr.To)}
	var err error
	if r.Time, err = parseInt(xr.Time); err != nil {
		return r, fmt.Errorf("road %q-%q Time: %w", r.From, r.To, err)
	}
	return r, checkRoad(r)
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", s, ErrMalformedRecord)
	}
	return v, nil
}

// decodeXML collects Clan and Road elements wherever they appear in the
// document. A document that is not well-formed XML fails as a whole.
func decodeXML(r io.Reader) (*Topology, error) {
	t := &Topology{}
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading topology XML: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "Clan":
			var xc xmlClan
			if err := dec.DecodeElement(&xc, &se); err != nil {
				return nil, fmt.Errorf("reading Clan element: %w", err)
			}
			spec, err := xc.spec()
			if err != nil {
				t.skip(err)
				continue
			}
			t.Clans = append(t.Clans, spec)
		case "Road":
			var xr xmlRoad
			if err := dec.DecodeElement(&xr, &se); err != nil {
				return nil, fmt.Errorf("reading Road element: %w", err)
			}
			road, err := xr.road()
			if err != nil {
				t.skip(err)
				continue
			}
			t.Roads = append(t.Roads, road)
		}
	}
}
