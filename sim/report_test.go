package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusReport_DescendingCapacity_StableOnTies(t *testing.T) {
	mines := []*Clan{
		NewMine("small", 5, 1, 1),
		NewMine("big", 50, 1, 1),
		NewMine("mid1", 20, 1, 1),
		NewMine("mid2", 20, 1, 1),
	}
	r := newStatusReport(0, mines)

	assert.Equal(t,
		"big: 50/50 available mid1: 20/20 available mid2: 20/20 available small: 5/5 available",
		r.String())
}

func TestStatusReport_NoMines_EmptyLine(t *testing.T) {
	assert.Equal(t, "", newStatusReport(0, nil).String())
}

func TestFormatGold(t *testing.T) {
	tests := []struct {
		gold float64
		want string
	}{
		{0, "0"},
		{50, "50"},
		{12.5, "12.5"},
		{1234567, "1234567"},
		{0.1 + 0.2, "0.30000000000000004"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatGold(tc.gold))
	}
	assert.Equal(t, "Gold captured: 12.5", GoldLine(12.5))
}
