package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBattingStrikeRate(t *testing.T) {
	var s BattingStats
	assert.Equal(t, 0.0, s.StrikeRate)

	s.RecordDelivery(4, true, false)
	s.RecordDelivery(0, false, false)
	s.RecordDelivery(1, false, false)

	assert.Equal(t, 5, s.Runs)
	assert.Equal(t, 3, s.Balls)
	assert.Equal(t, 1, s.Fours)
	assert.Equal(t, 0, s.Sixes)
	assert.Equal(t, 166.67, s.StrikeRate)
}

func TestBowlingOversAndEconomy(t *testing.T) {
	var s BowlingStats
	for i := 0; i < 6; i++ {
		s.RecordDelivery(1)
	}
	assert.Equal(t, 6, s.Balls)
	assert.Equal(t, 1.0, s.Overs)
	assert.Equal(t, 6.0, s.Economy)
	assert.Equal(t, "1.0", s.OversNotation())

	s.RecordDelivery(4)
	assert.Equal(t, "1.1", s.OversNotation())
	assert.Equal(t, 8.57, s.Economy)
}

func TestBowlingExtrasDoNotCountOvers(t *testing.T) {
	var s BowlingStats
	s.RecordWide(1)
	s.RecordNoBall(1)

	assert.Equal(t, 0, s.Balls)
	assert.Equal(t, 0.0, s.Overs)
	assert.Equal(t, 2, s.Runs)
	assert.Equal(t, 1, s.Wides)
	assert.Equal(t, 1, s.NoBalls)
	assert.Equal(t, 0.0, s.Economy)
}

func TestBowlingAverage(t *testing.T) {
	s := BowlingStats{Runs: 25}
	assert.Equal(t, 0.0, s.Average())

	s.RecordWicket()
	s.RecordWicket()
	s.RecordWicket()
	assert.Equal(t, 3, s.Wickets)
	assert.Equal(t, 8.33, s.Average())
}

func TestParseRole(t *testing.T) {
	tests := map[string]Role{
		"Batsman":       RoleBatsman,
		"bowler":        RoleBowler,
		"All-rounder":   RoleAllRounder,
		"all_rounder":   RoleAllRounder,
		"Wicket Keeper": RoleWicketKeeper,
		"keeper":        RoleWicketKeeper,
		"":              RoleUnknown,
		"umpire":        RoleUnknown,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseRole(in), in)
	}
}

func TestCapabilities(t *testing.T) {
	assert.True(t, New("a", RoleBowler).Can(CanBowl))
	assert.True(t, New("b", RoleAllRounder).Can(CanBowl))
	assert.False(t, New("c", RoleBatsman).Can(CanBowl))
	assert.False(t, New("d", RoleUnknown).Can(CanBowl))
	assert.True(t, New("e", RoleWicketKeeper).Can(CanKeep))

	for _, r := range roles {
		assert.True(t, r.Capabilities().Contains(CanBat), r)
	}
}

func TestNewPlayer(t *testing.T) {
	a := New("  Virat ", RoleBatsman)
	b := New("Virat", RoleBatsman)

	require.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "Virat", a.Name)
	assert.Equal(t, "Batsman", a.Role.Label())

	a.Batting.RecordDelivery(6, false, true)
	a.Bowling.RecordWicket()
	a.ResetStats()
	assert.Equal(t, BattingStats{}, a.Batting)
	assert.Equal(t, BowlingStats{}, a.Bowling)
}

func TestStatsView(t *testing.T) {
	p := New("Bumrah", RoleBowler)
	p.Bowling.RecordDelivery(3)
	p.Bowling.RecordWicket()

	st := p.Stats()
	assert.Equal(t, p.ID, st.ID)
	assert.Equal(t, 3.0, st.Bowling.Average)
	assert.Equal(t, 1, st.Bowling.Wickets)
}
