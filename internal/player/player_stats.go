package player

import (
	"fmt"
	"math"
)

// BattingStats holds a player's cumulative batting numbers for one match.
type BattingStats struct {
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	StrikeRate float64 `json:"strike_rate"`
}

// RecordDelivery credits one ball faced and the runs scored off it.
func (s *BattingStats) RecordDelivery(runs int, isFour, isSix bool) {
	s.Runs += runs
	s.Balls++
	if isFour {
		s.Fours++
	}
	if isSix {
		s.Sixes++
	}
	s.updateStrikeRate()
}

func (s *BattingStats) updateStrikeRate() {
	if s.Balls == 0 {
		s.StrikeRate = 0
		return
	}
	s.StrikeRate = round2(float64(s.Runs) / float64(s.Balls) * 100)
}

// BowlingStats holds a player's cumulative bowling numbers for one match.
// Balls counts legal deliveries; Overs is derived from it.
type BowlingStats struct {
	Balls   int     `json:"balls"`
	Overs   float64 `json:"overs"`
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Economy float64 `json:"economy"`
	Wides   int     `json:"wides"`
	NoBalls int     `json:"no_balls"`
}

// RecordDelivery counts one legal delivery and the runs conceded off it.
func (s *BowlingStats) RecordDelivery(runsConceded int) {
	s.Balls++
	s.Overs = float64(s.Balls) / 6
	s.Runs += runsConceded
	s.updateEconomy()
}

// RecordWide charges a wide to the bowler. The over count does not move.
func (s *BowlingStats) RecordWide(runs int) {
	s.Wides++
	s.Runs += runs
	s.updateEconomy()
}

// RecordNoBall charges a no-ball to the bowler. The over count does not move.
func (s *BowlingStats) RecordNoBall(runs int) {
	s.NoBalls++
	s.Runs += runs
	s.updateEconomy()
}

func (s *BowlingStats) RecordWicket() {
	s.Wickets++
	s.updateEconomy()
}

// Average is runs conceded per wicket, 0 without wickets.
func (s BowlingStats) Average() float64 {
	if s.Wickets == 0 {
		return 0
	}
	return round2(float64(s.Runs) / float64(s.Wickets))
}

// OversNotation renders overs the way a scorecard does, e.g. "3.4".
func (s BowlingStats) OversNotation() string {
	return fmt.Sprintf("%d.%d", s.Balls/6, s.Balls%6)
}

func (s *BowlingStats) updateEconomy() {
	if s.Balls == 0 {
		s.Economy = 0
		return
	}
	s.Economy = round2(float64(s.Runs) * 6 / float64(s.Balls))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
