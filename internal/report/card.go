// Package report renders match scorecards as HTML, PDF and plain text.
package report

import "time"

// Card is everything a rendered scorecard shows.
type Card struct {
	Title       string
	Status      string
	Innings     []InningsCard
	Leaders     []TeamLeaders
	Result      *ResultCard
	GeneratedAt time.Time
}

// InningsCard is one innings of the scorecard.
type InningsCard struct {
	Team     string
	Runs     int
	Wickets  int
	Overs    string
	MaxOvers int
	Extras   ExtrasLine
	Batting  []BattingLine
	Bowling  []BowlingLine
}

type ExtrasLine struct {
	Total   int
	Wides   int
	NoBalls int
	Byes    int
	LegByes int
}

type BattingLine struct {
	Name       string
	Dismissal  string
	Runs       int
	Balls      int
	Fours      int
	Sixes      int
	StrikeRate float64
}

type BowlingLine struct {
	Name    string
	Overs   string
	Runs    int
	Wickets int
	Economy float64
	Wides   int
	NoBalls int
}

// TeamLeaders holds the top performers of one team.
type TeamLeaders struct {
	Team    string
	Batsmen []Leader
	Bowlers []Leader
}

type Leader struct {
	Name  string
	Value string
}

type ResultCard struct {
	Summary       string
	PlayerOfMatch string
}
