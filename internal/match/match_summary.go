package match

import (
	"fmt"
	"sort"

	"github.com/DhavalSuthar-24/crease/internal/team"
)

// Extras is the innings extras breakdown.
type Extras struct {
	Total   int `json:"total"`
	Wides   int `json:"wides"`
	NoBalls int `json:"no_balls"`
	Byes    int `json:"byes"`
	LegByes int `json:"leg_byes"`
}

// TallyExtras counts extras in a ball log: wides and no-balls count once each,
// byes and leg-byes count their runs.
func TallyExtras(events []BallEvent) Extras {
	var x Extras
	for _, ev := range events {
		switch ev.ExtraType {
		case ExtraWide:
			x.Wides++
		case ExtraNoBall:
			x.NoBalls++
		case ExtraBye:
			x.Byes += ev.Runs
		case ExtraLegBye:
			x.LegByes += ev.Runs
		}
	}
	x.Total = x.Wides + x.NoBalls + x.Byes + x.LegByes
	return x
}

// InningsSummary is the aggregate of one innings.
type InningsSummary struct {
	Team     string `json:"team"`
	Runs     int    `json:"runs"`
	Wickets  int    `json:"wickets"`
	Overs    string `json:"overs"`
	MaxOvers int    `json:"max_overs"`
	Extras   Extras `json:"extras"`
}

// InningsSummary summarizes the current innings.
func (m *Match) InningsSummary() InningsSummary {
	return InningsSummary{
		Team:     m.BattingTeam().Name,
		Runs:     m.totalRuns,
		Wickets:  m.wickets,
		Overs:    m.OversString(),
		MaxOvers: m.maxOvers,
		Extras:   TallyExtras(m.events),
	}
}

// PlayerScore is one player's contribution used to pick the player of the match.
type PlayerScore struct {
	PlayerID       string `json:"player_id"`
	Name           string `json:"name"`
	Team           string `json:"team"`
	BattingRuns    int    `json:"batting_runs"`
	BattingBalls   int    `json:"batting_balls"`
	BowlingWickets int    `json:"bowling_wickets"`
	BowlingRuns    int    `json:"bowling_runs"`
	TotalScore     int    `json:"total_score"`
}

// Result is the outcome of a completed match.
type Result struct {
	Winner        string         `json:"winner"`
	Margin        string         `json:"margin"`
	Tie           bool           `json:"tie"`
	FirstInnings  InningsSummary `json:"first_innings"`
	SecondInnings InningsSummary `json:"second_innings"`
	PlayerOfMatch *PlayerScore   `json:"player_of_match,omitempty"`
	AllPlayers    []PlayerScore  `json:"all_players"`
}

// Winner returns the winning team name once the match is complete. It is
// empty on a tie.
func (m *Match) Winner() (string, bool) {
	if !m.IsMatchComplete() {
		return "", false
	}
	first := m.firstInnings.Runs
	switch {
	case m.totalRuns > first:
		return m.BattingTeam().Name, true
	case m.totalRuns < first:
		return m.BowlingTeam().Name, true
	}
	return "", true
}

// Result derives winner, margin and player of the match. ok is false until the
// match is complete.
func (m *Match) Result() (Result, bool) {
	if !m.IsMatchComplete() {
		return Result{}, false
	}
	winner, _ := m.Winner()
	first := m.firstInnings.Runs
	r := Result{
		Winner:        winner,
		FirstInnings:  *m.firstInnings,
		SecondInnings: m.InningsSummary(),
	}
	switch {
	case m.totalRuns > first:
		r.Margin = plural(m.BattingTeam().Size()-m.wickets, "wicket")
	case m.totalRuns < first:
		r.Margin = plural(first-m.totalRuns, "run")
	default:
		r.Margin = "Tie"
		r.Tie = true
	}

	scores := m.playerScores()
	for i := range scores {
		if r.PlayerOfMatch == nil || scores[i].TotalScore > r.PlayerOfMatch.TotalScore {
			pom := scores[i]
			r.PlayerOfMatch = &pom
		}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].TotalScore > scores[j].TotalScore })
	r.AllPlayers = scores
	return r, true
}

func (m *Match) playerScores() []PlayerScore {
	var out []PlayerScore
	for _, t := range []*team.Team{m.teamA, m.teamB} {
		for _, p := range t.Players {
			out = append(out, PlayerScore{
				PlayerID:       p.ID,
				Name:           p.Name,
				Team:           t.Name,
				BattingRuns:    p.Batting.Runs,
				BattingBalls:   p.Batting.Balls,
				BowlingWickets: p.Bowling.Wickets,
				BowlingRuns:    p.Bowling.Runs,
				TotalScore:     p.Batting.Runs + p.Bowling.Wickets*20 + p.Bowling.Runs/10,
			})
		}
	}
	return out
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Dismissal describes how a batsman got out.
type Dismissal struct {
	Type     string   `json:"type"`
	Bowler   string   `json:"bowler,omitempty"`
	Catcher  string   `json:"catcher,omitempty"`
	RunOutBy []string `json:"runout_by"`
}

// Dismissal looks up the first wicket of playerID in the current innings log.
func (m *Match) Dismissal(playerID string) (Dismissal, bool) {
	for _, ev := range m.events {
		if !ev.IsWicket || ev.BatsmanID != playerID {
			continue
		}
		d := Dismissal{Type: ev.WicketType.Label(), RunOutBy: []string{}}
		if p, ok := m.lookup(ev.BowlerID); ok {
			d.Bowler = p.Name
		}
		if p, ok := m.lookup(ev.CatcherID); ok {
			d.Catcher = p.Name
		}
		for _, id := range ev.RunOutBy {
			if p, ok := m.lookup(id); ok {
				d.RunOutBy = append(d.RunOutBy, p.Name)
			}
		}
		return d, true
	}
	return Dismissal{}, false
}

// Snapshot is the read contract handed to the API, the live feed and reports.
type Snapshot struct {
	Phase          Phase           `json:"phase"`
	Innings        int             `json:"innings"`
	BattingTeam    string          `json:"batting_team,omitempty"`
	BowlingTeam    string          `json:"bowling_team,omitempty"`
	Runs           int             `json:"runs"`
	Wickets        int             `json:"wickets"`
	Overs          string          `json:"overs"`
	MaxOvers       int             `json:"max_overs"`
	Target         int             `json:"target,omitempty"`
	Striker        string          `json:"striker,omitempty"`
	NonStriker     string          `json:"non_striker,omitempty"`
	Bowler         string          `json:"bowler,omitempty"`
	BowlerRequired bool            `json:"bowler_required"`
	FirstInnings   *InningsSummary `json:"first_innings,omitempty"`
	Current        InningsSummary  `json:"current_innings"`
	Balls          []BallEvent     `json:"balls"`
	Teams          []team.View     `json:"teams"`
	Result         *Result         `json:"result,omitempty"`
}

func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Phase:          m.Phase(),
		Innings:        m.innings,
		Runs:           m.totalRuns,
		Wickets:        m.wickets,
		Overs:          m.OversString(),
		MaxOvers:       m.maxOvers,
		Target:         m.Target(),
		BowlerRequired: m.BowlerRequired(),
		FirstInnings:   m.FirstInnings(),
		Balls:          append([]BallEvent{}, m.events...),
		Teams:          []team.View{m.teamA.View(), m.teamB.View()},
	}
	if m.started {
		s.BattingTeam = m.BattingTeam().Name
		s.BowlingTeam = m.BowlingTeam().Name
		s.Current = m.InningsSummary()
	}
	if p, ok := m.Striker(); ok {
		s.Striker = p.Name
	}
	if p, ok := m.NonStriker(); ok {
		s.NonStriker = p.Name
	}
	if p, ok := m.Bowler(); ok {
		s.Bowler = p.Name
	}
	if r, ok := m.Result(); ok {
		s.Result = &r
	}
	return s
}
