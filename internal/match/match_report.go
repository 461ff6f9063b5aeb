package match

import (
	"fmt"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/crease/internal/player"
	"github.com/DhavalSuthar-24/crease/internal/report"
	"github.com/DhavalSuthar-24/crease/internal/team"
)

const leadersPerTeam = 3

// BuildCard assembles the printable scorecard of m.
func BuildCard(meta Meta, m *Match, now time.Time) report.Card {
	card := report.Card{
		Title:       fmt.Sprintf("%s: %s vs %s", meta.Name, m.TeamA().Name, m.TeamB().Name),
		Status:      statusLine(m),
		GeneratedAt: now,
	}
	if !m.Started() {
		return card
	}

	if first := m.FirstInnings(); first != nil {
		bat, bowl := m.BowlingTeam(), m.BattingTeam()
		card.Innings = append(card.Innings, inningsCard(*first, bat, bowl, nil))
	}
	card.Innings = append(card.Innings, inningsCard(m.InningsSummary(), m.BattingTeam(), m.BowlingTeam(), m))

	for _, t := range []*team.Team{m.TeamA(), m.TeamB()} {
		card.Leaders = append(card.Leaders, leaders(t))
	}

	if r, ok := m.Result(); ok {
		rc := &report.ResultCard{Summary: resultLine(r)}
		if r.PlayerOfMatch != nil {
			rc.PlayerOfMatch = fmt.Sprintf("%s (%s)", r.PlayerOfMatch.Name, r.PlayerOfMatch.Team)
		}
		card.Result = rc
	}
	return card
}

// inningsCard renders one innings. live is the match when this is the
// current innings, so dismissals and not-outs can be resolved.
func inningsCard(sum InningsSummary, bat, bowl *team.Team, live *Match) report.InningsCard {
	ic := report.InningsCard{
		Team:     sum.Team,
		Runs:     sum.Runs,
		Wickets:  sum.Wickets,
		Overs:    sum.Overs,
		MaxOvers: sum.MaxOvers,
		Extras: report.ExtrasLine{
			Total:   sum.Extras.Total,
			Wides:   sum.Extras.Wides,
			NoBalls: sum.Extras.NoBalls,
			Byes:    sum.Extras.Byes,
			LegByes: sum.Extras.LegByes,
		},
	}
	for _, id := range bat.BattingOrder {
		p, ok := bat.Player(id)
		if !ok {
			continue
		}
		line := report.BattingLine{
			Name:       p.Name,
			Runs:       p.Batting.Runs,
			Balls:      p.Batting.Balls,
			Fours:      p.Batting.Fours,
			Sixes:      p.Batting.Sixes,
			StrikeRate: p.Batting.StrikeRate,
		}
		if live != nil {
			line.Dismissal = live.dismissalText(id)
		}
		ic.Batting = append(ic.Batting, line)
	}
	for _, id := range bowl.BowlingOrder {
		p, ok := bowl.Player(id)
		if !ok {
			continue
		}
		ic.Bowling = append(ic.Bowling, report.BowlingLine{
			Name:    p.Name,
			Overs:   p.Bowling.OversNotation(),
			Runs:    p.Bowling.Runs,
			Wickets: p.Bowling.Wickets,
			Economy: p.Bowling.Economy,
			Wides:   p.Bowling.Wides,
			NoBalls: p.Bowling.NoBalls,
		})
	}
	return ic
}

func (m *Match) dismissalText(id string) string {
	if id == m.strikerID || id == m.nonStrikerID {
		return "not out"
	}
	d, ok := m.Dismissal(id)
	if !ok {
		return ""
	}
	switch d.Type {
	case WicketBowled.Label():
		return "b " + d.Bowler
	case WicketCaught.Label():
		if d.Catcher == "" {
			return "caught b " + d.Bowler
		}
		if d.Catcher == d.Bowler {
			return "c & b " + d.Bowler
		}
		return "c " + d.Catcher + " b " + d.Bowler
	case WicketLBW.Label():
		return "lbw b " + d.Bowler
	case WicketStumped.Label():
		if d.Catcher == "" {
			return "st b " + d.Bowler
		}
		return "st " + d.Catcher + " b " + d.Bowler
	case WicketHitWicket.Label():
		return "hit wicket b " + d.Bowler
	case WicketRunOut.Label():
		if len(d.RunOutBy) == 0 {
			return "run out"
		}
		return "run out (" + strings.Join(d.RunOutBy, ", ") + ")"
	}
	return strings.ToLower(d.Type)
}

func leaders(t *team.Team) report.TeamLeaders {
	tl := report.TeamLeaders{Team: t.Name}
	for _, p := range t.TopBatsmen(leadersPerTeam) {
		if p.Batting.Balls == 0 {
			continue
		}
		tl.Batsmen = append(tl.Batsmen, report.Leader{Name: p.Name, Value: battingFigure(p)})
	}
	for _, p := range t.TopBowlers(leadersPerTeam) {
		if p.Bowling.Balls == 0 && p.Bowling.Runs == 0 {
			continue
		}
		tl.Bowlers = append(tl.Bowlers, report.Leader{Name: p.Name, Value: bowlingFigure(p)})
	}
	return tl
}

func battingFigure(p *player.Player) string {
	return fmt.Sprintf("%d (%d)", p.Batting.Runs, p.Batting.Balls)
}

func bowlingFigure(p *player.Player) string {
	return fmt.Sprintf("%d/%d (%s)", p.Bowling.Wickets, p.Bowling.Runs, p.Bowling.OversNotation())
}

func statusLine(m *Match) string {
	switch m.Phase() {
	case PhaseSetup:
		return "Match not started"
	case PhaseInningsBreak:
		return fmt.Sprintf("Innings break. %s need %d runs to win", m.BowlingTeam().Name, m.TotalRuns()+1)
	case PhaseComplete:
		r, _ := m.Result()
		return resultLine(r)
	}
	if m.Innings() == 2 {
		need := m.Target() - m.TotalRuns()
		left := m.MaxOvers()*6 - (m.CurrentOver()*6 + m.CurrentBall())
		return fmt.Sprintf("%s need %s from %s", m.BattingTeam().Name, plural(need, "run"), plural(left, "ball"))
	}
	return fmt.Sprintf("%s batting, %s of %d overs", m.BattingTeam().Name, m.OversString(), m.MaxOvers())
}

func resultLine(r Result) string {
	if r.Tie {
		return "Match tied"
	}
	return fmt.Sprintf("%s won by %s", r.Winner, r.Margin)
}
