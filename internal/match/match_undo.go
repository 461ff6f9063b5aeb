package match

import (
	"fmt"

	"github.com/DhavalSuthar-24/crease/internal/team"
)

// baseline is the team state captured when an innings starts.
type baseline struct {
	TeamA *team.Team `json:"team_a"`
	TeamB *team.Team `json:"team_b"`
}

func (m *Match) captureBaseline() *baseline {
	return &baseline{TeamA: m.teamA.Clone(), TeamB: m.teamB.Clone()}
}

// UndoLastEvent removes the most recent delivery of the current innings and
// rewinds every counter to the state just before it. Selections made after
// that delivery are dropped too. It returns nil when there is nothing to undo.
func (m *Match) UndoLastEvent() (*BallEvent, error) {
	if !m.started {
		return nil, ErrMatchNotStarted
	}
	if m.IsMatchComplete() {
		return nil, ErrMatchComplete
	}
	cut := -1
	for i := len(m.journal) - 1; i >= 0; i-- {
		if m.journal[i].delivery() {
			cut = i
			break
		}
	}
	if cut < 0 || len(m.events) == 0 {
		return nil, nil
	}
	undone := m.events[len(m.events)-1]

	saved := m.clone()
	if err := m.replay(m.journal[:cut]); err != nil {
		*m = *saved
		return nil, fmt.Errorf("undo: %w", err)
	}
	return &undone, nil
}

// replay restores the innings baseline and reapplies actions in order.
func (m *Match) replay(actions []action) error {
	actions = append([]action(nil), actions...)
	restoreTeam(m.teamA, m.baseline.TeamA)
	restoreTeam(m.teamB, m.baseline.TeamB)

	m.currentOver, m.currentBall = 0, 0
	m.totalRuns, m.wickets = 0, 0
	m.strikerID, m.nonStrikerID, m.bowlerID = "", "", ""
	m.events = nil
	m.journal = nil

	for i, a := range actions {
		if err := m.do(a); err != nil {
			return fmt.Errorf("replay action %d (%s): %w", i, a.Kind, err)
		}
	}
	return nil
}

// restoreTeam puts statistics and orders back to the snapshot. Players added
// after the snapshot are kept on the roster with zeroed statistics.
func restoreTeam(dst, snap *team.Team) {
	for _, p := range dst.Players {
		if sp, ok := snap.Player(p.ID); ok {
			p.Batting = sp.Batting
			p.Bowling = sp.Bowling
		} else {
			p.ResetStats()
		}
	}
	dst.BattingOrder = append([]string(nil), snap.BattingOrder...)
	dst.BowlingOrder = append([]string(nil), snap.BowlingOrder...)
}

// clone deep-copies the match.
func (m *Match) clone() *Match {
	c := *m
	c.teamA = m.teamA.Clone()
	c.teamB = m.teamB.Clone()
	if m.firstInnings != nil {
		fi := *m.firstInnings
		c.firstInnings = &fi
	}
	c.events = append([]BallEvent(nil), m.events...)
	c.journal = append([]action(nil), m.journal...)
	if m.baseline != nil {
		c.baseline = &baseline{TeamA: m.baseline.TeamA.Clone(), TeamB: m.baseline.TeamB.Clone()}
	}
	return &c
}
