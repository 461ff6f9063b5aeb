package match

import (
	"fmt"

	"github.com/DhavalSuthar-24/crease/internal/player"
	"github.com/DhavalSuthar-24/crease/internal/team"
)

const ballsPerOver = 6

// Match is the scoring state machine for one two-innings limited-overs game.
// It is not safe for concurrent use; Store serializes writers per match.
type Match struct {
	teamA *team.Team
	teamB *team.Team

	started      bool
	innings      int
	battingIsA   bool
	maxOvers     int
	battingFirst string
	firstInnings *InningsSummary

	strikerID    string
	nonStrikerID string
	bowlerID     string

	currentOver int
	currentBall int
	totalRuns   int
	wickets     int

	events   []BallEvent
	journal  []action
	baseline *baseline
}

// New creates a match in the setup phase.
func New(teamA, teamB *team.Team) (*Match, error) {
	if teamA == nil || teamB == nil {
		return nil, setupError("both teams are required")
	}
	return &Match{teamA: teamA, teamB: teamB, innings: 1}, nil
}

// Start fixes overs and the side batting first, resets every player's
// statistics and opens the first innings.
func (m *Match) Start(maxOvers int, battingFirst string) error {
	if m.started {
		return setupError("match already started")
	}
	if m.teamA.Size() < 2 || m.teamB.Size() < 2 {
		return setupError("each team must have at least 2 players")
	}
	if m.teamA.Name == "" || m.teamB.Name == "" || m.teamA.Name == m.teamB.Name {
		return setupError("teams need distinct names")
	}
	if maxOvers <= 0 {
		return setupError("overs must be a positive number")
	}
	switch battingFirst {
	case m.teamA.Name:
		m.battingIsA = true
	case m.teamB.Name:
		m.battingIsA = false
	default:
		return setupError(fmt.Sprintf("batting first team %q is not in this match", battingFirst))
	}

	m.teamA.ResetStats()
	m.teamB.ResetStats()
	m.started = true
	m.innings = 1
	m.maxOvers = maxOvers
	m.battingFirst = battingFirst
	m.resetInnings()
	return nil
}

// SwitchInnings closes a completed first innings and hands the bat to the other side.
// Player statistics carry over.
func (m *Match) SwitchInnings() error {
	if !m.started {
		return ErrMatchNotStarted
	}
	if m.innings != 1 {
		if m.IsMatchComplete() {
			return ErrMatchComplete
		}
		return ErrInningsInProgress
	}
	if !m.IsInningsComplete() {
		return ErrInningsInProgress
	}
	summary := m.InningsSummary()
	m.firstInnings = &summary
	m.battingIsA = !m.battingIsA
	m.innings = 2
	m.resetInnings()
	return nil
}

func (m *Match) resetInnings() {
	m.currentOver, m.currentBall = 0, 0
	m.totalRuns, m.wickets = 0, 0
	m.strikerID, m.nonStrikerID, m.bowlerID = "", "", ""
	m.events = nil
	m.journal = nil
	m.baseline = m.captureBaseline()
}

// IsInningsComplete is true once overs are exhausted, the side is all out,
// or the chasing side has passed the target.
func (m *Match) IsInningsComplete() bool {
	if !m.started {
		return false
	}
	oversDone := m.currentOver >= m.maxOvers && m.currentBall == 0

	bat := m.BattingTeam()
	size := bat.Size()
	allOut := size > 0 && len(bat.BattingOrder) >= size && m.wickets >= size-1

	targetReached := m.innings == 2 && m.firstInnings != nil && m.totalRuns >= m.firstInnings.Runs+1

	return oversDone || allOut || targetReached
}

func (m *Match) IsMatchComplete() bool {
	return m.started && m.innings == 2 && m.firstInnings != nil && m.IsInningsComplete()
}

func (m *Match) Phase() Phase {
	switch {
	case !m.started:
		return PhaseSetup
	case m.IsMatchComplete():
		return PhaseComplete
	case m.innings == 1 && m.IsInningsComplete():
		return PhaseInningsBreak
	}
	return PhaseInProgress
}

// Target is the score the second innings must reach, 0 before it exists.
func (m *Match) Target() int {
	if m.firstInnings == nil {
		return 0
	}
	return m.firstInnings.Runs + 1
}

// BowlerRequired reports that an over has ended and no bowler is set for the next.
func (m *Match) BowlerRequired() bool {
	return m.started && m.bowlerID == "" && !m.IsInningsComplete()
}

func (m *Match) TeamA() *team.Team { return m.teamA }
func (m *Match) TeamB() *team.Team { return m.teamB }

func (m *Match) BattingTeam() *team.Team {
	if m.battingIsA {
		return m.teamA
	}
	return m.teamB
}

func (m *Match) BowlingTeam() *team.Team {
	if m.battingIsA {
		return m.teamB
	}
	return m.teamA
}

func (m *Match) Started() bool        { return m.started }
func (m *Match) Innings() int         { return m.innings }
func (m *Match) MaxOvers() int        { return m.maxOvers }
func (m *Match) BattingFirst() string { return m.battingFirst }
func (m *Match) CurrentOver() int     { return m.currentOver }
func (m *Match) CurrentBall() int     { return m.currentBall }
func (m *Match) TotalRuns() int       { return m.totalRuns }
func (m *Match) Wickets() int         { return m.wickets }

// OversString is progress in "over.ball" form.
func (m *Match) OversString() string {
	return fmt.Sprintf("%d.%d", m.currentOver, m.currentBall)
}

// FirstInnings is the stored first innings summary, nil until the switch.
func (m *Match) FirstInnings() *InningsSummary {
	if m.firstInnings == nil {
		return nil
	}
	s := *m.firstInnings
	return &s
}

// Events returns a copy of the current innings' ball log.
func (m *Match) Events() []BallEvent {
	return append([]BallEvent(nil), m.events...)
}

func (m *Match) Striker() (*player.Player, bool) {
	return m.battingPlayer(m.strikerID)
}

func (m *Match) NonStriker() (*player.Player, bool) {
	return m.battingPlayer(m.nonStrikerID)
}

func (m *Match) Bowler() (*player.Player, bool) {
	if m.bowlerID == "" {
		return nil, false
	}
	return m.BowlingTeam().Player(m.bowlerID)
}

func (m *Match) battingPlayer(id string) (*player.Player, bool) {
	if id == "" {
		return nil, false
	}
	return m.BattingTeam().Player(id)
}

// side resolves a Side to a team. Batting and bowling sides need a started match.
func (m *Match) side(s Side) (*team.Team, error) {
	switch s {
	case SideA:
		return m.teamA, nil
	case SideB:
		return m.teamB, nil
	case SideBatting, SideBowling:
		if !m.started {
			return nil, ErrMatchNotStarted
		}
		if s == SideBatting {
			return m.BattingTeam(), nil
		}
		return m.BowlingTeam(), nil
	}
	return nil, selectionError(fmt.Sprintf("unknown side %q", s))
}

// lookup finds a player on either team.
func (m *Match) lookup(id string) (*player.Player, bool) {
	if p, ok := m.teamA.Player(id); ok {
		return p, true
	}
	return m.teamB.Player(id)
}
