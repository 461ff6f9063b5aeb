package match

import (
	"encoding/json"
	"errors"

	"github.com/DhavalSuthar-24/crease/internal/team"
)

// document is the persisted form of a Match. It carries the journal and the
// innings baseline so a restored match can still undo.
type document struct {
	TeamA        *team.Team      `json:"team_a"`
	TeamB        *team.Team      `json:"team_b"`
	Started      bool            `json:"started"`
	Innings      int             `json:"innings"`
	BattingIsA   bool            `json:"batting_is_a"`
	MaxOvers     int             `json:"max_overs"`
	BattingFirst string          `json:"batting_first,omitempty"`
	FirstInnings *InningsSummary `json:"first_innings,omitempty"`
	StrikerID    string          `json:"striker_id,omitempty"`
	NonStrikerID string          `json:"non_striker_id,omitempty"`
	BowlerID     string          `json:"bowler_id,omitempty"`
	CurrentOver  int             `json:"current_over"`
	CurrentBall  int             `json:"current_ball"`
	TotalRuns    int             `json:"total_runs"`
	Wickets      int             `json:"wickets"`
	Events       []BallEvent     `json:"events"`
	Journal      []action        `json:"journal"`
	Baseline     *baseline       `json:"baseline,omitempty"`
}

func (m *Match) MarshalJSON() ([]byte, error) {
	return json.Marshal(document{
		TeamA:        m.teamA,
		TeamB:        m.teamB,
		Started:      m.started,
		Innings:      m.innings,
		BattingIsA:   m.battingIsA,
		MaxOvers:     m.maxOvers,
		BattingFirst: m.battingFirst,
		FirstInnings: m.firstInnings,
		StrikerID:    m.strikerID,
		NonStrikerID: m.nonStrikerID,
		BowlerID:     m.bowlerID,
		CurrentOver:  m.currentOver,
		CurrentBall:  m.currentBall,
		TotalRuns:    m.totalRuns,
		Wickets:      m.wickets,
		Events:       m.events,
		Journal:      m.journal,
		Baseline:     m.baseline,
	})
}

func (m *Match) UnmarshalJSON(data []byte) error {
	var d document
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if d.TeamA == nil || d.TeamB == nil {
		return errors.New("match document: both teams are required")
	}
	if d.Started && d.Baseline == nil {
		return errors.New("match document: started match without baseline")
	}
	if d.Innings == 0 {
		d.Innings = 1
	}
	*m = Match{
		teamA:        d.TeamA,
		teamB:        d.TeamB,
		started:      d.Started,
		innings:      d.Innings,
		battingIsA:   d.BattingIsA,
		maxOvers:     d.MaxOvers,
		battingFirst: d.BattingFirst,
		firstInnings: d.FirstInnings,
		strikerID:    d.StrikerID,
		nonStrikerID: d.NonStrikerID,
		bowlerID:     d.BowlerID,
		currentOver:  d.CurrentOver,
		currentBall:  d.CurrentBall,
		totalRuns:    d.TotalRuns,
		wickets:      d.Wickets,
		events:       d.Events,
		journal:      d.Journal,
		baseline:     d.Baseline,
	}
	return nil
}
