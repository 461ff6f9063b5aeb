package match

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WicketType is how a batsman was dismissed.
type WicketType string

const (
	WicketBowled    WicketType = "bowled"
	WicketCaught    WicketType = "caught"
	WicketLBW       WicketType = "lbw"
	WicketRunOut    WicketType = "run_out"
	WicketStumped   WicketType = "stumped"
	WicketHitWicket WicketType = "hit_wicket"
	WicketRetired   WicketType = "retired"
)

func (w WicketType) Valid() bool {
	switch w {
	case WicketBowled, WicketCaught, WicketLBW, WicketRunOut, WicketStumped, WicketHitWicket, WicketRetired:
		return true
	}
	return false
}

// Label is the scorecard form, e.g. "Run Out".
func (w WicketType) Label() string {
	if w == WicketLBW {
		return "LBW"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(string(w), "_", " "))
}

// ExtraType is a run or delivery not credited to the striker.
type ExtraType string

const (
	ExtraWide     ExtraType = "wide"
	ExtraNoBall   ExtraType = "no_ball"
	ExtraBye      ExtraType = "bye"
	ExtraLegBye   ExtraType = "leg_bye"
	ExtraDeadBall ExtraType = "dead_ball"
)

func (e ExtraType) Valid() bool {
	switch e {
	case ExtraWide, ExtraNoBall, ExtraBye, ExtraLegBye, ExtraDeadBall:
		return true
	}
	return false
}

// Legal reports whether the delivery counts towards the over.
func (e ExtraType) Legal() bool {
	return e != ExtraWide && e != ExtraNoBall && e != ExtraDeadBall
}

// BallEvent is the outcome of one delivery. Over and Ball are the pointer
// values before the delivery was bowled.
type BallEvent struct {
	Over        int        `json:"over"`
	Ball        int        `json:"ball"`
	Runs        int        `json:"runs"`
	BatsmanID   string     `json:"batsman"`
	BowlerID    string     `json:"bowler"`
	IsWicket    bool       `json:"is_wicket,omitempty"`
	WicketType  WicketType `json:"wicket_type,omitempty"`
	CatcherID   string     `json:"catcher,omitempty"`
	RunOutBy    []string   `json:"runout_by,omitempty"`
	ExtraType   ExtraType  `json:"extra_type,omitempty"`
	Description string     `json:"description"`
	Comment     string     `json:"comment"`
}

func describeRuns(runs int) string {
	switch runs {
	case 0:
		return "dot ball"
	case 1:
		return "1 run"
	case 4:
		return "FOUR"
	case 6:
		return "SIX"
	}
	return fmt.Sprintf("%d runs", runs)
}

func describeExtra(kind ExtraType) string {
	switch kind {
	case ExtraWide:
		return "wide"
	case ExtraNoBall:
		return "no ball"
	case ExtraBye:
		return "1 bye"
	case ExtraLegBye:
		return "1 leg bye"
	}
	return "dead ball"
}

// Phase is the match lifecycle state.
type Phase string

const (
	PhaseSetup        Phase = "setup"
	PhaseInProgress   Phase = "in_progress"
	PhaseInningsBreak Phase = "innings_break"
	PhaseComplete     Phase = "complete"
)

// Side picks a team, either absolutely or by current role.
type Side string

const (
	SideA       Side = "a"
	SideB       Side = "b"
	SideBatting Side = "batting"
	SideBowling Side = "bowling"
)
