package match

import (
	"fmt"
	"strings"

	"github.com/DhavalSuthar-24/crease/internal/player"
)

type actionKind string

const (
	actOpeners actionKind = "openers"
	actBowler  actionKind = "bowler"
	actBatsman actionKind = "batsman"
	actStrike  actionKind = "strike"
	actRuns    actionKind = "runs"
	actWicket  actionKind = "wicket"
	actExtra   actionKind = "extra"
)

// action is one accepted mutation of the current innings. The journal of
// actions since innings start is what undo replays.
type action struct {
	Kind      actionKind `json:"kind"`
	Players   []string   `json:"players,omitempty"`
	Runs      int        `json:"runs,omitempty"`
	Wicket    WicketType `json:"wicket,omitempty"`
	CatcherID string     `json:"catcher,omitempty"`
	RunOutBy  []string   `json:"runout_by,omitempty"`
	Extra     ExtraType  `json:"extra,omitempty"`
	Comment   string     `json:"comment,omitempty"`
}

func (a action) delivery() bool {
	return a.Kind == actRuns || a.Kind == actWicket || a.Kind == actExtra
}

// DeliveryOption annotates a delivery.
type DeliveryOption func(*action)

// WithComment attaches an operator comment to the ball event.
func WithComment(text string) DeliveryOption {
	return func(a *action) { a.Comment = strings.TrimSpace(text) }
}

// WithCatcher credits a fielder with the catch.
func WithCatcher(id string) DeliveryOption {
	return func(a *action) { a.CatcherID = id }
}

// WithRunOutBy credits the fielders involved in a run out.
func WithRunOutBy(ids ...string) DeliveryOption {
	return func(a *action) { a.RunOutBy = append(a.RunOutBy, ids...) }
}

// SelectOpeners puts the opening pair at the crease.
func (m *Match) SelectOpeners(strikerID, nonStrikerID string) error {
	return m.do(action{Kind: actOpeners, Players: []string{strikerID, nonStrikerID}})
}

// SelectBowler sets the bowler for the next delivery.
func (m *Match) SelectBowler(id string) error {
	return m.do(action{Kind: actBowler, Players: []string{id}})
}

// SelectNextBatsman fills the vacant crease slot after a wicket.
func (m *Match) SelectNextBatsman(id string) error {
	return m.do(action{Kind: actBatsman, Players: []string{id}})
}

// ChangeStrike swaps striker and non-striker by hand.
func (m *Match) ChangeStrike() error {
	return m.do(action{Kind: actStrike})
}

// ScoreRuns records a legal delivery with runs off the bat.
func (m *Match) ScoreRuns(runs int, opts ...DeliveryOption) error {
	a := action{Kind: actRuns, Runs: runs}
	for _, o := range opts {
		o(&a)
	}
	return m.do(a)
}

// RecordWicket dismisses the striker off a legal delivery.
func (m *Match) RecordWicket(kind WicketType, opts ...DeliveryOption) error {
	a := action{Kind: actWicket, Wicket: kind}
	for _, o := range opts {
		o(&a)
	}
	return m.do(a)
}

// AddExtra records a one-run extra, or a dead ball.
func (m *Match) AddExtra(kind ExtraType, opts ...DeliveryOption) error {
	a := action{Kind: actExtra, Extra: kind}
	for _, o := range opts {
		o(&a)
	}
	return m.do(a)
}

// AddPlayer adds a new player to one side. It is allowed in any phase but
// complete and is not undoable. The batting side is closed once the first
// innings is over.
func (m *Match) AddPlayer(s Side, name string, role player.Role) (*player.Player, error) {
	if m.IsMatchComplete() {
		return nil, ErrMatchComplete
	}
	if strings.TrimSpace(name) == "" {
		return nil, setupError("player name is required")
	}
	t, err := m.side(s)
	if err != nil {
		return nil, err
	}
	if m.started && m.IsInningsComplete() && t == m.BattingTeam() {
		return nil, ErrInningsComplete
	}
	p := player.New(name, role)
	t.AddPlayer(p)
	return p, nil
}

// SetCaptain names a side's captain.
func (m *Match) SetCaptain(s Side, playerID string) error {
	if m.IsMatchComplete() {
		return ErrMatchComplete
	}
	t, err := m.side(s)
	if err != nil {
		return err
	}
	return t.SetCaptain(playerID)
}

func (m *Match) do(a action) error {
	if err := m.apply(a); err != nil {
		return err
	}
	m.journal = append(m.journal, a)
	return nil
}

// apply validates a and then mutates state. A failed validation leaves the
// match untouched.
func (m *Match) apply(a action) error {
	if !m.started {
		return ErrMatchNotStarted
	}
	if m.IsMatchComplete() {
		return ErrMatchComplete
	}
	if m.IsInningsComplete() {
		return ErrInningsComplete
	}

	switch a.Kind {
	case actOpeners:
		return m.applyOpeners(a.Players[0], a.Players[1])
	case actBowler:
		return m.applyBowler(a.Players[0])
	case actBatsman:
		return m.applyBatsman(a.Players[0])
	case actStrike:
		if m.strikerID == "" || m.nonStrikerID == "" {
			return ErrPlayersNotSelected
		}
		m.swapStrike()
		return nil
	case actRuns:
		return m.applyRuns(a)
	case actWicket:
		return m.applyWicket(a)
	case actExtra:
		return m.applyExtra(a)
	}
	return fmt.Errorf("unknown action %q", a.Kind)
}

func (m *Match) applyOpeners(strikerID, nonStrikerID string) error {
	bat := m.BattingTeam()
	switch {
	case strikerID == "" || nonStrikerID == "":
		return selectionError("both openers are required")
	case strikerID == nonStrikerID:
		return selectionError("openers must be two different players")
	case !bat.Has(strikerID) || !bat.Has(nonStrikerID):
		return selectionError("openers must be on the batting team")
	case len(bat.BattingOrder) > 0 || m.strikerID != "" || m.nonStrikerID != "":
		return selectionError("openers already selected")
	}
	_ = bat.MarkBatted(strikerID)
	_ = bat.MarkBatted(nonStrikerID)
	m.strikerID, m.nonStrikerID = strikerID, nonStrikerID
	return nil
}

func (m *Match) applyBowler(id string) error {
	bowl := m.BowlingTeam()
	p, ok := bowl.Player(id)
	if !ok {
		return ErrPlayerNotFound.With("player_id", id)
	}
	if !p.Can(player.CanBowl) && !bowl.HasBowled(id) {
		return ErrNotBowlingEligible.With("player_id", id)
	}
	_ = bowl.MarkBowled(id)
	m.bowlerID = id
	return nil
}

func (m *Match) applyBatsman(id string) error {
	bat := m.BattingTeam()
	if m.strikerID == "" && m.nonStrikerID == "" {
		return selectionError("select openers first")
	}
	if m.strikerID != "" && m.nonStrikerID != "" {
		return selectionError("both batsmen are already at the crease")
	}
	if !bat.Has(id) || bat.HasBatted(id) {
		return selectionError("next batsman must be a player who has not batted")
	}
	_ = bat.MarkBatted(id)
	if m.strikerID == "" {
		m.strikerID = id
	} else {
		m.nonStrikerID = id
	}
	return nil
}

func (m *Match) applyRuns(a action) error {
	if a.Runs < 0 {
		return ErrInvalidDelivery.With("runs", fmt.Sprint(a.Runs))
	}
	striker, bowler, err := m.deliveryPlayers()
	if err != nil {
		return err
	}
	ev := m.newEvent(a, striker, bowler)
	ev.Runs = a.Runs
	ev.Description = describeRuns(a.Runs)

	striker.Batting.RecordDelivery(a.Runs, a.Runs == 4, a.Runs == 6)
	bowler.Bowling.RecordDelivery(a.Runs)
	m.totalRuns += a.Runs
	if a.Runs%2 == 1 {
		m.swapStrike()
	}
	m.events = append(m.events, ev)
	m.advanceBall()
	return nil
}

func (m *Match) applyWicket(a action) error {
	if m.strikerID == "" {
		return ErrNoStrikerSet
	}
	if !a.Wicket.Valid() {
		return ErrInvalidDelivery.With("wicket_type", string(a.Wicket))
	}
	striker, bowler, err := m.deliveryPlayers()
	if err != nil {
		return err
	}
	bowl := m.BowlingTeam()
	if a.CatcherID != "" && !bowl.Has(a.CatcherID) {
		return ErrPlayerNotFound.With("player_id", a.CatcherID)
	}
	for _, id := range a.RunOutBy {
		if !bowl.Has(id) {
			return ErrPlayerNotFound.With("player_id", id)
		}
	}

	ev := m.newEvent(a, striker, bowler)
	ev.IsWicket = true
	ev.WicketType = a.Wicket
	ev.CatcherID = a.CatcherID
	ev.RunOutBy = append([]string(nil), a.RunOutBy...)
	ev.Description = "WICKET! " + a.Wicket.Label()

	striker.Batting.RecordDelivery(0, false, false)
	bowler.Bowling.RecordDelivery(0)
	bowler.Bowling.RecordWicket()
	m.wickets++
	m.strikerID = ""
	m.events = append(m.events, ev)
	m.advanceBall()
	return nil
}

func (m *Match) applyExtra(a action) error {
	if !a.Extra.Valid() {
		return ErrInvalidDelivery.With("extra_type", string(a.Extra))
	}
	striker, bowler, err := m.deliveryPlayers()
	if err != nil {
		return err
	}
	ev := m.newEvent(a, striker, bowler)
	ev.ExtraType = a.Extra
	ev.Description = describeExtra(a.Extra)

	switch a.Extra {
	case ExtraWide:
		ev.Runs = 1
		bowler.Bowling.RecordWide(1)
		m.totalRuns++
	case ExtraNoBall:
		ev.Runs = 1
		bowler.Bowling.RecordNoBall(1)
		m.totalRuns++
	case ExtraBye, ExtraLegBye:
		ev.Runs = 1
		striker.Batting.RecordDelivery(0, false, false)
		bowler.Bowling.RecordDelivery(0)
		m.totalRuns++
		m.swapStrike()
	}
	m.events = append(m.events, ev)
	if a.Extra.Legal() {
		m.advanceBall()
	}
	return nil
}

// deliveryPlayers needs both crease slots filled and a bowler. A vacant slot
// after a wicket is filled with SelectNextBatsman before play resumes.
func (m *Match) deliveryPlayers() (*player.Player, *player.Player, error) {
	striker, ok := m.Striker()
	if !ok || m.nonStrikerID == "" {
		return nil, nil, ErrPlayersNotSelected
	}
	bowler, ok := m.Bowler()
	if !ok {
		return nil, nil, ErrPlayersNotSelected
	}
	return striker, bowler, nil
}

func (m *Match) newEvent(a action, striker, bowler *player.Player) BallEvent {
	return BallEvent{
		Over:      m.currentOver,
		Ball:      m.currentBall,
		BatsmanID: striker.ID,
		BowlerID:  bowler.ID,
		Comment:   a.Comment,
	}
}

func (m *Match) swapStrike() {
	m.strikerID, m.nonStrikerID = m.nonStrikerID, m.strikerID
}

// advanceBall moves the pointer past a legal delivery. At the end of an over
// the batsmen change ends and a new bowler is required.
func (m *Match) advanceBall() {
	m.currentBall++
	if m.currentBall < ballsPerOver {
		return
	}
	m.currentBall = 0
	m.currentOver++
	m.swapStrike()
	m.bowlerID = ""
}
