package team

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/DhavalSuthar-24/crease/internal/apperr"
	"github.com/DhavalSuthar-24/crease/internal/player"
)

var ErrPlayerNotFound = apperr.New(apperr.CodePlayerNotFound, "player not found in team")

// Team is a squad plus the order its players came in to bat and bowl.
// The roster owns every Player; the order lists hold ids only.
type Team struct {
	Name         string           `json:"name"`
	Players      []*player.Player `json:"players"`
	BattingOrder []string         `json:"batting_order"`
	BowlingOrder []string         `json:"bowling_order"`
	CaptainID    string           `json:"captain_id,omitempty"`
}

// New creates a team, dropping players whose id is already on the roster.
func New(name string, players ...*player.Player) *Team {
	t := &Team{Name: strings.TrimSpace(name)}
	for _, p := range players {
		t.AddPlayer(p)
	}
	return t
}

// AddPlayer appends p to the roster. It is a no-op if the id is already present.
func (t *Team) AddPlayer(p *player.Player) bool {
	if p == nil || t.Has(p.ID) {
		return false
	}
	t.Players = append(t.Players, p)
	return true
}

func (t *Team) Player(id string) (*player.Player, bool) {
	for _, p := range t.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

func (t *Team) Has(id string) bool {
	_, ok := t.Player(id)
	return ok
}

func (t *Team) Size() int {
	return len(t.Players)
}

func (t *Team) SetCaptain(id string) error {
	if !t.Has(id) {
		return ErrPlayerNotFound.With("player_id", id)
	}
	t.CaptainID = id
	return nil
}

func (t *Team) Captain() (*player.Player, bool) {
	if t.CaptainID == "" {
		return nil, false
	}
	return t.Player(t.CaptainID)
}

// MarkBatted appends id to the batting order. Ids already there are ignored.
func (t *Team) MarkBatted(id string) error {
	if !t.Has(id) {
		return ErrPlayerNotFound.With("player_id", id)
	}
	if !t.HasBatted(id) {
		t.BattingOrder = append(t.BattingOrder, id)
	}
	return nil
}

// MarkBowled appends id to the bowling order; a bowler appears once per spell.
func (t *Team) MarkBowled(id string) error {
	if !t.Has(id) {
		return ErrPlayerNotFound.With("player_id", id)
	}
	t.BowlingOrder = append(t.BowlingOrder, id)
	return nil
}

func (t *Team) HasBatted(id string) bool {
	return mapset.NewThreadUnsafeSet(t.BattingOrder...).Contains(id)
}

func (t *Team) HasBowled(id string) bool {
	return mapset.NewThreadUnsafeSet(t.BowlingOrder...).Contains(id)
}

// PlayersNotBatted returns roster members missing from the batting order, in squad order.
func (t *Team) PlayersNotBatted() []*player.Player {
	batted := mapset.NewThreadUnsafeSet(t.BattingOrder...)
	var out []*player.Player
	for _, p := range t.Players {
		if !batted.Contains(p.ID) {
			out = append(out, p)
		}
	}
	return out
}

// Bowlers returns the roster members whose role lets them bowl.
func (t *Team) Bowlers() []*player.Player {
	var out []*player.Player
	for _, p := range t.Players {
		if p.Can(player.CanBowl) {
			out = append(out, p)
		}
	}
	return out
}

// TopBatsmen ranks the roster by runs, keeping squad order on ties.
func (t *Team) TopBatsmen(n int) []*player.Player {
	return t.top(n, func(a, b *player.Player) bool { return a.Batting.Runs > b.Batting.Runs })
}

// TopBowlers ranks the roster by wickets, keeping squad order on ties.
func (t *Team) TopBowlers(n int) []*player.Player {
	return t.top(n, func(a, b *player.Player) bool { return a.Bowling.Wickets > b.Bowling.Wickets })
}

func (t *Team) top(n int, better func(a, b *player.Player) bool) []*player.Player {
	if n <= 0 {
		return nil
	}
	ranked := make([]*player.Player, len(t.Players))
	copy(ranked, t.Players)
	sort.SliceStable(ranked, func(i, j int) bool { return better(ranked[i], ranked[j]) })
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// ResetStats zeroes every player's statistics and clears both order lists.
func (t *Team) ResetStats() {
	for _, p := range t.Players {
		p.ResetStats()
	}
	t.BattingOrder = nil
	t.BowlingOrder = nil
}

// Clone returns a deep copy, players included.
func (t *Team) Clone() *Team {
	c := &Team{
		Name:         t.Name,
		Players:      make([]*player.Player, len(t.Players)),
		BattingOrder: append([]string(nil), t.BattingOrder...),
		BowlingOrder: append([]string(nil), t.BowlingOrder...),
		CaptainID:    t.CaptainID,
	}
	for i, p := range t.Players {
		cp := *p
		c.Players[i] = &cp
	}
	return c
}

// View is the serializable roster summary.
type View struct {
	Name         string         `json:"name"`
	CaptainID    string         `json:"captain_id,omitempty"`
	Players      []player.Stats `json:"players"`
	BattingOrder []string       `json:"batting_order"`
	BowlingOrder []string       `json:"bowling_order"`
}

func (t *Team) View() View {
	v := View{
		Name:         t.Name,
		CaptainID:    t.CaptainID,
		Players:      make([]player.Stats, 0, len(t.Players)),
		BattingOrder: append([]string{}, t.BattingOrder...),
		BowlingOrder: append([]string{}, t.BowlingOrder...),
	}
	for _, p := range t.Players {
		v.Players = append(v.Players, p.Stats())
	}
	return v
}
