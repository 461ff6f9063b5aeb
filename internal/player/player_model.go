package player

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role is a player's specialism.
type Role string

const (
	RoleBatsman      Role = "batsman"
	RoleBowler       Role = "bowler"
	RoleAllRounder   Role = "all-rounder"
	RoleWicketKeeper Role = "wicket-keeper"
	RoleUnknown      Role = "unknown"
)

var roles = []Role{RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketKeeper, RoleUnknown}

// ParseRole accepts role names in any case, with "-", "_" or " " separators.
// Anything unrecognised is RoleUnknown.
func ParseRole(s string) Role {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	for _, r := range roles {
		if string(r) == norm {
			return r
		}
	}
	switch norm {
	case "allrounder":
		return RoleAllRounder
	case "wicketkeeper", "keeper":
		return RoleWicketKeeper
	}
	return RoleUnknown
}

// Label is the display form, e.g. "All-Rounder".
func (r Role) Label() string {
	return cases.Title(language.English).String(string(r))
}

// Capability is something a player may do on the field.
type Capability string

const (
	CanBat  Capability = "bat"
	CanBowl Capability = "bowl"
	CanKeep Capability = "keep"
)

// Capabilities returns the capability set granted by a role.
func (r Role) Capabilities() mapset.Set[Capability] {
	switch r {
	case RoleBowler, RoleAllRounder:
		return mapset.NewSet(CanBat, CanBowl)
	case RoleWicketKeeper:
		return mapset.NewSet(CanBat, CanKeep)
	default:
		return mapset.NewSet(CanBat)
	}
}

// Player is a squad member and the owner of their match statistics.
type Player struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Role    Role         `json:"role"`
	Batting BattingStats `json:"batting_stats"`
	Bowling BowlingStats `json:"bowling_stats"`
}

// New creates a player with a fresh id and zeroed statistics.
func New(name string, role Role) *Player {
	return &Player{
		ID:   uuid.NewString(),
		Name: strings.TrimSpace(name),
		Role: role,
	}
}

func (p *Player) Can(c Capability) bool {
	return p.Role.Capabilities().Contains(c)
}

// ResetStats replaces both aggregates with zero values, as at the start of a match.
func (p *Player) ResetStats() {
	p.Batting = BattingStats{}
	p.Bowling = BowlingStats{}
}

// Stats is the serializable per-player statistics view.
type Stats struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Role    Role         `json:"role"`
	Batting BattingStats `json:"batting_stats"`
	Bowling BowlingView  `json:"bowling_stats"`
}

// BowlingView adds derived figures to BowlingStats.
type BowlingView struct {
	BowlingStats
	Average float64 `json:"average"`
}

func (p *Player) Stats() Stats {
	return Stats{
		ID:      p.ID,
		Name:    p.Name,
		Role:    p.Role,
		Batting: p.Batting,
		Bowling: BowlingView{BowlingStats: p.Bowling, Average: p.Bowling.Average()},
	}
}
