package report

import (
	"fmt"
	"strings"
)

// Text renders the card as a plain-text scorecard.
func Text(card Card) string {
	var b strings.Builder
	b.WriteString(card.Title + "\n")
	if card.Status != "" {
		b.WriteString(card.Status + "\n")
	}
	for _, in := range card.Innings {
		fmt.Fprintf(&b, "\n%s %d/%d (%s/%d ov)\n", in.Team, in.Runs, in.Wickets, in.Overs, in.MaxOvers)
		if len(in.Batting) > 0 {
			b.WriteString("Batting\n")
			for _, l := range in.Batting {
				fmt.Fprintf(&b, "  %s  %s  %d (%d) 4s:%d 6s:%d SR %.2f\n",
					l.Name, l.Dismissal, l.Runs, l.Balls, l.Fours, l.Sixes, l.StrikeRate)
			}
		}
		if len(in.Bowling) > 0 {
			b.WriteString("Bowling\n")
			for _, l := range in.Bowling {
				fmt.Fprintf(&b, "  %s  %s-%d-%d  Econ %.2f\n", l.Name, l.Overs, l.Runs, l.Wickets, l.Economy)
			}
		}
		x := in.Extras
		fmt.Fprintf(&b, "Extras %d (w %d, nb %d, b %d, lb %d)\n", x.Total, x.Wides, x.NoBalls, x.Byes, x.LegByes)
	}
	if card.Result != nil {
		b.WriteString("\n" + card.Result.Summary + "\n")
		if card.Result.PlayerOfMatch != "" {
			b.WriteString("Player of the match: " + card.Result.PlayerOfMatch + "\n")
		}
	}
	return b.String()
}
