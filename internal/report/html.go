package report

import (
	"html/template"
	"io"
	"strconv"
	"time"
)

var scorecardTmpl = template.Must(template.New("scorecard").Funcs(template.FuncMap{
	"f2":   func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
	"when": func(t time.Time) string { return t.Format(time.DateTime) },
}).Parse(scorecardHTML))

// HTML writes the card as a standalone HTML page.
func HTML(w io.Writer, card Card) error {
	return scorecardTmpl.Execute(w, card)
}

const scorecardHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 24px; color: #222; }
h1 { margin-bottom: 4px; }
.status { color: #555; margin-bottom: 16px; }
table { border-collapse: collapse; width: 100%; margin-bottom: 12px; }
th, td { border-bottom: 1px solid #ddd; padding: 4px 8px; text-align: left; }
th { background: #f3f3f3; }
.num { text-align: right; }
.result { font-weight: bold; margin-top: 16px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Status}}<div class="status">{{.Status}}</div>{{end}}
{{range .Innings}}
<h2>{{.Team}} {{.Runs}}/{{.Wickets}} ({{.Overs}}/{{.MaxOvers}} ov)</h2>
{{if .Batting}}
<table>
<tr><th>Batter</th><th></th><th class="num">R</th><th class="num">B</th><th class="num">4s</th><th class="num">6s</th><th class="num">SR</th></tr>
{{range .Batting}}<tr><td>{{.Name}}</td><td>{{.Dismissal}}</td><td class="num">{{.Runs}}</td><td class="num">{{.Balls}}</td><td class="num">{{.Fours}}</td><td class="num">{{.Sixes}}</td><td class="num">{{f2 .StrikeRate}}</td></tr>
{{end}}</table>
{{end}}
<div>Extras {{.Extras.Total}} (w {{.Extras.Wides}}, nb {{.Extras.NoBalls}}, b {{.Extras.Byes}}, lb {{.Extras.LegByes}})</div>
{{if .Bowling}}
<table>
<tr><th>Bowler</th><th class="num">O</th><th class="num">R</th><th class="num">W</th><th class="num">Econ</th><th class="num">WD</th><th class="num">NB</th></tr>
{{range .Bowling}}<tr><td>{{.Name}}</td><td class="num">{{.Overs}}</td><td class="num">{{.Runs}}</td><td class="num">{{.Wickets}}</td><td class="num">{{f2 .Economy}}</td><td class="num">{{.Wides}}</td><td class="num">{{.NoBalls}}</td></tr>
{{end}}</table>
{{end}}
{{end}}
{{if .Leaders}}
<h2>Top performers</h2>
{{range .Leaders}}
<h3>{{.Team}}</h3>
<ul>
{{range .Batsmen}}<li>{{.Name}} {{.Value}}</li>
{{end}}{{range .Bowlers}}<li>{{.Name}} {{.Value}}</li>
{{end}}</ul>
{{end}}
{{end}}
{{with .Result}}
<div class="result">{{.Summary}}</div>
{{if .PlayerOfMatch}}<div>Player of the match: {{.PlayerOfMatch}}</div>{{end}}
{{end}}
{{if not .GeneratedAt.IsZero}}<footer>Generated {{when .GeneratedAt}}</footer>{{end}}
</body>
</html>
`
