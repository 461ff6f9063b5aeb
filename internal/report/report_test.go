package report

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCard() Card {
	return Card{
		Title:  "Avengers vs Titans",
		Status: "Titans need 10 runs from 6 balls",
		Innings: []InningsCard{{
			Team:     "Avengers",
			Runs:     12,
			Wickets:  1,
			Overs:    "2.0",
			MaxOvers: 2,
			Extras:   ExtrasLine{Total: 1, Wides: 1},
			Batting: []BattingLine{
				{Name: "Ann", Dismissal: "b Ben", Runs: 8, Balls: 6, Fours: 2, StrikeRate: 133.33},
				{Name: "Cat", Dismissal: "not out", Runs: 3, Balls: 6, StrikeRate: 50},
			},
			Bowling: []BowlingLine{
				{Name: "Ben", Overs: "2.0", Runs: 12, Wickets: 1, Economy: 6, Wides: 1},
			},
		}},
		Leaders: []TeamLeaders{{
			Team:    "Avengers",
			Batsmen: []Leader{{Name: "Ann", Value: "8 (6)"}},
		}},
		Result: &ResultCard{Summary: "Avengers won by 2 runs", PlayerOfMatch: "Ann (Avengers)"},
	}
}

func compareGolden(t *testing.T, name, actual string) {
	t.Helper()
	goldenPath := filepath.Join("testdata", name)
	actual = strings.TrimSpace(actual)

	if os.Getenv("UPDATE_GOLDENS") == "true" {
		require.NoError(t, os.WriteFile(goldenPath, []byte(actual+"\n"), 0644))
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}
	expectedBytes, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	expected := strings.TrimSpace(string(expectedBytes))

	if actual != expected {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(expected),
			B:        difflib.SplitLines(actual),
			FromFile: "Expected",
			ToFile:   "Actual",
			Context:  3,
		})
		t.Errorf("scorecard mismatch for %s:\n%s", name, diff)
	}
}

func TestText(t *testing.T) {
	compareGolden(t, "scorecard.golden", Text(sampleCard()))
}

func TestTextWithoutResult(t *testing.T) {
	card := sampleCard()
	card.Result = nil
	card.Status = ""
	out := Text(card)
	assert.True(t, strings.HasPrefix(out, "Avengers vs Titans\n\nAvengers 12/1"))
	assert.NotContains(t, out, "Player of the match")
}

func TestHTML(t *testing.T) {
	card := sampleCard()
	card.Innings[0].Batting[0].Name = "<Ann>"
	card.GeneratedAt = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, card))
	out := buf.String()

	assert.Contains(t, out, "<title>Avengers vs Titans</title>")
	assert.Contains(t, out, "Avengers 12/1 (2.0/2 ov)")
	assert.Contains(t, out, "&lt;Ann&gt;")
	assert.NotContains(t, out, "<Ann>")
	assert.Contains(t, out, "133.33")
	assert.Contains(t, out, "Avengers won by 2 runs")
	assert.Contains(t, out, "Player of the match: Ann (Avengers)")
	assert.Contains(t, out, "Generated 2024-05-01 10:30:00")
}

func chromeInstalled() string {
	for _, name := range []string{"headless-shell", "chromium", "chromium-browser", "google-chrome", "google-chrome-stable"} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	return ""
}

func TestPDFRendererRejectsEmptyDocument(t *testing.T) {
	r := &PDFRenderer{}
	_, err := r.Render(context.Background(), nil)
	assert.Error(t, err)
}

func TestPDFRenderer(t *testing.T) {
	path := chromeInstalled()
	if path == "" {
		t.Skip("no Chrome binary installed")
	}
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, sampleCard()))

	r := &PDFRenderer{Timeout: 30 * time.Second, ExecPath: path}
	pdf, err := r.Render(context.Background(), buf.Bytes())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}
