package match

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/DhavalSuthar-24/crease/config"
	"github.com/DhavalSuthar-24/crease/internal/apperr"
	"github.com/DhavalSuthar-24/crease/internal/live"
	mw "github.com/DhavalSuthar-24/crease/internal/middleware"
	"github.com/DhavalSuthar-24/crease/internal/player"
	"github.com/DhavalSuthar-24/crease/internal/report"
	"github.com/DhavalSuthar-24/crease/internal/team"
	responses "github.com/DhavalSuthar-24/crease/pkg/matchresponse"
	"github.com/DhavalSuthar-24/crease/pkg/token"
	"github.com/DhavalSuthar-24/crease/utils"
)

// PDFPrinter turns an HTML document into a PDF.
type PDFPrinter interface {
	Render(ctx context.Context, html []byte) ([]byte, error)
}

// MatchController handles match-related HTTP requests
type MatchController struct {
	store     *Store
	hubs      *live.HubManager
	pdf       PDFPrinter
	appConfig *config.Config
	log       logrus.FieldLogger
}

// NewMatchController creates a new match controller. pdf may be nil, which
// disables the PDF scorecard.
func NewMatchController(store *Store, hubs *live.HubManager, pdf PDFPrinter, appConfig *config.Config, log logrus.FieldLogger) *MatchController {
	return &MatchController{
		store:     store,
		hubs:      hubs,
		pdf:       pdf,
		appConfig: appConfig,
		log:       log,
	}
}

// --- DTOs for requests ---

// PlayerRequest is one squad member.
type PlayerRequest struct {
	Name string `json:"name" binding:"required,notblank,max=60"`
	Role string `json:"role,omitempty" binding:"omitempty,max=30"`
}

// TeamRequest is a squad with an optional captain, given by player name.
type TeamRequest struct {
	Name    string          `json:"name" binding:"required,notblank,max=60"`
	Players []PlayerRequest `json:"players" binding:"required,min=2,max=30,dive"`
	Captain string          `json:"captain,omitempty" binding:"omitempty,max=60"`
}

// CreateMatchRequest defines the request payload for creating and starting a match
type CreateMatchRequest struct {
	Name         string      `json:"name,omitempty" binding:"omitempty,max=100"`
	TeamA        TeamRequest `json:"team_a" binding:"required"`
	TeamB        TeamRequest `json:"team_b" binding:"required"`
	MaxOvers     int         `json:"max_overs" binding:"required,min=1,max=50"`
	BattingFirst string      `json:"batting_first" binding:"required"`
	PIN          string      `json:"pin,omitempty" binding:"omitempty,min=4,max=12"`
}

type OpenersRequest struct {
	StrikerID    string `json:"striker_id" binding:"required"`
	NonStrikerID string `json:"non_striker_id" binding:"required,nefield=StrikerID"`
}

type PlayerIDRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
}

// RunsRequest uses a pointer so that a dot ball (0) passes "required".
type RunsRequest struct {
	Runs    *int   `json:"runs" binding:"required,min=0,max=7"`
	Comment string `json:"comment,omitempty" binding:"max=280"`
}

type WicketRequest struct {
	Type      WicketType `json:"type" binding:"required,oneof=bowled caught lbw run_out stumped hit_wicket retired"`
	CatcherID string     `json:"catcher_id,omitempty"`
	RunOutBy  []string   `json:"runout_by,omitempty" binding:"max=2"`
	Comment   string     `json:"comment,omitempty" binding:"max=280"`
}

type ExtraRequest struct {
	Type    ExtraType `json:"type" binding:"required,oneof=wide no_ball bye leg_bye dead_ball"`
	Comment string    `json:"comment,omitempty" binding:"max=280"`
}

type AddPlayerRequest struct {
	Side Side   `json:"side" binding:"required,oneof=a b batting bowling"`
	Name string `json:"name" binding:"required,notblank,max=60"`
	Role string `json:"role,omitempty" binding:"omitempty,max=30"`
}

type CaptainRequest struct {
	Side     Side   `json:"side" binding:"required,oneof=a b batting bowling"`
	PlayerID string `json:"player_id" binding:"required"`
}

type TokenRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// --- Helpers ---

func buildTeam(req TeamRequest) (*team.Team, error) {
	t := team.New(req.Name)
	for _, p := range req.Players {
		t.AddPlayer(player.New(strings.TrimSpace(p.Name), player.ParseRole(p.Role)))
	}
	if req.Captain == "" {
		return t, nil
	}
	for _, p := range t.Players {
		if strings.EqualFold(p.Name, strings.TrimSpace(req.Captain)) {
			return t, t.SetCaptain(p.ID)
		}
	}
	return nil, setupError(fmt.Sprintf("captain %q is not in team %s", req.Captain, t.Name))
}

// scorerMatchID returns the match the scorer token was issued for.
func scorerMatchID(c *gin.Context) (string, bool) {
	id, err := mw.GetScorerMatchID(c)
	if err != nil {
		responses.AppErrorResponse(c, apperr.New(apperr.CodeUnauthorized, err.Error()))
		return "", false
	}
	return id, true
}

// apply runs fn as one scorer action and broadcasts the new snapshot.
func (mc *MatchController) apply(c *gin.Context, action string, fn func(m *Match) error) (Snapshot, bool) {
	id, ok := scorerMatchID(c)
	if !ok {
		return Snapshot{}, false
	}
	fields := logrus.Fields{"match_id": id, "action": action}
	_, snap, err := mc.store.Update(c.Request.Context(), id, fn)
	if err != nil {
		if apperr.HTTPStatus(err) >= http.StatusInternalServerError {
			mc.log.WithFields(fields).WithError(err).Error("action failed")
		} else {
			mc.log.WithFields(fields).WithError(err).Debug("action rejected")
		}
		responses.AppErrorResponse(c, err)
		return Snapshot{}, false
	}
	mc.hubs.Broadcast(id, snap)
	mc.log.WithFields(fields).Debug("action applied")
	return snap, true
}

func (mc *MatchController) issueToken(matchID string) (string, error) {
	return token.GenerateJWT(matchID, mc.appConfig.JWT.Secret, mc.appConfig.JWT.ExpiryMinutes)
}

// --- Public Controller Methods ---

// Status reports service health
func (mc *MatchController) Status(c *gin.Context) {
	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"status":  "ok",
		"matches": mc.store.Len(),
		"time":    time.Now().UTC(),
	})
}

// CreateMatch creates and starts a match and hands back a scorer token
// @Summary Create and start a match
// @Description Builds both squads, starts the first innings and returns a scorer token bound to the new match.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Match setup"
// @Success 201 {object} map[string]interface{} "Match created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 422 {object} map[string]interface{} "Invalid setup"
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	teamA, err := buildTeam(req.TeamA)
	if err != nil {
		responses.AppErrorResponse(c, err)
		return
	}
	teamB, err := buildTeam(req.TeamB)
	if err != nil {
		responses.AppErrorResponse(c, err)
		return
	}

	m, err := New(teamA, teamB)
	if err != nil {
		responses.AppErrorResponse(c, err)
		return
	}
	if err := m.Start(req.MaxOvers, strings.TrimSpace(req.BattingFirst)); err != nil {
		responses.AppErrorResponse(c, err)
		return
	}

	pinHash, err := utils.HashPIN(req.PIN)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to hash PIN: "+err.Error())
		return
	}

	meta, err := mc.store.Create(c.Request.Context(), strings.TrimSpace(req.Name), m, pinHash)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create match: "+err.Error())
		return
	}

	scorerToken, err := mc.issueToken(meta.ID)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to issue scorer token: "+err.Error())
		return
	}

	_, snap, err := mc.store.Snapshot(meta.ID)
	if err != nil {
		responses.AppErrorResponse(c, err)
		return
	}

	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message":      "Match created successfully",
		"match":        meta,
		"snapshot":     snap,
		"scorer_token": scorerToken,
	})
}

// ListMatches returns match metadata, oldest first
// @Summary List matches
// @Tags Matches
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Items per page"
// @Param phase query string false "Filter by phase"
// @Success 200 {object} map[string]interface{}
// @Router /matches [get]
func (mc *MatchController) ListMatches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	all := mc.store.List()
	if phase := c.Query("phase"); phase != "" {
		filtered := all[:0]
		for _, m := range all {
			if string(m.Phase) == phase {
				filtered = append(filtered, m)
			}
		}
		all = filtered
	}

	start := (page - 1) * pageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}

	responses.PaginatedResponse(c, http.StatusOK, all[start:end], page, pageSize, int64(len(all)))
}

// GetMatch returns metadata and the live snapshot
// @Summary Get a match
// @Tags Matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatch(c *gin.Context) {
	meta, snap, err := mc.store.Snapshot(c.Param("id"))
	if err != nil {
		responses.AppErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"match":    meta,
		"snapshot": snap,
	})
}

// GetBalls returns the current innings' ball log
func (mc *MatchController) GetBalls(c *gin.Context) {
	_, snap, err := mc.store.Snapshot(c.Param("id"))
	if err != nil {
		responses.AppErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"innings": snap.Innings,
		"balls":   snap.Balls,
	})
}

// GetInnings returns the current and, once played, the first innings summary
func (mc *MatchController) GetInnings(c *gin.Context) {
	_, snap, err := mc.store.Snapshot(c.Param("id"))
	if err != nil {
		responses.AppErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"innings": snap.Innings,
		"current": snap.Current,
		"first":   snap.FirstInnings,
		"target":  snap.Target,
	})
}

// GetResult returns the result of a completed match
func (mc *MatchController) GetResult(c *gin.Context) {
	var result Result
	err := mc.store.View(c.Param("id"), func(m *Match, _ Meta) error {
		if !m.Started() {
			return ErrMatchNotStarted
		}
		r, ok := m.Result()
		if !ok {
			return apperr.New(apperr.CodeInningsInProgress, "match is not complete yet")
		}
		result = r
		return nil
	})
	if err != nil {
		responses.AppErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"result": result})
}

func (mc *MatchController) card(id string) (report.Card, error) {
	var card report.Card
	err := mc.store.View(id, func(m *Match, meta Meta) error {
		card = BuildCard(meta, m, time.Now())
		return nil
	})
	return card, err
}

// GetScorecard renders the scorecard as HTML, or as plain text with ?format=text
func (mc *MatchController) GetScorecard(c *gin.Context) {
	card, err := mc.card(c.Param("id"))
	if err != nil {
		responses.AppErrorResponse(c, err)
		return
	}
	if c.Query("format") == "text" {
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report.Text(card)))
		return
	}
	var buf bytes.Buffer
	if err := report.HTML(&buf, card); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to render scorecard: "+err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// GetScorecardPDF prints the HTML scorecard with headless Chrome
// @Summary Download the PDF scorecard
// @Tags Reports
// @Produce application/pdf
// @Param id path string true "Match ID"
// @Success 200 {file} binary
// @Failure 503 {object} map[string]interface{} "PDF export unavailable"
// @Router /matches/{id}/scorecard.pdf [get]
func (mc *MatchController) GetScorecardPDF(c *gin.Context) {
	if mc.pdf == nil {
		responses.ErrorResponse(c, http.StatusServiceUnavailable, "PDF export is not configured")
		return
	}
	id := c.Param("id")
	card, err := mc.card(id)
	if err != nil {
		responses.AppErrorResponse(c, err)
		return
	}
	var buf bytes.Buffer
	if err := report.HTML(&buf, card); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to render scorecard: "+err.Error())
		return
	}
	pdf, err := mc.pdf.Render(c.Request.Context(), buf.Bytes())
	if err != nil {
		mc.log.WithFields(logrus.Fields{"match_id": id}).WithError(err).Error("pdf export failed")
		responses.ErrorResponse(c, http.StatusServiceUnavailable, "Failed to export PDF: "+err.Error())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="scorecard-%s.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Live upgrades to a websocket that streams snapshots
func (mc *MatchController) Live(c *gin.Context) {
	id := c.Param("id")
	_, snap, err := mc.store.Snapshot(id)
	if err != nil {
		responses.AppErrorResponse(c, err)
		return
	}
	if err := mc.hubs.Serve(c.Writer, c.Request, id, snap); err != nil {
		// The upgrader has already answered the client.
		mc.log.WithFields(logrus.Fields{"match_id": id}).WithError(err).Debug("live upgrade failed")
	}
}

// IssueToken exchanges the match PIN for a fresh scorer token
// @Summary Issue a scorer token
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param pin body TokenRequest true "Match PIN"
// @Success 200 {object} map[string]interface{} "Token issued"
// @Failure 401 {object} map[string]interface{} "Invalid PIN"
// @Router /matches/{id}/token [post]
func (mc *MatchController) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	id := c.Param("id")
	hash, err := mc.store.PinHash(id)
	if err != nil {
		responses.AppErrorResponse(c, err)
		return
	}
	if !utils.CheckPIN(hash, req.PIN) {
		responses.AppErrorResponse(c, apperr.New(apperr.CodeUnauthorized, "invalid PIN"))
		return
	}
	scorerToken, err := mc.issueToken(id)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to issue scorer token: "+err.Error())
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message":      "Token issued",
		"scorer_token": scorerToken,
	})
}

// --- Scorer Controller Methods ---

// SelectOpeners sets the opening pair
func (mc *MatchController) SelectOpeners(c *gin.Context) {
	var req OpenersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	snap, ok := mc.apply(c, "openers", func(m *Match) error {
		return m.SelectOpeners(req.StrikerID, req.NonStrikerID)
	})
	if !ok {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Openers selected", "snapshot": snap})
}

// SelectBowler sets the bowler of the current over
func (mc *MatchController) SelectBowler(c *gin.Context) {
	var req PlayerIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	snap, ok := mc.apply(c, "bowler", func(m *Match) error { return m.SelectBowler(req.PlayerID) })
	if !ok {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Bowler selected", "snapshot": snap})
}

// SelectBatsman sends in the next batsman after a wicket
func (mc *MatchController) SelectBatsman(c *gin.Context) {
	var req PlayerIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	snap, ok := mc.apply(c, "batsman", func(m *Match) error { return m.SelectNextBatsman(req.PlayerID) })
	if !ok {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Batsman selected", "snapshot": snap})
}

// ScoreRuns records runs off the bat
// @Summary Record runs
// @Tags Scorer
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param delivery body RunsRequest true "Runs scored"
// @Success 200 {object} map[string]interface{} "Runs recorded"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 409 {object} map[string]interface{} "Players not selected or innings complete"
// @Security ScorerToken
// @Router /matches/{id}/runs [post]
func (mc *MatchController) ScoreRuns(c *gin.Context) {
	var req RunsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	snap, ok := mc.apply(c, "runs", func(m *Match) error {
		return m.ScoreRuns(*req.Runs, WithComment(req.Comment))
	})
	if !ok {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Runs recorded", "snapshot": snap})
}

// RecordWicket records a dismissal of the striker
// @Summary Record a wicket
// @Tags Scorer
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param wicket body WicketRequest true "Dismissal"
// @Success 200 {object} map[string]interface{} "Wicket recorded"
// @Security ScorerToken
// @Router /matches/{id}/wicket [post]
func (mc *MatchController) RecordWicket(c *gin.Context) {
	var req WicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	opts := []DeliveryOption{WithComment(req.Comment)}
	if req.CatcherID != "" {
		opts = append(opts, WithCatcher(req.CatcherID))
	}
	if len(req.RunOutBy) > 0 {
		opts = append(opts, WithRunOutBy(req.RunOutBy...))
	}
	snap, ok := mc.apply(c, "wicket", func(m *Match) error { return m.RecordWicket(req.Type, opts...) })
	if !ok {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Wicket recorded", "snapshot": snap})
}

// AddExtra records a wide, no-ball, bye, leg-bye or dead ball
func (mc *MatchController) AddExtra(c *gin.Context) {
	var req ExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	snap, ok := mc.apply(c, "extra", func(m *Match) error {
		return m.AddExtra(req.Type, WithComment(req.Comment))
	})
	if !ok {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Extra recorded", "snapshot": snap})
}

// ChangeStrike swaps the batsmen
func (mc *MatchController) ChangeStrike(c *gin.Context) {
	snap, ok := mc.apply(c, "strike", func(m *Match) error { return m.ChangeStrike() })
	if !ok {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Strike changed", "snapshot": snap})
}

// UndoLastBall removes the last delivery of the innings
// @Summary Undo the last delivery
// @Tags Scorer
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} map[string]interface{} "Last ball undone"
// @Security ScorerToken
// @Router /matches/{id}/undo [post]
func (mc *MatchController) UndoLastBall(c *gin.Context) {
	var undone *BallEvent
	snap, ok := mc.apply(c, "undo", func(m *Match) error {
		ev, err := m.UndoLastEvent()
		undone = ev
		return err
	})
	if !ok {
		return
	}
	if undone == nil {
		responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Nothing to undo", "snapshot": snap})
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Last ball undone", "undone": undone, "snapshot": snap})
}

// SwitchInnings starts the second innings
func (mc *MatchController) SwitchInnings(c *gin.Context) {
	snap, ok := mc.apply(c, "switch_innings", func(m *Match) error { return m.SwitchInnings() })
	if !ok {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Second innings started", "snapshot": snap})
}

// AddPlayer adds a player to a squad mid-match
func (mc *MatchController) AddPlayer(c *gin.Context) {
	var req AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	var added *player.Player
	snap, ok := mc.apply(c, "add_player", func(m *Match) error {
		p, err := m.AddPlayer(req.Side, strings.TrimSpace(req.Name), player.ParseRole(req.Role))
		added = p
		return err
	})
	if !ok {
		return
	}
	responses.SuccessResponse(c, http.StatusCreated, gin.H{"message": "Player added", "player": added.Stats(), "snapshot": snap})
}

// SetCaptain names a team captain
func (mc *MatchController) SetCaptain(c *gin.Context) {
	var req CaptainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	snap, ok := mc.apply(c, "captain", func(m *Match) error { return m.SetCaptain(req.Side, req.PlayerID) })
	if !ok {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Captain set", "snapshot": snap})
}

// DeleteMatch removes the match and disconnects its spectators
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id, ok := scorerMatchID(c)
	if !ok {
		return
	}
	if err := mc.store.Delete(c.Request.Context(), id); err != nil {
		responses.AppErrorResponse(c, err)
		return
	}
	mc.hubs.Close(id)
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Match deleted"})
}
