package match

import (
	mw "github.com/DhavalSuthar-24/crease/internal/middleware"
	"github.com/DhavalSuthar-24/crease/pkg/validator"
	"github.com/gin-gonic/gin"
)

// MatchRoutes sets up all match-related routes.
func MatchRoutes(router *gin.RouterGroup, matchController *MatchController, jwtSecret string) {
	validator.Setup()

	router.GET("/status", matchController.Status)

	// Public routes
	publicRoutes := router.Group("/matches")
	{
		publicRoutes.POST("", matchController.CreateMatch)
		publicRoutes.GET("", matchController.ListMatches)
		publicRoutes.GET("/:id", matchController.GetMatch)
		publicRoutes.GET("/:id/balls", matchController.GetBalls)
		publicRoutes.GET("/:id/innings", matchController.GetInnings)
		publicRoutes.GET("/:id/result", matchController.GetResult)
		publicRoutes.GET("/:id/scorecard", matchController.GetScorecard)
		publicRoutes.GET("/:id/scorecard.pdf", matchController.GetScorecardPDF)
		publicRoutes.GET("/:id/live", matchController.Live)
		publicRoutes.POST("/:id/token", matchController.IssueToken)
	}

	// Scorer routes
	scorerRoutes := router.Group("/matches/:id")
	scorerRoutes.Use(mw.ScorerAuth(jwtSecret))
	{
		scorerRoutes.POST("/openers", matchController.SelectOpeners)
		scorerRoutes.POST("/bowler", matchController.SelectBowler)
		scorerRoutes.POST("/batsman", matchController.SelectBatsman)
		scorerRoutes.POST("/runs", matchController.ScoreRuns)
		scorerRoutes.POST("/wicket", matchController.RecordWicket)
		scorerRoutes.POST("/extras", matchController.AddExtra)
		scorerRoutes.POST("/strike", matchController.ChangeStrike)
		scorerRoutes.POST("/undo", matchController.UndoLastBall)
		scorerRoutes.POST("/innings/switch", matchController.SwitchInnings)
		scorerRoutes.POST("/players", matchController.AddPlayer)
		scorerRoutes.POST("/captain", matchController.SetCaptain)
		scorerRoutes.DELETE("", matchController.DeleteMatch)
	}
}
