package match

import (
	"github.com/DhavalSuthar-24/crease/internal/apperr"
	"github.com/DhavalSuthar-24/crease/internal/team"
)

var (
	ErrPlayersNotSelected = apperr.New(apperr.CodePlayersNotSelected, "striker and bowler must be selected")
	ErrNoStrikerSet       = apperr.New(apperr.CodeNoStrikerSet, "no striker set")
	ErrInvalidSelection   = apperr.New(apperr.CodeInvalidSelection, "invalid player selection")
	ErrNotBowlingEligible = apperr.New(apperr.CodeNotBowlingEligible, "player is not eligible to bowl")
	ErrPlayerNotFound     = team.ErrPlayerNotFound
	ErrInvalidSetup       = apperr.New(apperr.CodeInvalidSetup, "invalid match setup")
	ErrInvalidDelivery    = apperr.New(apperr.CodeInvalidDelivery, "invalid delivery")
	ErrInningsComplete    = apperr.New(apperr.CodeInningsComplete, "innings is complete")
	ErrInningsInProgress  = apperr.New(apperr.CodeInningsInProgress, "innings is still in progress")
	ErrMatchComplete      = apperr.New(apperr.CodeMatchComplete, "match is complete")
	ErrMatchNotStarted    = apperr.New(apperr.CodeMatchNotStarted, "match has not started")
	ErrMatchNotFound      = apperr.New(apperr.CodeMatchNotFound, "match not found")
)

func setupError(msg string) error {
	return &apperr.Error{Code: apperr.CodeInvalidSetup, Message: msg}
}

func selectionError(msg string) error {
	return &apperr.Error{Code: apperr.CodeInvalidSelection, Message: msg}
}
