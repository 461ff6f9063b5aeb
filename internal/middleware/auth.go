package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/crease/internal/apperr"
	"github.com/DhavalSuthar-24/crease/pkg/token"
	"github.com/gin-gonic/gin"
)

const (
	ScorerMatchIDKey = "scorer_match_id"
)

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": message,
		"code":    http.StatusUnauthorized,
		"errors":  gin.H{"code": apperr.CodeUnauthorized},
	})
}

// ScorerAuth admits requests carrying a scorer token issued for the match in
// the :id path parameter.
func ScorerAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			abortUnauthorized(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token: "+err.Error())
			return
		}

		if claims.MatchID != c.Param("id") {
			abortUnauthorized(c, "Token was not issued for this match")
			return
		}

		c.Set(ScorerMatchIDKey, claims.MatchID)
		c.Next()
	}
}

// GetScorerMatchID extracts the authorized match id from the context
func GetScorerMatchID(c *gin.Context) (string, error) {
	matchID, exists := c.Get(ScorerMatchIDKey)
	if !exists {
		return "", errors.New("match ID not found in context")
	}

	id, ok := matchID.(string)
	if !ok {
		return "", fmt.Errorf("match ID has unexpected type: %T", matchID)
	}

	return id, nil
}
