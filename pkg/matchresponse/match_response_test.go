package matchresponse

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/crease/internal/apperr"
	"github.com/DhavalSuthar-24/crease/pkg/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Setup()
}

type body struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Code    int               `json:"code"`
	Errors  map[string]string `json:"errors"`
	Data    map[string]any    `json:"data"`
}

func serve(t *testing.T, h gin.HandlerFunc, payload string) (int, body) {
	t.Helper()
	r := gin.New()
	r.POST("/", h)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var b body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	return w.Code, b
}

func TestAppErrorResponse(t *testing.T) {
	code, b := serve(t, func(c *gin.Context) {
		AppErrorResponse(c, apperr.New(apperr.CodeMatchNotFound, "match not found").With("match_id", "m1"))
	}, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "error", b.Status)
	assert.Equal(t, "MATCH_NOT_FOUND", b.Errors["code"])
	assert.Equal(t, "m1", b.Errors["match_id"])

	code, b = serve(t, func(c *gin.Context) {
		AppErrorResponse(c, errors.New("disk full"))
	}, "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "fail", b.Status)
	assert.Equal(t, "disk full", b.Message)
}

type request struct {
	Team struct {
		Name string `json:"name" binding:"required,notblank"`
	} `json:"team"`
	Overs int `json:"max_overs" binding:"required,min=1"`
}

func TestValidationErrorResponse(t *testing.T) {
	bind := func(c *gin.Context) {
		var req request
		if err := c.ShouldBindJSON(&req); err != nil {
			ValidationErrorResponse(c, err)
			return
		}
		SuccessResponse(c, http.StatusOK, gin.H{"message": "ok", "overs": req.Overs})
	}

	code, b := serve(t, bind, `{"team":{"name":"  "}}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "The name field must not be blank.", b.Errors["team.name"])
	assert.Equal(t, "The max_overs field is required.", b.Errors["max_overs"])

	code, b = serve(t, bind, `{not json`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Nil(t, b.Errors)

	code, b = serve(t, bind, `{"team":{"name":"Avengers"},"max_overs":20}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", b.Message)
	assert.EqualValues(t, 20, b.Data["overs"])
}
