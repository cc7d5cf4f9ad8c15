package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/http/response"
	"github.com/yungbote/apollo-backend/internal/platform/ctxutil"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
)

// pathID parses a positive integer path parameter. On failure it writes a 400
// with code "invalid_<name>" and returns false.
func pathID(c *gin.Context, name string) (int64, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err == nil && id <= 0 {
		err = errors.New(name + " must be positive")
	}
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_"+strings.ToLower(name), err)
		return 0, false
	}
	return id, true
}

func requestDBC(c *gin.Context) dbctx.Context {
	return dbctx.Context{Ctx: c.Request.Context()}
}

// actingUser is the authenticated caller as a bare user reference.
func actingUser(c *gin.Context) *types.User {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == 0 {
		return nil
	}
	return &types.User{ID: rd.UserID, Username: rd.Username}
}

// surveyRef accepts a survey either as a flat "surveyid" or as a nested
// {"survey": {"surveyid": 3}} object. The nested form wins when both are set.
type surveyRef struct {
	SurveyID int64 `json:"surveyid"`
	Survey   *struct {
		ID int64 `json:"surveyid"`
	} `json:"survey"`
}

func (r surveyRef) surveyID() int64 {
	if r.Survey != nil && r.Survey.ID != 0 {
		return r.Survey.ID
	}
	return r.SurveyID
}
