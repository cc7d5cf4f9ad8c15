package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperr "github.com/yungbote/apollo-backend/internal/pkg/errors"
)

func TestFromError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperr.NotFound("Question %d Not Found", 7), http.StatusNotFound, "not_found"},
		{apperr.NotAuthorized("nope"), http.StatusForbidden, "not_authorized"},
		{apperr.Validation("body is required"), http.StatusBadRequest, "validation_failed"},
		{fmt.Errorf("save: %w", apperr.Conflict("dup")), http.StatusConflict, "conflict"},
		{apperr.ErrNotImplemented, http.StatusNotImplemented, "not_implemented"},
		{errors.New("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		got := FromError(tc.err)
		if got.Status != tc.status || got.Code != tc.code {
			t.Fatalf("FromError(%v): got %d/%s want %d/%s", tc.err, got.Status, got.Code, tc.status, tc.code)
		}
	}
}

func TestRespondServiceErrorHidesInternalMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondServiceError(c, errors.New("dial tcp 10.0.0.1:5432: refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if want := `{"error":{"message":"internal error","code":"internal"}}`; rec.Body.String() != want {
		t.Fatalf("unexpected body: got=%s want=%s", rec.Body.String(), want)
	}
}

func TestRespondServiceErrorKeepsNotImplementedMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondServiceError(c, apperr.ErrNotImplemented)

	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if want := `{"error":{"message":"not implemented","code":"not_implemented"}}`; rec.Body.String() != want {
		t.Fatalf("unexpected body: got=%s want=%s", rec.Body.String(), want)
	}
	if len(c.Errors) != 0 {
		t.Fatalf("not implemented should not be recorded as a server error: %v", c.Errors)
	}
}
