package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperr "github.com/yungbote/apollo-backend/internal/pkg/errors"
	"github.com/yungbote/apollo-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondServiceError renders an error returned by a service with the status
// that matches its kind.
func RespondServiceError(c *gin.Context, err error) {
	ae := FromError(err)
	if ae.Status == http.StatusInternalServerError {
		_ = c.Error(err)
		RespondError(c, ae.Status, ae.Code, errors.New("internal error"))
		return
	}
	RespondError(c, ae.Status, ae.Code, ae.Err)
}

// FromError classifies err into an apierr.Error.
func FromError(err error) *apierr.Error {
	if ae, ok := apierr.As(err); ok {
		return ae
	}
	switch apperr.KindOf(err) {
	case apperr.ErrNotFound:
		return apierr.New(http.StatusNotFound, "not_found", err)
	case apperr.ErrNotAuthorized:
		return apierr.New(http.StatusForbidden, "not_authorized", err)
	case apperr.ErrValidation:
		return apierr.New(http.StatusBadRequest, "validation_failed", err)
	case apperr.ErrConflict:
		return apierr.New(http.StatusConflict, "conflict", err)
	case apperr.ErrNotImplemented:
		return apierr.New(http.StatusNotImplemented, "not_implemented", err)
	default:
		return apierr.New(http.StatusInternalServerError, "internal", err)
	}
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
