package aggregates

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperr "github.com/yungbote/apollo-backend/internal/pkg/errors"
)

// MapError classifies infrastructure failures into service error kinds.
// Errors that already carry a kind pass through untouched.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if apperr.KindOf(err) != nil {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.Wrap(apperr.ErrNotFound, err, op+": record not found")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505":
			return apperr.Wrap(apperr.ErrConflict, err, op+": duplicate key") // unique_violation
		case "23503":
			return apperr.Wrap(apperr.ErrValidation, err, op+": referenced row missing") // foreign_key_violation
		case "23502":
			return apperr.Wrap(apperr.ErrValidation, err, op+": required column missing") // not_null_violation
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed"), strings.Contains(msg, "duplicate key"):
		return apperr.Wrap(apperr.ErrConflict, err, op+": duplicate key")
	case strings.Contains(msg, "not null constraint failed"):
		return apperr.Wrap(apperr.ErrValidation, err, op+": required column missing")
	}
	return err
}
