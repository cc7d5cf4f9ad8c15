package aggregates

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperr "github.com/yungbote/apollo-backend/internal/pkg/errors"
)

func TestMapError(t *testing.T) {
	tagged := apperr.NotFound("Question 1 Not Found")
	cases := []struct {
		name string
		in   error
		kind error
	}{
		{"nil", nil, nil},
		{"already tagged", tagged, apperr.ErrNotFound},
		{"gorm not found", fmt.Errorf("load: %w", gorm.ErrRecordNotFound), apperr.ErrNotFound},
		{"pg unique", &pgconn.PgError{Code: "23505"}, apperr.ErrConflict},
		{"pg fk", &pgconn.PgError{Code: "23503"}, apperr.ErrValidation},
		{"sqlite unique", errors.New("UNIQUE constraint failed: user_roles.user_id, user_roles.role_id"), apperr.ErrConflict},
		{"sqlite not null", errors.New("NOT NULL constraint failed: questions.body"), apperr.ErrValidation},
		{"other", errors.New("disk on fire"), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MapError("op", tc.in)
			if tc.in == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if k := apperr.KindOf(got); k != tc.kind {
				t.Fatalf("kind: got %v want %v", k, tc.kind)
			}
			if !errors.Is(got, tc.in) {
				t.Fatalf("cause lost: %v", got)
			}
		})
	}
	if MapError("op", tagged) != tagged {
		t.Fatalf("tagged errors must pass through unchanged")
	}
}
