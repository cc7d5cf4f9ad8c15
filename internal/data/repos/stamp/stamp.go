// Package stamp fills the audit columns of entities about to be written.
package stamp

import (
	"context"
	"time"

	"github.com/yungbote/apollo-backend/internal/domain/audit"
	"github.com/yungbote/apollo-backend/internal/platform/ctxutil"
)

var now = func() time.Time { return time.Now().UTC() }

func Created[T audit.Stamper](ctx context.Context, rows ...T) {
	by, at := ctxutil.Actor(ctx), now()
	for _, r := range rows {
		r.StampCreated(by, at)
	}
}

func Modified[T audit.Stamper](ctx context.Context, rows ...T) {
	by, at := ctxutil.Actor(ctx), now()
	for _, r := range rows {
		r.StampModified(by, at)
	}
}

// UpdateOmits are the columns an overwrite must never touch.
var UpdateOmits = []string{"id", "created_by", "created_date"}
