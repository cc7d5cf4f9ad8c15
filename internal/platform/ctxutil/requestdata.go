package ctxutil

import (
	"context"
	"strings"
)

type requestDataKey struct{}

// RequestData is the authenticated caller, attached by the auth middleware.
type RequestData struct {
	UserID   int64
	Username string
	Roles    []string
}

func (rd *RequestData) HasRole(name string) bool {
	if rd == nil {
		return false
	}
	for _, r := range rd.Roles {
		if strings.EqualFold(r, name) {
			return true
		}
	}
	return false
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if ctx == nil {
		return nil
	}
	if rd, ok := ctx.Value(requestDataKey{}).(*RequestData); ok {
		return rd
	}
	return nil
}

// Actor names the caller for audit columns.
func Actor(ctx context.Context) string {
	if rd := GetRequestData(ctx); rd != nil && rd.Username != "" {
		return rd.Username
	}
	return "SYSTEM"
}
