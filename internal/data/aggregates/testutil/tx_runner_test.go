package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/apollo-backend/internal/data/repos/testutil"
	"github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
)

func TestInjectedTxRunner_CommitsOnSuccess(t *testing.T) {
	db := testutil.DB(t)
	r := &InjectedTxRunner{DB: db}
	err := r.InTx(context.Background(), func(dbc dbctx.Context) error {
		return dbc.Tx.Create(&domain.Survey{}).Error
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.BeginCalls != 1 || r.CommitCalls != 1 || r.RollbackCalls != 0 {
		t.Fatalf("unexpected counters begin=%d commit=%d rollback=%d", r.BeginCalls, r.CommitCalls, r.RollbackCalls)
	}
	var n int64
	db.Model(&domain.Survey{}).Count(&n)
	if n != 1 {
		t.Fatalf("expected committed row, got %d", n)
	}
}

func TestInjectedTxRunner_FailCommitRollsBack(t *testing.T) {
	db := testutil.DB(t)
	commitErr := errors.New("commit failed")
	r := &InjectedTxRunner{DB: db, FailCommit: commitErr}
	err := r.InTx(context.Background(), func(dbc dbctx.Context) error {
		return dbc.Tx.Create(&domain.Survey{}).Error
	})
	if !errors.Is(err, commitErr) {
		t.Fatalf("expected commit err, got %v", err)
	}
	if r.CommitCalls != 0 || r.RollbackCalls != 1 {
		t.Fatalf("unexpected counters commit=%d rollback=%d", r.CommitCalls, r.RollbackCalls)
	}
	var n int64
	db.Model(&domain.Survey{}).Count(&n)
	if n != 0 {
		t.Fatalf("expected no rows after rollback, got %d", n)
	}
}

func TestInjectedTxRunner_FailBeginSkipsBody(t *testing.T) {
	beginErr := errors.New("begin failed")
	r := &InjectedTxRunner{DB: testutil.DB(t), FailBegin: beginErr}
	called := false
	err := r.InTx(context.Background(), func(_ dbctx.Context) error {
		called = true
		return nil
	})
	if !errors.Is(err, beginErr) || called {
		t.Fatalf("expected begin failure without body, err=%v called=%v", err, called)
	}
}
