package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindsAreDistinguishable(t *testing.T) {
	nf := NotFound("Question %d Not Found", 7)
	na := NotAuthorized("Not authorized to perform this action")

	if nf.Error() != "Question 7 Not Found" {
		t.Fatalf("unexpected message: %q", nf.Error())
	}
	if !errors.Is(nf, ErrNotFound) || errors.Is(nf, ErrNotAuthorized) {
		t.Fatalf("not found kind mismatch")
	}
	if !errors.Is(na, ErrNotAuthorized) || errors.Is(na, ErrNotFound) {
		t.Fatalf("not authorized kind mismatch")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("outer: %w", Wrap(ErrConflict, cause, "duplicate"))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict kind")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable")
	}
	if KindOf(err) != ErrConflict {
		t.Fatalf("KindOf: got %v", KindOf(err))
	}
	if KindOf(cause) != nil {
		t.Fatalf("KindOf on plain error should be nil")
	}
	if Wrap(ErrConflict, nil, "x") != nil {
		t.Fatalf("Wrap(nil) should be nil")
	}
}
