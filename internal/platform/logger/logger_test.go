package logger

import "testing"

func TestSanitizeKVs(t *testing.T) {
	jwtish := "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxMjM0NTYifQ.sig"
	got := sanitizeKVs([]interface{}{
		"user_id", int64(7),
		"Password", "hunter2",
		"primaryemail", "a@b.c",
		"header", jwtish,
		"dangling",
	})
	want := []interface{}{
		"user_id", int64(7),
		"Password", "[REDACTED]",
		"primaryemail", "[REDACTED]",
		"header", "[REDACTED]",
		"dangling",
	}
	if len(got) != len(want) {
		t.Fatalf("sanitizeKVs: got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sanitizeKVs[%d]: got %v want %v", i, got[i], want[i])
		}
	}
}
