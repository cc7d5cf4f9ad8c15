package observability

import "testing"

func TestParseHeaders(t *testing.T) {
	got := parseHeaders(" api-key = abc ,broken, =x,tenant=apollo")
	if len(got) != 2 || got["api-key"] != "abc" || got["tenant"] != "apollo" {
		t.Fatalf("parseHeaders: unexpected %v", got)
	}
	if parseHeaders("") != nil {
		t.Fatalf("parseHeaders(empty): expected nil")
	}
}

func TestOtelSampleRatio(t *testing.T) {
	cases := map[string]float64{
		"":     1,
		"0.25": 0.25,
		"-1":   0,
		"7":    1,
		"abc":  1,
	}
	for raw, want := range cases {
		t.Setenv("OTEL_SAMPLER_RATIO", raw)
		if got := otelSampleRatio(); got != want {
			t.Fatalf("otelSampleRatio(%q): got %v want %v", raw, got, want)
		}
	}
}

func TestInitOTelDisabled(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "false")
	if Enabled() {
		t.Fatalf("Enabled: expected false")
	}
}
