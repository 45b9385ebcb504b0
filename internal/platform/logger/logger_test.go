package logger

import (
	"strings"
	"testing"
)

func TestScrubKVsRedactsSecrets(t *testing.T) {
	out := scrubKVs([]interface{}{"api_key", "sk-123", "status", 200})
	if out[1] != "[REDACTED]" {
		t.Errorf("api_key value = %v", out[1])
	}
	if out[3] != 200 {
		t.Errorf("status value = %v", out[3])
	}
}

func TestScrubKVsHashesIdentity(t *testing.T) {
	out := scrubKVs([]interface{}{"user_id", "ayse-42"})
	got, ok := out[1].(string)
	if !ok || !strings.HasPrefix(got, "hash:") || strings.Contains(got, "ayse") {
		t.Errorf("user_id value = %v", out[1])
	}

	again := scrubKVs([]interface{}{"user_id", "ayse-42"})
	if out[1] != again[1] {
		t.Error("hash should be stable for the same value")
	}
}

func TestScrubKVsOddLength(t *testing.T) {
	out := scrubKVs([]interface{}{"dangling"})
	if len(out) != 1 || out[0] != "dangling" {
		t.Errorf("out = %v", out)
	}
}
