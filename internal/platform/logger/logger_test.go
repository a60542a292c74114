package logger

import "testing"

func TestSanitizeKVsRedactsCredentialKeys(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"password", "hunter2",
		"jwt_secret_key", "abc",
		"Authorization", "Bearer xyz",
		"branch_id", 7,
	})
	if out[1] != "[REDACTED]" {
		t.Fatalf("password not redacted: %v", out[1])
	}
	if out[3] != "[REDACTED]" {
		t.Fatalf("secret not redacted: %v", out[3])
	}
	if out[5] != "[REDACTED]" {
		t.Fatalf("authorization not redacted: %v", out[5])
	}
	if out[7] != 7 {
		t.Fatalf("benign value altered: %v", out[7])
	}
}

func TestSanitizeKVsKeepsDanglingKey(t *testing.T) {
	out := sanitizeKVs([]interface{}{"only_key"})
	if len(out) != 1 || out[0] != "only_key" {
		t.Fatalf("dangling key mangled: %v", out)
	}
}
