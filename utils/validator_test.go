package utils

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "asha.rao+conf@example.com", "x_y@sub.domain.org"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{"", "plain", "@example.com", "a@b", "a b@example.com"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("s3cret"); ok {
		t.Error("short password must be rejected")
	}
	if ok, _ := ValidatePassword("lettersonly"); ok {
		t.Error("password without digits must be rejected")
	}
	if ok, _ := ValidatePassword("12345678"); ok {
		t.Error("password without letters must be rejected")
	}
	if ok, msg := ValidatePassword("c0nference"); !ok {
		t.Errorf("valid password rejected: %s", msg)
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Errorf("SanitizeInput = %q", got)
	}
}

func TestStoredFilename(t *testing.T) {
	name := StoredFilename("My Paper.PDF")
	if !strings.HasSuffix(name, ".pdf") {
		t.Errorf("extension not kept lowercase: %q", name)
	}
	if name == StoredFilename("My Paper.PDF") {
		t.Error("stored names must not collide")
	}
}

func TestSafeBaseName(t *testing.T) {
	cases := map[string]string{
		"report.pdf":            "report.pdf",
		"../../etc/passwd":      "passwd",
		"..\\..\\windows\\a.js": "a.js",
	}
	for in, want := range cases {
		if got := SafeBaseName(in); got != want {
			t.Errorf("SafeBaseName(%q) = %q, want %q", in, got, want)
		}
	}
}
