package textutil

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"my paper", "my_paper"},
		{"  padded  ", "padded"},
		{"tabs\tand\nnewlines", "tabs_and_newlines"},
		{"many   spaces", "many_spaces"},
		{"ideographic\u3000space", "ideographic_space"},
		{"unit\x1fsep\x1c", "unit_sep"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := CollapseWhitespace(tt.in, "_"); got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrimSpace(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  값 ", "값"},
		{"값\x1f", "값"},
		{"\x1c\x1d\x1e값\u00a0", "값"},
		{"a b", "a b"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TrimSpace(tt.in); got != tt.want {
			t.Errorf("TrimSpace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNFC(t *testing.T) {
	composed := "물리"
	if got := NFC(norm.NFD.String(composed)); got != composed {
		t.Fatalf("NFC did not recompose: %q", got)
	}
}

func TestSlashPath(t *testing.T) {
	if got := SlashPath(`meta data\물리\a.txt`); got != "meta data/물리/a.txt" {
		t.Fatalf("SlashPath = %q", got)
	}
	if got := SlashPath("already/slashed"); got != "already/slashed" {
		t.Fatalf("SlashPath changed slash path: %q", got)
	}
}

func TestTernary(t *testing.T) {
	if Ternary(true, "a", "b") != "a" || Ternary(false, 1, 2) != 2 {
		t.Fatal("unexpected Ternary result")
	}
}
