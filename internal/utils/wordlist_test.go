package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseWordList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fields.txt")
	content := "# schema fields\nvector\nid\n\n  name  \nbad entry\ncolumn\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	names, err := ParseWordList(path)
	if err != nil {
		t.Fatalf("ParseWordList: %v", err)
	}

	want := []string{"vector", "id", "name", "column"}
	if len(names) != len(want) {
		t.Fatalf("ParseWordList = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ParseWordList = %v, want %v", names, want)
		}
	}
}

func TestParseWordListMissingFile(t *testing.T) {
	if _, err := ParseWordList(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"vector", "user_name", "HTTPClient", "café", "a-b.c"}
	invalid := []string{"", "two words", "tab\tbed", "new\nline"}

	for _, s := range valid {
		if !IsValidIdentifier(s) {
			t.Errorf("IsValidIdentifier(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidIdentifier(s) {
			t.Errorf("IsValidIdentifier(%q) = true, want false", s)
		}
	}
}

func TestFormatWithCommas(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		7:       "7",
		999:     "999",
		1000:    "1,000",
		12345:   "12,345",
		1234567: "1,234,567",
		-6000:   "-6,000",
	}
	for n, want := range cases {
		if got := FormatWithCommas(n); got != want {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", n, got, want)
		}
	}
}
