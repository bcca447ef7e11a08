package utils

import (
	"bufio"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
)

// ParseWordList reads a candidate list file: one identifier per line,
// blank lines and '#' comments skipped, surrounding whitespace
// trimmed. Order is preserved as-is since the selector's tie-break
// depends on it.
func ParseWordList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !IsValidIdentifier(line) {
			log.Debugf("Skipping invalid entry at %s:%d: %q", path, lineNum, line)
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// IsValidIdentifier reports whether s can be stored as a candidate
// name. Embedded whitespace and control characters are rejected;
// case and symbols are left alone since the distance metric is
// exact-match on runes.
func IsValidIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// FormatWithCommas renders an int with thousand separators for CLI
// output, e.g. 12345 -> "12,345".
func FormatWithCommas(n int) string {
	s := []byte{}
	if n < 0 {
		s = append(s, '-')
		n = -n
	}

	digits := []byte{}
	for {
		digits = append(digits, byte('0'+n%10))
		n /= 10
		if n == 0 {
			break
		}
	}

	for i := len(digits) - 1; i >= 0; i-- {
		s = append(s, digits[i])
		if i > 0 && i%3 == 0 {
			s = append(s, ',')
		}
	}
	return string(s)
}
