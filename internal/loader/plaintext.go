package loader

import (
	"fmt"
	"os"
	"strings"
)

// readText reads a plain text file with best-effort decoding and
// normalises its whitespace: invalid UTF-8 sequences are dropped,
// line endings become "\n", and trailing whitespace is stripped from
// every line so retrieval and display stay clean.
func readText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	text := strings.ToValidUTF8(string(raw), "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.Join(lines, "\n"), nil
}
