package bilingual

import (
	"strings"
)

// Warning is a non-fatal problem found during extraction. Extraction
// continues past every condition that produces a Warning.
type Warning struct {
	// Source names the archive entry concerned, or is empty for problems
	// that concern the archive as a whole.
	Source  string
	Message string
}

func (w Warning) String() string {
	if w.Source == "" {
		return w.Message
	}
	return w.Source + ": " + w.Message
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
