package ui

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/taskflowhq/taskflow/internal/ids"
)

const (
	ansiBold    = "\x1b[1m"
	ansiCyan    = "\x1b[36m"
	ansiGreen   = "\x1b[32m"
	ansiYellow  = "\x1b[33m"
	ansiRed     = "\x1b[31m"
	ansiMagenta = "\x1b[35m"
	ansiDim     = "\x1b[2m"
	ansiReset   = "\x1b[0m"
)

// HighlightID returns an id with its shortest unique prefix highlighted, so
// users can see how much of the id they need to type.
func HighlightID(id string, prefixLen int) string {
	if id == "" || prefixLen <= 0 || prefixLen > len(id) {
		return id
	}
	if !ansiEnabled() {
		return id
	}
	return ansiBold + ansiCyan + id[:prefixLen] + ansiReset + id[prefixLen:]
}

// PrefixLengths returns the shortest unique prefix length for each id. The
// returned map is keyed on lowercased ids; look up with PrefixLength.
func PrefixLengths(entityIDs []string) map[string]int {
	return ids.UniquePrefixLengths(entityIDs)
}

// PrefixLength looks up an id's unique prefix length, case-insensitively.
// Returns 0 when the id is unknown.
func PrefixLength(lengths map[string]int, id string) int {
	return lengths[strings.ToLower(id)]
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func colorize(code, value string) string {
	if !ansiEnabled() {
		return value
	}
	return code + value + ansiReset
}
