package parse

import (
	"strconv"
	"strings"
)

// enumeration characters stripped from the start of list lines ("1. ", "- ", "• ")
const enumPrefix = "0123456789.-•·) "

// Lines splits free text into trimmed items, one per non-empty line, with
// leading enumeration prefixes removed.
func Lines(raw string) []string {
	items := []string{}
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r", ""), "\n") {
		line = strings.TrimLeft(strings.TrimSpace(line), enumPrefix)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// PipeRows splits free text into pseudo-tabular rows. Every line containing a
// "|" becomes one row of trimmed fields; lines without a delimiter are
// skipped. Callers are expected to check each row's field count.
func PipeRows(raw string) [][]string {
	rows := [][]string{}
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r", ""), "\n") {
		if !strings.Contains(line, "|") {
			continue
		}
		parts := strings.Split(line, "|")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		rows = append(rows, parts)
	}
	return rows
}

var floatCleaner = strings.NewReplacer(",", "", "+", "", "%", "", " ", "")

// Float parses a human-formatted number such as "+3.42%" or "1,234.5".
// Returns (0, false) when the value does not parse.
func Float(s string) (float64, bool) {
	v, err := strconv.ParseFloat(floatCleaner.Replace(strings.TrimSpace(s)), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
