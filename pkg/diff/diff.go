// Package diff renders textual differences between two renderings of the
// same page.
package diff

import (
	"bytes"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	contextLines    = 3
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// GenerateUnifiedDiff returns a unified diff from expected to actual, or the
// empty string when they are identical. Output longer than 10,000 lines is
// truncated with a marker.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	result, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(expected)),
		B:        difflib.SplitLines(string(actual)),
		FromFile: expectedLabel,
		ToFile:   actualLabel,
		Context:  contextLines,
	})
	if err != nil {
		// difflib only fails on writer errors, which a string builder never
		// returns.
		return ""
	}

	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}
	return result
}

// InlineDiff returns actual with deletions wrapped as [-text-] and insertions
// as {+text+}, diffed character by character and cleaned up to word-sized
// edits. Identical inputs are returned unchanged.
func InlineDiff(expected, actual string) string {
	if expected == actual {
		return actual
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-")
			b.WriteString(d.Text)
			b.WriteString("-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+")
			b.WriteString(d.Text)
			b.WriteString("+}")
		}
	}
	return b.String()
}

// ChangedLines returns InlineDiff for each line of actual that differs from
// the line at the same position in expected. Lines only present on one side
// are reported whole.
func ChangedLines(expected, actual string) []string {
	before := strings.Split(expected, "\n")
	after := strings.Split(actual, "\n")

	n := len(before)
	if len(after) > n {
		n = len(after)
	}

	var changed []string
	for i := 0; i < n; i++ {
		var a, b string
		if i < len(before) {
			a = before[i]
		}
		if i < len(after) {
			b = after[i]
		}
		if a == b {
			continue
		}
		changed = append(changed, InlineDiff(a, b))
	}
	return changed
}
