// Package integrity performs a best-effort structural comparison between a
// source document and its translation. It counts markdown elements with
// regular expressions, which is inherently approximate: the result is a
// heuristic drift signal, never a guarantee, and callers must treat a
// mismatch as a warning rather than a failure. Translation services often
// reword text without structural loss, so false positives must not abort a
// build.
package integrity

import "regexp"

var (
	headerPattern = regexp.MustCompile(`(?m)^#+\s`)
	fencePattern  = regexp.MustCompile("```")
	linkPattern   = regexp.MustCompile(`\[.+?\]\(.+?\)`)
)

// Snapshot holds element counts for one text.
type Snapshot struct {
	Headers    int `json:"headers"`
	CodeBlocks int `json:"code_blocks"`
	Links      int `json:"links"`
}

// Scan derives a Snapshot from text. The code-block count is the number of
// fence markers divided by two, one opening and one closing marker per block.
func Scan(text string) Snapshot {
	return Snapshot{
		Headers:    len(headerPattern.FindAllStringIndex(text, -1)),
		CodeBlocks: len(fencePattern.FindAllStringIndex(text, -1)) / 2,
		Links:      len(linkPattern.FindAllStringIndex(text, -1)),
	}
}

// Report describes a structural mismatch between source and translation.
type Report struct {
	Expected   Snapshot
	Actual     Snapshot
	Mismatched []string
}

// Check compares element counts of the source and translated text. It returns
// nil when every count matches, otherwise a Report naming the differing kinds.
func Check(source, translated string) *Report {
	expected := Scan(source)
	actual := Scan(translated)
	if expected == actual {
		return nil
	}

	report := &Report{Expected: expected, Actual: actual}
	if expected.Headers != actual.Headers {
		report.Mismatched = append(report.Mismatched, "headers")
	}
	if expected.CodeBlocks != actual.CodeBlocks {
		report.Mismatched = append(report.Mismatched, "code_blocks")
	}
	if expected.Links != actual.Links {
		report.Mismatched = append(report.Mismatched, "links")
	}
	return report
}
