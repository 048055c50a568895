// Package fence shields fenced code blocks from a translation round-trip by
// replacing them with stable placeholder tokens before dispatch and restoring
// them afterward. Translation backends reflow and occasionally translate code,
// so code must never reach the translation call.
package fence

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// fencePattern matches one fenced region: marker, optional lowercase language
// tag, newline, non-greedy content, newline, closing marker. Non-greedy so
// each independent region is captured on its own.
var fencePattern = regexp.MustCompile("(?s)```[a-z]*\n.*?\n```")

// ErrNoBlocks indicates Restore was called without a block list. That is a
// caller bug (restoring a document that was never protected), not an
// external-service condition, so it surfaces as an error instead of being
// silently ignored.
var ErrNoBlocks = errors.New("restore called without protected blocks")

// placeholder returns the token substituted for the i-th fenced block.
func placeholder(i int) string {
	return fmt.Sprintf("CODEBLOCK_%d_PLACEHOLDER", i)
}

// Protect replaces every fenced code block in text with a sequential
// placeholder token and returns the protected text together with the original
// blocks in order of first appearance.
func Protect(text string) (string, []string) {
	var blocks []string
	protected := fencePattern.ReplaceAllStringFunc(text, func(match string) string {
		token := placeholder(len(blocks))
		blocks = append(blocks, match)
		return token
	})
	return protected, blocks
}

// Restore substitutes each placeholder token with its original block.
// Restoring with an empty block list returns ErrNoBlocks.
func Restore(text string, blocks []string) (string, error) {
	if len(blocks) == 0 {
		return "", ErrNoBlocks
	}
	for i, block := range blocks {
		text = strings.ReplaceAll(text, placeholder(i), block)
	}
	return text, nil
}
