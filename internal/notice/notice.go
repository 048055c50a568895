// Package notice inserts a translation advisory into a translated document.
//
// The insertion anchor matters: the surrounding site generator derives the
// document title from the first level-1 heading, so the notice must never be
// placed before it. A heading therefore wins over frontmatter when both are
// present.
package notice

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/mdtranslate/internal/frontmatter"
)

// Formats maps a theme name to its notice template. Templates carry two
// substitution slots, {source_lang} and {target_lang}, rendered upper-cased.
// The "default" entry serves every theme not present in the map, so lookup
// never fails.
var Formats = map[string]string{
	"material": "\n!!! note\n    This document was automatically translated from {source_lang} to {target_lang}.\n\n",
	"default":  "\n>NOTE:\nThis document was automatically translated from {source_lang} to {target_lang}.\n\n",
}

// headingPattern matches one level-1 heading line with a non-empty rest,
// anywhere in the document, optionally consuming its trailing newline.
var headingPattern = regexp.MustCompile(`(?m)^# .+\n?`)

// Render formats the notice for a theme, falling back to the default
// template when the theme is unknown.
func Render(theme, sourceLang, targetLang string) string {
	format, ok := Formats[theme]
	if !ok {
		format = Formats["default"]
	}
	return strings.NewReplacer(
		"{source_lang}", strings.ToUpper(sourceLang),
		"{target_lang}", strings.ToUpper(targetLang),
	).Replace(format)
}

// Insert places the rendered notice into content. Anchor precedence:
// after the first `# ` heading line wherever it occurs, else after a leading
// frontmatter block, else at the very beginning. Insert is total: any input
// produces an output, it never fails.
func Insert(content, sourceLang, targetLang, theme string) string {
	rendered := Render(theme, sourceLang, targetLang)

	if loc := headingPattern.FindStringIndex(content); loc != nil {
		return content[:loc[1]] + rendered + content[loc[1]:]
	}

	// A malformed (unclosed) frontmatter block counts as no anchor.
	if block, had, err := frontmatter.Detect([]byte(content)); err == nil && had {
		return content[:block.End] + rendered + content[block.End:]
	}

	return rendered + content
}
