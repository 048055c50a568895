// Package frontmatter locates and parses leading `---` delimited YAML
// metadata blocks. The translation pipeline never rewrites frontmatter; it
// only needs to know where a block ends so a notice can be inserted after it,
// and what it contains so status output can show document titles.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document opened a frontmatter
// block but never closed it.
var ErrMissingClosingDelimiter = errors.New("frontmatter start delimiter found but closing delimiter is missing")

// Block describes a leading frontmatter block.
type Block struct {
	// Raw is the YAML content between the delimiters, without them.
	Raw []byte
	// End is the offset of the first byte after the closing delimiter line;
	// content[:End] is the whole block including both `---` lines.
	End int
}

// Detect reports whether content starts with a `---` delimited frontmatter
// block. When it does not, Detect returns (nil, false, nil).
func Detect(content []byte) (*Block, bool, error) {
	nl := detectNewline(content)

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, false, nil
	}

	start := len(open)

	// Empty block: the closing delimiter immediately follows the opener.
	if bytes.HasPrefix(content[start:], open) {
		return &Block{Raw: []byte{}, End: start + len(open)}, true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		return nil, false, ErrMissingClosingDelimiter
	}

	rawEnd := start + idx + len(nl)
	end := start + idx + len(closeSeq)
	return &Block{Raw: content[start:rawEnd], End: end}, true, nil
}

// Parse unmarshals raw frontmatter YAML (without delimiters) into a map.
func Parse(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var fields map[string]any
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

func detectNewline(content []byte) string {
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			return "\r\n"
		}
		if content[i] == '\n' {
			return "\n"
		}
	}
	return "\n"
}
