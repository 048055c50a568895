package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect_NoFrontmatter_ReturnsFalse(t *testing.T) {
	block, had, err := Detect([]byte("# Title\n\nHello\n"))
	require.NoError(t, err)
	require.False(t, had)
	require.Nil(t, block)
}

func TestDetect_YAMLFrontmatter_ReturnsRawAndEnd(t *testing.T) {
	input := []byte("---\nkey: value\n---\n# Title\n")

	block, had, err := Detect(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("key: value\n"), block.Raw)
	require.Equal(t, "# Title\n", string(input[block.End:]))
}

func TestDetect_EmptyBlock_ReturnsEmptyRaw(t *testing.T) {
	input := []byte("---\n---\n# Title\n")

	block, had, err := Detect(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, block.Raw)
	require.Equal(t, "# Title\n", string(input[block.End:]))
}

func TestDetect_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, had, err := Detect([]byte("---\nkey: value\n# Title\n"))
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)
	require.False(t, had)
}

func TestDetect_CRLF_ComputesEndCorrectly(t *testing.T) {
	input := []byte("---\r\nkey: value\r\n---\r\nBody\r\n")

	block, had, err := Detect(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("key: value\r\n"), block.Raw)
	require.Equal(t, "Body\r\n", string(input[block.End:]))
}

func TestDetect_DashesMidDocument_NotFrontmatter(t *testing.T) {
	block, had, err := Detect([]byte("intro\n---\nkey: value\n---\n"))
	require.NoError(t, err)
	require.False(t, had)
	require.Nil(t, block)
}

func TestParse_ValidYAML_ReturnsMap(t *testing.T) {
	fields, err := Parse([]byte("title: Test\ntags:\n  - docs\n"))
	require.NoError(t, err)
	require.Equal(t, "Test", fields["title"])
	require.Equal(t, []any{"docs"}, fields["tags"])
}

func TestParse_Empty_ReturnsEmptyMap(t *testing.T) {
	fields, err := Parse(nil)
	require.NoError(t, err)
	require.Empty(t, fields)
}

func TestParse_InvalidYAML_ReturnsError(t *testing.T) {
	_, err := Parse([]byte(": not yaml"))
	require.Error(t, err)
}
