package integrity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScan_CountsHeadersFencesAndLinks(t *testing.T) {
	text := "# Title\n## Sub\ntext [a link](https://example.com) more\n```go\nx\n```\n"

	snap := Scan(text)
	require.Equal(t, Snapshot{Headers: 2, CodeBlocks: 1, Links: 1}, snap)
}

func TestScan_EmptyText_AllZero(t *testing.T) {
	require.Equal(t, Snapshot{}, Scan(""))
}

func TestScan_CodeBlocksAreFencePairsDividedByTwo(t *testing.T) {
	// Three markers: one complete block plus one dangling opener.
	snap := Scan("```\nx\n```\ntext\n```\n")
	require.Equal(t, 1, snap.CodeBlocks)
}

func TestCheck_EqualCounts_ReturnsNil(t *testing.T) {
	source := "# Titel\n[link](u)\n```\nx\n```\n"
	translated := "# Title\n[lien](u)\n```\nx\n```\n"

	require.Nil(t, Check(source, translated))
}

func TestCheck_MissingHeader_ReportsHeadersOnly(t *testing.T) {
	report := Check("# One\n## Two\n", "# Eins\n")
	require.NotNil(t, report)
	require.Equal(t, []string{"headers"}, report.Mismatched)
	require.Equal(t, 2, report.Expected.Headers)
	require.Equal(t, 1, report.Actual.Headers)
}

func TestCheck_MultipleDrifts_ReportsEachKind(t *testing.T) {
	source := "# H\n[a](b)\n```\nx\n```\n"
	translated := "plain text only\n"

	report := Check(source, translated)
	require.NotNil(t, report)
	require.ElementsMatch(t, []string{"headers", "code_blocks", "links"}, report.Mismatched)
}

func TestCheck_DroppedLink_ReportsLinks(t *testing.T) {
	report := Check("see [docs](https://d)\n", "see docs\n")
	require.NotNil(t, report)
	require.Equal(t, []string{"links"}, report.Mismatched)
}
