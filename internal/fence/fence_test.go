package fence

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProtect_NoBlocks_ReturnsTextUnchanged(t *testing.T) {
	input := "# Title\n\nJust prose, no code.\n"

	protected, blocks := Protect(input)
	require.Equal(t, input, protected)
	require.Empty(t, blocks)
}

func TestProtect_SingleBlock_ReplacesWithPlaceholder(t *testing.T) {
	input := "Before\n```go\nfmt.Println(\"hi\")\n```\nAfter\n"

	protected, blocks := Protect(input)
	require.Len(t, blocks, 1)
	require.Equal(t, "```go\nfmt.Println(\"hi\")\n```", blocks[0])
	require.Equal(t, "Before\nCODEBLOCK_0_PLACEHOLDER\nAfter\n", protected)
}

func TestProtect_MultipleBlocks_IndexesInOrderOfAppearance(t *testing.T) {
	input := "```python\na = 1\n```\ntext\n```\nplain\n```\nmore\n```sh\nls\n```\n"

	protected, blocks := Protect(input)
	require.Len(t, blocks, 3)
	for i := range blocks {
		require.Contains(t, protected, fmt.Sprintf("CODEBLOCK_%d_PLACEHOLDER", i))
	}
	require.NotContains(t, protected, "a = 1")
	require.NotContains(t, protected, "plain")
	require.NotContains(t, protected, "ls")

	// Placeholders appear in the same order as the blocks they replaced.
	require.Less(t,
		strings.Index(protected, "CODEBLOCK_0_PLACEHOLDER"),
		strings.Index(protected, "CODEBLOCK_1_PLACEHOLDER"))
	require.Less(t,
		strings.Index(protected, "CODEBLOCK_1_PLACEHOLDER"),
		strings.Index(protected, "CODEBLOCK_2_PLACEHOLDER"))
}

func TestProtect_EmptyBlockContent_IsCaptured(t *testing.T) {
	input := "```\n\n```\n"

	protected, blocks := Protect(input)
	require.Len(t, blocks, 1)
	require.Equal(t, "```\n\n```", blocks[0])
	require.Equal(t, "CODEBLOCK_0_PLACEHOLDER\n", protected)
}

func TestProtect_AdjacentBlocks_CapturedSeparately(t *testing.T) {
	input := "```go\nx\n```\n```go\ny\n```\n"

	_, blocks := Protect(input)
	require.Len(t, blocks, 2)
	require.Equal(t, "```go\nx\n```", blocks[0])
	require.Equal(t, "```go\ny\n```", blocks[1])
}

func TestRestore_RoundTrip_ReconstructsOriginal(t *testing.T) {
	cases := []string{
		"One block:\n```go\nfunc main() {}\n```\nDone.\n",
		"```\nfirst\n```\nmiddle\n```yaml\nkey: value\n```\n",
		"---\ntitle: Doc\n---\n# H\n```sh\necho $HOME\n```\n",
		"Fences inside prose ``` not a block, then\n```c\nint x;\n```\n",
	}

	for _, input := range cases {
		protected, blocks := Protect(input)
		restored, err := Restore(protected, blocks)
		require.NoError(t, err)
		require.Equal(t, input, restored)
	}
}

func TestRestore_NoBlocks_ReturnsError(t *testing.T) {
	_, err := Restore("some text", nil)
	require.ErrorIs(t, err, ErrNoBlocks)
}

func TestRestore_LeavesUnknownPlaceholdersAlone(t *testing.T) {
	out, err := Restore("CODEBLOCK_0_PLACEHOLDER and CODEBLOCK_7_PLACEHOLDER", []string{"```go\nx\n```"})
	require.NoError(t, err)
	require.Equal(t, "```go\nx\n``` and CODEBLOCK_7_PLACEHOLDER", out)
}
