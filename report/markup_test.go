package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TitleListBody(t *testing.T) {
	// GIVEN a title, a two-item list and a body line separated by blank lines
	text := "# Title\n\n- a\n- b\n\nBody"

	// WHEN parsed
	got := Parse(text)

	// THEN title, spacer, list, spacer, body are produced in that order
	want := []Block{
		{Kind: BlockTitle, Text: "Title"},
		{Kind: BlockSpacer, Height: spaceAfterTitle},
		{Kind: BlockList, Items: []string{"a", "b"}},
		{Kind: BlockSpacer, Height: spaceAfterList},
		{Kind: BlockParagraph, Text: "Body"},
		{Kind: BlockSpacer, Height: spaceAfterParagraph},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_PrefixPriority(t *testing.T) {
	tests := []struct {
		line string
		kind BlockKind
		text string
	}{
		{"# Uno", BlockTitle, "Uno"},
		{"## Dos", BlockHeading2, "Dos"},
		{"### Tres", BlockHeading3, "Tres"},
		{"#### Cuatro", BlockParagraph, "#### Cuatro"},
		{"#sin espacio", BlockParagraph, "#sin espacio"},
		{"1. Auth", BlockParagraph, "1. Auth"},
		{"-sin espacio", BlockParagraph, "-sin espacio"},
		{"| a | b |", BlockParagraph, "| a | b |"},
		{"```go", BlockParagraph, "```go"},
		{"[link](http://x)", BlockParagraph, "[link](http://x)"},
	}
	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			blocks := Parse(tc.line)
			require.Len(t, blocks, 2)
			assert.Equal(t, tc.kind, blocks[0].Kind)
			assert.Equal(t, tc.text, blocks[0].Text)
			assert.Equal(t, BlockSpacer, blocks[1].Kind)
		})
	}
}

func TestParse_ListFlushedByHeadingAndEndOfInput(t *testing.T) {
	got := Parse("- uno\n- dos\n## Siguiente\n- tres")

	want := []Block{
		{Kind: BlockList, Items: []string{"uno", "dos"}},
		{Kind: BlockSpacer, Height: spaceAfterList},
		{Kind: BlockHeading2, Text: "Siguiente"},
		{Kind: BlockSpacer, Height: spaceAfterHeading2},
		{Kind: BlockList, Items: []string{"tres"}},
		{Kind: BlockSpacer, Height: spaceAfterList},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_TrailingWhitespaceTrimmed(t *testing.T) {
	got := Parse("## Roles   \r\n- **sre_owner**: \t\r\n   \r\n")

	want := []Block{
		{Kind: BlockHeading2, Text: "Roles"},
		{Kind: BlockSpacer, Height: spaceAfterHeading2},
		{Kind: BlockList, Items: []string{"<b>sre_owner</b>:"}},
		{Kind: BlockSpacer, Height: spaceAfterList},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_LoneCarriageReturns_SplitLines(t *testing.T) {
	// GIVEN text whose lines end in a bare carriage return
	got := Parse("a\rb\r- c")

	// THEN each line is interpreted on its own
	want := []Block{
		{Kind: BlockParagraph, Text: "a"},
		{Kind: BlockSpacer, Height: spaceAfterParagraph},
		{Kind: BlockParagraph, Text: "b"},
		{Kind: BlockSpacer, Height: spaceAfterParagraph},
		{Kind: BlockList, Items: []string{"c"}},
		{Kind: BlockSpacer, Height: spaceAfterList},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_EmptyInput_NoBlocks(t *testing.T) {
	assert.Empty(t, Parse(""))
}

func TestParse_ConsecutiveBlankLines_SingleSpacer(t *testing.T) {
	got := Parse("a\n\n\n\nb")

	require.Len(t, got, 4)
	assert.Equal(t, BlockParagraph, got[0].Kind)
	assert.Equal(t, Block{Kind: BlockSpacer, Height: spaceBlankLine}, got[1])
	assert.Equal(t, BlockParagraph, got[2].Kind)
}

func TestParse_GeneratedMarkdown_StartsWithTitle(t *testing.T) {
	blocks := Parse(RenderMarkdown(fullState(), exportDate))

	require.NotEmpty(t, blocks)
	assert.Equal(t, BlockTitle, blocks[0].Kind)
	assert.Equal(t, Title, blocks[0].Text)

	var lists, headings int
	for _, b := range blocks {
		switch b.Kind {
		case BlockList:
			lists++
		case BlockHeading2:
			headings++
		}
	}
	assert.Equal(t, 7, headings)
	assert.Equal(t, 7, lists)
}

func TestBlockKind_String(t *testing.T) {
	assert.Equal(t, "title", BlockTitle.String())
	assert.Equal(t, "list", BlockList.String())
	assert.Equal(t, "spacer", BlockSpacer.String())
}
