package report

import "strings"

// BlockKind identifies how a block is laid out on the page.
type BlockKind int

const (
	BlockSpacer BlockKind = iota
	BlockTitle
	BlockHeading2
	BlockHeading3
	BlockParagraph
	BlockList
)

func (k BlockKind) String() string {
	switch k {
	case BlockTitle:
		return "title"
	case BlockHeading2:
		return "heading2"
	case BlockHeading3:
		return "heading3"
	case BlockParagraph:
		return "paragraph"
	case BlockList:
		return "list"
	default:
		return "spacer"
	}
}

// Block is one layout unit. Text and Items hold inline markup (see
// InlineMarkup); Height is only set on spacers and is in points.
type Block struct {
	Kind   BlockKind
	Text   string
	Items  []string
	Height float64
}

// Vertical space emitted after each construct, in points.
const (
	spaceAfterTitle     = 10
	spaceAfterHeading2  = 8
	spaceAfterHeading3  = 6
	spaceAfterParagraph = 6
	spaceAfterList      = 8
	spaceBlankLine      = 8
)

type lineKind int

const (
	lineBlank lineKind = iota
	lineTitle
	lineHeading2
	lineHeading3
	lineBullet
	lineText
)

// classify matches prefixes in priority order and returns the line's content.
func classify(line string) (lineKind, string) {
	switch {
	case line == "":
		return lineBlank, ""
	case strings.HasPrefix(line, "# "):
		return lineTitle, line[len("# "):]
	case strings.HasPrefix(line, "## "):
		return lineHeading2, line[len("## "):]
	case strings.HasPrefix(line, "### "):
		return lineHeading3, line[len("### "):]
	case strings.HasPrefix(line, "- "):
		return lineBullet, line[len("- "):]
	default:
		return lineText, line
	}
}

type parseState int

const (
	stateIdle parseState = iota
	stateAccumulatingList
)

// parser is the line interpreter. In stateIdle nothing is pending; in
// stateAccumulatingList bullet items are held until a non-bullet line or
// the end of input flushes them as one list block.
type parser struct {
	state   parseState
	pending []string
	blocks  []Block
}

func (p *parser) feed(line string) {
	kind, content := classify(strings.TrimRight(line, " \t\r\n\v\f"))
	if kind == lineBullet {
		p.pending = append(p.pending, content)
		p.state = stateAccumulatingList
		return
	}
	p.flush()
	switch kind {
	case lineBlank:
		p.spacer(spaceBlankLine)
	case lineTitle:
		p.emit(Block{Kind: BlockTitle, Text: InlineMarkup(content)}, spaceAfterTitle)
	case lineHeading2:
		p.emit(Block{Kind: BlockHeading2, Text: InlineMarkup(content)}, spaceAfterHeading2)
	case lineHeading3:
		p.emit(Block{Kind: BlockHeading3, Text: InlineMarkup(content)}, spaceAfterHeading3)
	default:
		p.emit(Block{Kind: BlockParagraph, Text: InlineMarkup(content)}, spaceAfterParagraph)
	}
}

// flush is a no-op in stateIdle.
func (p *parser) flush() {
	if p.state != stateAccumulatingList {
		return
	}
	items := make([]string, len(p.pending))
	for i, it := range p.pending {
		items[i] = InlineMarkup(it)
	}
	p.pending = p.pending[:0]
	p.state = stateIdle
	p.emit(Block{Kind: BlockList, Items: items}, spaceAfterList)
}

func (p *parser) emit(b Block, after float64) {
	p.blocks = append(p.blocks, b)
	p.spacer(after)
}

// spacer merges into a preceding spacer, keeping the larger height.
// Merging gives a tighter vertical rhythm than stacking both gaps: a list
// followed by a blank line leaves 8pt, not 16pt.
func (p *parser) spacer(h float64) {
	if n := len(p.blocks); n > 0 && p.blocks[n-1].Kind == BlockSpacer {
		p.blocks[n-1].Height = max(p.blocks[n-1].Height, h)
		return
	}
	p.blocks = append(p.blocks, Block{Kind: BlockSpacer, Height: h})
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Parse interprets text line by line and returns the blocks to lay out.
// Lines may end in "\n", "\r\n" or a lone "\r".
// Any input is accepted; constructs outside the supported subset become
// plain paragraphs.
func Parse(text string) []Block {
	p := &parser{}
	if text = lineBreaks.Replace(text); text != "" {
		for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
			p.feed(line)
		}
	}
	p.flush()
	return p.blocks
}
