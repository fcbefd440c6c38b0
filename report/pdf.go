package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const pointsPerCm = 72 / 2.54

// PageSetup fixes the page geometry and metadata of a rendered document.
type PageSetup struct {
	Size         string  // fpdf page size name, e.g. "A4"
	Margin       float64 // all four margins, in points
	Title        string
	Author       string
	CreationDate time.Time // zero means the time of rendering
}

// DefaultPageSetup is A4 with 2 cm margins.
func DefaultPageSetup() PageSetup {
	return PageSetup{
		Size:   "A4",
		Margin: 2 * pointsPerCm,
		Title:  "SDD - AI Product Ops",
	}
}

type textStyle struct {
	size    float64
	leading float64
	bold    bool
}

var blockStyles = map[BlockKind]textStyle{
	BlockTitle:     {size: 18, leading: 22, bold: true},
	BlockHeading2:  {size: 14, leading: 17, bold: true},
	BlockHeading3:  {size: 12, leading: 14.5, bold: true},
	BlockParagraph: {size: 10, leading: 12},
	BlockList:      {size: 10, leading: 12},
}

const (
	fontFamily = "Helvetica"
	listIndent = 14
	bulletGap  = 9
)

// Runes outside cp1252 that the core fonts cannot show.
var cp1252Fallbacks = strings.NewReplacer("≤", "<=", "≥", ">=", "→", "->", "✓", "x")

// RenderDocument lays text out as an A4 PDF with the default page setup.
func RenderDocument(text string) ([]byte, error) {
	return DefaultPageSetup().Render(text)
}

// Render parses text with Parse and returns the PDF bytes.
func (ps PageSetup) Render(text string) ([]byte, error) {
	pdf := fpdf.New("P", "pt", ps.Size, "")
	pdf.SetMargins(ps.Margin, ps.Margin, ps.Margin)
	pdf.SetAutoPageBreak(true, ps.Margin)
	pdf.SetTitle(ps.Title, true)
	pdf.SetCreator("productops", false)
	if ps.Author != "" {
		pdf.SetAuthor(ps.Author, true)
	}
	if !ps.CreationDate.IsZero() {
		pdf.SetCreationDate(ps.CreationDate)
		pdf.SetModificationDate(ps.CreationDate)
	}
	pdf.AddPage()

	lw := &layoutWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	for _, b := range Parse(text) {
		lw.block(b)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type layoutWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (lw *layoutWriter) encode(s string) string {
	return lw.tr(cp1252Fallbacks.Replace(s))
}

func (lw *layoutWriter) block(b Block) {
	if b.Kind == BlockSpacer {
		lw.pdf.Ln(b.Height)
		return
	}
	st := blockStyles[b.Kind]
	switch b.Kind {
	case BlockTitle:
		lw.pdf.SetFont(fontFamily, "B", st.size)
		lw.pdf.MultiCell(0, st.leading, lw.encode(PlainText(b.Text)), "", "C", false)
	case BlockList:
		lw.list(b.Items, st)
	default:
		lw.runs(Runs(b.Text), st)
		lw.pdf.Ln(st.leading)
	}
}

// runs writes flowing text, switching weight per run. Wrapped lines return
// to the current left margin.
func (lw *layoutWriter) runs(runs []Run, st textStyle) {
	for _, r := range runs {
		style := ""
		if r.Bold || st.bold {
			style = "B"
		}
		lw.pdf.SetFont(fontFamily, style, st.size)
		lw.pdf.Write(st.leading, lw.encode(r.Text))
	}
}

func (lw *layoutWriter) list(items []string, st textStyle) {
	left, _, _, _ := lw.pdf.GetMargins()
	lw.pdf.SetLeftMargin(left + listIndent)
	defer lw.pdf.SetLeftMargin(left)

	for _, it := range items {
		lw.pdf.SetX(left + listIndent - bulletGap)
		lw.pdf.SetFont(fontFamily, "", st.size)
		lw.pdf.CellFormat(bulletGap, st.leading, lw.encode("•"), "", 0, "L", false, 0, "")
		lw.runs(Runs(it), st)
		lw.pdf.Ln(st.leading)
	}
}
