package report

import (
	"html"
	"regexp"
	"strings"
)

var boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var boldRestorer = strings.NewReplacer("&lt;b&gt;", "<b>", "&lt;/b&gt;", "</b>")

// InlineMarkup converts one line of text into the renderer's inline markup:
// paired **x** becomes <b>x</b>, and literal &, < and > are escaped.
//
// Order matters. Bold tags are introduced first, everything is escaped, and
// only then are the escaped bold tags restored. An unpaired ** has no match
// and stays literal.
func InlineMarkup(text string) string {
	text = boldPattern.ReplaceAllString(text, "<b>$1</b>")
	text = escaper.Replace(text)
	return boldRestorer.Replace(text)
}

// Run is a span of plain text sharing one font weight.
type Run struct {
	Text string
	Bold bool
}

// Runs splits inline markup back into text runs with entities decoded.
// Adjacent runs of the same weight are merged; empty runs are dropped.
func Runs(markup string) []Run {
	var runs []Run
	bold := false
	emit := func(s string) {
		if s == "" {
			return
		}
		s = html.UnescapeString(s)
		if n := len(runs); n > 0 && runs[n-1].Bold == bold {
			runs[n-1].Text += s
			return
		}
		runs = append(runs, Run{Text: s, Bold: bold})
	}
	for markup != "" {
		open := strings.Index(markup, "<b>")
		end := strings.Index(markup, "</b>")
		switch {
		case open < 0 && end < 0:
			emit(markup)
			markup = ""
		case end < 0 || (open >= 0 && open < end):
			emit(markup[:open])
			bold = true
			markup = markup[open+len("<b>"):]
		default:
			emit(markup[:end])
			bold = false
			markup = markup[end+len("</b>"):]
		}
	}
	return runs
}

// PlainText flattens inline markup to its visible text.
func PlainText(markup string) string {
	var b strings.Builder
	for _, r := range Runs(markup) {
		b.WriteString(r.Text)
	}
	return b.String()
}
