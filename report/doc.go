// Package report turns a design.State into a System Design Document.
//
// RenderMarkdown assembles the document as flat Markdown. RenderDocument
// interprets that Markdown (or any text using the same subset: three heading
// levels, flat "- " bullet lists, paragraphs and **bold**) and lays it out as
// a paginated PDF. Both are pure: callers own file I/O.
package report
