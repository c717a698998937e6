package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/filigree/document"
	"github.com/iw2rmb/filigree/phantom"
	"github.com/iw2rmb/filigree/reactive"
)

// Non-interactive walkthrough: annotate a two-line call that has been
// collapsed onto one row, splice in an inlay hint, and print the coordinate
// mappings. Rebuilds are driven by the document version through a cache.
func main() {
	doc := document.New("result := compute(\n    a, b)\n")

	scope := reactive.NewScope()
	defer scope.Dispose()
	rev := reactive.NewSignal(scope, doc.Version())

	cache := phantom.NewCache(rev, func() *phantom.MergedLine {
		// Line 0 folds its terminator away and continues on line 1, whose
		// indent is folded; the hint annotates the result binding.
		first := phantom.AnnotateLine(0, doc.LineLen(0), doc.OffsetOfLine(0), []phantom.Span{
			{Kind: phantom.KindInlayHint, OriginLine: 0, OriginCol: 6, MergeCol: 6, Text: ": int"},
			{
				Kind: phantom.KindFoldedRange, OriginLine: 0, OriginCol: doc.LineLen(0) - 1,
				MergeCol: doc.LineLen(0) - 1, FoldedLength: 1,
				ContinuationLine: 1, HasContinuation: true,
			},
		})
		m := phantom.NewMergedLine(first)
		m.Merge(phantom.AnnotateLine(1, doc.LineLen(1), doc.OffsetOfLine(1), []phantom.Span{
			{Kind: phantom.KindFoldedRange, OriginLine: 1, OriginCol: 0, MergeCol: 0, FoldedLength: 4},
		}))
		return m
	})

	render(doc, cache)

	doc.SetLine(1, "    a, b, c)\n")
	rev.Set(doc.Version())
	fmt.Println()
	render(doc, cache)
}

func render(doc *document.Document, cache *phantom.Cache) {
	m := cache.Row()
	origin := doc.ConcatLines(m.FirstLine, m.LastLine)
	content := m.FinalLineContent(origin)

	fmt.Printf("origin (%d lines): %q\n", m.LastLine-m.FirstLine+1, origin)
	fmt.Printf("rendered row:      %q\n", content)

	styles := m.AppendPhantomStyles(nil, lipgloss.NewStyle(), 14, lipgloss.Color("245"))
	for _, sp := range styles {
		fmt.Printf("phantom style:     [%d, %d) %q\n", sp.Start, sp.End, content[sp.Start:sp.End])
	}

	for _, finalCol := range []int{0, 8, 20, len(content) - 1} {
		line, col, offset := m.CursorPositionOfFinal(finalCol)
		fmt.Printf("final %2d -> origin line %d col %2d (buffer offset %2d)\n", finalCol, line, col, offset)
	}
}
