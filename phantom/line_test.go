package phantom

import (
	"math/rand"
	"reflect"
	"testing"
)

// Test fixtures mirror a small folded buffer (0-based origin lines):
//
//	line 1: "    if true {\r\n"
//	line 3: "    } else {\r\n"
//	line 5: "    }\r\n"
//
// folded into the single rendered row "    if true {...} else {...}\r\n".

func foldedLineFixture(t *testing.T, visualLine int, folded bool) Line {
	t.Helper()

	var originTextLen int
	var spans []Span
	switch {
	case visualLine == 2:
		originTextLen = 15 // "    if true {\r\n"
		spans = append(spans, Span{
			Kind:             KindFoldedRange,
			OriginLine:       1,
			OriginCol:        12,
			MergeCol:         12,
			Text:             "{...}",
			FoldedLength:     3,
			ContinuationLine: 3,
			HasContinuation:  true,
		})
	case visualLine == 4 && !folded:
		originTextLen = 14 // "    } else {\r\n"
		spans = append(spans, Span{
			Kind:         KindFoldedRange,
			OriginLine:   3,
			OriginCol:    0,
			MergeCol:     0,
			FoldedLength: 5,
		})
	case visualLine == 4 && folded:
		originTextLen = 14
		spans = append(spans, Span{
			Kind:         KindFoldedRange,
			OriginLine:   3,
			OriginCol:    0,
			MergeCol:     0,
			FoldedLength: 5,
		})
		spans = append(spans, Span{
			Kind:             KindFoldedRange,
			OriginLine:       3,
			OriginCol:        11,
			MergeCol:         11,
			Text:             "{...}",
			FoldedLength:     3,
			ContinuationLine: 5,
			HasContinuation:  true,
		})
	case visualLine == 6:
		originTextLen = 7 // "    }\r\n"
		spans = append(spans, Span{
			Kind:         KindFoldedRange,
			OriginLine:   5,
			OriginCol:    0,
			MergeCol:     0,
			FoldedLength: 5,
		})
	default:
		t.Fatalf("no fixture for visual line %d", visualLine)
	}

	return AnnotateLine(visualLine-1, originTextLen, 0, spans)
}

// inlayLineFixture annotates "    let a = A;\r\n" with the inlay hint ": A "
// after the binding name.
func inlayLineFixture() Line {
	spans := []Span{{
		Kind:       KindInlayHint,
		OriginLine: 6,
		OriginCol:  9,
		MergeCol:   9,
		Text:       ": A ",
	}}
	return AnnotateLine(6, 16, 0, spans)
}

func emptyLineFixture() Line {
	return AnnotateLine(6, 0, 0, nil)
}

// checkSegments verifies that splicing origin through the segment list
// produces expect and that the final ranges cover exactly [0, finalTextLen).
func checkSegments(t *testing.T, segments []Segment, finalTextLen int, origin, expect string) {
	t.Helper()

	if got := combineWithText(segments, origin); got != expect {
		t.Fatalf("final content: got %q, want %q", got, expect)
	}
	if finalTextLen != len(expect) {
		t.Fatalf("final text len: got %d, want %d", finalTextLen, len(expect))
	}

	cursor := 0
	for _, seg := range segments {
		var start, end int
		switch seg.Kind {
		case SegmentPhantom:
			start, end = seg.Span.FinalCol, seg.Span.NextFinalCol()
		case SegmentOrigin:
			start, end = seg.Final.Start, seg.Final.End
		case SegmentEmpty:
			continue
		}
		if start != cursor {
			t.Fatalf("final ranges not contiguous: segment starts at %d, cursor at %d", start, cursor)
		}
		cursor = end
	}
	if cursor != finalTextLen {
		t.Fatalf("final ranges cover [0, %d), want [0, %d)", cursor, finalTextLen)
	}
}

// checkPhantomPlacement verifies each phantom's text sits at its FinalCol in
// the rendered string.
func checkPhantomPlacement(t *testing.T, line Line, rendered string) {
	t.Helper()
	for _, seg := range line.Segments {
		if seg.Kind != SegmentPhantom || seg.Span.Text == "" {
			continue
		}
		sp := seg.Span
		if got := rendered[sp.FinalCol : sp.FinalCol+len(sp.Text)]; got != sp.Text {
			t.Fatalf("phantom placement: got %q at %d, want %q", got, sp.FinalCol, sp.Text)
		}
	}
}

func TestAnnotateLine_FoldReplacesTail(t *testing.T) {
	line2 := foldedLineFixture(t, 2, false)
	checkSegments(t, line2.Segments, line2.FinalTextLen, "    if true {\r\n", "    if true {...}")
	checkPhantomPlacement(t, line2, "    if true {...}")

	line4 := foldedLineFixture(t, 4, false)
	checkSegments(t, line4.Segments, line4.FinalTextLen, "    } else {\r\n", " else {\r\n")
	checkPhantomPlacement(t, line4, " else {\r\n")

	folded4 := foldedLineFixture(t, 4, true)
	checkSegments(t, folded4.Segments, folded4.FinalTextLen, "    } else {\r\n", " else {...}")
	checkPhantomPlacement(t, folded4, " else {...}")

	line6 := foldedLineFixture(t, 6, false)
	checkSegments(t, line6.Segments, line6.FinalTextLen, "    }\r\n", "\r\n")
	checkPhantomPlacement(t, line6, "\r\n")
}

func TestAnnotateLine_InlayHintInsertion(t *testing.T) {
	line := inlayLineFixture()
	want := "    let a: A  = A;\r\n"
	checkSegments(t, line.Segments, line.FinalTextLen, "    let a = A;\r\n", want)
	checkPhantomPlacement(t, line, want)
	if got, want := line.FinalTextLen, 20; got != want {
		t.Fatalf("final text len: got %d, want %d", got, want)
	}
}

func TestAnnotateLine_NoSpansSingleOriginSegment(t *testing.T) {
	line := AnnotateLine(0, 10, 0, nil)
	if got, want := len(line.Segments), 1; got != want {
		t.Fatalf("segments: got %d, want %d", got, want)
	}
	seg := line.Segments[0]
	if seg.Kind != SegmentOrigin {
		t.Fatalf("segment kind: got %v, want SegmentOrigin", seg.Kind)
	}
	if seg.Origin != (Interval{0, 10}) || seg.Merge != (Interval{0, 10}) || seg.Final != (Interval{0, 10}) {
		t.Fatalf("segment intervals: got %+v", seg)
	}
	if got, want := line.FinalTextLen, 10; got != want {
		t.Fatalf("final text len: got %d, want %d", got, want)
	}
}

func TestAnnotateLine_EmptyLine(t *testing.T) {
	line := emptyLineFixture()
	if got, want := line.FinalTextLen, 0; got != want {
		t.Fatalf("final text len: got %d, want %d", got, want)
	}
	if len(line.Segments) != 1 || line.Segments[0].Kind != SegmentEmpty {
		t.Fatalf("segments: got %+v, want single empty segment", line.Segments)
	}
}

func TestAnnotateLine_KindTieBreakAtSameAnchor(t *testing.T) {
	// Declared in reverse priority; annotation must order them by kind.
	spans := []Span{
		{Kind: KindDiagnostic, OriginLine: 0, OriginCol: 2, MergeCol: 2, Text: "D"},
		{Kind: KindIme, OriginLine: 0, OriginCol: 2, MergeCol: 2, Text: "I"},
		{Kind: KindInlayHint, OriginLine: 0, OriginCol: 2, MergeCol: 2, Text: "H"},
	}
	line := AnnotateLine(0, 4, 0, spans)
	if got := combineWithText(line.Segments, "abcd"); got != "abIHDcd" {
		t.Fatalf("stacking order: got %q, want %q", got, "abIHDcd")
	}
}

func TestAnnotateLine_RebuildDeterministic(t *testing.T) {
	spans := []Span{
		{Kind: KindDiagnostic, OriginLine: 0, OriginCol: 6, MergeCol: 6, Text: " <- here"},
		{Kind: KindInlayHint, OriginLine: 0, OriginCol: 3, MergeCol: 3, Text: ": T"},
		{Kind: KindCompletion, OriginLine: 0, OriginCol: 3, MergeCol: 3, Text: "x"},
		{Kind: KindIme, OriginLine: 0, OriginCol: 3, MergeCol: 3, Text: "y"},
	}
	first := AnnotateLine(0, 12, 0, spans)

	for i := 0; i < 20; i++ {
		shuffled := make([]Span, len(spans))
		copy(shuffled, spans)
		rand.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		again := AnnotateLine(0, 12, 0, shuffled)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("rebuild %d differs:\n got %+v\nwant %+v", i, again, first)
		}
	}
}

func TestAnnotateLine_LengthConservationSweep(t *testing.T) {
	// final len must equal origin len + phantom text - folded text for every
	// fold/text length combination, including replacements shorter than the
	// folded run (negative running delta).
	const originLen = 32
	for foldedLen := 0; foldedLen <= 8; foldedLen++ {
		for textLen := 0; textLen <= 6; textLen++ {
			spans := []Span{
				{Kind: KindInlayHint, OriginLine: 0, OriginCol: 4, MergeCol: 4, Text: "::"},
				{
					Kind:         KindFoldedRange,
					OriginLine:   0,
					OriginCol:    10,
					MergeCol:     10,
					Text:         makeText(textLen),
					FoldedLength: foldedLen,
				},
				{Kind: KindDiagnostic, OriginLine: 0, OriginCol: 24, MergeCol: 24, Text: "!"},
			}
			line := AnnotateLine(0, originLen, 0, spans)
			want := originLen + 2 + textLen + 1 - foldedLen
			if line.FinalTextLen != want {
				t.Fatalf("foldedLen=%d textLen=%d: final len got %d, want %d",
					foldedLen, textLen, line.FinalTextLen, want)
			}
		}
	}
}

func TestAnnotateLine_NegativeFinalLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for fold longer than the line")
		}
	}()
	AnnotateLine(0, 4, 0, []Span{{
		Kind:         KindFoldedRange,
		OriginLine:   0,
		OriginCol:    0,
		MergeCol:     0,
		FoldedLength: 10,
	}})
}

func TestLine_FoldedLine(t *testing.T) {
	line2 := foldedLineFixture(t, 2, false)
	next, ok := line2.FoldedLine()
	if !ok || next != 3 {
		t.Fatalf("continuation: got (%d, %v), want (3, true)", next, ok)
	}

	if _, ok := inlayLineFixture().FoldedLine(); ok {
		t.Fatalf("inlay line should have no continuation")
	}
}

func makeText(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '.'
	}
	return string(b)
}
