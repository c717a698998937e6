package phantom

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
	"github.com/rs/zerolog/log"
)

// Line is one origin line annotated with its phantom spans: an ordered
// segment list stamped with origin, merge, and final coordinates.
//
// A Line is immutable once built; when the origin text or its spans change,
// the caller rebuilds it from scratch.
type Line struct {
	// Line is the origin line number.
	Line int

	// OffsetOfLine is the absolute buffer byte offset of the line start.
	OffsetOfLine int

	// OriginTextLen is the raw line length in bytes, including any
	// line-ending bytes that participate in column counting.
	OriginTextLen int

	// FinalTextLen is the rendered length after phantom insertion and fold
	// removal.
	FinalTextLen int

	Segments []Segment
}

// AnnotateLine builds the segment list for one origin line.
//
// spans need not be pre-sorted; they are ordered by (MergeCol, Kind) here.
// Equal anchors stack in Kind declaration order so co-located spans render
// deterministically.
func AnnotateLine(originLine, originTextLen, offsetOfLine int, spans []Span) Line {
	ordered := make([]Span, len(spans))
	copy(ordered, spans)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].MergeCol != ordered[j].MergeCol {
			return ordered[i].MergeCol < ordered[j].MergeCol
		}
		return ordered[i].Kind < ordered[j].Kind
	})

	var segments []Segment
	finalLast := 0
	originLast := 0
	mergeLast := 0

	// delta is the running final-space shift: phantom text adds, folded
	// origin text subtracts. It may go negative mid-walk when a fold's
	// replacement is shorter than the folded run; only the resulting columns
	// must stay non-negative.
	delta := 0
	for _, sp := range ordered {
		sp.FinalCol = finalCol(sp.MergeCol, delta)
		delta += len(sp.Text)
		if sp.Kind == KindFoldedRange {
			delta -= sp.FoldedLength
		}

		if gap := sp.FinalCol - finalLast; gap > 0 {
			segments = append(segments, originSegment(
				sp.OriginLine,
				Interval{originLast, originLast + gap},
				Interval{mergeLast, mergeLast + gap},
				Interval{finalLast, finalLast + gap},
			))
		}
		finalLast = sp.NextFinalCol()
		originLast = sp.NextOriginCol()
		mergeLast = sp.NextMergeCol()
		segments = append(segments, phantomSegment(sp))
	}

	if gap := originTextLen - originLast; gap > 0 {
		segments = append(segments, originSegment(
			originLine,
			Interval{originLast, originLast + gap},
			Interval{mergeLast, mergeLast + gap},
			Interval{finalLast, finalLast + gap},
		))
	}

	finalTextLen := finalCol(originTextLen, delta)
	if len(segments) == 0 {
		segments = append(segments, Segment{Kind: SegmentEmpty})
	}

	return Line{
		Line:          originLine,
		OffsetOfLine:  offsetOfLine,
		OriginTextLen: originTextLen,
		FinalTextLen:  finalTextLen,
		Segments:      segments,
	}
}

// FoldedLine returns the continuation line of a fold that ends this line, if
// any. Callers use it to decide which origin line to annotate and merge next.
func (l Line) FoldedLine() (int, bool) {
	if len(l.Segments) == 0 {
		return 0, false
	}
	seg := l.Segments[len(l.Segments)-1]
	if seg.Kind != SegmentPhantom {
		return 0, false
	}
	return seg.Span.Continuation()
}

// finalCol applies a signed shift to a column and validates the result is a
// legal (non-negative) column. A negative result means the upstream span
// generator produced inconsistent folds, which is a programming error, not
// bad input.
func finalCol(col, delta int) int {
	shifted := col + delta
	if _, err := safecast.Conv[uint](shifted); err != nil {
		log.Error().Int("col", col).Int("delta", delta).Msg("phantom: final column underflow")
		panic(fmt.Sprintf("phantom: final column underflow: col %d + delta %d", col, delta))
	}
	return shifted
}
