package phantom

// Interval is a half-open byte range [Start, End).
type Interval struct {
	Start int
	End   int
}

func (iv Interval) Len() int { return iv.End - iv.Start }

func (iv Interval) Contains(off int) bool { return iv.Start <= off && off < iv.End }

func (iv Interval) translate(n int) Interval {
	return Interval{Start: iv.Start + n, End: iv.End + n}
}

type SegmentKind int

const (
	// SegmentOrigin is a run of real document text; its origin, merge, and
	// final intervals all have the same length.
	SegmentOrigin SegmentKind = iota
	// SegmentPhantom is a virtual insertion; it consumes no origin text
	// (unless it is a fold) and len(Span.Text) final columns.
	SegmentPhantom
	// SegmentEmpty marks a line with no content at all.
	SegmentEmpty
)

// Segment is one contiguous piece of a rendered line, either real document
// text or a phantom insertion. A line's segments are contiguous and
// non-overlapping in final space; concatenated they cover exactly
// [0, FinalTextLen).
type Segment struct {
	Kind SegmentKind

	// Span is meaningful only for SegmentPhantom.
	Span Span

	// Line and the three intervals are meaningful only for SegmentOrigin.
	// Origin is relative to the segment's own origin line and is never
	// rebased; Merge and Final are relative to the merged row.
	Line   int
	Origin Interval
	Merge  Interval
	Final  Interval
}

func originSegment(line int, origin, merge, final Interval) Segment {
	return Segment{Kind: SegmentOrigin, Line: line, Origin: origin, Merge: merge, Final: final}
}

func phantomSegment(sp Span) Segment {
	return Segment{Kind: SegmentPhantom, Span: sp}
}

// rebased shifts merge and final coordinates by the cumulative lengths of the
// rows merged so far. Origin coordinates stay absolute within their line.
func (s Segment) rebased(originTextLen, finalTextLen int) Segment {
	switch s.Kind {
	case SegmentPhantom:
		s.Span.MergeCol += originTextLen
		s.Span.FinalCol += finalTextLen
	case SegmentOrigin:
		s.Merge = s.Merge.translate(originTextLen)
		s.Final = s.Final.translate(finalTextLen)
	}
	return s
}
