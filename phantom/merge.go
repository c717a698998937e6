package phantom

// lineLen is one entry of the per-origin-line length table.
type lineLen struct {
	line      int
	originLen int
	finalLen  int
}

// MergedLine is the rendered unit for one visual row: the segment lists of
// every origin line a fold collapsed into it, with merge and final
// coordinates rebased cumulatively.
//
// Construction is append-only: NewMergedLine then zero or more Merge calls.
// A MergedLine is never mutated afterwards, so a finished value is safe for
// concurrent read-only use.
type MergedLine struct {
	// FirstLine and LastLine bound the origin lines merged into this row.
	FirstLine int
	LastLine  int

	// OffsetOfLine is the absolute buffer byte offset of FirstLine's start.
	OffsetOfLine int

	// OriginTextLen and FinalTextLen are cumulative over all merged lines.
	OriginTextLen int
	FinalTextLen  int

	lenOfLine []lineLen
	segments  []Segment
}

func NewMergedLine(first Line) *MergedLine {
	return &MergedLine{
		FirstLine:     first.Line,
		LastLine:      first.Line,
		OffsetOfLine:  first.OffsetOfLine,
		OriginTextLen: first.OriginTextLen,
		FinalTextLen:  first.FinalTextLen,
		lenOfLine:     []lineLen{{first.Line, first.OriginTextLen, first.FinalTextLen}},
		segments:      append([]Segment(nil), first.Segments...),
	}
}

// Merge appends the next origin line of the folded group, rebasing its merge
// and final coordinates by the cumulative lengths so far.
//
// When next's line number is not contiguous with the table (lines fully
// consumed by a prior fold), the table is padded by repeating the last entry,
// keeping line-indexed lookups a direct index rather than a search.
func (m *MergedLine) Merge(next Line) {
	idx := len(m.lenOfLine)
	last := m.lenOfLine[idx-1]
	for i := idx; i < next.Line-m.FirstLine; i++ {
		m.lenOfLine = append(m.lenOfLine, last)
	}
	m.lenOfLine = append(m.lenOfLine, lineLen{next.Line, next.OriginTextLen, next.FinalTextLen})

	originBase := m.OriginTextLen
	finalBase := m.FinalTextLen
	m.OriginTextLen += next.OriginTextLen
	m.FinalTextLen += next.FinalTextLen
	for _, seg := range next.Segments {
		m.segments = append(m.segments, seg.rebased(originBase, finalBase))
	}
	m.LastLine = next.Line
}

// Segments returns the merged segment list in final-space order. The slice
// must not be modified.
func (m *MergedLine) Segments() []Segment { return m.segments }

// Spans returns the phantom spans of the row in final-space order.
func (m *MergedLine) Spans() []Span {
	var out []Span
	for _, seg := range m.segments {
		if seg.Kind == SegmentPhantom {
			out = append(out, seg.Span)
		}
	}
	return out
}

// LenOfLine returns the origin and final length recorded for an origin line
// of the row. ok is false when line is outside [FirstLine, LastLine].
func (m *MergedLine) LenOfLine(line int) (originLen, finalLen int, ok bool) {
	i := line - m.FirstLine
	if i < 0 || i >= len(m.lenOfLine) {
		return 0, 0, false
	}
	return m.lenOfLine[i].originLen, m.lenOfLine[i].finalLen, true
}

// FoldedLine returns the continuation line of a fold that ends the row, if
// the row's last segment is a fold that resumes on a later origin line.
func (m *MergedLine) FoldedLine() (int, bool) {
	if len(m.segments) == 0 {
		return 0, false
	}
	seg := m.segments[len(m.segments)-1]
	if seg.Kind != SegmentPhantom {
		return 0, false
	}
	return seg.Span.Continuation()
}
