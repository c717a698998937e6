package phantom

// Coordinate queries over a finished MergedLine. All of them are read-only
// linear scans; rows rarely carry more than a handful of segments, so no
// sorted index is kept.

// segmentOfFinal locates the segment whose final range covers finalOff.
func (m *MergedLine) segmentOfFinal(finalOff int) (Segment, bool) {
	for _, seg := range m.segments {
		switch seg.Kind {
		case SegmentPhantom:
			if seg.Span.FinalCol <= finalOff && finalOff < seg.Span.NextFinalCol() {
				return seg, true
			}
		case SegmentOrigin:
			if seg.Final.Contains(finalOff) {
				return seg, true
			}
		}
	}
	return Segment{}, false
}

// segmentOfOrigin locates the segment covering an (origin line, origin col)
// position. Positions inside a fold resolve to the fold's span; positions on
// a line wholly consumed by an earlier multi-line fold resolve to that fold.
func (m *MergedLine) segmentOfOrigin(originLine, originCol int) (Segment, bool) {
	for _, seg := range m.segments {
		switch seg.Kind {
		case SegmentPhantom:
			sp := seg.Span
			if sp.OriginLine == originLine && sp.OriginCol <= originCol && originCol < sp.NextOriginCol() {
				return seg, true
			}
			if next, ok := sp.Continuation(); ok && originLine < next {
				return seg, true
			}
		case SegmentOrigin:
			if seg.Line == originLine && seg.Origin.Contains(originCol) {
				return seg, true
			}
		case SegmentEmpty:
			return seg, true
		}
	}
	return Segment{}, false
}

// segmentOfMerge locates the segment covering a merge-space column. Phantom
// spans match their anchor inclusively on both sides.
func (m *MergedLine) segmentOfMerge(mergeCol int) (Segment, bool) {
	for _, seg := range m.segments {
		switch seg.Kind {
		case SegmentPhantom:
			if seg.Span.MergeCol <= mergeCol && mergeCol <= seg.Span.NextMergeCol() {
				return seg, true
			}
		case SegmentOrigin:
			if seg.Merge.Contains(mergeCol) {
				return seg, true
			}
		case SegmentEmpty:
			return seg, true
		}
	}
	return Segment{}, false
}

// OriginPositionOfFinal maps a final column to its origin position. ok is
// false when the column lands inside phantom text or outside the row:
// virtual text has no origin position.
func (m *MergedLine) OriginPositionOfFinal(finalCol int) (originLine, originCol int, ok bool) {
	seg, found := m.segmentOfFinal(finalCol)
	if !found || seg.Kind != SegmentOrigin {
		return 0, 0, false
	}
	return seg.Line, seg.Origin.Start + finalCol - seg.Final.Start, true
}

// CursorPositionOfFinal maps a final column to a cursor position, always
// producing one: a column inside phantom text lands on the phantom's origin
// anchor, and a column past the end of the row clamps to the last valid
// position. The returned bufferOffset is absolute within the document.
func (m *MergedLine) CursorPositionOfFinal(finalCol int) (originLine, originCol, bufferOffset int) {
	if seg, found := m.segmentOfFinal(finalCol); found {
		switch seg.Kind {
		case SegmentPhantom:
			sp := seg.Span
			return sp.OriginLine, sp.OriginCol, m.OffsetOfLine + sp.MergeCol
		case SegmentOrigin:
			shift := finalCol - seg.Final.Start
			return seg.Line, seg.Origin.Start + shift, m.OffsetOfLine + seg.Merge.Start + shift
		}
	}
	last := m.lenOfLine[len(m.lenOfLine)-1]
	return last.line, max(last.originLen, 1) - 1, max(m.OffsetOfLine+m.OriginTextLen, 1) - 1
}

// FinalColOfOrigin maps an (origin line, origin col) position to a final
// column, for hit testing. An origin position consumed by a phantom span
// resolves per the cursor-affinity tie-break: a span anchored at column 0
// places the cursor after its rendered text, any other span places it just
// before. Positions past every segment clamp to the row end.
func (m *MergedLine) FinalColOfOrigin(originLine, originCol int) int {
	if len(m.segments) == 0 {
		return originCol
	}
	seg, found := m.segmentOfOrigin(originLine, originCol)
	if !found {
		return m.FinalTextLen - 1
	}
	switch seg.Kind {
	case SegmentPhantom:
		if seg.Span.OriginCol == 0 {
			return seg.Span.NextFinalCol()
		}
		return seg.Span.FinalCol - 1
	case SegmentOrigin:
		return seg.Final.Start + originCol - seg.Origin.Start
	}
	// SegmentEmpty: the row has no content, its only position is the start.
	return 0
}

// FinalColOfMerge maps a merge-space column to its final column. ok is false
// when the column lands inside a phantom insertion: a point inside virtual
// text has no final column of its own.
func (m *MergedLine) FinalColOfMerge(mergeCol int) (int, bool) {
	seg, found := m.segmentOfMerge(mergeCol)
	if !found || seg.Kind != SegmentOrigin {
		return 0, false
	}
	return seg.Final.Start + mergeCol - seg.Merge.Start, true
}

// PhantomAtFinal returns the phantom span covering a final column, plus the
// byte offset of the column within the span's text. Used for click-to-select
// behavior on virtual text.
func (m *MergedLine) PhantomAtFinal(finalCol int) (Span, int, bool) {
	seg, found := m.segmentOfFinal(finalCol)
	if !found || seg.Kind != SegmentPhantom {
		return Span{}, 0, false
	}
	return seg.Span, finalCol - seg.Span.FinalCol, true
}
