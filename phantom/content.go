package phantom

import "strings"

// FinalLineContent materializes the string the shaping layer should lay out:
// origin text with every phantom span's text spliced in, in segment order.
//
// origin is the merge-space text of the row, i.e. the origin lines of the
// folded group concatenated, and must be at least as long as the merge range
// of every origin segment.
func (m *MergedLine) FinalLineContent(origin string) string {
	return combineWithText(m.segments, origin)
}

// FinalLineContent is the single-line form of MergedLine.FinalLineContent.
func (l Line) FinalLineContent(origin string) string {
	return combineWithText(l.Segments, origin)
}

func combineWithText(segments []Segment, origin string) string {
	var sb strings.Builder
	for _, seg := range segments {
		switch seg.Kind {
		case SegmentPhantom:
			sb.WriteString(seg.Span.Text)
		case SegmentOrigin:
			sb.WriteString(origin[seg.Merge.Start:seg.Merge.End])
		case SegmentEmpty:
			return sb.String()
		}
	}
	return sb.String()
}
