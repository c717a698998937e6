package phantom

import "github.com/charmbracelet/lipgloss"

// Kind identifies what produced a phantom span. The declaration order is the
// sort tie-break for spans anchored at the same merge column, so it fixes the
// visual stacking when several kinds land on one point.
type Kind int

const (
	KindIme Kind = iota
	KindPlaceholder
	KindCompletion
	KindInlayHint
	KindDiagnostic
	KindFoldedRange
)

func (k Kind) String() string {
	switch k {
	case KindIme:
		return "ime"
	case KindPlaceholder:
		return "placeholder"
	case KindCompletion:
		return "completion"
	case KindInlayHint:
		return "inlay-hint"
	case KindDiagnostic:
		return "diagnostic"
	case KindFoldedRange:
		return "folded-range"
	}
	return "unknown"
}

// Affinity hints which side of a phantom span the cursor should stick to.
type Affinity int

const (
	AffinityNone Affinity = iota
	AffinityBackward
	AffinityForward
)

// Span is one piece of virtual text anchored to a point in an origin line:
// an inlay hint, IME preedit, completion preview, diagnostic, or the
// replacement text of a folded range.
//
// Columns are byte offsets. OriginCol is the anchor within the origin line,
// MergeCol the anchor within the merge-space text, and FinalCol the computed
// position in the rendered text; FinalCol is filled in by AnnotateLine and
// rebased by MergedLine.Merge.
type Span struct {
	Kind       Kind
	OriginLine int
	OriginCol  int
	MergeCol   int
	FinalCol   int

	// Text is the virtual text to render. It may be empty, e.g. for a fold
	// marker that only hides characters.
	Text string

	// FoldedLength is the number of origin bytes hidden by a KindFoldedRange
	// span. Zero for every other kind.
	FoldedLength int

	// ContinuationLine names the origin line where rendering resumes when a
	// KindFoldedRange span folds across lines. Meaningful only when
	// HasContinuation is true.
	ContinuationLine int
	HasContinuation  bool

	// Optional styling overrides, applied by AppendPhantomStyles.
	FontSize  int // 0 means inherit
	Fg        lipgloss.TerminalColor
	Bg        lipgloss.TerminalColor
	Underline bool

	Affinity Affinity
}

// FinalColRange returns the half-open final-space range [start, end) covered
// by the span's text. ok is false when the text is empty.
func (s Span) FinalColRange() (start, end int, ok bool) {
	if s.Text == "" {
		return 0, 0, false
	}
	return s.FinalCol, s.FinalCol + len(s.Text), true
}

// NextFinalCol is the first final column after the span's rendered text.
func (s Span) NextFinalCol() int {
	return s.FinalCol + len(s.Text)
}

// NextOriginCol is the first origin column after the span: past the folded
// range for folds, the anchor itself otherwise (phantom text consumes no
// origin characters).
func (s Span) NextOriginCol() int {
	if s.Kind == KindFoldedRange {
		return s.OriginCol + s.FoldedLength
	}
	return s.OriginCol
}

// NextMergeCol is the first merge column after the span.
func (s Span) NextMergeCol() int {
	if s.Kind == KindFoldedRange {
		return s.MergeCol + s.FoldedLength
	}
	return s.MergeCol
}

// Continuation returns the fold continuation line, if any.
func (s Span) Continuation() (int, bool) {
	if s.Kind == KindFoldedRange && s.HasContinuation {
		return s.ContinuationLine, true
	}
	return 0, false
}
