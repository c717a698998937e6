package phantom

import "github.com/charmbracelet/lipgloss"

// StyleSpan styles one final-space range of the rendered line.
type StyleSpan struct {
	Start int
	End   int
	Style lipgloss.Style

	// FontSize is the resolved size for renderers that support it; terminal
	// renderers ignore it.
	FontSize int
}

// AppendPhantomStyles appends styling spans for the row's virtual text and
// returns the extended slice. Origin-text styling is the caller's concern;
// only non-empty phantom segments produce spans.
//
// A span without an explicit foreground falls back to phantomColor. A span's
// font-size override never exceeds fontSize.
func (m *MergedLine) AppendPhantomStyles(out []StyleSpan, base lipgloss.Style, fontSize int, phantomColor lipgloss.TerminalColor) []StyleSpan {
	for _, seg := range m.segments {
		if seg.Kind != SegmentPhantom || seg.Span.Text == "" {
			continue
		}
		sp := seg.Span

		style := base
		if sp.Fg != nil {
			style = style.Foreground(sp.Fg)
		} else {
			style = style.Foreground(phantomColor)
		}
		if sp.Bg != nil {
			style = style.Background(sp.Bg)
		}
		if sp.Underline {
			style = style.Underline(true)
		}

		size := fontSize
		if sp.FontSize > 0 && sp.FontSize < size {
			size = sp.FontSize
		}

		out = append(out, StyleSpan{
			Start:    sp.FinalCol,
			End:      sp.FinalCol + len(sp.Text),
			Style:    style,
			FontSize: size,
		})
	}
	return out
}
