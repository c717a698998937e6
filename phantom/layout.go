package phantom

import (
	graphemeutil "github.com/iw2rmb/filigree/internal/grapheme"
)

// Cell is one grapheme cluster of a final line with its byte range and
// terminal cell width, the minimal layout table a view needs to place a
// cursor or hit-test a click against the rendered row. Glyph shaping proper
// stays with the shaping layer.
type Cell struct {
	// Start and End bound the cluster's bytes within the final line text.
	Start int
	End   int
	Width int
}

// CellWidths lays out finalText (the result of FinalLineContent) into
// grapheme cells. Control bytes such as "\r" and "\n" get zero width.
func CellWidths(finalText string) []Cell {
	clusters := graphemeutil.Split(finalText)
	if len(clusters) == 0 {
		return nil
	}
	out := make([]Cell, 0, len(clusters))
	off := 0
	for _, c := range clusters {
		w := graphemeutil.Width(c)
		if c == "\r" || c == "\n" || c == "\r\n" {
			w = 0
		}
		out = append(out, Cell{Start: off, End: off + len(c), Width: w})
		off += len(c)
	}
	return out
}

// CellAtByte returns the index within cells of the cluster covering byte
// offset off, clamped into range. Empty cells yields 0.
func CellAtByte(cells []Cell, off int) int {
	for i, c := range cells {
		if c.Start <= off && off < c.End {
			return i
		}
	}
	if len(cells) == 0 {
		return 0
	}
	if off < 0 {
		return 0
	}
	return len(cells) - 1
}
