package document

import "strings"

// Document is the pure document state: logical lines and a version counter.
//
// Lines keep their terminator bytes ("\n" or "\r\n"); only the last line may
// lack one. Columns and offsets everywhere in this package are bytes.
type Document struct {
	lines   []string
	version uint64
}

func New(text string) *Document {
	return &Document{lines: splitLines(text)}
}

// Version increases on every mutation. Callers compare it to decide whether
// derived state (annotated lines, merged rows) needs a rebuild.
func (d *Document) Version() uint64 { return d.version }

func (d *Document) LineCount() int { return len(d.lines) }

// Line returns line i including its terminator. Out-of-range returns "".
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// LineLen is the byte length of line i including its terminator.
func (d *Document) LineLen(i int) int { return len(d.Line(i)) }

// OffsetOfLine is the absolute byte offset of line i's start. i equal to
// LineCount returns the total document length; i is clamped into range.
func (d *Document) OffsetOfLine(i int) int {
	if i > len(d.lines) {
		i = len(d.lines)
	}
	off := 0
	for j := 0; j < i; j++ {
		off += len(d.lines[j])
	}
	return off
}

// ConcatLines returns lines [first, last] concatenated: the merge-space text
// of a fold group collapsing those origin lines into one rendered row.
func (d *Document) ConcatLines(first, last int) string {
	var sb strings.Builder
	for i := first; i <= last && i < len(d.lines); i++ {
		if i >= 0 {
			sb.WriteString(d.lines[i])
		}
	}
	return sb.String()
}

func (d *Document) Text() string {
	var sb strings.Builder
	for _, line := range d.lines {
		sb.WriteString(line)
	}
	return sb.String()
}

// SetLine replaces line i. The replacement should carry its own terminator.
func (d *Document) SetLine(i int, text string) {
	if i < 0 || i >= len(d.lines) {
		return
	}
	if d.lines[i] == text {
		return
	}
	d.lines[i] = text
	d.version++
}

func (d *Document) InsertLine(i int, text string) {
	if i < 0 {
		i = 0
	}
	if i > len(d.lines) {
		i = len(d.lines)
	}
	d.lines = append(d.lines, "")
	copy(d.lines[i+1:], d.lines[i:])
	d.lines[i] = text
	d.version++
}

func (d *Document) RemoveLine(i int) {
	if i < 0 || i >= len(d.lines) {
		return
	}
	d.lines = append(d.lines[:i], d.lines[i+1:]...)
	if len(d.lines) == 0 {
		d.lines = []string{""}
	}
	d.version++
}

// splitLines cuts text after every '\n', keeping the terminator on the line
// it ends.
func splitLines(text string) []string {
	var lines []string
	for {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			break
		}
		lines = append(lines, text[:i+1])
		text = text[i+1:]
	}
	if text != "" || len(lines) == 0 {
		lines = append(lines, text)
	}
	return lines
}
