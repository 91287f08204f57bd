package text

import "strings"

// Wrap breaks a line into lines no wider than width.
// Breaks fall between grapheme clusters and never inside an escape sequence.
// Active styling is closed at the end of every produced line and re-opened on the next one.
// With keepWords a partial trailing word moves to the next line when the line has an earlier space.
// A grapheme wider than width is placed alone on its own line.
func Wrap(line string, width int, keepWords bool) []string {
	if width <= 0 || LineWidth(line) <= width {
		return []string{line}
	}

	w := &wrapper{width: width, keepWords: keepWords}
	for _, seg := range Segments(line) {
		w.add(seg)
	}
	w.flush()
	return w.lines
}

// WrapLines wraps every line of a block
func WrapLines(lines []string, width int, keepWords bool) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, Wrap(line, width, keepWords)...)
	}
	return out
}

type wrapper struct {
	width     int
	keepWords bool

	lines []string
	start Style
	segs  []Segment
	used  int
}

func (w *wrapper) add(seg Segment) {
	if seg.Escape || seg.Width == 0 {
		w.segs = append(w.segs, seg)
		return
	}
	for w.used > 0 && w.used+seg.Width > w.width {
		w.breakLine(seg)
	}
	w.segs = append(w.segs, seg)
	w.used += seg.Width
}

// breakLine ends the current line before next
func (w *wrapper) breakLine(next Segment) {
	if w.keepWords && !next.IsSpace() {
		if k := w.wordStart(); k > 0 {
			tail := append([]Segment(nil), w.segs[k:]...)
			w.emit(w.segs[:k])
			w.segs = tail
			w.used = segmentsWidth(tail)
			return
		}
	}
	w.emit(w.segs)
	w.segs = nil
	w.used = 0
}

// wordStart returns the index of the partial word at the end of the line, or -1
func (w *wrapper) wordStart() int {
	last := -1
	for i := len(w.segs) - 1; i >= 0; i-- {
		if !w.segs[i].Escape {
			last = i
			break
		}
	}
	if last < 0 || w.segs[last].IsSpace() {
		return -1
	}
	for i := last - 1; i >= 0; i-- {
		if w.segs[i].IsSpace() {
			return i + 1
		}
	}
	return -1
}

func (w *wrapper) emit(segs []Segment) {
	var b strings.Builder
	b.WriteString(w.start.Prefix())
	end := w.start.clone()
	for _, seg := range segs {
		b.WriteString(seg.Text)
		if seg.Escape {
			end.Apply(seg.Text)
		}
	}
	b.WriteString(end.Close())
	w.lines = append(w.lines, b.String())
	w.start = end
}

func (w *wrapper) flush() {
	if len(w.segs) > 0 || len(w.lines) == 0 {
		w.emit(w.segs)
	}
	w.segs = nil
	w.used = 0
}

func segmentsWidth(segs []Segment) int {
	width := 0
	for _, seg := range segs {
		width += seg.Width
	}
	return width
}
