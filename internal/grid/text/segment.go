package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Reset closes every open SGR attribute
const Reset = "\x1b[0m"

// Segment is either an escape sequence or one visible grapheme cluster
type Segment struct {
	Text   string
	Width  int
	Escape bool
}

// IsSpace reports whether the segment is a whitespace grapheme
func (s Segment) IsSpace() bool {
	return !s.Escape && strings.TrimSpace(s.Text) == ""
}

// Segments splits a line into escape sequences and grapheme clusters.
// An unterminated sequence takes the rest of the line.
func Segments(line string) []Segment {
	segments := make([]Segment, 0, len(line))
	var state byte
	for len(line) > 0 {
		seq, _, n, newState := ansi.DecodeSequence(line, state, nil)
		if n <= 0 {
			seq, n = line[:1], 1
		}
		state = newState
		line = line[n:]

		if isEscape(seq) {
			segments = append(segments, Segment{Text: seq, Escape: true})
			continue
		}
		segments = append(segments, Segment{Text: seq, Width: graphemeWidth(seq)})
	}
	return segments
}

// isEscape reports whether seq is introduced by ESC or a C1 control
func isEscape(seq string) bool {
	c := seq[0]
	return c == ansi.ESC || (c >= 0x80 && c <= 0x9f)
}

// isSGR reports whether seq selects graphic rendition
func isSGR(seq string) bool {
	return ansi.HasCsiPrefix(seq) && strings.HasSuffix(seq, "m")
}

// isReset reports whether an SGR sequence clears all attributes
func isReset(seq string) bool {
	params := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(seq, "\x1b["), "\x9b"), "m")
	return strings.Trim(params, "0;") == ""
}

// hyperlinkTarget returns the URI of an OSC 8 sequence; an empty URI ends the link
func hyperlinkTarget(seq string) (uri string, ok bool) {
	if !ansi.HasOscPrefix(seq) {
		return "", false
	}
	data := strings.TrimPrefix(strings.TrimPrefix(seq, "\x1b]"), "\x9d")
	if !strings.HasPrefix(data, "8;") {
		return "", false
	}
	data = strings.TrimSuffix(data, "\x07")
	data = strings.TrimSuffix(data, "\x1b\\")
	data = strings.TrimSuffix(data, "\x9c")

	// 8;params;uri
	parts := strings.SplitN(data, ";", 3)
	if len(parts) < 3 {
		return "", true
	}
	return parts[2], true
}

// Style tracks the SGR attributes and the hyperlink in effect at some point of a line
type Style struct {
	seqs []string
	link string
}

// Apply records the effect of an escape sequence
func (s *Style) Apply(seq string) {
	if uri, ok := hyperlinkTarget(seq); ok {
		s.link = ""
		if uri != "" {
			s.link = seq
		}
		return
	}
	if !isSGR(seq) {
		return
	}
	if isReset(seq) {
		s.seqs = nil
		return
	}
	s.seqs = append(s.seqs, seq)
}

// Open reports whether some attribute or a hyperlink is still active
func (s Style) Open() bool {
	return len(s.seqs) > 0 || s.link != ""
}

// Prefix re-opens the active attributes and hyperlink
func (s Style) Prefix() string {
	return strings.Join(s.seqs, "") + s.link
}

// Close returns the sequences that end the active attributes and hyperlink, if any
func (s Style) Close() string {
	var b strings.Builder
	if len(s.seqs) > 0 {
		b.WriteString(Reset)
	}
	if s.link != "" {
		b.WriteString(ansi.ResetHyperlink())
	}
	return b.String()
}

// clone copies the state so later Apply calls do not alias
func (s Style) clone() Style {
	return Style{seqs: append([]string(nil), s.seqs...), link: s.link}
}

// StateAt returns the style in effect at the end of line
func StateAt(line string) Style {
	var s Style
	for _, seg := range Segments(line) {
		if seg.Escape {
			s.Apply(seg.Text)
		}
	}
	return s
}

// Seal closes styling left open at the end of every line and re-opens it at the start of the next,
// so that no line leaks attributes or a hyperlink into what is printed after it
func Seal(lines []string) []string {
	out := make([]string, len(lines))
	var carried Style
	for i, line := range lines {
		line = carried.Prefix() + line
		carried = StateAt(line)
		out[i] = line + carried.Close()
	}
	return out
}
