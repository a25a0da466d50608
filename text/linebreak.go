// Package text shapes strings into glyph buffers and splits them greedily into lines.
//
// Lines are broken only at glyphs whose codepoint equals the given space codepoint. Each line is
// filled with glyphs until its width exceeds the target length, after which it is broken at the
// first space of the last run of spaces seen. A line without any space is never broken and
// overflows. The broken space is overwritten by a LineBreak marker with zero advance, and spaces
// at the start of a line are turned into markers as well. Such a stripped space can still be
// the break of its line, which then is empty but uses up a target length. Squeeze afterwards
// removes runs of adjacent markers.
package text

// TODO: use UAX#14 break opportunities instead of a single space codepoint

// splitter holds the state of SplitLines across segments.
type splitter struct {
	info    []GlyphInfo
	pos     []GlyphPosition
	lengths []int32
	space   rune
	line    int // index of the current segment
}

// target returns the target length of the current segment, the last length is reused for all subsequent segments.
func (s *splitter) target() int32 {
	if s.line < len(s.lengths) {
		return s.lengths[s.line]
	}
	return s.lengths[len(s.lengths)-1]
}

func (s *splitter) mark(i int) {
	s.info[i].Codepoint = LineBreak
	s.pos[i].XAdvance = 0
}

// segment scans forward from start and returns the index of the glyph where the segment is broken, or len(info) if it extends to the end of the buffer.
func (s *splitter) segment(start int) int {
	target := s.target()
	candidate, hasCandidate := 0, false
	var width int32
	for i := start; i < len(s.info); i++ {
		width += s.pos[i].XAdvance
		if s.info[i].Codepoint == s.space {
			// the first segment starts at index 0, so a space at the very start of the buffer is stripped too
			if i == start {
				// leading space
				s.mark(i)
				start = i + 1
				width = 0
			}
			if 0 < i && s.info[i-1].Codepoint != s.space {
				// for multiple spaces, keep the candidate at the first one
				candidate, hasCandidate = i, true
			}
		}
		if target < width && hasCandidate {
			return candidate
		}
	}
	return len(s.info)
}

// SplitLines breaks the buffer into lines of the given target lengths by writing LineBreak markers at chosen space glyphs, see the package documentation for the exact policy. If there are more lines than lengths, the last length is used for the remaining lines. Lengths are in the same units as the x-advances. The buffer length is not changed, call Squeeze to remove adjacent markers.
//
// It panics if lengths is empty, if any length is not positive, or if the buffer has no positions.
func SplitLines(buf *Buffer, lengths []int32, space rune) {
	if len(lengths) == 0 {
		panic("text: no target lengths")
	}
	for _, length := range lengths {
		if length <= 0 {
			panic("text: target length must be positive")
		}
	}
	if len(buf.Info) != len(buf.Pos) {
		panic("text: buffer positions do not match glyphs")
	}

	s := &splitter{
		info:    buf.Info,
		pos:     buf.Pos,
		lengths: lengths,
		space:   space,
	}
	for start := 0; start < len(s.info); s.line++ {
		b := s.segment(start)
		if b < len(s.info) {
			s.mark(b)
		}
		start = b + 1
	}
}

// Squeeze removes consecutive LineBreak markers from the buffer, keeping only the first of each run, and shrinks the buffer's length accordingly. The order of the remaining glyphs is preserved and squeezing twice is the same as squeezing once.
func Squeeze(buf *Buffer) {
	n := len(buf.Info)
	j := 0
	for i := 0; i < n; i++ {
		if i != j {
			buf.Info[j] = buf.Info[i]
			buf.Pos[j] = buf.Pos[i]
		}
		if buf.Info[i].IsLineBreak() {
			for i+1 < n && buf.Info[i+1].IsLineBreak() {
				i++
			}
		}
		j++
	}
	buf.Info = buf.Info[:j]
	buf.Pos = buf.Pos[:j]
}

// Justify splits the buffer into lines using SplitLines and squeezes out adjacent markers using Squeeze.
func Justify(buf *Buffer, lengths []int32, space rune) {
	SplitLines(buf, lengths, space)
	Squeeze(buf)
}
