package text

import (
	"fmt"
	"strings"
)

// LineBreak is the codepoint written into a glyph record to mark a committed line boundary. It lies outside the Unicode range and never collides with a shaped codepoint, nor with the space codepoint. A glyph carrying LineBreak has zero advance.
const LineBreak rune = -1

// GlyphInfo is the glyph record of a shaped glyph: the source codepoint, the cluster (byte offset of the glyph's first rune in the shaped string), and the glyph ID in the font.
type GlyphInfo struct {
	Codepoint rune
	Cluster   uint32
	ID        uint16
}

// IsLineBreak returns true if the glyph is a line-break marker.
func (info GlyphInfo) IsLineBreak() bool {
	return info.Codepoint == LineBreak
}

func (info GlyphInfo) String() string {
	if info.IsLineBreak() {
		return "[LineBreak]"
	}
	return fmt.Sprintf("['%s' GID=%v Cluster=%v]", string(info.Codepoint), info.ID, info.Cluster)
}

// GlyphPosition is the position record parallel to a GlyphInfo, in font units.
type GlyphPosition struct {
	XAdvance int32
	YAdvance int32
	XOffset  int32
	YOffset  int32
}

// Buffer holds shaped glyphs as two parallel streams of equal length. Its logical length is len(Info). Line splitting overwrites entries in place and compaction only shrinks the length, the backing arrays are never reallocated.
type Buffer struct {
	Info []GlyphInfo
	Pos  []GlyphPosition
}

// NewBuffer returns an empty buffer with capacity for n glyphs.
func NewBuffer(n int) *Buffer {
	return &Buffer{
		Info: make([]GlyphInfo, 0, n),
		Pos:  make([]GlyphPosition, 0, n),
	}
}

// Len returns the logical length of the buffer.
func (buf *Buffer) Len() int {
	return len(buf.Info)
}

// Append adds a glyph to the end of the buffer.
func (buf *Buffer) Append(info GlyphInfo, pos GlyphPosition) {
	buf.Info = append(buf.Info, info)
	buf.Pos = append(buf.Pos, pos)
}

// Runes returns the codepoints of the buffer.
func (buf *Buffer) Runes() []rune {
	rs := make([]rune, len(buf.Info))
	for i, info := range buf.Info {
		rs[i] = info.Codepoint
	}
	return rs
}

// Width returns the sum of the x-advances of glyphs [start,end).
func (buf *Buffer) Width(start, end int) int32 {
	var w int32
	for _, pos := range buf.Pos[start:end] {
		w += pos.XAdvance
	}
	return w
}

// String returns the codepoints as a string where line-break markers are shown as '|'.
func (buf *Buffer) String() string {
	sb := strings.Builder{}
	for _, info := range buf.Info {
		if info.IsLineBreak() {
			sb.WriteByte('|')
		} else {
			sb.WriteRune(info.Codepoint)
		}
	}
	return sb.String()
}

// Segment is a line of a marked buffer, the half-open glyph range [Start,End) and its summed x-advance.
type Segment struct {
	Start, End int
	Width      int32
}

func (seg Segment) String() string {
	return fmt.Sprintf("[%d,%d) w=%d", seg.Start, seg.End, seg.Width)
}

// Lines splits the buffer at its line-break markers. Empty segments, such as those before a leading marker or between adjacent markers, are skipped.
func (buf *Buffer) Lines() []Segment {
	segs := []Segment{}
	start := 0
	for i := 0; i <= len(buf.Info); i++ {
		if i < len(buf.Info) && !buf.Info[i].IsLineBreak() {
			continue
		}
		if start < i {
			segs = append(segs, Segment{
				Start: start,
				End:   i,
				Width: buf.Width(start, i),
			})
		}
		start = i + 1
	}
	return segs
}
