// Package justify breaks shaped text into lines for a sequence of line widths.
//
// Text is shaped into a glyph buffer and split greedily at spaces, see the text subpackage for the line splitting and buffer compaction passes.
package justify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/justify/text"
)

// ErrNoWidths is returned when no line widths are given.
var ErrNoWidths = errors.New("no line widths")

// Line is a line of justified text.
type Line struct {
	Text  string
	Width float64 // in pt
}

func (l Line) String() string {
	return fmt.Sprintf("%q(%.6g)", l.Text, l.Width)
}

// Lines returns the line segments of a marked buffer as lines of s, where s is the string the buffer was shaped from.
func (face *FontFace) Lines(s string, buf *text.Buffer) []Line {
	segs := buf.Lines()
	lines := make([]Line, 0, len(segs))
	for _, seg := range segs {
		start := int(buf.Info[seg.Start].Cluster)
		end := len(s)
		if seg.End < buf.Len() {
			end = int(buf.Info[seg.End].Cluster)
		}
		lines = append(lines, Line{
			Text:  s[start:end],
			Width: face.FromUnits(seg.Width),
		})
	}
	return lines
}

// Justify shapes the string and breaks it into lines of the given widths in points. When there are more lines than widths, the last width is used for the remaining lines. Lines are broken only at the face's space codepoint, a word wider than its line overflows.
func (face *FontFace) Justify(s string, widths ...float64) ([]Line, error) {
	if len(widths) == 0 {
		return nil, ErrNoWidths
	}
	lengths := make([]int32, len(widths))
	for i, width := range widths {
		if !(0.0 < width) {
			return nil, fmt.Errorf("line %d: width must be positive: %v", i, width)
		}
		lengths[i] = max(face.ToUnits(width), 1)
	}

	s, buf := face.Shape(s)
	text.Justify(buf, lengths, face.Space)
	return face.Lines(s, buf), nil
}

// JustifyParagraphs justifies each paragraph separated by newlines independently, each starting again at the first width.
func (face *FontFace) JustifyParagraphs(s string, widths ...float64) ([][]Line, error) {
	paragraphs := [][]Line{}
	for _, par := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		lines, err := face.Justify(par, widths...)
		if err != nil {
			return nil, err
		}
		paragraphs = append(paragraphs, lines)
	}
	return paragraphs, nil
}
