package text

import (
	"github.com/tdewolff/font"
)

// Shaper is a simple text shaper that maps every rune to a glyph using the font's cmap table and applies pair kerning. It does no glyph substitution, see HarfbuzzShaper for full OpenType shaping.
type Shaper struct {
	sfnt *font.SFNT
}

// NewShaper returns a new simple shaper for the font data at the given collection index.
func NewShaper(b []byte, index int) (Shaper, error) {
	sfnt, err := font.ParseSFNT(b, index)
	if err != nil {
		return Shaper{}, err
	}
	return Shaper{
		sfnt: sfnt,
	}, nil
}

// NewShaperSFNT returns a new simple shaper using a parsed SFNT font.
func NewShaperSFNT(sfnt *font.SFNT) (Shaper, error) {
	return Shaper{
		sfnt: sfnt,
	}, nil
}

// UnitsPerEm returns the font's units per em.
func (s Shaper) UnitsPerEm() uint16 {
	return s.sfnt.Head.UnitsPerEm
}

// Shape shapes the string into a buffer with one glyph per rune. Advances are in font units.
func (s Shaper) Shape(text string) *Buffer {
	buf := NewBuffer(len(text))
	var prevIndex uint16
	for cluster, r := range text {
		index := s.sfnt.GlyphIndex(r)
		if 0 < buf.Len() {
			buf.Pos[buf.Len()-1].XAdvance += int32(s.sfnt.Kerning(prevIndex, index))
		}
		buf.Append(GlyphInfo{
			Codepoint: r,
			Cluster:   uint32(cluster),
			ID:        index,
		}, GlyphPosition{
			XAdvance: int32(s.sfnt.GlyphAdvance(index)),
		})
		prevIndex = index
	}
	return buf
}
