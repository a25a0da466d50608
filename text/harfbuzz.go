package text

import (
	"bytes"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// HarfbuzzShaper is a text shaper that applies OpenType substitutions and positioning (ligatures, kerning, mark placement) using go-text's port of HarfBuzz. It is not safe for concurrent use.
type HarfbuzzShaper struct {
	font   *font.Font
	face   *font.Face
	shaper shaping.HarfbuzzShaper
	lang   language.Language
}

// NewHarfbuzzShaper returns a new text shaper for the TrueType or OpenType font data.
func NewHarfbuzzShaper(b []byte) (*HarfbuzzShaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return &HarfbuzzShaper{
		font: face.Font,
		face: face,
		lang: language.NewLanguage("en"),
	}, nil
}

// SetLanguage sets the BCP 47 language tag used to select language specific font features.
func (s *HarfbuzzShaper) SetLanguage(lang string) {
	s.lang = language.NewLanguage(lang)
}

// UnitsPerEm returns the font's units per em.
func (s *HarfbuzzShaper) UnitsPerEm() uint16 {
	return s.font.Upem()
}

// Shape shapes the string left-to-right into a buffer, each script run is shaped separately. Advances are in font units. Glyphs formed from multiple runes, such as ligatures, carry the first rune of their cluster as codepoint.
func (s *HarfbuzzShaper) Shape(text string) *Buffer {
	runes := []rune(text)
	runeMap := make([]int, len(runes)) // rune index to byte offset
	j := 0
	for i := range text {
		runeMap[j] = i
		j++
	}

	buf := NewBuffer(len(runes))
	size := fixed.I(int(s.font.Upem()))
	for _, item := range ScriptItemizer(runes) {
		input := shaping.Input{
			Text:      runes,
			RunStart:  item.Start,
			RunEnd:    item.End,
			Direction: di.DirectionLTR,
			Face:      s.face,
			Size:      size,
			Script:    item.Script,
			Language:  s.lang,
		}
		output := s.shaper.Shape(input)
		for _, g := range output.Glyphs {
			index := g.TextIndex()
			buf.Append(GlyphInfo{
				Codepoint: runes[index],
				Cluster:   uint32(runeMap[index]),
				ID:        uint16(g.GlyphID),
			}, GlyphPosition{
				XAdvance: int32(g.Advance.Round()),
				XOffset:  int32(g.XOffset.Round()),
				YOffset:  int32(g.YOffset.Round()),
			})
		}
	}
	return buf
}

// ScriptItem is a run of runes [Start,End) of a single script.
type ScriptItem struct {
	Script     language.Script
	Start, End int
}

// ScriptItemizer divides the runes in runs of the same script. Common and inherited runes such as spaces and punctuation join the preceding run, or the following run at the start.
func ScriptItemizer(runes []rune) []ScriptItem {
	if len(runes) == 0 {
		return []ScriptItem{}
	}

	i := 0
	items := []ScriptItem{}
	cur := language.Common
	for j, r := range runes {
		script := language.LookupScript(r)
		if script == language.Common || script == language.Inherited || script == language.Unknown {
			continue
		} else if cur == language.Common {
			cur = script
		} else if script != cur {
			items = append(items, ScriptItem{cur, i, j})
			cur = script
			i = j
		}
	}
	if cur == language.Common {
		cur = language.Latin
	}
	items = append(items, ScriptItem{cur, i, len(runes)})
	return items
}
