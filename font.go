package justify

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/justify/text"
	"golang.org/x/text/unicode/norm"
)

type shaper interface {
	Shape(string) *text.Buffer
	UnitsPerEm() uint16
}

// Font is a parsed TTF or OTF font together with the shaper used to turn strings into glyphs.
type Font struct {
	name   string
	shaper shaper
}

// ParseFont parses the font data at the given collection index and uses a simple shaper that maps runes to glyphs with pair kerning.
func ParseFont(name string, b []byte, index int) (*Font, error) {
	shaper, err := text.NewShaper(b, index)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Font{
		name:   name,
		shaper: shaper,
	}, nil
}

// ParseFontHarfbuzz parses the font data and uses full OpenType shaping.
func ParseFontHarfbuzz(name string, b []byte) (*Font, error) {
	shaper, err := text.NewHarfbuzzShaper(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Font{
		name:   name,
		shaper: shaper,
	}, nil
}

// LoadFontFile loads a font from a file. If harfbuzz is set it uses full OpenType shaping.
func LoadFontFile(filename string, harfbuzz bool) (*Font, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	name := filepath.Base(filename)
	if harfbuzz {
		return ParseFontHarfbuzz(name, b)
	}
	return ParseFont(name, b, 0)
}

// LoadLatinModern loads the embedded Latin Modern Roman 10pt font.
func LoadLatinModern(harfbuzz bool) (*Font, error) {
	if harfbuzz {
		return ParseFontHarfbuzz("Latin Modern Roman", lmroman10regular.TTF)
	}
	return ParseFont("Latin Modern Roman", lmroman10regular.TTF, 0)
}

// Name returns the name of the font.
func (f *Font) Name() string {
	return f.name
}

// UnitsPerEm returns the number of font units per em.
func (f *Font) UnitsPerEm() uint16 {
	return f.shaper.UnitsPerEm()
}

// Face returns a font face of the given size in points.
func (f *Font) Face(size float64) *FontFace {
	return &FontFace{
		Font:  f,
		Size:  size,
		Space: ' ',
	}
}

// FontFace is a font at a size. Space is the codepoint at which lines may be broken.
type FontFace struct {
	*Font
	Size  float64 // in pt
	Space rune
}

// ToUnits converts a length in points to font units, rounded to the nearest unit. Lengths outside the int32 range saturate.
func (face *FontFace) ToUnits(x float64) int32 {
	units := math.Round(x * float64(face.UnitsPerEm()) / face.Size)
	if math.MaxInt32 < units {
		return math.MaxInt32
	} else if units < math.MinInt32 {
		return math.MinInt32
	}
	return int32(units)
}

// FromUnits converts a length in font units to points.
func (face *FontFace) FromUnits(x int32) float64 {
	return float64(x) * face.Size / float64(face.UnitsPerEm())
}

// Shape normalizes the string to NFC and shapes it into a glyph buffer. It returns the normalized string, to which the glyph clusters refer.
func (face *FontFace) Shape(s string) (string, *text.Buffer) {
	s = norm.NFC.String(s)
	return s, face.shaper.Shape(s)
}
