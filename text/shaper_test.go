package text

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/tdewolff/test"
	"golang.org/x/image/font/gofont/goregular"
)

func TestShaper(t *testing.T) {
	shaper, err := NewShaper(goregular.TTF, 0)
	test.Error(t, err)
	test.T(t, shaper.UnitsPerEm(), uint16(2048))

	buf := shaper.Shape("hé ab")
	test.String(t, buf.String(), "hé ab")
	test.T(t, buf.Len(), 5)
	test.T(t, buf.Info[2].Cluster, uint32(3)) // é is two bytes
	for i, pos := range buf.Pos {
		test.That(t, 0 < pos.XAdvance, "positive advance", i)
	}
}

func TestShaperJustify(t *testing.T) {
	shaper, err := NewShaper(goregular.TTF, 0)
	test.Error(t, err)

	buf := shaper.Shape("aaa aaa aaa")
	word := buf.Width(0, 3)
	space := buf.Pos[3].XAdvance

	Justify(buf, []int32{word + space + word - 1}, ' ')
	test.String(t, buf.String(), "aaa|aaa|aaa")

	buf = shaper.Shape("aaa aaa aaa")
	Justify(buf, []int32{word + space + word}, ' ')
	test.String(t, buf.String(), "aaa aaa|aaa")
}

func TestHarfbuzzShaper(t *testing.T) {
	shaper, err := NewHarfbuzzShaper(goregular.TTF)
	test.Error(t, err)
	test.T(t, shaper.UnitsPerEm(), uint16(2048))

	buf := shaper.Shape("hé ab")
	test.String(t, buf.String(), "hé ab")
	test.T(t, buf.Info[2].Cluster, uint32(3))
	test.T(t, buf.Info[4].Cluster, uint32(5))
	test.That(t, 0 < buf.Pos[2].XAdvance, "space must have an advance")

	Justify(buf, []int32{buf.Width(0, 3)}, ' ')
	test.String(t, buf.String(), "hé|ab")
}

func TestScriptItemizer(t *testing.T) {
	var tests = []struct {
		str   string
		items []ScriptItem
	}{
		{"", []ScriptItem{}},
		{"123", []ScriptItem{{language.Latin, 0, 3}}},
		{"abc", []ScriptItem{{language.Latin, 0, 3}}},
		{"abc αβγ", []ScriptItem{{language.Latin, 0, 4}, {language.Greek, 4, 7}}},
		{"1 αβ ab", []ScriptItem{{language.Greek, 0, 5}, {language.Latin, 5, 7}}},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			test.T(t, ScriptItemizer([]rune(tt.str)), tt.items)
		})
	}
}
