/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	xfixed "golang.org/x/image/math/fixed"
)

// glyphsForText returns the sorted unique glyph indices of the runes of `text` in `f`.
func glyphsForText(t *testing.T, f *sfnt.Font, text string) []GlyphIndex {
	var b sfnt.Buffer
	seen := map[GlyphIndex]bool{}
	var gids []GlyphIndex
	for _, r := range text {
		x, err := f.GlyphIndex(&b, r)
		require.NoError(t, err)
		require.NotZero(t, x, "rune %q", r)
		if !seen[GlyphIndex(x)] {
			seen[GlyphIndex(x)] = true
			gids = append(gids, GlyphIndex(x))
		}
	}
	sort.Slice(gids, func(i, j int) bool { return gids[i] < gids[j] })
	return gids
}

func TestSubsetGoRegular(t *testing.T) {
	const text = "Hello, Wörld! Ça va? 0123"

	info, err := ReadInfo(goregular.TTF)
	require.NoError(t, err)
	if info.PostVersion != "2.0" {
		// sfnt.Parse requires a post table.
		t.Skipf("post version %s is not carried over", info.PostVersion)
	}

	orig, err := sfnt.Parse(goregular.TTF)
	require.NoError(t, err)
	gids := glyphsForText(t, orig, text)

	out, err := Subset(goregular.TTF, gids, Options{PadTables: true})
	require.NoError(t, err)
	require.NoError(t, ValidateBytes(out))
	assert.Less(t, len(out), len(goregular.TTF))

	sub, err := sfnt.Parse(out)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, sub.NumGlyphs(), len(gids)+1)
	assert.Less(t, sub.NumGlyphs(), orig.NumGlyphs())
	assert.Equal(t, orig.UnitsPerEm(), sub.UnitsPerEm())

	var ob, sb sfnt.Buffer
	family, err := sub.Name(&sb, sfnt.NameIDFamily)
	require.NoError(t, err)
	origFamily, err := orig.Name(&ob, sfnt.NameIDFamily)
	require.NoError(t, err)
	assert.Equal(t, origFamily, family)

	ppem := xfixed.Int26_6(orig.UnitsPerEm())
	for _, r := range text {
		ox, err := orig.GlyphIndex(&ob, r)
		require.NoError(t, err)
		sx, err := sub.GlyphIndex(&sb, r)
		require.NoError(t, err)
		require.NotZero(t, sx, "rune %q not mapped in subset", r)

		oadv, err := orig.GlyphAdvance(&ob, ox, ppem, xfont.HintingNone)
		require.NoError(t, err)
		sadv, err := sub.GlyphAdvance(&sb, sx, ppem, xfont.HintingNone)
		require.NoError(t, err)
		assert.Equal(t, oadv, sadv, "advance of %q", r)

		osegs, err := orig.LoadGlyph(&ob, ox, ppem, nil)
		require.NoError(t, err)
		osegs = append(sfnt.Segments(nil), osegs...)
		ssegs, err := sub.LoadGlyph(&sb, sx, ppem, nil)
		require.NoError(t, err)
		ssegs = append(sfnt.Segments(nil), ssegs...)
		assert.Equal(t, osegs, ssegs, "outline of %q", r)
	}

	// Runes outside the subset are gone.
	x, err := sub.GlyphIndex(&sb, 'z')
	require.NoError(t, err)
	assert.Zero(t, x)
}

func TestSubsetGoRegularCID(t *testing.T) {
	orig, err := sfnt.Parse(goregular.TTF)
	require.NoError(t, err)
	gids := glyphsForText(t, orig, "Ünïcode")

	out, err := Subset(goregular.TTF, gids, Options{CID: true})
	require.NoError(t, err)
	require.NoError(t, ValidateBytes(out))

	info, err := ReadInfo(out)
	require.NoError(t, err)
	assert.Equal(t, orig.NumGlyphs(), info.NumGlyphs)
	assert.Empty(t, info.FamilyName)
	for _, ti := range info.Tables {
		assert.NotContains(t, []string{"cmap", "name", "post"}, ti.Tag)
	}

	glyf := outputGlyf(t, out)
	origGlyf := outputGlyf(t, goregular.TTF)
	for _, gid := range gids {
		want, err := origGlyf.glyph(gid)
		require.NoError(t, err)
		got, err := glyf.glyph(gid)
		require.NoError(t, err)
		assert.Equal(t, want, got, "glyph %d", gid)
	}
}
