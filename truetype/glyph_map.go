/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/bits-and-blooms/bitset"
)

// glyphMap maps original glyph indices to glyph indices in the subsetted font.
//
// A glyph is either unused, in which case lookup reports false, or mapped to a new index. Glyph 0
// is always used and always maps to 0. In compact mode the used glyphs are renumbered densely in
// original order; otherwise every used glyph keeps its index and the glyph count does not change.
type glyphMap struct {
	used    *bitset.BitSet
	newIDs  []GlyphIndex // indexed by original glyph index; valid where used.
	oldIDs  []GlyphIndex // indexed by new glyph index; valid in compact mode.
	count   int          // number of glyphs in the subsetted font.
	compact bool
}

// newGlyphMap assigns new indices to the glyphs marked in `used` for a font with `numGlyphs`
// glyphs.
func newGlyphMap(used *bitset.BitSet, numGlyphs int, compact bool) *glyphMap {
	used.Set(0)
	m := &glyphMap{
		used:    used,
		newIDs:  make([]GlyphIndex, numGlyphs),
		compact: compact,
	}

	if !compact {
		for i := range m.newIDs {
			m.newIDs[i] = GlyphIndex(i)
		}
		m.count = numGlyphs
		return m
	}

	for i, ok := used.NextSet(0); ok && int(i) < numGlyphs; i, ok = used.NextSet(i + 1) {
		m.newIDs[i] = GlyphIndex(len(m.oldIDs))
		m.oldIDs = append(m.oldIDs, GlyphIndex(i))
	}
	m.count = len(m.oldIDs)
	return m
}

// isUsed returns true if original glyph `gid` is retained.
func (m *glyphMap) isUsed(gid GlyphIndex) bool {
	return int(gid) < len(m.newIDs) && m.used.Test(uint(gid))
}

// lookup returns the new index of original glyph `gid`. The bool flag is false when the glyph is
// not retained.
func (m *glyphMap) lookup(gid GlyphIndex) (GlyphIndex, bool) {
	if !m.isUsed(gid) {
		return 0, false
	}
	return m.newIDs[gid], true
}

// original returns the original index of the glyph at new index `newID`. The bool flag is false
// when no retained glyph occupies that position.
func (m *glyphMap) original(newID int) (GlyphIndex, bool) {
	if newID < 0 || newID >= m.count {
		return 0, false
	}
	if m.compact {
		return m.oldIDs[newID], true
	}
	gid := GlyphIndex(newID)
	return gid, m.used.Test(uint(gid))
}

// numUsed returns the number of retained glyphs.
func (m *glyphMap) numUsed() int {
	if m.compact {
		return len(m.oldIDs)
	}
	return int(m.used.Count())
}
