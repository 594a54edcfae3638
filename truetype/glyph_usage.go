/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/sirupsen/logrus"
)

// markUsed returns the set of glyphs needed to render `roots`: the roots themselves, glyph 0 and
// every glyph reachable through composite glyph references in `glyf`. Roots at or beyond
// `numGlyphs` are ignored. A nil `glyf` (CFF outlines) contributes no references.
//
// The walk is depth first with an explicit stack. A reference back to a glyph on the current path
// is a FormatError, references to glyphs outside the font are logged and not followed.
func markUsed(roots []GlyphIndex, numGlyphs int, glyf *glyfTable) (*bitset.BitSet, error) {
	used := bitset.New(uint(numGlyphs))
	active := bitset.New(uint(numGlyphs))

	type frame struct {
		gid   GlyphIndex
		comps []GlyphIndex
		next  int
	}
	var stack []frame

	push := func(gid GlyphIndex) error {
		used.Set(uint(gid))
		if glyf == nil {
			return nil
		}
		comps, err := glyf.components(gid)
		if err != nil {
			return err
		}
		if len(comps) == 0 {
			return nil
		}
		active.Set(uint(gid))
		stack = append(stack, frame{gid: gid, comps: comps})
		return nil
	}

	roots = append([]GlyphIndex{0}, roots...)
	for _, root := range roots {
		if int(root) >= numGlyphs {
			logrus.Debugf("Requested glyph %d beyond glyph count %d, ignored", root, numGlyphs)
			continue
		}
		if used.Test(uint(root)) {
			continue
		}
		err := push(root)
		if err != nil {
			return nil, err
		}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.comps) {
				active.Clear(uint(top.gid))
				stack = stack[:len(stack)-1]
				continue
			}
			parent := top.gid
			comp := top.comps[top.next]
			top.next++

			if int(comp) >= numGlyphs {
				logrus.Warnf("Composite glyph %d references glyph %d beyond glyph count %d", parent, comp, numGlyphs)
				continue
			}
			if active.Test(uint(comp)) {
				return nil, formatErrorf("Composite glyph cycle at glyph %d", comp)
			}
			if used.Test(uint(comp)) {
				continue
			}
			err = push(comp)
			if err != nil {
				return nil, err
			}
		}
	}

	logrus.Debugf("Glyph closure: %d roots, %d used glyphs", len(roots), used.Count())
	return used, nil
}
