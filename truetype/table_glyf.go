/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"encoding/binary"
	"strings"

	"github.com/sirupsen/logrus"
)

// glyfTable represents the Glyph Data table (glyf).
// Information that describes the glyphs in the font in the TrueType outline format.
//
// The 'glyf' table is comprised of a list of glyph data blocks, each of which provides
// the description for a single glyph. Glyphs are referenced by identifiers (glyph IDs),
// which are sequential integers beginning at zero. The 'glyf' table does not include any overall
// table header or records providing offsets to glyph data blocks. Rather, the 'loca' table
// provides an array of offsets, indexed by glyph IDs, which provide the location of each
// glyph data block within the 'glyf' table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf
//
// Glyph data blocks are kept as raw bytes; only the component records of composite glyphs are
// decoded.
type glyfTable struct {
	data []byte
	loca []uint32 // numGlyphs+1 entries.
}

func (t *glyfTable) numGlyphs() int {
	return len(t.loca) - 1
}

// glyph returns the data block of glyph `gid`. Empty glyphs yield an empty slice.
func (t *glyfTable) glyph(gid GlyphIndex) ([]byte, error) {
	if int(gid) >= t.numGlyphs() {
		return nil, formatErrorf("Glyph %d out of range", gid)
	}
	start, end := t.loca[gid], t.loca[gid+1]
	if end < start || start > uint32(len(t.data)) || end > uint32(len(t.data)) {
		logrus.Debugf("Bad loca entries for glyph %d: %d..%d (glyf length %d)", gid, start, end, len(t.data))
		return nil, formatErrorf("Bad loca value")
	}
	return t.data[start:end], nil
}

// components returns the component glyph indices of glyph `gid`. Simple and empty glyphs have none.
func (t *glyfTable) components(gid GlyphIndex) ([]GlyphIndex, error) {
	g, err := t.glyph(gid)
	if err != nil {
		return nil, err
	}
	var comps []GlyphIndex
	err = forEachComponent(g, func(pos int, component GlyphIndex) {
		comps = append(comps, component)
	})
	return comps, err
}

// forEachComponent calls `fn` for every component record of composite glyph data `g`, passing the
// byte position of the component's glyph index within `g`. Simple glyphs are skipped.
func forEachComponent(g []byte, fn func(pos int, gid GlyphIndex)) error {
	if len(g) < 2 {
		// Empty glyph.
		return nil
	}
	numberOfContours := int16(binary.BigEndian.Uint16(g))
	if numberOfContours >= 0 {
		return nil
	}
	if len(g) < 10 {
		logrus.Debugf("Composite glyph header truncated at %d bytes", len(g))
		return formatErrorf("Corrupt glyf data")
	}

	pos := 10
	for {
		if pos+4 > len(g) {
			return formatErrorf("Corrupt glyf data")
		}
		flags := compositeGlyphFlag(binary.BigEndian.Uint16(g[pos:]))
		fn(pos+2, GlyphIndex(binary.BigEndian.Uint16(g[pos+2:])))
		logrus.Tracef("component at %d flags: %s", pos, flags)
		pos += 4

		if flags.IsSet(arg1And2AreWords) {
			pos += 4
		} else {
			pos += 2
		}

		switch {
		case flags.IsSet(weHaveAScale):
			pos += 2
		case flags.IsSet(weHaveAnXAndYScale):
			pos += 4
		case flags.IsSet(weHaveATwoByTwo):
			pos += 8
		}

		if pos > len(g) {
			return formatErrorf("Corrupt glyf data")
		}
		if !flags.IsSet(moreComponents) {
			return nil
		}
	}
}

// subset returns the glyph data and loca offsets for the glyphs retained by `m`. In compact mode
// the glyphs are packed in new index order and component references are rewritten; otherwise every
// glyph keeps its position and unused glyphs become empty.
func (t *glyfTable) subset(m *glyphMap) ([]byte, []uint32, error) {
	w := newByteWriter(len(t.data))
	loca := make([]uint32, 0, m.count+1)

	for i := 0; i < t.numGlyphs(); i++ {
		gid := GlyphIndex(i)
		if !m.isUsed(gid) {
			if !m.compact {
				loca = append(loca, uint32(w.Len()))
			}
			continue
		}
		loca = append(loca, uint32(w.Len()))

		g, err := t.glyph(gid)
		if err != nil {
			return nil, nil, err
		}
		if len(g) == 0 {
			continue
		}
		if m.compact {
			g, err = remapComponents(g, m)
			if err != nil {
				return nil, nil, err
			}
		}
		w.writeBytes(g)
	}
	loca = append(loca, uint32(w.Len()))

	if len(loca) != m.count+1 {
		logrus.Debugf("loca entries %d != %d", len(loca), m.count+1)
		return nil, nil, errRangeCheck
	}

	return w.Bytes(), loca, nil
}

// remapComponents returns a copy of glyph data `g` with component references translated to new
// glyph indices.
func remapComponents(g []byte, m *glyphMap) ([]byte, error) {
	if len(g) < 2 || int16(binary.BigEndian.Uint16(g)) >= 0 {
		return g, nil
	}
	dup := make([]byte, len(g))
	copy(dup, g)
	err := forEachComponent(dup, func(pos int, gid GlyphIndex) {
		newID, ok := m.lookup(gid)
		if !ok {
			logrus.Warnf("Component glyph %d not retained, referencing glyph 0", gid)
		}
		binary.BigEndian.PutUint16(dup[pos:], uint16(newID))
	})
	return dup, err
}

type compositeGlyphFlag uint16

const (
	arg1And2AreWords compositeGlyphFlag = (1 << iota) // If set, the args are 16-bit (uint16/int16), otherwise uint8/int8.
	argsAreXYValues                                   // If set, the args are signed xy values (otherwise unsigned).
	roundXYToGrid
	weHaveAScale
	_              // reserved
	moreComponents // Indicates at least one glyph following this one.
	weHaveAnXAndYScale
	weHaveATwoByTwo
	weHaveInstructions
	useMyMetrics
	overlapCompound
	scaledComponentOffset
	unscaledComponentOffset
)

func (f compositeGlyphFlag) IsSet(flag compositeGlyphFlag) bool {
	return f&flag != 0
}

func (f compositeGlyphFlag) String() string {
	var flags []string

	if f.IsSet(arg1And2AreWords) {
		flags = append(flags, "arg1And2AreWords")
	}
	if f.IsSet(argsAreXYValues) {
		flags = append(flags, "argsAreXYValues")
	}
	if f.IsSet(roundXYToGrid) {
		flags = append(flags, "roundXYToGrid")
	}
	if f.IsSet(weHaveAScale) {
		flags = append(flags, "weHaveAScale")
	}
	if f.IsSet(moreComponents) {
		flags = append(flags, "moreComponents")
	}
	if f.IsSet(weHaveAnXAndYScale) {
		flags = append(flags, "weHaveAnXAndYScale")
	}
	if f.IsSet(weHaveATwoByTwo) {
		flags = append(flags, "weHaveATwoByTwo")
	}
	if f.IsSet(weHaveInstructions) {
		flags = append(flags, "weHaveInstructions")
	}
	if f.IsSet(useMyMetrics) {
		flags = append(flags, "useMyMetrics")
	}
	if f.IsSet(overlapCompound) {
		flags = append(flags, "overlapCompound")
	}
	if f.IsSet(scaledComponentOffset) {
		flags = append(flags, "scaledComponentOffset")
	}
	if f.IsSet(unscaledComponentOffset) {
		flags = append(flags, "unscaledComponentOffset")
	}

	return strings.Join(flags, "|")
}
