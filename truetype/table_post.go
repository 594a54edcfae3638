/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// postTable represents a PostScript (post) table.
// This table contains additional information needed for use on PostScript printers.
// Includes FontInfo dictionary entries and the PostScript names of all glyphs.
//
//   - version 1.0 is used the font file contains exactly the 258 glyphs in the standard Macintosh TrueType font file.
//     Glyph list on: https://developer.apple.com/fonts/TrueType-Reference-Manual/RM06/Chap6post.html
//   - version 2.0 is used for fonts that contain some glyphs not in the standard set or have different ordering.
//   - version 2.5 can handle nonstandard ordering of the standard mac glyphs via offsets.
//   - other versions do not contain post glyph name data.
type postTable struct {
	// header (all versions).
	version     fixed
	italicAngle fixed // in degrees.
	header      []byte

	// version 2.0.
	numGlyphs      uint16
	glyphNameIndex []uint16    // len = numGlyphs
	names          []GlyphName // custom names, glyphNameIndex - 258 indexes this.
}

const (
	postHeaderLength = 32
	postVersion2     = 0x00020000
	numMacGlyphNames = 258
)

/*
 See https://developer.apple.com/fonts/TrueType-Reference-Manual/RM06/Chap6post.html
 and https://docs.microsoft.com/en-us/typography/opentype/spec/post
 for details regarding the format.
*/

func parsePost(data []byte) (*postTable, error) {
	if len(data) < postHeaderLength {
		return nil, formatErrorf("Truncated post table")
	}
	r := newTableReader(data)

	t := &postTable{header: data[:postHeaderLength]}
	err := r.read(&t.version, &t.italicAngle)
	if err != nil {
		return nil, wrapFormatError(err, "Truncated post table")
	}
	logrus.Debugf("post version: 0x%08X", uint32(t.version))
	if uint32(t.version) != postVersion2 {
		return t, nil
	}

	err = r.Seek(postHeaderLength)
	if err == nil {
		err = r.read(&t.numGlyphs)
	}
	if err == nil {
		err = r.readSlice(&t.glyphNameIndex, int(t.numGlyphs))
	}
	if err != nil {
		return nil, wrapFormatError(err, "Malformed post table")
	}

	// Pascal strings run to the end of the table.
	pos := postHeaderLength + 2 + 2*int(t.numGlyphs)
	for pos < len(data) {
		n := int(data[pos])
		pos++
		if pos+n > len(data) {
			logrus.Debugf("post name outside table: %d > %d", pos+n, len(data))
			return nil, formatErrorf("Malformed post table")
		}
		t.names = append(t.names, GlyphName(data[pos:pos+n]))
		pos += n
	}

	for gid, ni := range t.glyphNameIndex {
		if int(ni) >= numMacGlyphNames+len(t.names) {
			logrus.Debugf("Glyph %d refers to name %d outside the name list (%d)", gid, ni, len(t.names))
			return nil, formatErrorf("Malformed post table")
		}
	}

	return t, nil
}

// versionString returns the table version as written in the specification. The minor part of the
// version is stored as a hexadecimal digit, so 2.5 is 0x00025000.
func (t *postTable) versionString() string {
	major, minor := t.version.Parts()
	return fmt.Sprintf("%d.%x", major, minor>>12)
}

// glyphName returns the name of glyph `gid`, or an empty name if the table has no names for it.
func (t *postTable) glyphName(gid GlyphIndex) GlyphName {
	if int(gid) >= len(t.glyphNameIndex) {
		return ""
	}
	ni := t.glyphNameIndex[gid]
	if ni < numMacGlyphNames {
		return macGlyphNames[ni]
	}
	return t.names[ni-numMacGlyphNames]
}

// subset returns a version 2.0 post table naming the glyphs of `m`. Custom names that match a
// standard Macintosh name are replaced by the standard index. Positions without a retained glyph
// are named .notdef.
func (t *postTable) subset(m *glyphMap) ([]byte, error) {
	if int(t.numGlyphs) < len(m.newIDs) {
		logrus.Debugf("post numGlyphs < maxp.numGlyphs (%d < %d)", t.numGlyphs, len(m.newIDs))
		return nil, formatErrorf("Malformed post table")
	}

	indices := make([]uint16, m.count)
	var custom []uint16 // original custom name indices referenced by retained glyphs.
	for i := range indices {
		gid, ok := m.original(i)
		if !ok {
			continue
		}
		ni := t.glyphNameIndex[gid]
		if ni >= numMacGlyphNames {
			name := t.names[ni-numMacGlyphNames]
			if std, isStd := macGlyphIndex(name); isStd {
				logrus.Tracef("post: glyph %d name %q is standard index %d", gid, name, std)
				ni = std
			} else {
				custom = append(custom, ni)
			}
		}
		indices[i] = ni
	}

	// Kept strings are stored in the order of their original index.
	sort.Slice(custom, func(i, j int) bool { return custom[i] < custom[j] })
	renumber := map[uint16]uint16{}
	var kept []GlyphName
	for _, ni := range custom {
		if _, has := renumber[ni]; has {
			continue
		}
		renumber[ni] = uint16(numMacGlyphNames + len(kept))
		kept = append(kept, t.names[ni-numMacGlyphNames])
	}
	for i, ni := range indices {
		if ni >= numMacGlyphNames {
			indices[i] = renumber[ni]
		}
	}

	w := newByteWriter(postHeaderLength + 2 + 2*len(indices))
	err := w.write(fixed(postVersion2))
	if err != nil {
		return nil, err
	}
	w.writeBytes(t.header[4:])
	err = w.write(uint16(len(indices)))
	if err != nil {
		return nil, err
	}
	err = w.writeSlice(indices)
	if err != nil {
		return nil, err
	}
	for _, name := range kept {
		err = w.write(uint8(len(name)))
		if err != nil {
			return nil, err
		}
		w.writeBytes([]byte(name))
	}
	logrus.Debugf("post: %d glyphs, %d custom names", len(indices), len(kept))
	return w.Bytes(), nil
}
