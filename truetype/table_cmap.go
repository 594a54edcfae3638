/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// cmapTable represents the Character to Glyph Index Mapping table header and its encoding records.
type cmapTable struct {
	data            []byte
	version         uint16
	numTables       uint16
	encodingRecords []encodingRecord // len == numTables
}

type encodingRecord struct {
	platformID uint16
	encodingID uint16
	offset     offset32
}

// cmapEncoding is the character code to glyph index mapping taken from one cmap subtable.
// Glyph index 0 means that the code is not mapped.
type cmapEncoding struct {
	platformID uint16
	encodingID uint16
	glyphs     []GlyphIndex // indexed by character code.
}

// Preferred (platform, encoding) pairs in order of preference.
var (
	symbolicEncodings    = [][2]uint16{{3, 0}, {1, 0}}
	nonSymbolicEncodings = [][2]uint16{{3, 1}, {1, 0}, {0, 1}, {0, 3}}
)

func parseCmap(data []byte) (*cmapTable, error) {
	t := &cmapTable{data: data}
	r := newTableReader(data)
	err := r.read(&t.version, &t.numTables)
	if err != nil {
		return nil, wrapFormatError(err, "Truncated cmap table")
	}
	for i := 0; i < int(t.numTables); i++ {
		var rec encodingRecord
		err = r.read(&rec.platformID, &rec.encodingID, &rec.offset)
		if err != nil {
			return nil, wrapFormatError(err, "Truncated cmap table")
		}
		t.encodingRecords = append(t.encodingRecords, rec)
	}
	return t, nil
}

// loadEncoding picks the first usable subtable in order of preference and decodes it. Mappings to
// glyphs at or beyond `numGlyphs` are dropped.
func (t *cmapTable) loadEncoding(symbolic bool, numGlyphs int) (*cmapEncoding, error) {
	prefs := nonSymbolicEncodings
	if symbolic {
		prefs = symbolicEncodings
	}

	for _, pref := range prefs {
		for _, rec := range t.encodingRecords {
			if rec.platformID != pref[0] || rec.encodingID != pref[1] {
				continue
			}
			glyphs, err := t.parseSubtable(rec.offset)
			if err != nil {
				return nil, err
			}
			enc := &cmapEncoding{platformID: rec.platformID, encodingID: rec.encodingID, glyphs: glyphs}
			enc.dropInvalid(numGlyphs)
			if enc.empty() {
				logrus.Debugf("cmap subtable (%d,%d) maps nothing, skipping", rec.platformID, rec.encodingID)
				break
			}
			logrus.Debugf("Using cmap subtable (%d,%d), %d codes", rec.platformID, rec.encodingID, len(enc.glyphs))
			return enc, nil
		}
	}

	return nil, formatErrorf("No usable cmap subtable")
}

// parseSubtable decodes the subtable at `offset` into a dense code to glyph array sized to the
// highest mapped code + 1.
func (t *cmapTable) parseSubtable(offset offset32) ([]GlyphIndex, error) {
	if int64(offset) >= int64(len(t.data)) {
		return nil, formatErrorf("Malformed cmap table")
	}
	sub := t.data[offset:]
	r := newTableReader(sub)

	var format uint16
	err := r.read(&format)
	if err != nil {
		return nil, wrapFormatError(err, "Malformed cmap table")
	}

	var glyphs []GlyphIndex
	switch format {
	case 0:
		glyphs, err = parseCmapFormat0(r)
	case 4:
		glyphs, err = parseCmapFormat4(r, sub)
	case 6:
		glyphs, err = parseCmapFormat6(r)
	default:
		return nil, formatErrorf("Unsupported cmap format %d", format)
	}
	if err != nil {
		return nil, err
	}
	return trimGlyphs(glyphs), nil
}

func parseCmapFormat0(r *byteReader) ([]GlyphIndex, error) {
	var length, language uint16
	var ids []uint8
	err := r.read(&length, &language)
	if err == nil {
		err = r.readSlice(&ids, 256)
	}
	if err != nil {
		return nil, wrapFormatError(err, "Malformed cmap0 table")
	}

	glyphs := make([]GlyphIndex, 256)
	for code, gid := range ids {
		glyphs[code] = GlyphIndex(gid)
	}
	return glyphs, nil
}

// parseCmapFormat4 decodes a segment mapping to delta values subtable. `sub` holds the subtable
// bytes from its start, for resolving idRangeOffset references.
func parseCmapFormat4(r *byteReader, sub []byte) ([]GlyphIndex, error) {
	var length, language, segCountX2, searchRange, entrySelector, rangeShift uint16
	err := r.read(&length, &language, &segCountX2, &searchRange, &entrySelector, &rangeShift)
	if err != nil {
		return nil, wrapFormatError(err, "Malformed cmap4 table")
	}
	segCount := int(segCountX2 / 2)

	var endCodes, startCodes, idDeltas, idRangeOffsets []uint16
	var reservedPad uint16
	err = r.readSlice(&endCodes, segCount)
	if err == nil {
		err = r.read(&reservedPad)
	}
	if err == nil {
		err = r.readSlice(&startCodes, segCount)
	}
	if err == nil {
		err = r.readSlice(&idDeltas, segCount)
	}
	if err == nil {
		err = r.readSlice(&idRangeOffsets, segCount)
	}
	if err != nil {
		return nil, wrapFormatError(err, "Malformed cmap4 table")
	}

	// idRangeOffset[i] is relative to its own position in the subtable.
	rangeOffsetsStart := 16 + 6*segCount

	glyphs := make([]GlyphIndex, 0x10000)
	for i := 0; i < segCount; i++ {
		start, end := int(startCodes[i]), int(endCodes[i])
		if start > end {
			return nil, formatErrorf("Malformed cmap4 table")
		}
		for code := start; code <= end; code++ {
			var gid uint16
			if idRangeOffsets[i] == 0 {
				gid = uint16(code) + idDeltas[i]
			} else {
				pos := rangeOffsetsStart + 2*i + int(idRangeOffsets[i]) + 2*(code-start)
				if pos+2 > len(sub) {
					logrus.Debugf("cmap4 glyph array reference outside table: %d", pos)
					return nil, formatErrorf("Malformed cmap4 table")
				}
				gid = uint16(sub[pos])<<8 | uint16(sub[pos+1])
				if gid != 0 {
					gid += idDeltas[i]
				}
			}
			glyphs[code] = GlyphIndex(gid)
		}
	}
	return glyphs, nil
}

func parseCmapFormat6(r *byteReader) ([]GlyphIndex, error) {
	var length, language, firstCode, entryCount uint16
	var ids []uint16
	err := r.read(&length, &language, &firstCode, &entryCount)
	if err == nil {
		err = r.readSlice(&ids, int(entryCount))
	}
	if err != nil {
		return nil, wrapFormatError(err, "Malformed cmap6 table")
	}
	if int(firstCode)+int(entryCount) > 0x10000 {
		return nil, formatErrorf("Malformed cmap6 table")
	}

	glyphs := make([]GlyphIndex, int(firstCode)+int(entryCount))
	for i, gid := range ids {
		glyphs[int(firstCode)+i] = GlyphIndex(gid)
	}
	return glyphs, nil
}

// trimGlyphs cuts `glyphs` after the highest mapped code.
func trimGlyphs(glyphs []GlyphIndex) []GlyphIndex {
	n := len(glyphs)
	for n > 0 && glyphs[n-1] == 0 {
		n--
	}
	return glyphs[:n]
}

func (e *cmapEncoding) dropInvalid(numGlyphs int) {
	for code, gid := range e.glyphs {
		if gid != 0 && int(gid) >= numGlyphs {
			logrus.Debugf("cmap: code %d maps to glyph %d beyond glyph count %d, dropped", code, gid, numGlyphs)
			e.glyphs[code] = 0
		}
	}
	e.glyphs = trimGlyphs(e.glyphs)
}

func (e *cmapEncoding) empty() bool {
	return len(e.glyphs) == 0
}

// reduce drops every mapping whose glyph is not in `gids`, which must be sorted ascending.
func (e *cmapEncoding) reduce(gids []GlyphIndex) {
	for code, gid := range e.glyphs {
		if gid == 0 {
			continue
		}
		i := sort.Search(len(gids), func(i int) bool { return gids[i] >= gid })
		if i == len(gids) || gids[i] != gid {
			e.glyphs[code] = 0
		}
	}
}

// usedGlyphs returns the distinct non-zero glyphs the encoding maps to, in code order.
func (e *cmapEncoding) usedGlyphs() []GlyphIndex {
	var gids []GlyphIndex
	for _, gid := range e.glyphs {
		if gid != 0 {
			gids = append(gids, gid)
		}
	}
	return gids
}
