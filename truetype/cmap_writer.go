/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/sirupsen/logrus"
)

// maxSegmentGap is the number of unmapped codes a format 4 segment may span before a new segment
// is started.
const maxSegmentGap = 4

type cmapSegment struct {
	start, end uint16
}

// buildCmap returns a cmap table with a single format 4 subtable holding the mappings of `e`.
// When `m` is non-nil the glyph indices are translated through it.
func buildCmap(e *cmapEncoding, m *glyphMap) ([]byte, error) {
	glyphs := make([]GlyphIndex, len(e.glyphs))
	for code, gid := range e.glyphs {
		if gid == 0 || code >= 0xFFFF {
			// 0xFFFF belongs to the terminating segment.
			continue
		}
		if m != nil {
			newID, ok := m.lookup(gid)
			if !ok {
				logrus.Debugf("cmap: glyph %d of code %d not retained", gid, code)
				continue
			}
			gid = newID
		}
		glyphs[code] = gid
	}

	var segments []cmapSegment
	for code, gid := range glyphs {
		if gid == 0 {
			continue
		}
		n := len(segments)
		if n > 0 && code-int(segments[n-1].end)-1 <= maxSegmentGap {
			segments[n-1].end = uint16(code)
			continue
		}
		segments = append(segments, cmapSegment{start: uint16(code), end: uint16(code)})
	}
	segments = append(segments, cmapSegment{start: 0xFFFF, end: 0xFFFF})

	segCount := len(segments)
	var glyphArray []GlyphIndex
	idRangeOffsets := make([]uint16, segCount)
	for i, seg := range segments[:segCount-1] {
		// Offset from idRangeOffsets[i] to the segment's first glyph array entry.
		idRangeOffsets[i] = uint16(2*(segCount-i) + 2*len(glyphArray))
		glyphArray = append(glyphArray, glyphs[seg.start:int(seg.end)+1]...)
	}

	length := 16 + 8*segCount + 2*len(glyphArray)
	if length > 0xFFFF {
		return nil, formatErrorf("cmap subtable too large (%d bytes)", length)
	}
	searchRange, entrySelector, rangeShift := searchParams(segCount, 2)

	ends := make([]uint16, segCount)
	starts := make([]uint16, segCount)
	deltas := make([]uint16, segCount)
	for i, seg := range segments {
		ends[i], starts[i] = seg.end, seg.start
	}
	deltas[segCount-1] = 1

	w := newByteWriter(12 + length)
	// cmap header and the single encoding record.
	err := w.write(uint16(0), uint16(1), e.platformID, e.encodingID, offset32(12))
	if err != nil {
		return nil, err
	}
	err = w.write(uint16(4), uint16(length), uint16(0), uint16(2*segCount), searchRange, entrySelector, rangeShift)
	if err != nil {
		return nil, err
	}
	err = w.writeSlice(ends)
	if err != nil {
		return nil, err
	}
	err = w.write(uint16(0)) // reservedPad
	if err != nil {
		return nil, err
	}
	for _, field := range [][]uint16{starts, deltas, idRangeOffsets} {
		err = w.writeSlice(field)
		if err != nil {
			return nil, err
		}
	}
	err = w.writeSlice(glyphArray)
	if err != nil {
		return nil, err
	}

	logrus.Debugf("cmap: %d segments, %d glyph array entries", segCount, len(glyphArray))
	return w.Bytes(), nil
}
