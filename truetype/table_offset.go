/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "math/bits"

// offsetTable is the 12 byte sfnt header preceding the table records.
type offsetTable struct {
	sfntVersion   uint32
	numTables     uint16
	searchRange   uint16
	entrySelector uint16
	rangeShift    uint16
}

func (f *font) parseOffsetTable(r *byteReader) (*offsetTable, error) {
	ot := &offsetTable{}

	err := r.read(&ot.sfntVersion, &ot.numTables, &ot.searchRange)
	if err != nil {
		return nil, wrapFormatError(err, "Truncated offset table")
	}

	err = r.read(&ot.entrySelector, &ot.rangeShift)
	if err != nil {
		return nil, wrapFormatError(err, "Truncated offset table")
	}

	if ot.sfntVersion != scalerTrueType && ot.sfntVersion != scalerOTTO {
		return nil, formatErrorf("Not a TrueType or OpenType font (scaler 0x%08X)", ot.sfntVersion)
	}

	return ot, nil
}

// newOffsetTable returns the header for a font with `numTables` tables, including the binary
// search parameters derived from the table count.
func newOffsetTable(sfntVersion uint32, numTables int) *offsetTable {
	searchRange, entrySelector, rangeShift := searchParams(numTables, 16)
	return &offsetTable{
		sfntVersion:   sfntVersion,
		numTables:     uint16(numTables),
		searchRange:   searchRange,
		entrySelector: entrySelector,
		rangeShift:    rangeShift,
	}
}

// searchParams computes the binary search fields used by the table directory and by cmap
// format 4 for `n` entries of `size` bytes each.
func searchParams(n, size int) (searchRange, entrySelector, rangeShift uint16) {
	if n == 0 {
		return 0, 0, 0
	}
	sel := bits.Len(uint(n)) - 1
	searchRange = uint16((1 << sel) * size)
	entrySelector = uint16(sel)
	rangeShift = uint16(n*size) - searchRange
	return searchRange, entrySelector, rangeShift
}

func (ot *offsetTable) write(w *byteWriter) error {
	return w.write(ot.sfntVersion, ot.numTables, ot.searchRange, ot.entrySelector, ot.rangeShift)
}
