/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "encoding/binary"

// maxpTable represents the Maximum Profile table. Only the header shared by version 0.5 (CFF
// outlines) and version 1.0 (TrueType outlines) is decoded.
type maxpTable struct {
	version   fixed
	numGlyphs uint16
}

const maxpNumGlyphsOffset = 4

func parseMaxp(data []byte) (*maxpTable, error) {
	t := &maxpTable{}
	err := newTableReader(data).read(&t.version, &t.numGlyphs)
	if err != nil {
		return nil, wrapFormatError(err, "Truncated maxp table")
	}
	return t, nil
}

// setNumGlyphs stores `numGlyphs` in maxp table bytes `data`.
func setNumGlyphs(data []byte, numGlyphs int) {
	binary.BigEndian.PutUint16(data[maxpNumGlyphsOffset:], uint16(numGlyphs))
}
