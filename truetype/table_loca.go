/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/sirupsen/logrus"
)

// Values of head.indexToLocFormat.
const (
	locaShort int16 = 0 // offset16 entries holding offset/2.
	locaLong  int16 = 1 // offset32 entries.
)

// parseLoca reads the numGlyphs+1 glyph data offsets from the loca table `data`. Short format
// entries are returned as actual byte offsets.
func parseLoca(data []byte, indexToLocFormat int16, numGlyphs int) ([]uint32, error) {
	r := newTableReader(data)
	offsets := make([]uint32, 0, numGlyphs+1)

	switch indexToLocFormat {
	case locaShort:
		var short []offset16
		err := r.readSlice(&short, numGlyphs+1)
		if err != nil {
			return nil, wrapFormatError(err, "Truncated loca table")
		}
		for _, off := range short {
			offsets = append(offsets, 2*uint32(off))
		}
	case locaLong:
		var long []offset32
		err := r.readSlice(&long, numGlyphs+1)
		if err != nil {
			return nil, wrapFormatError(err, "Truncated loca table")
		}
		for _, off := range long {
			offsets = append(offsets, uint32(off))
		}
	default:
		logrus.Debugf("Invalid indexToLocFormat %d", indexToLocFormat)
		return nil, formatErrorf("Bad indexToLocFormat %d", indexToLocFormat)
	}

	return offsets, nil
}

// chooseLocaFormat returns the format to write `offsets` in. The input format is kept unless it
// cannot represent the offsets, and long offsets are shrunk to short ones when `shrink` is set, the
// glyph data is shorter than 64K and every offset is even.
func chooseLocaFormat(offsets []uint32, inFormat int16, shrink bool) int16 {
	total := offsets[len(offsets)-1]
	allEven := true
	for _, off := range offsets {
		if off%2 != 0 {
			allEven = false
			break
		}
	}

	switch {
	case inFormat == locaLong && shrink && total < 0x10000 && allEven:
		return locaShort
	case inFormat == locaShort && (!allEven || total/2 > 0xFFFF):
		return locaLong
	}
	return inFormat
}

// writeLoca encodes `offsets` in loca format `format`.
func writeLoca(offsets []uint32, format int16) ([]byte, error) {
	if format == locaShort {
		w := newByteWriter(2 * len(offsets))
		for _, off := range offsets {
			err := w.write(offset16(off / 2))
			if err != nil {
				return nil, err
			}
		}
		return w.Bytes(), nil
	}

	w := newByteWriter(4 * len(offsets))
	for _, off := range offsets {
		err := w.write(offset32(off))
		if err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}
