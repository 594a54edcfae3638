/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"encoding/binary"
)

// Font header.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
type headTable struct {
	majorVersion       uint16
	minorVersion       uint16
	fontRevision       fixed
	checksumAdjustment uint32
	magicNumber        uint32
	flags              uint16
	unitsPerEm         uint16
	indexToLocFormat   int16
}

// Byte offsets of the head fields that are patched in place.
const (
	headLength                   = 54
	headChecksumAdjustmentOffset = 8
	headIndexToLocFormatOffset   = 50
	headMagicNumber              = 0x5F0F3CF5
)

// parseHead parses the fields of the head table `data` needed for subsetting and info.
func parseHead(data []byte) (*headTable, error) {
	if len(data) < headLength {
		return nil, formatErrorf("Truncated head table")
	}

	t := &headTable{}
	r := newTableReader(data)
	err := r.read(&t.majorVersion, &t.minorVersion, &t.fontRevision, &t.checksumAdjustment, &t.magicNumber)
	if err != nil {
		return nil, wrapFormatError(err, "Truncated head table")
	}
	if t.magicNumber != headMagicNumber {
		return nil, formatErrorf("Bad head magic number 0x%08X", t.magicNumber)
	}

	err = r.read(&t.flags, &t.unitsPerEm)
	if err != nil {
		return nil, wrapFormatError(err, "Truncated head table")
	}
	t.indexToLocFormat = int16(binary.BigEndian.Uint16(data[headIndexToLocFormatOffset:]))

	return t, nil
}

// setChecksumAdjustment stores `adjustment` in head table bytes `data`.
func setChecksumAdjustment(data []byte, adjustment uint32) {
	binary.BigEndian.PutUint32(data[headChecksumAdjustmentOffset:], adjustment)
}

// setIndexToLocFormat stores `format` in head table bytes `data`.
func setIndexToLocFormat(data []byte, format int16) {
	binary.BigEndian.PutUint16(data[headIndexToLocFormatOffset:], uint16(format))
}
