/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "encoding/binary"

// hheaTable represents the Horizontal Header table.
type hheaTable struct {
	majorVersion     uint16
	minorVersion     uint16
	ascender         fword
	descender        fword
	lineGap          fword
	numberOfHMetrics uint16 // Number of hMetric entries in 'hmtx' table.
}

const (
	hheaLength                 = 36
	hheaNumberOfHMetricsOffset = 34
)

func parseHhea(data []byte) (*hheaTable, error) {
	if len(data) < hheaLength {
		return nil, formatErrorf("Truncated hhea table")
	}

	t := &hheaTable{}
	err := newTableReader(data).read(&t.majorVersion, &t.minorVersion, &t.ascender, &t.descender, &t.lineGap)
	if err != nil {
		return nil, wrapFormatError(err, "Truncated hhea table")
	}
	t.numberOfHMetrics = binary.BigEndian.Uint16(data[hheaNumberOfHMetricsOffset:])
	return t, nil
}

// setNumberOfHMetrics stores `n` in hhea table bytes `data`.
func setNumberOfHMetrics(data []byte, n int) {
	binary.BigEndian.PutUint16(data[hheaNumberOfHMetricsOffset:], uint16(n))
}
