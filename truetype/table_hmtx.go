/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"encoding/binary"

	"github.com/sirupsen/logrus"
)

// hmtxTable represents the Horizontal Metrics table: numberOfHMetrics long records (advance width
// and left side bearing) followed by left side bearings for the remaining glyphs, which share the
// advance width of the last long record.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hmtx
type hmtxTable struct {
	data             []byte
	numberOfHMetrics int
	numGlyphs        int
}

func parseHmtx(data []byte, numberOfHMetrics, numGlyphs int) (*hmtxTable, error) {
	if numberOfHMetrics < 1 || numberOfHMetrics > numGlyphs {
		logrus.Debugf("numberOfHMetrics out of range: %d (numGlyphs %d)", numberOfHMetrics, numGlyphs)
		return nil, formatErrorf("Bad numberOfHMetrics %d", numberOfHMetrics)
	}
	need := 4*numberOfHMetrics + 2*(numGlyphs-numberOfHMetrics)
	if len(data) < need {
		logrus.Debugf("hmtx length %d < %d", len(data), need)
		return nil, formatErrorf("Truncated hmtx table")
	}
	return &hmtxTable{data: data, numberOfHMetrics: numberOfHMetrics, numGlyphs: numGlyphs}, nil
}

// metric returns the advance width and left side bearing of glyph `gid`.
func (t *hmtxTable) metric(gid GlyphIndex) (uint16, int16) {
	nhm := t.numberOfHMetrics
	if int(gid) < nhm {
		off := 4 * int(gid)
		return binary.BigEndian.Uint16(t.data[off:]), int16(binary.BigEndian.Uint16(t.data[off+2:]))
	}
	advance := binary.BigEndian.Uint16(t.data[4*(nhm-1):])
	off := 4*nhm + 2*(int(gid)-nhm)
	return advance, int16(binary.BigEndian.Uint16(t.data[off:]))
}

// isLong returns true if glyph `gid` has a long metric record.
func (t *hmtxTable) isLong(gid GlyphIndex) bool {
	return int(gid) < t.numberOfHMetrics
}

// subset returns the hmtx bytes for the glyphs of `m` together with the new numberOfHMetrics.
// Positions without a retained glyph get zero records.
func (t *hmtxTable) subset(m *glyphMap) ([]byte, int, error) {
	type metric struct {
		used    bool
		long    bool
		advance uint16
		lsb     int16
	}
	metrics := make([]metric, m.count)

	lastLong := 0
	firstShort := -1
	for i := range metrics {
		gid, ok := m.original(i)
		if !ok {
			continue
		}
		advance, lsb := t.metric(gid)
		metrics[i] = metric{used: true, long: t.isLong(gid), advance: advance, lsb: lsb}
		if metrics[i].long {
			lastLong = i
		} else if firstShort < 0 {
			firstShort = i
		}
	}

	numLong := lastLong + 1
	if firstShort >= numLong {
		// Retained short glyphs take the advance of the last long record. Extend the long range
		// when that record carries a different width.
		if metrics[numLong-1].advance != metrics[firstShort].advance {
			numLong = firstShort + 1
		}
	}

	w := newByteWriter(4*numLong + 2*(m.count-numLong))
	for i, mt := range metrics {
		if i < numLong {
			err := w.write(mt.advance)
			if err != nil {
				return nil, 0, err
			}
		}
		err := w.write(mt.lsb)
		if err != nil {
			return nil, 0, err
		}
	}
	logrus.Debugf("hmtx: %d glyphs, %d long metrics", m.count, numLong)
	return w.Bytes(), numLong, nil
}
