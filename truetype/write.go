/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/sirupsen/logrus"
)

// checksumMagic is the value the whole font sums to once head.checksumAdjustment is set.
const checksumMagic = 0xB1B0AFBA

// write assembles the tables of `l` into a font program with scaler `sfntVersion`: offset table,
// table records sorted by tag, then the table data. When `pad` is set every table starts on a
// 4 byte boundary; otherwise tables are written back to back. The head checksum adjustment is
// computed over the finished buffer.
func (l *tableList) write(sfntVersion uint32, pad bool) ([]byte, error) {
	head := l.get("head")
	if head == nil || len(head.data) < headLength {
		return nil, formatErrorf("Required head table missing")
	}
	setChecksumAdjustment(head.data, 0)

	l.sort()
	l.checksumAll()

	ot := newOffsetTable(sfntVersion, len(l.tables))
	offset := 12 + 16*len(l.tables)
	size := offset
	records := make([]tableRecord, len(l.tables))
	for i, t := range l.tables {
		records[i] = tableRecord{
			tableTag: t.tableTag,
			checksum: t.checksum,
			offset:   offset32(offset),
			length:   uint32(len(t.data)),
		}
		offset += len(t.data)
		if pad {
			offset = (offset + 3) &^ 3
		}
		size = offset
	}

	w := newByteWriter(size)
	err := ot.write(w)
	if err != nil {
		return nil, err
	}
	var headOffset int
	for i, rec := range records {
		err = rec.write(w)
		if err != nil {
			return nil, err
		}
		if l.tables[i] == head {
			headOffset = int(rec.offset)
		}
	}
	for _, t := range l.tables {
		w.writeBytes(t.data)
		if pad {
			w.pad(4)
		}
	}

	data := w.Bytes()
	adjustment := checksumMagic - checksum(data)
	setChecksumAdjustment(data[headOffset:], adjustment)
	setChecksumAdjustment(head.data, adjustment)
	logrus.Debugf("Wrote font: %d tables, %d bytes, checksum adjustment 0x%08X", len(l.tables), len(data), adjustment)
	return data, nil
}
