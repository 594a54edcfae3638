/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"

	"github.com/sirupsen/logrus"
)

// font is the read-only view of an input font program: the raw bytes together with the parsed
// offset table and table directory. Tables are copied out of it by tag and never modified in place.
//
// Required tables according to PDF32000_2008 (9.9 Embedded font programs - p. 299):
// “head”, “hhea”, “loca”, “maxp”, “cvt”, “prep”, “glyf”, “hmtx”, and “fpgm”. If used with a simple
// font dictionary, the font program shall additionally contain a cmap table defining one or more
// encodings. If used with a CIDFont dictionary, the cmap table is not needed and shall not be present,
// since the mapping from character codes to glyph descriptions is provided separately.
type font struct {
	data []byte
	ot   *offsetTable
	trec *tableRecords // table records (references other tables).
}

func parseFont(data []byte) (*font, error) {
	f := &font{data: data}
	r := newByteReader(bytes.NewReader(data))

	var err error
	f.ot, err = f.parseOffsetTable(r)
	if err != nil {
		return nil, err
	}

	f.trec, err = f.parseTableRecords(r)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("Parsed font directory: %d tables, scaler 0x%08X", f.numTables(), f.ot.sfntVersion)
	logrus.Tracef("%s", f.trec)

	return f, nil
}

func (f font) numTables() int {
	return int(f.ot.numTables)
}

// isOpenType returns true for fonts with CFF outlines ('OTTO' scaler).
func (f font) isOpenType() bool {
	return f.ot.sfntVersion == scalerOTTO
}

// tableBytes returns the bytes of table `tableName` as a view into the font data.
// The bool flag indicates whether the table exists.
func (f *font) tableBytes(tableName string) ([]byte, bool, error) {
	tr, has := f.trec.trMap[tableName]
	if !has {
		return nil, false, nil
	}
	end := uint64(tr.offset) + uint64(tr.length)
	if end > uint64(len(f.data)) {
		logrus.Debugf("%s table outside font data (%d > %d)", tableName, end, len(f.data))
		return nil, false, formatErrorf("Truncated %s table", tableName)
	}
	return f.data[tr.offset:end], true, nil
}

// copyTable returns a freshly allocated copy of table `tableName`, or nil if the table is absent.
// A missing compulsory table is a FormatError naming the table.
func (f *font) copyTable(tableName string, compulsory bool) ([]byte, error) {
	b, has, err := f.tableBytes(tableName)
	if err != nil {
		return nil, err
	}
	if !has {
		if compulsory {
			return nil, formatErrorf("Required %s table missing", tableName)
		}
		return nil, nil
	}
	dup := make([]byte, len(b))
	copy(dup, b)
	return dup, nil
}
