/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// tableRecord is one 16 byte entry of the table directory.
type tableRecord struct {
	tableTag tag
	checksum uint32
	offset   offset32
	length   uint32
}

func (tr *tableRecord) read(r *byteReader) error {
	return r.read(&tr.tableTag, &tr.checksum, &tr.offset, &tr.length)
}

func (tr tableRecord) write(w *byteWriter) error {
	return w.write(tr.tableTag, tr.checksum, tr.offset, tr.length)
}

// tableRecords holds the table directory in file order plus a lookup by tag.
type tableRecords struct {
	list  []tableRecord
	trMap map[string]tableRecord
}

func (f *font) parseTableRecords(r *byteReader) (*tableRecords, error) {
	trs := &tableRecords{
		trMap: map[string]tableRecord{},
	}

	numTables := int(f.ot.numTables)
	for i := 0; i < numTables; i++ {
		var rec tableRecord
		err := rec.read(r)
		if err != nil {
			return nil, wrapFormatError(err, "Truncated table directory")
		}
		trs.list = append(trs.list, rec)
		if _, dup := trs.trMap[rec.tableTag.String()]; dup {
			// The first record with a given tag wins.
			logrus.Debugf("Duplicate %s table record ignored", rec.tableTag)
			continue
		}
		trs.trMap[rec.tableTag.String()] = rec
	}

	return trs, nil
}

// HasTable returns true if there is a record of `tableName` in table records `trs`.
func (trs *tableRecords) HasTable(tableName string) bool {
	_, has := trs.trMap[strings.TrimSpace(tableName)]
	return has
}

func (trs *tableRecords) String() string {
	var sb strings.Builder
	for i, tr := range trs.list {
		fmt.Fprintf(&sb, "%2d: %s checksum=0x%08X offset=%d length=%d\n",
			i+1, tr.tableTag, tr.checksum, tr.offset, tr.length)
	}
	return sb.String()
}
