/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"sort"
)

// table is one output table owned by a tableList.
type table struct {
	tableTag tag
	checksum uint32
	data     []byte
}

// tableList collects the tables of the font being built. Later stages look tables up by tag
// instead of holding references to each other's buffers.
type tableList struct {
	tables []*table
}

// add appends table `tableName`, taking ownership of `data`.
func (l *tableList) add(tableName string, data []byte) *table {
	t := &table{tableTag: makeTag(tableName), data: data}
	l.tables = append(l.tables, t)
	return t
}

// get returns table `tableName` or nil if it has not been added.
func (l *tableList) get(tableName string) *table {
	for _, t := range l.tables {
		if t.tableTag.String() == tableName {
			return t
		}
	}
	return nil
}

// sort orders the tables by tag ascending.
func (l *tableList) sort() {
	sort.SliceStable(l.tables, func(i, j int) bool {
		return bytes.Compare(l.tables[i].tableTag[:], l.tables[j].tableTag[:]) < 0
	})
}

func (l *tableList) checksumAll() {
	for _, t := range l.tables {
		t.checksum = checksum(t.data)
	}
}
