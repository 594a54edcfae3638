/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/sirupsen/logrus"
)

// validate checks that the required tables of font `f` are present and whether the table
// checksums and the head checksum adjustment are correct.
func (f *font) validate() error {
	for _, name := range []string{"head", "maxp", "hhea", "hmtx"} {
		if !f.trec.HasTable(name) {
			logrus.Debugf("%s table missing", name)
			return formatErrorf("Required %s table missing", name)
		}
	}
	if f.isOpenType() {
		if !f.trec.HasTable("CFF") {
			return formatErrorf("Required CFF table missing")
		}
	} else if !f.trec.HasTable("glyf") || !f.trec.HasTable("loca") {
		return formatErrorf("Required glyf table missing")
	}

	headData, _, err := f.tableBytes("head")
	if err != nil {
		return err
	}
	head, err := parseHead(headData)
	if err != nil {
		return err
	}

	// Validate the font.
	logrus.Debug("Validating entire font")
	{
		headRec := f.trec.trMap["head"]
		data := make([]byte, len(f.data))
		copy(data, f.data)

		// set checksumAdjustment data to 0 in the head table.
		setChecksumAdjustment(data[headRec.offset:], 0)

		adjustment := checksumMagic - checksum(data)
		if head.checksumAdjustment != adjustment {
			logrus.Debugf("File checksum adjustment 0x%08X, expected 0x%08X", head.checksumAdjustment, adjustment)
			return formatErrorf("File checksum mismatch")
		}
	}

	// Validate each table.
	logrus.Debug("Validating font tables")
	for _, tr := range f.trec.list {
		name := tr.tableTag.String()
		logrus.Tracef("Validating %s: offset %d, length %d", name, tr.offset, tr.length)

		if f.trec.trMap[name] != tr {
			// Duplicate tag, the record is never used.
			continue
		}
		b, err := f.copyTable(name, true)
		if err != nil {
			return err
		}
		if name == "head" {
			// Set the checksumAdjustment to 0 so that head checksum is valid.
			setChecksumAdjustment(b, 0)
		}

		sum := checksum(b)
		if tr.checksum != sum {
			logrus.Debugf("Invalid %s checksum (0x%08X != 0x%08X)", name, sum, tr.checksum)
			return formatErrorf("Checksum mismatch in %s table", name)
		}
	}

	return nil
}
