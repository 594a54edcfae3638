/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"sort"
	"strconv"
	"unicode"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
	textunicode "golang.org/x/text/encoding/unicode"
)

// nameTable represents the Naming table (name).
// The naming table allows multilingual strings to be associated with the font.
// These strings can represent copyright notices, font names, family names, style names, and so on.
type nameTable struct {
	// format >= 0
	format       uint16
	count        uint16
	stringOffset offset16
	nameRecords  []*nameRecord // len = count.

	// format = 1 adds
	langTagCount   uint16
	langTagRecords []*langTagRecord // len = langTagCount

	storage []byte // string storage, set by deduplicate.
}

type langTagRecord struct {
	length uint16
	offset offset16
	data   []byte // actual string data (UTF-16BE format).
}

// Each string in the string storage is referenced by a name record.
type nameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	length     uint16
	offset     offset16
	data       []byte // actual string data.
}

// Name IDs used by ReadInfo.
const (
	nameIDFamily         = 1
	nameIDFullName       = 4
	nameIDPostScriptName = 6
)

// nameByID returns the first entry according to the name table with `nameID`.
// An empty string is returned otherwise (nothing found).
func (t *nameTable) nameByID(nameID int) string {
	if t == nil {
		return ""
	}
	for _, nr := range t.nameRecords {
		if int(nr.nameID) == nameID {
			return nr.Decoded()
		}
	}
	return ""
}

// makePrintable replaces unprintable runes with quotes runes, returning printable string.
func makePrintable(str string) string {
	var buf bytes.Buffer
	for _, r := range str {
		if unicode.IsPrint(r) || r == '\n' {
			buf.WriteRune(r)
		} else {
			buf.WriteString(strconv.QuoteRune(r))
		}
	}
	return buf.String()
}

// Decoded attempts to decode the underlying data and convert to a string.
func (nr nameRecord) Decoded() string {
	switch nr.platformID {
	case 0: // unicode, always UTF-16BE.
		return makePrintable(decodeUTF16(nr.data))
	case 1: // macintosh
		if nr.encodingID == 0 {
			var decoded bytes.Buffer
			for _, val := range nr.data {
				decoded.WriteRune(charmap.Macintosh.DecodeByte(val))
			}
			return makePrintable(decoded.String())
		}
	case 3: // windows
		// When building a Unicode font for Windows, the platform ID should be 3 and the encoding ID should be 1,
		// and the referenced string data must be encoded in UTF-16BE. When building a symbol font for Windows,
		// the platform ID should be 3 and the encoding ID should be 0, and the referenced string data must be
		// encoded in UTF-16BE. (https://docs.microsoft.com/en-us/typography/opentype/spec/name).
		if nr.encodingID == 0 || nr.encodingID == 1 || nr.encodingID == 10 {
			return makePrintable(decodeUTF16(nr.data))
		}
	}

	return makePrintable(string(nr.data))
}

func decodeUTF16(data []byte) string {
	dec := textunicode.UTF16(textunicode.BigEndian, textunicode.IgnoreBOM).NewDecoder()
	b, err := dec.Bytes(data)
	if err != nil {
		logrus.Debugf("UTF-16 decoding failed: %v", err)
		return string(data)
	}
	return string(b)
}

func parseNameTable(data []byte) (*nameTable, error) {
	r := newTableReader(data)

	t := &nameTable{}
	err := r.read(&t.format, &t.count, &t.stringOffset)
	if err != nil {
		return nil, wrapFormatError(err, "Truncated name table")
	}
	if t.format > 1 {
		logrus.Debugf("name table format > 1 (%d)", t.format)
		return nil, formatErrorf("Unsupported name table format %d", t.format)
	}

	for i := 0; i < int(t.count); i++ {
		var nr nameRecord
		err = r.read(&nr.platformID, &nr.encodingID, &nr.languageID, &nr.nameID, &nr.length, &nr.offset)
		if err != nil {
			return nil, wrapFormatError(err, "Truncated name table")
		}
		t.nameRecords = append(t.nameRecords, &nr)
	}

	if t.format == 1 {
		err = r.read(&t.langTagCount)
		if err != nil {
			return nil, wrapFormatError(err, "Truncated name table")
		}
		for i := 0; i < int(t.langTagCount); i++ {
			var ltr langTagRecord
			err = r.read(&ltr.length, &ltr.offset)
			if err != nil {
				return nil, wrapFormatError(err, "Truncated name table")
			}
			t.langTagRecords = append(t.langTagRecords, &ltr)
		}
	}

	// Get the actual string data.
	stringData := func(offset offset16, length uint16) ([]byte, error) {
		start := int(t.stringOffset) + int(offset)
		end := start + int(length)
		if end > len(data) {
			logrus.Debugf("name string outside table: %d > %d", end, len(data))
			return nil, formatErrorf("Truncated name in name table")
		}
		return data[start:end], nil
	}
	for _, nr := range t.nameRecords {
		nr.data, err = stringData(nr.offset, nr.length)
		if err != nil {
			return nil, err
		}
	}
	for _, ltr := range t.langTagRecords {
		ltr.data, err = stringData(ltr.offset, ltr.length)
		if err != nil {
			return nil, err
		}
	}

	logrus.Debugf("Name records: %d", len(t.nameRecords))
	for _, nr := range t.nameRecords {
		logrus.Tracef("%d %d %d - '%s' (%d)", nr.platformID, nr.encodingID, nr.nameID, nr.Decoded(), len(nr.data))
	}

	return t, nil
}

// deduplicate rebuilds the string storage, sharing the bytes of any string that already occurs in
// the new storage. Strings are placed longest first so that shorter strings can be found inside
// longer ones. The record order is left unchanged.
func (t *nameTable) deduplicate() error {
	type entry struct {
		data   []byte
		offset *offset16
	}
	var entries []entry
	for _, nr := range t.nameRecords {
		entries = append(entries, entry{nr.data, &nr.offset})
	}
	for _, ltr := range t.langTagRecords {
		entries = append(entries, entry{ltr.data, &ltr.offset})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].data) > len(entries[j].data)
	})

	var storage []byte
	for _, e := range entries {
		idx := bytes.Index(storage, e.data)
		if idx < 0 {
			idx = len(storage)
			storage = append(storage, e.data...)
		}
		if idx > 0xFFFF {
			return formatErrorf("name string storage too large")
		}
		*e.offset = offset16(idx)
	}

	// Point the string data at the shared storage.
	for _, nr := range t.nameRecords {
		nr.data = storage[nr.offset : int(nr.offset)+len(nr.data)]
	}
	for _, ltr := range t.langTagRecords {
		ltr.data = storage[ltr.offset : int(ltr.offset)+len(ltr.data)]
	}

	headerLen := 6 + 12*len(t.nameRecords)
	if t.format == 1 {
		headerLen += 2 + 4*len(t.langTagRecords)
	}
	t.stringOffset = offset16(headerLen)
	t.storage = storage
	return nil
}

func (t *nameTable) write(w *byteWriter) error {
	err := w.write(t.format, uint16(len(t.nameRecords)), t.stringOffset)
	if err != nil {
		return err
	}
	for _, nr := range t.nameRecords {
		err = w.write(nr.platformID, nr.encodingID, nr.languageID, nr.nameID, nr.length, nr.offset)
		if err != nil {
			return err
		}
	}
	if t.format == 1 {
		err = w.write(uint16(len(t.langTagRecords)))
		if err != nil {
			return err
		}
		for _, ltr := range t.langTagRecords {
			err = w.write(ltr.length, ltr.offset)
			if err != nil {
				return err
			}
		}
	}
	w.writeBytes(t.storage)
	return nil
}

// subsetName returns the name table `data` with deduplicated string storage.
func subsetName(data []byte) ([]byte, error) {
	t, err := parseNameTable(data)
	if err != nil {
		return nil, err
	}
	err = t.deduplicate()
	if err != nil {
		return nil, err
	}

	w := newByteWriter(len(data))
	err = t.write(w)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("name: %d -> %d bytes", len(data), w.Len())
	return w.Bytes(), nil
}
