/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/sirupsen/logrus"
)

// os2Table represents the OS/2 metrics table. Only the version 0 fields up to the character
// range are decoded; the table itself is always copied unchanged.
type os2Table struct {
	version          uint16
	xAvgCharWidth    int16
	usWeightClass    uint16
	usWidthClass     uint16
	fsType           uint16
	ySubscript       [4]int16
	ySuperscript     [4]int16
	yStrikeoutSize   int16
	yStrikeoutPos    int16
	sFamilyClass     int16
	panose10         []uint8 // panose10 len = 10
	ulUnicodeRange   [4]uint32
	achVendID        tag
	fsSelection      uint16
	usFirstCharIndex uint16
	usLastCharIndex  uint16
}

func parseOS2Table(data []byte) (*os2Table, error) {
	r := newTableReader(data)

	t := &os2Table{}
	err := r.read(&t.version, &t.xAvgCharWidth, &t.usWeightClass, &t.usWidthClass, &t.fsType)
	if err != nil {
		return nil, wrapFormatError(err, "Truncated OS/2 table")
	}

	if t.version > 10 {
		logrus.Debugf("OS/2 table version range error (%d)", t.version)
		return nil, formatErrorf("Bad OS/2 version %d", t.version)
	}

	err = r.read(&t.ySubscript[0], &t.ySubscript[1], &t.ySubscript[2], &t.ySubscript[3])
	if err == nil {
		err = r.read(&t.ySuperscript[0], &t.ySuperscript[1], &t.ySuperscript[2], &t.ySuperscript[3])
	}
	if err == nil {
		err = r.read(&t.yStrikeoutSize, &t.yStrikeoutPos, &t.sFamilyClass)
	}
	if err == nil {
		err = r.readSlice(&t.panose10, 10)
	}
	if err == nil {
		err = r.read(&t.ulUnicodeRange[0], &t.ulUnicodeRange[1], &t.ulUnicodeRange[2], &t.ulUnicodeRange[3])
	}
	if err == nil {
		err = r.read(&t.achVendID, &t.fsSelection, &t.usFirstCharIndex, &t.usLastCharIndex)
	}
	if err != nil {
		return nil, wrapFormatError(err, "Truncated OS/2 table")
	}

	return t, nil
}

// EmbeddingPermission describes the licensing restrictions of the OS/2 fsType field.
type EmbeddingPermission uint16

// fsType bits.
const (
	EmbeddingRestricted   EmbeddingPermission = 0x0002 // Must not be embedded.
	EmbeddingPreviewPrint EmbeddingPermission = 0x0004 // Embedded read only.
	EmbeddingEditable     EmbeddingPermission = 0x0008 // Embedded for editing.
	EmbeddingNoSubsetting EmbeddingPermission = 0x0100 // Must be embedded as a whole.
	EmbeddingBitmapOnly   EmbeddingPermission = 0x0200 // Only bitmaps may be embedded.
)

// CanEmbed returns false if the font license forbids embedding.
func (p EmbeddingPermission) CanEmbed() bool {
	return p&0x000F != EmbeddingRestricted && p&EmbeddingBitmapOnly == 0
}

// CanSubset returns false if the font must be embedded unmodified.
func (p EmbeddingPermission) CanSubset() bool {
	return p&EmbeddingNoSubsetting == 0
}

func (p EmbeddingPermission) String() string {
	switch {
	case p&0x000F == EmbeddingRestricted:
		return "restricted"
	case p&EmbeddingPreviewPrint != 0:
		return "preview & print"
	case p&EmbeddingEditable != 0:
		return "editable"
	}
	return "installable"
}
