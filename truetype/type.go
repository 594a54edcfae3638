/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "strings"

// GlyphName is a representation of a glyph name, e.g. from Adobe's glyph list.
type GlyphName string

// GlyphIndex or Glyph ID (GID) represent each glyph within a font.
type GlyphIndex uint16

// Big endian field types of the sfnt tables, see
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff#data-types.
// Fixed is a signed 16.16 number, FWORD a quantity in font design units and Tag four bytes
// naming a table. Offsets are counted from the start of the enclosing table or file.
type fixed int32
type fword int16
type tag [4]uint8
type offset16 uint16
type offset32 uint32

// Scaler types (sfnt versions) accepted in the offset table.
const (
	scalerTrueType uint32 = 0x00010000
	scalerOTTO     uint32 = 0x4F54544F // 'OTTO'
)

func (t tag) String() string {
	return strings.TrimSpace(string(t[:]))
}

// Parts returns the integral and decimal portions of `f`.
func (f fixed) Parts() (uint16, uint16) {
	return uint16(uint32(f) >> 16), uint16(uint32(f) & 0xFFFF)
}

// Float64 returns `f` as a float64.
func (f fixed) Float64() float64 {
	return float64(f) / 65536.0
}

// makeTag builds a tag from `s`, truncated or padded with spaces to four bytes.
func makeTag(s string) tag {
	t := tag{' ', ' ', ' ', ' '}
	copy(t[:], s)
	return t
}
