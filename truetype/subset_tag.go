/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// SubsetTag returns the six upper case letters that prefix the name of a subsetted font embedded
// in PDF, as in "ABCDEF+Helvetica". The tag is derived from `gids` only, so the same glyph set
// always gets the same tag.
func SubsetTag(gids []GlyphIndex) string {
	buf := make([]byte, 2*len(gids))
	for i, gid := range gids {
		binary.BigEndian.PutUint16(buf[2*i:], uint16(gid))
	}
	sum := blake2b.Sum256(buf)

	x := binary.BigEndian.Uint64(sum[:8])
	var tag [6]byte
	for i := range tag {
		tag[i] = 'A' + byte(x%26)
		x /= 26
	}
	return string(tag[:])
}
