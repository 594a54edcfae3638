/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package cffsubset reduces the CFF outlines embedded in OpenType fonts. It plugs into
// truetype.Options as the CFF subsetter.
package cffsubset

import (
	"bytes"

	"github.com/sirupsen/logrus"
	sfntcff "seehuhn.de/go/sfnt/cff"

	"github.com/unidoc/fontsubset/truetype"
)

// Subsetter implements truetype.CFFSubsetter with the seehuhn.de/go/sfnt CFF codec.
//
// Glyph positions are preserved: every glyph that is not requested is replaced by an empty glyph
// with the same name and advance width, so that the glyph count and the glyph indices used by the
// other tables of the font stay valid.
type Subsetter struct{}

var _ truetype.CFFSubsetter = Subsetter{}

// SubsetCFF returns the CFF table `data` reduced to glyph 0 and the glyphs in `gids`.
// For non-symbolic simple fonts the built-in encoding is replaced by the standard encoding; the
// encoding that matters is supplied by the embedding document.
func (Subsetter) SubsetCFF(data []byte, gids []truetype.GlyphIndex, symbolic, cid bool) ([]byte, error) {
	font, err := sfntcff.Read(bytes.NewReader(data))
	if err != nil {
		return nil, &truetype.FormatError{Reason: "Malformed CFF table", Err: err}
	}

	keep := make(map[int]bool, len(gids)+1)
	keep[0] = true
	for _, gid := range gids {
		keep[int(gid)] = true
	}

	outlines := *font.Outlines
	outlines.Glyphs = make([]*sfntcff.Glyph, len(font.Glyphs))
	for i, g := range font.Glyphs {
		if keep[i] {
			outlines.Glyphs[i] = g
			continue
		}
		outlines.Glyphs[i] = sfntcff.NewGlyph(g.Name, g.Width)
	}
	if !cid && !symbolic && !font.IsCIDKeyed() {
		outlines.Encoding = sfntcff.StandardEncoding(outlines.Glyphs)
	}

	subset := &sfntcff.Font{
		FontInfo: font.FontInfo,
		Outlines: &outlines,
	}
	buf := &bytes.Buffer{}
	err = subset.Write(buf)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("CFF %q: %d glyphs, %d kept, %d -> %d bytes",
		font.FontName, len(font.Glyphs), len(keep), len(data), buf.Len())
	return buf.Bytes(), nil
}
