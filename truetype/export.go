/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"os"
)

// SubsetFile reads the font program at `filePath` and subsets it, see Subset.
func SubsetFile(filePath string, gids []GlyphIndex, opts Options) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return Subset(data, gids, opts)
}

// ValidateBytes validates the font program `data`: required tables must be present and the table
// checksums and the head checksum adjustment must match the data.
func ValidateBytes(data []byte) error {
	fnt, err := parseFont(data)
	if err != nil {
		return err
	}
	return fnt.validate()
}

// ValidateFile validates the truetype font given by `filePath`.
func ValidateFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return ValidateBytes(data)
}

// TableInfo describes one entry of the table directory.
type TableInfo struct {
	Tag      string
	Checksum uint32
	Offset   uint32
	Length   uint32
}

// Info summarizes a font program.
type Info struct {
	OpenType       bool // CFF outlines ('OTTO').
	NumGlyphs      int
	UnitsPerEm     uint16
	FontRevision   float64
	ItalicAngle    float64 // in degrees, counter-clockwise from the vertical.
	FamilyName     string
	FullName       string
	PostScriptName string
	Embedding      EmbeddingPermission
	PostVersion    string // e.g. "2.0", empty without post table.
	// GlyphNames is indexed by glyph and only set for post version 2.0.
	GlyphNames     []GlyphName
	Tables         []TableInfo
}

// ReadInfo returns the directory and descriptive data of the font program `data`.
func ReadInfo(data []byte) (*Info, error) {
	f, err := parseFont(data)
	if err != nil {
		return nil, err
	}

	info := &Info{OpenType: f.isOpenType()}
	for _, tr := range f.trec.list {
		info.Tables = append(info.Tables, TableInfo{
			Tag:      string(tr.tableTag[:]),
			Checksum: tr.checksum,
			Offset:   uint32(tr.offset),
			Length:   tr.length,
		})
	}

	b, err := f.copyTable("maxp", true)
	if err != nil {
		return nil, err
	}
	maxp, err := parseMaxp(b)
	if err != nil {
		return nil, err
	}
	info.NumGlyphs = int(maxp.numGlyphs)

	b, err = f.copyTable("head", true)
	if err != nil {
		return nil, err
	}
	head, err := parseHead(b)
	if err != nil {
		return nil, err
	}
	info.UnitsPerEm = head.unitsPerEm
	info.FontRevision = head.fontRevision.Float64()

	if b, err = f.copyTable("name", false); err != nil {
		return nil, err
	} else if b != nil {
		name, err := parseNameTable(b)
		if err != nil {
			return nil, err
		}
		info.FamilyName = name.nameByID(nameIDFamily)
		info.FullName = name.nameByID(nameIDFullName)
		info.PostScriptName = name.nameByID(nameIDPostScriptName)
	}

	if b, err = f.copyTable("OS/2", false); err != nil {
		return nil, err
	} else if b != nil {
		os2, err := parseOS2Table(b)
		if err != nil {
			return nil, err
		}
		info.Embedding = EmbeddingPermission(os2.fsType)
	}

	if b, err = f.copyTable("post", false); err != nil {
		return nil, err
	} else if b != nil {
		post, err := parsePost(b)
		if err != nil {
			return nil, err
		}
		info.PostVersion = post.versionString()
		info.ItalicAngle = post.italicAngle.Float64()
		for gid := range post.glyphNameIndex {
			info.GlyphNames = append(info.GlyphNames, post.glyphName(GlyphIndex(gid)))
		}
	}

	return info, nil
}
