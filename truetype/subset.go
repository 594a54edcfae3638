/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/sirupsen/logrus"
)

// CFFSubsetter reduces the CFF outlines of an OpenType font to the glyphs in `gids`.
// Implementations must keep glyph positions so that glyph i of the result is glyph i of the input.
type CFFSubsetter interface {
	SubsetCFF(cff []byte, gids []GlyphIndex, symbolic, cid bool) ([]byte, error)
}

// Options controls Subset.
type Options struct {
	// Symbolic selects the symbolic cmap subtables (3,0) and (1,0) instead of the Unicode ones.
	Symbolic bool

	// CID marks the font as used with a CIDFont dictionary. Character codes are glyph indices, so
	// no cmap is loaded and glyph positions are preserved. The name, cmap and post tables are not
	// written.
	CID bool

	// PadTables aligns every table of the output on a 4 byte boundary. By default tables are
	// written back to back.
	PadTables bool

	// CFF subsets the outlines of OpenType fonts with CFF data. Required for 'OTTO' fonts.
	CFF CFFSubsetter
}

// Tables copied unchanged when present.
var passthroughTables = []string{"OS/2", "cvt", "fpgm", "prep"}

// Subset returns a font program containing the glyphs `gids` of the font program `data`, together
// with glyph 0 and every glyph the requested ones reference as composite components.
// `gids` must be sorted ascending without duplicates. For TrueType outlines in simple fonts the
// retained glyphs are renumbered densely in their original order; CID-keyed and CFF fonts keep
// their glyph indices.
func Subset(data []byte, gids []GlyphIndex, opts Options) ([]byte, error) {
	for i := 1; i < len(gids); i++ {
		if gids[i] <= gids[i-1] {
			return nil, ErrUnsortedGlyphs
		}
	}

	f, err := parseFont(data)
	if err != nil {
		return nil, err
	}
	if f.isOpenType() && opts.CFF == nil {
		return nil, ErrNoCFFSubsetter
	}

	s := &subsetter{
		font: f,
		gids: gids,
		opts: opts,
	}
	out, err := s.run()
	if err != nil {
		logrus.Debugf("Subset failed: %v", err)
		return nil, err
	}
	return out, nil
}

// subsetter holds the state of one Subset call.
type subsetter struct {
	*font
	gids []GlyphIndex
	opts Options

	tables    tableList
	numGlyphs int
	enc       *cmapEncoding
	glyphs    *glyphMap
}

func (s *subsetter) run() ([]byte, error) {
	maxp, err := s.copyTable("maxp", true)
	if err != nil {
		return nil, err
	}
	mt, err := parseMaxp(maxp)
	if err != nil {
		return nil, err
	}
	s.numGlyphs = int(mt.numGlyphs)
	if s.numGlyphs == 0 {
		return nil, formatErrorf("Font has no glyphs")
	}
	logrus.Debugf("Subsetting %d of %d glyphs (symbolic: %t, cid: %t, otf: %t)",
		len(s.gids), s.numGlyphs, s.opts.Symbolic, s.opts.CID, s.isOpenType())

	err = s.subsetName()
	if err != nil {
		return nil, err
	}
	err = s.loadEncoding()
	if err != nil {
		return nil, err
	}

	head, err := s.copyTable("head", true)
	if err != nil {
		return nil, err
	}
	ht, err := parseHead(head)
	if err != nil {
		return nil, err
	}
	s.tables.add("maxp", maxp)
	s.tables.add("head", head)

	if s.isOpenType() {
		err = s.subsetCFF()
	} else {
		err = s.subsetGlyf(ht.indexToLocFormat)
	}
	if err != nil {
		return nil, err
	}
	setNumGlyphs(maxp, s.glyphs.count)

	err = s.subsetMetrics()
	if err != nil {
		return nil, err
	}
	err = s.buildCmap()
	if err != nil {
		return nil, err
	}
	err = s.subsetPost()
	if err != nil {
		return nil, err
	}
	err = s.copyPassthrough()
	if err != nil {
		return nil, err
	}

	return s.tables.write(s.ot.sfntVersion, s.opts.PadTables)
}

func (s *subsetter) subsetName() error {
	if s.opts.CID {
		return nil
	}
	data, err := s.copyTable("name", false)
	if err != nil || data == nil {
		return err
	}
	name, err := subsetName(data)
	if err != nil {
		return err
	}
	s.tables.add("name", name)
	return nil
}

// loadEncoding loads the preferred cmap subtable and drops the codes whose glyphs are not requested.
// CID-keyed fonts have no encoding.
func (s *subsetter) loadEncoding() error {
	if s.opts.CID {
		return nil
	}
	data, err := s.copyTable("cmap", true)
	if err != nil {
		return err
	}
	t, err := parseCmap(data)
	if err != nil {
		return err
	}
	s.enc, err = t.loadEncoding(s.opts.Symbolic, s.numGlyphs)
	if err != nil {
		return err
	}
	s.enc.reduce(s.gids)
	return nil
}

// roots returns the requested glyphs together with the glyphs of the reduced encoding.
func (s *subsetter) roots() []GlyphIndex {
	roots := append([]GlyphIndex{}, s.gids...)
	if s.enc != nil {
		roots = append(roots, s.enc.usedGlyphs()...)
	}
	return roots
}

func (s *subsetter) subsetGlyf(indexToLocFormat int16) error {
	locaData, err := s.copyTable("loca", true)
	if err != nil {
		return err
	}
	glyfData, err := s.copyTable("glyf", true)
	if err != nil {
		return err
	}
	loca, err := parseLoca(locaData, indexToLocFormat, s.numGlyphs)
	if err != nil {
		return err
	}
	glyf := &glyfTable{data: glyfData, loca: loca}

	used, err := markUsed(s.roots(), s.numGlyphs, glyf)
	if err != nil {
		return err
	}
	s.glyphs = newGlyphMap(used, s.numGlyphs, !s.opts.CID)

	newGlyf, offsets, err := glyf.subset(s.glyphs)
	if err != nil {
		return err
	}
	format := chooseLocaFormat(offsets, indexToLocFormat, s.glyphs.compact)
	if format != indexToLocFormat {
		logrus.Debugf("loca format %d -> %d", indexToLocFormat, format)
		setIndexToLocFormat(s.tables.get("head").data, format)
	}

	newLoca, err := writeLoca(offsets, format)
	if err != nil {
		return err
	}
	s.tables.add("glyf", newGlyf)
	s.tables.add("loca", newLoca)
	logrus.Debugf("glyf: %d -> %d bytes, %d of %d glyphs used", len(glyfData), len(newGlyf), s.glyphs.numUsed(), s.glyphs.count)
	return nil
}

// subsetCFF delegates the outlines to the configured CFFSubsetter. Glyph indices are preserved.
func (s *subsetter) subsetCFF() error {
	cff, err := s.copyTable("CFF", true)
	if err != nil {
		return err
	}
	used, err := markUsed(s.roots(), s.numGlyphs, nil)
	if err != nil {
		return err
	}
	s.glyphs = newGlyphMap(used, s.numGlyphs, false)

	out, err := s.opts.CFF.SubsetCFF(cff, s.gids, s.opts.Symbolic, s.opts.CID)
	if err != nil {
		return err
	}
	s.tables.add("CFF", out)
	logrus.Debugf("CFF: %d -> %d bytes", len(cff), len(out))
	return nil
}

func (s *subsetter) subsetMetrics() error {
	hheaData, err := s.copyTable("hhea", true)
	if err != nil {
		return err
	}
	hhea, err := parseHhea(hheaData)
	if err != nil {
		return err
	}
	hmtxData, err := s.copyTable("hmtx", true)
	if err != nil {
		return err
	}
	hmtx, err := parseHmtx(hmtxData, int(hhea.numberOfHMetrics), s.numGlyphs)
	if err != nil {
		return err
	}

	newHmtx, numberOfHMetrics, err := hmtx.subset(s.glyphs)
	if err != nil {
		return err
	}
	setNumberOfHMetrics(hheaData, numberOfHMetrics)
	s.tables.add("hhea", hheaData)
	s.tables.add("hmtx", newHmtx)
	return nil
}

func (s *subsetter) buildCmap() error {
	if s.enc == nil {
		return nil
	}
	var m *glyphMap
	if s.glyphs.compact {
		m = s.glyphs
	}
	cmap, err := buildCmap(s.enc, m)
	if err != nil {
		return err
	}
	s.tables.add("cmap", cmap)
	return nil
}

func (s *subsetter) subsetPost() error {
	if s.opts.CID {
		return nil
	}
	data, err := s.copyTable("post", false)
	if err != nil || data == nil {
		return err
	}
	t, err := parsePost(data)
	if err != nil {
		return err
	}
	if uint32(t.version) != postVersion2 {
		logrus.Debugf("post version 0x%08X dropped", uint32(t.version))
		return nil
	}
	post, err := t.subset(s.glyphs)
	if err != nil {
		return err
	}
	s.tables.add("post", post)
	return nil
}

func (s *subsetter) copyPassthrough() error {
	for _, name := range passthroughTables {
		data, err := s.copyTable(name, false)
		if err != nil {
			return err
		}
		if data == nil {
			continue
		}
		if name == "OS/2" {
			s.checkEmbedding(data)
		}
		s.tables.add(name, data)
	}
	return nil
}

// checkEmbedding logs the licensing restrictions recorded in the OS/2 table.
func (s *subsetter) checkEmbedding(os2 []byte) {
	t, err := parseOS2Table(os2)
	if err != nil {
		logrus.Debugf("OS/2 table not decoded: %v", err)
		return
	}
	perm := EmbeddingPermission(t.fsType)
	if !perm.CanEmbed() {
		logrus.Warnf("Font license does not permit embedding (fsType 0x%04X)", t.fsType)
	}
	if !perm.CanSubset() {
		logrus.Warnf("Font license does not permit subsetting (fsType 0x%04X)", t.fsType)
	}
}
