/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"encoding/binary"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func init() {
	logrus.SetLevel(logrus.InfoLevel)
	//logrus.SetLevel(logrus.DebugLevel)
}

// testFont describes a synthetic TrueType font for tests.
type testFont struct {
	glyphs           [][]byte // glyph data blocks, len = numGlyphs.
	advances         []uint16 // per glyph, len = numGlyphs.
	numberOfHMetrics int      // defaults to numGlyphs.
	longLoca         bool
	cmap             []byte // complete cmap table, omitted when nil.
	name             []byte
	post             []byte
	extra            map[string][]byte
	omit             map[string]bool
	sfntVersion      uint32
	revision         fixed
}

// bytes assembles the font program. Tables are checksummed the same way Subset does it.
func (tf *testFont) bytes(t *testing.T) []byte {
	numGlyphs := len(tf.glyphs)
	nhm := tf.numberOfHMetrics
	if nhm == 0 {
		nhm = numGlyphs
	}

	var l tableList
	add := func(name string, data []byte) {
		if data == nil || tf.omit[name] {
			return
		}
		l.add(name, data)
	}

	head := make([]byte, headLength)
	binary.BigEndian.PutUint32(head[0:], 0x00010000)
	binary.BigEndian.PutUint32(head[4:], uint32(tf.revision))
	binary.BigEndian.PutUint32(head[12:], headMagicNumber)
	binary.BigEndian.PutUint16(head[18:], 1000) // unitsPerEm
	if tf.longLoca {
		setIndexToLocFormat(head, locaLong)
	}
	add("head", head)

	maxp := make([]byte, 32)
	binary.BigEndian.PutUint32(maxp[0:], 0x00010000)
	setNumGlyphs(maxp, numGlyphs)
	add("maxp", maxp)

	hhea := make([]byte, hheaLength)
	binary.BigEndian.PutUint32(hhea[0:], 0x00010000)
	setNumberOfHMetrics(hhea, nhm)
	add("hhea", hhea)

	hmtx := newByteWriter(4 * numGlyphs)
	for i := 0; i < numGlyphs; i++ {
		if i < nhm {
			hmtx.write(tf.advances[i])
		}
		hmtx.write(int16(i)) // lsb
	}
	add("hmtx", hmtx.Bytes())

	if tf.sfntVersion == scalerOTTO {
		add("CFF", []byte("fake cff outlines"))
	} else {
		glyf := newByteWriter(0)
		offsets := []uint32{0}
		for _, g := range tf.glyphs {
			glyf.writeBytes(g)
			offsets = append(offsets, uint32(glyf.Len()))
		}
		format := locaShort
		if tf.longLoca {
			format = locaLong
		}
		loca, err := writeLoca(offsets, format)
		require.NoError(t, err)
		add("glyf", glyf.Bytes())
		add("loca", loca)
	}

	add("cmap", tf.cmap)
	add("name", tf.name)
	add("post", tf.post)
	for name, data := range tf.extra {
		add(name, data)
	}

	version := tf.sfntVersion
	if version == 0 {
		version = scalerTrueType
	}
	data, err := l.write(version, false)
	require.NoError(t, err)
	return data
}

// simpleGlyph returns a one point simple glyph, padded to an even length.
func simpleGlyph(x int16) []byte {
	w := newByteWriter(20)
	w.write(int16(1), x, int16(0), x, int16(0)) // numberOfContours, bbox
	w.write(uint16(0))                          // endPtsOfContours
	w.write(uint16(0))                          // instructionLength
	w.write(uint8(0x01))                        // flags: on curve, 16 bit coordinates
	w.write(x, int16(0))
	w.write(uint8(0))
	return w.Bytes()
}

// compositeGlyph returns a composite glyph made of `components`, offset with word arguments.
func compositeGlyph(components ...GlyphIndex) []byte {
	w := newByteWriter(10 + 8*len(components))
	w.write(int16(-1), int16(0), int16(0), int16(100), int16(100))
	for i, gid := range components {
		flags := uint16(arg1And2AreWords | argsAreXYValues)
		if i < len(components)-1 {
			flags |= uint16(moreComponents)
		}
		w.write(flags, gid, int16(10*i), int16(0))
	}
	return w.Bytes()
}

// testGlyphs returns `n` simple glyphs.
func testGlyphs(n int) [][]byte {
	glyphs := make([][]byte, n)
	for i := range glyphs {
		glyphs[i] = simpleGlyph(int16(i))
	}
	return glyphs
}

// testAdvances returns advances 100*(i+1) for `n` glyphs.
func testAdvances(n int) []uint16 {
	advances := make([]uint16, n)
	for i := range advances {
		advances[i] = uint16(100 * (i + 1))
	}
	return advances
}

type cmapTestSegment struct {
	start, end uint16
	firstGlyph GlyphIndex
}

// cmapFormat4 returns a cmap table with one format 4 subtable under (platformID, encodingID)
// mapping each segment with an idDelta.
func cmapFormat4(platformID, encodingID uint16, segs ...cmapTestSegment) []byte {
	segs = append(segs, cmapTestSegment{0xFFFF, 0xFFFF, 0})
	segCount := len(segs)
	searchRange, entrySelector, rangeShift := searchParams(segCount, 2)

	w := newByteWriter(0)
	w.write(uint16(0), uint16(1), platformID, encodingID, offset32(12))
	w.write(uint16(4), uint16(16+8*segCount), uint16(0), uint16(2*segCount), searchRange, entrySelector, rangeShift)
	for _, s := range segs {
		w.write(s.end)
	}
	w.write(uint16(0))
	for _, s := range segs {
		w.write(s.start)
	}
	for i, s := range segs {
		delta := uint16(s.firstGlyph) - s.start
		if i == segCount-1 {
			delta = 1
		}
		w.write(delta)
	}
	for range segs {
		w.write(uint16(0))
	}
	return w.Bytes()
}

// postFormat2 returns a version 2.0 post table giving glyph i the name `names[i]`. Standard
// Macintosh names use their standard index unless listed in `custom`.
func postFormat2(names []string, custom map[string]bool) []byte {
	w := newByteWriter(0)
	w.write(fixed(postVersion2))
	w.writeBytes(make([]byte, postHeaderLength-4))
	w.write(uint16(len(names)))

	var strs []string
	for _, name := range names {
		if std, ok := macGlyphIndex(GlyphName(name)); ok && !custom[name] {
			w.write(std)
			continue
		}
		w.write(uint16(numMacGlyphNames + len(strs)))
		strs = append(strs, name)
	}
	for _, s := range strs {
		w.write(uint8(len(s)))
		w.writeBytes([]byte(s))
	}
	return w.Bytes()
}

type nameTestRecord struct {
	platformID, encodingID, languageID, nameID uint16
	value                                      string
}

// nameFormat0 returns a format 0 name table storing every string separately.
func nameFormat0(records ...nameTestRecord) []byte {
	w := newByteWriter(0)
	w.write(uint16(0), uint16(len(records)), uint16(6+12*len(records)))
	var storage []byte
	for _, r := range records {
		w.write(r.platformID, r.encodingID, r.languageID, r.nameID, uint16(len(r.value)), uint16(len(storage)))
		storage = append(storage, r.value...)
	}
	w.writeBytes(storage)
	return w.Bytes()
}

// utf16 encodes ASCII `s` as UTF-16BE.
func utf16(s string) string {
	b := make([]byte, 0, 2*len(s))
	for _, c := range []byte(s) {
		b = append(b, 0, c)
	}
	return string(b)
}

// outputTable returns table `name` of font program `data`, failing the test if it is missing.
func outputTable(t *testing.T, data []byte, name string) []byte {
	f, err := parseFont(data)
	require.NoError(t, err)
	b, err := f.copyTable(name, true)
	require.NoError(t, err)
	return b
}

// outputGlyf returns the glyf table of font program `data` with its offsets.
func outputGlyf(t *testing.T, data []byte) *glyfTable {
	head, err := parseHead(outputTable(t, data, "head"))
	require.NoError(t, err)
	maxp, err := parseMaxp(outputTable(t, data, "maxp"))
	require.NoError(t, err)
	loca, err := parseLoca(outputTable(t, data, "loca"), head.indexToLocFormat, int(maxp.numGlyphs))
	require.NoError(t, err)
	return &glyfTable{data: outputTable(t, data, "glyf"), loca: loca}
}
