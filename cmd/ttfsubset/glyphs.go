/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/font/sfnt"

	"github.com/unidoc/fontsubset/truetype"
)

// parseGlyphList parses a comma separated list of glyph indices and inclusive ranges such as
// "3,5-9". The result is sorted without duplicates.
func parseGlyphList(s string) ([]truetype.GlyphIndex, error) {
	var gids []truetype.GlyphIndex
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		lo, hi := item, item
		if i := strings.IndexByte(item, '-'); i > 0 {
			lo, hi = item[:i], item[i+1:]
		}
		first, err := strconv.ParseUint(strings.TrimSpace(lo), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("bad glyph index %q", item)
		}
		last, err := strconv.ParseUint(strings.TrimSpace(hi), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("bad glyph index %q", item)
		}
		if last < first {
			return nil, fmt.Errorf("bad glyph range %q", item)
		}
		for gid := first; gid <= last; gid++ {
			gids = append(gids, truetype.GlyphIndex(gid))
		}
	}
	return mergeGlyphs(gids, nil), nil
}

// glyphsForChars returns the glyphs the font program `data` maps the runes of `chars` to. Runes
// without a glyph are an error.
func glyphsForChars(data []byte, chars string) ([]truetype.GlyphIndex, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}

	var b sfnt.Buffer
	var gids []truetype.GlyphIndex
	for _, r := range chars {
		x, err := f.GlyphIndex(&b, r)
		if err != nil {
			return nil, err
		}
		if x == 0 {
			return nil, fmt.Errorf("no glyph for %q (U+%04X)", r, r)
		}
		gids = append(gids, truetype.GlyphIndex(x))
	}
	return mergeGlyphs(gids, nil), nil
}

// mergeGlyphs returns the sorted union of `a` and `b` without duplicates.
func mergeGlyphs(a, b []truetype.GlyphIndex) []truetype.GlyphIndex {
	all := append(append([]truetype.GlyphIndex{}, a...), b...)
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	var gids []truetype.GlyphIndex
	for i, gid := range all {
		if i > 0 && gid == all[i-1] {
			continue
		}
		gids = append(gids, gid)
	}
	return gids
}
