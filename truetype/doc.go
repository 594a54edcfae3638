/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package truetype supports reading, validating and subsetting TrueType and OpenType font programs.
// Specifically intended for embedding subsetted fonts in PDF documents.
//
// Subset takes a complete sfnt font program and a sorted list of glyph indices and produces a
// self-consistent font program containing only those glyphs (plus glyph 0 and any glyph pulled in
// through composite references) together with the matching cmap, hmtx, name and post data.
// OpenType fonts with CFF outlines delegate the outline subsetting to a CFFSubsetter.
package truetype
