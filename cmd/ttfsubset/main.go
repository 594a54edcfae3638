/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Command ttfsubset subsets, validates and inspects TrueType and OpenType font programs.
package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/tdewolff/argp"

	"github.com/unidoc/fontsubset/cffsubset"
	"github.com/unidoc/fontsubset/truetype"
)

type Main struct{}

type Subset struct {
	Glyphs   string `short:"g" desc:"Glyph indices to keep, e.g. 3,5-9"`
	Chars    string `short:"c" desc:"Characters whose glyphs to keep"`
	Symbolic bool   `desc:"Use the symbolic cmap subtables"`
	Cid      bool   `desc:"Subset for use as a CIDFont, keeping glyph indices"`
	Pad      bool   `desc:"Align tables on 4 byte boundaries"`
	Verbose  bool   `short:"v" desc:"Verbose output"`
	Output   string `short:"o" desc:"Output file"`
	Input    string `index:"0" desc:"Input font file"`
}

type Validate struct {
	Verbose bool   `short:"v" desc:"Verbose output"`
	Input   string `index:"0" desc:"Input font file"`
}

type Info struct {
	Verbose bool   `short:"v" desc:"Verbose output"`
	Names   bool   `short:"n" desc:"List glyph names from the post table"`
	Input   string `index:"0" desc:"Input font file"`
}

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.InfoLevel)

	root := argp.NewCmd(&Main{}, "TrueType and OpenType font subsetting toolkit")
	root.AddCmd(&Subset{}, "subset", "Subset a font to the given glyphs")
	root.AddCmd(&Validate{}, "validate", "Check required tables and checksums")
	root.AddCmd(&Info{}, "info", "Show font information and the table directory")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

func setVerbose(verbose bool) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func (cmd *Subset) Run() error {
	setVerbose(cmd.Verbose)
	if cmd.Input == "" {
		return argp.ShowUsage
	} else if cmd.Output == "" {
		fmt.Println("ERROR: must specify output filename")
		return argp.ShowUsage
	}

	data, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}

	gids, err := parseGlyphList(cmd.Glyphs)
	if err != nil {
		return err
	}
	if cmd.Chars != "" {
		charGIDs, err := glyphsForChars(data, cmd.Chars)
		if err != nil {
			return err
		}
		gids = mergeGlyphs(gids, charGIDs)
	}

	opts := truetype.Options{
		Symbolic:  cmd.Symbolic,
		CID:       cmd.Cid,
		PadTables: cmd.Pad,
		CFF:       cffsubset.Subsetter{},
	}
	out, err := truetype.Subset(data, gids, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cmd.Output, out, 0644); err != nil {
		return err
	}

	logrus.Infof("%s: %d glyphs requested, %d -> %d bytes, subset tag %s",
		filepath.Base(cmd.Output), len(gids), len(data), len(out), truetype.SubsetTag(gids))
	return nil
}

func (cmd *Validate) Run() error {
	setVerbose(cmd.Verbose)
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	if err := truetype.ValidateFile(cmd.Input); err != nil {
		return err
	}
	fmt.Printf("%s: OK\n", cmd.Input)
	return nil
}

func (cmd *Info) Run() error {
	setVerbose(cmd.Verbose)
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	data, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}
	info, err := truetype.ReadInfo(data)
	if err != nil {
		return err
	}

	fmt.Printf("File: %s\n\n", cmd.Input)
	outlines := "TrueType"
	if info.OpenType {
		outlines = "CFF"
	}
	fmt.Printf("Outlines:        %s\n", outlines)
	fmt.Printf("Family:          %s\n", info.FamilyName)
	fmt.Printf("Full name:       %s\n", info.FullName)
	fmt.Printf("PostScript name: %s\n", info.PostScriptName)
	fmt.Printf("Glyphs:          %d\n", info.NumGlyphs)
	fmt.Printf("Units per em:    %d\n", info.UnitsPerEm)
	fmt.Printf("Revision:        %.3f\n", info.FontRevision)
	fmt.Printf("Italic angle:    %g\n", info.ItalicAngle)
	fmt.Printf("Embedding:       %s (fsType 0x%04X)\n", info.Embedding, uint16(info.Embedding))
	if info.PostVersion != "" {
		fmt.Printf("post version:    %s\n", info.PostVersion)
		if cmd.Names && len(info.GlyphNames) > 0 {
			fmt.Printf("Glyph names:\n")
			for gid, name := range info.GlyphNames {
				fmt.Printf("  %5d  %s\n", gid, name)
			}
		}
	}

	nLen := int(math.Log10(float64(len(data))) + 1)
	fmt.Printf("\nTable directory:\n")
	for i, t := range info.Tables {
		fmt.Printf("  %2d  %-4s  checksum=0x%08X  offset=%*d  length=%*d\n", i, t.Tag, t.Checksum, nLen, t.Offset, nLen, t.Length)
	}
	return nil
}
