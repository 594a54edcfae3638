/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedParts(t *testing.T) {
	// The fraction is in 1/65536 units, so 0x1000 is 1/16 rather than a decimal digit.
	testcases := []struct {
		val fixed
		a   uint16
		b   uint16
		f64 float64
	}{
		{fixed(0x00011000), 0x0001, 0x1000, 1.0625},
		{fixed(0x00005000), 0x0000, 0x5000, 0.3125},
		{fixed(0x00025000), 0x0002, 0x5000, 2.3125},
		{fixed(0x00018000), 0x0001, 0x8000, 1.5},
		{fixed(-0x00008000), 0xFFFF, 0x8000, -0.5},
	}

	for _, tcase := range testcases {
		a, b := tcase.val.Parts()
		assert.Equal(t, tcase.a, a)
		assert.Equal(t, tcase.b, b)
		assert.Equal(t, tcase.f64, tcase.val.Float64())
	}
}

func TestMakeTag(t *testing.T) {
	testcases := []struct {
		name     string
		expected tag
		str      string
	}{
		{"glyf", tag{'g', 'l', 'y', 'f'}, "glyf"},
		{"CFF", tag{'C', 'F', 'F', ' '}, "CFF"},
		{"cvt", tag{'c', 'v', 't', ' '}, "cvt"},
		{"OS/2", tag{'O', 'S', '/', '2'}, "OS/2"},
		{"toolong", tag{'t', 'o', 'o', 'l'}, "tool"},
	}

	for _, tcase := range testcases {
		tg := makeTag(tcase.name)
		assert.Equal(t, tcase.expected, tg)
		assert.Equal(t, tcase.str, tg.String())
	}
}

func TestPostVersionString(t *testing.T) {
	testcases := []struct {
		version  fixed
		expected string
	}{
		{0x00010000, "1.0"},
		{0x00020000, "2.0"},
		{0x00025000, "2.5"},
		{0x00030000, "3.0"},
	}

	for _, tcase := range testcases {
		data := make([]byte, postHeaderLength)
		data[0], data[1], data[2], data[3] = byte(tcase.version>>24), byte(tcase.version>>16), byte(tcase.version>>8), byte(tcase.version)
		if uint32(tcase.version) == postVersion2 {
			data = postFormat2(nil, nil)
		}
		post, err := parsePost(data)
		require.NoError(t, err)
		assert.Equal(t, tcase.expected, post.versionString())
	}
}
