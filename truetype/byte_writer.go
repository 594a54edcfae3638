/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"encoding/binary"

	"github.com/sirupsen/logrus"
	"github.com/tdewolff/parse/v2"
)

// byteWriter encapsulates a growing big endian buffer and provides methods to write binary data as
// fit for truetype fonts. Provides methods to calculate checksum of the current buffer.
type byteWriter struct {
	buffer *parse.BinaryWriter
}

// newByteWriter returns a byteWriter with room for `size` bytes before it needs to grow.
func newByteWriter(size int) *byteWriter {
	return &byteWriter{
		buffer: parse.NewBinaryWriter(make([]byte, 0, size)),
	}
}

// Len returns the length of the current buffer.
func (w *byteWriter) Len() int {
	return int(w.buffer.Len())
}

// Bytes returns the current buffer. The slice aliases the writer's storage.
func (w *byteWriter) Bytes() []byte {
	return w.buffer.Bytes()
}

// checksum returns the sum of `data` read as big endian uint32 values. A final partial word is
// treated as if zero padded.
func checksum(data []byte) uint32 {
	var sum uint32
	n := len(data) &^ 3
	for i := 0; i < n; i += 4 {
		sum += binary.BigEndian.Uint32(data[i:])
	}
	if n < len(data) {
		var tail [4]byte
		copy(tail[:], data[n:])
		sum += binary.BigEndian.Uint32(tail[:])
	}
	return sum
}

func (w *byteWriter) writeBytes(b []byte) {
	w.buffer.WriteBytes(b)
}

// pad appends zero bytes until the buffer length is a multiple of `align`.
func (w *byteWriter) pad(align int) {
	for w.Len()%align != 0 {
		w.buffer.WriteByte(0)
	}
}

func (w *byteWriter) writeSlice(slice interface{}) error {
	switch t := slice.(type) {
	case []uint8:
		w.buffer.WriteBytes(t)
	case []uint16:
		for _, val := range t {
			w.buffer.WriteUint16(val)
		}
	case []int16:
		for _, val := range t {
			w.buffer.WriteInt16(val)
		}
	case []GlyphIndex:
		for _, val := range t {
			w.buffer.WriteUint16(uint16(val))
		}
	default:
		logrus.Debugf("Write type check error: %T (slice)", t)
		return errTypeCheck
	}
	return nil
}

// Write a series of values to `w`.
func (w *byteWriter) write(fields ...interface{}) error {
	for _, f := range fields {
		switch t := f.(type) {
		case uint8:
			w.buffer.WriteUint8(t)
		case uint16:
			w.buffer.WriteUint16(t)
		case int16:
			w.buffer.WriteInt16(t)
		case uint32:
			w.buffer.WriteUint32(t)
		case fixed:
			w.buffer.WriteUint32(uint32(t))
		case fword:
			w.buffer.WriteInt16(int16(t))
		case GlyphIndex:
			w.buffer.WriteUint16(uint16(t))
		case tag:
			w.buffer.WriteBytes(t[:])
		case offset16:
			w.buffer.WriteUint16(uint16(t))
		case offset32:
			w.buffer.WriteUint32(uint32(t))
		default:
			logrus.Debugf("Write type check error: %T", t)
			return errTypeCheck
		}
	}

	return nil
}
