/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"github.com/sirupsen/logrus"
)

// byteReader encapsulates io.ReadSeeker with buffering and provides methods to read binary data as
// needed for truetype fonts.  The buffered reader is used to enhance the performance when reading
// binary data types one at a time.
type byteReader struct {
	rs     io.ReadSeeker
	reader *bufio.Reader
}

func newByteReader(rs io.ReadSeeker) *byteReader {
	return &byteReader{
		rs:     rs,
		reader: bufio.NewReader(rs),
	}
}

// newTableReader returns a byteReader over the bytes of a single table.
func newTableReader(data []byte) *byteReader {
	return newByteReader(bytes.NewReader(data))
}

// Seek seeks to offset.
func (r *byteReader) Seek(offset int64) error {
	_, err := r.rs.Seek(offset, io.SeekStart)
	if err != nil {
		return err
	}
	r.reader.Reset(r.rs)
	return nil
}

// read reads a series of big endian fields from `r`. Running out of data yields io.EOF or
// io.ErrUnexpectedEOF.
func (r *byteReader) read(fields ...interface{}) error {
	for _, f := range fields {
		switch f.(type) {
		case *fixed, *fword, *int16, *offset16, *offset32, *uint8, *uint16, *uint32, *tag:
		default:
			logrus.Debugf("Unsupported type: %T (read)", f)
			return errTypeCheck
		}
		err := binary.Read(r.reader, binary.BigEndian, f)
		if err != nil {
			return err
		}
	}
	return nil
}

// readSlice appends `length` big endian values to the slice pointed to by `slice`.
func (r *byteReader) readSlice(slice interface{}, length int) error {
	switch t := slice.(type) {
	case *[]uint8:
		return readValues(r, t, length)
	case *[]uint16:
		return readValues(r, t, length)
	case *[]int16:
		return readValues(r, t, length)
	case *[]offset16:
		return readValues(r, t, length)
	case *[]offset32:
		return readValues(r, t, length)
	}
	logrus.Debugf("Unsupported type: %T (readSlice)", slice)
	return errTypeCheck
}

func readValues[T uint8 | uint16 | int16 | offset16 | offset32](r *byteReader, dst *[]T, length int) error {
	vals := make([]T, length)
	err := binary.Read(r.reader, binary.BigEndian, vals)
	if err != nil {
		return err
	}
	*dst = append(*dst, vals...)
	return nil
}
