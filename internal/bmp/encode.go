package bmp

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"

	errs "github.com/anas-shakeel/bmpfx/internal/errors"
	"github.com/anas-shakeel/bmpfx/internal/utils"
)

// Quantizes a normalized channel to a byte. Channels outside [0, 1] are
// clamped first, so overflow saturates instead of wrapping.
func toByte(v float64) byte {
	return byte(math.Round(utils.Clamp01(v) * 255.0))
}

// Returns the channels of c as bytes (Red, Green, Blue)
func (c Color) bytes() (r, g, b byte) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

// Encode writes img to w as a 24-bit uncompressed bitmap.
//
// The headers are always 54 bytes (pixel data offset 54), rows are written
// bottom-up in BGR order and padded with zeros to a 4-byte boundary. Any
// write failure is reported as an IO error.
func Encode(w io.Writer, img *Image) error {
	bfHeader, biHeader := newHeaders(img.width, img.height)

	// Create a buffer (to reduce syscalls)
	bw := bufio.NewWriter(w)

	// Write File Header
	if err := binary.Write(bw, binary.LittleEndian, &bfHeader); err != nil {
		return errs.IO(err, "writing file header")
	}
	// Write Info Header
	if err := binary.Write(bw, binary.LittleEndian, &biHeader); err != nil {
		return errs.IO(err, "writing info header")
	}

	// Write the pixels (BottomUp: row 0 first), padding bytes stay zero
	line := make([]byte, RowStride(img.width))
	for row := range img.height {
		for col, c := range img.Row(row) {
			r, g, b := c.bytes()
			line[col*bytesPerPixel+0] = b
			line[col*bytesPerPixel+1] = g
			line[col*bytesPerPixel+2] = r
		}
		if _, err := bw.Write(line); err != nil {
			return errs.IO(err, "writing pixel data")
		}
	}

	// Write buffer to the underlying writer
	if err := bw.Flush(); err != nil {
		return errs.IO(err, "writing pixel data")
	}
	return nil
}

// Saves the image onto local disk.
//
// The bitmap is written to a temporary file next to filename and renamed
// over it, so a failed save leaves an existing file untouched. An existing
// file keeps its permissions, a new one gets 0644.
func (img *Image) Save(filename string) (err error) {
	mode := os.FileMode(0o644)
	if fi, statErr := os.Stat(filename); statErr == nil {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), ".bmpfx-*.tmp")
	if err != nil {
		return errs.IO(err, "cannot create %s", filename)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, img); err != nil {
		return err
	}
	if err = tmp.Chmod(mode); err != nil {
		return errs.IO(err, "cannot create %s", filename)
	}
	if err = tmp.Close(); err != nil {
		return errs.IO(err, "cannot write %s", filename)
	}
	if err = os.Rename(tmp.Name(), filename); err != nil {
		return errs.IO(err, "cannot replace %s", filename)
	}
	return nil
}
