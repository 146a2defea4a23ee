package bmp

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"os"

	errs "github.com/anas-shakeel/bmpfx/internal/errors"
)

// header is the validated result of reading both bitmap headers.
type header struct {
	file    BitmapFileHeader
	info    BitmapInfoHeader
	width   int
	height  int  // Absolute height
	topDown bool // Pixels are stored TopDown?
}

// Wraps a read error: a short stream is a format problem, anything else is IO
func readErr(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errs.Format("truncated %s", what)
	}
	return errs.IO(err, "reading %s", what)
}

// Reads and validates the file header and the info header
func readHeader(r io.Reader) (*header, error) {
	var h header

	// Read File Header
	if err := binary.Read(r, binary.LittleEndian, &h.file); err != nil {
		return nil, readErr(err, "file header")
	}

	// Verify that this is a .BMP file by checking bitmap id (0x424d)
	if h.file.Type != Signature {
		return nil, errs.Format("not a bitmap")
	}

	// READ Info Header OR (more commonly) DIB Header!
	if err := binary.Read(r, binary.LittleEndian, &h.info); err != nil {
		return nil, readErr(err, "info header")
	}
	if h.info.Size < InfoHeaderSize {
		return nil, errs.Format("unsupported info header size %d", h.info.Size)
	}

	// Support only 24bit uncompressed Bitmaps (common)
	if h.info.BitCount != bitsPerPixel || h.info.Compression != 0 {
		return nil, errs.Format("unsupported BMP format: %d bits per pixel, compression %d (only 24-bit uncompressed is supported)",
			h.info.BitCount, h.info.Compression)
	}

	if h.info.Width < 0 {
		return nil, errs.Format("negative width %d", h.info.Width)
	}
	h.width = int(h.info.Width)
	h.height = int(h.info.Height)
	if h.height < 0 {
		h.topDown = true
		h.height = -h.height // Abs(olute) Height
	}
	if h.width > MaxPixels || h.height > MaxPixels || int64(h.width)*int64(h.height) > MaxPixels {
		return nil, errs.Format("bitmap too large: %dx%d", h.width, h.height)
	}

	if h.file.OffBits < FileHeaderSize+h.info.Size {
		return nil, errs.Format("pixel data offset %d overlaps the headers", h.file.OffBits)
	}

	return &h, nil
}

// Decode reads a 24-bit uncompressed bitmap from r.
//
// On failure no image is returned: a stream that is not a supported bitmap
// (bad signature, unsupported depth or compression, premature end of data)
// yields an INVALID_FORMAT error, a failing reader an IO error.
func Decode(r io.Reader) (*Image, error) {
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	// Skip over whatever sits between the headers and the Pixel Array (OffBits)
	if gap := int64(h.file.OffBits) - int64(FileHeaderSize+InfoHeaderSize); gap > 0 {
		if _, err := io.CopyN(io.Discard, r, gap); err != nil {
			return nil, readErr(err, "header gap")
		}
	}

	img := newImage(h.width, h.height)
	if h.width == 0 {
		return img, nil // No pixel data to read
	}

	line := make([]byte, RowStride(h.width)) // Row incl. padding

	for i := range h.height {
		// Rows are kept bottom-up in memory, exactly as stored in the file
		rowIndex := i
		if h.topDown {
			rowIndex = h.height - i - 1
		}

		if _, err := io.ReadFull(r, line); err != nil {
			return nil, readErr(err, "pixel data")
		}

		// Padding at the end of line is ignored
		row := img.Row(rowIndex)
		for col := range row {
			p := line[col*bytesPerPixel:]
			row[col] = Color{
				R: float64(p[2]) / 255.0,
				G: float64(p[1]) / 255.0,
				B: float64(p[0]) / 255.0,
			}
		}
	}

	return img, nil
}

// Reads a Bitmap file
func ReadBitmap(filename string) (*Image, error) {
	// Open the file
	file, err := os.Open(filename)
	if err != nil {
		return nil, errs.IO(err, "cannot open %s", filename)
	}
	defer file.Close()

	img, err := Decode(bufio.NewReader(file))
	if err != nil {
		return nil, err
	}
	return img, nil
}
