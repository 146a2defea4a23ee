package bmp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	errs "github.com/anas-shakeel/bmpfx/internal/errors"
)

// Info is the header metadata of a bitmap file, without its pixels.
type Info struct {
	Filename    string
	FileSize    uint32 // As declared in the file header
	Width       int
	Height      int // Absolute height
	BitCount    uint16
	PixelOffset uint32
	Stride      int  // Bytes per encoded row (incl. padding)
	Padding     int  // Padding bytes per row
	TopDown     bool // Rows stored top-down (negative height)
}

// PixelCount returns width*height.
func (i *Info) PixelCount() int {
	return i.Width * i.Height
}

// ReadInfo parses and validates the headers of a bitmap file.
func ReadInfo(filename string) (*Info, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errs.IO(err, "cannot open %s", filename)
	}
	defer file.Close()

	h, err := readHeader(bufio.NewReader(file))
	if err != nil {
		return nil, err
	}

	return &Info{
		Filename:    filename,
		FileSize:    h.file.Size,
		Width:       h.width,
		Height:      h.height,
		BitCount:    h.info.BitCount,
		PixelOffset: h.file.OffBits,
		Stride:      RowStride(h.width),
		Padding:     RowPadding(h.width),
		TopDown:     h.topDown,
	}, nil
}

// Print the Metadata of the bitmap (in human-readable format)
func (i *Info) Print(w io.Writer) error {
	order := "bottom-up"
	if i.TopDown {
		order = "top-down"
	}

	_, err := fmt.Fprintf(w,
		"Filename: \t%v\nFilesize: \t%v bytes\nWidth: \t\t%v px\nHeight: \t%v px\nBitCount: \t%vbits\n"+
			"PixelOffset: \t%v bytes\nPixelCount: \t%v pixels\nStride: \t%v bytes\nPadding: \t%v bytes\nRowOrder: \t%v\n",
		i.Filename, i.FileSize, i.Width, i.Height, i.BitCount,
		i.PixelOffset, i.PixelCount(), i.Stride, i.Padding, order)
	return err
}
