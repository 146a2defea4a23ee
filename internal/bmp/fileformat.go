// BMP-specific structs and types
package bmp

// The BitmapFileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader

type BitmapFileHeader struct {
	Type      [2]byte // The file type: must be 0x4d42 (ASCII string "BM").
	Size      uint32  // The size, in bytes, of the bitmap file.
	Reserved1 uint16  // Reserved; must be zero.
	Reserved2 uint16  // Reserved; must be zero.
	OffBits   uint32  // Bitmap File Offset (In bytes) to Pixel Arrays
}

// The BitmapInfoHeader structure contains information about the
// dimensions and color format of DIB [device-independent bitmap].

type BitmapInfoHeader struct {
	Size            uint32 // The number of bytes required by the structure.
	Width           int32  // The width of the bitmap, in pixels.
	Height          int32  // The height of the bitmap, in pixels (negative: rows stored top-down)
	Planes          uint16 // The number of planes for the target device.
	BitCount        uint16 // The number of bits-per-pixel.
	Compression     uint32 // The type of compression
	SizeImage       uint32 // The size of the image (in bytes).
	XPixelsPerM     int32  // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     int32  // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Number of color indexes that are actually used by bitmap.
	ColorsImportant uint32 // Number of color indexes required for displaying the bitmap.
}

const (
	FileHeaderSize = 14                              // Size of BitmapFileHeader on disk
	InfoHeaderSize = 40                              // Size of BitmapInfoHeader on disk
	HeaderSize     = FileHeaderSize + InfoHeaderSize // Offset of the pixel array we write

	bitsPerPixel  = 24
	bytesPerPixel = bitsPerPixel / 8
)

// MaxPixels caps width*height of any image, decoded or created, so a corrupt
// header or a bad size cannot request an arbitrarily large allocation.
const MaxPixels = 1 << 28

// Signature is the ASCII "BM" magic at the start of every bitmap file.
var Signature = [2]byte{0x42, 0x4d}

// RowStride returns the bytes one encoded row occupies (incl. padding).
func RowStride(width int) int {
	return ((width*bytesPerPixel + 3) / 4) * 4
}

// RowPadding returns the zero bytes appended to each encoded row.
func RowPadding(width int) int {
	return RowStride(width) - width*bytesPerPixel
}

// Builds the headers for a 24 bit uncompressed bitmap of the given size
func newHeaders(width, height int) (BitmapFileHeader, BitmapInfoHeader) {
	sizeImage := uint32(RowStride(width) * height)

	bfh := BitmapFileHeader{
		Type:    Signature,
		Size:    HeaderSize + sizeImage, // Size of the whole bitmap file
		OffBits: HeaderSize,
	}
	bih := BitmapInfoHeader{
		Size:      InfoHeaderSize,
		Width:     int32(width),
		Height:    int32(height),
		Planes:    1,
		BitCount:  bitsPerPixel,
		SizeImage: sizeImage,
	}
	return bfh, bih
}
