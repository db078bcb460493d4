package bitmap

import (
	"fmt"
	"unsafe"

	"github.com/spaghettifunk/pigment/imaging/core"
	"github.com/spaghettifunk/pigment/imaging/gmath"
)

// Bitmap is a rectangular pixel buffer tied to one format. Storage is
// either owned internally or borrowed from the caller; a borrowed
// bitmap never grows or frees the underlying slice.
type Bitmap struct {
	width        uint32
	height       uint32
	format       Format
	channelCount uint32
	pixelStride  uint32
	rowStride    uint32
	// data is the active pixel window. internal is non-nil only when
	// this bitmap owns its storage.
	data     []byte
	internal []byte
}

// Create allocates a bitmap with internal storage and the minimum row
// stride for the format.
func Create(width, height uint32, format Format) (*Bitmap, error) {
	if format == FormatUndefined {
		return nil, core.ErrInvalidFormat
	}

	footprint := StorageFootprint(width, height, format)
	if footprint > uint64(int(^uint(0)>>1)) {
		return nil, fmt.Errorf("bitmap %dx%d: %w", width, height, core.ErrAllocationFailed)
	}

	b := &Bitmap{
		width:        width,
		height:       height,
		format:       format,
		channelCount: ChannelCount(format),
		pixelStride:  FormatSize(format),
		rowStride:    width * FormatSize(format),
	}
	if footprint > 0 {
		b.internal = make([]byte, footprint)
		b.data = b.internal
	}
	return b, nil
}

// CreateFromStorage binds a bitmap to caller-supplied storage. A
// rowStride of 0 selects the minimum stride for the format; an
// explicit stride below the minimum is a footprint mismatch. The
// bitmap holds a non-owning reference; the caller manages the slice's
// lifetime and the bitmap will never resize it.
func CreateFromStorage(width, height uint32, format Format, rowStride uint32, storage []byte) (*Bitmap, error) {
	if format == FormatUndefined {
		return nil, core.ErrInvalidFormat
	}

	minimumRowStride := width * FormatSize(format)
	if rowStride > 0 && rowStride < minimumRowStride {
		return nil, fmt.Errorf("row stride %d below minimum %d: %w", rowStride, minimumRowStride, core.ErrFootprintMismatch)
	}
	if rowStride == 0 {
		rowStride = minimumRowStride
	}
	// The typed accessors reinterpret rows in place, so every row must
	// start on a channel boundary.
	if rowStride%ChannelSize(format) != 0 {
		return nil, fmt.Errorf("row stride %d not a multiple of the %d-byte channel size: %w",
			rowStride, ChannelSize(format), core.ErrFootprintMismatch)
	}
	if uint64(len(storage)) < uint64(rowStride)*uint64(height) {
		return nil, fmt.Errorf("storage holds %d bytes, need %d: %w", len(storage), uint64(rowStride)*uint64(height), core.ErrFootprintMismatch)
	}

	return &Bitmap{
		width:        width,
		height:       height,
		format:       format,
		channelCount: ChannelCount(format),
		pixelStride:  FormatSize(format),
		rowStride:    rowStride,
		data:         storage,
	}, nil
}

// newOwned adopts a decoded, tightly packed pixel buffer as internal
// storage.
func newOwned(width, height uint32, format Format, pixels []byte) (*Bitmap, error) {
	if uint64(len(pixels)) < StorageFootprint(width, height, format) {
		return nil, core.ErrFootprintMismatch
	}
	b, err := CreateFromStorage(width, height, format, 0, pixels)
	if err != nil {
		return nil, err
	}
	b.internal = pixels
	return b, nil
}

// IsOk reports whether dimensions, format and storage are all valid.
func (b *Bitmap) IsOk() bool {
	if b == nil {
		return false
	}
	isSizeValid := b.width > 0 && b.height > 0
	isFormatValid := b.format != FormatUndefined
	isStorageValid := b.data != nil
	return isSizeValid && isFormatValid && isStorageValid
}

func (b *Bitmap) Width() uint32        { return b.width }
func (b *Bitmap) Height() uint32       { return b.height }
func (b *Bitmap) Format() Format       { return b.format }
func (b *Bitmap) ChannelCount() uint32 { return b.channelCount }
func (b *Bitmap) PixelStride() uint32  { return b.pixelStride }
func (b *Bitmap) RowStride() uint32    { return b.rowStride }
func (b *Bitmap) Data() []byte         { return b.data }

// OwnsStorage reports whether the pixel buffer is internally owned.
func (b *Bitmap) OwnsStorage() bool { return b.internal != nil }

// GetFootprintSize returns the storage size with the row stride
// rounded up to the given alignment. Callers allocating aligned
// transfer buffers depend on this exact rounding.
func (b *Bitmap) GetFootprintSize(rowStrideAlignment uint32) uint64 {
	alignedRowStride := gmath.RoundUp(b.rowStride, rowStrideAlignment)
	return uint64(alignedRowStride) * uint64(b.height)
}

// Clone deep-copies the bitmap into new internal storage. Cloning a
// bitmap whose footprint is inconsistent (padded rows, missing data)
// reports an error instead of producing a half-copied result.
func (b *Bitmap) Clone() (*Bitmap, error) {
	footprint := StorageFootprint(b.width, b.height, b.format)
	if !b.IsOk() || b.GetFootprintSize(1) != footprint {
		return nil, fmt.Errorf("clone source: %w", core.ErrFootprintMismatch)
	}

	out, err := Create(b.width, b.height, b.format)
	if err != nil {
		return nil, err
	}
	copy(out.data, b.data[:footprint])
	return out, nil
}

// Resize changes the dimensions of an internally owned bitmap. The row
// stride is recomputed from the new width; previous padding is not
// preserved. Bitmaps over external storage cannot be resized.
func (b *Bitmap) Resize(width, height uint32) error {
	if b.internal == nil {
		return core.ErrCannotResizeExternalStorage
	}

	b.width = width
	b.height = height
	b.rowStride = width * b.pixelStride

	n := StorageFootprint(width, height, b.format)
	if uint64(len(b.internal)) < n {
		b.internal = make([]byte, n)
	} else {
		b.internal = b.internal[:n]
	}
	if n > 0 {
		b.data = b.internal
	} else {
		b.data = nil
	}
	return nil
}

// GetPixelAddress returns the bytes of the pixel at (x, y), or nil
// when the coordinate is out of range or there is no backing data.
// Out-of-range access is a recoverable probe, not an error.
func (b *Bitmap) GetPixelAddress(x, y uint32) []byte {
	if b.data == nil || x >= b.width || y >= b.height {
		return nil
	}
	offset := uint64(y)*uint64(b.rowStride) + uint64(x)*uint64(b.pixelStride)
	return b.data[offset : offset+uint64(b.pixelStride)]
}

// Typed pixel accessors. These return nil if the bitmap's channel data
// type does not match the requested numeric width; that capability
// check is distinct from the nil returned for out-of-range
// coordinates.

func (b *Bitmap) GetPixel8u(x, y uint32) []uint8 {
	if ChannelDataType(b.format) != DataTypeUInt8 {
		return nil
	}
	return b.GetPixelAddress(x, y)
}

func (b *Bitmap) GetPixel16u(x, y uint32) []uint16 {
	if ChannelDataType(b.format) != DataTypeUInt16 {
		return nil
	}
	p := b.GetPixelAddress(x, y)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&p[0])), b.channelCount)
}

func (b *Bitmap) GetPixel32u(x, y uint32) []uint32 {
	if ChannelDataType(b.format) != DataTypeUInt32 {
		return nil
	}
	p := b.GetPixelAddress(x, y)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&p[0])), b.channelCount)
}

func (b *Bitmap) GetPixel32f(x, y uint32) []float32 {
	if ChannelDataType(b.format) != DataTypeFloat {
		return nil
	}
	p := b.GetPixelAddress(x, y)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&p[0])), b.channelCount)
}

// Channel constrains the numeric types a bitmap channel can hold.
type Channel interface {
	~uint8 | ~uint16 | ~uint32 | ~float32
}

func channelTypeOf[T Channel]() DataType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return DataTypeUInt8
	case uint16:
		return DataTypeUInt16
	case uint32:
		return DataTypeUInt32
	case float32:
		return DataTypeFloat
	}
	return DataTypeUndefined
}

// Fill writes the supplied per-channel values to every pixel's first
// channelCount slots; values beyond the format's channel count are
// ignored. The value type must match the bitmap's channel data type.
func Fill[T Channel](b *Bitmap, r, g, bl, a T) error {
	if b == nil || b.data == nil || b.format == FormatUndefined {
		return core.ErrInvalidFormat
	}
	if channelTypeOf[T]() != ChannelDataType(b.format) {
		return fmt.Errorf("fill value type does not match channel type: %w", core.ErrInvalidFormat)
	}

	rgba := [4]T{r, g, bl, a}
	for y := uint32(0); y < b.height; y++ {
		rowOffset := uint64(y) * uint64(b.rowStride)
		for x := uint32(0); x < b.width; x++ {
			offset := rowOffset + uint64(x)*uint64(b.pixelStride)
			pixel := unsafe.Slice((*T)(unsafe.Pointer(&b.data[offset])), b.channelCount)
			copy(pixel, rgba[:b.channelCount])
		}
	}
	return nil
}
