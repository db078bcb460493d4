package mipmap

import (
	"fmt"
	"math"

	"github.com/spaghettifunk/pigment/imaging/bitmap"
	"github.com/spaghettifunk/pigment/imaging/core"
)

// Mipmap is an ordered chain of bitmap views, level 0 at full
// resolution, each following level halved (flooring). All levels point
// into one contiguous allocation the Mipmap owns; the views must not
// outlive it.
type Mipmap struct {
	data []byte
	mips []*bitmap.Bitmap
}

func actualLevelCount(width, height, levelCount uint32) uint32 {
	count := uint32(0)
	for i := uint32(0); i < levelCount; i++ {
		if width > 0 && height > 0 {
			count++
		}
		width /= 2
		height /= 2
		if width == 0 || height == 0 {
			break
		}
	}
	return count
}

// CalculateLevelCount returns how many mip levels a width x height
// base image supports, computed by iterative halving until either
// dimension reaches 0.
func CalculateLevelCount(width, height uint32) uint32 {
	return actualLevelCount(width, height, math.MaxUint32)
}

func calculateDataSize(width, height uint32, format bitmap.Format, levelCount uint32) uint64 {
	if width == 0 || height == 0 || format == bitmap.FormatUndefined || levelCount == 0 {
		return 0
	}

	total := uint64(0)
	for i := uint32(0); i < levelCount; i++ {
		rowStride := uint64(width) * uint64(bitmap.FormatSize(format))
		total += rowStride * uint64(height)
		width /= 2
		height /= 2
	}
	return total
}

// New allocates an empty mip chain. Requesting more levels than the
// dimensions support truncates to the supported count.
func New(width, height uint32, format bitmap.Format, levelCount uint32) (*Mipmap, error) {
	supported := actualLevelCount(width, height, levelCount)
	if supported < levelCount && levelCount != math.MaxUint32 {
		core.LogWarn("mip level count %d truncated to %d for %dx%d", levelCount, supported, width, height)
	}
	levelCount = supported

	dataSize := calculateDataSize(width, height, format, levelCount)
	if dataSize == 0 {
		return nil, fmt.Errorf("mipmap %dx%d levels=%d: %w", width, height, levelCount, core.ErrInvalidFormat)
	}

	m := &Mipmap{
		data: make([]byte, dataSize),
		mips: make([]*bitmap.Bitmap, 0, levelCount),
	}

	pixelStride := uint64(bitmap.FormatSize(format))
	offset := uint64(0)
	for i := uint32(0); i < levelCount; i++ {
		rowStride := uint64(width) * pixelStride
		size := rowStride * uint64(height)

		mip, err := bitmap.CreateFromStorage(width, height, format, 0, m.data[offset:offset+size])
		if err != nil {
			return nil, err
		}
		m.mips = append(m.mips, mip)

		offset += size
		width /= 2
		height /= 2
	}

	return m, nil
}

// NewFromBitmap builds a mip chain from a base image: the base is
// copied into level 0 and every following level is resampled from the
// level immediately preceding it. Resampling level N from level N-1
// (not from the base) compounds filtering across the chain; existing
// assets depend on that, so it stays. A base whose footprint does not
// match level 0 is reported as an error.
func NewFromBitmap(base *bitmap.Bitmap, levelCount uint32) (*Mipmap, error) {
	return NewFromBitmapFiltered(base, levelCount, bitmap.FilterDefault)
}

// NewFromBitmapFiltered is NewFromBitmap with an explicit resampling
// kernel.
func NewFromBitmapFiltered(base *bitmap.Bitmap, levelCount uint32, filter bitmap.Filter) (*Mipmap, error) {
	m, err := New(base.Width(), base.Height(), base.Format(), levelCount)
	if err != nil {
		return nil, err
	}

	mip0 := m.GetMip(0)
	srcSize := base.GetFootprintSize(1)
	if srcSize == 0 || srcSize != mip0.GetFootprintSize(1) {
		return nil, fmt.Errorf("base bitmap does not fit level 0: %w", core.ErrFootprintMismatch)
	}
	copy(mip0.Data(), base.Data()[:srcSize])

	for level := uint32(1); level < m.LevelCount(); level++ {
		prev := m.GetMip(level - 1)
		if err := prev.ScaleTo(m.GetMip(level), filter); err != nil {
			return nil, fmt.Errorf("generating mip level %d: %w", level, err)
		}
	}

	return m, nil
}

// IsOk reports whether the chain has at least one level backed by
// enough storage.
func (m *Mipmap) IsOk() bool {
	if m == nil || m.LevelCount() == 0 {
		return false
	}

	base := m.mips[0]
	if base.Format() == bitmap.FormatUndefined {
		return false
	}

	dataSize := calculateDataSize(base.Width(), base.Height(), base.Format(), m.LevelCount())
	return uint64(len(m.data)) >= dataSize
}

func (m *Mipmap) LevelCount() uint32 {
	return uint32(len(m.mips))
}

func (m *Mipmap) GetFormat() bitmap.Format {
	mip := m.GetMip(0)
	if mip == nil {
		return bitmap.FormatUndefined
	}
	return mip.Format()
}

// GetMip returns the bitmap view for the given level, or nil when the
// level is past the end of the chain.
func (m *Mipmap) GetMip(level uint32) *bitmap.Bitmap {
	if level >= m.LevelCount() {
		return nil
	}
	return m.mips[level]
}

func (m *Mipmap) GetWidth(level uint32) uint32 {
	mip := m.GetMip(level)
	if mip == nil {
		return 0
	}
	return mip.Width()
}

func (m *Mipmap) GetHeight(level uint32) uint32 {
	mip := m.GetMip(level)
	if mip == nil {
		return 0
	}
	return mip.Height()
}
