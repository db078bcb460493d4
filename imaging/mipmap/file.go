package mipmap

import (
	"fmt"

	"github.com/spaghettifunk/pigment/imaging/bitmap"
	"github.com/spaghettifunk/pigment/imaging/core"
)

// LoadFile reads a mip chain stored as a single image whose mip levels
// are stacked vertically, level 0 on top. The base dimensions are not
// derivable from the file and must be supplied by the caller.
func LoadFile(path string, baseWidth, baseHeight, levelCount uint32) (*Mipmap, error) {
	maxLevelCount := CalculateLevelCount(baseWidth, baseHeight)
	if levelCount > maxLevelCount {
		levelCount = maxLevelCount
	}
	if levelCount == 0 {
		return nil, fmt.Errorf("mipmap %s: zero levels for %dx%d: %w", path, baseWidth, baseHeight, core.ErrInvalidFormat)
	}

	fileWidth, fileHeight, format, err := bitmap.GetFileProperties(path)
	if err != nil {
		return nil, err
	}

	totalHeight := uint32(0)
	for i := uint32(0); i < levelCount; i++ {
		totalHeight += baseHeight >> i
	}

	if fileWidth != baseWidth || fileHeight < totalHeight {
		return nil, fmt.Errorf("mipmap %s: file is %dx%d, want width %d and height >= %d: %w",
			path, fileWidth, fileHeight, baseWidth, totalHeight, core.ErrFootprintMismatch)
	}

	decoded, err := bitmap.LoadFile(path)
	if err != nil {
		return nil, err
	}

	// All levels share the base row stride within the stacked layout.
	rowStride := baseWidth * bitmap.FormatSize(format)
	totalDataSize := uint64(rowStride) * uint64(totalHeight)

	m := &Mipmap{
		data: make([]byte, totalDataSize),
		mips: make([]*bitmap.Bitmap, 0, levelCount),
	}
	copy(m.data, decoded.Data()[:totalDataSize])

	y := uint32(0)
	mipWidth := baseWidth
	mipHeight := baseHeight
	for level := uint32(0); level < levelCount; level++ {
		dataOffset := uint64(y) * uint64(rowStride)
		mip, err := bitmap.CreateFromStorage(mipWidth, mipHeight, format, rowStride, m.data[dataOffset:])
		if err != nil {
			return nil, err
		}
		m.mips = append(m.mips, mip)

		y += mipHeight
		mipWidth >>= 1
		mipHeight >>= 1
	}

	return m, nil
}

// SaveFile writes the first levelCount levels as one vertically
// stacked PNG, the inverse of the layout LoadFile reads.
func SaveFile(path string, m *Mipmap, levelCount uint32) error {
	if !m.IsOk() {
		return fmt.Errorf("mipmap %s: %w", path, core.ErrInvalidFormat)
	}
	if levelCount > m.LevelCount() {
		levelCount = m.LevelCount()
	}

	base := m.GetMip(0)
	totalHeight := uint32(0)
	for i := uint32(0); i < levelCount; i++ {
		totalHeight += base.Height() >> i
	}

	canvas, err := bitmap.Create(base.Width(), totalHeight, base.Format())
	if err != nil {
		return err
	}

	y := uint32(0)
	for level := uint32(0); level < levelCount; level++ {
		mip := m.GetMip(level)
		for row := uint32(0); row < mip.Height(); row++ {
			srcOffset := uint64(row) * uint64(mip.RowStride())
			rowBytes := uint64(mip.Width()) * uint64(mip.PixelStride())
			src := mip.Data()[srcOffset : srcOffset+rowBytes]
			dstOffset := uint64(y+row) * uint64(canvas.RowStride())
			copy(canvas.Data()[dstOffset:dstOffset+rowBytes], src)
		}
		y += mip.Height()
	}

	return bitmap.SaveFilePNG(path, canvas)
}
