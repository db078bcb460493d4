package bitmap

// PixelIterator walks a bitmap row-major, one pixel at a time. It
// probes pixel addresses through GetPixelAddress, so walking off the
// end is safe.
type PixelIterator struct {
	bitmap *Bitmap
	x, y   uint32
}

// PixelIterator returns an iterator positioned at (0, 0).
func (b *Bitmap) PixelIterator() *PixelIterator {
	return &PixelIterator{bitmap: b}
}

func (it *PixelIterator) Reset() {
	it.x = 0
	it.y = 0
}

func (it *PixelIterator) Done() bool {
	return it.y >= it.bitmap.height
}

// Next advances to the following pixel and reports whether the
// iterator still points at a valid one.
func (it *PixelIterator) Next() bool {
	if it.Done() {
		return false
	}
	it.x++
	if it.x == it.bitmap.width {
		it.x = 0
		it.y++
	}
	return !it.Done()
}

func (it *PixelIterator) X() uint32      { return it.x }
func (it *PixelIterator) Y() uint32      { return it.y }
func (it *PixelIterator) Format() Format { return it.bitmap.format }

func (it *PixelIterator) ChannelCount() uint32 {
	return ChannelCount(it.bitmap.format)
}

func (it *PixelIterator) Pixel() []byte {
	return it.bitmap.GetPixelAddress(it.x, it.y)
}

func (it *PixelIterator) Pixel8u() []uint8 {
	return it.bitmap.GetPixel8u(it.x, it.y)
}

func (it *PixelIterator) Pixel16u() []uint16 {
	return it.bitmap.GetPixel16u(it.x, it.y)
}

func (it *PixelIterator) Pixel32u() []uint32 {
	return it.bitmap.GetPixel32u(it.x, it.y)
}

func (it *PixelIterator) Pixel32f() []float32 {
	return it.bitmap.GetPixel32f(it.x, it.y)
}
