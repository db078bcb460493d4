package bitmap

// DataType identifies the numeric width of a single channel.
type DataType int

const (
	DataTypeUndefined DataType = iota
	DataTypeUInt8
	DataTypeUInt16
	DataTypeUInt32
	DataTypeFloat
)

// Format identifies the channel layout of a bitmap. Bitmaps only deal
// in linear R/RG/RGB/RGBA orderings; the grfx registry covers the full
// GPU format set.
type Format int

const (
	FormatUndefined Format = iota
	FormatRUInt8
	FormatRGUInt8
	FormatRGBUInt8
	FormatRGBAUInt8
	FormatRUInt16
	FormatRGUInt16
	FormatRGBUInt16
	FormatRGBAUInt16
	FormatRUInt32
	FormatRGUInt32
	FormatRGBUInt32
	FormatRGBAUInt32
	FormatRFloat
	FormatRGFloat
	FormatRGBFloat
	FormatRGBAFloat
)

// ChannelSize returns the size in bytes of a single channel.
func ChannelSize(value Format) uint32 {
	switch value {
	case FormatRUInt8, FormatRGUInt8, FormatRGBUInt8, FormatRGBAUInt8:
		return 1
	case FormatRUInt16, FormatRGUInt16, FormatRGBUInt16, FormatRGBAUInt16:
		return 2
	case FormatRUInt32, FormatRGUInt32, FormatRGBUInt32, FormatRGBAUInt32:
		return 4
	case FormatRFloat, FormatRGFloat, FormatRGBFloat, FormatRGBAFloat:
		return 4
	}
	return 0
}

// ChannelCount returns the number of channels in the format.
func ChannelCount(value Format) uint32 {
	switch value {
	case FormatRUInt8, FormatRUInt16, FormatRUInt32, FormatRFloat:
		return 1
	case FormatRGUInt8, FormatRGUInt16, FormatRGUInt32, FormatRGFloat:
		return 2
	case FormatRGBUInt8, FormatRGBUInt16, FormatRGBUInt32, FormatRGBFloat:
		return 3
	case FormatRGBAUInt8, FormatRGBAUInt16, FormatRGBAUInt32, FormatRGBAFloat:
		return 4
	}
	return 0
}

// ChannelDataType returns the numeric type of the format's channels.
func ChannelDataType(value Format) DataType {
	switch value {
	case FormatRUInt8, FormatRGUInt8, FormatRGBUInt8, FormatRGBAUInt8:
		return DataTypeUInt8
	case FormatRUInt16, FormatRGUInt16, FormatRGBUInt16, FormatRGBAUInt16:
		return DataTypeUInt16
	case FormatRUInt32, FormatRGUInt32, FormatRGBUInt32, FormatRGBAUInt32:
		return DataTypeUInt32
	case FormatRFloat, FormatRGFloat, FormatRGBFloat, FormatRGBAFloat:
		return DataTypeFloat
	}
	return DataTypeUndefined
}

// FormatSize returns the size in bytes of one pixel.
func FormatSize(value Format) uint32 {
	return ChannelSize(value) * ChannelCount(value)
}

// StorageFootprint returns the number of bytes needed to store a
// tightly packed width x height image in the given format. Not block
// aware; only valid for the uncompressed formats this package deals in.
func StorageFootprint(width, height uint32, format Format) uint64 {
	return uint64(width) * uint64(height) * uint64(FormatSize(format))
}
