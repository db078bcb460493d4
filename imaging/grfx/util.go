package grfx

import "github.com/spaghettifunk/pigment/imaging/bitmap"

// FromBitmapFormat maps a bitmap channel layout onto the GPU format it
// is uploaded or exported as. Integer bitmap data is treated as
// normalized.
func FromBitmapFormat(value bitmap.Format) Format {
	switch value {
	case bitmap.FormatRUInt8:
		return FormatR8UNorm
	case bitmap.FormatRGUInt8:
		return FormatR8G8UNorm
	case bitmap.FormatRGBUInt8:
		return FormatR8G8B8UNorm
	case bitmap.FormatRGBAUInt8:
		return FormatR8G8B8A8UNorm
	case bitmap.FormatRUInt16:
		return FormatR16UNorm
	case bitmap.FormatRGUInt16:
		return FormatR16G16UNorm
	case bitmap.FormatRGBUInt16:
		return FormatR16G16B16UNorm
	case bitmap.FormatRGBAUInt16:
		return FormatR16G16B16A16UNorm
	case bitmap.FormatRUInt32:
		return FormatR32UInt
	case bitmap.FormatRGUInt32:
		return FormatR32G32UInt
	case bitmap.FormatRGBUInt32:
		return FormatR32G32B32UInt
	case bitmap.FormatRGBAUInt32:
		return FormatR32G32B32A32UInt
	case bitmap.FormatRFloat:
		return FormatR32Float
	case bitmap.FormatRGFloat:
		return FormatR32G32Float
	case bitmap.FormatRGBFloat:
		return FormatR32G32B32Float
	case bitmap.FormatRGBAFloat:
		return FormatR32G32B32A32Float
	}
	return FormatUndefined
}
