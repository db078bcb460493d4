package grfx

import "fmt"

// Format identifies a texel encoding. The set is closed and the
// ordinal values index the descriptor registry directly.
type Format int

const (
	FormatUndefined Format = iota

	// 8-bit signed normalized
	FormatR8SNorm
	FormatR8G8SNorm
	FormatR8G8B8SNorm
	FormatR8G8B8A8SNorm
	FormatB8G8R8SNorm
	FormatB8G8R8A8SNorm

	// 8-bit unsigned normalized
	FormatR8UNorm
	FormatR8G8UNorm
	FormatR8G8B8UNorm
	FormatR8G8B8A8UNorm
	FormatB8G8R8UNorm
	FormatB8G8R8A8UNorm

	// 8-bit signed integer
	FormatR8SInt
	FormatR8G8SInt
	FormatR8G8B8SInt
	FormatR8G8B8A8SInt
	FormatB8G8R8SInt
	FormatB8G8R8A8SInt

	// 8-bit unsigned integer
	FormatR8UInt
	FormatR8G8UInt
	FormatR8G8B8UInt
	FormatR8G8B8A8UInt
	FormatB8G8R8UInt
	FormatB8G8R8A8UInt

	// 16-bit signed normalized
	FormatR16SNorm
	FormatR16G16SNorm
	FormatR16G16B16SNorm
	FormatR16G16B16A16SNorm

	// 16-bit unsigned normalized
	FormatR16UNorm
	FormatR16G16UNorm
	FormatR16G16B16UNorm
	FormatR16G16B16A16UNorm

	// 16-bit signed integer
	FormatR16SInt
	FormatR16G16SInt
	FormatR16G16B16SInt
	FormatR16G16B16A16SInt

	// 16-bit unsigned integer
	FormatR16UInt
	FormatR16G16UInt
	FormatR16G16B16UInt
	FormatR16G16B16A16UInt

	// 16-bit float
	FormatR16Float
	FormatR16G16Float
	FormatR16G16B16Float
	FormatR16G16B16A16Float

	// 32-bit signed integer
	FormatR32SInt
	FormatR32G32SInt
	FormatR32G32B32SInt
	FormatR32G32B32A32SInt

	// 32-bit unsigned integer
	FormatR32UInt
	FormatR32G32UInt
	FormatR32G32B32UInt
	FormatR32G32B32A32UInt

	// 32-bit float
	FormatR32Float
	FormatR32G32Float
	FormatR32G32B32Float
	FormatR32G32B32A32Float

	// 8-bit unsigned integer stencil
	FormatS8UInt

	// 16-bit unsigned normalized depth
	FormatD16UNorm

	// 32-bit float depth
	FormatD32Float

	// Depth/stencil combinations
	FormatD16UNormS8UInt
	FormatD24UNormS8UInt
	FormatD32FloatS8UInt

	// SRGB
	FormatR8SRGB
	FormatR8G8SRGB
	FormatR8G8B8SRGB
	FormatR8G8B8A8SRGB
	FormatB8G8R8SRGB
	FormatB8G8R8A8SRGB

	// 10-bit RGB, 2-bit A packed
	FormatR10G10B10A2UNorm

	// 11-bit R, 11-bit G, 10-bit B packed
	FormatR11G11B10Float

	// Block-compressed formats
	FormatBC1RGBASRGB
	FormatBC1RGBAUNorm
	FormatBC1RGBSRGB
	FormatBC1RGBUNorm
	FormatBC2SRGB
	FormatBC2UNorm
	FormatBC3SRGB
	FormatBC3UNorm
	FormatBC4UNorm
	FormatBC4SNorm
	FormatBC5UNorm
	FormatBC5SNorm
	FormatBC6HUFloat
	FormatBC6HSFloat
	FormatBC7UNorm
	FormatBC7SRGB

	FormatCount
)

// FormatDataType describes the numeric interpretation of a channel.
type FormatDataType uint8

const (
	FormatDataTypeUndefined FormatDataType = 0x0
	FormatDataTypeUNorm     FormatDataType = 0x1
	FormatDataTypeSNorm     FormatDataType = 0x2
	FormatDataTypeUInt      FormatDataType = 0x4
	FormatDataTypeSInt      FormatDataType = 0x8
	FormatDataTypeFloat     FormatDataType = 0x10
	FormatDataTypeSRGB      FormatDataType = 0x20
)

// FormatAspect is a bitmask of the image aspects a format carries.
type FormatAspect uint8

const (
	FormatAspectUndefined FormatAspect = 0x0
	FormatAspectColor     FormatAspect = 0x1
	FormatAspectDepth     FormatAspect = 0x2
	FormatAspectStencil   FormatAspect = 0x4

	FormatAspectDepthStencil = FormatAspectDepth | FormatAspectStencil
)

// FormatComponent is a bitmask of the channels present in a format.
type FormatComponent uint8

const (
	FormatComponentUndefined FormatComponent = 0x0
	FormatComponentRed       FormatComponent = 0x1
	FormatComponentGreen     FormatComponent = 0x2
	FormatComponentBlue      FormatComponent = 0x4
	FormatComponentAlpha     FormatComponent = 0x8
	FormatComponentDepth     FormatComponent = 0x10
	FormatComponentStencil   FormatComponent = 0x20

	FormatComponentRedGreen          = FormatComponentRed | FormatComponentGreen
	FormatComponentRedGreenBlue      = FormatComponentRedGreen | FormatComponentBlue
	FormatComponentRedGreenBlueAlpha = FormatComponentRedGreenBlue | FormatComponentAlpha
	FormatComponentDepthStencil      = FormatComponentDepth | FormatComponentStencil
)

// FormatLayout describes how channels are arranged within a texel.
type FormatLayout uint8

const (
	FormatLayoutUndefined  FormatLayout = 0x0
	FormatLayoutLinear     FormatLayout = 0x1
	FormatLayoutPacked     FormatLayout = 0x2
	FormatLayoutCompressed FormatLayout = 0x4
)

// FormatComponentOffset holds the byte offset of each component within
// one texel. Offsets are -1 for components a format does not carry and
// for packed or compressed layouts. Depth shares the red slot and
// stencil the green slot, mirroring how depth-stencil formats reuse
// the color offset storage.
type FormatComponentOffset struct {
	Red   int8
	Green int8
	Blue  int8
	Alpha int8
}

// Depth returns the byte offset of the depth component.
func (o FormatComponentOffset) Depth() int8 { return o.Red }

// Stencil returns the byte offset of the stencil component.
func (o FormatComponentOffset) Stencil() int8 { return o.Green }

// FormatDesc describes the byte-level layout of one format.
type FormatDesc struct {
	// Format name, e.g. "R8G8B8A8_UNORM".
	Name string

	// The texel data type, e.g. UNorm, SNorm, UInt.
	DataType FormatDataType

	// The format aspect: color, depth, stencil, or depth-stencil.
	Aspect FormatAspect

	// The number of bytes per texel.
	// For compressed formats, this field is the size of a block.
	BytesPerTexel uint8

	// The size in texels of the smallest addressable unit.
	// For compressed textures, that's the block width.
	// For uncompressed textures, the value is 1 (a pixel).
	BlockWidth uint8

	// The number of bytes per component (channel).
	// For combined depth-stencil formats, this is the size of the
	// depth component only. For packed or compressed formats this
	// field is invalid and set to -1.
	BytesPerComponent int8

	// The layout of the format (linear, packed, or compressed).
	Layout FormatLayout

	// The components (channels) represented by the format.
	ComponentBits FormatComponent

	// The byte offset of each component within the texel.
	ComponentOffset FormatComponentOffset
}

func (f Format) String() string {
	if f <= FormatUndefined || f >= FormatCount {
		return "UNDEFINED"
	}
	return formatDescs[f].Name
}

// GetFormatDescription returns the descriptor for the given format in
// constant time. Looking up FormatUndefined or an out-of-range value
// is a caller bug and panics.
func GetFormatDescription(format Format) *FormatDesc {
	if format == FormatUndefined || format < 0 || format >= FormatCount {
		panic(fmt.Sprintf("grfx: invalid format %d", int(format)))
	}
	return &formatDescs[format]
}
