package grfx

func offsetsR(r int8) FormatComponentOffset         { return FormatComponentOffset{r, -1, -1, -1} }
func offsetsRG(r, g int8) FormatComponentOffset     { return FormatComponentOffset{r, g, -1, -1} }
func offsetsRGB(r, g, b int8) FormatComponentOffset { return FormatComponentOffset{r, g, b, -1} }
func offsetsRGBA(r, g, b, a int8) FormatComponentOffset {
	return FormatComponentOffset{r, g, b, a}
}

var offsetsUndefined = FormatComponentOffset{-1, -1, -1, -1}

func uncompressed(name string, dataType FormatDataType, aspect FormatAspect, bytesPerTexel uint8, bytesPerComponent int8, layout FormatLayout, components FormatComponent, offsets FormatComponentOffset) FormatDesc {
	return FormatDesc{
		Name:              name,
		DataType:          dataType,
		Aspect:            aspect,
		BytesPerTexel:     bytesPerTexel,
		BlockWidth:        1,
		BytesPerComponent: bytesPerComponent,
		Layout:            layout,
		ComponentBits:     components,
		ComponentOffset:   offsets,
	}
}

func compressed(name string, dataType FormatDataType, bytesPerBlock, blockWidth uint8, components FormatComponent) FormatDesc {
	return FormatDesc{
		Name:              name,
		DataType:          dataType,
		Aspect:            FormatAspectColor,
		BytesPerTexel:     bytesPerBlock,
		BlockWidth:        blockWidth,
		BytesPerComponent: -1,
		Layout:            FormatLayoutCompressed,
		ComponentBits:     components,
		ComponentOffset:   offsetsUndefined,
	}
}

// A static registry of format descriptions. The order must match the
// order of the Format enum, so that retrieving the description for a
// given format can be done in constant time.
var formatDescs = [...]FormatDesc{
	uncompressed("UNDEFINED", FormatDataTypeUndefined, FormatAspectUndefined, 0, 0, FormatLayoutUndefined, FormatComponentUndefined, offsetsUndefined),

	uncompressed("R8_SNORM", FormatDataTypeSNorm, FormatAspectColor, 1, 1, FormatLayoutLinear, FormatComponentRed, offsetsR(0)),
	uncompressed("R8G8_SNORM", FormatDataTypeSNorm, FormatAspectColor, 2, 1, FormatLayoutLinear, FormatComponentRedGreen, offsetsRG(0, 1)),
	uncompressed("R8G8B8_SNORM", FormatDataTypeSNorm, FormatAspectColor, 3, 1, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(0, 1, 2)),
	uncompressed("R8G8B8A8_SNORM", FormatDataTypeSNorm, FormatAspectColor, 4, 1, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(0, 1, 2, 3)),
	uncompressed("B8G8R8_SNORM", FormatDataTypeSNorm, FormatAspectColor, 3, 1, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(2, 1, 0)),
	uncompressed("B8G8R8A8_SNORM", FormatDataTypeSNorm, FormatAspectColor, 4, 1, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(2, 1, 0, 3)),

	uncompressed("R8_UNORM", FormatDataTypeUNorm, FormatAspectColor, 1, 1, FormatLayoutLinear, FormatComponentRed, offsetsR(0)),
	uncompressed("R8G8_UNORM", FormatDataTypeUNorm, FormatAspectColor, 2, 1, FormatLayoutLinear, FormatComponentRedGreen, offsetsRG(0, 1)),
	uncompressed("R8G8B8_UNORM", FormatDataTypeUNorm, FormatAspectColor, 3, 1, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(0, 1, 2)),
	uncompressed("R8G8B8A8_UNORM", FormatDataTypeUNorm, FormatAspectColor, 4, 1, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(0, 1, 2, 3)),
	uncompressed("B8G8R8_UNORM", FormatDataTypeUNorm, FormatAspectColor, 3, 1, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(2, 1, 0)),
	uncompressed("B8G8R8A8_UNORM", FormatDataTypeUNorm, FormatAspectColor, 4, 1, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(2, 1, 0, 3)),

	uncompressed("R8_SINT", FormatDataTypeSInt, FormatAspectColor, 1, 1, FormatLayoutLinear, FormatComponentRed, offsetsR(0)),
	uncompressed("R8G8_SINT", FormatDataTypeSInt, FormatAspectColor, 2, 1, FormatLayoutLinear, FormatComponentRedGreen, offsetsRG(0, 1)),
	uncompressed("R8G8B8_SINT", FormatDataTypeSInt, FormatAspectColor, 3, 1, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(0, 1, 2)),
	uncompressed("R8G8B8A8_SINT", FormatDataTypeSInt, FormatAspectColor, 4, 1, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(0, 1, 2, 3)),
	uncompressed("B8G8R8_SINT", FormatDataTypeSInt, FormatAspectColor, 3, 1, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(2, 1, 0)),
	uncompressed("B8G8R8A8_SINT", FormatDataTypeSInt, FormatAspectColor, 4, 1, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(2, 1, 0, 3)),

	uncompressed("R8_UINT", FormatDataTypeUInt, FormatAspectColor, 1, 1, FormatLayoutLinear, FormatComponentRed, offsetsR(0)),
	uncompressed("R8G8_UINT", FormatDataTypeUInt, FormatAspectColor, 2, 1, FormatLayoutLinear, FormatComponentRedGreen, offsetsRG(0, 1)),
	uncompressed("R8G8B8_UINT", FormatDataTypeUInt, FormatAspectColor, 3, 1, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(0, 1, 2)),
	uncompressed("R8G8B8A8_UINT", FormatDataTypeUInt, FormatAspectColor, 4, 1, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(0, 1, 2, 3)),
	uncompressed("B8G8R8_UINT", FormatDataTypeUInt, FormatAspectColor, 3, 1, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(2, 1, 0)),
	uncompressed("B8G8R8A8_UINT", FormatDataTypeUInt, FormatAspectColor, 4, 1, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(2, 1, 0, 3)),

	uncompressed("R16_SNORM", FormatDataTypeSNorm, FormatAspectColor, 2, 2, FormatLayoutLinear, FormatComponentRed, offsetsR(0)),
	uncompressed("R16G16_SNORM", FormatDataTypeSNorm, FormatAspectColor, 4, 2, FormatLayoutLinear, FormatComponentRedGreen, offsetsRG(0, 2)),
	uncompressed("R16G16B16_SNORM", FormatDataTypeSNorm, FormatAspectColor, 6, 2, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(0, 2, 4)),
	uncompressed("R16G16B16A16_SNORM", FormatDataTypeSNorm, FormatAspectColor, 8, 2, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(0, 2, 4, 6)),

	uncompressed("R16_UNORM", FormatDataTypeUNorm, FormatAspectColor, 2, 2, FormatLayoutLinear, FormatComponentRed, offsetsR(0)),
	uncompressed("R16G16_UNORM", FormatDataTypeUNorm, FormatAspectColor, 4, 2, FormatLayoutLinear, FormatComponentRedGreen, offsetsRG(0, 2)),
	uncompressed("R16G16B16_UNORM", FormatDataTypeUNorm, FormatAspectColor, 6, 2, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(0, 2, 4)),
	uncompressed("R16G16B16A16_UNORM", FormatDataTypeUNorm, FormatAspectColor, 8, 2, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(0, 2, 4, 6)),

	uncompressed("R16_SINT", FormatDataTypeSInt, FormatAspectColor, 2, 2, FormatLayoutLinear, FormatComponentRed, offsetsR(0)),
	uncompressed("R16G16_SINT", FormatDataTypeSInt, FormatAspectColor, 4, 2, FormatLayoutLinear, FormatComponentRedGreen, offsetsRG(0, 2)),
	uncompressed("R16G16B16_SINT", FormatDataTypeSInt, FormatAspectColor, 6, 2, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(0, 2, 4)),
	uncompressed("R16G16B16A16_SINT", FormatDataTypeSInt, FormatAspectColor, 8, 2, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(0, 2, 4, 6)),

	uncompressed("R16_UINT", FormatDataTypeUInt, FormatAspectColor, 2, 2, FormatLayoutLinear, FormatComponentRed, offsetsR(0)),
	uncompressed("R16G16_UINT", FormatDataTypeUInt, FormatAspectColor, 4, 2, FormatLayoutLinear, FormatComponentRedGreen, offsetsRG(0, 2)),
	uncompressed("R16G16B16_UINT", FormatDataTypeUInt, FormatAspectColor, 6, 2, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(0, 2, 4)),
	uncompressed("R16G16B16A16_UINT", FormatDataTypeUInt, FormatAspectColor, 8, 2, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(0, 2, 4, 6)),

	uncompressed("R16_FLOAT", FormatDataTypeFloat, FormatAspectColor, 2, 2, FormatLayoutLinear, FormatComponentRed, offsetsR(0)),
	uncompressed("R16G16_FLOAT", FormatDataTypeFloat, FormatAspectColor, 4, 2, FormatLayoutLinear, FormatComponentRedGreen, offsetsRG(0, 2)),
	uncompressed("R16G16B16_FLOAT", FormatDataTypeFloat, FormatAspectColor, 6, 2, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(0, 2, 4)),
	uncompressed("R16G16B16A16_FLOAT", FormatDataTypeFloat, FormatAspectColor, 8, 2, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(0, 2, 4, 6)),

	uncompressed("R32_SINT", FormatDataTypeSInt, FormatAspectColor, 4, 4, FormatLayoutLinear, FormatComponentRed, offsetsR(0)),
	uncompressed("R32G32_SINT", FormatDataTypeSInt, FormatAspectColor, 8, 4, FormatLayoutLinear, FormatComponentRedGreen, offsetsRG(0, 4)),
	uncompressed("R32G32B32_SINT", FormatDataTypeSInt, FormatAspectColor, 12, 4, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(0, 4, 8)),
	uncompressed("R32G32B32A32_SINT", FormatDataTypeSInt, FormatAspectColor, 16, 4, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(0, 4, 8, 12)),

	uncompressed("R32_UINT", FormatDataTypeUInt, FormatAspectColor, 4, 4, FormatLayoutLinear, FormatComponentRed, offsetsR(0)),
	uncompressed("R32G32_UINT", FormatDataTypeUInt, FormatAspectColor, 8, 4, FormatLayoutLinear, FormatComponentRedGreen, offsetsRG(0, 4)),
	uncompressed("R32G32B32_UINT", FormatDataTypeUInt, FormatAspectColor, 12, 4, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(0, 4, 8)),
	uncompressed("R32G32B32A32_UINT", FormatDataTypeUInt, FormatAspectColor, 16, 4, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(0, 4, 8, 12)),

	uncompressed("R32_FLOAT", FormatDataTypeFloat, FormatAspectColor, 4, 4, FormatLayoutLinear, FormatComponentRed, offsetsR(0)),
	uncompressed("R32G32_FLOAT", FormatDataTypeFloat, FormatAspectColor, 8, 4, FormatLayoutLinear, FormatComponentRedGreen, offsetsRG(0, 4)),
	uncompressed("R32G32B32_FLOAT", FormatDataTypeFloat, FormatAspectColor, 12, 4, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(0, 4, 8)),
	uncompressed("R32G32B32A32_FLOAT", FormatDataTypeFloat, FormatAspectColor, 16, 4, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(0, 4, 8, 12)),

	uncompressed("S8_UINT", FormatDataTypeUInt, FormatAspectStencil, 1, 1, FormatLayoutLinear, FormatComponentStencil, offsetsRG(-1, 0)),
	uncompressed("D16_UNORM", FormatDataTypeUNorm, FormatAspectDepth, 2, 2, FormatLayoutLinear, FormatComponentDepth, offsetsRG(0, -1)),
	uncompressed("D32_FLOAT", FormatDataTypeFloat, FormatAspectDepth, 4, 4, FormatLayoutLinear, FormatComponentDepth, offsetsRG(0, -1)),

	uncompressed("D16_UNORM_S8_UINT", FormatDataTypeUNorm, FormatAspectDepthStencil, 3, 2, FormatLayoutLinear, FormatComponentDepthStencil, offsetsRG(0, 2)),
	uncompressed("D24_UNORM_S8_UINT", FormatDataTypeUNorm, FormatAspectDepthStencil, 4, 3, FormatLayoutLinear, FormatComponentDepthStencil, offsetsRG(0, 3)),
	uncompressed("D32_FLOAT_S8_UINT", FormatDataTypeFloat, FormatAspectDepthStencil, 5, 4, FormatLayoutLinear, FormatComponentDepthStencil, offsetsRG(0, 4)),

	uncompressed("R8_SRGB", FormatDataTypeSRGB, FormatAspectColor, 1, 1, FormatLayoutLinear, FormatComponentRed, offsetsR(0)),
	uncompressed("R8G8_SRGB", FormatDataTypeSRGB, FormatAspectColor, 2, 1, FormatLayoutLinear, FormatComponentRedGreen, offsetsRG(0, 1)),
	uncompressed("R8G8B8_SRGB", FormatDataTypeSRGB, FormatAspectColor, 3, 1, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(0, 1, 2)),
	uncompressed("R8G8B8A8_SRGB", FormatDataTypeSRGB, FormatAspectColor, 4, 1, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(0, 1, 2, 3)),
	uncompressed("B8G8R8_SRGB", FormatDataTypeSRGB, FormatAspectColor, 3, 1, FormatLayoutLinear, FormatComponentRedGreenBlue, offsetsRGB(2, 1, 0)),
	uncompressed("B8G8R8A8_SRGB", FormatDataTypeSRGB, FormatAspectColor, 4, 1, FormatLayoutLinear, FormatComponentRedGreenBlueAlpha, offsetsRGBA(2, 1, 0, 3)),

	// Component size and byte offsets are not retrievable for packed formats.
	uncompressed("R10G10B10A2_UNORM", FormatDataTypeUNorm, FormatAspectColor, 4, -1, FormatLayoutPacked, FormatComponentRedGreenBlueAlpha, offsetsUndefined),
	uncompressed("R11G11B10_FLOAT", FormatDataTypeFloat, FormatAspectColor, 4, -1, FormatLayoutPacked, FormatComponentRedGreenBlue, offsetsUndefined),

	// Non-square blocks are not supported for compressed formats.
	compressed("BC1_RGBA_SRGB", FormatDataTypeSRGB, 8, 4, FormatComponentRedGreenBlueAlpha),
	compressed("BC1_RGBA_UNORM", FormatDataTypeUNorm, 8, 4, FormatComponentRedGreenBlueAlpha),
	compressed("BC1_RGB_SRGB", FormatDataTypeSRGB, 8, 4, FormatComponentRedGreenBlue),
	compressed("BC1_RGB_UNORM", FormatDataTypeUNorm, 8, 4, FormatComponentRedGreenBlue),
	compressed("BC2_SRGB", FormatDataTypeSRGB, 16, 4, FormatComponentRedGreenBlueAlpha),
	compressed("BC2_UNORM", FormatDataTypeUNorm, 16, 4, FormatComponentRedGreenBlueAlpha),
	compressed("BC3_SRGB", FormatDataTypeSRGB, 16, 4, FormatComponentRedGreenBlueAlpha),
	compressed("BC3_UNORM", FormatDataTypeUNorm, 16, 4, FormatComponentRedGreenBlueAlpha),
	compressed("BC4_UNORM", FormatDataTypeUNorm, 8, 4, FormatComponentRed),
	compressed("BC4_SNORM", FormatDataTypeSNorm, 8, 4, FormatComponentRed),
	compressed("BC5_UNORM", FormatDataTypeUNorm, 16, 4, FormatComponentRedGreen),
	compressed("BC5_SNORM", FormatDataTypeSNorm, 16, 4, FormatComponentRedGreen),
	compressed("BC6H_UFLOAT", FormatDataTypeFloat, 16, 4, FormatComponentRedGreenBlue),
	compressed("BC6H_SFLOAT", FormatDataTypeFloat, 16, 4, FormatComponentRedGreenBlue),
	compressed("BC7_UNORM", FormatDataTypeUNorm, 16, 4, FormatComponentRedGreenBlueAlpha),
	compressed("BC7_SRGB", FormatDataTypeSRGB, 16, 4, FormatComponentRedGreenBlueAlpha),
}

func init() {
	if len(formatDescs) != int(FormatCount) {
		panic("grfx: missing format descriptions")
	}
}
