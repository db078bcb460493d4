// Package ppm serializes raw texel buffers into the PPM (P6) wire
// format, the netpbm binary RGB container:
// http://netpbm.sourceforge.net/doc/ppm.html
package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spaghettifunk/pigment/imaging/core"
	"github.com/spaghettifunk/pigment/imaging/grfx"
)

var (
	// ErrInvalidSize is returned for zero-sized images.
	ErrInvalidSize = errors.New("ppm export: invalid size")
	// ErrFormatNotSupported is returned for formats PPM cannot carry:
	// packed or compressed layouts, float data, formats without any RGB
	// component, and channels wider than one byte.
	ErrFormatNotSupported = errors.New("ppm export: format not supported")
)

// convertToUint reinterprets one channel byte as unsigned output.
// Signed representations get a +128 two's-complement bias, not a
// normalized rescale; existing output depends on these exact bytes.
func convertToUint(value byte, dataType grfx.FormatDataType) byte {
	switch dataType {
	case grfx.FormatDataTypeSInt, grfx.FormatDataTypeSNorm:
		return value + 128
	default:
		return value
	}
}

// isOptimalFormat reports whether the texels can be streamed out with
// a single bulk copy: RGB components in order at offsets 0,1,2, no
// alpha, no row padding, and no value conversion needed.
func isOptimalFormat(desc *grfx.FormatDesc, width, rowStride uint32) bool {
	return desc.ComponentBits == grfx.FormatComponentRedGreenBlue &&
		desc.ComponentOffset.Red == 0 && desc.ComponentOffset.Green == 1 && desc.ComponentOffset.Blue == 2 &&
		rowStride == uint32(desc.BytesPerTexel)*width &&
		(desc.DataType == grfx.FormatDataTypeUInt || desc.DataType == grfx.FormatDataTypeUNorm || desc.DataType == grfx.FormatDataTypeSRGB)
}

// ExportFile writes the texels to a PPM file, creating parent
// directories as needed.
func ExportFile(path string, format grfx.Format, texels []byte, width, height, rowStride uint32) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%s: %w", path, core.ErrFileSaveFailed)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, core.ErrFileSaveFailed)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := Export(w, format, texels, width, height, rowStride); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%s: %w", path, core.ErrFileSaveFailed)
	}
	return nil
}

// Export writes the texels to out in PPM (P6) form: an ASCII header
// followed by width*height RGB triplets, row-major. Alpha, when
// present in the source format, is dropped; channels the source format
// lacks are emitted as zero. The caller is responsible for rowStride
// being at least BytesPerTexel*width.
func Export(out io.Writer, format grfx.Format, texels []byte, width, height, rowStride uint32) error {
	if width == 0 || height == 0 {
		return ErrInvalidSize
	}

	desc := grfx.GetFormatDescription(format)

	// Compressed and packed layouts have no per-texel byte offsets.
	if desc.Layout != grfx.FormatLayoutLinear {
		return ErrFormatNotSupported
	}
	if desc.DataType == grfx.FormatDataTypeFloat {
		return ErrFormatNotSupported
	}
	// Only color formats: PPM carries no depth, stencil or alpha.
	if desc.ComponentBits&grfx.FormatComponentRedGreenBlue == 0 {
		return ErrFormatNotSupported
	}
	if desc.BytesPerComponent != 1 {
		return ErrFormatNotSupported
	}

	if _, err := fmt.Fprintf(out, "P6\n%d\n%d\n255\n", width, height); err != nil {
		return err
	}

	// Favor flexibility over performance: only the best-case layout is
	// optimized, everything else walks texels one channel at a time.
	if isOptimalFormat(desc, width, rowStride) {
		_, err := out.Write(texels[:uint64(rowStride)*uint64(height)])
		return err
	}

	bytesPerTexel := uint64(desc.BytesPerTexel)
	row := make([]byte, 0, width*3)
	for y := uint32(0); y < height; y++ {
		row = row[:0]
		rowOffset := uint64(y) * uint64(rowStride)
		for x := uint32(0); x < width; x++ {
			texel := rowOffset + uint64(x)*bytesPerTexel

			if desc.ComponentBits&grfx.FormatComponentRed != 0 {
				row = append(row, convertToUint(texels[texel+uint64(desc.ComponentOffset.Red)], desc.DataType))
			} else {
				row = append(row, 0)
			}

			if desc.ComponentBits&grfx.FormatComponentGreen != 0 {
				row = append(row, convertToUint(texels[texel+uint64(desc.ComponentOffset.Green)], desc.DataType))
			} else {
				row = append(row, 0)
			}

			if desc.ComponentBits&grfx.FormatComponentBlue != 0 {
				row = append(row, convertToUint(texels[texel+uint64(desc.ComponentOffset.Blue)], desc.DataType))
			} else {
				row = append(row, 0)
			}
		}
		if _, err := out.Write(row); err != nil {
			return err
		}
	}

	return nil
}
