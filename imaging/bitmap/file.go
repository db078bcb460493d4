package bitmap

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	_ "image/jpeg"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/spaghettifunk/pigment/imaging/core"
)

// radianceSig is the magic prefix of a Radiance HDR file.
const radianceSig = "#?RADIANCE"

func isRadianceData(data []byte) bool {
	return len(data) >= len(radianceSig) && bytes.Equal(data[:len(radianceSig)], []byte(radianceSig))
}

// GetFileProperties probes a file cheaply: only the signature and the
// container header are read, the pixel payload stays on disk. The
// result format is forced to 4 channels — float RGBA for Radiance HDR
// files, 8-bit RGBA for everything else.
func GetFileProperties(path string) (width, height uint32, format Format, err error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, FormatUndefined, core.ErrPathDoesNotExist
		}
		return 0, 0, FormatUndefined, fmt.Errorf("%s: %w", path, core.ErrFileLoadFailed)
	}
	defer f.Close()

	sniff := make([]byte, len(radianceSig))
	n, _ := io.ReadFull(f, sniff)
	header := io.MultiReader(bytes.NewReader(sniff[:n]), f)

	if isRadianceData(sniff[:n]) {
		cfg, err := rgbe.DecodeConfig(header)
		if err != nil {
			return 0, 0, FormatUndefined, fmt.Errorf("%s: %w", path, core.ErrFileLoadFailed)
		}
		return uint32(cfg.Width), uint32(cfg.Height), FormatRGBAFloat, nil
	}

	cfg, _, err := image.DecodeConfig(header)
	if err != nil {
		return 0, 0, FormatUndefined, fmt.Errorf("%s: %w", path, core.ErrFileLoadFailed)
	}
	return uint32(cfg.Width), uint32(cfg.Height), FormatRGBAUInt8, nil
}

// IsBitmapFile reports whether the file holds an image this package
// can decode.
func IsBitmapFile(path string) bool {
	_, _, _, err := GetFileProperties(path)
	return err == nil
}

// LoadFile decodes an image file into a bitmap, forcing the result to
// 4 channels. Radiance HDR files (sniffed via the 10-byte magic before
// any full decode) produce float RGBA; everything else produces 8-bit
// RGBA.
func LoadFile(path string) (*Bitmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.ErrPathDoesNotExist
		}
		core.LogError("failed to open file '%s'", path)
		return nil, fmt.Errorf("%s: %w", path, core.ErrFileLoadFailed)
	}

	b, err := LoadFromMemory(data)
	if err != nil {
		core.LogError("failed to decode file '%s'", path)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// LoadFromMemory decodes an in-memory image the same way LoadFile
// does.
func LoadFromMemory(data []byte) (*Bitmap, error) {
	if isRadianceData(data) {
		return decodeRadiance(data)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, core.ErrFileLoadFailed
	}

	bounds := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	return newOwned(uint32(bounds.Dx()), uint32(bounds.Dy()), FormatRGBAUInt8, nrgba.Pix)
}

func decodeRadiance(data []byte) (*Bitmap, error) {
	img, err := rgbe.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, core.ErrFileLoadFailed
	}
	hdrImg, ok := img.(hdr.Image)
	if !ok {
		return nil, core.ErrFileLoadFailed
	}

	bounds := hdrImg.Bounds()
	width := uint32(bounds.Dx())
	height := uint32(bounds.Dy())

	b, err := Create(width, height, FormatRGBAFloat)
	if err != nil {
		return nil, err
	}
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, g, bl, _ := hdrImg.HDRAt(bounds.Min.X+x, bounds.Min.Y+y).HDRRGBA()
			pixel := b.GetPixel32f(uint32(x), uint32(y))
			pixel[0] = float32(r)
			pixel[1] = float32(g)
			pixel[2] = float32(bl)
			pixel[3] = 1
		}
	}
	return b, nil
}

// SaveFilePNG encodes the bitmap to a PNG file, honoring channel count
// and row stride. Layouts PNG cannot express report
// ErrUnsupportedOnPlatform.
func SaveFilePNG(path string, b *Bitmap) error {
	if !b.IsOk() {
		return core.ErrInvalidFormat
	}

	img, err := toStdImage(b)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, core.ErrFileSaveFailed)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("%s: %w", path, core.ErrFileSaveFailed)
	}
	return nil
}

func toStdImage(b *Bitmap) (image.Image, error) {
	w := int(b.width)
	h := int(b.height)

	switch b.format {
	case FormatRUInt8:
		return &image.Gray{Pix: b.data, Stride: int(b.rowStride), Rect: image.Rect(0, 0, w, h)}, nil

	case FormatRGBAUInt8:
		return &image.NRGBA{Pix: b.data, Stride: int(b.rowStride), Rect: image.Rect(0, 0, w, h)}, nil

	case FormatRGBUInt8:
		out := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := uint32(0); y < b.height; y++ {
			for x := uint32(0); x < b.width; x++ {
				p := b.GetPixel8u(x, y)
				o := out.PixOffset(int(x), int(y))
				out.Pix[o+0] = p[0]
				out.Pix[o+1] = p[1]
				out.Pix[o+2] = p[2]
				out.Pix[o+3] = 0xff
			}
		}
		return out, nil

	case FormatRUInt16:
		// Gray16 stores big-endian samples.
		out := image.NewGray16(image.Rect(0, 0, w, h))
		for y := uint32(0); y < b.height; y++ {
			for x := uint32(0); x < b.width; x++ {
				v := b.GetPixel16u(x, y)[0]
				o := out.PixOffset(int(x), int(y))
				out.Pix[o+0] = uint8(v >> 8)
				out.Pix[o+1] = uint8(v)
			}
		}
		return out, nil

	case FormatRGBAUInt16:
		out := image.NewNRGBA64(image.Rect(0, 0, w, h))
		for y := uint32(0); y < b.height; y++ {
			for x := uint32(0); x < b.width; x++ {
				p := b.GetPixel16u(x, y)
				o := out.PixOffset(int(x), int(y))
				for c := 0; c < 4; c++ {
					out.Pix[o+2*c+0] = uint8(p[c] >> 8)
					out.Pix[o+2*c+1] = uint8(p[c])
				}
			}
		}
		return out, nil
	}

	return nil, fmt.Errorf("PNG encode of %d-channel %v data: %w", b.channelCount, ChannelDataType(b.format), core.ErrUnsupportedOnPlatform)
}
