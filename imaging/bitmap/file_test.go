package bitmap

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/pigment/imaging/core"
)

func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 7, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func TestLoadFromMemory(t *testing.T) {
	b, err := LoadFromMemory(encodeTestPNG(t, 6, 4))
	if err != nil {
		t.Fatalf("LoadFromMemory: %v", err)
	}
	if b.Width() != 6 || b.Height() != 4 {
		t.Fatalf("decoded %dx%d, want 6x4", b.Width(), b.Height())
	}
	if b.Format() != FormatRGBAUInt8 {
		t.Fatalf("Format() = %v, want FormatRGBAUInt8", b.Format())
	}
	px := b.GetPixel8u(3, 2)
	if px[0] != 48 || px[1] != 32 || px[2] != 7 || px[3] != 255 {
		t.Errorf("pixel (3,2) = %v, want [48 32 7 255]", px[:4])
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	if err := os.WriteFile(path, encodeTestPNG(t, 5, 5), 0o644); err != nil {
		t.Fatalf("writing test image: %v", err)
	}

	b, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if b.Width() != 5 || b.Height() != 5 || b.Format() != FormatRGBAUInt8 {
		t.Errorf("decoded %dx%d format %v", b.Width(), b.Height(), b.Format())
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, core.ErrPathDoesNotExist) {
		t.Errorf("got %v, want ErrPathDoesNotExist", err)
	}
}

func TestGetFileProperties(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	if err := os.WriteFile(path, encodeTestPNG(t, 12, 7), 0o644); err != nil {
		t.Fatalf("writing test image: %v", err)
	}

	width, height, format, err := GetFileProperties(path)
	if err != nil {
		t.Fatalf("GetFileProperties: %v", err)
	}
	if width != 12 || height != 7 {
		t.Errorf("properties %dx%d, want 12x7", width, height)
	}
	if format != FormatRGBAUInt8 {
		t.Errorf("format = %v, want FormatRGBAUInt8", format)
	}
}

func TestIsBitmapFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "img.png")
	if err := os.WriteFile(good, encodeTestPNG(t, 2, 2), 0o644); err != nil {
		t.Fatalf("writing test image: %v", err)
	}
	if !IsBitmapFile(good) {
		t.Error("IsBitmapFile = false for a PNG")
	}

	bad := filepath.Join(dir, "not-an-image.txt")
	if err := os.WriteFile(bad, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	if IsBitmapFile(bad) {
		t.Error("IsBitmapFile = true for plain text")
	}
	if IsBitmapFile(filepath.Join(dir, "missing.png")) {
		t.Error("IsBitmapFile = true for a missing file")
	}
}

// encodeTestHDR builds a flat (non-RLE) Radiance file where every
// pixel is RGBE (128, 128, 128, 129), i.e. mid-gray around 1.0.
func encodeTestHDR(width, height int) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n\n-Y %d +X %d\n", height, width)
	for i := 0; i < width*height; i++ {
		buf.Write([]byte{128, 128, 128, 129})
	}
	return buf.Bytes()
}

func TestLoadFromMemoryRadiance(t *testing.T) {
	b, err := LoadFromMemory(encodeTestHDR(2, 2))
	if err != nil {
		t.Fatalf("LoadFromMemory: %v", err)
	}
	if b.Width() != 2 || b.Height() != 2 {
		t.Fatalf("decoded %dx%d, want 2x2", b.Width(), b.Height())
	}
	if b.Format() != FormatRGBAFloat {
		t.Fatalf("Format() = %v, want FormatRGBAFloat", b.Format())
	}
	px := b.GetPixel32f(1, 1)
	if px[0] <= 0 || px[0] > 2 {
		t.Errorf("red channel = %g, want mid-range positive", px[0])
	}
	if px[3] != 1 {
		t.Errorf("alpha = %g, want 1", px[3])
	}
}

func TestGetFilePropertiesRadiance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.hdr")
	if err := os.WriteFile(path, encodeTestHDR(3, 2), 0o644); err != nil {
		t.Fatalf("writing test image: %v", err)
	}

	width, height, format, err := GetFileProperties(path)
	if err != nil {
		t.Fatalf("GetFileProperties: %v", err)
	}
	if width != 3 || height != 2 {
		t.Errorf("properties %dx%d, want 3x2", width, height)
	}
	if format != FormatRGBAFloat {
		t.Errorf("format = %v, want FormatRGBAFloat", format)
	}
}

func TestIsRadianceData(t *testing.T) {
	if !isRadianceData([]byte("#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n")) {
		t.Error("radiance signature not recognized")
	}
	if isRadianceData([]byte("\x89PNG\r\n\x1a\n")) {
		t.Error("PNG magic misread as radiance")
	}
	if isRadianceData([]byte("#?RAD")) {
		t.Error("truncated header misread as radiance")
	}
}

func TestSaveFilePNGRoundTrip(t *testing.T) {
	b, err := Create(4, 4, FormatRGBAUInt8)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := Fill[uint8](b, 200, 100, 50, 255); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := SaveFilePNG(path, b); err != nil {
		t.Fatalf("SaveFilePNG: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !bytes.Equal(loaded.Data(), b.Data()) {
		t.Error("round-tripped pixels differ")
	}
}

func TestSaveFilePNGUnsupportedFormat(t *testing.T) {
	b, err := Create(2, 2, FormatRGBAFloat)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	err = SaveFilePNG(filepath.Join(t.TempDir(), "out.png"), b)
	if !errors.Is(err, core.ErrUnsupportedOnPlatform) {
		t.Errorf("got %v, want ErrUnsupportedOnPlatform", err)
	}
}
