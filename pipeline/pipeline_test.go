package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPipelineExport(t *testing.T) {
	dir := t.TempDir()

	input := filepath.Join(dir, "tex.png")
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding input: %v", err)
	}
	if err := os.WriteFile(input, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	outDir := filepath.Join(dir, "out")
	cfg := &Config{
		Input:      input,
		OutputDir:  outDir,
		LevelCount: 3,
		Filter:     "box",
		LogLevel:   "error",
	}

	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Shutdown()

	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := p.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for level := 0; level < 3; level++ {
		out := filepath.Join(outDir, fmt.Sprintf("tex_mip%d.ppm", level))
		raw, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("level %d output missing: %v", level, err)
		}
		size := 8 >> level
		wantHeader := fmt.Sprintf("P6\n%d\n%d\n255\n", size, size)
		if !bytes.HasPrefix(raw, []byte(wantHeader)) {
			t.Errorf("level %d header = %q, want prefix %q", level, raw[:min(len(raw), 16)], wantHeader)
		}
	}

	if _, err := os.Stat(filepath.Join(outDir, "tex_mips.png")); err != nil {
		t.Errorf("stacked chain image missing: %v", err)
	}
}

func TestPipelineExportHDRInput(t *testing.T) {
	dir := t.TempDir()

	// Flat (non-RLE) Radiance file, every pixel RGBE (128, 128, 128, 129).
	input := filepath.Join(dir, "env.hdr")
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n\n-Y 2 +X 2\n")
	for i := 0; i < 4; i++ {
		buf.Write([]byte{128, 128, 128, 129})
	}
	if err := os.WriteFile(input, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatalf("creating output dir: %v", err)
	}
	cfg := &Config{
		Input:      input,
		OutputDir:  outDir,
		LevelCount: 2,
		Filter:     "box",
		LogLevel:   "error",
	}

	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Shutdown()

	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := p.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Float chains carry no 8-bit channels, so no per-level files come out.
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".ppm" {
			t.Errorf("unexpected per-level export %s", e.Name())
		}
	}
}

func TestPipelineShutdownTwice(t *testing.T) {
	cfg := &Config{
		Input:      filepath.Join(t.TempDir(), "missing.png"),
		OutputDir:  t.TempDir(),
		LevelCount: 1,
		Filter:     "box",
		LogLevel:   "error",
	}

	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if err := p.Shutdown(); err != nil {
		t.Fatalf("first Shutdown: %v", err)
	}
	if err := p.Shutdown(); err != nil {
		t.Fatalf("second Shutdown: %v", err)
	}
}
