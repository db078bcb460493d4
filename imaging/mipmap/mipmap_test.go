package mipmap

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/pigment/imaging/bitmap"
	"github.com/spaghettifunk/pigment/imaging/core"
)

func TestCalculateLevelCount(t *testing.T) {
	tests := []struct {
		width  uint32
		height uint32
		want   uint32
	}{
		{256, 256, 9},
		{256, 128, 8},
		{300, 200, 8},
		{1, 1, 1},
		{2, 1, 1},
		{1, 2, 1},
		{0, 5, 0},
		{5, 0, 0},
		{0, 0, 0},
		{1024, 1, 1},
	}
	for _, tt := range tests {
		if got := CalculateLevelCount(tt.width, tt.height); got != tt.want {
			t.Errorf("CalculateLevelCount(%d, %d) = %d, want %d", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	m, err := New(16, 16, bitmap.FormatRGBAUInt8, 5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !m.IsOk() {
		t.Fatal("IsOk() = false")
	}
	if m.LevelCount() != 5 {
		t.Fatalf("LevelCount() = %d, want 5", m.LevelCount())
	}
	if m.GetFormat() != bitmap.FormatRGBAUInt8 {
		t.Errorf("GetFormat() = %v", m.GetFormat())
	}

	wantDims := []struct{ w, h uint32 }{{16, 16}, {8, 8}, {4, 4}, {2, 2}, {1, 1}}
	for level, want := range wantDims {
		if m.GetWidth(uint32(level)) != want.w || m.GetHeight(uint32(level)) != want.h {
			t.Errorf("level %d is %dx%d, want %dx%d",
				level, m.GetWidth(uint32(level)), m.GetHeight(uint32(level)), want.w, want.h)
		}
	}
}

func TestNewTruncatesLevelCount(t *testing.T) {
	m, err := New(8, 8, bitmap.FormatRUInt8, 32)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.LevelCount() != 4 {
		t.Errorf("LevelCount() = %d, want 4", m.LevelCount())
	}
}

func TestNewRejectsZeroDimensions(t *testing.T) {
	if _, err := New(0, 8, bitmap.FormatRUInt8, 1); !errors.Is(err, core.ErrInvalidFormat) {
		t.Errorf("zero width: got %v, want ErrInvalidFormat", err)
	}
	if _, err := New(8, 8, bitmap.FormatUndefined, 1); !errors.Is(err, core.ErrInvalidFormat) {
		t.Errorf("undefined format: got %v, want ErrInvalidFormat", err)
	}
}

// All levels must be views into one allocation, laid out back to back.
func TestLevelsShareOneAllocation(t *testing.T) {
	m, err := New(8, 8, bitmap.FormatRGBAUInt8, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	wantTotal := uint64(0)
	for level := uint32(0); level < m.LevelCount(); level++ {
		wantTotal += m.GetMip(level).GetFootprintSize(1)
	}
	if uint64(len(m.data)) != wantTotal {
		t.Fatalf("allocation is %d bytes, levels need %d", len(m.data), wantTotal)
	}

	// Writing through a level view must land in the shared buffer.
	mip1 := m.GetMip(1)
	mip1.GetPixel8u(0, 0)[0] = 0xAB
	level0Size := m.GetMip(0).GetFootprintSize(1)
	if m.data[level0Size] != 0xAB {
		t.Error("level 1 write did not land after level 0 in the shared buffer")
	}
}

func TestGetMipOutOfRange(t *testing.T) {
	m, err := New(4, 4, bitmap.FormatRUInt8, 0x7FFFFFFF)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.GetMip(m.LevelCount()) != nil {
		t.Error("GetMip past the chain returned non-nil")
	}
	if m.GetWidth(99) != 0 || m.GetHeight(99) != 0 {
		t.Error("dimensions past the chain are not zero")
	}
}

func TestNewFromBitmap(t *testing.T) {
	base, err := bitmap.Create(8, 8, bitmap.FormatRGBAUInt8)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := bitmap.Fill[uint8](base, 80, 90, 100, 255); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	m, err := NewFromBitmap(base, 4)
	if err != nil {
		t.Fatalf("NewFromBitmap: %v", err)
	}
	if m.LevelCount() != 4 {
		t.Fatalf("LevelCount() = %d, want 4", m.LevelCount())
	}

	// A constant base stays constant at every level.
	for level := uint32(0); level < m.LevelCount(); level++ {
		mip := m.GetMip(level)
		for it := mip.PixelIterator(); !it.Done(); it.Next() {
			px := it.Pixel8u()
			if px[0] != 80 || px[1] != 90 || px[2] != 100 || px[3] != 255 {
				t.Fatalf("level %d pixel (%d,%d) = %v", level, it.X(), it.Y(), px[:4])
			}
		}
	}
}

func TestNewFromBitmapNonSquare(t *testing.T) {
	base, err := bitmap.Create(12, 5, bitmap.FormatRUInt8)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	m, err := NewFromBitmap(base, 0xFFFFFFFF)
	if err != nil {
		t.Fatalf("NewFromBitmap: %v", err)
	}
	if m.LevelCount() != 3 {
		t.Fatalf("LevelCount() = %d, want 3", m.LevelCount())
	}
	if m.GetWidth(2) != 3 || m.GetHeight(2) != 1 {
		t.Errorf("last level is %dx%d, want 3x1", m.GetWidth(2), m.GetHeight(2))
	}
}
