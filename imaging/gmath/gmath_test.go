package gmath

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %d", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42, 0, 10) = %d", got)
	}
	if got := Clamp(1.5, 0.0, 1.0); got != 1.0 {
		t.Errorf("Clamp(1.5, 0, 1) = %g", got)
	}
}

func TestRoundUp(t *testing.T) {
	tests := []struct {
		value    uint32
		multiple uint32
		want     uint32
	}{
		{0, 4, 0},
		{1, 4, 4},
		{4, 4, 4},
		{5, 4, 8},
		{9, 256, 256},
		{7, 0, 7},
		{7, 1, 7},
	}
	for _, tt := range tests {
		if got := RoundUp(tt.value, tt.multiple); got != tt.want {
			t.Errorf("RoundUp(%d, %d) = %d, want %d", tt.value, tt.multiple, got, tt.want)
		}
	}
}
