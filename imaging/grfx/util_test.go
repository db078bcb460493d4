package grfx

import (
	"testing"

	"github.com/spaghettifunk/pigment/imaging/bitmap"
)

func TestFromBitmapFormat(t *testing.T) {
	tests := []struct {
		in   bitmap.Format
		want Format
	}{
		{bitmap.FormatRUInt8, FormatR8UNorm},
		{bitmap.FormatRGBAUInt8, FormatR8G8B8A8UNorm},
		{bitmap.FormatRGBUInt16, FormatR16G16B16UNorm},
		{bitmap.FormatRGBAUInt32, FormatR32G32B32A32UInt},
		{bitmap.FormatRGBAFloat, FormatR32G32B32A32Float},
		{bitmap.FormatUndefined, FormatUndefined},
	}
	for _, tt := range tests {
		if got := FromBitmapFormat(tt.in); got != tt.want {
			t.Errorf("FromBitmapFormat(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// The mapped format must agree with the bitmap layout byte for byte, or
// exports straight from bitmap storage would misread texels.
func TestFromBitmapFormatLayoutAgreement(t *testing.T) {
	all := []bitmap.Format{
		bitmap.FormatRUInt8, bitmap.FormatRGUInt8, bitmap.FormatRGBUInt8, bitmap.FormatRGBAUInt8,
		bitmap.FormatRUInt16, bitmap.FormatRGUInt16, bitmap.FormatRGBUInt16, bitmap.FormatRGBAUInt16,
		bitmap.FormatRUInt32, bitmap.FormatRGUInt32, bitmap.FormatRGBUInt32, bitmap.FormatRGBAUInt32,
		bitmap.FormatRFloat, bitmap.FormatRGFloat, bitmap.FormatRGBFloat, bitmap.FormatRGBAFloat,
	}
	for _, bf := range all {
		desc := GetFormatDescription(FromBitmapFormat(bf))
		if uint32(desc.BytesPerTexel) != bitmap.FormatSize(bf) {
			t.Errorf("%v: BytesPerTexel %d != bitmap pixel size %d", bf, desc.BytesPerTexel, bitmap.FormatSize(bf))
		}
		if uint32(desc.BytesPerComponent) != bitmap.ChannelSize(bf) {
			t.Errorf("%v: BytesPerComponent %d != bitmap channel size %d", bf, desc.BytesPerComponent, bitmap.ChannelSize(bf))
		}
	}
}
