package bitmap

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/spaghettifunk/pigment/imaging/core"
	"github.com/spaghettifunk/pigment/imaging/gmath"
)

// Filter selects the reconstruction kernel used by ScaleTo.
type Filter int

const (
	// FilterDefault is Mitchell-Netravali (B = C = 1/3). Deterministic
	// and documented so resampled output is reproducible.
	FilterDefault Filter = iota
	FilterBox
	FilterTriangle
	FilterCatmullRom
	FilterMitchell
	FilterLanczos3
)

type kernel struct {
	support float64
	at      func(x float64) float64
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}

// bcSpline evaluates the Mitchell family of cubic filters.
func bcSpline(x, b, c float64) float64 {
	x = math.Abs(x)
	if x < 1 {
		return ((12-9*b-6*c)*x*x*x + (-18+12*b+6*c)*x*x + (6 - 2*b)) / 6
	}
	if x < 2 {
		return ((-b-6*c)*x*x*x + (6*b+30*c)*x*x + (-12*b-48*c)*x + (8*b + 24*c)) / 6
	}
	return 0
}

func (f Filter) kernel() kernel {
	switch f {
	case FilterBox:
		return kernel{0.5, func(x float64) float64 {
			if x >= -0.5 && x < 0.5 {
				return 1
			}
			return 0
		}}
	case FilterTriangle:
		return kernel{1, func(x float64) float64 {
			x = math.Abs(x)
			if x < 1 {
				return 1 - x
			}
			return 0
		}}
	case FilterCatmullRom:
		return kernel{2, func(x float64) float64 { return bcSpline(x, 0, 0.5) }}
	case FilterLanczos3:
		return kernel{3, func(x float64) float64 {
			if x = math.Abs(x); x < 3 {
				return sinc(x) * sinc(x/3)
			}
			return 0
		}}
	default: // FilterDefault, FilterMitchell
		return kernel{2, func(x float64) float64 { return bcSpline(x, 1.0/3.0, 1.0/3.0) }}
	}
}

// channelAccess reads and writes one channel as float64, hiding the
// numeric width behind the format's data type.
type channelAccess struct {
	read  func(buf []byte, offset uint64) float64
	write func(buf []byte, offset uint64, v float64)
}

func accessFor(dataType DataType) (channelAccess, bool) {
	switch dataType {
	case DataTypeUInt8:
		return channelAccess{
			read: func(buf []byte, off uint64) float64 { return float64(buf[off]) },
			write: func(buf []byte, off uint64, v float64) {
				buf[off] = uint8(gmath.Clamp(math.Round(v), 0, 255))
			},
		}, true
	case DataTypeUInt16:
		return channelAccess{
			read: func(buf []byte, off uint64) float64 {
				return float64(binary.LittleEndian.Uint16(buf[off:]))
			},
			write: func(buf []byte, off uint64, v float64) {
				binary.LittleEndian.PutUint16(buf[off:], uint16(gmath.Clamp(math.Round(v), 0, 65535)))
			},
		}, true
	case DataTypeUInt32:
		return channelAccess{
			read: func(buf []byte, off uint64) float64 {
				return float64(binary.LittleEndian.Uint32(buf[off:]))
			},
			write: func(buf []byte, off uint64, v float64) {
				binary.LittleEndian.PutUint32(buf[off:], uint32(gmath.Clamp(math.Round(v), 0, math.MaxUint32)))
			},
		}, true
	case DataTypeFloat:
		return channelAccess{
			read: func(buf []byte, off uint64) float64 {
				return float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])))
			},
			write: func(buf []byte, off uint64, v float64) {
				binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(float32(v)))
			},
		}, true
	}
	return channelAccess{}, false
}

// contributor is one source index and its normalized kernel weight.
type contributor struct {
	index  uint32
	weight float64
}

// makeWeights computes, for every destination coordinate along one
// axis, the contributing source coordinates and weights. Source
// indices are clamped to the edge.
func makeWeights(srcSize, dstSize uint32, k kernel) [][]contributor {
	scale := float64(srcSize) / float64(dstSize)
	filterScale := scale
	if filterScale < 1 {
		filterScale = 1
	}
	support := k.support * filterScale

	out := make([][]contributor, dstSize)
	for d := uint32(0); d < dstSize; d++ {
		center := (float64(d)+0.5)*scale - 0.5
		lo := int(math.Floor(center - support))
		hi := int(math.Ceil(center + support))

		var sum float64
		contribs := make([]contributor, 0, hi-lo+1)
		for i := lo; i <= hi; i++ {
			w := k.at((float64(i) - center) / filterScale)
			if w == 0 {
				continue
			}
			clamped := uint32(gmath.Clamp(i, 0, int(srcSize)-1))
			contribs = append(contribs, contributor{index: clamped, weight: w})
			sum += w
		}
		for i := range contribs {
			contribs[i].weight /= sum
		}
		out[d] = contribs
	}
	return out
}

// ScaleTo resamples the bitmap into dst, which must already exist with
// the same format and its own dimensions and row stride set. The
// resampler is a separable per-channel kernel filter with
// clamp-to-edge addressing; it handles downscale, upscale and 1:1.
func (b *Bitmap) ScaleTo(dst *Bitmap, filter Filter) error {
	if dst == nil {
		return fmt.Errorf("nil target bitmap: %w", core.ErrResizeFailed)
	}
	if dst.format != b.format {
		return core.ErrInvalidFormat
	}
	if !b.IsOk() || !dst.IsOk() {
		return fmt.Errorf("source or target bitmap not valid: %w", core.ErrResizeFailed)
	}

	access, ok := accessFor(ChannelDataType(b.format))
	if !ok {
		return core.ErrInvalidFormat
	}

	k := filter.kernel()
	channels := b.channelCount
	channelSize := uint64(ChannelSize(b.format))

	srcW, srcH := b.width, b.height
	dstW, dstH := dst.width, dst.height

	// Horizontal pass into an intermediate dstW x srcH plane, then a
	// vertical pass into the target.
	xWeights := makeWeights(srcW, dstW, k)
	yWeights := makeWeights(srcH, dstH, k)

	temp := make([]float64, uint64(dstW)*uint64(srcH)*uint64(channels))

	for y := uint32(0); y < srcH; y++ {
		rowOffset := uint64(y) * uint64(b.rowStride)
		for x := uint32(0); x < dstW; x++ {
			base := (uint64(y)*uint64(dstW) + uint64(x)) * uint64(channels)
			for _, c := range xWeights[x] {
				pixelOffset := rowOffset + uint64(c.index)*uint64(b.pixelStride)
				for ch := uint32(0); ch < channels; ch++ {
					temp[base+uint64(ch)] += c.weight * access.read(b.data, pixelOffset+uint64(ch)*channelSize)
				}
			}
		}
	}

	acc := make([]float64, channels)
	for y := uint32(0); y < dstH; y++ {
		rowOffset := uint64(y) * uint64(dst.rowStride)
		for x := uint32(0); x < dstW; x++ {
			for ch := range acc {
				acc[ch] = 0
			}
			for _, c := range yWeights[y] {
				base := (uint64(c.index)*uint64(dstW) + uint64(x)) * uint64(channels)
				for ch := uint32(0); ch < channels; ch++ {
					acc[ch] += c.weight * temp[base+uint64(ch)]
				}
			}
			pixelOffset := rowOffset + uint64(x)*uint64(dst.pixelStride)
			for ch := uint32(0); ch < channels; ch++ {
				access.write(dst.data, pixelOffset+uint64(ch)*channelSize, acc[ch])
			}
		}
	}

	return nil
}
