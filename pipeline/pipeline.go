/*
Package pipeline wires the imaging packages into a small offline tool:
it loads a source image, generates a mip chain and exports every level
as PPM plus one stacked PNG. With watch enabled it keeps running and
re-exports whenever the source file changes on disk.
*/
package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/spaghettifunk/pigment/imaging/assets"
	"github.com/spaghettifunk/pigment/imaging/assets/loaders"
	"github.com/spaghettifunk/pigment/imaging/bitmap"
	"github.com/spaghettifunk/pigment/imaging/core"
	"github.com/spaghettifunk/pigment/imaging/grfx"
	"github.com/spaghettifunk/pigment/imaging/mipmap"
	"github.com/spaghettifunk/pigment/imaging/ppm"
)

const watchPollInterval = 500 * time.Millisecond

type Pipeline struct {
	config    *Config
	assets    *assets.Manager
	done      chan struct{}
	closeOnce sync.Once
}

func New(config *Config) (*Pipeline, error) {
	manager, err := assets.NewManager()
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		config: config,
		assets: manager,
		done:   make(chan struct{}),
	}, nil
}

func (p *Pipeline) Initialize() error {
	level, err := log.ParseLevel(p.config.LogLevel)
	if err != nil {
		return fmt.Errorf("config: unknown log level %q", p.config.LogLevel)
	}
	core.SetLogLevel(level)

	p.assets.RegisterLoader(assets.ResourceTypeBitmap, loaders.NewBitmapLoader())
	p.assets.RegisterLoader(assets.ResourceTypeMipmap, loaders.NewMipmapLoader())

	if p.config.Watch {
		return p.assets.Initialize(filepath.Dir(p.config.Input))
	}
	return nil
}

// Run exports once, then, with watch enabled, blocks and re-exports on
// every change to the input file until Shutdown is called.
func (p *Pipeline) Run() error {
	if err := p.export(); err != nil {
		return err
	}
	if !p.config.Watch {
		return nil
	}

	core.LogInfo("watching %s", p.config.Input)
	ticker := time.NewTicker(watchPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return nil
		case <-ticker.C:
			for {
				path, ok := p.assets.NextReload()
				if !ok {
					break
				}
				if path != p.config.Input {
					continue
				}
				core.LogInfo("input changed, re-exporting")
				if err := p.export(); err != nil {
					core.LogError("re-export failed: %v", err)
				}
			}
		}
	}
}

// Shutdown is safe to call more than once; the signal handler and a
// caller's deferred cleanup may both reach it.
func (p *Pipeline) Shutdown() error {
	var err error
	p.closeOnce.Do(func() {
		close(p.done)
		err = p.assets.Shutdown()
	})
	return err
}

func (p *Pipeline) export() error {
	resource, err := p.assets.LoadAsset(p.config.Input, assets.ResourceTypeBitmap, nil)
	if err != nil {
		return err
	}
	base, ok := resource.Data.(*bitmap.Bitmap)
	if !ok {
		return fmt.Errorf("asset %s did not decode to a bitmap", p.config.Input)
	}

	levelCount := p.config.LevelCount
	if levelCount == 0 {
		levelCount = mipmap.CalculateLevelCount(base.Width(), base.Height())
	}

	chain, err := mipmap.NewFromBitmapFiltered(base, levelCount, p.config.ResampleFilter())
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(filepath.Base(p.config.Input), filepath.Ext(p.config.Input))

	// PPM only carries 8-bit channels; float chains (HDR inputs) keep
	// their mip data but get no per-level files.
	if bitmap.ChannelDataType(chain.GetFormat()) == bitmap.DataTypeUInt8 {
		exportFormat := grfx.FromBitmapFormat(chain.GetFormat())
		for level := uint32(0); level < chain.LevelCount(); level++ {
			mip := chain.GetMip(level)
			out := filepath.Join(p.config.OutputDir, fmt.Sprintf("%s_mip%d.ppm", stem, level))
			err := ppm.ExportFile(out, exportFormat, mip.Data(), mip.Width(), mip.Height(), mip.RowStride())
			if err != nil {
				return fmt.Errorf("level %d: %w", level, err)
			}
			core.LogDebug("wrote %s (%dx%d)", out, mip.Width(), mip.Height())
		}
	} else {
		core.LogWarn("%s: channels are not 8-bit, skipping per-level PPM export", p.config.Input)
	}

	stacked := filepath.Join(p.config.OutputDir, stem+"_mips.png")
	if err := mipmap.SaveFile(stacked, chain, chain.LevelCount()); err != nil {
		if errors.Is(err, core.ErrUnsupportedOnPlatform) {
			core.LogWarn("%s: no PNG encoding for this layout, skipping stacked image", p.config.Input)
		} else {
			return err
		}
	}

	core.LogInfo("exported %d levels of %s to %s", chain.LevelCount(), p.config.Input, p.config.OutputDir)
	return nil
}
