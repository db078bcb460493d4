package loaders

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/spaghettifunk/pigment/imaging/assets"
	"github.com/spaghettifunk/pigment/imaging/mipmap"
)

// MipmapLoader decodes vertically stacked mip chain images. It needs
// assets.MipmapParams since the base dimensions are not derivable from
// the file alone.
type MipmapLoader struct{}

func NewMipmapLoader() *MipmapLoader {
	return &MipmapLoader{}
}

func (ml *MipmapLoader) Load(path string, params interface{}) (*assets.Resource, error) {
	typedParams, ok := params.(*assets.MipmapParams)
	if !ok {
		return nil, fmt.Errorf("mipmap loader requires *assets.MipmapParams, got %T", params)
	}

	m, err := mipmap.LoadFile(path, typedParams.BaseWidth, typedParams.BaseHeight, typedParams.LevelCount)
	if err != nil {
		return nil, err
	}

	var dataSize uint64
	for level := uint32(0); level < m.LevelCount(); level++ {
		dataSize += m.GetMip(level).GetFootprintSize(1)
	}

	return &assets.Resource{
		ID:       uuid.New().String(),
		Name:     filepath.Base(path),
		FullPath: path,
		DataSize: dataSize,
		Data:     m,
	}, nil
}

func (ml *MipmapLoader) Unload(*assets.Resource) error {
	return nil
}
