package loaders

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/spaghettifunk/pigment/imaging/assets"
	"github.com/spaghettifunk/pigment/imaging/bitmap"
)

// BitmapLoader decodes single images into bitmaps.
type BitmapLoader struct{}

func NewBitmapLoader() *BitmapLoader {
	return &BitmapLoader{}
}

func (bl *BitmapLoader) Load(path string, params interface{}) (*assets.Resource, error) {
	b, err := bitmap.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return &assets.Resource{
		ID:       uuid.New().String(),
		Name:     filepath.Base(path),
		FullPath: path,
		DataSize: b.GetFootprintSize(1),
		Data:     b,
	}, nil
}

func (bl *BitmapLoader) Unload(*assets.Resource) error {
	return nil
}
