package assets

// ResourceType identifies which loader handles an asset.
type ResourceType int

const (
	// ResourceTypeBitmap is a single decoded image.
	ResourceTypeBitmap ResourceType = iota
	// ResourceTypeMipmap is a vertically stacked mip chain image.
	ResourceTypeMipmap
)

// Resource is what every loader produces: decoded data plus enough
// metadata to identify and reload it.
type Resource struct {
	// ID uniquely identifies this loaded instance; it changes on reload.
	ID string
	// Name is the caller-facing asset name.
	Name string
	// FullPath is the on-disk location the asset came from.
	FullPath string
	// DataSize is the decoded payload size in bytes.
	DataSize uint64
	// Data holds the decoded asset (*bitmap.Bitmap or *mipmap.Mipmap).
	Data interface{}
}

// MipmapParams carries the out-of-band dimensions a stacked mip file
// cannot describe by itself.
type MipmapParams struct {
	BaseWidth  uint32
	BaseHeight uint32
	LevelCount uint32
}

// Loader decodes one resource type from disk.
type Loader interface {
	Load(path string, params interface{}) (*Resource, error)
	Unload(*Resource) error
}
