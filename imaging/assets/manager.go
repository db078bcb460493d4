package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/pigment/imaging/containers"
	"github.com/spaghettifunk/pigment/imaging/core"
)

// reloadQueueSize bounds how many pending file changes are remembered
// between pipeline runs.
const reloadQueueSize = 128

type assetInfo struct {
	Path       string
	Type       ResourceType
	Params     interface{}
	LastLoaded time.Time
}

// Manager loads assets through registered loaders, caches the results,
// and watches the asset directory so changed files can be reloaded.
type Manager struct {
	assets    map[string]assetInfo
	resources map[string]*Resource
	loaders   map[ResourceType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	reloads  *containers.RingQueue[string]
}

func NewManager() (*Manager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Manager{
		assets:    make(map[string]assetInfo),
		resources: make(map[string]*Resource),
		loaders:   make(map[ResourceType]Loader),
		fsnotify:  fsWatch,
		reloads:   containers.NewRingQueue[string](reloadQueueSize),
		done:      make(chan struct{}),
	}, nil
}

// Initialize starts the watch loop over the given asset directory and
// all of its sub-directories.
func (m *Manager) Initialize(assetsDir string) error {
	go m.start()
	return m.addRecursive(assetsDir)
}

// RegisterLoader installs the loader used for one resource type.
func (m *Manager) RegisterLoader(resourceType ResourceType, loader Loader) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.loaders[resourceType] = loader
}

func (m *Manager) addRecursive(name string) error {
	m.mutex.RLock()
	closed := m.isClosed
	m.mutex.RUnlock()
	if closed {
		return errors.New("asset manager already closed")
	}
	return filepath.Walk(name, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return m.fsnotify.Add(path)
		}
		return nil
	})
}

func (m *Manager) start() {
	for {
		select {
		case <-m.done:
			return
		case event, ok := <-m.fsnotify.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			m.mutex.Lock()
			if _, tracked := m.assets[event.Name]; tracked {
				if err := m.reloads.Enqueue(event.Name); err != nil {
					core.LogWarn("reload queue full, dropping change for %s", event.Name)
				}
			}
			m.mutex.Unlock()
		case err, ok := <-m.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %v", err)
		}
	}
}

// LoadAsset loads (or reloads) a file through the loader registered
// for its resource type and caches the result.
func (m *Manager) LoadAsset(path string, resourceType ResourceType, params interface{}) (*Resource, error) {
	m.mutex.RLock()
	loader, exists := m.loaders[resourceType]
	m.mutex.RUnlock()
	if !exists {
		return nil, fmt.Errorf("no loader registered for resource type %d", resourceType)
	}

	resource, err := loader.Load(path, params)
	if err != nil {
		return nil, err
	}

	m.mutex.Lock()
	m.assets[path] = assetInfo{
		Path:       path,
		Type:       resourceType,
		Params:     params,
		LastLoaded: time.Now(),
	}
	m.resources[path] = resource
	m.mutex.Unlock()

	core.LogDebug("loaded asset %s (%d bytes)", path, resource.DataSize)
	return resource, nil
}

// GetResource returns the cached resource for a path, if any.
func (m *Manager) GetResource(path string) (*Resource, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	r, ok := m.resources[path]
	return r, ok
}

// NextReload pops the next changed asset path, reporting false when no
// changes are pending.
func (m *Manager) NextReload() (string, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	path, err := m.reloads.Dequeue()
	if err != nil {
		return "", false
	}
	return path, true
}

// ReloadAsset re-runs the loader an asset was originally loaded with.
func (m *Manager) ReloadAsset(path string) (*Resource, error) {
	m.mutex.RLock()
	info, tracked := m.assets[path]
	m.mutex.RUnlock()
	if !tracked {
		return nil, fmt.Errorf("asset not tracked: %s", path)
	}
	return m.LoadAsset(info.Path, info.Type, info.Params)
}

// UnloadAsset drops an asset from the cache.
func (m *Manager) UnloadAsset(path string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	info, tracked := m.assets[path]
	if !tracked {
		return nil
	}
	if loader, ok := m.loaders[info.Type]; ok {
		if err := loader.Unload(m.resources[path]); err != nil {
			return err
		}
	}
	delete(m.assets, path)
	delete(m.resources, path)
	return nil
}

// Shutdown stops the watch loop and releases the watcher. Repeated
// calls are no-ops.
func (m *Manager) Shutdown() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.isClosed {
		return nil
	}
	m.isClosed = true
	close(m.done)
	return m.fsnotify.Close()
}
