package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/ambientcg"
	"github.com/spaghettifunk/ambientcg/core"
)

type AssetInfo struct {
	Path     string
	Slot     ambientcg.Slot
	LastSeen time.Time
}

/**
 * @brief Watches a materials root for changes to slot files and keeps an
 * index of what is on disk. Every time a slot file appears, changes or
 * disappears, the pack directory it belongs to is published on the
 * invalidation channel so callers can reload the affected material.
 */
type AssetManager struct {
	assets map[string]AssetInfo

	mutex sync.RWMutex

	done          chan struct{}
	fsnotify      *fsnotify.Watcher
	isClosed      bool
	invalidations chan string
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &AssetManager{
		assets:        make(map[string]AssetInfo),
		fsnotify:      fsWatch,
		invalidations: make(chan string, 16),
		done:          make(chan struct{}),
	}, nil
}

// Initialize indexes the materials root and starts watching it and all of
// its subdirectories.
func (am *AssetManager) Initialize(materialsDir string) error {
	go am.start()

	return am.addRecursive(materialsDir)
}

// Invalidations returns the channel of pack directories whose slot files
// changed on disk. Events are dropped when nobody drains the channel.
func (am *AssetManager) Invalidations() <-chan string {
	return am.invalidations
}

// Slots returns the indexed slot files of one pack directory.
func (am *AssetManager) Slots(packDir string) []AssetInfo {
	am.mutex.RLock()
	defer am.mutex.RUnlock()

	var out []AssetInfo
	for _, info := range am.assets {
		if filepath.Dir(info.Path) == packDir {
			out = append(out, info)
		}
	}
	return out
}

func (am *AssetManager) Close() error {
	if am.isClosed {
		return errors.New("asset manager already closed")
	}
	am.isClosed = true
	close(am.done)
	return nil
}

// addRecursive starts watching the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	if am.isClosed {
		return errors.New("asset manager already closed")
	}
	return am.watchRecursive(name, false)
}

func (am *AssetManager) start() {
	for {
		select {

		case e := <-am.fsnotify.Events:
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					am.watchRecursive(e.Name, false)
				}
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(e.Name)
			}
			// A deleted path cannot be stat'ed, so treat every removal as
			// both a possible watch entry and a possible slot file.
			if e.Op&fsnotify.Remove != 0 {
				am.removeAsset(e.Name)
				am.fsnotify.Remove(e.Name)
			}

		case e := <-am.fsnotify.Errors:
			if e != nil {
				core.LogError(e.Error())
			}

		case <-am.done:
			am.fsnotify.Close()
			close(am.invalidations)
			return
		}
	}
}

// watchRecursive adds or removes all directories under the given one on the
// watch list and indexes the slot files it walks over.
func (am *AssetManager) watchRecursive(path string, unWatch bool) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if unWatch {
				if err = am.fsnotify.Remove(walkPath); err != nil {
					return err
				}
			} else {
				if err = am.fsnotify.Add(walkPath); err != nil {
					return err
				}
			}
		} else {
			am.indexSlotFile(walkPath)
		}
		return nil
	})
}

func (am *AssetManager) handleFileEvent(path string) {
	if am.indexSlotFile(path) {
		am.invalidate(filepath.Dir(path))
	}
}

// indexSlotFile records a slot file in the index. Non-slot files are
// ignored. Reports whether the path was a slot file.
func (am *AssetManager) indexSlotFile(path string) bool {
	slot, ok := slotFromPath(path)
	if !ok {
		return false
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.assets[path] = AssetInfo{
		Path:     path,
		Slot:     slot,
		LastSeen: time.Now(),
	}
	return true
}

func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	_, existed := am.assets[path]
	delete(am.assets, path)
	am.mutex.Unlock()

	if existed {
		am.invalidate(filepath.Dir(path))
	}
}

func (am *AssetManager) invalidate(packDir string) {
	select {
	case am.invalidations <- packDir:
	default:
		core.LogWarn("invalidation channel full, dropping event for %s", packDir)
	}
}

// slotFromPath parses the slot out of an AmbientCG slot file name such as
// "Bricks090_2K-JPG_Roughness.jpg".
func slotFromPath(path string) (ambientcg.Slot, bool) {
	base := filepath.Base(path)
	if filepath.Ext(base) != ".jpg" {
		return "", false
	}
	base = strings.TrimSuffix(base, ".jpg")
	idx := strings.LastIndex(base, "_")
	if idx < 0 {
		return "", false
	}
	slot := ambientcg.Slot(base[idx+1:])
	for _, s := range ambientcg.Slots {
		if slot == s {
			return slot, true
		}
	}
	return "", false
}
