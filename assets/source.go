package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spaghettifunk/ambientcg"
)

/**
 * @brief A ByteSource backed by a directory on the local filesystem,
 * typically the application's assets folder. Asset paths are
 * slash-separated and resolved relative to the root.
 */
type FileSource struct {
	root string
}

func NewFileSource(root string) *FileSource {
	return &FileSource{root: root}
}

func (fs *FileSource) resolve(path string) string {
	return filepath.Join(fs.root, filepath.FromSlash(path))
}

func (fs *FileSource) ReadBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(fs.resolve(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ambientcg.ErrNotFound, path)
		}
		return nil, err
	}
	return data, nil
}

func (fs *FileSource) Exists(path string) bool {
	_, err := os.Stat(fs.resolve(path))
	return err == nil
}
