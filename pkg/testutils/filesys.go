package testutils

import (
	"path"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
)

// TestFileSystem provides an in-memory filesystem with the given
// files (path to content).
func TestFileSystem(files map[string]string) (vfs.FileSystem, error) {
	fs := memoryfs.New()
	for p, content := range files {
		if dir := path.Dir(p); dir != "." && dir != "/" {
			if err := fs.MkdirAll(dir, 0o700); err != nil {
				return nil, err
			}
		}
		if err := vfs.WriteFile(fs, p, []byte(content), 0o600); err != nil {
			return nil, err
		}
	}
	return fs, nil
}
