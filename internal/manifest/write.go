package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"hara/internal/catalog"
	"hara/internal/fileutil"
)

// ErrLocked reports that another process holds the manifest lock.
var ErrLocked = errors.New("manifest is locked by another process")

const fileMode = 0o644

// WriteResult describes a completed Write.
type WriteResult struct {
	Path      string
	Bytes     int
	Unchanged bool
}

// LockPath returns the advisory lock file guarding path.
func LockPath(path string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".lock")
}

// Write replaces the file at path with data. The previous file survives any
// failure. Identical content is left untouched and reported as Unchanged.
func Write(path string, data []byte) (WriteResult, error) {
	result := WriteResult{Path: path, Bytes: len(data)}

	lock := flock.New(LockPath(path))
	ok, err := lock.TryLock()
	if err != nil {
		return result, fmt.Errorf("acquire manifest lock: %w", err)
	}
	if !ok {
		return result, fmt.Errorf("%w: %s", ErrLocked, LockPath(path))
	}
	defer func() {
		_ = lock.Unlock()
	}()

	same, err := fileutil.SameContent(path, data)
	if err != nil {
		return result, fmt.Errorf("compare manifest: %w", err)
	}
	if same {
		result.Unchanged = true
		return result, nil
	}
	if err := fileutil.WriteFileAtomic(path, data, fileMode); err != nil {
		return result, fmt.Errorf("write manifest %s: %w", path, err)
	}
	return result, nil
}

// Read loads the manifest at path, inferring the format from its extension.
func Read(path string) (catalog.Catalog, error) {
	return ReadFormat(path, FormatForPath(path))
}

// ReadFormat loads the manifest at path in the given format.
func ReadFormat(path string, format Format) (catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Decode(data, format)
}
