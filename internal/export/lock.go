package export

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// lockFileName guards an export directory. The rendering source has a
// single shared frame position, so at most one export may drive it.
const lockFileName = ".xsheet.lock"

func acquireLock(dir string) (*flock.Flock, error) {
	lock := flock.New(filepath.Join(dir, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire export lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another export is already running in %s", dir)
	}
	return lock, nil
}
