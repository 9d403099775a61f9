package config

import (
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// acquireLock takes an exclusive file lock at lockPath, retrying until
// timeout. The returned func releases it.
func acquireLock(lockPath string, timeout time.Duration) (func(), error) {
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("cannot acquire config lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("config is locked by another process (lock: %s)", lockPath)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
