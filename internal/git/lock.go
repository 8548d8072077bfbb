package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const (
	lockFileName  = "wt.lock"
	lockRetryWait = 100 * time.Millisecond
)

// Lock takes an exclusive lock on <commonDir>/wt.lock so that only one wt
// process at a time runs worktree-mutating git commands against a
// repository. It waits up to timeout. The returned func releases the lock.
func Lock(ctx context.Context, commonDir string, timeout time.Duration) (func() error, error) {
	fl := flock.New(filepath.Join(commonDir, lockFileName))

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, lockRetryWait)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("acquire repository lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	return fl.Unlock, nil
}
