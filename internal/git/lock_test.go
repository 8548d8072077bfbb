package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLock(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	unlock, err := Lock(ctx, dir, time.Second)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, lockFileName))
	require.NoError(t, err)

	// A second holder times out while the first is held.
	_, err = Lock(ctx, dir, 250*time.Millisecond)
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, unlock())

	unlock, err = Lock(ctx, dir, time.Second)
	require.NoError(t, err)
	assert.NoError(t, unlock())
}
