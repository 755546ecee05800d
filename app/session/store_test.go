package session

import (
	"testing"
	"time"

	"gpa-tracker/app/catalog"
	"gpa-tracker/app/csvimport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAcquire(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	store := NewStore(c, time.Hour)

	first, created := store.Acquire("")
	assert.True(t, created)
	assert.NotEmpty(t, first.ID)

	again, created := store.Acquire(first.ID)
	assert.False(t, created)
	assert.Same(t, first, again)

	other, created := store.Acquire("does-not-exist")
	assert.True(t, created)
	assert.NotEqual(t, first.ID, other.ID)
	assert.Equal(t, 2, store.Len())

	_, ok := store.Get(first.ID)
	assert.True(t, ok)
}

func TestStoreSweep(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	store := NewStore(c, 30*time.Minute)

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	stale, _ := store.Acquire("")
	now = now.Add(20 * time.Minute)
	fresh, _ := store.Acquire("")

	now = now.Add(15 * time.Minute)
	assert.Equal(t, 1, store.Sweep())
	_, ok := store.Get(stale.ID)
	assert.False(t, ok)
	_, ok = store.Get(fresh.ID)
	assert.True(t, ok)

	// touching a session keeps it alive
	now = now.Add(10 * time.Minute)
	store.Acquire(fresh.ID)
	now = now.Add(25 * time.Minute)
	assert.Equal(t, 0, store.Sweep())
}

func TestStoreSweepDisabled(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	store := NewStore(c, 0)
	store.Acquire("")
	store.now = func() time.Time { return time.Now().Add(1000 * time.Hour) }
	assert.Equal(t, 0, store.Sweep())
}

func TestStoreNotBlockedByImport(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	store := NewStore(c, time.Hour)

	busy, _ := store.Acquire("")
	idle, _ := store.Acquire("")

	started := make(chan struct{})
	release := make(chan struct{})
	imported := make(chan error, 1)
	go func() {
		_, err := busy.ImportAttendance(1, func() ([]csvimport.Row, error) {
			close(started)
			<-release
			return csvimport.Parse(export), nil
		})
		imported <- err
	}()
	<-started

	done := make(chan struct{})
	go func() {
		store.Sweep()
		again, created := store.Acquire(idle.ID)
		assert.False(t, created)
		assert.Same(t, idle, again)
		store.Acquire(busy.ID)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("store calls waited on an in-flight import")
	}

	close(release)
	require.NoError(t, <-imported)
}
