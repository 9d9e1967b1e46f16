package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	name    string
	loadErr error
	saves   int
}

func (s *memoryStore) LoadThemeName() (string, error) {
	return s.name, s.loadErr
}

func (s *memoryStore) SaveThemeName(name string) error {
	s.name = name
	s.saves++
	return nil
}

func TestManagerRestore(t *testing.T) {
	store := &memoryStore{name: "dark"}
	mgr := NewManager(Light(), store, nil)

	require.NoError(t, mgr.Restore())
	assert.Equal(t, "dark", mgr.Current().Name)
}

func TestManagerRestoreUnknownNameKeepsCurrent(t *testing.T) {
	store := &memoryStore{name: "neon"}
	mgr := NewManager(Light(), store, nil)

	require.NoError(t, mgr.Restore())
	assert.Equal(t, "light", mgr.Current().Name)
}

func TestManagerRestorePropagatesStoreError(t *testing.T) {
	store := &memoryStore{loadErr: errors.New("disk gone")}
	mgr := NewManager(Light(), store, nil)

	require.Error(t, mgr.Restore())
}

func TestManagerSetNamedPersists(t *testing.T) {
	store := &memoryStore{}
	mgr := NewManager(Light(), store, nil)

	require.NoError(t, mgr.SetNamed("brik"))
	assert.Equal(t, "brik", mgr.Current().Name)
	assert.Equal(t, "brik", store.name)
	assert.Equal(t, 1, store.saves)

	require.Error(t, mgr.SetNamed("neon"))
	assert.Equal(t, "brik", mgr.Current().Name)
}

func TestManagerCycleVisitsEveryTheme(t *testing.T) {
	mgr := NewManager(Light(), nil, nil)

	seen := map[string]bool{mgr.Current().Name: true}
	for i := 0; i < len(Names())-1; i++ {
		seen[mgr.Cycle().Name] = true
	}

	assert.Len(t, seen, len(Names()))
}

func TestManagerSubscribersSeeChanges(t *testing.T) {
	mgr := NewManager(Light(), nil, nil)

	var got []string
	mgr.Subscribe(func(next Theme) {
		got = append(got, next.Name)
	})

	require.NoError(t, mgr.SetNamed("dark"))
	require.NoError(t, mgr.SetNamed("light"))
	assert.Equal(t, []string{"dark", "light"}, got)
}
