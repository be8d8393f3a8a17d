// Package integration exercises the engine end to end against the real
// alias file store backed by an in-memory filesystem.
package integration

import (
	"os"
	"testing"

	"github.com/danieljhkim/p/internal/aliases"
	"github.com/danieljhkim/p/internal/engine"
	"github.com/danieljhkim/p/internal/envx"
	"github.com/danieljhkim/p/internal/launch"
)

// testFS is a filesystem implementation that tracks files in memory for testing
type testFS struct {
	files  map[string][]byte
	writes int
	// failWrites makes every AtomicWrite fail with this error
	failWrites error
}

func newTestFS() *testFS {
	return &testFS{files: make(map[string][]byte)}
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	data, ok := fs.files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	if fs.failWrites != nil {
		return fs.failWrites
	}
	fs.files[path] = append([]byte(nil), data...)
	fs.writes++
	return nil
}

const storePath = "/data/p.json"

type harness struct {
	fs       *testFS
	store    *aliases.FileStore
	launcher *launch.Recorder
	vars     map[string]string
	engine   *engine.Engine
}

// setupTestEngine creates an engine over an in-memory alias file.
func setupTestEngine(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		fs:       newTestFS(),
		launcher: launch.NewRecorder(),
		vars:     map[string]string{"HOME": "/home/me", "USERPROFILE": `C:\Users\me`},
	}
	h.store = aliases.NewFileStore(h.fs, storePath, nil)

	lookup := func(name string) (string, bool) {
		v, ok := h.vars[name]
		return v, ok
	}
	h.engine = engine.New(h.store, h.launcher, envx.Expander{Lookup: lookup}, nil)
	return h
}

// withWindowsExpansion rebuilds the engine with Windows variable syntax.
func (h *harness) withWindowsExpansion() {
	h.engine = engine.New(h.store, h.launcher, envx.Expander{Lookup: envx.MapLookup(h.vars, true), Windows: true}, nil)
}
