package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevant(t *testing.T) {
	w := &Watcher{config: Config{Extensions: DefaultExtensions, Ignore: []string{"breeds-client.json"}}}

	tests := []struct {
		path string
		want bool
	}{
		{"data/racas.json", true},
		{"data/rules.YAML", true},
		{"templates/index.html", true},
		{"data/breeds-client.json", false},
		{"data/.racas.json.swp", false},
		{"templates/notes.txt", false},
		{"data/racas.json~", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, w.relevant(tt.path), tt.path)
	}
}

func TestFlushSortsAndClears(t *testing.T) {
	w := &Watcher{pending: map[string]fsnotify.Op{
		"b.json": fsnotify.Write,
		"a.html": fsnotify.Create,
	}}
	assert.Equal(t, []string{"a.html", "b.json"}, w.flush())
	assert.Nil(t, w.flush())
}

func TestWatchReportsChanges(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "templates")
	require.NoError(t, os.Mkdir(sub, 0755))

	w, err := New(Config{
		Dirs:     []string{dir},
		Debounce: 20 * time.Millisecond,
		Ignore:   []string{"breeds-client.json"},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batches := make(chan []string, 10)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ context.Context, changed []string) error {
			batches <- changed
			return nil
		})
	}()

	// ignored and irrelevant files first; they must not produce a batch
	require.NoError(t, os.WriteFile(filepath.Join(dir, "breeds-client.json"), []byte("[]"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	target := filepath.Join(sub, "index.html")
	require.NoError(t, os.WriteFile(target, []byte("<html></html>"), 0644))

	select {
	case changed := <-batches:
		assert.Equal(t, []string{target}, changed)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(Config{Dirs: []string{filepath.Join(t.TempDir(), "missing")}})
	assert.Error(t, err)
}
