package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mkarren/docdex/pkg/index"
)

// remoteFixture serves a descriptor and a msgpack index for the given
// tree and counts how often each endpoint is hit.
type remoteFixture struct {
	server    *httptest.Server
	descHits  atomic.Int32
	indexHits atomic.Int32
}

func newRemoteFixture(t *testing.T, tree *index.Node) *remoteFixture {
	t.Helper()
	f := &remoteFixture{}

	payload, err := msgpack.Marshal(tree)
	require.NoError(t, err)
	descriptor, err := json.Marshal(Descriptor{
		TotalSize:   tree.TotalSize(),
		Docs:        tree.DocCount(),
		GeneratedAt: time.Now(),
	})
	require.NoError(t, err)

	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/descriptor.json":
			f.descHits.Add(1)
			w.Write(descriptor)
		case "/index.bin":
			f.indexHits.Add(1)
			w.Write(payload)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(f.server.Close)
	return f
}

func remoteTree(size int64) *index.Node {
	root := index.NewNode()
	root.Ensure([]string{"array", "splice"}).SetVariant(index.Basic, size)
	return root
}

func TestRefreshFreshCache(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "index.bin")
	local := remoteTree(100)
	_, err := index.SaveCache(cachePath, local)
	require.NoError(t, err)

	fixture := newRemoteFixture(t, remoteTree(999))
	store := index.NewStore(local)
	syncer := NewSyncer(fixture.server.URL, cachePath, time.Hour, time.Second, store)

	replaced, err := syncer.Refresh(context.Background())
	require.NoError(t, err)
	assert.False(t, replaced)
	assert.Zero(t, fixture.descHits.Load(), "a fresh cache must not contact the remote")
	assert.Zero(t, fixture.indexHits.Load())
}

func TestRefreshUnchangedRemote(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "index.bin")
	local := remoteTree(100)
	saved, err := index.SaveCache(cachePath, local)
	require.NoError(t, err)

	// same total size on both sides
	fixture := newRemoteFixture(t, remoteTree(100))
	store := index.NewStore(local)
	syncer := NewSyncer(fixture.server.URL, cachePath, 0, time.Second, store)

	time.Sleep(10 * time.Millisecond)
	replaced, err := syncer.Refresh(context.Background())
	require.NoError(t, err)
	assert.False(t, replaced)
	assert.Equal(t, int32(1), fixture.descHits.Load())
	assert.Zero(t, fixture.indexHits.Load(), "matching sizes must skip the full download")
	assert.Equal(t, uint64(1), store.Generation())

	_, manifest, err := index.LoadCache(cachePath)
	require.NoError(t, err)
	assert.True(t, manifest.BuiltAt.After(saved.BuiltAt), "unchanged remote re-stamps the cache")
}

func TestRefreshChangedRemote(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "index.bin")
	local := remoteTree(100)
	_, err := index.SaveCache(cachePath, local)
	require.NoError(t, err)

	fixture := newRemoteFixture(t, remoteTree(250))
	store := index.NewStore(local)
	syncer := NewSyncer(fixture.server.URL, cachePath, 0, time.Second, store)

	replaced, err := syncer.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Equal(t, int32(1), fixture.indexHits.Load())
	assert.Equal(t, uint64(2), store.Generation())
	assert.Equal(t, int64(250), store.Current().TotalSize())

	_, manifest, err := index.LoadCache(cachePath)
	require.NoError(t, err)
	assert.Equal(t, int64(250), manifest.TotalSize, "fetched index is persisted")
}

func TestRefreshNoCache(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "index.bin")
	fixture := newRemoteFixture(t, remoteTree(250))
	store := index.NewStore(nil)
	syncer := NewSyncer(fixture.server.URL, cachePath, time.Hour, time.Second, store)

	replaced, err := syncer.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Zero(t, fixture.descHits.Load(), "a missing cache goes straight for the index")
	assert.Equal(t, int32(1), fixture.indexHits.Load())
	assert.Equal(t, int64(250), store.Current().TotalSize())
}

func TestRefreshRemoteDown(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "index.bin")
	store := index.NewStore(nil)
	syncer := NewSyncer("http://127.0.0.1:1", cachePath, time.Hour, 100*time.Millisecond, store)

	replaced, err := syncer.Refresh(context.Background())
	assert.Error(t, err)
	assert.False(t, replaced)
	assert.Equal(t, uint64(1), store.Generation(), "a failed sync leaves the snapshot alone")
}
