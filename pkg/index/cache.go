package index

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Manifest describes a cached index: when it was built and the totals
// the remote sync compares against a descriptor.
type Manifest struct {
	BuiltAt   time.Time `msgpack:"built_at"`
	TotalSize int64     `msgpack:"total_size"`
	Docs      int       `msgpack:"docs"`
}

// cacheFile is the on-disk shape of a persisted index.
type cacheFile struct {
	Manifest Manifest `msgpack:"manifest"`
	Root     *Node    `msgpack:"root"`
}

// SaveCache persists a tree and a freshly stamped manifest as msgpack.
// The file is written to a temp sibling and renamed so a crashed write
// never leaves a truncated cache behind.
func SaveCache(path string, root *Node) (Manifest, error) {
	m := Manifest{
		BuiltAt:   time.Now().UTC(),
		TotalSize: root.TotalSize(),
		Docs:      root.DocCount(),
	}

	data, err := msgpack.Marshal(cacheFile{Manifest: m, Root: root})
	if err != nil {
		return Manifest{}, fmt.Errorf("encoding index cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return Manifest{}, err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return Manifest{}, err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return Manifest{}, err
	}

	log.Debugf("Saved index cache to %s (%d docs)", path, m.Docs)
	return m, nil
}

// LoadCache reads a persisted index back. Callers treat any error as
// "no usable cache" and rebuild or re-fetch.
func LoadCache(path string) (*Node, Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Manifest{}, err
	}

	var file cacheFile
	if err := msgpack.Unmarshal(data, &file); err != nil {
		return nil, Manifest{}, fmt.Errorf("decoding index cache %s: %w", path, err)
	}
	if file.Root == nil {
		return nil, Manifest{}, fmt.Errorf("index cache %s has no tree", path)
	}

	log.Debugf("Loaded index cache from %s (%d docs, built %s)",
		path, file.Manifest.Docs, file.Manifest.BuiltAt.Format(time.RFC3339))
	return file.Root, file.Manifest, nil
}

// TouchCache rewrites the manifest timestamp without replacing the
// tree, marking a sync check that found no remote change.
func TouchCache(path string) error {
	root, m, err := LoadCache(path)
	if err != nil {
		return err
	}
	m.BuiltAt = time.Now().UTC()
	data, err := msgpack.Marshal(cacheFile{Manifest: m, Root: root})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
