// Package remote keeps the local index cache synchronized with a
// remote documentation source without re-downloading it on every
// check: a cached manifest gates checks by age, a small JSON
// descriptor gates downloads by size, and only a real mismatch pulls
// the full index.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mkarren/docdex/pkg/index"
)

const (
	descriptorFile = "descriptor.json"
	indexFile      = "index.bin"

	// Descriptor and index payloads are tiny relative to this; the cap
	// only guards against a misbehaving endpoint.
	maxPayloadBytes = 64 << 20
)

// Descriptor is the remote side's summary of its current index.
type Descriptor struct {
	TotalSize   int64     `json:"total_size"`
	Docs        int       `json:"docs"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Syncer checks a remote source for index changes and swaps fresh
// trees into the store. Safe to call Refresh repeatedly; it is cheap
// while the cache is young.
type Syncer struct {
	client    *http.Client
	baseURL   string
	cachePath string
	ttl       time.Duration
	store     *index.Store
}

// NewSyncer creates a syncer. ttl is how long a cached index is
// trusted without contacting the remote at all.
func NewSyncer(baseURL, cachePath string, ttl time.Duration, timeout time.Duration, store *index.Store) *Syncer {
	return &Syncer{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		cachePath: cachePath,
		ttl:       ttl,
		store:     store,
	}
}

// Refresh brings the local index up to date. It reports whether the
// index was replaced. The sequence is:
//
//  1. a cache younger than the TTL is trusted outright;
//  2. otherwise the remote descriptor is fetched and its total size
//     compared against the manifest — a match just re-stamps the cache;
//  3. only a size mismatch (or no usable cache) downloads the full
//     index, persists it, and swaps the snapshot.
func (s *Syncer) Refresh(ctx context.Context) (bool, error) {
	_, manifest, err := index.LoadCache(s.cachePath)
	if err != nil {
		log.Debugf("No usable index cache (%v), fetching remote index", err)
		return s.fetchAndReplace(ctx)
	}

	if age := time.Since(manifest.BuiltAt); age < s.ttl {
		log.Debugf("Index cache is fresh (age %s < ttl %s)", age.Round(time.Second), s.ttl)
		return false, nil
	}

	desc, err := s.fetchDescriptor(ctx)
	if err != nil {
		return false, err
	}

	if desc.TotalSize == manifest.TotalSize {
		log.Debugf("Remote index unchanged (%d bytes), re-stamping cache", desc.TotalSize)
		if err := index.TouchCache(s.cachePath); err != nil {
			log.Warnf("Failed to re-stamp index cache: %v", err)
		}
		return false, nil
	}

	log.Infof("Remote index changed (%d -> %d bytes), fetching", manifest.TotalSize, desc.TotalSize)
	return s.fetchAndReplace(ctx)
}

// fetchDescriptor downloads and decodes the remote summary.
func (s *Syncer) fetchDescriptor(ctx context.Context) (Descriptor, error) {
	body, err := s.get(ctx, descriptorFile)
	if err != nil {
		return Descriptor{}, err
	}

	var desc Descriptor
	if err := json.Unmarshal(body, &desc); err != nil {
		return Descriptor{}, fmt.Errorf("decoding remote descriptor: %w", err)
	}
	return desc, nil
}

// fetchAndReplace downloads the full index, persists it and swaps the
// active snapshot.
func (s *Syncer) fetchAndReplace(ctx context.Context) (bool, error) {
	body, err := s.get(ctx, indexFile)
	if err != nil {
		return false, err
	}

	var root *index.Node
	if err := msgpack.Unmarshal(body, &root); err != nil {
		return false, fmt.Errorf("decoding remote index: %w", err)
	}
	if root == nil {
		return false, fmt.Errorf("remote index is empty")
	}

	if _, err := index.SaveCache(s.cachePath, root); err != nil {
		log.Warnf("Fetched index could not be cached: %v", err)
	}
	s.store.Replace(root)
	return true, nil
}

func (s *Syncer) get(ctx context.Context, file string) ([]byte, error) {
	url := s.baseURL + "/" + file
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return body, nil
}
