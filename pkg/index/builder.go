package index

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	detailSuffix  = ".detail.md"
	installSuffix = ".install.md"
	basicSuffix   = ".md"
	indexBasename = "index.md"
)

// Build walks a documentation directory and produces a fresh tree.
// Files are categorized by suffix: name.md carries the basic variant,
// name.detail.md and name.install.md their respective variants, and a
// directory's index.md becomes that node's index document. Hidden
// entries and non-markdown files are skipped.
func Build(docsDir string) (*Node, error) {
	info, err := os.Stat(docsDir)
	if err != nil {
		return nil, fmt.Errorf("docs dir %s: %w", docsDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("docs path %s is not a directory", docsDir)
	}

	root := NewNode()
	err = filepath.WalkDir(docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") && path != docsDir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(name, basicSuffix) {
			return nil
		}

		rel, err := filepath.Rel(docsDir, path)
		if err != nil {
			return err
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		addDocument(root, filepath.ToSlash(rel), fi.Size())
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("Built index from %s: %d docs, %d bytes", docsDir, root.DocCount(), root.TotalSize())
	return root, nil
}

// addDocument places one markdown file into the tree. rel is the
// slash-separated path below the docs root.
func addDocument(root *Node, rel string, size int64) {
	segments := strings.Split(rel, "/")
	base := segments[len(segments)-1]
	dirs := segments[:len(segments)-1]

	if base == indexBasename {
		node := root.Ensure(dirs)
		if node.Index == nil {
			node.Index = NewNode()
		}
		node.Index.SetVariant(Basic, size)
		return
	}

	variant := Basic
	stem := strings.TrimSuffix(base, basicSuffix)
	switch {
	case strings.HasSuffix(base, detailSuffix):
		variant = Detail
		stem = strings.TrimSuffix(base, detailSuffix)
	case strings.HasSuffix(base, installSuffix):
		variant = Install
		stem = strings.TrimSuffix(base, installSuffix)
	}
	if stem == "" {
		return
	}

	node := root.Ensure(append(dirs, stem))
	node.SetVariant(variant, size)
}
