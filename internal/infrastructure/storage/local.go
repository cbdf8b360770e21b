// Package storage provides the local-disk image asset store. Stored
// references are relative (uploads/<name>) so they survive host moves; the
// HTTP layer serves them back from a static route with the same prefix.
package storage

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

const assetPrefix = "uploads"

// LocalAssetStore writes uploaded assets under a root directory.
type LocalAssetStore struct {
	root string
}

// NewLocalAssetStore creates a store rooted at dir (created on first Save).
func NewLocalAssetStore(dir string) *LocalAssetStore {
	return &LocalAssetStore{root: dir}
}

// Save writes the asset under a collision-free generated name and returns its
// relative reference. A partial write never leaves a file behind: any failure
// after the file is opened removes it before the error is returned.
func (s *LocalAssetStore) Save(_ context.Context, field, filename string, src io.Reader) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uniqueName(field, filename)
	dst := filepath.Join(s.root, name)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create asset file: %w", err)
	}

	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("write asset: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("close asset: %w", err)
	}

	return path.Join(assetPrefix, name), nil
}

// Delete removes a stored asset. An already-missing file is not an error.
func (s *LocalAssetStore) Delete(_ context.Context, relPath string) error {
	name, err := s.localName(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.root, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}

// localName maps a relative reference back to a file name inside the root,
// rejecting anything that would escape it.
func (s *LocalAssetStore) localName(relPath string) (string, error) {
	rest := strings.TrimPrefix(relPath, assetPrefix+"/")
	if rest == relPath || rest == "" {
		return "", fmt.Errorf("not a managed asset reference: %q", relPath)
	}
	if rest != path.Base(rest) || rest == "." || rest == ".." {
		return "", fmt.Errorf("invalid asset reference: %q", relPath)
	}
	return rest, nil
}

// uniqueName builds <field>-<unixms>-<rand><ext>, keeping only the original
// file's extension.
func uniqueName(field, filename string) string {
	var b [4]byte
	suffix := int64(0)
	if _, err := rand.Read(b[:]); err == nil {
		suffix = int64(binary.BigEndian.Uint32(b[:])) % 1_000_000_000
	}
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), suffix, ext)
}
