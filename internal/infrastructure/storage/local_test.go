package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalAssetStore_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalAssetStore(dir)

	ref, err := store.Save(context.Background(), "imageFile", "burger.JPG", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(ref, "uploads/imageFile-") {
		t.Fatalf("reference %q must be relative under uploads/", ref)
	}
	if !strings.HasSuffix(ref, ".jpg") {
		t.Fatalf("extension not preserved (lowercased): %q", ref)
	}

	onDisk := filepath.Join(dir, strings.TrimPrefix(ref, "uploads/"))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}

	if err := store.Delete(context.Background(), ref); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Fatalf("asset still retrievable after delete")
	}
}

func TestLocalAssetStore_DeleteMissingIsNoop(t *testing.T) {
	store := NewLocalAssetStore(t.TempDir())

	if err := store.Delete(context.Background(), "uploads/imageFile-1-1.jpg"); err != nil {
		t.Fatalf("deleting a missing asset must not error: %v", err)
	}
}

func TestLocalAssetStore_DeleteRejectsEscapes(t *testing.T) {
	store := NewLocalAssetStore(t.TempDir())

	for _, ref := range []string{
		"../../etc/passwd",
		"uploads/../secret.txt",
		"uploads/sub/file.jpg",
		"uploads/",
		"https://example.com/pic.jpg",
	} {
		if err := store.Delete(context.Background(), ref); err == nil {
			t.Fatalf("reference %q must be rejected", ref)
		}
	}
}

func TestLocalAssetStore_UniqueNames(t *testing.T) {
	store := NewLocalAssetStore(t.TempDir())

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		ref, err := store.Save(context.Background(), "imageFile", "same.png", strings.NewReader("x"))
		if err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
		if _, dup := seen[ref]; dup {
			t.Fatalf("duplicate asset reference generated: %s", ref)
		}
		seen[ref] = struct{}{}
	}
}
