package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/teemo-ai/estimation-server/internal/config"

	"go.uber.org/zap"
)

func newLocalOnlyStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(&config.Config{}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	return store
}

func TestIsObjectPath(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"gs://bucket/key.txt", true},
		{"s3://bucket/dir/key.json", true},
		{"/tmp/params.txt", false},
		{"prompts/system_prompt.txt", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsObjectPath(tc.path); got != tc.want {
			t.Errorf("IsObjectPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestParseObjectRef(t *testing.T) {
	ref, err := ParseObjectRef("gs://my-bucket/path/to/params.txt")
	if err != nil {
		t.Fatalf("ParseObjectRef failed: %v", err)
	}
	if ref.Bucket != "my-bucket" {
		t.Errorf("expected bucket my-bucket, got %s", ref.Bucket)
	}
	if ref.Key != "path/to/params.txt" {
		t.Errorf("expected key path/to/params.txt, got %s", ref.Key)
	}
}

func TestParseObjectRefInvalid(t *testing.T) {
	invalid := []string{
		"gs://",
		"gs://bucket",
		"gs://bucket/",
		"s3://bucket",
		"/tmp/local.txt",
	}

	for _, path := range invalid {
		if _, err := ParseObjectRef(path); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("ParseObjectRef(%q): expected ErrInvalidPath, got %v", path, err)
		}
	}
}

func TestLocalRoundTrip(t *testing.T) {
	store := newLocalOnlyStore(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "params.txt")

	text := "layers=12\nbatch_size=64\n"
	if err := store.Write(ctx, path, text); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := store.Read(ctx, path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != text {
		t.Errorf("round trip mismatch: got %q, want %q", got, text)
	}
}

func TestWriteCreatesParentDirs(t *testing.T) {
	store := newLocalOnlyStore(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "a", "b", "out.json")

	if err := store.Write(ctx, path, map[string]any{"gpu_count": 4}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestWriteOverwrites(t *testing.T) {
	store := newLocalOnlyStore(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.json")

	payload := map[string]any{"gpu_count": 4, "training_hours": 10}
	if err := store.Write(ctx, path, payload); err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}

	if err := store.Write(ctx, path, payload); err != nil {
		t.Fatalf("second Write failed: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}

	if string(first) != string(second) {
		t.Errorf("overwrite produced different content:\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestWriteSerializesJSON(t *testing.T) {
	store := newLocalOnlyStore(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.json")

	payload := map[string]any{"gpu_count": float64(4), "recommended_gpu": "A100"}
	if err := store.Write(ctx, path, payload); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("stored content is not valid JSON: %v", err)
	}
	if got["gpu_count"] != float64(4) || got["recommended_gpu"] != "A100" {
		t.Errorf("unexpected stored payload: %v", got)
	}
}

func TestReadNotFound(t *testing.T) {
	store := newLocalOnlyStore(t)

	_, err := store.Read(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestObjectPathWithoutStore(t *testing.T) {
	store := newLocalOnlyStore(t)
	ctx := context.Background()

	if _, err := store.Read(ctx, "gs://bucket/key.txt"); !errors.Is(err, ErrStoreNotConfigured) {
		t.Errorf("Read: expected ErrStoreNotConfigured, got %v", err)
	}
	if err := store.Write(ctx, "gs://bucket/key.json", map[string]any{}); !errors.Is(err, ErrStoreNotConfigured) {
		t.Errorf("Write: expected ErrStoreNotConfigured, got %v", err)
	}
}
