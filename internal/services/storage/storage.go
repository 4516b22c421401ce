package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/teemo-ai/estimation-server/internal/config"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when neither the object nor the file behind a
	// path exists.
	ErrNotFound = errors.New("file not found")
	// ErrAccessDenied is returned when the caller lacks permission to a
	// remote object.
	ErrAccessDenied = errors.New("access denied")
	// ErrWrite wraps any I/O failure while persisting a payload.
	ErrWrite = errors.New("write failed")

	ErrInvalidPath        = errors.New("invalid storage path")
	ErrStoreNotConfigured = errors.New("object store is not configured")
)

// Storage reads and writes text blobs behind either local filesystem paths
// or cloud object references (gs://bucket/key, s3://bucket/key).
type Storage interface {
	Read(ctx context.Context, path string) (string, error)
	Write(ctx context.Context, path string, payload any) error
}

// ObjectRef identifies an object in a cloud blob store.
type ObjectRef struct {
	Bucket string
	Key    string
}

var objectSchemes = []string{"gs://", "s3://"}

// IsObjectPath reports whether path uses a cloud-object-reference scheme.
func IsObjectPath(path string) bool {
	for _, scheme := range objectSchemes {
		if strings.HasPrefix(path, scheme) {
			return true
		}
	}
	return false
}

// ParseObjectRef splits a scheme://bucket/key path into its bucket and key.
// Both parts must be non-empty.
func ParseObjectRef(path string) (ObjectRef, error) {
	var rest string
	for _, scheme := range objectSchemes {
		if strings.HasPrefix(path, scheme) {
			rest = strings.TrimPrefix(path, scheme)
			break
		}
	}

	if rest == "" {
		return ObjectRef{}, fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || strings.TrimLeft(key, "/") == "" {
		return ObjectRef{}, fmt.Errorf("%w: expected scheme://bucket/key, got %s", ErrInvalidPath, path)
	}

	return ObjectRef{Bucket: bucket, Key: strings.TrimLeft(key, "/")}, nil
}

// Store routes each path to the local filesystem or the object store.
type Store struct {
	local  *LocalStorage
	object *ObjectStorage
	logger *zap.Logger
}

func NewStore(cfg *config.Config, logger *zap.Logger) (*Store, error) {
	store := &Store{
		local:  NewLocalStorage(),
		logger: logger,
	}

	if cfg.ObjectStore != nil {
		object, err := NewObjectStorage(cfg.ObjectStore)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize object store: %w", err)
		}
		store.object = object
	}

	return store, nil
}

func (s *Store) Read(ctx context.Context, path string) (string, error) {
	if IsObjectPath(path) {
		if s.object == nil {
			return "", ErrStoreNotConfigured
		}

		ref, err := ParseObjectRef(path)
		if err != nil {
			return "", err
		}

		s.logger.Debug("reading from object store", zap.String("path", path))
		return s.object.Download(ctx, ref)
	}

	s.logger.Debug("reading from local file", zap.String("path", path))
	return s.local.Read(path)
}

func (s *Store) Write(ctx context.Context, path string, payload any) error {
	data, err := encodePayload(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if IsObjectPath(path) {
		if s.object == nil {
			return ErrStoreNotConfigured
		}

		ref, err := ParseObjectRef(path)
		if err != nil {
			return err
		}

		s.logger.Debug("writing to object store",
			zap.String("path", path), zap.Int("bytes", len(data)))
		return s.object.Upload(ctx, ref, data)
	}

	s.logger.Debug("writing to local file",
		zap.String("path", path), zap.Int("bytes", len(data)))
	return s.local.Write(path, data)
}

// encodePayload serializes structured payloads to indented JSON. Strings and
// raw bytes pass through untouched so prompt files and debug artifacts keep
// their original form.
func encodePayload(payload any) ([]byte, error) {
	switch v := payload.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return json.MarshalIndent(payload, "", "    ")
	}
}
