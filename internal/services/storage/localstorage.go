package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

type LocalStorage struct{}

func NewLocalStorage() *LocalStorage {
	return &LocalStorage{}
}

func (l *LocalStorage) Read(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if os.IsPermission(err) {
			return "", fmt.Errorf("%w: %s", ErrAccessDenied, path)
		}
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return string(content), nil
}

func (l *LocalStorage) Write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if err := os.WriteFile(path, data, os.FileMode(0644)); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}
