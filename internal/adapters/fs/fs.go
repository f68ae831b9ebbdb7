package fs

import (
	iofs "io/fs"
)

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]iofs.DirEntry, error)
	FileExists(path string) bool
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	MkdirAll(path string, perm iofs.FileMode) error
	// CopyTree copies every file of src below dst, keeping destinations
	// that already exist, and returns the paths it wrote.
	CopyTree(src iofs.FS, dst string) ([]string, error)
}
