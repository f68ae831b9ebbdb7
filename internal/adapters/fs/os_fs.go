package fs

import (
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
)

type OSFileSystem struct{}

func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (fs *OSFileSystem) ReadDir(path string) ([]iofs.DirEntry, error) {
	return os.ReadDir(path)
}

func (fs *OSFileSystem) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (fs *OSFileSystem) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (fs *OSFileSystem) MkdirAll(path string, perm iofs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (fs *OSFileSystem) CopyTree(src iofs.FS, dst string) ([]string, error) {
	var copied []string

	err := iofs.WalkDir(src, ".", func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		}

		if fs.FileExists(target) {
			return nil
		}
		if err := copyFile(src, path, target); err != nil {
			return err
		}
		copied = append(copied, target)
		return nil
	})
	if err != nil {
		return copied, err
	}
	return copied, nil
}

func copyFile(src iofs.FS, path, target string) error {
	srcFile, err := src.Open(path)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	mode := iofs.FileMode(0o644)
	if info, err := srcFile.Stat(); err == nil && info.Mode().Perm()&0o200 != 0 {
		mode = info.Mode().Perm()
	}

	dstFile, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy %s: %w", target, err)
	}
	return dstFile.Close()
}
