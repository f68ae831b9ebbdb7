package usecase

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrShellMissing  = errors.New("built shell not found")
	ErrOutputMissing = errors.New("output directory not found")
)

// ShellSource provides the HTML document fragments are spliced into.
type ShellSource interface {
	Shell(ctx context.Context) (string, error)
}

// StaticShell serves a shell that was read once.
type StaticShell struct {
	html string
}

func NewStaticShell(html string) *StaticShell {
	return &StaticShell{html: html}
}

func (s *StaticShell) Shell(context.Context) (string, error) {
	return s.html, nil
}

// LoadBuiltShell reads the built shell for production serving.
func LoadBuiltShell(fs FileSystem, path string) (*StaticShell, error) {
	if !fs.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrShellMissing, path)
	}
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shell: %w", err)
	}
	return NewStaticShell(string(data)), nil
}

// SourceShell re-reads the source shell on every call so edits show up
// without a restart. When the file is absent the fallback is used.
type SourceShell struct {
	fs       FileSystem
	path     string
	fallback func() (string, error)
}

func NewSourceShell(fs FileSystem, path string, fallback func() (string, error)) *SourceShell {
	return &SourceShell{fs: fs, path: path, fallback: fallback}
}

func (s *SourceShell) Shell(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.path != "" && s.fs.FileExists(s.path) {
		data, err := s.fs.ReadFile(s.path)
		if err != nil {
			return "", fmt.Errorf("failed to read shell: %w", err)
		}
		return string(data), nil
	}
	if s.fallback == nil {
		return "", fmt.Errorf("%w: %s", ErrShellMissing, s.path)
	}
	return s.fallback()
}
