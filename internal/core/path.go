package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

func NormalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}

func ValidateRoutePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(path, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(path, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.Contains(path, "*") {
		return fmt.Errorf("path cannot contain wildcards")
	}

	return nil
}

// RouteOutputPath returns where a non-root route is written:
// {outputRoot}/{route without leading and trailing slashes}/index.html.
func RouteOutputPath(outputRoot, route string) string {
	clean := strings.Trim(route, "/")
	if clean == "" {
		return filepath.Join(outputRoot, "index.html")
	}
	return filepath.Join(outputRoot, filepath.FromSlash(clean), "index.html")
}
