package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/3-lines-studio/folio/internal/core"
)

// AssetHandler serves files from dir for requests under prefix. Unknown
// files are a 404.
type AssetHandler struct {
	dir    string
	prefix string
}

func NewAssetHandler(dir, prefix string) http.Handler {
	return &AssetHandler{
		dir:    dir,
		prefix: prefix,
	}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	rel, ok := cleanRelative(strings.TrimPrefix(req.URL.Path, h.prefix))
	if !ok {
		http.NotFound(w, req)
		return
	}

	if !serveFile(w, req, filepath.Join(h.dir, rel)) {
		http.NotFound(w, req)
	}
}

// PublicHandler serves a file from the first directory that has it and
// hands every other request to next. Directories always fall through so
// that pages keep being rendered.
type PublicHandler struct {
	dirs []string
	next http.Handler
}

func NewPublicHandler(next http.Handler, dirs ...string) http.Handler {
	return &PublicHandler{
		dirs: dirs,
		next: next,
	}
}

func (h *PublicHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	rel, ok := cleanRelative(req.URL.Path)
	if !ok || rel == "" {
		h.next.ServeHTTP(w, req)
		return
	}

	for _, dir := range h.dirs {
		if dir == "" {
			continue
		}
		if serveFile(w, req, filepath.Join(dir, rel)) {
			return
		}
	}

	h.next.ServeHTTP(w, req)
}

func cleanRelative(p string) (string, bool) {
	if strings.Contains(p, "..") {
		return "", false
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+p), "/")
	return filepath.FromSlash(cleaned), true
}

func serveFile(w http.ResponseWriter, req *http.Request, fullPath string) bool {
	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		return false
	}

	file, err := os.Open(fullPath)
	if err != nil {
		return false
	}
	defer func() { _ = file.Close() }()

	w.Header().Set("Content-Type", core.GetContentType(fullPath))
	http.ServeContent(w, req, info.Name(), info.ModTime(), file)
	return true
}
