// Package runtime embeds the browser bootstrap that wires up navigation on
// server-rendered pages.
package runtime

import (
	"embed"
	iofs "io/fs"
	"net/http"
	"strings"

	"github.com/3-lines-studio/folio/internal/core"
)

const (
	// Prefix is the URL and output directory the bootstrap lives under.
	Prefix     = "/_folio/"
	ClientPath = Prefix + "client.js"
)

//go:embed all:static
var static embed.FS

// FS returns the runtime tree rooted so that it can be copied straight into
// an output root, producing _folio/client.js.
func FS() iofs.FS {
	sub, err := iofs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// ClientJS returns the embedded bootstrap source.
func ClientJS() []byte {
	data, err := iofs.ReadFile(FS(), strings.TrimPrefix(ClientPath, "/"))
	if err != nil {
		panic(err)
	}
	return data
}

type handler struct {
	files iofs.FS
}

// Handler serves files under Prefix from the embedded tree.
func Handler() http.Handler {
	return &handler{files: FS()}
}

func (h *handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(req.URL.Path, "/")
	if !strings.HasPrefix("/"+path, Prefix) || strings.Contains(path, "..") {
		http.NotFound(w, req)
		return
	}

	data, err := iofs.ReadFile(h.files, path)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(path))
	w.Header().Set("Cache-Control", "no-cache")
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(data)
}
