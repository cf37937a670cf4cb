package http

import (
	"io"
	"net/http"
	"path"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/model"
)

// AssetHandler serves embedded static files and, when configured, team photos from disk.
// Missing images fall back to the placeholder avatar so a stale photo mapping never shows a broken image.
type AssetHandler struct {
	embedded    http.FileSystem
	photos      http.FileSystem
	placeholder []byte
}

// NewAssetHandler creates a new asset handler. photoDir may be empty.
func NewAssetHandler(embedded http.FileSystem, photoDir string) (*AssetHandler, error) {
	f, err := embedded.Open("/" + model.PlaceholderAvatar)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open placeholder avatar")
	}
	defer f.Close()

	placeholder, err := io.ReadAll(f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read placeholder avatar")
	}

	h := &AssetHandler{
		embedded:    embedded,
		placeholder: placeholder,
	}
	if photoDir != "" {
		h.photos = http.Dir(photoDir)
	}
	return h, nil
}

// ServeHTTP implements the http.Handler interface
func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Clean the path to prevent directory traversal attacks.
	cleanPath := path.Clean("/" + r.URL.Path)

	for _, fsys := range []http.FileSystem{h.photos, h.embedded} {
		if fsys == nil {
			continue
		}
		if h.serveFrom(w, r, fsys, cleanPath) {
			return
		}
	}

	if isImage(cleanPath) {
		w.Header().Set("Content-Type", mimeTypes[".svg"])
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(h.placeholder)
		return
	}

	http.NotFound(w, r)
}

// serveFrom serves cleanPath from fsys and reports whether it existed as a regular file
func (h *AssetHandler) serveFrom(w http.ResponseWriter, r *http.Request, fsys http.FileSystem, cleanPath string) bool {
	file, err := fsys.Open(cleanPath)
	if err != nil {
		return false
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil || stat.IsDir() {
		return false
	}

	if contentType := getContentType(cleanPath); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	http.ServeContent(w, r, cleanPath, stat.ModTime(), file)
	return true
}

var mimeTypes = map[string]string{
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

// getContentType returns the content type for common file extensions
func getContentType(filePath string) string {
	return mimeTypes[path.Ext(filePath)]
}

func isImage(filePath string) bool {
	switch path.Ext(filePath) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg":
		return true
	}
	return false
}

