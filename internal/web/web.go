// internal/web/web.go
// Package web serves the public landing page and its static assets.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"devops-webapp/internal/logging"
	"devops-webapp/internal/shared"

	"github.com/gorilla/mux"
)

// IndexFile is served for "/" and for directory requests.
const IndexFile = "index.html"

// EmbeddedRoot is the directory inside the embedded FS holding the assets.
const EmbeddedRoot = "public"

// staticHandler serves files from a filesystem and hands everything it
// cannot serve to the fallback handlers.
type staticHandler struct {
	contentFS fs.FS
	indexPath string
	notFound  http.HandlerFunc
	fail      func(w http.ResponseWriter, r *http.Request, err error)
}

// NewHandler returns a handler serving contentFS. Misses go to notFound,
// unexpected filesystem errors go to fail.
func NewHandler(contentFS fs.FS, notFound http.HandlerFunc, fail func(http.ResponseWriter, *http.Request, error)) http.Handler {
	return staticHandler{
		contentFS: contentFS,
		indexPath: IndexFile,
		notFound:  notFound,
		fail:      fail,
	}
}

// ServeHTTP handles serving a static asset.
func (h staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.notFound(w, r)
		return
	}

	// Use 'path.Clean' for FS paths, not 'filepath.Clean'
	filePath := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if filePath == "" {
		filePath = h.indexPath
	}

	if isHidden(filePath) {
		h.notFound(w, r)
		return
	}

	file, err := h.contentFS.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			h.notFound(w, r)
			return
		}
		h.fail(w, r, fmt.Errorf("opening %s: %w", filePath, err))
		return
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		h.fail(w, r, fmt.Errorf("stating %s: %w", filePath, err))
		return
	}

	if fileInfo.IsDir() {
		h.serveDirectory(w, r, filePath)
		return
	}

	h.serveFile(w, r, filePath, file, fileInfo)
}

// serveDirectory redirects to the slash form and then serves the directory index.
func (h staticHandler) serveDirectory(w http.ResponseWriter, r *http.Request, dir string) {
	if !strings.HasSuffix(r.URL.Path, "/") {
		// Built from the cleaned path so "//dir" cannot become a protocol-relative URL.
		target := "/" + dir + "/"
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
		return
	}

	indexPath := path.Join(dir, h.indexPath)
	file, err := h.contentFS.Open(indexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.notFound(w, r)
			return
		}
		h.fail(w, r, fmt.Errorf("opening %s: %w", indexPath, err))
		return
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil || fileInfo.IsDir() {
		h.notFound(w, r)
		return
	}
	h.serveFile(w, r, indexPath, file, fileInfo)
}

func (h staticHandler) serveFile(w http.ResponseWriter, r *http.Request, name string, file fs.File, fileInfo fs.FileInfo) {
	// fs.File does not guarantee io.ReadSeeker, which http.ServeContent needs.
	seeker, ok := file.(io.ReadSeeker)
	if !ok {
		logging.Log.Warnf("web: %s does not implement io.ReadSeeker, falling back to memory buffer", name)
		fileBytes, err := io.ReadAll(file)
		if err != nil {
			h.fail(w, r, fmt.Errorf("reading %s: %w", name, err))
			return
		}
		http.ServeContent(w, r, name, fileInfo.ModTime(), bytes.NewReader(fileBytes))
		return
	}

	http.ServeContent(w, r, name, fileInfo.ModTime(), seeker)
}

// isHidden reports whether any path segment is a dotfile.
func isHidden(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}

// ContentFS picks the asset source: publicDir on disk when set, otherwise
// the "public" directory of the embedded filesystem.
func ContentFS(publicDir string, embedded fs.FS) (fs.FS, error) {
	if publicDir != "" {
		info, err := os.Stat(publicDir)
		if err != nil {
			return nil, fmt.Errorf("public dir %s: %w", publicDir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("public dir %s: not a directory", publicDir)
		}
		return os.DirFS(publicDir), nil
	}

	subFS, err := fs.Sub(embedded, EmbeddedRoot)
	if err != nil {
		return nil, fmt.Errorf("embedded assets: %w", err)
	}
	if _, err := fs.Stat(subFS, IndexFile); err != nil {
		return nil, fmt.Errorf("embedded assets: %s: %w", IndexFile, shared.ErrAssetNotFound)
	}
	return subFS, nil
}

// AddRoutes mounts the static handler as the catch-all route of the router.
// It must be called after every API route has been registered.
func AddRoutes(router *mux.Router, content fs.FS, notFound http.HandlerFunc, fail func(http.ResponseWriter, *http.Request, error)) {
	router.PathPrefix("/").Handler(NewHandler(content, notFound, fail))
}
