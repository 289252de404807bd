package rest

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// staticGame serves the files of one game from <root>/<slug>.
type staticGame struct {
	pages *pages
	dir   http.Dir
}

func newStaticGame(pages *pages, root, slug string) *staticGame {
	return &staticGame{
		pages: pages,
		dir:   http.Dir(filepath.Join(root, slug)),
	}
}

func (that *staticGame) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + chi.URLParam(r, "*"))
	if name == "/" {
		name = "/index.html"
	}

	file, err := that.dir.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		that.pages.notFound(w, r)
		return
	}

	if err != nil {
		that.pages.logger.With("method", "ServeHTTP").Error("failed to open static file", "file", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil || stat.IsDir() {
		that.pages.notFound(w, r)
		return
	}

	http.ServeContent(w, r, stat.Name(), stat.ModTime(), file)
}
