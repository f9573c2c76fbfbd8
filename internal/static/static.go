// Package static embeds the stylesheets and images served under /static/.
package static

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
)

//go:embed css/*.css img/*.svg
var FS embed.FS

// Prefix is the URL path the assets are mounted under.
const Prefix = "/static/"

// Asset URLs referenced by page components.
const (
	BaseStylesheet  = Prefix + "css/base.css"
	LoginStylesheet = Prefix + "css/login.css"
	HomeStylesheet  = Prefix + "css/home.css"
	AuthBackground  = Prefix + "img/auth-background.svg"
)

// Handler serves the embedded assets. Mount it at Prefix. Directories are
// answered with 404 rather than listed.
func Handler() http.Handler {
	fileServer := http.FileServer(http.FS(FS))
	return http.StripPrefix(Prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isDir(r.URL.Path) {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")
		fileServer.ServeHTTP(w, r)
	}))
}

func isDir(urlPath string) bool {
	name := path.Clean("/" + urlPath)[1:]
	if name == "" {
		return true
	}
	info, err := fs.Stat(FS, name)
	return err == nil && info.IsDir()
}
