// Package export writes the public pages and their assets to a directory so
// they can be served by any static file host.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"

	"github.com/joe135730/Concensor-sub001/internal/static"
	"github.com/joe135730/Concensor-sub001/internal/templates/pages"
)

// Page is a page written by Export.
type Page struct {
	Name      string
	Path      string // relative to the output directory
	Component templ.Component
}

// Pages lists the exported pages.
func Pages() []Page {
	return []Page{
		{Name: "home", Path: "index.html", Component: pages.Home()},
		{Name: "login", Path: filepath.Join("login", "index.html"), Component: pages.Login()},
		{Name: "not_found", Path: "404.html", Component: pages.NotFound()},
	}
}

// Export renders every page and copies the embedded assets into dir.
func Export(ctx context.Context, dir string, logger *slog.Logger) error {
	for _, p := range Pages() {
		var buf bytes.Buffer
		if err := p.Component.Render(ctx, &buf); err != nil {
			return fmt.Errorf("export.Export: render %s: %w", p.Name, err)
		}

		if err := writeFile(filepath.Join(dir, p.Path), buf.Bytes()); err != nil {
			return fmt.Errorf("export.Export: %w", err)
		}
		logger.Info("page exported", "page", p.Name, "path", p.Path, "size", buf.Len())
	}

	assets := strings.Trim(static.Prefix, "/")
	err := fs.WalkDir(static.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		data, err := fs.ReadFile(static.FS, path)
		if err != nil {
			return err
		}
		return writeFile(filepath.Join(dir, assets, filepath.FromSlash(path)), data)
	})
	if err != nil {
		return fmt.Errorf("export.Export: assets: %w", err)
	}

	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
