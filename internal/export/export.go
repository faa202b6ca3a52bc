// Package export writes the home page and its assets as plain files, for
// hosting the site without the Go server.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/a-h/templ"
	"github.com/madhatterpub/site/internal/content"
	"github.com/madhatterpub/site/internal/location"
	"github.com/madhatterpub/site/internal/rendering"
	"github.com/madhatterpub/site/internal/view"
	"github.com/spf13/afero"
)

// Page builds the home page for a visitor state. *handlers.HomeHandler
// satisfies it.
type Page interface {
	Page(ctx context.Context, st view.UIState) templ.Component
}

// Options describe one export.
type Options struct {
	Page     Page
	Store    *content.Store
	Renderer rendering.Renderer
	// Static is copied below static/.
	Static fs.FS
}

// Result lists the files written, relative to the destination.
type Result struct {
	Files []string
}

// Site writes index.html, the static assets and the directions QR code to
// dst. The page is rendered as a first-time visitor sees it.
func Site(ctx context.Context, dst afero.Fs, opts Options) (Result, error) {
	var res Result
	write := func(name string, data []byte) error {
		if err := dst.MkdirAll(path.Dir(name), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", name, err)
		}
		if err := afero.WriteFile(dst, name, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		res.Files = append(res.Files, name)
		slog.DebugContext(ctx, "Exported file", "file", name, "bytes", len(data))
		return nil
	}

	html, err := opts.Renderer.RenderComponent(ctx, opts.Page.Page(ctx, view.DefaultState()))
	if err != nil {
		return res, fmt.Errorf("failed to render home page: %w", err)
	}
	if err := write("index.html", html); err != nil {
		return res, err
	}

	if opts.Static != nil {
		err := fs.WalkDir(opts.Static, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			data, err := fs.ReadFile(opts.Static, p)
			if err != nil {
				return err
			}
			return write(path.Join("static", p), data)
		})
		if err != nil {
			return res, fmt.Errorf("failed to copy static assets: %w", err)
		}
	}

	png, err := location.DirectionsQR(opts.Store.Current().Location.Address, location.DefaultQRSize)
	if err != nil {
		return res, err
	}
	if err := write("location/directions.png", png); err != nil {
		return res, err
	}
	return res, nil
}
