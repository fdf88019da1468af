package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"
)

//go:embed templates/*.html
var files embed.FS

const (
	layoutFile  = "templates/layout.html"
	partialFile = "templates/partials.html"
)

// Engine renders the embedded pages. Each page defines "content"; the
// layout wraps it.
type Engine struct {
	mu    sync.RWMutex
	pages map[string]*template.Template
}

func New() *Engine {
	return &Engine{}
}

func (e *Engine) Load() error {
	base, err := template.New("base").Funcs(Funcs()).ParseFS(files, layoutFile, partialFile)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}
	names, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		return err
	}
	pages := map[string]*template.Template{}
	for _, name := range names {
		if name == layoutFile || name == partialFile {
			continue
		}
		clone, err := base.Clone()
		if err != nil {
			return err
		}
		if _, err := clone.ParseFS(files, name); err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		pages[strings.TrimSuffix(path.Base(name), ".html")] = clone
	}
	e.mu.Lock()
	e.pages = pages
	e.mu.Unlock()
	return nil
}

func (e *Engine) Render(w io.Writer, name string, data interface{}, layout ...string) error {
	e.mu.RLock()
	tmpl, ok := e.pages[name]
	e.mu.RUnlock()
	if !ok {
		return fmt.Errorf("view %q not found", name)
	}
	entry := "content"
	if len(layout) > 0 && layout[0] != "" {
		entry = layout[0]
	}
	return tmpl.ExecuteTemplate(w, entry, data)
}
