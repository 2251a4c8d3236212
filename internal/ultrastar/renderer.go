package ultrastar

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"text/template"
)

// SongTemplate est le nom (basename) du template d'en-tête attendu.
const SongTemplate = "ultrastar_song.txt.tmpl"

// Renderer gère le parsing paresseux (lazy) du template d'en-tête et fournit
// la méthode de rendu. La source peut être un embed.FS (tests) ou le dossier
// templates/ à côté du binaire.
type Renderer struct {
	templates *template.Template
	fsys      fs.FS
	patterns  []string
	once      sync.Once // protège l'initialisation paresseuse
	err       error     // mémorise l'erreur d'initialisation
}

// NewRendererFromFS construit un Renderer qui parsera ultérieurement les
// patterns fournis depuis fsys (ne parse pas immédiatement).
func NewRendererFromFS(fsys fs.FS, patterns []string) (*Renderer, error) {
	if fsys == nil {
		return nil, fmt.Errorf("fsys est nil")
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("aucun template fourni")
	}
	cp := append([]string(nil), patterns...)
	return &Renderer{fsys: fsys, patterns: cp}, nil
}

// DefaultRenderer lit les templates depuis le dossier à côté du binaire et
// parse tout de suite.
func DefaultRenderer(exePath string) (*Renderer, error) {
	tplDir := filepath.Join(filepath.Dir(exePath), "templates")

	r, err := NewRendererFromFS(os.DirFS(tplDir), []string{SongTemplate})
	if err != nil {
		return nil, err
	}
	if err := r.ParseNow(); err != nil {
		return nil, err
	}
	return r, nil
}

// parseTemplates effectue le parsing une seule fois (sync.Once).
func (r *Renderer) parseTemplates() error {
	r.once.Do(func() {
		t := template.New("root").Funcs(baseFuncMap())
		for _, p := range r.patterns {
			var parseErr error
			t, parseErr = t.ParseFS(r.fsys, p)
			if parseErr != nil {
				r.err = fmt.Errorf("parse pattern %q: %w", p, parseErr)
				return
			}
		}
		r.templates = t
	})
	return r.err
}

// ParseNow force le parsing immédiat et retourne l'erreur éventuelle.
func (r *Renderer) ParseNow() error {
	if r == nil {
		return fmt.Errorf("nil renderer")
	}
	return r.parseTemplates()
}

// RenderHeader exécute le template d'en-tête avec les données du Header.
func (r *Renderer) RenderHeader(h Header) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer is nil")
	}
	if err := r.parseTemplates(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, SongTemplate, h); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", SongTemplate, err)
	}
	return buf.Bytes(), nil
}

// baseFuncMap expose les fonctions utilisables dans les templates.
func baseFuncMap() template.FuncMap {
	return template.FuncMap{
		// UltraStar attend un tempo décimal ("300.0"), jamais un entier nu.
		"bpm": func(v float64) string {
			return strconv.FormatFloat(v, 'f', 1, 64)
		},
	}
}
