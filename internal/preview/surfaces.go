package preview

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"prospekt/internal/brochure"
	"prospekt/internal/logging"
)

// LogRenderer is the live surface for headless use: each render pass is
// reported through the logger instead of drawn.
type LogRenderer struct {
	log *logging.Logger
}

func NewLogRenderer(log *logging.Logger) *LogRenderer {
	return &LogRenderer{log: log}
}

func (r *LogRenderer) Render(doc brochure.Document, theme Theme) {
	r.log.Info("preview rendered",
		"project", doc.ProjectName,
		"theme", theme.Name,
		"floorPlans", len(doc.FloorPlans),
	)
}

// FileSurface is a print surface that captures the frozen snapshot and, on
// Print, writes it as a print-ready JSON file (document plus theme) instead
// of opening a dialog.
type FileSurface struct {
	path string

	mu       sync.Mutex
	snapshot brochure.Document
	theme    Theme
	rendered bool
}

func NewFileSurface(path string) *FileSurface {
	return &FileSurface{path: path}
}

func (s *FileSurface) Render(doc brochure.Document, theme Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = doc.Clone()
	s.theme = theme
	s.rendered = true
}

func (s *FileSurface) Print() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.rendered {
		return errors.New("print surface has no snapshot to print")
	}

	out := map[string]any{
		"document": brochure.ToMap(s.snapshot),
		"theme": map[string]any{
			"name":       s.theme.Name,
			"primary":    s.theme.Primary,
			"secondary":  s.theme.Secondary,
			"accent":     s.theme.Accent,
			"background": s.theme.Background,
			"text":       s.theme.Text,
		},
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode print snapshot: %w", err)
	}
	return os.WriteFile(s.path, data, 0o644)
}
