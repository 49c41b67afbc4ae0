package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/sortlab/internal/experiment"
	"github.com/san-kum/sortlab/internal/export"
	"github.com/san-kum/sortlab/internal/viz"
)

const (
	metadataFile = "metadata.json"
	traceFile    = "trace.json"
	stepsFile    = "steps.csv"
	finalFile    = "final.svg"
)

// Store writes run artifacts into one directory per run. Artifacts are
// output only; nothing is loaded back for playback.
type Store struct {
	baseDir string
	theme   viz.Theme
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, theme: viz.ThemeCyberpunk}
}

// WithTheme sets the colors of the rendered SVG.
func (s *Store) WithTheme(t viz.Theme) *Store {
	s.theme = t
	return s
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Algorithm string             `json:"algorithm"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Size      int                `json:"size"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes metadata, the full trace as JSON and CSV, and an SVG of the
// final step. It returns the run ID, which is also the directory name.
func (s *Store) Save(res *experiment.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s", res.Algorithm, res.ID.String()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	now := time.Now()
	meta := RunMetadata{
		ID:        runID,
		Algorithm: string(res.Algorithm),
		Timestamp: now,
		Seed:      res.Seed,
		Size:      len(res.Initial),
		Steps:     res.Trace.Len(),
		Metrics:   res.Metrics,
	}
	if err := writeFile(filepath.Join(runDir, metadataFile), func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}); err != nil {
		return "", err
	}

	docMeta := export.Meta{
		ID:        res.ID,
		Algorithm: string(res.Algorithm),
		Seed:      res.Seed,
		Size:      len(res.Initial),
		CreatedAt: now,
		Metrics:   res.Metrics,
	}
	if err := writeFile(filepath.Join(runDir, traceFile), func(f *os.File) error {
		return export.WriteJSON(f, docMeta, res.Trace)
	}); err != nil {
		return "", err
	}

	if err := writeFile(filepath.Join(runDir, stepsFile), func(f *os.File) error {
		return export.WriteCSV(f, res.Trace)
	}); err != nil {
		return "", err
	}

	if res.Trace.Len() > 0 {
		svg := export.StepSVG(res.Trace.Last(), 800, 400, s.theme)
		if err := os.WriteFile(filepath.Join(runDir, finalFile), []byte(svg), 0644); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns the metadata of every saved run, oldest first. Directories
// without readable metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
