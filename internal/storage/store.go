package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scheme    string             `json:"scheme"`
	N         int                `json:"n"`
	Dt        float64            `json:"dt"`
	MaxTime   float64            `json:"max_time"`
	FinalTime float64            `json:"final_time"`
	Steps     int                `json:"steps"`
	Initial   string             `json:"initial"`
	Timestamp time.Time          `json:"timestamp"`
	Elapsed   time.Duration      `json:"elapsed_ns"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes metadata.json and profile.csv into a new run directory and
// returns the run ID. meta.ID and meta.Timestamp are filled in.
func (s *Store) Save(meta RunMetadata, grid, u []float64) (string, error) {
	if len(grid) != len(u) {
		return "", fmt.Errorf("storage: grid has %d points, profile has %d", len(grid), len(u))
	}

	now := s.now()
	runID := fmt.Sprintf("%s_%d", strings.ToLower(meta.Scheme), now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeProfile(filepath.Join(runDir, "profile.csv"), grid, u); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeProfile(path string, grid, u []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "u"}); err != nil {
		return err
	}
	for i := range grid {
		row := []string{
			strconv.FormatFloat(grid[i], 'g', -1, 64),
			strconv.FormatFloat(u[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns all stored runs, oldest first.
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadProfile reads the stored grid and solution of a run.
func (s *Store) LoadProfile(runID string) ([]float64, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "profile.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, []float64{}, nil
	}

	grid := make([]float64, 0, len(records)-1)
	u := make([]float64, 0, len(records)-1)
	for i, record := range records[1:] {
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("storage: profile row %d: %w", i+1, err)
		}
		v, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("storage: profile row %d: %w", i+1, err)
		}
		grid = append(grid, x)
		u = append(u, v)
	}
	return grid, u, nil
}
