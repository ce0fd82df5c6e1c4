package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/numlab/internal/report"
)

const (
	metadataFile = "metadata.json"
	seriesFile   = "series.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Driver    string             `json:"driver"`
	Family    string             `json:"family"`
	Title     string             `json:"title"`
	Timestamp time.Time          `json:"timestamp"`
	Values    map[string]float64 `json:"values"`
	Warnings  []string           `json:"warnings"`
	Series    []string           `json:"series"`
	Output    []string           `json:"output"`
}

// Save writes r under <base>/<driver>_<unix>/ and returns the run id.
func (s *Store) Save(r *report.Report) (string, error) {
	runID, runDir, err := s.newRunDir(r.Driver, r.CreatedAt)
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Driver:    r.Driver,
		Family:    r.Family,
		Title:     r.Title,
		Timestamp: r.CreatedAt,
		Values:    r.Values,
		Warnings:  r.Warnings,
		Series:    r.SeriesNames(),
		Output:    r.Lines(),
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	if err := writeSeries(filepath.Join(runDir, seriesFile), r); err != nil {
		return "", err
	}

	return runID, nil
}

// newRunDir creates the run directory, suffixing the id when two runs of
// the same driver land in the same second.
func (s *Store) newRunDir(driver string, at time.Time) (string, string, error) {
	if at.IsZero() {
		at = time.Now()
	}
	base := fmt.Sprintf("%s_%d", driver, at.Unix())

	runID := base
	for i := 2; ; i++ {
		runDir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			return runID, runDir, nil
		}
		if os.IsNotExist(err) {
			if err := s.Init(); err != nil {
				return "", "", err
			}
			continue
		}
		if !os.IsExist(err) {
			return "", "", err
		}
		runID = fmt.Sprintf("%s-%d", base, i)
	}
}

func writeJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSeries(path string, r *report.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"series", "index", "value"}); err != nil {
		return err
	}

	for _, name := range r.SeriesNames() {
		for i, v := range r.Series[name] {
			row := []string{name, strconv.Itoa(i), strconv.FormatFloat(v, 'g', -1, 64)}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
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

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadSeries reads series.csv back into named sequences.
func (s *Store) LoadSeries(runID string) (map[string][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, seriesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 3

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	series := make(map[string][]float64)
	for i := 1; i < len(records); i++ {
		record := records[i]
		val, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("run %s line %d: %w", runID, i+1, err)
		}
		series[record[0]] = append(series[record[0]], val)
	}
	return series, nil
}

// LoadReport rebuilds a report from a saved run: values, warnings and
// series are restored, the printed output becomes a single section.
func (s *Store) LoadReport(runID string) (*report.Report, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	series, err := s.LoadSeries(runID)
	if err != nil {
		return nil, err
	}

	r := report.New(meta.Driver, meta.Family, meta.Title)
	r.CreatedAt = meta.Timestamp
	for k, v := range meta.Values {
		r.Value(k, v)
	}
	r.Warnings = append(r.Warnings, meta.Warnings...)

	if len(meta.Output) > 0 {
		r.Section("")
		for _, line := range meta.Output {
			r.Printf("%s", line)
		}
	}

	for _, name := range meta.Series {
		r.AddSeries(name, series[name])
	}
	return r, nil
}
