package storage

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"
)

type ExportData struct {
	ID        string               `json:"id"`
	Driver    string               `json:"driver"`
	Family    string               `json:"family"`
	Title     string               `json:"title"`
	Timestamp time.Time            `json:"timestamp"`
	Values    map[string]float64   `json:"values"`
	Warnings  []string             `json:"warnings"`
	Series    map[string][]float64 `json:"series"`
}

// ExportJSON writes a saved run, series included, as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	series, err := s.LoadSeries(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		ID:        meta.ID,
		Driver:    meta.Driver,
		Family:    meta.Family,
		Title:     meta.Title,
		Timestamp: meta.Timestamp,
		Values:    meta.Values,
		Warnings:  meta.Warnings,
		Series:    series,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV copies the run's series.csv to w.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	f, err := os.Open(filepath.Join(s.baseDir, runID, seriesFile))
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}
