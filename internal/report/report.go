// Package report renders beam analyses as PDF and XLSX documents.
package report

import (
	"io"
	"os"
	"time"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// MaxTableRows bounds the sampled diagram table in the PDF
const MaxTableRows = 21

// Meta describes the document header
type Meta struct {
	Title   string    `json:"title"`
	Project string    `json:"project"`
	Author  string    `json:"author"`
	Notes   string    `json:"notes"`
	Date    time.Time `json:"-"`
}

func (m Meta) withDefaults() Meta {
	if m.Title == "" {
		m.Title = "Beam Analysis Report"
	}
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	return m
}

// SampleIndices picks at most limit evenly spaced indices out of n, always
// including the first and the last.
func SampleIndices(n, limit int) []int {
	if n <= 0 || limit <= 0 {
		return nil
	}
	if n <= limit {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	if limit == 1 {
		return []int{0}
	}

	step := (n - 1 + limit - 2) / (limit - 1) // ceil((n-1)/(limit-1))
	var idx []int
	for i := 0; i < n-1; i += step {
		idx = append(idx, i)
	}
	return append(idx, n-1)
}

// SavePDF writes the PDF report to path
func SavePDF(path string, a *beam.Analysis, meta Meta) error {
	return save(path, func(w io.Writer) error { return WritePDF(w, a, meta) })
}

// SaveXLSX writes the spreadsheet to path
func SaveXLSX(path string, a *beam.Analysis, meta Meta) error {
	return save(path, func(w io.Writer) error { return WriteXLSX(w, a, meta) })
}

func save(path string, write func(io.Writer) error) error {
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
