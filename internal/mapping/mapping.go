// Package mapping converts the spreadsheet that maps RBN verb feature sets
// to English FrameNet frames into JSON, and reads that JSON back.
package mapping

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
)

// Spreadsheet layout.
const (
	SheetName      = "the_mapping"
	FeatureSetCol  = "RBN feature set"
	FrameNetFrames = "English FrameNet frames"
)

// Mapping is feature set → frames in first-seen order.
type Mapping map[string][]string

// Frames returns the frames for a feature set, or nil.
func (m Mapping) Frames(featureSet string) []string { return m[featureSet] }

// Stats holds conversion counters for logging.
type Stats struct {
	Rows        int
	FeatureSets int
	Frames      int
}

// ReadExcel reads the mapping sheet of the workbook at path.
func ReadExcel(path string) (Mapping, Stats, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("read sheet %q: %w", SheetName, err)
	}
	return FromRows(rows)
}

// FromRows builds a Mapping from a header row followed by data rows.
// Frames are split on commas and trimmed; rows repeating a feature set merge
// into the earlier one.
func FromRows(rows [][]string) (Mapping, Stats, error) {
	var stats Stats
	if len(rows) == 0 {
		return nil, stats, domain.NewValidationError("sheet", "no header row")
	}

	featureIdx := lo.IndexOf(rows[0], FeatureSetCol)
	framesIdx := lo.IndexOf(rows[0], FrameNetFrames)
	var errs []domain.FieldError
	if featureIdx < 0 {
		errs = append(errs, domain.FieldError{Field: FeatureSetCol, Message: "column not found"})
	}
	if framesIdx < 0 {
		errs = append(errs, domain.FieldError{Field: FrameNetFrames, Message: "column not found"})
	}
	if len(errs) > 0 {
		return nil, stats, domain.NewValidationErrors(errs)
	}

	m := make(Mapping)
	for _, row := range rows[1:] {
		featureSet := strings.TrimSpace(cell(row, featureIdx))
		if featureSet == "" {
			continue
		}
		stats.Rows++
		for _, frame := range strings.Split(cell(row, framesIdx), ",") {
			frame = strings.TrimSpace(frame)
			if frame == "" || lo.Contains(m[featureSet], frame) {
				continue
			}
			m[featureSet] = append(m[featureSet], frame)
			stats.Frames++
		}
		if _, ok := m[featureSet]; !ok {
			m[featureSet] = []string{}
		}
	}
	stats.FeatureSets = len(m)
	return m, stats, nil
}

// cell returns row[i], or "" when the row is shorter.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// WriteJSON writes m with sorted keys and four-space indentation.
func WriteJSON(w io.Writer, m Mapping) error {
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal mapping: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write mapping: %w", err)
	}
	return nil
}

// WriteFile writes m as JSON to path.
func WriteFile(path string, m Mapping) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile loads a mapping written by WriteFile.
func ReadFile(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var m Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}
