// Package queue provides the question stores behind the automation
// pipeline.
package queue

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"github.com/natefinch/atomic"

	"github.com/foliate-press/foliate/internal/usecase"
)

const (
	questionColumn  = "Question"
	statusColumn    = "Status"
	statusPublished = "Published"
)

// CSVStore keeps the question queue in a csv file with a Question and a
// Status column. Columns it does not understand are carried through
// unchanged on rewrite. A question's ID is its text; the file format has
// no other stable key.
type CSVStore struct {
	path    string
	mu      sync.Mutex
	headers []string
	rows    []map[string]string
}

func OpenCSV(path string) (*CSVStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open question queue %s: %w", path, err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse question queue %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("question queue %s has no header row", path)
	}

	headers := records[0]
	hasQuestion := false
	hasStatus := false
	for _, h := range headers {
		switch h {
		case questionColumn:
			hasQuestion = true
		case statusColumn:
			hasStatus = true
		}
	}
	if !hasQuestion {
		return nil, fmt.Errorf("question queue %s missing %q column", path, questionColumn)
	}
	if !hasStatus {
		headers = append(headers, statusColumn)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range records[0] {
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return &CSVStore{path: path, headers: headers, rows: rows}, nil
}

func (s *CSVStore) Pending(_ context.Context) ([]usecase.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []usecase.Question
	for _, row := range s.rows {
		text := row[questionColumn]
		if text == "" || row[statusColumn] == statusPublished {
			continue
		}
		pending = append(pending, usecase.Question{ID: text, Text: text})
	}
	return pending, nil
}

func (s *CSVStore) MarkPublished(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, row := range s.rows {
		if row[questionColumn] == id {
			row[statusColumn] = statusPublished
			found = true
		}
	}
	if !found {
		return fmt.Errorf("question %q not in queue", id)
	}

	return s.save()
}

// save rewrites the whole file. The queue is small; atomic replace
// keeps a crash from truncating it.
func (s *CSVStore) save() error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(s.headers); err != nil {
		return err
	}
	for _, row := range s.rows {
		record := make([]string, len(s.headers))
		for i, h := range s.headers {
			record[i] = row[h]
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	return atomic.WriteFile(s.path, &buf)
}
