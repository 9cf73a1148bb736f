package csvfile

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrEmptyFile = errors.New("csv file is empty")

// Source streams rows from a CSV file one at a time. The first row is the
// header; every subsequent row is returned as a column -> value mapping.
// The file is never loaded into memory as a whole.
type Source struct {
	rc      io.ReadCloser
	reader  *csv.Reader
	columns []string
	cleanup func() error
}

// New wraps an already-open CSV stream. The header row is read eagerly so
// a file without one fails before any row is processed.
func New(rc io.ReadCloser) (*Source, error) {
	reader := csv.NewReader(bufio.NewReaderSize(rc, 64*1024))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		rc.Close()
		if err == io.EOF {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make([]string, len(header))
	for i, col := range header {
		columns[i] = strings.TrimSpace(col)
	}

	return &Source{rc: rc, reader: reader, columns: columns}, nil
}

// Open streams a staged upload from disk. Closing the source also removes
// the file, so the temp upload disappears once the batch is done with it.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open staged upload: %w", err)
	}

	source, err := New(file)
	if err != nil {
		os.Remove(path)
		return nil, err
	}

	source.cleanup = func() error { return os.Remove(path) }
	return source, nil
}

func (s *Source) Columns() []string {
	return s.columns
}

// Next returns the following row, or io.EOF once the file is exhausted.
// Short rows leave the missing columns out of the map; extra cells beyond
// the header are dropped.
func (s *Source) Next() (map[string]string, error) {
	record, err := s.reader.Read()
	if err != nil {
		return nil, err
	}

	row := make(map[string]string, len(s.columns))
	for i, col := range s.columns {
		if i >= len(record) {
			break
		}
		row[col] = record[i]
	}
	return row, nil
}

func (s *Source) Close() error {
	err := s.rc.Close()
	if s.cleanup != nil {
		if cleanupErr := s.cleanup(); err == nil {
			err = cleanupErr
		}
	}
	return err
}
