package usecase

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// FailureReport streams failed rows into a report artifact as they occur,
// so memory stays bounded no matter how large the batch is. The artifact
// is only created when the first failure arrives; a clean batch produces
// nothing. The layout is the input columns plus a trailing "error" column.
type FailureReport struct {
	sink    ReportSink
	columns []string
	name    string
	file    io.WriteCloser
	writer  *csv.Writer
	rows    int
}

func NewFailureReport(sink ReportSink, columns []string) *FailureReport {
	return &FailureReport{sink: sink, columns: columns}
}

// Add appends one failed row with its reason, creating the artifact and
// writing the header on the first call.
func (r *FailureReport) Add(row map[string]string, reason string) error {
	if r.file == nil {
		if err := r.create(); err != nil {
			return err
		}
	}

	record := make([]string, 0, len(r.columns)+1)
	for _, col := range r.columns {
		record = append(record, row[col])
	}
	record = append(record, reason)

	if err := r.writer.Write(record); err != nil {
		return fmt.Errorf("failed to write report row: %w", err)
	}
	r.rows++
	return nil
}

func (r *FailureReport) create() error {
	// Each batch gets its own artifact name so two runs never clobber
	// each other's reports.
	r.name = fmt.Sprintf("failed_records_%s_%s.csv",
		time.Now().UTC().Format("20060102T150405Z"), uuid.New().String()[:8])

	file, err := r.sink.Create(r.name)
	if err != nil {
		return fmt.Errorf("failed to create failure report: %w", err)
	}
	r.file = file
	r.writer = csv.NewWriter(file)

	header := append(append([]string{}, r.columns...), "error")
	if err := r.writer.Write(header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	return nil
}

// Rows reports how many failed rows have been written so far.
func (r *FailureReport) Rows() int {
	return r.rows
}

// Close flushes and closes the artifact. It returns the artifact name, or
// "" when no failure was ever added.
func (r *FailureReport) Close() (string, error) {
	if r.file == nil {
		return "", nil
	}
	r.writer.Flush()
	flushErr := r.writer.Error()
	if err := r.file.Close(); err != nil {
		return r.name, err
	}
	return r.name, flushErr
}
