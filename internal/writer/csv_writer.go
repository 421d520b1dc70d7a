// Package writer persists evaluation results as CSV. Each record pairs the
// source candle's timestamp with the raw values and trading actions the
// indicator produced for that bar.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/rxtech-lab/tide/pkg/errors"
	"github.com/rxtech-lab/tide/pkg/indicator"
	"github.com/rxtech-lab/tide/pkg/ohlcv"
)

// ResultWriter writes one evaluation run to a CSV file.
type ResultWriter struct {
	// RawCount and ActionCount set the column layout; every result of the
	// run must match this shape.
	RawCount    int
	ActionCount int
}

// NewResultWriter creates a writer for the shape a configuration declares.
func NewResultWriter(config interface{ Size() (int, int) }) *ResultWriter {
	rawCount, actionCount := config.Size()

	return &ResultWriter{
		RawCount:    rawCount,
		ActionCount: actionCount,
	}
}

// DefaultOutputPath builds a unique output path for an unnamed run.
func DefaultOutputPath(dir string, name indicator.IndicatorType) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.csv", name, uuid.New().String()))
}

// WriteFile writes the run to the CSV file at path, creating parent
// directories as needed.
func (w *ResultWriter) WriteFile(path string, candles []ohlcv.Candle, results []indicator.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(errors.ErrCodeResultWriteFailed, err, "failed to create output directory for %q", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeResultWriteFailed, err, "failed to create output file %q", path)
	}
	defer file.Close()

	return w.Write(file, candles, results)
}

// Write writes the run as CSV to out. The candle and result series must have
// equal length since results are produced one per bar.
func (w *ResultWriter) Write(out io.Writer, candles []ohlcv.Candle, results []indicator.Result) error {
	if len(candles) != len(results) {
		return errors.Newf(errors.ErrCodeResultWriteFailed,
			"result count %d does not match candle count %d", len(results), len(candles))
	}

	writer := csv.NewWriter(out)

	if err := writer.Write(w.header()); err != nil {
		return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to write result header", err)
	}

	for i, result := range results {
		if err := writer.Write(w.record(candles[i], result)); err != nil {
			return errors.Wrapf(errors.ErrCodeResultWriteFailed, err, "failed to write result record %d", i)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to flush result file", err)
	}

	return nil
}

func (w *ResultWriter) header() []string {
	header := []string{"time"}
	for i := 0; i < w.RawCount; i++ {
		header = append(header, fmt.Sprintf("value_%d", i))
	}

	for i := 0; i < w.ActionCount; i++ {
		header = append(header, fmt.Sprintf("action_%d", i))
	}

	return header
}

func (w *ResultWriter) record(candle ohlcv.Candle, result indicator.Result) []string {
	record := []string{candle.Time.Format("2006-01-02T15:04:05Z07:00")}
	for i := 0; i < w.RawCount; i++ {
		record = append(record, strconv.FormatFloat(result.Value(i), 'f', -1, 64))
	}

	for i := 0; i < w.ActionCount; i++ {
		record = append(record, result.Action(i).String())
	}

	return record
}
