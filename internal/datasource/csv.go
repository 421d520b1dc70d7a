// Package datasource loads candle series from CSV files. The expected layout
// is a header row followed by time,open,high,low,close,volume records with
// RFC 3339 timestamps.
package datasource

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rxtech-lab/tide/pkg/errors"
	"github.com/rxtech-lab/tide/pkg/ohlcv"
)

// expected CSV column order
var columns = []string{"time", "open", "high", "low", "close", "volume"}

// LoadCandles reads every candle from the CSV file at path.
func LoadCandles(path string) ([]ohlcv.Candle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataReadFailed, err, "failed to open candle file %q", path)
	}
	defer file.Close()

	return ReadCandles(file)
}

// ReadCandles reads every candle from a CSV stream.
func ReadCandles(r io.Reader) ([]ohlcv.Candle, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(columns)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeDataParseFailed, "candle file is empty")
	}

	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataReadFailed, "failed to read candle header", err)
	}

	for i, name := range columns {
		if header[i] != name {
			return nil, errors.Newf(errors.ErrCodeDataParseFailed,
				"unexpected header column %d: got %q, want %q", i, header[i], name)
		}
	}

	var candles []ohlcv.Candle

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeDataReadFailed, err, "failed to read candle record at line %d", line)
		}

		candle, err := parseCandle(record)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "invalid candle record at line %d", line)
		}

		candles = append(candles, candle)
	}

	return candles, nil
}

func parseCandle(record []string) (ohlcv.Candle, error) {
	t, err := time.Parse(time.RFC3339, record[0])
	if err != nil {
		return ohlcv.Candle{}, err
	}

	fields := make([]float64, len(record)-1)
	for i, raw := range record[1:] {
		fields[i], err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return ohlcv.Candle{}, err
		}
	}

	return ohlcv.Candle{
		Time:   t,
		Open:   fields[0],
		High:   fields[1],
		Low:    fields[2],
		Close:  fields[3],
		Volume: fields[4],
	}, nil
}
