package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rxtech-lab/tide/pkg/errors"
	"github.com/rxtech-lab/tide/pkg/indicator"
	"github.com/rxtech-lab/tide/pkg/ohlcv"
	"github.com/stretchr/testify/suite"
)

type WriterTestSuite struct {
	suite.Suite
}

func TestWriterSuite(t *testing.T) {
	suite.Run(t, new(WriterTestSuite))
}

func testCandles(closes ...float64) []ohlcv.Candle {
	candles := make([]ohlcv.Candle, len(closes))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, c := range closes {
		candles[i] = ohlcv.Candle{
			Time:   start.Add(time.Duration(i) * time.Hour),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1,
		}
	}

	return candles
}

func (suite *WriterTestSuite) TestWrite() {
	w := &ResultWriter{RawCount: 2, ActionCount: 1}
	candles := testCandles(100, 101)
	results := []indicator.Result{
		indicator.NewResult([]float64{1.5, 2}, []indicator.Action{indicator.ActionNone}),
		indicator.NewResult([]float64{1.25, -3}, []indicator.Action{indicator.ActionBuy}),
	}

	var buf bytes.Buffer
	suite.Require().NoError(w.Write(&buf, candles, results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	suite.Require().Len(lines, 3)
	suite.Equal("time,value_0,value_1,action_0", lines[0])
	suite.Equal("2024-01-01T00:00:00Z,1.5,2,none", lines[1])
	suite.Equal("2024-01-01T01:00:00Z,1.25,-3,buy", lines[2])
}

func (suite *WriterTestSuite) TestWriteLengthMismatch() {
	w := &ResultWriter{RawCount: 1, ActionCount: 0}
	candles := testCandles(100, 101)
	results := []indicator.Result{
		indicator.NewResult([]float64{1}, nil),
	}

	err := w.Write(&bytes.Buffer{}, candles, results)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeResultWriteFailed))
}

func (suite *WriterTestSuite) TestWriteFile() {
	path := filepath.Join(suite.T().TempDir(), "out", "run.csv")

	w := &ResultWriter{RawCount: 1, ActionCount: 0}
	candles := testCandles(100)
	results := []indicator.Result{
		indicator.NewResult([]float64{42}, nil),
	}

	suite.Require().NoError(w.WriteFile(path, candles, results))

	content, err := os.ReadFile(path)
	suite.Require().NoError(err)
	suite.Contains(string(content), "time,value_0")
	suite.Contains(string(content), "42")
}

func (suite *WriterTestSuite) TestNewResultWriterFromConfig() {
	config := &indicator.MACD[ohlcv.Candle]{
		FastPeriod:   12,
		SlowPeriod:   26,
		SignalPeriod: 9,
		Source:       ohlcv.SourceClose,
	}

	w := NewResultWriter(config)
	suite.Equal(2, w.RawCount)
	suite.Equal(1, w.ActionCount)
}

func (suite *WriterTestSuite) TestDefaultOutputPath() {
	first := DefaultOutputPath("results", indicator.IndicatorTypeRSI)
	second := DefaultOutputPath("results", indicator.IndicatorTypeRSI)

	suite.True(strings.HasPrefix(filepath.Base(first), "rsi_"))
	suite.True(strings.HasSuffix(first, ".csv"))
	suite.NotEqual(first, second)
}
