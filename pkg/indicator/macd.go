package indicator

import (
	"github.com/rxtech-lab/tide/pkg/errors"
	"github.com/rxtech-lab/tide/pkg/ohlcv"
)

// MACD is the configuration of the moving average convergence/divergence
// indicator. Result shape: two raw values (the macd line and the signal
// line) plus one action emitted when the macd line crosses the signal line.
type MACD[T ohlcv.OHLCV] struct {
	// FastPeriod is the short EMA length, at least 1 and below SlowPeriod.
	FastPeriod int
	// SlowPeriod is the long EMA length.
	SlowPeriod int
	// SignalPeriod is the EMA length smoothing the macd line, at least 1.
	SignalPeriod int
	// Source selects which price of the bar is measured.
	Source ohlcv.Source
}

// NewMACD creates a MACD configuration with default parameters.
func NewMACD[T ohlcv.OHLCV]() *MACD[T] {
	return &MACD[T]{
		FastPeriod:   12,
		SlowPeriod:   26,
		SignalPeriod: 9,
		Source:       ohlcv.SourceClose,
	}
}

// Name returns the name of the indicator.
func (c *MACD[T]) Name() IndicatorType {
	return IndicatorTypeMACD
}

// Validate reports whether the parameter combination is internally consistent.
func (c *MACD[T]) Validate() bool {
	return c.FastPeriod >= 1 && c.SignalPeriod >= 1 && c.FastPeriod < c.SlowPeriod && c.Source.Valid()
}

// Set updates a parameter by name. Recognized names: fast_period,
// slow_period, signal_period, source.
func (c *MACD[T]) Set(name string, value string) error {
	switch name {
	case "fast_period":
		period, err := parsePeriod(name, value)
		if err != nil {
			return err
		}

		c.FastPeriod = period
	case "slow_period":
		period, err := parsePeriod(name, value)
		if err != nil {
			return err
		}

		c.SlowPeriod = period
	case "signal_period":
		period, err := parsePeriod(name, value)
		if err != nil {
			return err
		}

		c.SignalPeriod = period
	case "source":
		source, err := ohlcv.ParseSource(value)
		if err != nil {
			return err
		}

		c.Source = source
	default:
		return unknownParameter(c.Name(), name)
	}

	return nil
}

// Size returns the declared result shape.
func (c *MACD[T]) Size() (int, int) {
	return 2, 1
}

// Init validates the configuration and seeds the running instance with both
// price EMAs at the seed bar's selected price, so the macd line starts flat
// at zero.
func (c *MACD[T]) Init(seed T) (IndicatorInstance[T], error) {
	switch {
	case c.FastPeriod < 1:
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "macd fast period must be at least 1, got %d", c.FastPeriod)
	case c.SignalPeriod < 1:
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "macd signal period must be at least 1, got %d", c.SignalPeriod)
	case c.FastPeriod >= c.SlowPeriod:
		return nil, errors.Newf(errors.ErrCodeInvalidPeriodOrder, "macd fast period %d must be below slow period %d", c.FastPeriod, c.SlowPeriod)
	case !c.Source.Valid():
		return nil, errors.Newf(errors.ErrCodeInvalidSource, "macd source %q is not recognized", c.Source)
	}

	price := c.Source.Price(seed)

	return &macdInstance[T]{
		config:     *c,
		fastEMA:    price,
		slowEMA:    price,
		signalLine: 0,
		cross:      NewCross(0, 0),
	}, nil
}

// macdInstance holds the three exponential accumulators of one stream.
type macdInstance[T ohlcv.OHLCV] struct {
	config MACD[T]

	fastEMA    float64
	slowEMA    float64
	signalLine float64
	cross      *Cross
}

// Name returns the name of the indicator.
func (i *macdInstance[T]) Name() IndicatorType {
	return i.config.Name()
}

// Size returns the declared result shape.
func (i *macdInstance[T]) Size() (int, int) {
	return i.config.Size()
}

// Next consumes one bar and returns the updated macd and signal lines.
func (i *macdInstance[T]) Next(bar T) Result {
	price := i.config.Source.Price(bar)

	fastAlpha := 2 / (float64(i.config.FastPeriod) + 1)
	slowAlpha := 2 / (float64(i.config.SlowPeriod) + 1)
	signalAlpha := 2 / (float64(i.config.SignalPeriod) + 1)

	i.fastEMA = price*fastAlpha + i.fastEMA*(1-fastAlpha)
	i.slowEMA = price*slowAlpha + i.slowEMA*(1-slowAlpha)

	macdLine := i.fastEMA - i.slowEMA
	i.signalLine = macdLine*signalAlpha + i.signalLine*(1-signalAlpha)

	action := i.cross.Update(macdLine, i.signalLine)

	return NewResult([]float64{macdLine, i.signalLine}, []Action{action})
}
