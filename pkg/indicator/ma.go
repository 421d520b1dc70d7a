package indicator

import (
	"github.com/rxtech-lab/tide/pkg/errors"
	"github.com/rxtech-lab/tide/pkg/ohlcv"
)

// MAMethod selects the smoothing method of a MovingAverage configuration.
type MAMethod string

const (
	MAMethodSMA MAMethod = "sma"
	MAMethodEMA MAMethod = "ema"
	MAMethodWMA MAMethod = "wma"
)

// ParseMAMethod converts text into an MAMethod token.
func ParseMAMethod(value string) (MAMethod, error) {
	method := MAMethod(value)
	if !method.Valid() {
		return "", errors.Newf(errors.ErrCodeParseFailure, "cannot parse %q as moving average method", value)
	}

	return method, nil
}

// Valid reports whether the method is one of the recognized tokens.
func (m MAMethod) Valid() bool {
	switch m {
	case MAMethodSMA, MAMethodEMA, MAMethodWMA:
		return true
	default:
		return false
	}
}

// MovingAverage is the configuration of the moving average indicator. It
// smooths the selected price over Period bars using the selected method.
// Result shape: one raw value (the average), no actions.
type MovingAverage[T ohlcv.OHLCV] struct {
	// Period is the length of the smoothing window, at least 1.
	Period int
	// Method selects simple, exponential, or linearly-weighted smoothing.
	Method MAMethod
	// Source selects which price of the bar is smoothed.
	Source ohlcv.Source
}

// NewMovingAverage creates a MovingAverage configuration with default parameters.
func NewMovingAverage[T ohlcv.OHLCV]() *MovingAverage[T] {
	return &MovingAverage[T]{
		Period: 20,
		Method: MAMethodSMA,
		Source: ohlcv.SourceClose,
	}
}

// Name returns the name of the indicator.
func (c *MovingAverage[T]) Name() IndicatorType {
	return IndicatorTypeMovingAverage
}

// Validate reports whether the parameter combination is internally consistent.
func (c *MovingAverage[T]) Validate() bool {
	return c.Period >= 1 && c.Method.Valid() && c.Source.Valid()
}

// Set updates a parameter by name. Recognized names: period, method, source.
func (c *MovingAverage[T]) Set(name string, value string) error {
	switch name {
	case "period":
		period, err := parsePeriod(name, value)
		if err != nil {
			return err
		}

		c.Period = period
	case "method":
		method, err := ParseMAMethod(value)
		if err != nil {
			return err
		}

		c.Method = method
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
func (c *MovingAverage[T]) Size() (int, int) {
	return 1, 0
}

// Init validates the configuration and seeds the running instance with the
// seed bar's selected price replicated across the whole window.
func (c *MovingAverage[T]) Init(seed T) (IndicatorInstance[T], error) {
	switch {
	case c.Period < 1:
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "moving average period must be at least 1, got %d", c.Period)
	case !c.Method.Valid():
		return nil, errors.Newf(errors.ErrCodeInvalidMethod, "moving average method %q is not recognized", c.Method)
	case !c.Source.Valid():
		return nil, errors.Newf(errors.ErrCodeInvalidSource, "moving average source %q is not recognized", c.Source)
	}

	price := c.Source.Price(seed)
	period := float64(c.Period)
	denominator := period * (period + 1) / 2

	return &movingAverageInstance[T]{
		config:    *c,
		window:    newWindow(c.Period, price),
		sum:       price * period,
		numerator: price * denominator,
		previous:  price,
	}, nil
}

// movingAverageInstance holds the rolling accumulators of one stream. The
// configuration snapshot is immutable after Init.
type movingAverageInstance[T ohlcv.OHLCV] struct {
	config MovingAverage[T]

	window    *window
	sum       float64
	numerator float64
	previous  float64
}

// Name returns the name of the indicator.
func (i *movingAverageInstance[T]) Name() IndicatorType {
	return i.config.Name()
}

// Size returns the declared result shape.
func (i *movingAverageInstance[T]) Size() (int, int) {
	return i.config.Size()
}

// Next consumes one bar and returns the updated average.
func (i *movingAverageInstance[T]) Next(bar T) Result {
	price := i.config.Source.Price(bar)
	period := float64(i.config.Period)

	var value float64

	switch i.config.Method {
	case MAMethodEMA:
		alpha := 2 / (period + 1)
		i.previous = price*alpha + i.previous*(1-alpha)
		value = i.previous
	case MAMethodWMA:
		// Rolling linear-weight update: demoting every slot by one weight
		// subtracts the plain sum, then the newest slot enters at full weight.
		dropped := i.window.push(price)
		i.numerator += price*period - i.sum
		i.sum += price - dropped
		value = i.numerator / (period * (period + 1) / 2)
	case MAMethodSMA:
		dropped := i.window.push(price)
		i.sum += price - dropped
		value = i.sum / period
	default:
		dropped := i.window.push(price)
		i.sum += price - dropped
		value = i.sum / period
	}

	return NewResult([]float64{value}, nil)
}
