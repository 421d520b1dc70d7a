package indicator

import (
	"github.com/rxtech-lab/tide/pkg/errors"
	"github.com/rxtech-lab/tide/pkg/ohlcv"
)

// RSI is the configuration of the relative strength index indicator using
// Wilder's smoothing. The raw value is scaled to [0, 1]. Result shape: one
// raw value plus one action emitted when the index leaves the oversold zone
// upwards (buy) or the overbought zone downwards (sell).
type RSI[T ohlcv.OHLCV] struct {
	// Period is the smoothing length, at least 2.
	Period int
	// Zone is the oversold threshold in (0, 0.5]; the overbought threshold
	// is its mirror 1 - Zone.
	Zone float64
	// Source selects which price of the bar is measured.
	Source ohlcv.Source
}

// NewRSI creates an RSI configuration with default parameters.
func NewRSI[T ohlcv.OHLCV]() *RSI[T] {
	return &RSI[T]{
		Period: 14,
		Zone:   0.3,
		Source: ohlcv.SourceClose,
	}
}

// Name returns the name of the indicator.
func (c *RSI[T]) Name() IndicatorType {
	return IndicatorTypeRSI
}

// Validate reports whether the parameter combination is internally consistent.
func (c *RSI[T]) Validate() bool {
	return c.Period >= 2 && c.Zone > 0 && c.Zone <= 0.5 && c.Source.Valid()
}

// Set updates a parameter by name. Recognized names: period, zone, source.
func (c *RSI[T]) Set(name string, value string) error {
	switch name {
	case "period":
		period, err := parsePeriod(name, value)
		if err != nil {
			return err
		}

		c.Period = period
	case "zone":
		zone, err := parseFloat(name, value)
		if err != nil {
			return err
		}

		c.Zone = zone
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
func (c *RSI[T]) Size() (int, int) {
	return 1, 1
}

// Init validates the configuration and seeds the running instance. The seed
// bar only primes the previous-price accumulator; the smoothed averages
// start empty and converge as bars arrive.
func (c *RSI[T]) Init(seed T) (IndicatorInstance[T], error) {
	switch {
	case c.Period < 2:
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "rsi period must be at least 2, got %d", c.Period)
	case c.Zone <= 0 || c.Zone > 0.5:
		return nil, errors.Newf(errors.ErrCodeInvalidZone, "rsi zone must be in (0, 0.5], got %g", c.Zone)
	case !c.Source.Valid():
		return nil, errors.Newf(errors.ErrCodeInvalidSource, "rsi source %q is not recognized", c.Source)
	}

	// The index is undefined until the first change arrives; prime the
	// cross trackers at the neutral midpoint.
	return &rsiInstance[T]{
		config:     *c,
		previous:   c.Source.Price(seed),
		avgGain:    0,
		avgLoss:    0,
		lowerCross: NewCross(0.5, c.Zone),
		upperCross: NewCross(0.5, 1-c.Zone),
	}, nil
}

// rsiInstance holds Wilder's smoothed gain/loss accumulators of one stream.
type rsiInstance[T ohlcv.OHLCV] struct {
	config RSI[T]

	previous   float64
	avgGain    float64
	avgLoss    float64
	lowerCross *Cross
	upperCross *Cross
}

// Name returns the name of the indicator.
func (i *rsiInstance[T]) Name() IndicatorType {
	return i.config.Name()
}

// Size returns the declared result shape.
func (i *rsiInstance[T]) Size() (int, int) {
	return i.config.Size()
}

// Next consumes one bar and returns the updated index. A flat stream with no
// gains and no losses resolves to the neutral value 0.5 rather than failing
// on the zero denominator.
func (i *rsiInstance[T]) Next(bar T) Result {
	price := i.config.Source.Price(bar)
	change := price - i.previous
	i.previous = price

	gain := 0.0
	loss := 0.0

	if change > 0 {
		gain = change
	} else {
		loss = -change
	}

	period := float64(i.config.Period)
	i.avgGain = (i.avgGain*(period-1) + gain) / period
	i.avgLoss = (i.avgLoss*(period-1) + loss) / period

	value := 0.5
	if denominator := i.avgGain + i.avgLoss; denominator != 0 {
		value = i.avgGain / denominator
	}

	// Both trackers advance every bar; only the oversold bounce and the
	// overbought drop surface as actions.
	action := ActionNone

	if a := i.lowerCross.Update(value, i.config.Zone); a == ActionBuy {
		action = ActionBuy
	}

	if a := i.upperCross.Update(value, 1-i.config.Zone); a == ActionSell {
		action = ActionSell
	}

	return NewResult([]float64{value}, []Action{action})
}
