package indicator

import (
	"math"

	"github.com/rxtech-lab/tide/pkg/errors"
	"github.com/rxtech-lab/tide/pkg/ohlcv"
)

// Conv is the configuration of the convolution indicator: a moving average
// with an arbitrary weight sequence. The window length is the length of the
// weight sequence, with the last weight applied to the newest bar. Result
// shape: one raw value, no actions.
type Conv[T ohlcv.OHLCV] struct {
	// Weights is the convolution kernel, oldest bar first. Must be
	// non-empty and finite-valued.
	Weights []float64
	// Source selects which price of the bar is convolved.
	Source ohlcv.Source
}

// NewConv creates a Conv configuration with default parameters, an
// equal-weight kernel of length 5.
func NewConv[T ohlcv.OHLCV]() *Conv[T] {
	return &Conv[T]{
		Weights: []float64{1, 1, 1, 1, 1},
		Source:  ohlcv.SourceClose,
	}
}

// Name returns the name of the indicator.
func (c *Conv[T]) Name() IndicatorType {
	return IndicatorTypeConv
}

// Validate reports whether the parameter combination is internally consistent.
func (c *Conv[T]) Validate() bool {
	if len(c.Weights) == 0 {
		return false
	}

	for _, weight := range c.Weights {
		if math.IsNaN(weight) || math.IsInf(weight, 0) {
			return false
		}
	}

	return c.Source.Valid()
}

// Set updates a parameter by name. Recognized names: weights, source.
// Weights are parsed from comma-delimited text, e.g. "1, 2, 3".
func (c *Conv[T]) Set(name string, value string) error {
	switch name {
	case "weights":
		weights, err := parseWeights(name, value)
		if err != nil {
			return err
		}

		c.Weights = weights
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
func (c *Conv[T]) Size() (int, int) {
	return 1, 0
}

// Init validates the configuration and seeds the running instance with the
// seed bar's selected price replicated across the whole window. The instance
// keeps its own copy of the weight sequence, so mutating the configuration
// afterwards never affects a live stream.
func (c *Conv[T]) Init(seed T) (IndicatorInstance[T], error) {
	switch {
	case len(c.Weights) == 0:
		return nil, errors.New(errors.ErrCodeInvalidWeights, "conv weight sequence must not be empty")
	case !c.Validate():
		if !c.Source.Valid() {
			return nil, errors.Newf(errors.ErrCodeInvalidSource, "conv source %q is not recognized", c.Source)
		}

		return nil, errors.New(errors.ErrCodeInvalidWeights, "conv weight sequence must be finite-valued")
	}

	weights := make([]float64, len(c.Weights))
	copy(weights, c.Weights)

	weightSum := 0.0
	for _, weight := range weights {
		weightSum += weight
	}

	return &convInstance[T]{
		config:    *c,
		weights:   weights,
		weightSum: weightSum,
		window:    newWindow(len(weights), c.Source.Price(seed)),
	}, nil
}

// convInstance holds the rolling window of one stream.
type convInstance[T ohlcv.OHLCV] struct {
	config    Conv[T]
	weights   []float64
	weightSum float64
	window    *window
}

// Name returns the name of the indicator.
func (i *convInstance[T]) Name() IndicatorType {
	return i.config.Name()
}

// Size returns the declared result shape.
func (i *convInstance[T]) Size() (int, int) {
	return i.config.Size()
}

// Next consumes one bar and returns the updated convolution value. A kernel
// whose weights sum to zero (a differencing filter) skips normalization, so
// the step stays total.
func (i *convInstance[T]) Next(bar T) Result {
	i.window.push(i.config.Source.Price(bar))

	length := len(i.weights)
	dot := 0.0

	for back := 0; back < length; back++ {
		dot += i.weights[length-1-back] * i.window.at(back)
	}

	value := dot
	if i.weightSum != 0 {
		value = dot / i.weightSum
	}

	return NewResult([]float64{value}, nil)
}
