// Package indicator defines the configuration-to-instance lifecycle protocol
// shared by all streaming technical indicators, plus the built-in indicators.
//
// An IndicatorConfig is an immutable-until-mutated parameter bundle. It can be
// tuned field-by-field from text via Set, checked with Validate, and turned
// into a running IndicatorInstance with Init. The instance consumes one bar
// per Next call and emits one fixed-shape Result, with O(1) amortized work
// and bounded internal state. Eval is the only batch entry point and is
// defined strictly on top of Init and Next.
package indicator

import "github.com/rxtech-lab/tide/pkg/ohlcv"

// IndicatorType identifies an indicator variant by name.
type IndicatorType string

const (
	IndicatorTypeMovingAverage IndicatorType = "moving_average"
	IndicatorTypeConv          IndicatorType = "conv"
	IndicatorTypeRSI           IndicatorType = "rsi"
	IndicatorTypeMACD          IndicatorType = "macd"
)

// IndicatorConfig is the parameter bundle of one indicator variant, generic
// over the concrete bar representation.
//
// Init operates on a value receiver: the returned instance snapshots the
// configuration, so mutating the caller's config afterwards never affects a
// live instance.
type IndicatorConfig[T ohlcv.OHLCV] interface {
	// Validate reports whether the parameter combination is internally
	// consistent. It is pure and total: any field state reachable via Set
	// yields a defined true or false, never a panic.
	Validate() bool
	// Set looks up a parameter by its exact, case-sensitive name and parses
	// value into that parameter's native type. It fails with an
	// UnknownParameter error for unrecognized names and a ParseFailure error
	// for unconvertible text; on failure the configuration is left unchanged.
	Set(name string, value string) error
	// Name returns the name of the indicator variant.
	Name() IndicatorType
	// Size returns the declared result shape as (count of raw values,
	// count of actions). The shape is fixed by the parameter values alone
	// and requires no seed bar.
	Size() (int, int)
	// Init validates the configuration and allocates the running instance,
	// seeding its accumulators from seed so that the next bar produces a
	// well-defined output. It fails with an InvalidConfiguration error when
	// Validate would return false, before any state is allocated. The seed
	// bar itself does not emit a Result through Init.
	Init(seed T) (IndicatorInstance[T], error)
}

// IndicatorInstance is the mutable per-stream state produced by initializing
// an IndicatorConfig. An instance is single-owner and single-stream: exactly
// one ordered sequence of Next calls may drive it. Independent instances
// share no state and may be driven concurrently without locking.
type IndicatorInstance[T ohlcv.OHLCV] interface {
	// Next consumes one bar, advances the accumulators by one position, and
	// returns one Result matching the declared shape. It never fails for a
	// finite-valued bar; numeric edge cases resolve to defined fallback
	// values inside the indicator.
	Next(bar T) Result
	// Name returns the name of the indicator variant that produced this instance.
	Name() IndicatorType
	// Size returns the declared result shape, identical to the parent
	// configuration's shape for the whole life of the instance.
	Size() (int, int)
}
