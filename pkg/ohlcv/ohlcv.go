// Package ohlcv defines the read-only bar abstraction consumed by indicators.
//
// Any type exposing the OHLCV capability set can be fed to any indicator
// configuration; the indicator packages are generic over the concrete bar
// representation, so the same indicator logic runs over differently-sourced
// candle types without adaptation.
package ohlcv

// OHLCV is the capability set of one time-ordered price/volume observation.
// Implementations expose finite open/high/low/close prices and a non-negative
// volume. Bars are borrowed read-only for the duration of one indicator step;
// the high >= max(open, close) >= min(open, close) >= low invariant is a
// contract of the bar source, not enforced here.
type OHLCV interface {
	// GetOpen returns the opening price of the bar.
	GetOpen() float64
	// GetHigh returns the highest price of the bar.
	GetHigh() float64
	// GetLow returns the lowest price of the bar.
	GetLow() float64
	// GetClose returns the closing price of the bar.
	GetClose() float64
	// GetVolume returns the traded volume of the bar.
	GetVolume() float64
}

// HL2 returns the middle of the bar's high-low range.
func HL2(v OHLCV) float64 {
	return (v.GetHigh() + v.GetLow()) / 2
}

// TypicalPrice returns the typical price (high + low + close) / 3.
func TypicalPrice(v OHLCV) float64 {
	return (v.GetHigh() + v.GetLow() + v.GetClose()) / 3
}

// OHLC4 returns the average of all four prices of the bar.
func OHLC4(v OHLCV) float64 {
	return (v.GetOpen() + v.GetHigh() + v.GetLow() + v.GetClose()) / 4
}

// VolumedPrice returns the typical price weighted by the bar's volume.
func VolumedPrice(v OHLCV) float64 {
	return TypicalPrice(v) * v.GetVolume()
}

// IsRising reports whether the bar closed above its open.
func IsRising(v OHLCV) bool {
	return v.GetClose() > v.GetOpen()
}

// IsFalling reports whether the bar closed below its open.
func IsFalling(v OHLCV) bool {
	return v.GetClose() < v.GetOpen()
}
