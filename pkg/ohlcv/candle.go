package ohlcv

import "time"

// Candle is the concrete bar value used by the data source, the writer, and
// tests. The field names carry the Get prefix on the accessor side only, so
// the struct stays directly loadable from CSV/JSON records.
type Candle struct {
	Time   time.Time `csv:"time" json:"time"`
	Open   float64   `csv:"open" json:"open"`
	High   float64   `csv:"high" json:"high"`
	Low    float64   `csv:"low" json:"low"`
	Close  float64   `csv:"close" json:"close"`
	Volume float64   `csv:"volume" json:"volume"`
}

// GetOpen returns the opening price of the candle.
func (c Candle) GetOpen() float64 {
	return c.Open
}

// GetHigh returns the highest price of the candle.
func (c Candle) GetHigh() float64 {
	return c.High
}

// GetLow returns the lowest price of the candle.
func (c Candle) GetLow() float64 {
	return c.Low
}

// GetClose returns the closing price of the candle.
func (c Candle) GetClose() float64 {
	return c.Close
}

// GetVolume returns the traded volume of the candle.
func (c Candle) GetVolume() float64 {
	return c.Volume
}
