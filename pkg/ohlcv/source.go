package ohlcv

import "github.com/rxtech-lab/tide/pkg/errors"

// Source selects which price of a bar an indicator reads. It is the
// enumerated-token parameter kind used by indicator configurations.
type Source string

const (
	SourceClose        Source = "close"
	SourceOpen         Source = "open"
	SourceHigh         Source = "high"
	SourceLow          Source = "low"
	SourceHL2          Source = "hl2"
	SourceTypicalPrice Source = "tp"
	SourceOHLC4        Source = "ohlc4"
	SourceVolumedPrice Source = "volumed_price"
)

// ParseSource converts text into a Source token.
func ParseSource(value string) (Source, error) {
	source := Source(value)
	if !source.Valid() {
		return "", errors.Newf(errors.ErrCodeParseFailure, "cannot parse %q as price source", value)
	}

	return source, nil
}

// Valid reports whether the source is one of the recognized tokens.
func (s Source) Valid() bool {
	switch s {
	case SourceClose, SourceOpen, SourceHigh, SourceLow, SourceHL2, SourceTypicalPrice, SourceOHLC4, SourceVolumedPrice:
		return true
	default:
		return false
	}
}

// Price reads the selected price from the bar. Unrecognized sources fall
// back to the closing price so that Price stays total for any field state
// reachable at runtime.
func (s Source) Price(v OHLCV) float64 {
	switch s {
	case SourceOpen:
		return v.GetOpen()
	case SourceHigh:
		return v.GetHigh()
	case SourceLow:
		return v.GetLow()
	case SourceHL2:
		return HL2(v)
	case SourceTypicalPrice:
		return TypicalPrice(v)
	case SourceOHLC4:
		return OHLC4(v)
	case SourceVolumedPrice:
		return VolumedPrice(v)
	case SourceClose:
		return v.GetClose()
	default:
		return v.GetClose()
	}
}
