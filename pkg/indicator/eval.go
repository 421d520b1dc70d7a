package indicator

import "github.com/rxtech-lab/tide/pkg/ohlcv"

// Eval evaluates an indicator configuration over a bar sequence and returns
// one Result per input bar, in input order. It is the single batch entry
// point for every indicator variant and is defined purely in terms of Init
// and Next; no indicator reimplements it.
//
// An empty sequence returns an empty slice without error, valid or not:
// validation is only checked once a seed bar is supplied. Otherwise the
// first bar seeds the instance via Init (an initialization error aborts
// before any Result is produced) and then every bar, including the seed,
// is fed through Next. Feeding the seed bar through both Init and Next is
// part of the contract: a one-bar sequence yields exactly one Result.
func Eval[T ohlcv.OHLCV](config IndicatorConfig[T], bars []T) ([]Result, error) {
	if len(bars) == 0 {
		return []Result{}, nil
	}

	instance, err := config.Init(bars[0])
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(bars))
	for _, bar := range bars {
		results = append(results, instance.Next(bar))
	}

	return results, nil
}
