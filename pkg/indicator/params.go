package indicator

import (
	"strconv"
	"strings"

	"github.com/rxtech-lab/tide/pkg/errors"
)

// Shared parsing plumbing for Set. Each configuration's Set is an explicit
// switch over its closed parameter name list; a matching branch parses the
// text fully before assigning, so a failed call never leaves a partial
// mutation behind.

// parsePeriod converts text into an integer period parameter.
func parsePeriod(name, value string) (int, error) {
	period, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrCodeParseFailure, err, "cannot parse %q as integer parameter %q", value, name)
	}

	return period, nil
}

// parseFloat converts text into a real-valued parameter.
func parseFloat(name, value string) (float64, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrCodeParseFailure, err, "cannot parse %q as real parameter %q", value, name)
	}

	return parsed, nil
}

// parseWeights converts comma-delimited text into a weight sequence.
// Whitespace around individual weights is tolerated; an empty sequence is a
// parse failure since it carries no window at all.
func parseWeights(name, value string) ([]float64, error) {
	parts := strings.Split(value, ",")
	weights := make([]float64, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			return nil, errors.Newf(errors.ErrCodeParseFailure, "empty weight in parameter %q value %q", name, value)
		}

		weight, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeParseFailure, err, "cannot parse weight %q in parameter %q", trimmed, name)
		}

		weights = append(weights, weight)
	}

	return weights, nil
}

// unknownParameter builds the rejection error for a name outside a
// configuration's closed parameter list.
func unknownParameter(indicator IndicatorType, name string) error {
	return errors.Newf(errors.ErrCodeUnknownParameter, "indicator %s has no parameter %q", indicator, name)
}
