package indicator

import (
	"testing"

	"github.com/rxtech-lab/tide/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ParamsTestSuite struct {
	suite.Suite
}

func TestParamsSuite(t *testing.T) {
	suite.Run(t, new(ParamsTestSuite))
}

func (suite *ParamsTestSuite) TestParsePeriod() {
	period, err := parsePeriod("period", "14")
	suite.NoError(err)
	suite.Equal(14, period)

	period, err = parsePeriod("period", "-3")
	suite.NoError(err)
	suite.Equal(-3, period)
}

func (suite *ParamsTestSuite) TestParsePeriodFailure() {
	_, err := parsePeriod("period", "ten")
	suite.Error(err)
	suite.True(errors.IsParseFailure(err))
	suite.Contains(err.Error(), "period")

	_, err = parsePeriod("period", "14.5")
	suite.Error(err)
	suite.True(errors.IsParseFailure(err))

	_, err = parsePeriod("period", "")
	suite.Error(err)
}

func (suite *ParamsTestSuite) TestParseFloat() {
	zone, err := parseFloat("zone", "0.25")
	suite.NoError(err)
	suite.InDelta(0.25, zone, 1e-9)

	zone, err = parseFloat("zone", "-1e-3")
	suite.NoError(err)
	suite.InDelta(-0.001, zone, 1e-12)
}

func (suite *ParamsTestSuite) TestParseFloatFailure() {
	_, err := parseFloat("zone", "wide")
	suite.Error(err)
	suite.True(errors.IsParseFailure(err))
}

func (suite *ParamsTestSuite) TestParseWeights() {
	weights, err := parseWeights("weights", "1,2,3")
	suite.NoError(err)
	suite.Equal([]float64{1, 2, 3}, weights)

	weights, err = parseWeights("weights", " 0.5 , -1.5 ")
	suite.NoError(err)
	suite.Equal([]float64{0.5, -1.5}, weights)

	weights, err = parseWeights("weights", "7")
	suite.NoError(err)
	suite.Equal([]float64{7}, weights)
}

func (suite *ParamsTestSuite) TestParseWeightsFailure() {
	_, err := parseWeights("weights", "1,two")
	suite.Error(err)
	suite.True(errors.IsParseFailure(err))

	_, err = parseWeights("weights", "")
	suite.Error(err)
	suite.True(errors.IsParseFailure(err))

	_, err = parseWeights("weights", "1,,2")
	suite.Error(err)
	suite.True(errors.IsParseFailure(err))
}

func (suite *ParamsTestSuite) TestUnknownParameterError() {
	err := unknownParameter(IndicatorTypeRSI, "perod")
	suite.Error(err)
	suite.True(errors.IsUnknownParameter(err))
	suite.Contains(err.Error(), "rsi")
	suite.Contains(err.Error(), "perod")
}
